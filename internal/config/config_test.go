package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg := New()

		Convey("Then the spring matches the skill bar smoothing", func() {
			So(cfg.Scroll.Stiffness, ShouldEqual, 100)
			So(cfg.Scroll.Damping, ShouldEqual, 30)
			So(cfg.Scroll.RestDelta, ShouldEqual, 0.001)
			So(cfg.Scroll.ParallaxDistance, ShouldEqual, 300)
		})

		Convey("And the contact relay only logs", func() {
			So(cfg.Contact.Relay, ShouldEqual, RelayLog)
		})

		Convey("And it validates", func() {
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given invalid configurations", t, func() {
		cases := map[string]func(*Config){
			"empty addr":        func(c *Config) { c.Addr = "" },
			"zero stiffness":    func(c *Config) { c.Scroll.Stiffness = 0 },
			"negative damping":  func(c *Config) { c.Scroll.Damping = -1 },
			"unknown relay":     func(c *Config) { c.Contact.Relay = "pigeon" },
			"smtp without auth": func(c *Config) { c.Contact.Relay = RelaySMTP },
			"unknown gin mode":  func(c *Config) { c.GinMode = "turbo" },
			"zero shutdown":     func(c *Config) { c.ShutdownTimeout = 0 },
		}
		for _, mutate := range cases {
			cfg := New()
			mutate(cfg)
			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		}
	})

	Convey("Given a complete smtp relay", t, func() {
		cfg := New()
		cfg.Contact.Relay = RelaySMTP
		cfg.Contact.SMTPUser = "me@example.com"
		cfg.Contact.SMTPPass = "secret"
		cfg.Contact.To = "me@example.com"
		So(cfg.Validate(), ShouldBeNil)
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a YAML file and env overrides", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "portfolio.yml")
		yml := []byte("addr: \":9000\"\nlog_level: debug\nscroll:\n  stiffness: 120\ncontact:\n  to: file@example.com\n")
		So(os.WriteFile(path, yml, 0o644), ShouldBeNil)

		t.Setenv("PORTFOLIO_LOG_LEVEL", "warn")
		t.Setenv("PORTFOLIO_SHUTDOWN_TIMEOUT", "3s")
		t.Setenv("PORTFOLIO_CONTACT__TO", "env@example.com")

		cfg, err := Load(path)
		So(err, ShouldBeNil)

		Convey("Then the file overrides defaults", func() {
			So(cfg.Addr, ShouldEqual, ":9000")
			So(cfg.Scroll.Stiffness, ShouldEqual, 120)
		})

		Convey("And untouched nested defaults survive", func() {
			So(cfg.Scroll.Damping, ShouldEqual, 30)
			So(cfg.Contact.Relay, ShouldEqual, RelayLog)
		})

		Convey("And env overrides the file", func() {
			So(cfg.LogLevel, ShouldEqual, "warn")
			So(cfg.ShutdownTimeout, ShouldEqual, 3*time.Second)
			So(cfg.Contact.To, ShouldEqual, "env@example.com")
		})
	})

	Convey("Given only PORT", t, func() {
		t.Setenv("PORT", "7070")
		cfg, err := Load("")
		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, ":7070")
	})

	Convey("Given a missing file", t, func() {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
	})

	Convey("Given an env value that fails validation", t, func() {
		t.Setenv("PORTFOLIO_CONTACT__RELAY", "fax")
		_, err := Load("")
		So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
	})
}
