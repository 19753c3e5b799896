// Package config defines the site configuration and its defaults.
package config

import (
	"fmt"
	"time"
)

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `koanf:"log_format"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `koanf:"gin_mode"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// ContentFile optionally replaces the built-in profile with a YAML file.
	ContentFile string `koanf:"content_file"`

	// ResumeFile is the local résumé document served at the profile's
	// résumé path. Empty means the file is hosted elsewhere.
	ResumeFile string `koanf:"resume_file"`

	// WasmDir holds portfolio.wasm and wasm_exec.js for the browser scene
	// runtime. Empty serves the page without it.
	WasmDir string `koanf:"wasm_dir"`

	Ambient   AmbientConfig   `koanf:"ambient"`
	Scroll    ScrollConfig    `koanf:"scroll"`
	Contact   ContactConfig   `koanf:"contact"`
	Admin     AdminConfig     `koanf:"admin"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

// AmbientConfig styles the background particle field.
type AmbientConfig struct {
	// Color is the particle base colour as a hex string.
	Color string `koanf:"color"`
}

// ScrollConfig holds the smoothing parameters for scroll-linked values.
type ScrollConfig struct {
	Stiffness float64 `koanf:"stiffness"`
	Damping   float64 `koanf:"damping"`
	Mass      float64 `koanf:"mass"`
	RestDelta float64 `koanf:"rest_delta"`
	RestSpeed float64 `koanf:"rest_speed"`

	// ParallaxDistance is how far, in pixels, the header backdrop travels
	// over the whole document.
	ParallaxDistance float64 `koanf:"parallax_distance"`
}

// ContactConfig selects and configures the contact-form relay.
type ContactConfig struct {
	// Relay is "log" (acknowledge and log only) or "smtp".
	Relay string `koanf:"relay"`

	SMTPHost string `koanf:"smtp_host"`
	SMTPPort string `koanf:"smtp_port"`
	SMTPUser string `koanf:"smtp_user"`
	SMTPPass string `koanf:"smtp_pass"`
	To       string `koanf:"to"`
}

// AdminConfig guards the statistics dashboard.
type AdminConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// AnalyticsConfig controls the in-memory visitor statistics.
type AnalyticsConfig struct {
	Enabled bool `koanf:"enabled"`

	// Retention is how long visits are kept before the cleanup drops them.
	Retention time.Duration `koanf:"retention"`
}

// Relay names.
const (
	RelayLog  = "log"
	RelaySMTP = "smtp"
)

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		GinMode:         "release",
		ShutdownTimeout: 10 * time.Second,
		Ambient: AmbientConfig{
			Color: "#6366f1",
		},
		Scroll: ScrollConfig{
			Stiffness:        100,
			Damping:          30,
			Mass:             1,
			RestDelta:        0.001,
			RestSpeed:        0.01,
			ParallaxDistance: 300,
		},
		Contact: ContactConfig{
			Relay:    RelayLog,
			SMTPHost: "smtp.gmail.com",
			SMTPPort: "587",
		},
		Admin: AdminConfig{
			Enabled:  true,
			Username: "admin",
		},
		Analytics: AnalyticsConfig{
			Enabled:   true,
			Retention: 30 * 24 * time.Hour,
		},
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.Scroll.Stiffness <= 0 || c.Scroll.Mass <= 0 {
		return fmt.Errorf("%w: scroll stiffness and mass must be positive", ErrInvalidConfig)
	}
	if c.Scroll.Damping < 0 || c.Scroll.RestDelta < 0 || c.Scroll.RestSpeed < 0 {
		return fmt.Errorf("%w: scroll damping and rest thresholds must not be negative", ErrInvalidConfig)
	}
	switch c.Contact.Relay {
	case RelayLog:
	case RelaySMTP:
		if c.Contact.SMTPUser == "" || c.Contact.SMTPPass == "" {
			return fmt.Errorf("%w: smtp relay needs smtp_user and smtp_pass", ErrInvalidConfig)
		}
		if c.Contact.To == "" {
			return fmt.Errorf("%w: smtp relay needs a recipient", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown contact relay %q", ErrInvalidConfig, c.Contact.Relay)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: unknown gin_mode %q", ErrInvalidConfig, c.GinMode)
	}
	return nil
}
