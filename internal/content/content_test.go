package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefault(t *testing.T) {
	Convey("Given the built-in profile", t, func() {
		p := Default()

		Convey("Then it validates", func() {
			So(p.Validate(), ShouldBeNil)
		})

		Convey("And it has every section populated", func() {
			So(p.Skills, ShouldHaveLength, 16)
			So(p.Experience, ShouldHaveLength, 5)
			So(p.Education, ShouldHaveLength, 4)
			So(p.Projects, ShouldHaveLength, 5)
			So(p.Achievements, ShouldHaveLength, 4)
			So(p.Affiliations, ShouldHaveLength, 4)
			So(p.Languages, ShouldHaveLength, 4)
			So(p.About, ShouldHaveLength, 4)
		})

		Convey("And only the highlight projects are featured", func() {
			featured := 0
			for _, pr := range p.Projects {
				if pr.Featured() {
					featured++
				}
			}
			So(featured, ShouldEqual, 2)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given no path", t, func() {
		p, err := Load("")
		So(err, ShouldBeNil)
		So(p.Name, ShouldEqual, "Spandana Kunder")
	})

	Convey("Given a YAML profile", t, func() {
		path := filepath.Join(t.TempDir(), "profile.yml")
		yml := `name: Ada Lovelace
title: Ada Lovelace - Analyst
skills:
  - name: Mathematics
    level: 99
languages:
  - name: English
    proficiency: Native
`
		So(os.WriteFile(path, []byte(yml), 0o644), ShouldBeNil)

		p, err := Load(path)
		So(err, ShouldBeNil)
		So(p.Name, ShouldEqual, "Ada Lovelace")
		So(p.Skills, ShouldResemble, []Skill{{Name: "Mathematics", Level: 99}})
		So(p.Languages[0].Proficiency, ShouldEqual, "Native")
	})

	Convey("Given a profile with an out of range skill", t, func() {
		path := filepath.Join(t.TempDir(), "profile.yml")
		So(os.WriteFile(path, []byte("name: A\ntitle: B\nskills:\n  - name: X\n    level: 101\n"), 0o644), ShouldBeNil)

		_, err := Load(path)
		So(errors.Is(err, ErrInvalidProfile), ShouldBeTrue)
	})

	Convey("Given malformed YAML", t, func() {
		path := filepath.Join(t.TempDir(), "profile.yml")
		So(os.WriteFile(path, []byte("name: [unterminated"), 0o644), ShouldBeNil)

		_, err := Load(path)
		So(err, ShouldNotBeNil)
	})

	Convey("Given a missing file", t, func() {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
	})
}

func TestMarkdown(t *testing.T) {
	Convey("Markdown renders emphasis and drops raw HTML", t, func() {
		html, err := Markdown("a **bold** claim <script>alert(1)</script>")
		So(err, ShouldBeNil)
		So(string(html), ShouldContainSubstring, "<strong>bold</strong>")
		So(string(html), ShouldNotContainSubstring, "<script>")
	})

	Convey("Every built-in about paragraph renders to a single paragraph", t, func() {
		for _, para := range Default().About {
			html, err := Markdown(para)
			So(err, ShouldBeNil)
			So(string(html), ShouldStartWith, "<p>")
			So(string(html), ShouldNotContainSubstring, "<pre>")
		}
	})
}
