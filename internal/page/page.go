// Package page renders the portfolio document and its HTML fragments.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/spandanakunder/portfolio/internal/ambient"
	"github.com/spandanakunder/portfolio/internal/contact"
	"github.com/spandanakunder/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Sections lists the section anchors in page order.
var Sections = []string{
	"about",
	"skills",
	"experience",
	"education",
	"projects",
	"achievements",
	"affiliations",
	"languages",
	"contact",
}

// Motion carries the scene parameters handed to the browser runtime. Its
// fields line up with config.ScrollConfig so one converts to the other.
type Motion struct {
	Stiffness        float64
	Damping          float64
	Mass             float64
	RestDelta        float64
	RestSpeed        float64
	ParallaxDistance float64
}

// ContactView is the state of the contact form on a render.
type ContactView struct {
	Values contact.Submission
	// Notice is shown after a delivered message.
	Notice string
	// Error is shown when validation or delivery failed.
	Error string
}

// Data is everything the index template needs.
type Data struct {
	Profile     *content.Profile
	About       []template.HTML
	Field       ambient.Field
	ParticleCSS template.CSS
	Motion      Motion
	Contact     ContactView
	// WasmPath is the URL prefix of the scene runtime, empty when disabled.
	WasmPath string
}

// Build assembles Data, rendering the profile's Markdown.
func Build(p *content.Profile, field ambient.Field, color string, motion Motion) (*Data, error) {
	about := make([]template.HTML, 0, len(p.About))
	for _, para := range p.About {
		html, err := content.Markdown(para)
		if err != nil {
			return nil, err
		}
		about = append(about, html)
	}

	css, err := ParticleCSS(field, color)
	if err != nil {
		return nil, err
	}

	return &Data{
		Profile:     p,
		About:       about,
		Field:       field,
		ParticleCSS: css,
		Motion:      motion,
	}, nil
}

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

// Renderer writes the portfolio document.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the templates once.
func NewRenderer() (*Renderer, error) {
	t, err := Templates()
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: t}, nil
}

// Template exposes the parsed set, for engines that execute named
// fragments themselves.
func (r *Renderer) Template() *template.Template { return r.tmpl }

// Render writes the full document for d.
func (r *Renderer) Render(w io.Writer, d *Data) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html", d); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// Static returns the embedded stylesheet and assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
