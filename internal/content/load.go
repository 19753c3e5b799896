package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile is returned for profiles missing required records.
var ErrInvalidProfile = errors.New("invalid profile")

// Load reads a profile from a YAML file. An empty path returns Default.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that display records are well formed.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidProfile)
	}
	for _, s := range p.Skills {
		if s.Name == "" {
			return fmt.Errorf("%w: skill without a name", ErrInvalidProfile)
		}
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("%w: skill %q level %d outside 0-100", ErrInvalidProfile, s.Name, s.Level)
		}
	}
	for _, e := range p.Experience {
		if e.Title == "" || e.Company == "" {
			return fmt.Errorf("%w: experience needs a title and company", ErrInvalidProfile)
		}
	}
	for _, pr := range p.Projects {
		if pr.Title == "" {
			return fmt.Errorf("%w: project without a title", ErrInvalidProfile)
		}
	}
	for _, a := range p.Achievements {
		if a.Title == "" {
			return fmt.Errorf("%w: achievement without a title", ErrInvalidProfile)
		}
	}
	return nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// Markdown renders src to HTML. Raw HTML in src is not passed through.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
