// Package content holds the authored résumé records shown on the page.
package content

// Profile is everything the page displays. It carries no behaviour.
type Profile struct {
	Name            string `yaml:"name"`
	Headline        string `yaml:"headline"`
	Tagline         string `yaml:"tagline"`
	Title           string `yaml:"title"`
	MetaDescription string `yaml:"meta_description"`
	PhotoURL        string `yaml:"photo_url"`
	ResumePath      string `yaml:"resume_path"`

	// About holds Markdown paragraphs.
	About []string `yaml:"about"`

	Skills       []Skill       `yaml:"skills"`
	Experience   []Experience  `yaml:"experience"`
	Education    []Education   `yaml:"education"`
	Projects     []Project     `yaml:"projects"`
	Achievements []Achievement `yaml:"achievements"`
	Affiliations []string      `yaml:"affiliations"`
	Languages    []Language    `yaml:"languages"`

	Contact   ContactInfo `yaml:"contact"`
	Copyright string      `yaml:"copyright"`
}

// Skill is a named proficiency in percent.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Experience is one job.
type Experience struct {
	Title   string   `yaml:"title"`
	Company string   `yaml:"company"`
	Period  string   `yaml:"period"`
	Bullets []string `yaml:"bullets"`
}

// Education is a degree, specialization or list of certifications.
type Education struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Period      string   `yaml:"period"`
	Notes       []string `yaml:"notes"`
	Bullets     []string `yaml:"bullets"`
	Summary     string   `yaml:"summary"`
}

// Project is either a dated academic project with a description, or a
// featured project with an intro and a list of highlights.
type Project struct {
	Title       string   `yaml:"title"`
	Period      string   `yaml:"period"`
	Association string   `yaml:"association"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
}

// Featured reports whether the project is rendered as a wide highlight card.
func (p Project) Featured() bool { return len(p.Highlights) > 0 }

// Achievement is an award or recognition.
type Achievement struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Language is a spoken language and proficiency.
type Language struct {
	Name        string `yaml:"name"`
	Proficiency string `yaml:"proficiency"`
}

// ContactInfo is shown in the footer.
type ContactInfo struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
	LinkedIn string `yaml:"linkedin"`
	Twitter  string `yaml:"twitter"`
}
