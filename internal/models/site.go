package models

// Site is the profile content rendered in the hero and skills sections
type Site struct {
	Name        string       `yaml:"name" json:"name"`
	Role        string       `yaml:"role" json:"role"`
	Tagline     string       `yaml:"tagline" json:"tagline"`
	About       string       `yaml:"about" json:"about"`
	Description string       `yaml:"description" json:"description"`
	Image       string       `yaml:"image" json:"image"`
	Avatar      string       `yaml:"avatar" json:"avatar"`
	Twitter     string       `yaml:"twitter" json:"twitter,omitempty"`
	Skills      []SkillGroup `yaml:"skills" json:"skills"`
	Socials     []Social     `yaml:"socials" json:"socials"`
}

// SkillGroup is a titled list of skills
type SkillGroup struct {
	Title  string   `yaml:"title" json:"title"`
	Skills []string `yaml:"skills" json:"skills"`
}

// Social is an outbound profile link
type Social struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}
