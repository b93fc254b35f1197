package models

// Project represents a portfolio project
type Project struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   []string   `json:"tech_stack"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Links       Links      `json:"links"`
	CaseStudy   *CaseStudy `json:"case_study,omitempty"`
}

// Links are the optional outbound links of a project
type Links struct {
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
}

// CaseStudy is the collapsible narrative attached to a project
type CaseStudy struct {
	Problem  string `json:"problem"`
	Approach string `json:"approach"`
	Outcome  string `json:"outcome"`
}

// TechStackDisplay is the truncated view of a project's tech stack
type TechStackDisplay struct {
	Visible   []string `json:"visible"`
	Remaining int      `json:"remaining"`
}

// HasLinks reports whether the project has any outbound link.
func (p Project) HasLinks() bool {
	return p.Links.GitHub != "" || p.Links.Demo != ""
}
