package components

import (
	"fmt"

	"github.com/Zachkp/folio/internal/models"
	"github.com/Zachkp/folio/internal/util"
)

// PlaceholderImage is shown when a project thumbnail cannot be loaded.
const PlaceholderImage = "/static/img/placeholder.svg"

// ProjectCard is the view model for one project.
type ProjectCard struct {
	Project models.Project
	Tech    models.TechStackDisplay
	Image   *Image
	Panel   *CaseStudyPanel
}

// NewProjectCard builds a card. The case-study panel, when present, starts
// collapsed.
func NewProjectCard(p models.Project, images ImageResolver) ProjectCard {
	card := ProjectCard{
		Project: p,
		Tech:    util.GetTechStackDisplay(p.TechStack, util.DefaultMaxVisible),
	}
	if p.Thumbnail != "" {
		img := images.Resolve(Image{
			Src:      p.Thumbnail,
			Fallback: PlaceholderImage,
			Alt:      fmt.Sprintf("Screenshot of %s", p.Title),
			Width:    640,
			Height:   360,
		})
		card.Image = &img
	}
	if p.CaseStudy != nil {
		panel := NewCaseStudyPanel(p, false)
		card.Panel = &panel
	}
	return card
}

// CaseStudyPanel is the disclosure attached to a project card.
type CaseStudyPanel struct {
	Slug      string
	Title     string
	CaseStudy *models.CaseStudy
	Expanded  bool
}

// NewCaseStudyPanel returns the panel in the given state.
func NewCaseStudyPanel(p models.Project, expanded bool) CaseStudyPanel {
	return CaseStudyPanel{Slug: p.Slug, Title: p.Title, CaseStudy: p.CaseStudy, Expanded: expanded}
}

// ID is the DOM id of the panel body.
func (c CaseStudyPanel) ID() string {
	return "case-study-" + c.Slug
}

// ToggleURL is the fragment URL that renders the opposite state.
func (c CaseStudyPanel) ToggleURL() string {
	return fmt.Sprintf("/projects/%s/case-study?expanded=%t", c.Slug, !c.Expanded)
}

// Toggle returns the ARIA attributes for the disclosure button.
func (c CaseStudyPanel) Toggle() ARIA {
	expanded := c.Expanded
	return ARIA{Expanded: &expanded, Controls: c.ID()}
}

// PerfLogger controls the web-vitals reporting script.
type PerfLogger struct {
	Enabled  bool
	Endpoint string
}
