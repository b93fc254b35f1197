package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/components"
	"github.com/Zachkp/folio/internal/data"
	"github.com/Zachkp/folio/internal/models"
	"github.com/Zachkp/folio/internal/util"
)

// PageData is what index.html renders.
type PageData struct {
	Meta   util.Meta
	Site   models.Site
	Avatar components.Image
	Cards  []components.ProjectCard
	Perf   components.PerfLogger
	Year   int
}

// Home renders the full page: hero, skills, projects and contact.
func (h *Handler) Home(c *gin.Context) {
	projects := data.Projects()
	cards := make([]components.ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, components.NewProjectCard(p, h.images))
	}

	c.HTML(http.StatusOK, "index.html", PageData{
		Meta: util.SEO(h.seoDefaults(), util.Page{Path: "/"}),
		Site: h.site,
		Avatar: h.images.Resolve(components.Image{
			Src:      h.site.Avatar,
			Fallback: components.PlaceholderImage,
			Alt:      "Portrait of " + h.site.Name,
			Width:    240,
			Height:   240,
			Priority: true,
		}),
		Cards: cards,
		Perf: components.PerfLogger{
			Enabled:  h.cfg.IsProduction(),
			Endpoint: "/api/metrics",
		},
		Year: time.Now().Year(),
	})
}

// Privacy renders the privacy notice for the visit tracking.
func (h *Handler) Privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", PageData{
		Meta: util.SEO(h.seoDefaults(), util.Page{
			Title:       "Privacy",
			Description: "How this site handles visitor data.",
			Path:        "/privacy",
		}),
		Site: h.site,
		Year: time.Now().Year(),
	})
}

// CaseStudy renders a project's case-study panel in the requested state.
// It backs the disclosure button on each project card.
func (h *Handler) CaseStudy(c *gin.Context) {
	p, err := data.ProjectBySlug(c.Param("slug"))
	if err != nil || p.CaseStudy == nil {
		if err != nil && !errors.Is(err, data.ErrProjectNotFound) {
			h.logger.Error("case study lookup", zap.Error(err))
		}
		c.String(http.StatusNotFound, "case study not found")
		return
	}
	expanded, err := strconv.ParseBool(c.DefaultQuery("expanded", "false"))
	if err != nil {
		c.String(http.StatusBadRequest, "expanded must be true or false")
		return
	}
	c.HTML(http.StatusOK, "case-study", components.NewCaseStudyPanel(p, expanded))
}

// Stylesheet serves the generated token and utility CSS.
func (h *Handler) Stylesheet(c *gin.Context) {
	c.Header("ETag", h.etag)
	c.Header("Cache-Control", "public, max-age=3600")
	if c.GetHeader("If-None-Match") == h.etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(h.css))
}
