package util

import (
	"strings"
)

// SiteDefaults are the fallbacks for every page's meta tags.
type SiteDefaults struct {
	Name        string
	URL         string
	Description string
	Image       string
	Twitter     string
}

// Page describes a single page for meta-tag purposes.
type Page struct {
	Title       string
	Description string
	Path        string
	Image       string
	NoIndex     bool
}

// Meta is the rendered set of meta values.
type Meta struct {
	Title         string
	Description   string
	Canonical     string
	Robots        string
	OGType        string
	OGTitle       string
	OGDescription string
	OGImage       string
	OGSiteName    string
	TwitterCard   string
	TwitterSite   string
}

// SEO builds the meta tags for page, filling gaps from site.
func SEO(site SiteDefaults, page Page) Meta {
	title := site.Name
	if page.Title != "" && page.Title != site.Name {
		title = page.Title + " | " + site.Name
	}
	desc := page.Description
	if desc == "" {
		desc = site.Description
	}
	image := firstNonEmpty(page.Image, site.Image)
	if image != "" {
		image = absolute(site.URL, image)
	}
	robots := "index, follow"
	if page.NoIndex {
		robots = "noindex, nofollow"
	}
	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}
	return Meta{
		Title:         title,
		Description:   desc,
		Canonical:     absolute(site.URL, page.Path),
		Robots:        robots,
		OGType:        "website",
		OGTitle:       title,
		OGDescription: desc,
		OGImage:       image,
		OGSiteName:    site.Name,
		TwitterCard:   card,
		TwitterSite:   site.Twitter,
	}
}

func absolute(base, path string) string {
	if path == "" {
		if base == "" {
			return ""
		}
		path = "/"
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + path
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
