package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/folio/internal/models"
)

//go:embed site.yaml
var siteYAML []byte

// Site parses the embedded site profile.
func Site() (models.Site, error) {
	return ParseSite(siteYAML)
}

// ParseSite decodes a site profile and checks the fields the hero needs.
func ParseSite(raw []byte) (models.Site, error) {
	var site models.Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return models.Site{}, fmt.Errorf("parse site profile: %w", err)
	}
	if site.Name == "" || site.Role == "" {
		return models.Site{}, fmt.Errorf("site profile needs name and role")
	}
	return site, nil
}
