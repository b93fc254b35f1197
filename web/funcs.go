package web

import (
	"html/template"

	"github.com/Zachkp/folio/internal/components"
	"github.com/Zachkp/folio/internal/util"
)

// Funcs are the helpers every template may call.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"cn":     util.CN,
		"button": components.Button,
		"card":   components.Card,
	}
}
