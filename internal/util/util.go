package util

import (
	"strings"

	"github.com/Zachkp/folio/internal/models"
)

// DefaultMaxVisible is the tech badge limit used when none is given.
const DefaultMaxVisible = 5

// CN joins class names, skipping empty entries and repeated classes.
func CN(classes ...string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range classes {
		for _, f := range strings.Fields(c) {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}

// GetTechStackDisplay returns the first maxVisible entries of stack and how
// many were left out. maxVisible <= 0 means DefaultMaxVisible.
func GetTechStackDisplay(stack []string, maxVisible int) models.TechStackDisplay {
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	n := min(len(stack), maxVisible)
	visible := make([]string, n)
	copy(visible, stack[:n])
	return models.TechStackDisplay{
		Visible:   visible,
		Remaining: len(stack) - n,
	}
}
