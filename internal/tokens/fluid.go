package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotFluid = errors.New("not a fluid clamp() expression")

// FluidSize is a responsive length bounded by a minimum and a maximum, with a
// viewport-relative preferred value in between.
type FluidSize struct {
	Min       string
	Preferred string
	Max       string
}

func (f FluidSize) String() string {
	return fmt.Sprintf("clamp(%s, %s, %s)", f.Min, f.Preferred, f.Max)
}

// ParseFluid parses a clamp(min, preferred, max) value. The preferred value
// must be viewport-relative and, when min and max share a unit, min must not
// exceed max.
func ParseFluid(v string) (FluidSize, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "clamp(") || !strings.HasSuffix(v, ")") {
		return FluidSize{}, fmt.Errorf("%w: %q", ErrNotFluid, v)
	}
	args := splitTopLevel(v[len("clamp(") : len(v)-1])
	if len(args) != 3 {
		return FluidSize{}, fmt.Errorf("%w: want 3 arguments in %q", ErrNotFluid, v)
	}
	f := FluidSize{Min: args[0], Preferred: args[1], Max: args[2]}
	if !strings.Contains(f.Preferred, "vw") {
		return FluidSize{}, fmt.Errorf("%w: preferred value %q is not viewport-relative", ErrNotFluid, f.Preferred)
	}
	minN, minU, okMin := parseLength(f.Min)
	maxN, maxU, okMax := parseLength(f.Max)
	if !okMin || !okMax {
		return FluidSize{}, fmt.Errorf("%w: bounds must be plain lengths in %q", ErrNotFluid, v)
	}
	if minU == maxU && minN > maxN {
		return FluidSize{}, fmt.Errorf("%w: min %s exceeds max %s", ErrNotFluid, f.Min, f.Max)
	}
	return f, nil
}

func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// parseLength splits "1.25rem" into 1.25 and "rem".
func parseLength(s string) (float64, string, bool) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if i <= 0 {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", false
	}
	unit := s[i:]
	switch unit {
	case "px", "rem", "em":
		return n, unit, true
	}
	return 0, "", false
}
