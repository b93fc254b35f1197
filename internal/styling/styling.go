// Package styling maps design tokens onto utility classes and responsive
// breakpoints. It is declarative: the only logic is rendering the table as CSS.
package styling

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Zachkp/folio/internal/tokens"
)

// Breakpoint is a min-width media query prefix such as "md".
type Breakpoint struct {
	Name     string
	MinWidth string
}

// Breakpoints in ascending order.
var Breakpoints = []Breakpoint{
	{Name: "sm", MinWidth: "640px"},
	{Name: "md", MinWidth: "768px"},
	{Name: "lg", MinWidth: "1024px"},
	{Name: "xl", MinWidth: "1280px"},
}

// Utility is a single-purpose class backed by one or more declarations.
type Utility struct {
	Class        string
	Declarations []Declaration
	// Responsive utilities also get sm:, md:, ... variants.
	Responsive bool
}

// Declaration is one CSS property whose value references a token.
type Declaration struct {
	Property string
	Token    string
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: var(--%s)", d.Property, d.Token)
}

// Config is the full token → utility mapping.
type Config struct {
	Tokens    *tokens.Set
	Utilities []Utility
}

// New builds the configuration for a token set.
func New(set *tokens.Set) *Config {
	return &Config{Tokens: set, Utilities: utilities(set)}
}

func utilities(set *tokens.Set) []Utility {
	var out []Utility
	add := func(class string, responsive bool, decls ...Declaration) {
		out = append(out, Utility{Class: class, Declarations: decls, Responsive: responsive})
	}

	for _, t := range set.ByCategory(tokens.Color) {
		name := strings.TrimPrefix(t.Name, "color-")
		add("text-"+name, false, Declaration{"color", t.Name})
		add("bg-"+name, false, Declaration{"background-color", t.Name})
		add("border-"+name, false, Declaration{"border-color", t.Name})
	}
	for _, t := range set.ByCategory(tokens.FontSize) {
		add("text-"+strings.TrimPrefix(t.Name, "font-size-"), true, Declaration{"font-size", t.Name})
	}
	for _, t := range set.ByCategory(tokens.Shadow) {
		add(t.Name, false, Declaration{"box-shadow", t.Name})
	}
	for _, t := range set.ByCategory(tokens.Spacing) {
		step := strings.TrimPrefix(t.Name, "space-")
		add("p-"+step, true, Declaration{"padding", t.Name})
		add("px-"+step, true, Declaration{"padding-left", t.Name}, Declaration{"padding-right", t.Name})
		add("py-"+step, true, Declaration{"padding-top", t.Name}, Declaration{"padding-bottom", t.Name})
		add("m-"+step, true, Declaration{"margin", t.Name})
		add("mt-"+step, true, Declaration{"margin-top", t.Name})
		add("gap-"+step, true, Declaration{"gap", t.Name})
	}
	for _, t := range set.ByCategory(tokens.Radius) {
		add("rounded-"+strings.TrimPrefix(t.Name, "radius-"), false, Declaration{"border-radius", t.Name})
	}
	for _, t := range set.ByCategory(tokens.Duration) {
		add(t.Name, false, Declaration{"transition-duration", t.Name})
	}
	return out
}

// Lookup returns the utility with the given class name. Responsive variants
// like "md:p-6" resolve to their base utility.
func (c *Config) Lookup(class string) (Utility, bool) {
	if prefix, base, ok := strings.Cut(class, ":"); ok {
		if !isBreakpoint(prefix) {
			return Utility{}, false
		}
		u, found := c.Lookup(base)
		return u, found && u.Responsive
	}
	for _, u := range c.Utilities {
		if u.Class == class {
			return u, true
		}
	}
	return Utility{}, false
}

func isBreakpoint(name string) bool {
	for _, bp := range Breakpoints {
		if bp.Name == name {
			return true
		}
	}
	return false
}

// Classes returns every class name, including responsive variants, sorted.
func (c *Config) Classes() []string {
	var out []string
	for _, u := range c.Utilities {
		out = append(out, u.Class)
		if u.Responsive {
			for _, bp := range Breakpoints {
				out = append(out, bp.Name+":"+u.Class)
			}
		}
	}
	sort.Strings(out)
	return out
}

var selectorEscaper = regexp.MustCompile(`([:.])`)

func selector(class string) string {
	return "." + selectorEscaper.ReplaceAllString(class, `\$1`)
}

func writeRule(b *strings.Builder, indent, class string, decls []Declaration) {
	fmt.Fprintf(b, "%s%s { ", indent, selector(class))
	for i, d := range decls {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d.String())
		b.WriteString(";")
	}
	b.WriteString(" }\n")
}

// CSS renders the token stylesheet followed by the utilities and their
// responsive variants.
func (c *Config) CSS() string {
	var b strings.Builder
	b.WriteString(c.Tokens.Stylesheet())
	b.WriteString("\n")
	for _, u := range c.Utilities {
		writeRule(&b, "", u.Class, u.Declarations)
	}
	for _, bp := range Breakpoints {
		fmt.Fprintf(&b, "\n@media (min-width: %s) {\n", bp.MinWidth)
		for _, u := range c.Utilities {
			if u.Responsive {
				writeRule(&b, "  ", bp.Name+":"+u.Class, u.Declarations)
			}
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// ETag returns a strong validator for the rendered stylesheet.
func ETag(css string) string {
	sum := sha256.Sum256([]byte(css))
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
