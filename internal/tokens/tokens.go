// Package tokens defines the design tokens of the site: named CSS custom
// properties for colors, type scale, shadows, spacing, radii and motion.
// The set is built once at startup and never mutated afterwards; both the
// utility-class generator and the templates read from it.
package tokens

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownToken = errors.New("unknown design token")
	ErrEmptyValue   = errors.New("design token has empty value")
	ErrCycle        = errors.New("design token reference cycle")
)

// maxDepth bounds var() chains during resolution.
const maxDepth = 16

// Category groups tokens the way the stylesheet is laid out.
type Category string

const (
	Color    Category = "color"
	FontSize Category = "font-size"
	Shadow   Category = "shadow"
	Spacing  Category = "space"
	Radius   Category = "radius"
	Duration Category = "duration"
)

// Token is a single name/value pair. Name carries no leading dashes.
type Token struct {
	Name     string
	Value    string
	Category Category
}

// CustomProperty returns the CSS custom property name, e.g. --color-primary.
func (t Token) CustomProperty() string {
	return "--" + t.Name
}

// Set is an ordered, read-only collection of tokens.
type Set struct {
	tokens []Token
	index  map[string]int
}

func newSet(tokens []Token) *Set {
	s := &Set{tokens: tokens, index: make(map[string]int, len(tokens))}
	for i, t := range tokens {
		s.index[t.Name] = i
	}
	return s
}

// Default returns the site's token set.
func Default() *Set {
	return newSet(defaultTokens())
}

// Len returns the number of tokens.
func (s *Set) Len() int { return len(s.tokens) }

// Tokens returns a copy of the tokens in declaration order.
func (s *Set) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Names returns the token names in declaration order.
func (s *Set) Names() []string {
	out := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		out[i] = t.Name
	}
	return out
}

// ByCategory returns the tokens of one category in declaration order.
func (s *Set) ByCategory(c Category) []Token {
	var out []Token
	for _, t := range s.tokens {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Lookup returns the declared value of a token. A leading "--" is accepted.
func (s *Set) Lookup(name string) (string, bool) {
	i, ok := s.index[strings.TrimPrefix(name, "--")]
	if !ok {
		return "", false
	}
	return s.tokens[i].Value, true
}

// Resolve returns the computed value of a token, substituting every var()
// reference it contains.
func (s *Set) Resolve(name string) (string, error) {
	return s.resolve(strings.TrimPrefix(name, "--"), 0)
}

func (s *Set) resolve(name string, depth int) (string, error) {
	if depth > maxDepth {
		return "", fmt.Errorf("%w at %q", ErrCycle, name)
	}
	raw, ok := s.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, name)
	}
	v, err := s.expand(raw, depth)
	if err != nil {
		return "", err
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyValue, name)
	}
	return v, nil
}

// expand replaces each var(--name[, fallback]) in value.
func (s *Set) expand(value string, depth int) (string, error) {
	var b strings.Builder
	for {
		start := strings.Index(value, "var(")
		if start < 0 {
			b.WriteString(value)
			return b.String(), nil
		}
		end := matchParen(value, start+len("var"))
		if end < 0 {
			return "", fmt.Errorf("unbalanced var() in %q", value)
		}
		b.WriteString(value[:start])

		ref, fallback, hasFallback := strings.Cut(value[start+len("var("):end], ",")
		ref = strings.TrimPrefix(strings.TrimSpace(ref), "--")
		resolved, err := s.resolve(ref, depth+1)
		switch {
		case err == nil:
			b.WriteString(resolved)
		case errors.Is(err, ErrUnknownToken) && hasFallback:
			fb, ferr := s.expand(strings.TrimSpace(fallback), depth+1)
			if ferr != nil {
				return "", ferr
			}
			b.WriteString(fb)
		default:
			return "", err
		}
		value = value[end+1:]
	}
}

// matchParen returns the index of the parenthesis closing the one at open.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Stylesheet renders the set as a :root block of custom properties.
func (s *Set) Stylesheet() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, t := range s.tokens {
		fmt.Fprintf(&b, "  %s: %s;\n", t.CustomProperty(), t.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// WithOverrides returns a new set with the given values replaced. Overrides
// may only touch existing tokens, and every vocabulary token must still
// resolve afterwards.
func (s *Set) WithOverrides(overrides map[string]string) (*Set, error) {
	tokens := s.Tokens()
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		i, ok := s.index[strings.TrimPrefix(name, "--")]
		if !ok {
			return nil, fmt.Errorf("override %q: %w", name, ErrUnknownToken)
		}
		v := strings.TrimSpace(overrides[name])
		if v == "" {
			return nil, fmt.Errorf("override %q: %w", name, ErrEmptyValue)
		}
		if tokens[i].Category == FontSize {
			if _, err := ParseFluid(v); err != nil {
				return nil, fmt.Errorf("override %q: %w", name, err)
			}
		}
		tokens[i].Value = v
	}
	set := newSet(tokens)
	for _, name := range Vocabulary {
		if _, err := set.Resolve(name); err != nil {
			return nil, fmt.Errorf("apply overrides: %w", err)
		}
	}
	return set, nil
}

// LoadOverrides reads a yaml file mapping token names to values.
func LoadOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token overrides: %w", err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse token overrides: %w", err)
	}
	return overrides, nil
}

// Load returns the default set, with the overrides in path applied when path
// is not empty.
func Load(path string) (*Set, error) {
	set := Default()
	if path == "" {
		return set, nil
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return set.WithOverrides(overrides)
}
