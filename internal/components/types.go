// Package components holds the typed property sets and view models behind the
// site's templates. The option constants declared here are the complete set a
// template may ask for.
package components

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/Zachkp/folio/internal/util"
)

var ErrUnknownOption = errors.New("unknown component option")

type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
	VariantGhost     Variant = "ghost"
)

type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

type Padding string

const (
	PaddingNone   Padding = "none"
	PaddingSmall  Padding = "sm"
	PaddingMedium Padding = "md"
	PaddingLarge  Padding = "lg"
)

var variantClasses = map[Variant]string{
	VariantPrimary:   "btn bg-primary text-background border-primary",
	VariantSecondary: "btn bg-secondary text-background border-secondary",
	VariantOutline:   "btn bg-background text-primary border-primary",
	VariantGhost:     "btn text-text border-background",
}

var sizeClasses = map[Size]string{
	SizeSmall:  "px-3 py-1 text-small rounded-sm",
	SizeMedium: "px-4 py-2 text-body rounded-md",
	SizeLarge:  "px-6 py-3 text-h3 rounded-lg",
}

var paddingClasses = map[Padding]string{
	PaddingNone:   "",
	PaddingSmall:  "p-3",
	PaddingMedium: "p-4 md:p-6",
	PaddingLarge:  "p-6 md:p-8",
}

// ARIA is the accessibility attribute set shared by interactive components.
type ARIA struct {
	Label    string
	Expanded *bool
	Controls string
	Hidden   bool
}

// Attrs renders the non-empty attributes, escaped, for use inside a tag.
func (a ARIA) Attrs() template.HTMLAttr {
	var parts []string
	if a.Label != "" {
		parts = append(parts, `aria-label="`+template.HTMLEscapeString(a.Label)+`"`)
	}
	if a.Expanded != nil {
		parts = append(parts, `aria-expanded="`+strconv.FormatBool(*a.Expanded)+`"`)
	}
	if a.Controls != "" {
		parts = append(parts, `aria-controls="`+template.HTMLEscapeString(a.Controls)+`"`)
	}
	if a.Hidden {
		parts = append(parts, `aria-hidden="true"`)
	}
	return template.HTMLAttr(strings.Join(parts, " "))
}

// ButtonProps configures a button or button-styled link.
type ButtonProps struct {
	Variant Variant
	Size    Size
	ARIA    ARIA
	Class   string
}

// Classes returns the utility classes for the props. Empty variant and size
// fall back to primary and md.
func (p ButtonProps) Classes() (string, error) {
	v := p.Variant
	if v == "" {
		v = VariantPrimary
	}
	s := p.Size
	if s == "" {
		s = SizeMedium
	}
	vc, ok := variantClasses[v]
	if !ok {
		return "", fmt.Errorf("%w: variant %q", ErrUnknownOption, p.Variant)
	}
	sc, ok := sizeClasses[s]
	if !ok {
		return "", fmt.Errorf("%w: size %q", ErrUnknownOption, p.Size)
	}
	return util.CN(vc, sc, "duration-fast", p.Class), nil
}

// CardProps configures a card container.
type CardProps struct {
	Padding Padding
	Class   string
}

// Classes returns the utility classes for the card.
func (p CardProps) Classes() (string, error) {
	pad := p.Padding
	if pad == "" {
		pad = PaddingMedium
	}
	pc, ok := paddingClasses[pad]
	if !ok {
		return "", fmt.Errorf("%w: padding %q", ErrUnknownOption, p.Padding)
	}
	return util.CN("card bg-background border-border rounded-lg shadow-card", pc, p.Class), nil
}

// Button parses string options the way templates pass them.
func Button(variant, size string) (string, error) {
	return ButtonProps{Variant: Variant(variant), Size: Size(size)}.Classes()
}

// Card parses a padding option the way templates pass it.
func Card(padding string) (string, error) {
	return CardProps{Padding: Padding(padding)}.Classes()
}

// AllClasses lists every class the option tables can emit.
func AllClasses() []string {
	var out []string
	for _, c := range variantClasses {
		out = append(out, strings.Fields(c)...)
	}
	for _, c := range sizeClasses {
		out = append(out, strings.Fields(c)...)
	}
	for _, c := range paddingClasses {
		out = append(out, strings.Fields(c)...)
	}
	out = append(out, strings.Fields("card bg-background border-border rounded-lg shadow-card duration-fast")...)
	return out
}
