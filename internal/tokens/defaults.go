package tokens

// Vocabulary is the fixed list of tokens the templates and utility classes
// rely on. Every name here must resolve to a non-empty value.
var Vocabulary = []string{
	"color-primary", "color-primary-hover", "color-secondary", "color-accent",
	"color-background", "color-surface", "color-text", "color-text-muted",
	"color-border", "color-focus-ring", "color-shadow",
	"font-size-hero", "font-size-h1", "font-size-h2", "font-size-h3",
	"font-size-body", "font-size-small",
	"shadow-sm", "shadow-card", "shadow-lg",
	"space-1", "space-2", "space-3", "space-4", "space-6", "space-8", "space-12", "space-16",
	"radius-sm", "radius-md", "radius-lg", "radius-full",
	"duration-fast", "duration-normal", "duration-slow",
}

func defaultTokens() []Token {
	return []Token{
		{Name: "color-primary", Value: "#2563eb", Category: Color},
		{Name: "color-primary-hover", Value: "#1d4ed8", Category: Color},
		{Name: "color-secondary", Value: "#0f172a", Category: Color},
		{Name: "color-accent", Value: "#f59e0b", Category: Color},
		{Name: "color-background", Value: "#ffffff", Category: Color},
		{Name: "color-surface", Value: "#f8fafc", Category: Color},
		{Name: "color-text", Value: "var(--color-secondary)", Category: Color},
		{Name: "color-text-muted", Value: "#475569", Category: Color},
		{Name: "color-border", Value: "#e2e8f0", Category: Color},
		{Name: "color-focus-ring", Value: "var(--color-accent)", Category: Color},
		{Name: "color-shadow", Value: "rgb(15 23 42 / 0.12)", Category: Color},

		{Name: "font-size-hero", Value: FluidSize{Min: "2.5rem", Preferred: "5vw + 1rem", Max: "4.5rem"}.String(), Category: FontSize},
		{Name: "font-size-h1", Value: FluidSize{Min: "2rem", Preferred: "3.5vw + 1rem", Max: "3.25rem"}.String(), Category: FontSize},
		{Name: "font-size-h2", Value: FluidSize{Min: "1.5rem", Preferred: "2.5vw + 0.75rem", Max: "2.5rem"}.String(), Category: FontSize},
		{Name: "font-size-h3", Value: FluidSize{Min: "1.25rem", Preferred: "1.5vw + 0.75rem", Max: "1.75rem"}.String(), Category: FontSize},
		{Name: "font-size-body", Value: FluidSize{Min: "1rem", Preferred: "0.5vw + 0.875rem", Max: "1.125rem"}.String(), Category: FontSize},
		{Name: "font-size-small", Value: FluidSize{Min: "0.875rem", Preferred: "0.25vw + 0.8rem", Max: "0.95rem"}.String(), Category: FontSize},

		{Name: "shadow-sm", Value: "0 1px 2px var(--color-shadow)", Category: Shadow},
		{Name: "shadow-card", Value: "0 4px 12px var(--color-shadow)", Category: Shadow},
		{Name: "shadow-lg", Value: "0 12px 32px var(--color-shadow)", Category: Shadow},

		{Name: "space-1", Value: "0.25rem", Category: Spacing},
		{Name: "space-2", Value: "0.5rem", Category: Spacing},
		{Name: "space-3", Value: "0.75rem", Category: Spacing},
		{Name: "space-4", Value: "1rem", Category: Spacing},
		{Name: "space-6", Value: "1.5rem", Category: Spacing},
		{Name: "space-8", Value: "2rem", Category: Spacing},
		{Name: "space-12", Value: "3rem", Category: Spacing},
		{Name: "space-16", Value: "4rem", Category: Spacing},

		{Name: "radius-sm", Value: "0.25rem", Category: Radius},
		{Name: "radius-md", Value: "0.5rem", Category: Radius},
		{Name: "radius-lg", Value: "1rem", Category: Radius},
		{Name: "radius-full", Value: "9999px", Category: Radius},

		{Name: "duration-fast", Value: "150ms", Category: Duration},
		{Name: "duration-normal", Value: "250ms", Category: Duration},
		{Name: "duration-slow", Value: "400ms", Category: Duration},
	}
}
