package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCN(t *testing.T) {
	assert.Equal(t, "", CN())
	assert.Equal(t, "p-4 text-primary", CN("p-4", "", "text-primary"))
	assert.Equal(t, "p-4 rounded-lg shadow-card", CN("  p-4  rounded-lg ", "shadow-card p-4"))
}

func TestGetTechStackDisplay_Examples(t *testing.T) {
	got := GetTechStackDisplay([]string{}, 5)
	assert.Equal(t, []string{}, got.Visible)
	assert.Equal(t, 0, got.Remaining)

	got = GetTechStackDisplay(nil, 5)
	assert.Empty(t, got.Visible)
	assert.NotNil(t, got.Visible)
	assert.Equal(t, 0, got.Remaining)

	got = GetTechStackDisplay([]string{"React", "TS", "Node", "Mongo", "Express", "Tailwind", "Framer"}, 5)
	assert.Equal(t, []string{"React", "TS", "Node", "Mongo", "Express"}, got.Visible)
	assert.Equal(t, 2, got.Remaining)

	got = GetTechStackDisplay([]string{"Go", "HTMX"}, 5)
	assert.Equal(t, []string{"Go", "HTMX"}, got.Visible)
	assert.Equal(t, 0, got.Remaining)
}

func TestGetTechStackDisplay_DefaultLimit(t *testing.T) {
	stack := []string{"a", "b", "c", "d", "e", "f"}
	got := GetTechStackDisplay(stack, 0)
	assert.Len(t, got.Visible, DefaultMaxVisible)
	assert.Equal(t, 1, got.Remaining)
}

func TestGetTechStackDisplay_Invariants(t *testing.T) {
	names := []string{"Go", "Gin", "HTMX", "SQLite", "Tailwind", "Alpine", "Docker", "Fly", "Redis", "Postgres"}
	for n := 0; n <= len(names); n++ {
		for m := 1; m <= len(names)+2; m++ {
			stack := names[:n]
			got := GetTechStackDisplay(stack, m)
			require.Len(t, got.Visible, min(n, m), "n=%d m=%d", n, m)
			require.Equal(t, max(0, n-m), got.Remaining, "n=%d m=%d", n, m)
			assert.Equal(t, stack[:len(got.Visible)], got.Visible)
		}
	}
}

func TestGetTechStackDisplay_DoesNotAlias(t *testing.T) {
	stack := []string{"Go", "Gin"}
	got := GetTechStackDisplay(stack, 5)
	got.Visible[0] = "Rust"
	assert.Equal(t, "Go", stack[0])
}
