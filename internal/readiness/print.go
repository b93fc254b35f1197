package readiness

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Print writes one line per result and a summary. Colors are only used when
// w is a terminal.
func Print(w io.Writer, r Report) {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true)
	styles := map[Level]lipgloss.Style{
		Pass: re.NewStyle().Foreground(lipgloss.Color("#a0f077")),
		Warn: re.NewStyle().Foreground(lipgloss.Color("#fcf75f")),
		Fail: re.NewStyle().Foreground(lipgloss.Color("#ff4d4d")).Bold(true),
	}
	icons := map[Level]string{Pass: "✓", Warn: "!", Fail: "✗"}
	dim := re.NewStyle().Foreground(lipgloss.Color("240"))

	fmt.Fprintln(w, title.Render("Deployment readiness"))
	fmt.Fprintln(w)
	for _, res := range r.Results {
		fmt.Fprintf(w, "%s %-28s %s\n",
			styles[res.Level].Render(icons[res.Level]),
			res.Check,
			dim.Render(res.Detail))
	}
	fmt.Fprintln(w)

	summary := fmt.Sprintf("%d passed, %d warnings, %d errors", r.Count(Pass), r.Count(Warn), r.Count(Fail))
	switch {
	case r.Failed():
		fmt.Fprintln(w, styles[Fail].Render("Not ready: "+summary))
	case r.Count(Warn) > 0:
		fmt.Fprintln(w, styles[Warn].Render("Ready with warnings: "+summary))
	default:
		fmt.Fprintln(w, styles[Pass].Render("Ready: "+summary))
	}
}
