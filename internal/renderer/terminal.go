package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

var (
	colorCyan   = lipgloss.Color("#00FFFF")
	colorGray   = lipgloss.Color("#666666")
	colorYellow = lipgloss.Color("#FFFF00")
	colorGreen  = lipgloss.Color("#00FF00")
	colorRed    = lipgloss.Color("#FF0000")
)

type terminalStyles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	counts    lipgloss.Style
	timestamp lipgloss.Style
	bullet    lipgloss.Style
	ok        lipgloss.Style
	warn      lipgloss.Style
}

func newTerminalStyles(r *lipgloss.Renderer) terminalStyles {
	return terminalStyles{
		title:     r.NewStyle().Bold(true).Foreground(colorCyan),
		header:    r.NewStyle().Bold(true).Foreground(colorCyan).MarginTop(1),
		counts:    r.NewStyle().Foreground(colorGray),
		timestamp: r.NewStyle().Foreground(colorGray),
		bullet:    r.NewStyle().Foreground(colorYellow),
		ok:        r.NewStyle().Foreground(colorGreen),
		warn:      r.NewStyle().Foreground(colorRed).Bold(true),
	}
}

// WriteTerminal renders the report for w. Colors are only emitted when w is
// a terminal, so redirecting to a file yields plain text.
func WriteTerminal(w io.Writer, res model.AnalysisResult) error {
	_, err := io.WriteString(w, Terminal(lipgloss.NewRenderer(w), res))
	return err
}

// Terminal renders the report with the color profile of r.
func Terminal(r *lipgloss.Renderer, res model.AnalysisResult) string {
	st := newTerminalStyles(r)
	var lines []string

	lines = append(lines, st.title.Render(reportTitle))
	lines = append(lines, st.counts.Render(fmt.Sprintf("Segments: %d | Key topics: %d | Action items: %d",
		res.TotalSegments, len(res.KeyTopics), len(res.ActionableItems))))

	lines = append(lines, st.items("Key Topics", res.KeyTopics)...)
	lines = append(lines, st.items("Action Items", res.ActionableItems)...)

	if p := res.Attention; p != nil {
		lines = append(lines, st.header.Render("Attention Profile"))
		lines = append(lines,
			fmt.Sprintf("  Overall level: %d/5", p.OverallLevel),
			fmt.Sprintf("  High/low attention segments: %d/%d", p.HighAttention, p.LowAttention),
			fmt.Sprintf("  Total words: %d", p.TotalWords),
		)
		if len(p.FocusAreas) > 0 {
			lines = append(lines, "  Focus areas: "+strings.Join(p.FocusAreas, ", "))
		}
		for _, rec := range p.Recommendations {
			lines = append(lines, fmt.Sprintf("  %s %s: %s", st.bullet.Render("•"), rec.Area, rec.Strategy))
		}
		if p.HighAttention > 3 {
			lines = append(lines, st.warn.Render("  "+loadVerdict(p)))
		} else {
			lines = append(lines, st.ok.Render("  "+loadVerdict(p)))
		}
	}

	lines = append(lines, st.header.Render("Recommendations"))
	for _, rec := range staticRecommendations {
		lines = append(lines, fmt.Sprintf("  %s %s", st.bullet.Render("•"), rec))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (st terminalStyles) items(heading string, items []model.ClassifiedItem) []string {
	if len(items) == 0 {
		return nil
	}
	lines := []string{st.header.Render(heading)}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("  %d. %s %s", i+1, st.timestamp.Render("["+item.Timestamp+"]"), item.Content))
	}
	return lines
}
