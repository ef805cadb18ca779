package renderer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

const reportTitle = "Transcript Summary"

// staticRecommendations close every report.
var staticRecommendations = []string{
	"Skim the key topics first to get the big picture",
	"Work through the action items one at a time",
	"Take a short break between sections to stay focused",
}

// Markdown renders the report as markdown. Empty sections are omitted.
func Markdown(res model.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", reportTitle)
	fmt.Fprintf(&b, "%s\n", countsLine(res))

	writeItems(&b, "Key Topics", res.KeyTopics)
	writeItems(&b, "Action Items", res.ActionableItems)

	if res.Attention != nil {
		writeAttention(&b, res.Attention)
	}

	b.WriteString("\n## Recommendations\n\n")
	for _, rec := range staticRecommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

func countsLine(res model.AnalysisResult) string {
	return fmt.Sprintf("**Segments:** %d | **Key topics:** %d | **Action items:** %d",
		res.TotalSegments, len(res.KeyTopics), len(res.ActionableItems))
}

func writeItems(b *strings.Builder, heading string, items []model.ClassifiedItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for i, item := range items {
		fmt.Fprintf(b, "%d. [%s] %s\n", i+1, item.Timestamp, item.Content)
	}
}

func writeAttention(b *strings.Builder, p *model.AttentionProfile) {
	b.WriteString("\n## Attention Profile\n\n")
	fmt.Fprintf(b, "- Overall level: %d/5\n", p.OverallLevel)
	fmt.Fprintf(b, "- High attention segments: %d\n", p.HighAttention)
	fmt.Fprintf(b, "- Low attention segments: %d\n", p.LowAttention)
	fmt.Fprintf(b, "- Total words: %d\n", p.TotalWords)
	if len(p.FocusAreas) > 0 {
		fmt.Fprintf(b, "- Focus areas: %s\n", strings.Join(p.FocusAreas, ", "))
	}

	if len(p.Recommendations) > 0 {
		b.WriteString("\n### Strategies\n\n")
		for _, rec := range p.Recommendations {
			fmt.Fprintf(b, "- **%s**: %s (tools: %s; environment: %s)\n",
				rec.Area, rec.Strategy, rec.Tools, rec.Environment)
		}
	}

	fmt.Fprintf(b, "\n%s\n", loadVerdict(p))
}

// loadVerdict flags transcripts with more than three demanding segments.
func loadVerdict(p *model.AttentionProfile) string {
	if p.HighAttention > 3 {
		return "High cognitive load detected - consider breaking into smaller sessions"
	}
	return "Manageable cognitive load - proceed with focused work"
}
