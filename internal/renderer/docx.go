package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

const (
	fontName = "Times New Roman"
	fontSize = 13

	timestampSize  = 11
	timestampColor = "666666"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reItem     = regexp.MustCompile(`^(\d+)\.\s+\[([^\]]*)\]\s*(.*)$`)
)

// Docx writes the markdown report as a Word document at path.
func Docx(res model.AnalysisResult, path string) error {
	if err := markdownToDocx(Markdown(res), path); err != nil {
		return fmt.Errorf("write docx %s: %w", path, err)
	}
	return nil
}

// markdownToDocx converts the subset of markdown the report uses
// (headings, bullets, numbered items, bold runs) to a styled document.
// Numbered "N. [timestamp] content" lines get the timestamp in its own gray run.
func markdownToDocx(markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if item, ok := parseReportItem(trimmed); ok {
			addReportItem(doc.AddParagraph(""), item)
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

// reportItem is one numbered "N. [timestamp] content" line of the report.
type reportItem struct {
	number    string
	timestamp string
	content   string
}

func parseReportItem(line string) (reportItem, bool) {
	m := reItem.FindStringSubmatch(line)
	if m == nil {
		return reportItem{}, false
	}
	return reportItem{number: m[1], timestamp: m[2], content: m[3]}, true
}

func addReportItem(p *docx.Paragraph, item reportItem) {
	p.AddText(item.number+". ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
	p.AddText("["+item.timestamp+"] ").Font(fontName).Size(timestampSize).Color(timestampColor)
	if item.content != "" {
		addRichText(p, item.content)
	}
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
