package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

// minBlockLines is index + timestamp + at least one content line.
const minBlockLines = 3

// Parse splits subtitle content into segments in file order.
// Blocks with fewer than three non-empty lines are dropped.
func Parse(content string) []model.Segment {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var segments []model.Segment
	var block []string

	flush := func() {
		if seg, ok := parseBlock(block); ok {
			segments = append(segments, seg)
		}
		block = block[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		block = append(block, trimmed)
	}
	flush()

	return segments
}

func parseBlock(lines []string) (model.Segment, bool) {
	if len(lines) < minBlockLines {
		return model.Segment{}, false
	}
	// lines[0] is the cue index
	return model.Segment{
		Timestamp: lines[1],
		Text:      norm.NFC.String(strings.Join(lines[2:], " ")),
	}, true
}
