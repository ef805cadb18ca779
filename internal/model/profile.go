package model

import "fmt"

// Profile selects which classification configuration a run uses.
type Profile string

const (
	ProfileTopics    Profile = "topics"
	ProfileAttention Profile = "attention"
)

// ParseProfile validates a profile name. Empty means ProfileTopics.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case "", ProfileTopics:
		return ProfileTopics, nil
	case ProfileAttention:
		return ProfileAttention, nil
	}
	return "", fmt.Errorf("unknown profile %q (want topics or attention)", s)
}

// Format is an output representation of an AnalysisResult.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatDocx     Format = "docx"
)

// ParseFormat validates a format name. Empty means FormatMarkdown.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatJSON, FormatText, FormatDocx:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want markdown, json, text or docx)", s)
}
