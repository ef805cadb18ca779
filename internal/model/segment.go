package model

import "time"

// Segment is one parsed subtitle block. Timestamp is the block's second line
// kept verbatim; Text is the content lines joined with a single space.
type Segment struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// ClassifiedItem is a segment that matched a keyword rule.
type ClassifiedItem struct {
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}

// Item returns the classified view of the segment.
func (s Segment) Item() ClassifiedItem {
	return ClassifiedItem{Timestamp: s.Timestamp, Content: s.Text}
}

// AnalysisResult is the aggregate produced by one run.
type AnalysisResult struct {
	TotalSegments   int               `json:"total_segments"`
	KeyTopics       []ClassifiedItem  `json:"key_topics"`
	ActionableItems []ClassifiedItem  `json:"actionable_items"`
	GeneratedAt     time.Time         `json:"analysis_timestamp"`
	Attention       *AttentionProfile `json:"attention_profile,omitempty"`
}

// AttentionProfile estimates how demanding the transcript is to follow.
type AttentionProfile struct {
	OverallLevel    int              `json:"overall_level"`
	Distribution    map[int]int      `json:"distribution"`
	TotalSegments   int              `json:"total_segments"`
	HighAttention   int              `json:"high_attention_segments"`
	LowAttention    int              `json:"low_attention_segments"`
	TotalWords      int              `json:"total_words"`
	FocusAreas      []string         `json:"focus_areas"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendation pairs a focus area with a coping strategy.
type Recommendation struct {
	Area        string `json:"area"`
	Strategy    string `json:"strategy"`
	Tools       string `json:"tools"`
	Environment string `json:"environment"`
}
