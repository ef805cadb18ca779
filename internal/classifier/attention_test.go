package classifier

import (
	"strings"
	"testing"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

func TestAttentionLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"short plain text", "hello there", 1},
		{"one indicator", "a complex idea", 1},
		{"two indicators", "complex and technical", 2},
		{"all indicators", "complex technical abstract rapid", 4},
		{"long and dense", strings.Repeat("word ", 100) + "complex technical abstract rapid", 5},
		{"case insensitive", "COMPLEX TECHNICAL ABSTRACT", 3},
		{"empty", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttentionLevel(tt.text); got != tt.want {
				t.Errorf("AttentionLevel(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAttentionScoreCapped(t *testing.T) {
	text := strings.Repeat("complex technical abstract rapid ", 200)
	if got := AttentionScore(text); got != 5 {
		t.Errorf("AttentionScore() = %v, want 5", got)
	}
}

func TestAttention(t *testing.T) {
	segments := []model.Segment{
		{Timestamp: "1", Text: "welcome everyone"},
		{Timestamp: "2", Text: "this technical planning step is complex and abstract"},
		{Timestamp: "3", Text: "technical learning is complex, abstract and rapid"},
		{Timestamp: "4", Text: "thanks"},
	}

	p := Attention(segments)

	if p.TotalSegments != 4 {
		t.Errorf("TotalSegments = %d, want 4", p.TotalSegments)
	}
	if p.HighAttention != 2 || p.LowAttention != 2 {
		t.Errorf("high/low = %d/%d, want 2/2", p.HighAttention, p.LowAttention)
	}
	if p.OverallLevel != 1 {
		t.Errorf("OverallLevel = %d, want 1", p.OverallLevel)
	}
	if p.Distribution[1] != 2 || p.Distribution[3] != 1 || p.Distribution[4] != 1 {
		t.Errorf("Distribution = %v", p.Distribution)
	}
	if p.TotalWords != 18 {
		t.Errorf("TotalWords = %d, want 18", p.TotalWords)
	}

	wantFocus := []string{"abstract", "complex", "technical", "learning", "planning", "rapid"}
	if strings.Join(p.FocusAreas, ",") != strings.Join(wantFocus, ",") {
		t.Errorf("FocusAreas = %v, want %v", p.FocusAreas, wantFocus)
	}

	if len(p.Recommendations) != 3 {
		t.Fatalf("len(Recommendations) = %d, want 3", len(p.Recommendations))
	}
	if p.Recommendations[0].Area != "technical" {
		t.Errorf("Recommendations[0].Area = %q, want technical", p.Recommendations[0].Area)
	}
	if p.Recommendations[1].Area != "learning" || p.Recommendations[2].Area != "planning" {
		t.Errorf("Recommendations order = %+v", p.Recommendations)
	}
}

func TestAttentionEmpty(t *testing.T) {
	p := Attention(nil)
	if p.OverallLevel != 1 {
		t.Errorf("OverallLevel = %d, want 1", p.OverallLevel)
	}
	if len(p.Distribution) != 0 {
		t.Errorf("Distribution = %v, want empty", p.Distribution)
	}
	if p.FocusAreas == nil || p.Recommendations == nil {
		t.Error("lists must be non-nil")
	}
}
