package classifier

import (
	"fmt"
	"testing"
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

var testNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func segs(texts ...string) []model.Segment {
	out := make([]model.Segment, len(texts))
	for i, t := range texts {
		out[i] = model.Segment{Timestamp: fmt.Sprintf("ts-%d", i+1), Text: t}
	}
	return out
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name        string
		segments    []model.Segment
		wantTotal   int
		wantTopics  int
		wantActions int
	}{
		{
			name:        "example transcript",
			segments:    segs("First we need to set up.", "Finally, a summary."),
			wantTotal:   2,
			wantTopics:  2,
			wantActions: 1,
		},
		{
			name:        "case insensitive",
			segments:    segs("SHOULD review this", "should review this"),
			wantTotal:   2,
			wantTopics:  0,
			wantActions: 2,
		},
		{
			name:        "no matches",
			segments:    segs("hello", "world"),
			wantTotal:   2,
			wantTopics:  0,
			wantActions: 0,
		},
		{
			name:        "empty input",
			segments:    nil,
			wantTotal:   0,
			wantTopics:  0,
			wantActions: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Analyze(tt.segments, model.ProfileTopics, testNow)
			if res.TotalSegments != tt.wantTotal {
				t.Errorf("TotalSegments = %d, want %d", res.TotalSegments, tt.wantTotal)
			}
			if len(res.KeyTopics) != tt.wantTopics {
				t.Errorf("len(KeyTopics) = %d, want %d", len(res.KeyTopics), tt.wantTopics)
			}
			if len(res.ActionableItems) != tt.wantActions {
				t.Errorf("len(ActionableItems) = %d, want %d", len(res.ActionableItems), tt.wantActions)
			}
			if res.KeyTopics == nil || res.ActionableItems == nil {
				t.Error("lists must be non-nil")
			}
			if res.Attention != nil {
				t.Error("Attention should be nil for the topics profile")
			}
			if !res.GeneratedAt.Equal(testNow) {
				t.Errorf("GeneratedAt = %v, want %v", res.GeneratedAt, testNow)
			}
		})
	}
}

func TestAnalyzeTruncation(t *testing.T) {
	var texts []string
	for i := 0; i < 30; i++ {
		texts = append(texts, fmt.Sprintf("first point %d, you must remember it", i))
	}
	res := Analyze(segs(texts...), model.ProfileTopics, testNow)

	if len(res.KeyTopics) != 5 {
		t.Errorf("len(KeyTopics) = %d, want 5", len(res.KeyTopics))
	}
	if len(res.ActionableItems) != 10 {
		t.Errorf("len(ActionableItems) = %d, want 10", len(res.ActionableItems))
	}
	// encounter order is preserved
	for i, item := range res.ActionableItems {
		want := fmt.Sprintf("ts-%d", i+1)
		if item.Timestamp != want {
			t.Errorf("ActionableItems[%d].Timestamp = %q, want %q", i, item.Timestamp, want)
		}
	}
}

func TestAnalyzeBothLists(t *testing.T) {
	res := Analyze(segs("In conclusion, it is important."), model.ProfileTopics, testNow)
	if len(res.KeyTopics) != 1 || len(res.ActionableItems) != 1 {
		t.Fatalf("got %d topics and %d actions, want 1 and 1", len(res.KeyTopics), len(res.ActionableItems))
	}
	want := model.ClassifiedItem{Timestamp: "ts-1", Content: "In conclusion, it is important."}
	if res.KeyTopics[0] != want || res.ActionableItems[0] != want {
		t.Errorf("items = %+v / %+v, want %+v", res.KeyTopics[0], res.ActionableItems[0], want)
	}
}

func TestAnalyzeAttentionProfile(t *testing.T) {
	res := Analyze(segs("hello"), model.ProfileAttention, testNow)
	if res.Attention == nil {
		t.Fatal("Attention is nil for the attention profile")
	}
	if res.Attention.TotalSegments != 1 {
		t.Errorf("Attention.TotalSegments = %d, want 1", res.Attention.TotalSegments)
	}
}
