package classifier

import (
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

// Analyze classifies segments and aggregates them into a result.
// The attention profile is only computed for model.ProfileAttention.
func Analyze(segments []model.Segment, profile model.Profile, now time.Time) model.AnalysisResult {
	res := model.AnalysisResult{
		TotalSegments:   len(segments),
		KeyTopics:       []model.ClassifiedItem{},
		ActionableItems: []model.ClassifiedItem{},
		GeneratedAt:     now,
	}

	for _, seg := range segments {
		lower := strings.ToLower(seg.Text)
		if len(res.ActionableItems) < maxActionableItems && containsAny(lower, actionKeywords) {
			res.ActionableItems = append(res.ActionableItems, seg.Item())
		}
		if len(res.KeyTopics) < maxKeyTopics && containsAny(lower, topicKeywords) {
			res.KeyTopics = append(res.KeyTopics, seg.Item())
		}
	}

	if profile == model.ProfileAttention {
		p := Attention(segments)
		res.Attention = &p
	}

	return res
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
