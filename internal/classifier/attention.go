package classifier

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

const (
	minLevel          = 1
	maxLevel          = 5
	highAttentionFrom = 3
	maxFocusAreas     = 10
	minFocusWordLen   = 5
)

type recommendationRule struct {
	match string
	rec   model.Recommendation
}

var recommendationRules = []recommendationRule{
	{
		match: "technical",
		rec: model.Recommendation{
			Strategy:    "Use pomodoro technique (25min focus, 5min break)",
			Tools:       "Screen recording app, website blockers",
			Environment: "Quiet workspace, noise-cancelling headphones",
		},
	},
	{
		match: "planning",
		rec: model.Recommendation{
			Strategy:    "Break into 15-minute focused work sessions",
			Tools:       "Visual planning board, mind mapping software",
			Environment: "Meeting-free zones, structured task lists",
		},
	},
	{
		match: "learning",
		rec: model.Recommendation{
			Strategy:    "Use multi-modal learning (video + audio)",
			Tools:       "Interactive note-taking, spaced repetition apps",
			Environment: "Adaptive learning platforms with speed control",
		},
	},
}

// AttentionScore rates how demanding a piece of text is, from 0 to 5.
// Length contributes up to 2 points (one per 50 words), each complexity
// indicator one more.
func AttentionScore(text string) float64 {
	words := len(strings.Fields(text))
	score := math.Min(float64(words)/50, 2)

	lower := strings.ToLower(text)
	for _, ind := range complexityIndicators {
		if strings.Contains(lower, ind) {
			score++
		}
	}
	return math.Min(score, maxLevel)
}

// AttentionLevel buckets a score into levels 1..5.
func AttentionLevel(text string) int {
	level := int(math.Floor(AttentionScore(text)))
	return max(minLevel, min(level, maxLevel))
}

// Attention builds the attention profile of a transcript.
func Attention(segments []model.Segment) model.AttentionProfile {
	p := model.AttentionProfile{
		OverallLevel:    minLevel,
		Distribution:    map[int]int{},
		TotalSegments:   len(segments),
		FocusAreas:      []string{},
		Recommendations: []model.Recommendation{},
	}
	if len(segments) == 0 {
		return p
	}

	var high []model.Segment
	for _, seg := range segments {
		level := AttentionLevel(seg.Text)
		p.Distribution[level]++
		p.TotalWords += len(strings.Fields(seg.Text))
		if level >= highAttentionFrom {
			high = append(high, seg)
		} else {
			p.LowAttention++
		}
	}
	p.HighAttention = len(high)
	p.OverallLevel = dominantLevel(p.Distribution)
	p.FocusAreas = focusAreas(high)
	p.Recommendations = recommend(p.FocusAreas)

	return p
}

// dominantLevel returns the most frequent level, preferring the lower one on ties.
func dominantLevel(dist map[int]int) int {
	best, bestCount := minLevel, -1
	for level := minLevel; level <= maxLevel; level++ {
		if dist[level] > bestCount {
			best, bestCount = level, dist[level]
		}
	}
	return best
}

func focusAreas(segments []model.Segment) []string {
	freq := map[string]int{}
	for _, seg := range segments {
		words := strings.FieldsFunc(strings.ToLower(seg.Text), func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		for _, w := range words {
			if len([]rune(w)) >= minFocusWordLen {
				freq[w]++
			}
		}
	}

	areas := make([]string, 0, len(freq))
	for w := range freq {
		areas = append(areas, w)
	}
	sort.Slice(areas, func(i, j int) bool {
		if freq[areas[i]] != freq[areas[j]] {
			return freq[areas[i]] > freq[areas[j]]
		}
		return areas[i] < areas[j]
	})

	if len(areas) > maxFocusAreas {
		areas = areas[:maxFocusAreas]
	}
	return areas
}

func recommend(areas []string) []model.Recommendation {
	recs := []model.Recommendation{}
	for _, area := range areas {
		for _, rule := range recommendationRules {
			if strings.Contains(area, rule.match) {
				rec := rule.rec
				rec.Area = area
				recs = append(recs, rec)
				break
			}
		}
	}
	return recs
}
