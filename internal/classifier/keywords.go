package classifier

const (
	maxKeyTopics       = 5
	maxActionableItems = 10
)

var (
	actionKeywords = []string{"should", "must", "need to", "important", "remember"}
	topicKeywords  = []string{"first", "second", "finally", "conclusion", "summary"}
)

// complexityIndicators raise a segment's attention score by one each.
var complexityIndicators = []string{"complex", "technical", "abstract", "rapid"}
