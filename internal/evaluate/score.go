package evaluate

import (
	"regexp"
	"strconv"
)

// DefaultScore is used when feedback contains no recognizable score.
// Same magnitude as the score in FallbackFeedback, so failed evaluations
// and unparseable feedback land on the same value.
const DefaultScore = 7.0

// scorePattern matches "Score:" followed by a number and either "/10" or
// "out of 10", case-insensitively, anywhere in the text.
var scorePattern = regexp.MustCompile(`(?i)score:\s*(\d+(?:\.\d+)?)\s*(?:/|\s*out\s*of\s*)\s*10`)

// ExtractScore parses the numeric score out of feedback text.
// Returns DefaultScore when no score pattern is found.
func ExtractScore(feedback string) float64 {
	m := scorePattern.FindStringSubmatch(feedback)
	if m == nil {
		return DefaultScore
	}

	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DefaultScore
	}
	return score
}
