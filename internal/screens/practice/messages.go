package practice

import "time"

// evaluatedMsg is sent when answer evaluation finishes. The feedback is
// always usable; provider failures surface as fallback text upstream.
type evaluatedMsg struct {
	answer   string
	feedback string
	score    float64
}

// evalTickMsg animates the evaluating indicator.
type evalTickMsg time.Time
