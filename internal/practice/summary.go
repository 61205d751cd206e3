package practice

// Summary holds the aggregate view shown when a run completes.
type Summary struct {
	TotalAsked   int
	Answered     int
	Skipped      int
	AverageScore float64
}

// BuildSummary computes the summary for a run. The average is the
// arithmetic mean of the submitted answers' scores, and 0 when there
// are none (unreachable from a complete run, but guarded).
func BuildSummary(r *Run) Summary {
	var total float64
	for _, res := range r.Results {
		total += res.Score
	}

	var avg float64
	if len(r.Results) > 0 {
		avg = total / float64(len(r.Results))
	}

	return Summary{
		TotalAsked:   r.Asked,
		Answered:     len(r.Results),
		Skipped:      r.Asked - len(r.Results),
		AverageScore: avg,
	}
}
