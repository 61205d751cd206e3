// Package question selects interview questions from fixed per-mode
// template cycles.
package question

import (
	"fmt"
	"strings"

	"github.com/mockmate/mockmate/internal/interview"
)

// CycleLength is the number of distinct templates per mode. Runs longer
// than this repeat questions from the top of the cycle.
const CycleLength = 5

// Generate returns the question text for position askCount within a run.
// Selection cycles through a fixed list of five templates per mode, so
// askCount and askCount+CycleLength yield the same question. role is
// recorded on the run but does not influence selection.
//
// When domain is non-empty and the rendered question does not already
// contain the literal substring "domain" (case-sensitive), a
// " (Related to <domain>)" suffix is appended. The substring check is
// part of the contract: it matches the rendered text, so interpolated
// questions are suffixed too unless the domain value itself contains
// the word "domain".
func Generate(role interview.Role, domain string, mode interview.Mode, askCount int) string {
	if askCount < 0 {
		askCount = 0
	}
	_ = role

	templates := templatesFor(domain, mode)
	q := templates[askCount%CycleLength]

	if domain != "" && !strings.Contains(q, "domain") {
		q += fmt.Sprintf(" (Related to %s)", domain)
	}

	return q
}

// templatesFor returns the five-slot cycle for mode. Technical slots 0-3
// switch phrasing on whether a domain was provided; slot 4 is fixed.
func templatesFor(domain string, mode interview.Mode) [CycleLength]string {
	switch mode {
	case interview.ModeBehavioral:
		return [CycleLength]string{
			"Tell me about yourself.",
			"What's your greatest professional strength?",
			"Why do you want this job?",
			"How do you handle stress?",
			"Describe your ideal work environment.",
		}
	case interview.ModeSystemDesign:
		return [CycleLength]string{
			"How would you design a simple URL shortener?",
			"Explain how you would build a basic chat application.",
			"How would you design a simple file storage system?",
			"Describe a basic e-commerce checkout flow.",
			"How would you approach designing a simple API?",
		}
	default: // Technical
		if domain == "" {
			return [CycleLength]string{
				"What programming languages do you know best?",
				"What's your favorite tech tool and why?",
				"What's your debugging process?",
				"How do you keep your technical skills updated?",
				"Tell me about your most recent technical project.",
			}
		}
		return [CycleLength]string{
			fmt.Sprintf("What is your experience with %s?", domain),
			fmt.Sprintf("Describe a simple %s project you've worked on.", domain),
			fmt.Sprintf("How would you explain %s to a beginner?", domain),
			fmt.Sprintf("What interests you about %s?", domain),
			"Tell me about your most recent technical project.",
		}
	}
}
