// Package practice tracks the state of one interview practice run.
package practice

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/question"
)

// State identifies where a run is in its lifecycle.
type State int

const (
	// StateIdle means no question is active and no results exist.
	StateIdle State = iota

	// StateAsking means a question is displayed and awaiting an answer.
	StateAsking

	// StateComplete means all questions were presented and at least one
	// answer was submitted.
	StateComplete
)

// ErrEmptyAnswer is returned by Submit when the answer is blank.
// The run is not modified; the caller shows a warning in place.
var ErrEmptyAnswer = errors.New("answer is empty")

// ErrNoActiveQuestion is returned by Submit when no question is awaiting
// an answer.
var ErrNoActiveQuestion = errors.New("no active question")

// Run is the mutable state of one practice run. It is pure bookkeeping:
// evaluation happens outside and its outcome is fed into Submit.
type Run struct {
	// ID identifies this run in logs.
	ID string

	// Settings are the choices the run was started with, frozen at start.
	Settings interview.Settings

	// CurrentQuestion is the question awaiting an answer. Empty before a
	// run starts, after the last question, and after a reset.
	CurrentQuestion string

	// Asked counts questions presented so far, answered or skipped.
	// Never exceeds Settings.NumQuestions.
	Asked int

	// Results holds one record per submitted answer, in presentation
	// order. Skips add nothing here.
	Results []interview.Result
}

// NewRun starts a run: counters zeroed, first question generated.
func NewRun(settings interview.Settings) *Run {
	return &Run{
		ID:              uuid.NewString(),
		Settings:        settings,
		CurrentQuestion: question.Generate(settings.Role, settings.Domain, settings.Mode, 0),
	}
}

// State derives the lifecycle position from the run's data.
// A run whose every question was skipped ends Idle, not Complete:
// completion requires at least one submitted answer.
func (r *Run) State() State {
	switch {
	case r.CurrentQuestion != "":
		return StateAsking
	case r.Asked >= r.Settings.NumQuestions && len(r.Results) > 0:
		return StateComplete
	default:
		return StateIdle
	}
}

// Submit records an evaluated answer for the current question and
// advances the run. Blank answers return ErrEmptyAnswer with no state
// change. feedback and score come from the evaluator; Submit itself
// never talks to the model.
func (r *Run) Submit(answer, feedback string, score float64) error {
	if r.CurrentQuestion == "" {
		return ErrNoActiveQuestion
	}
	if strings.TrimSpace(answer) == "" {
		return ErrEmptyAnswer
	}

	r.Results = append(r.Results, interview.Result{
		Question: r.CurrentQuestion,
		Answer:   answer,
		Feedback: feedback,
		Score:    score,
	})
	r.Asked++
	r.advance()

	return nil
}

// Skip advances past the current question without recording a result.
// A no-op when no question is active.
func (r *Run) Skip() {
	if r.CurrentQuestion == "" {
		return
	}

	r.Asked++
	r.advance()
}

// advance generates the next question or clears the current one when
// the run is out of questions.
func (r *Run) advance() {
	if r.Asked < r.Settings.NumQuestions {
		r.CurrentQuestion = question.Generate(r.Settings.Role, r.Settings.Domain, r.Settings.Mode, r.Asked)
	} else {
		r.CurrentQuestion = ""
	}
}

// Reset clears the run unconditionally, from any state.
func (r *Run) Reset() {
	r.CurrentQuestion = ""
	r.Asked = 0
	r.Results = nil
}
