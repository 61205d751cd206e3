package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mockmate/mockmate/internal/evaluate"
	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/llm"
	prac "github.com/mockmate/mockmate/internal/practice"
	"github.com/mockmate/mockmate/internal/router"
	"github.com/mockmate/mockmate/internal/screen"
	"github.com/mockmate/mockmate/internal/screens/results"
	"github.com/mockmate/mockmate/internal/ui/components"
	"github.com/mockmate/mockmate/internal/ui/layout"
)

const evalTickInterval = 250 * time.Millisecond

// PracticeScreen runs a single interview: it shows questions, collects
// answers, and displays feedback after each evaluation.
type PracticeScreen struct {
	run       *prac.Run
	evaluator *evaluate.Service
	tracker   *llm.UsageTracker
	home      func() screen.Screen

	answer     components.TextArea
	lastResult interview.Result

	evaluating      bool
	evalTicks       int
	showFeedback    bool
	showQuitConfirm bool
	warnMsg         string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New starts a fresh run with the given settings. home builds a fresh
// settings screen; the results screen resets the app there when the
// user wants another round.
func New(evaluator *evaluate.Service, settings interview.Settings, tracker *llm.UsageTracker, home func() screen.Screen) *PracticeScreen {
	return &PracticeScreen{
		run:       prac.NewRun(settings),
		evaluator: evaluator,
		tracker:   tracker,
		home:      home,
		answer:    components.NewTextArea("Type your answer here..."),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.answer.Focus()
}

func (s *PracticeScreen) Title() string {
	return "Interview"
}

func (s *PracticeScreen) Status() string {
	n := s.run.Asked + 1
	if s.run.CurrentQuestion == "" {
		n = s.run.Asked
	}
	return fmt.Sprintf("Q %d/%d", n, s.run.Settings.NumQuestions)
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.evaluating {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+K", Description: "Skip"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		return s.handleEvaluated(msg)

	case evalTickMsg:
		if s.evaluating {
			s.evalTicks++
			return s, evalTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward remaining messages (cursor blinks) to the editor.
	if !s.evaluating && !s.showQuitConfirm && !s.showFeedback {
		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Quit confirmation dialog.
	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
			return s, s.answer.Focus()
		}
		return s, nil
	}

	// Feedback overlay — any key moves on.
	if s.showFeedback {
		return s.dismissFeedback()
	}

	// Evaluation in flight — keyboard is disabled until the verdict lands.
	if s.evaluating {
		return s, nil
	}

	switch key {
	case "esc":
		s.showQuitConfirm = true
		s.answer.Blur()
		return s, nil
	case "ctrl+s":
		return s.submit()
	case "ctrl+k":
		return s.skip()
	}

	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)
	if s.warnMsg != "" && strings.TrimSpace(s.answer.Value()) != "" {
		s.warnMsg = ""
	}
	return s, cmd
}

// submit kicks off an async evaluation of the current answer.
func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	answer := s.answer.Value()
	if strings.TrimSpace(answer) == "" {
		s.warnMsg = "Please write an answer first."
		return s, nil
	}

	s.warnMsg = ""
	s.evaluating = true
	s.evalTicks = 0
	s.answer.Blur()

	return s, tea.Batch(s.evaluateCmd(answer), evalTick())
}

// evaluateCmd runs the evaluator off the UI loop.
func (s *PracticeScreen) evaluateCmd(answer string) tea.Cmd {
	question := s.run.CurrentQuestion
	mode := s.run.Settings.Mode
	evaluator := s.evaluator

	return func() tea.Msg {
		feedback := evaluator.Evaluate(context.Background(), answer, question, mode)
		return evaluatedMsg{
			answer:   answer,
			feedback: feedback,
			score:    evaluate.ExtractScore(feedback),
		}
	}
}

func (s *PracticeScreen) handleEvaluated(msg evaluatedMsg) (screen.Screen, tea.Cmd) {
	s.evaluating = false

	if err := s.run.Submit(msg.answer, msg.feedback, msg.score); err != nil {
		return s, nil
	}
	if n := len(s.run.Results); n > 0 {
		s.lastResult = s.run.Results[n-1]
	}

	s.showFeedback = true
	return s, nil
}

// dismissFeedback advances past the feedback overlay.
func (s *PracticeScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	s.showFeedback = false

	switch s.run.State() {
	case prac.StateComplete:
		return s, s.finishCmd()
	case prac.StateAsking:
		s.answer.Reset()
		return s, s.answer.Focus()
	default:
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
}

// skip moves past the current question without recording an answer.
func (s *PracticeScreen) skip() (screen.Screen, tea.Cmd) {
	s.warnMsg = ""
	s.run.Skip()

	switch s.run.State() {
	case prac.StateComplete:
		return s, s.finishCmd()
	case prac.StateAsking:
		s.answer.Reset()
		return s, s.answer.Focus()
	default:
		// Every question was skipped; there is nothing to review.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
}

// finishCmd swaps this screen for the results view.
func (s *PracticeScreen) finishCmd() tea.Cmd {
	rs := results.New(s.run, s.tracker, s.home)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: rs}
	}
}

// evalTick schedules the next animation frame for the evaluating indicator.
func evalTick() tea.Cmd {
	return tea.Tick(evalTickInterval, func(t time.Time) tea.Msg {
		return evalTickMsg(t)
	})
}
