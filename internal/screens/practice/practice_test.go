package practice

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mockmate/mockmate/internal/evaluate"
	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/llm"
	"github.com/mockmate/mockmate/internal/router"
	"github.com/mockmate/mockmate/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

type stubHome struct{}

func (s *stubHome) Init() tea.Cmd                           { return nil }
func (s *stubHome) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubHome) View(int, int) string                    { return "Setup" }
func (s *stubHome) Title() string                           { return "Setup" }

func testScreen(numQuestions int, responses ...llm.MockResponse) *PracticeScreen {
	provider := llm.NewMockProvider(responses...)
	evaluator := evaluate.NewService(provider, evaluate.DefaultConfig())
	settings := interview.Settings{
		Role:         interview.RoleSoftwareEngineer,
		Mode:         interview.ModeBehavioral,
		NumQuestions: numQuestions,
	}
	home := func() screen.Screen { return &stubHome{} }
	return New(evaluator, settings, nil, home)
}

func TestPracticeScreen_Title(t *testing.T) {
	s := testScreen(2)
	if s.Title() != "Interview" {
		t.Errorf("Title = %q, want %q", s.Title(), "Interview")
	}
}

func TestPracticeScreen_Status(t *testing.T) {
	s := testScreen(3)
	if s.Status() != "Q 1/3" {
		t.Errorf("Status = %q, want %q", s.Status(), "Q 1/3")
	}
}

func TestPracticeScreen_SubmitEmptyAnswerWarns(t *testing.T) {
	s := testScreen(2)

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('s'))
	ps := scr.(*PracticeScreen)

	if ps.warnMsg != "Please write an answer first." {
		t.Errorf("warnMsg = %q, want the empty-answer warning", ps.warnMsg)
	}
	if ps.evaluating {
		t.Error("expected no evaluation for an empty answer")
	}

	view := ps.View(80, 18)
	if !strings.Contains(view, "Please write an answer first.") {
		t.Error("expected warning to appear in the view")
	}
}

func TestPracticeScreen_SubmitStartsEvaluation(t *testing.T) {
	s := testScreen(2, llm.MockResponse{Text: "Score: 9/10\nStrong answer."})
	s.answer.Model.SetValue("I led a migration project.")

	var scr screen.Screen = s
	scr, cmd := scr.Update(ctrlKey('s'))
	ps := scr.(*PracticeScreen)

	if !ps.evaluating {
		t.Error("expected evaluating state after submit")
	}
	if cmd == nil {
		t.Error("expected evaluation command after submit")
	}

	// Input is disabled while the evaluation is in flight.
	scr, _ = ps.Update(ctrlKey('k'))
	ps = scr.(*PracticeScreen)
	if ps.run.Asked != 0 {
		t.Errorf("Asked = %d, want 0 (skip ignored during evaluation)", ps.run.Asked)
	}
}

func TestPracticeScreen_EvaluatedAdvancesRun(t *testing.T) {
	s := testScreen(2, llm.MockResponse{Text: "Score: 9/10\nStrong answer."})

	msg := s.evaluateCmd("I led a migration project.")()
	em, ok := msg.(evaluatedMsg)
	if !ok {
		t.Fatalf("evaluateCmd message = %T, want evaluatedMsg", msg)
	}
	if em.feedback != "Score: 9/10\nStrong answer." {
		t.Errorf("feedback = %q", em.feedback)
	}
	if em.score != 9 {
		t.Errorf("score = %v, want 9", em.score)
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(em)
	ps := scr.(*PracticeScreen)

	if !ps.showFeedback {
		t.Error("expected feedback overlay after evaluation")
	}
	if ps.run.Asked != 1 {
		t.Errorf("Asked = %d, want 1", ps.run.Asked)
	}
	if len(ps.run.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(ps.run.Results))
	}
	if ps.run.Results[0].Score != 9 {
		t.Errorf("recorded score = %v, want 9", ps.run.Results[0].Score)
	}
}

func TestPracticeScreen_ProviderFailureUsesFallback(t *testing.T) {
	s := testScreen(1, llm.MockResponse{Err: &llm.ErrRateLimit{}})

	msg := s.evaluateCmd("an answer")()
	em, ok := msg.(evaluatedMsg)
	if !ok {
		t.Fatalf("evaluateCmd message = %T, want evaluatedMsg", msg)
	}

	if em.feedback != evaluate.FallbackFeedback {
		t.Errorf("feedback = %q, want fallback", em.feedback)
	}
	if em.score != evaluate.DefaultScore {
		t.Errorf("score = %v, want %v", em.score, evaluate.DefaultScore)
	}
}

func TestPracticeScreen_FeedbackDismissShowsNextQuestion(t *testing.T) {
	s := testScreen(2, llm.MockResponse{Text: "Score: 8/10\nGood."})
	s.answer.Model.SetValue("first answer")

	em := s.evaluateCmd(s.answer.Value())().(evaluatedMsg)
	var scr screen.Screen = s
	scr, _ = scr.Update(em)

	scr, _ = scr.Update(keyPress(' '))
	ps := scr.(*PracticeScreen)

	if ps.showFeedback {
		t.Error("expected feedback to be dismissed")
	}
	if ps.run.CurrentQuestion != "What's your greatest professional strength?" {
		t.Errorf("CurrentQuestion = %q, want second behavioral question", ps.run.CurrentQuestion)
	}
	if ps.answer.Value() != "" {
		t.Errorf("editor = %q, want cleared for the next question", ps.answer.Value())
	}
}

func TestPracticeScreen_LastAnswerLeadsToResults(t *testing.T) {
	s := testScreen(1, llm.MockResponse{Text: "Score: 10/10\nPerfect."})

	em := s.evaluateCmd("the only answer")().(evaluatedMsg)
	var scr screen.Screen = s
	scr, _ = scr.Update(em)

	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a navigation command after the last answer")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("navigation message = %T, want ReplaceScreenMsg", msg)
	}
	if rep.Screen.Title() != "Results" {
		t.Errorf("replacement screen title = %q, want %q", rep.Screen.Title(), "Results")
	}
}

// Practice Again must land on the settings screen, not on a new run
// that is already asking its first question.
func TestPracticeScreen_PracticeAgainResetsToSetup(t *testing.T) {
	s := testScreen(1, llm.MockResponse{Text: "Score: 10/10\nPerfect."})

	em := s.evaluateCmd("the only answer")().(evaluatedMsg)
	var scr screen.Screen = s
	scr, _ = scr.Update(em)
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a navigation command after the last answer")
	}
	resultsScreen := cmd().(router.ReplaceScreenMsg).Screen

	_, cmd = resultsScreen.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a navigation command for practice again")
	}

	msg := cmd()
	reset, ok := msg.(router.ResetScreenMsg)
	if !ok {
		t.Fatalf("navigation message = %T, want ResetScreenMsg", msg)
	}
	if reset.Screen.Title() != "Setup" {
		t.Errorf("reset screen title = %q, want %q", reset.Screen.Title(), "Setup")
	}
}

func TestPracticeScreen_SkipAdvances(t *testing.T) {
	s := testScreen(2)

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('k'))
	ps := scr.(*PracticeScreen)

	if ps.run.Asked != 1 {
		t.Errorf("Asked = %d, want 1", ps.run.Asked)
	}
	if len(ps.run.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(ps.run.Results))
	}
	if ps.run.CurrentQuestion != "What's your greatest professional strength?" {
		t.Errorf("CurrentQuestion = %q, want second behavioral question", ps.run.CurrentQuestion)
	}
}

func TestPracticeScreen_AllSkippedReturnsToSetup(t *testing.T) {
	s := testScreen(1)

	var scr screen.Screen = s
	_, cmd := scr.Update(ctrlKey('k'))
	if cmd == nil {
		t.Fatal("expected a navigation command after skipping the whole run")
	}

	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("navigation message = %T, want PopScreenMsg", cmd())
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	s := testScreen(2)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*PracticeScreen)
	if !ps.showQuitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*PracticeScreen)
	if ps.showQuitConfirm {
		t.Error("expected quit confirmation to be dismissed by n")
	}

	scr, _ = ps.Update(specialKey(tea.KeyEscape))
	ps = scr.(*PracticeScreen)
	_, cmd := ps.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a navigation command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("navigation message = %T, want PopScreenMsg", cmd())
	}
}

func TestPracticeScreen_KeyHintsFollowState(t *testing.T) {
	s := testScreen(2)

	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Ctrl+S" {
		t.Errorf("active hints = %v, want submit hint first", hints)
	}

	s.showQuitConfirm = true
	hints = s.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Y" {
		t.Errorf("confirm hints = %v, want Y hint first", hints)
	}

	s.showQuitConfirm = false
	s.showFeedback = true
	hints = s.KeyHints()
	if len(hints) == 0 || hints[0].Description != "Continue" {
		t.Errorf("feedback hints = %v, want continue hint", hints)
	}
}

func TestPracticeScreen_ViewShowsQuestion(t *testing.T) {
	s := testScreen(2)
	view := s.View(80, 18)
	if !strings.Contains(view, "Tell me about yourself.") {
		t.Error("expected the current question in the view")
	}
}
