package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/llm"
	prac "github.com/mockmate/mockmate/internal/practice"
	"github.com/mockmate/mockmate/internal/router"
	"github.com/mockmate/mockmate/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func completedRun(t *testing.T) *prac.Run {
	t.Helper()
	run := prac.NewRun(interview.Settings{
		Role:         interview.RoleSoftwareEngineer,
		Mode:         interview.ModeBehavioral,
		NumQuestions: 2,
	})
	if err := run.Submit("first answer", "Score: 8/10\nGood.", 8); err != nil {
		t.Fatal(err)
	}
	if err := run.Submit("second answer", "Score: 6/10\nOkay.", 6); err != nil {
		t.Fatal(err)
	}
	return run
}

func TestResultsScreen_TitleAndStatus(t *testing.T) {
	s := New(completedRun(t), nil, nil)

	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
	if s.Status() != "Avg 7.0/10" {
		t.Errorf("Status = %q, want %q", s.Status(), "Avg 7.0/10")
	}
}

func TestResultsScreen_Navigation(t *testing.T) {
	s := New(completedRun(t), nil, nil)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	rs := scr.(*ResultsScreen)
	if rs.selected != 1 {
		t.Errorf("selected = %d, want 1", rs.selected)
	}

	// Already at the last row.
	scr, _ = rs.Update(keyPress('j'))
	rs = scr.(*ResultsScreen)
	if rs.selected != 1 {
		t.Errorf("selected = %d, want 1 (clamped)", rs.selected)
	}

	scr, _ = rs.Update(keyPress('k'))
	rs = scr.(*ResultsScreen)
	if rs.selected != 0 {
		t.Errorf("selected = %d, want 0", rs.selected)
	}
}

func TestResultsScreen_ExpandToggle(t *testing.T) {
	s := New(completedRun(t), nil, nil)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	rs := scr.(*ResultsScreen)
	if rs.expanded != 0 {
		t.Errorf("expanded = %d, want 0", rs.expanded)
	}

	view := rs.View(80, 18)
	if !strings.Contains(view, "first answer") {
		t.Error("expected expanded row to show the answer")
	}

	scr, _ = rs.Update(specialKey(tea.KeyEnter))
	rs = scr.(*ResultsScreen)
	if rs.expanded != -1 {
		t.Errorf("expanded = %d, want -1 after toggle", rs.expanded)
	}
}

// Practice Again discards the run and resets the whole stack to a fresh
// settings screen; starting another run is the user's next move there.
func TestResultsScreen_PracticeAgainResetsToSetup(t *testing.T) {
	home := func() screen.Screen { return &stubScreen{title: "Setup"} }
	s := New(completedRun(t), nil, home)

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('r'))
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

func TestResultsScreen_PracticeAgainWithoutHomeIsNoop(t *testing.T) {
	s := New(completedRun(t), nil, nil)

	var scr screen.Screen = s
	if _, cmd := scr.Update(keyPress('r')); cmd != nil {
		t.Error("expected no navigation command without a home factory")
	}
}

func TestResultsScreen_EscReturnsToSetup(t *testing.T) {
	s := New(completedRun(t), nil, nil)

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a navigation command for esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("navigation message = %T, want PopScreenMsg", cmd())
	}
}

func TestResultsScreen_ViewSummarizesRun(t *testing.T) {
	s := New(completedRun(t), nil, nil)

	view := s.View(80, 18)
	for _, want := range []string{"Interview Complete!", "Questions: 2", "Answered: 2", "Skipped: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_UsageLine(t *testing.T) {
	tracker := llm.NewUsageTracker()
	tracker.Record("gemini-1.5-pro", llm.Usage{InputTokens: 1200, OutputTokens: 240}, false)
	tracker.Record("gemini-1.5-pro", llm.Usage{InputTokens: 900, OutputTokens: 180}, false)

	s := New(completedRun(t), tracker, nil)

	line := s.usageLine()
	if !strings.Contains(line, "2 requests") {
		t.Errorf("usage line = %q, want request count", line)
	}
	if !strings.Contains(line, "2100 in / 420 out tokens") {
		t.Errorf("usage line = %q, want token totals", line)
	}
}

func TestResultsScreen_NoUsageWithoutTracker(t *testing.T) {
	s := New(completedRun(t), nil, nil)
	if line := s.usageLine(); line != "" {
		t.Errorf("usage line = %q, want empty without tracker", line)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"within limit", "short", 10, "short"},
		{"exactly at limit", "abcde", 5, "abcde"},
		{"over limit", "abcdef", 4, "abc…"},
		{"multibyte within rune limit", "héllo", 5, "héllo"},
		{"multibyte over rune limit", "héllodomän", 6, "héllo…"},
		{"zero limit", "anything", 0, "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}
