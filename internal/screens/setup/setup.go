package setup

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mockmate/mockmate/internal/evaluate"
	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/llm"
	"github.com/mockmate/mockmate/internal/router"
	"github.com/mockmate/mockmate/internal/screen"
	practicescreen "github.com/mockmate/mockmate/internal/screens/practice"
	"github.com/mockmate/mockmate/internal/ui/components"
	"github.com/mockmate/mockmate/internal/ui/layout"
	"github.com/mockmate/mockmate/internal/ui/theme"
)

// Focus order for the form fields.
const (
	focusRole = iota
	focusDomain
	focusMode
	focusNum
	focusStart
	focusCount
)

const labelWidth = 11

// SetupScreen is the interview configuration form.
type SetupScreen struct {
	role   components.Selector
	domain components.TextInput
	mode   components.Selector
	num    components.Selector
	start  components.Button
	focus  int

	evaluator *evaluate.Service
	tracker   *llm.UsageTracker
	modelID   string
	errMsg    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.StatusProvider = (*SetupScreen)(nil)

// New creates a SetupScreen. Practice runs started from here evaluate
// answers through the given service.
func New(evaluator *evaluate.Service, modelID string, tracker *llm.UsageTracker) *SetupScreen {
	roleOpts := make([]string, 0, len(interview.Roles()))
	for _, r := range interview.Roles() {
		roleOpts = append(roleOpts, string(r))
	}

	modeOpts := make([]string, 0, len(interview.Modes()))
	for _, m := range interview.Modes() {
		modeOpts = append(modeOpts, string(m))
	}

	numOpts := make([]string, 0, interview.MaxQuestions)
	for n := interview.MinQuestions; n <= interview.MaxQuestions; n++ {
		numOpts = append(numOpts, strconv.Itoa(n))
	}

	s := &SetupScreen{
		role:      components.NewSelector(pad("Role"), roleOpts),
		domain:    components.NewTextInput(pad("Domain"), "e.g. Python, React, AWS (optional)", 60),
		mode:      components.NewSelector(pad("Mode"), modeOpts),
		num:       components.NewSelector(pad("Questions"), numOpts),
		evaluator: evaluator,
		tracker:   tracker,
		modelID:   modelID,
	}
	s.num.Select(strconv.Itoa(interview.DefaultQuestions))
	s.start = components.NewButton("Start Interview", false, s.startCmd)
	s.applyFocus()

	return s
}

func pad(label string) string {
	return fmt.Sprintf("%-*s", labelWidth, label)
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Setup"
}

func (s *SetupScreen) Status() string {
	return s.modelID
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.focus == focusDomain {
			var cmd tea.Cmd
			s.domain, cmd = s.domain.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		s.focus = (s.focus + 1) % focusCount
		return s, s.applyFocus()
	case "shift+tab", "up":
		s.focus = (s.focus - 1 + focusCount) % focusCount
		return s, s.applyFocus()
	case "enter":
		if s.focus == focusStart {
			var cmd tea.Cmd
			s.start, cmd = s.start.Update(kmsg)
			return s, cmd
		}
		s.focus = (s.focus + 1) % focusCount
		return s, s.applyFocus()
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusRole:
		s.role, cmd = s.role.Update(msg)
	case focusDomain:
		s.domain, cmd = s.domain.Update(msg)
	case focusMode:
		s.mode, cmd = s.mode.Update(msg)
	case focusNum:
		s.num, cmd = s.num.Update(msg)
	}
	return s, cmd
}

// applyFocus synchronizes field focus with the focus index.
func (s *SetupScreen) applyFocus() tea.Cmd {
	var cmd tea.Cmd

	s.role.Blur()
	s.domain.Blur()
	s.mode.Blur()
	s.num.Blur()
	s.start.Active = false

	switch s.focus {
	case focusRole:
		s.role.Focus()
	case focusDomain:
		cmd = s.domain.Focus()
	case focusMode:
		s.mode.Focus()
	case focusNum:
		s.num.Focus()
	case focusStart:
		s.start.Active = true
	}
	return cmd
}

// startCmd validates the form and pushes a practice screen.
func (s *SetupScreen) startCmd() tea.Cmd {
	settings := interview.Settings{
		Role:   interview.Role(s.role.Value()),
		Domain: strings.TrimSpace(s.domain.Value()),
		Mode:   interview.Mode(s.mode.Value()),
	}
	settings.NumQuestions, _ = strconv.Atoi(s.num.Value())

	if err := settings.Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""

	home := func() screen.Screen {
		return New(s.evaluator, s.modelID, s.tracker)
	}
	ps := practicescreen.New(s.evaluator, settings, s.tracker, home)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: ps}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Set up your interview"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick a role and mode, then start practicing."))
	b.WriteString("\n\n")

	form := strings.Join([]string{
		s.role.View(),
		s.domain.View(),
		s.mode.View(),
		s.num.View(),
	}, "\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.start.View()))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}
