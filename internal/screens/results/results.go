package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mockmate/mockmate/internal/llm"
	prac "github.com/mockmate/mockmate/internal/practice"
	"github.com/mockmate/mockmate/internal/router"
	"github.com/mockmate/mockmate/internal/screen"
	"github.com/mockmate/mockmate/internal/ui/components"
	"github.com/mockmate/mockmate/internal/ui/layout"
	"github.com/mockmate/mockmate/internal/ui/theme"
)

// ResultsScreen displays the run summary and per-question feedback.
type ResultsScreen struct {
	run     *prac.Run
	summary prac.Summary
	tracker *llm.UsageTracker
	home    func() screen.Screen

	selected int
	expanded int // index of the expanded answer, -1 for none
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. The home factory builds a fresh settings
// screen; Practice Again discards the finished run and resets the app
// there so the user can adjust settings before starting over.
func New(run *prac.Run, tracker *llm.UsageTracker, home func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		run:      run,
		summary:  prac.BuildSummary(run),
		tracker:  tracker,
		home:     home,
		expanded: -1,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("Avg %.1f/10", s.summary.AverageScore)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Expand"},
		{Key: "R", Description: "Practice again"},
		{Key: "Esc", Description: "Setup"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.run.Results)-1 {
			s.selected++
		}
	case "enter", "space":
		if s.expanded == s.selected {
			s.expanded = -1
		} else {
			s.expanded = s.selected
		}
	case "r", "R":
		if s.home != nil {
			next := s.home()
			return s, func() tea.Msg {
				return router.ResetScreenMsg{Screen: next}
			}
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Interview Complete!"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Answered: %d        Skipped: %d",
		s.summary.TotalAsked, s.summary.Answered, s.summary.Skipped)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	bar := components.NewScoreBar(s.summary.AverageScore, min(width-16, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	lineWidth := min(width-8, 72)
	for i, res := range s.run.Results {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Bold(true)
		}

		scoreStr := theme.ScoreStyle(res.Score).Render(fmt.Sprintf("%.1f/10", res.Score))
		question := truncate(res.Question, lineWidth-14)
		line := fmt.Sprintf("%s%d. %s  %s", prefix, i+1, style.Render(question), scoreStr)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(lineWidth).Render(line)))
		b.WriteString("\n")

		if i == s.expanded {
			b.WriteString(s.renderExpanded(res.Answer, res.Feedback, width, lineWidth))
		}
	}

	if usage := s.usageLine(); usage != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(usage))
	}

	return b.String()
}

// renderExpanded renders the answer and feedback detail under a result row.
func (s *ResultsScreen) renderExpanded(answer, feedback string, width, lineWidth int) string {
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	textStyle := lipgloss.NewStyle().
		Width(lineWidth - 4).
		Foreground(theme.TextDim)

	block := labelStyle.Render("Your answer") + "\n" +
		textStyle.Render(answer) + "\n" +
		labelStyle.Render("Feedback") + "\n" +
		textStyle.Render(feedback)

	indented := lipgloss.NewStyle().
		Width(lineWidth).
		PaddingLeft(4).
		Render(block)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, indented))
	b.WriteString("\n")
	return b.String()
}

// usageLine summarizes provider usage for the footer, if tracked.
func (s *ResultsScreen) usageLine() string {
	if s.tracker == nil {
		return ""
	}
	stats := s.tracker.Snapshot()
	if stats.Requests == 0 {
		return ""
	}
	return fmt.Sprintf("LLM usage: %d requests · %d in / %d out tokens · $%.4f",
		stats.Requests, stats.InputTokens, stats.OutputTokens, stats.CostUSD)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit < 1 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
