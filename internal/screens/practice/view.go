package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mockmate/mockmate/internal/ui/components"
	"github.com/mockmate/mockmate/internal/ui/theme"
)

const (
	answerMaxWidth = 72
	answerHeight   = 8
)

func (s *PracticeScreen) View(width, height int) string {
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question and the answer editor.
func (s *PracticeScreen) renderQuestionView(width int) string {
	var b strings.Builder

	set := s.run.Settings
	info := string(set.Role) + " · " + string(set.Mode)
	if set.Domain != "" {
		info += " · " + set.Domain
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + info)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.run.Asked+1, set.NumQuestions))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, answerMaxWidth)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		questionStyle.Render(s.run.CurrentQuestion)))
	b.WriteString("\n\n")

	// Answer editor.
	s.answer.SetSize(min(width-8, answerMaxWidth), answerHeight)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.answer.View()))
	b.WriteString("\n\n")

	switch {
	case s.evaluating:
		dots := strings.Repeat(".", s.evalTicks%4)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Evaluating your answer" + dots))
	case s.warnMsg != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(s.warnMsg))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Ctrl+S submits, Ctrl+K skips"))
	}

	return b.String()
}

// renderFeedback renders the verdict overlay after an evaluation.
func (s *PracticeScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	bar := components.NewScoreBar(s.lastResult.Score, min(width-16, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	feedbackStyle := lipgloss.NewStyle().
		Width(min(width-8, answerMaxWidth)).
		Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		feedbackStyle.Render(s.lastResult.Feedback)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the abandon-run confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this interview early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, end it"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
