package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mockmate/mockmate/internal/ui/theme"
)

// ScoreBar displays a 0-10 score as a horizontal bar with a numeric label.
type ScoreBar struct {
	Score float64
	Width int
}

// NewScoreBar creates a score bar for the given score.
func NewScoreBar(score float64, width int) ScoreBar {
	return ScoreBar{
		Score: score,
		Width: width,
	}
}

// View renders the bar.
func (s ScoreBar) View() string {
	label := fmt.Sprintf("%.1f/10", s.Score)
	result := theme.ScoreStyle(s.Score).Render(label) + "  "

	labelWidth := lipgloss.Width(result)
	barWidth := s.Width - labelWidth
	if barWidth < 4 {
		barWidth = 4
	}

	ratio := s.Score / 10
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	filled := int(float64(barWidth) * ratio)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(scoreFill(s.Score)).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return result + filledStr + emptyStr
}

// scoreFill returns the bar fill color for a score bucket.
func scoreFill(score float64) color.Color {
	switch {
	case score >= 8:
		return theme.Success
	case score >= 5:
		return theme.Accent
	default:
		return theme.Error
	}
}
