package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mockmate/mockmate/internal/ui/theme"
)

// Selector is a labelled form field that cycles through a fixed set of
// options with the left/right arrow keys.
type Selector struct {
	Label    string
	Options  []string
	Selected int
	focused  bool
}

// NewSelector creates a selector with the given options. The first option
// starts selected.
func NewSelector(label string, options []string) Selector {
	return Selector{
		Label:   label,
		Options: options,
	}
}

// Init returns nil (no initial command).
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update handles keyboard cycling. Selection wraps at both ends.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.focused || len(s.Options) == 0 {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Selected--
		if s.Selected < 0 {
			s.Selected = len(s.Options) - 1
		}
	case "right", "l":
		s.Selected++
		if s.Selected >= len(s.Options) {
			s.Selected = 0
		}
	}

	return s, nil
}

// Focus gives the field keyboard focus.
func (s *Selector) Focus() {
	s.focused = true
}

// Blur removes keyboard focus.
func (s *Selector) Blur() {
	s.focused = false
}

// Focused reports whether the field has keyboard focus.
func (s Selector) Focused() bool {
	return s.focused
}

// Value returns the currently selected option.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// Select moves the selection to the given option if present.
func (s *Selector) Select(option string) {
	for i, opt := range s.Options {
		if opt == option {
			s.Selected = i
			return
		}
	}
}

// View renders the label and the current option with cycle arrows.
func (s Selector) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	arrowStyle := lipgloss.NewStyle().Foreground(theme.Border)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)

	if s.focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		arrowStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		valueStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	}

	return labelStyle.Render(s.Label) + "  " +
		arrowStyle.Render("◂") + " " +
		valueStyle.Render(s.Value()) + " " +
		arrowStyle.Render("▸")
}
