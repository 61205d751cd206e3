package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

const answerCharLimit = 4000

// TextArea wraps bubbles/textarea as the multi-line answer editor.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a new answer editor.
func NewTextArea(placeholder string) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = answerCharLimit
	ta.ShowLineNumbers = false

	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus gives the editor keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the editor has keyboard focus.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// SetSize resizes the editor viewport.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

// View renders the editor.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// Reset clears the editor.
func (t *TextArea) Reset() {
	t.Model.Reset()
}
