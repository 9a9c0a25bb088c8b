package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyal/worklens/internal/ui/theme"
)

// FormField wraps bubbles/textinput with a label for the contact form.
type FormField struct {
	Label    string
	Required bool
	Model    textinput.Model
}

// NewFormField creates a labeled text input.
func NewFormField(label, placeholder string, required bool) FormField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120

	return FormField{
		Label:    label,
		Required: required,
		Model:    ti,
	}
}

// Focus gives the field keyboard focus.
func (f *FormField) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus.
func (f *FormField) Blur() {
	f.Model.Blur()
}

// Focused reports whether the field has focus.
func (f FormField) Focused() bool {
	return f.Model.Focused()
}

// Update handles messages.
func (f FormField) Update(msg tea.Msg) (FormField, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the label and the input on two lines.
func (f FormField) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if f.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	label := f.Label
	if f.Required {
		label += " *"
	}
	return labelStyle.Render(label) + "\n" + f.Model.View()
}

// Value returns the current input value.
func (f FormField) Value() string {
	return f.Model.Value()
}
