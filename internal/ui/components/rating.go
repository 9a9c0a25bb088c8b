package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyal/worklens/internal/ui/theme"
)

// Rating is a single-row selector over a fixed rating scale. Values are
// 1-based; zero means nothing picked yet.
type Rating struct {
	Labels []string
	value  int
	cursor int
}

// NewRating creates a rating selector over the given scale labels.
func NewRating(labels []string) Rating {
	return Rating{Labels: labels}
}

// Value returns the picked rating, or 0 when none is picked.
func (r Rating) Value() int {
	return r.value
}

// SetValue restores a previously picked rating, e.g. when the user
// navigates back to an already answered statement.
func (r *Rating) SetValue(v int) {
	if v < 0 || v > len(r.Labels) {
		return
	}
	r.value = v
	if v > 0 {
		r.cursor = v - 1
	}
}

// Update handles keyboard input. Digit keys pick directly; arrows move
// the cursor and enter/space picks the cursor position.
func (r Rating) Update(msg tea.Msg) (Rating, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, false
	}

	switch kmsg.String() {
	case "left", "h":
		if r.cursor > 0 {
			r.cursor--
		}
		return r, false
	case "right", "l":
		if r.cursor < len(r.Labels)-1 {
			r.cursor++
		}
		return r, false
	case "enter", " ":
		r.value = r.cursor + 1
		return r, true
	default:
		key := kmsg.String()
		if len(key) == 1 && key[0] >= '1' && key[0] <= byte('0'+len(r.Labels)) {
			r.value = int(key[0] - '0')
			r.cursor = r.value - 1
			return r, true
		}
	}
	return r, false
}

// View renders the scale as one row of numbered options.
func (r Rating) View() string {
	s := ""
	for i, label := range r.Labels {
		opt := fmt.Sprintf("%d  %s", i+1, label)

		switch {
		case r.value == i+1:
			opt = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("● " + opt)
		case r.cursor == i:
			opt = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + opt)
		default:
			opt = lipgloss.NewStyle().Foreground(theme.Text).Render("  " + opt)
		}

		if i > 0 {
			s += "      "
		}
		s += opt
	}
	return s
}
