package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/router"
	"github.com/priyal/worklens/internal/screen"
	"github.com/priyal/worklens/internal/screens/start"
	"github.com/priyal/worklens/internal/ui/layout"
)

// Options carries the dependencies for a program run.
type Options struct {
	Store  assessment.Store
	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *assessment.Session
	width  int
	height int
}

// newAppModel creates an AppModel opening on the contact form.
func newAppModel(opts Options) AppModel {
	sess := assessment.New(opts.Store, opts.Logger)
	return AppModel{
		router: router.New(start.New(sess)),
		sess:   sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	right := ""
	if m.sess.Stage == assessment.StageQuestions && len(m.sess.Questions) > 0 {
		right = fmt.Sprintf("%d / %d", m.sess.AnsweredCount(), len(m.sess.Questions))
	}

	header := layout.RenderHeader(title, right, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
