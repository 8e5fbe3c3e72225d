package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/router"
	"github.com/abhisek/cogniz/internal/screen"
	"github.com/abhisek/cogniz/internal/screens/home"
	"github.com/abhisek/cogniz/internal/screens/profiles"
	"github.com/abhisek/cogniz/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	eng    *engine.Engine
	router *router.Router
	width  int
	height int

	// header stats, refreshed whenever a screen is popped
	streak     int
	dueReviews int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(eng *engine.Engine) AppModel {
	m := AppModel{
		eng:    eng,
		router: router.New(home.New(eng)),
	}
	m.refreshStats()
	return m
}

func (m *AppModel) refreshStats() {
	ov, err := m.eng.Overview(context.Background())
	if err != nil {
		return
	}
	m.streak = ov.Streak.CurrentStreak
	m.dueReviews = ov.Due.Total
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profiles.SwitchMsg:
		m.eng = m.eng.WithLearner(msg.Learner)
		m.router = router.New(home.New(m.eng))
		m.refreshStats()
		return m, nil

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		m.refreshStats()
		if r, ok := m.router.Active().(screen.Refresher); ok {
			r.Refresh()
		}
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// screens mid-flow intercept esc themselves
			if c, ok := m.router.Active().(screen.EscCapturer); ok && c.CapturesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	header := layout.RenderHeader(title, m.streak, m.dueReviews, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
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
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(newAppModel(eng))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
