package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/router"
	"github.com/abhisek/cogniz/internal/screen"
	"github.com/abhisek/cogniz/internal/screens/badgevault"
	"github.com/abhisek/cogniz/internal/screens/play"
	"github.com/abhisek/cogniz/internal/screens/profiles"
	"github.com/abhisek/cogniz/internal/screens/quest"
	"github.com/abhisek/cogniz/internal/screens/settings"
	"github.com/abhisek/cogniz/internal/screens/skilltree"
	"github.com/abhisek/cogniz/internal/screens/weekly"
	"github.com/abhisek/cogniz/internal/ui/components"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	eng  *engine.Engine
	menu components.Menu

	learnerName   string
	streak        int
	reviewsDue    int
	questProgress int
	questComplete bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates the home screen, loading the headline numbers up front.
func New(eng *engine.Engine) *HomeScreen {
	h := &HomeScreen{eng: eng, learnerName: eng.Learner().Name}
	h.refresh()

	items := []components.MenuItem{
		{Label: "PLAY SESSION", Action: pushCmd(func() screen.Screen { return play.New(eng) })},
		{Label: "DAILY QUEST", Action: pushCmd(func() screen.Screen { return quest.New(eng) })},
		{Label: "SKILL TREE", Action: pushCmd(func() screen.Screen { return skilltree.New(eng) })},
		{Label: "WEEKLY REPORT", Action: pushCmd(func() screen.Screen { return weekly.New(eng) })},
		{Label: "BADGES", Action: pushCmd(func() screen.Screen { return badgevault.New(eng) })},
		{Label: "PROFILES", Action: pushCmd(func() screen.Screen { return profiles.New(eng) })},
		{Label: "SETTINGS", Action: pushCmd(func() screen.Screen { return settings.New(eng) })},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func pushCmd(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: build()}
		}
	}
}

// Refresh reloads the dashboard numbers when navigation returns here.
func (h *HomeScreen) Refresh() {
	h.refresh()
}

// refresh reloads the numbers shown on the dashboard.
func (h *HomeScreen) refresh() {
	ctx := context.Background()
	if ov, err := h.eng.Overview(ctx); err == nil {
		h.streak = ov.Streak.CurrentStreak
		h.reviewsDue = ov.Due.Total
	}
	if q, err := h.eng.Quest(ctx); err == nil {
		h.questProgress = q.ProgressPercent
		h.questComplete = q.IsComplete
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("C O G N I Z") + "\n" +
		theme.Subtitle.Render("critical thinking, one round at a time")
	sections = append(sections, title)

	hello := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Hi %s", h.learnerName))
	stats := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"★ %d day streak    ⟳ %d reviews due", h.streak, h.reviewsDue))

	questLine := fmt.Sprintf("Today's quest: %d%%", h.questProgress)
	if h.questComplete {
		questLine = "Today's quest: complete ✓"
	}
	questStyled := lipgloss.NewStyle().Foreground(theme.Secondary).Render(questLine)

	statsCard := theme.Card.Width(44).Align(lipgloss.Center).
		Render(hello + "\n" + stats + "\n" + questStyled)
	sections = append(sections, statsCard)

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
