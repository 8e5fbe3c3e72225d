package weekly

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/screen"
	sess "github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

// WeeklyScreen shows the last seven days against the week before.
type WeeklyScreen struct {
	report sess.WeeklyReport
	errMsg string
}

var _ screen.Screen = (*WeeklyScreen)(nil)

func New(eng *engine.Engine) *WeeklyScreen {
	w := &WeeklyScreen{}
	report, err := eng.Weekly(context.Background())
	if err != nil {
		w.errMsg = err.Error()
		return w
	}
	w.report = report
	return w
}

func (w *WeeklyScreen) Init() tea.Cmd {
	return nil
}

func (w *WeeklyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return w, nil
}

func (w *WeeklyScreen) Title() string {
	return "Weekly Report"
}

func (w *WeeklyScreen) View(width, height int) string {
	if w.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render("\n\n" + w.errMsg)
	}

	r := w.report
	var b strings.Builder

	b.WriteString(theme.Title.Render("This Week"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Rounds: %d    Sessions: %d    Streak: %d days\n",
		r.RoundsThisWeek, r.SessionsThisWeek, r.Streak))
	b.WriteString(fmt.Sprintf("First-try accuracy: %d%%    Mastery accuracy: %d%%\n",
		r.FirstTryAccuracy, r.MasteryAccuracy))
	if r.StrategyRecoveries > 0 {
		b.WriteString(fmt.Sprintf("Strategy recoveries: %d\n", r.StrategyRecoveries))
	}

	// Seven-day activity strip.
	b.WriteString("\n")
	for _, day := range r.Daily {
		mark := "·"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if day.Rounds > 0 {
			mark = "▮"
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		// Trailing day-of-month from the YYYY-MM-DD date.
		b.WriteString(style.Render(fmt.Sprintf(" %s %s", day.Date[8:], mark)))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skill trends:"))
	b.WriteString("\n")
	for _, tr := range r.SkillTrends {
		arrow := "→"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if tr.DeltaVsLastWeek > 0 {
			arrow = "↑"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		} else if tr.DeltaVsLastWeek < 0 {
			arrow = "↓"
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString(fmt.Sprintf("  %s %-14s %3d%%  %s\n",
			tr.Skill.Icon(), tr.Skill.Label(), tr.Accuracy, style.Render(arrow)))
	}

	if len(r.Wins) > 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("Wins:") + "\n")
		for _, win := range r.Wins {
			b.WriteString("  ✓ " + win + "\n")
		}
	}

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Focus next: %s    Strongest: %s",
			r.FocusSkill.Label(), r.StrongestSkill.Label())))
	b.WriteString("\n")

	if len(r.CoachNotes) > 0 {
		b.WriteString("\n")
		for _, note := range r.CoachNotes {
			b.WriteString(theme.Hint.Render("· "+note) + "\n")
		}
	}

	card := theme.Card.Width(min(width-8, 72)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(card)
}
