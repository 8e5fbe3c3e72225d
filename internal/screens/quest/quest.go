package quest

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/screen"
	sess "github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/ui/components"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

// QuestScreen shows today's quest: steps done, steps left, and focus.
type QuestScreen struct {
	eng    *engine.Engine
	state  sess.DailyQuestState
	errMsg string
}

var _ screen.Screen = (*QuestScreen)(nil)

func New(eng *engine.Engine) *QuestScreen {
	q := &QuestScreen{eng: eng}
	state, err := eng.Quest(context.Background())
	if err != nil {
		q.errMsg = err.Error()
		return q
	}
	q.state = state
	return q
}

func (q *QuestScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return q, nil
}

func (q *QuestScreen) Title() string {
	return "Daily Quest"
}

func (q *QuestScreen) View(width, height int) string {
	if q.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render("\n\n" + q.errMsg)
	}

	st := q.state
	var b strings.Builder

	b.WriteString(theme.Title.Render("Daily Quest — " + st.Date))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Progress", float64(st.ProgressPercent)/100, true, 44)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d rounds today", st.RoundsToday, st.DailyGoal)))
	b.WriteString("\n\n")

	b.WriteString(stepLine("Warmup round", st.Completed.Warmup))
	b.WriteString(stepLine(fmt.Sprintf("Main rounds (%d/2)", st.Completed.MainCount), st.Completed.MainCount >= 2))
	for _, step := range st.RemainingSteps {
		if step == sess.PhaseBoss {
			b.WriteString(stepLine("Boss challenge", false))
		}
	}
	if st.Completed.Boss {
		b.WriteString(stepLine("Boss challenge", true))
	}
	b.WriteString("\n")

	if st.IsComplete {
		b.WriteString(theme.Correct.Render("Quest complete! Come back tomorrow."))
		b.WriteString("\n")
	} else if st.DueReviews > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("⟳ %d reviews waiting — they come first in your next session.", st.DueReviews)))
		b.WriteString("\n")
	}

	if len(st.WeakestSkills) > 0 {
		names := make([]string, 0, len(st.WeakestSkills))
		for _, sk := range st.WeakestSkills {
			names = append(names, sk.Label())
		}
		b.WriteString("\n" + theme.Hint.Render("Focus today: "+strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-8, 64)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(card)
}

func stepLine(label string, done bool) string {
	if done {
		return lipgloss.NewStyle().Foreground(theme.Success).Render("  ✓ "+label) + "\n"
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ○ "+label) + "\n"
}
