package skilltree

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/screen"
	"github.com/abhisek/cogniz/internal/ui/components"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

// SkillTreeScreen shows all six tracks: level, XP toward the next level,
// mastery, and due reviews per skill.
type SkillTreeScreen struct {
	overview engine.SkillOverview
	errMsg   string
}

var _ screen.Screen = (*SkillTreeScreen)(nil)

func New(eng *engine.Engine) *SkillTreeScreen {
	s := &SkillTreeScreen{}
	ov, err := eng.Overview(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.overview = ov
	return s
}

func (s *SkillTreeScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillTreeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *SkillTreeScreen) Title() string {
	return "Skill Tree"
}

func (s *SkillTreeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render("\n\n" + s.errMsg)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Skill Tree"))
	b.WriteString("\n\n")

	for _, st := range s.overview.States {
		b.WriteString(renderTrack(st, s.overview.Due.BySkill[st.Skill]))
		b.WriteString("\n")
	}

	if s.overview.Due.Total > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("⟳ %d reviews due across all tracks", s.overview.Due.Total)))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-8, 68)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(card)
}

func renderTrack(st mastery.SkillState, due int) string {
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s %-14s", st.Skill.Icon(), st.Skill.Label()))

	level := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(fmt.Sprintf("Lv %d", st.Level))

	var next string
	if toGo := st.XPToNextLevel(); toGo > 0 {
		next = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d XP to next", toGo))
	} else {
		next = lipgloss.NewStyle().Foreground(theme.Accent).Render("  MAX")
	}

	dueTag := ""
	if due > 0 {
		dueTag = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("  ⟳ %d due", due))
	}

	bar := components.NewProgressBar("", st.MasteryScore, true, 30)

	return name + " " + level + next + dueTag + "\n    " + bar.View() + "\n"
}
