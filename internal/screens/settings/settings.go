package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/screen"
	sess "github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/ui/layout"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

// Row indices for the settings list.
const (
	rowMainRounds = iota
	rowBossEnabled
	rowBossIntensity
	rowHintMode
	rowDailyGoal
	rowCount
)

var hintModes = []sess.HintMode{sess.HintGuided, sess.HintMinimal, sess.HintOff}

// SettingsScreen edits the learner's adaptive knobs. Changes save on
// every adjustment; there is no separate confirm step.
type SettingsScreen struct {
	eng      *engine.Engine
	settings sess.Settings
	selected int
	errMsg   string
	saved    bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

func New(eng *engine.Engine) *SettingsScreen {
	s := &SettingsScreen{eng: eng}
	settings, err := eng.Settings(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.settings = settings
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "left", "h":
		s.adjust(-1)
		s.persist()
	case "right", "l", "enter", "space":
		s.adjust(1)
		s.persist()
	}
	return s, nil
}

// adjust moves the selected knob by delta, wrapping enums and clamping
// numeric ranges.
func (s *SettingsScreen) adjust(delta int) {
	switch s.selected {
	case rowMainRounds:
		s.settings.MainRounds += delta
	case rowBossEnabled:
		s.settings.BossEnabled = !s.settings.BossEnabled
	case rowBossIntensity:
		s.settings.BossIntensity += delta
	case rowHintMode:
		idx := 0
		for i, m := range hintModes {
			if m == s.settings.HintMode {
				idx = i
			}
		}
		idx = (idx + delta + len(hintModes)) % len(hintModes)
		s.settings.HintMode = hintModes[idx]
	case rowDailyGoal:
		s.settings.DailyGoal += delta
	}
	s.settings = s.settings.Clamped()
}

func (s *SettingsScreen) persist() {
	saved, err := s.eng.SaveSettings(context.Background(), s.settings)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.settings = saved
	s.saved = true
}

func (s *SettingsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render("\n\n" + s.errMsg)
	}

	rows := []struct {
		label string
		value string
	}{
		{"Main rounds per session", fmt.Sprintf("%d", s.settings.MainRounds)},
		{"Boss challenge", onOff(s.settings.BossEnabled)},
		{"Boss intensity", fmt.Sprintf("%d / 5", s.settings.BossIntensity)},
		{"Hint mode", string(s.settings.HintMode)},
		{"Daily goal (rounds)", fmt.Sprintf("%d", s.settings.DailyGoal)},
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Settings"))
	b.WriteString("\n\n")

	for i, row := range rows {
		prefix := "  "
		labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
		valueStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
		if i == s.selected {
			prefix = "▸ "
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
			valueStyle = valueStyle.Bold(true)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			prefix,
			labelStyle.Render(fmt.Sprintf("%-26s", row.label)),
			valueStyle.Render("◂ "+row.value+" ▸")))
	}

	if s.saved {
		b.WriteString("\n" + theme.Hint.Render("Saved."))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-8, 58)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(card)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
