package badgevault

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/badges"
	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/screen"
	"github.com/abhisek/cogniz/internal/store"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

const pageSize = 12

// BadgeVaultScreen lists the learner's earned badges, newest first.
type BadgeVaultScreen struct {
	rows   []store.BadgeRow
	offset int
	errMsg string
}

var _ screen.Screen = (*BadgeVaultScreen)(nil)

func New(eng *engine.Engine) *BadgeVaultScreen {
	b := &BadgeVaultScreen{}
	rows, err := eng.EarnedBadges(context.Background())
	if err != nil {
		b.errMsg = err.Error()
		return b
	}
	b.rows = rows
	return b
}

func (b *BadgeVaultScreen) Init() tea.Cmd {
	return nil
}

func (b *BadgeVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if b.offset > 0 {
			b.offset--
		}
	case "down", "j":
		if b.offset+pageSize < len(b.rows) {
			b.offset++
		}
	}
	return b, nil
}

func (b *BadgeVaultScreen) Title() string {
	return "Badges"
}

func (b *BadgeVaultScreen) View(width, height int) string {
	if b.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render("\n\n" + b.errMsg)
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Badge Vault"))
	sb.WriteString("\n\n")

	if len(b.rows) == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Nothing here yet. Play a session to earn your first badge."))
		sb.WriteString("\n")
	}

	end := b.offset + pageSize
	if end > len(b.rows) {
		end = len(b.rows)
	}
	for _, row := range b.rows[b.offset:end] {
		line := fmt.Sprintf("%s  %-28s %s",
			badges.Icon(row.BadgeKey),
			badges.Label(row.BadgeKey),
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(row.EarnedAt.Format("Jan 2, 2006")))
		sb.WriteString(line + "\n")
	}

	if len(b.rows) > pageSize {
		sb.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("%d-%d of %d  (↑↓ to scroll)",
			b.offset+1, end, len(b.rows))))
		sb.WriteString("\n")
	}

	card := theme.Card.Width(min(width-8, 64)).Render(sb.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(card)
}
