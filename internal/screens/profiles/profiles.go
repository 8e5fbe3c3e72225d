package profiles

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/screen"
	"github.com/abhisek/cogniz/internal/store"
	"github.com/abhisek/cogniz/internal/ui/components"
	"github.com/abhisek/cogniz/internal/ui/layout"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

// SwitchMsg asks the app to continue as another learner.
type SwitchMsg struct {
	Learner *store.Learner
}

var bands = []content.AgeBand{
	content.Band4to6, content.Band7to9, content.Band10to13,
	content.Band14to18, content.BandAdult,
}

// ProfilesScreen lists learner profiles and creates new ones.
type ProfilesScreen struct {
	eng      *engine.Engine
	list     []*store.Learner
	selected int

	creating bool
	name     components.TextInput
	band     int
	errMsg   string
}

var _ screen.Screen = (*ProfilesScreen)(nil)
var _ screen.KeyHintProvider = (*ProfilesScreen)(nil)
var _ screen.EscCapturer = (*ProfilesScreen)(nil)

func New(eng *engine.Engine) *ProfilesScreen {
	p := &ProfilesScreen{
		eng:  eng,
		name: components.NewTextInput("name", 24),
		band: len(bands) - 1,
	}
	list, err := eng.Profiles(context.Background())
	if err != nil {
		p.errMsg = err.Error()
		return p
	}
	p.list = list
	for i, l := range list {
		if l.ID == eng.Learner().ID {
			p.selected = i
		}
	}
	return p
}

func (p *ProfilesScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfilesScreen) Title() string {
	return "Profiles"
}

func (p *ProfilesScreen) CapturesEsc() bool {
	// Esc inside the create form cancels the form, not the screen.
	return p.creating
}

func (p *ProfilesScreen) KeyHints() []layout.KeyHint {
	if p.creating {
		return []layout.KeyHint{
			{Key: "←→", Description: "Age band"},
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Switch"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfilesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.creating {
		return p.updateCreate(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.list) {
			p.selected++
		}
	case "enter":
		if p.selected == len(p.list) {
			p.creating = true
			p.errMsg = ""
			return p, p.name.Focus()
		}
		chosen := p.list[p.selected]
		return p, func() tea.Msg { return SwitchMsg{Learner: chosen} }
	}
	return p, nil
}

func (p *ProfilesScreen) updateCreate(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.creating = false
		p.name.Reset()
		return p, nil
	case "left":
		if p.band > 0 {
			p.band--
		}
		return p, nil
	case "right":
		if p.band < len(bands)-1 {
			p.band++
		}
		return p, nil
	case "enter":
		name := strings.TrimSpace(p.name.Value())
		if name == "" {
			p.name.Submit(false)
			return p, nil
		}
		learner, err := p.eng.CreateProfile(context.Background(), name, string(bands[p.band]))
		if err != nil {
			p.errMsg = err.Error()
			p.name.Submit(false)
			return p, nil
		}
		return p, func() tea.Msg { return SwitchMsg{Learner: learner} }
	}

	var cmd tea.Cmd
	p.name, cmd = p.name.Update(msg)
	return p, cmd
}

func (p *ProfilesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Profiles"))
	b.WriteString("\n\n")

	current := p.eng.Learner().ID
	for i, l := range p.list {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !p.creating && i == p.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		marker := ""
		if l.ID == current {
			marker = lipgloss.NewStyle().Foreground(theme.Success).Render("  ● active")
		}
		b.WriteString(fmt.Sprintf("%s%s%s\n",
			prefix,
			style.Render(fmt.Sprintf("%-16s band %s", l.Name, l.AgeBand)),
			marker))
	}

	newStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	newPrefix := "  "
	if !p.creating && p.selected == len(p.list) {
		newPrefix = "▸ "
		newStyle = newStyle.Foreground(theme.Primary).Bold(true)
	}
	b.WriteString(newPrefix + newStyle.Render("+ New profile") + "\n")

	if p.creating {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("Name: ") + p.name.View())
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("Band: ") +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("◂ %s ▸", bands[p.band])))
		b.WriteString("\n")
	}

	if p.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg) + "\n")
	}

	card := theme.Card.Width(min(width-8, 56)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(card)
}
