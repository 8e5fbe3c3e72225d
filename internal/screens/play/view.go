package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/badges"
	"github.com/abhisek/cogniz/internal/feedback"
	"github.com/abhisek/cogniz/internal/skills"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	switch p.mode {
	case modeLoading:
		return renderCentered(width, p.spin.View()+" Preparing your session...")
	case modeError:
		return renderCentered(width, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Something went wrong: "+p.errMsg))
	case modeNoContent:
		return renderCentered(width,
			"No activities available for your profile yet.\n\nAdd a content pack and try again.")
	case modeQuitConfirm:
		return p.renderQuitConfirm(width)
	case modeRecap:
		return p.renderRecap(width)
	case modeFeedback:
		return p.renderFeedback(width)
	default:
		return p.renderRound(width)
	}
}

func renderCentered(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n" + text)
}

// renderRound shows the activity prompt with its choices.
func (p *PlayScreen) renderRound(width int) string {
	body := p.activity.Content
	round := p.state.CurrentRound

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", p.activity.ResolvedSkill().Icon(), p.activity.ResolvedSkill().Label()))

	phaseTag := strings.ToUpper(string(round.Plan.Mode))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  round %d/%d", phaseTag, p.state.PhaseIndex+1, len(p.state.Phases)))

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	textWidth := width - 8
	if textWidth < 20 {
		textWidth = 20
	}
	wrap := lipgloss.NewStyle().Width(textWidth).PaddingLeft(4)

	if body.Story != "" {
		b.WriteString(wrap.Foreground(theme.TextDim).Italic(true).Render(body.Story))
		b.WriteString("\n\n")
	}
	b.WriteString(wrap.Foreground(theme.Text).Bold(true).Render(body.Prompt))
	b.WriteString("\n\n")

	if round.AttemptNumber > 1 {
		b.WriteString(wrap.Foreground(theme.Accent).Render("One more try. Take it slow."))
		b.WriteString("\n")
	}
	if p.hintOpen {
		hint := feedback.HintFor(p.activity.ResolvedSkill(), p.eng.AgeBand())
		b.WriteString(wrap.Foreground(theme.Accent).Render("Hint: " + hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	choices := p.choice
	choices.Width = textWidth + 4
	b.WriteString(choices.View())

	return b.String()
}

// renderFeedback shows the graded card for the last answer.
func (p *PlayScreen) renderFeedback(width int) string {
	fb := p.result.Feedback

	titleStyle := theme.Correct
	if !p.result.IsCorrect {
		titleStyle = theme.Incorrect
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fb.Title))
	b.WriteString("\n\n")
	if fb.Celebrate != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(fb.Celebrate))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(fb.Message))
	b.WriteString("\n")
	if fb.Hint != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("Hint: "+fb.Hint) + "\n")
	}
	if fb.Tip != "" {
		b.WriteString("\n" + theme.Hint.Render("Tip: "+fb.Tip) + "\n")
	}

	if out := p.result.Outcome; out != nil {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("+%d XP", out.XPAwarded)))
		if out.StrategyXP > 0 {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%d strategy)", out.StrategyXP)))
		}
		b.WriteString("\n")
	}
	for _, lu := range p.result.LevelUps {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("\n▲ %s reached level %d!", lu.Skill.Label(), lu.To)))
	}
	for _, key := range p.result.NewBadges {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("\n%s Badge earned: %s", badges.Icon(key), badges.Label(key))))
	}

	card := theme.Card.Width(min(width-8, 70)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(card)
}

// renderRecap shows the end-of-session summary.
func (p *PlayScreen) renderRecap(width int) string {
	s := p.state

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session Recap"))
	b.WriteString("\n\n")

	accuracy := 0
	if s.Rounds > 0 {
		accuracy = s.Correct * 100 / s.Rounds
	}
	b.WriteString(fmt.Sprintf("Rounds: %d    Correct: %d (%d%%)\n", s.Rounds, s.Correct, accuracy))
	b.WriteString(fmt.Sprintf("XP earned: %d", s.XP))
	if s.StrategyXP > 0 {
		b.WriteString(fmt.Sprintf("  (%d from strategy)", s.StrategyXP))
	}
	b.WriteString("\n")
	if s.Recoveries > 0 {
		b.WriteString(fmt.Sprintf("Recoveries: %d\n", s.Recoveries))
	}
	if s.BestStreak > 1 {
		b.WriteString(fmt.Sprintf("Best streak: %d in a row\n", s.BestStreak))
	}

	if len(s.LevelUps) > 0 {
		b.WriteString("\n")
		for _, lu := range s.LevelUps {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("▲ %s: level %d → %d\n", lu.Skill.Label(), lu.From, lu.To)))
		}
	}
	if len(s.Badges) > 0 {
		b.WriteString("\n")
		for _, key := range s.Badges {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("%s %s\n", badges.Icon(key), badges.Label(key))))
		}
	}

	if len(s.BySkill) > 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("By skill:") + "\n")
		for _, sk := range skills.All() {
			tally, ok := s.BySkill[sk]
			if !ok || tally.Rounds == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %-14s %d/%d correct, +%d XP\n",
				sk.Icon(), sk.Label(), tally.Correct, tally.Rounds, tally.XP))
		}
	}

	card := theme.Card.Width(min(width-8, 70)).Render(b.String())
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(card)
}

func (p *PlayScreen) renderQuitConfirm(width int) string {
	content := theme.Title.Render("Leave this session?") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render("Finished rounds are saved. The current round is discarded.") + "\n\n" +
		theme.Hint.Render("Y to leave, N to keep going")
	card := theme.Card.Width(min(width-8, 60)).Render(content)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(2).Render(card)
}
