package play

import (
	"context"
	"strconv"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/engine"
	"github.com/abhisek/cogniz/internal/router"
	"github.com/abhisek/cogniz/internal/screen"
	sess "github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/ui/components"
	"github.com/abhisek/cogniz/internal/ui/layout"
	"github.com/abhisek/cogniz/internal/ui/theme"
)

// viewMode is the play screen's current display state.
type viewMode int

const (
	modeLoading viewMode = iota
	modeRound
	modeFeedback
	modeRecap
	modeQuitConfirm
	modeNoContent
	modeError
)

// PlayScreen drives one sitting: warmup, mains, optional boss, recap.
type PlayScreen struct {
	eng      *engine.Engine
	state    *sess.SessionState
	activity *content.Activity
	result   *engine.AnswerResult

	mode       viewMode
	prevMode   viewMode // restored when quit confirm is dismissed
	choice     components.MultiChoice
	spin       spinner.Model
	hintOpen   bool
	errMsg     string
	closeAfter bool // pop once the close event is written
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.EscCapturer = (*PlayScreen)(nil)

// New creates the play screen for an engine.
func New(eng *engine.Engine) *PlayScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &PlayScreen{eng: eng, mode: modeLoading, spin: sp}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.startSession(), p.spin.Tick)
}

func (p *PlayScreen) Title() string {
	return "Session"
}

func (p *PlayScreen) CapturesEsc() bool {
	// Terminal states (errors, empty library) leave without ceremony; an
	// open sitting confirms first, and the recap records completion.
	switch p.mode {
	case modeRound, modeFeedback, modeQuitConfirm, modeRecap:
		return true
	}
	return false
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave session"},
			{Key: "N", Description: "Keep going"},
		}
	case modeFeedback:
		if p.result != nil && p.result.RetryOpen {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Try again"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	case modeRecap:
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "Enter", Description: "Done"},
		}
	case modeRound:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
		if p.hintAvailable() {
			hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	}
	return nil
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			p.mode = modeError
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.state = msg.State
		return p, p.nextRound()

	case roundReadyMsg:
		return p.handleRoundReady(msg)

	case answerResultMsg:
		return p.handleAnswerResult(msg)

	case sessionClosedMsg:
		if p.closeAfter {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil

	case spinner.TickMsg:
		if p.mode != modeLoading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleRoundReady(msg roundReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.mode = modeError
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	if msg.Activity == nil {
		if p.state.CurrentPhase() == sess.PhaseRecap {
			p.mode = modeRecap
			return p, nil
		}
		p.mode = modeNoContent
		return p, nil
	}
	p.activity = msg.Activity
	p.result = nil
	p.choice = components.NewMultiChoice(msg.Activity.Content.Choices, msg.Activity.Content.CorrectIndex)
	p.hintOpen = false
	p.mode = modeRound
	return p, nil
}

func (p *PlayScreen) handleAnswerResult(msg answerResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.mode = modeError
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	p.result = msg.Result
	p.mode = modeFeedback
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.mode {
	case modeQuitConfirm:
		switch key {
		case "y", "Y":
			p.closeAfter = true
			return p, p.abandonSession()
		case "n", "N", "esc":
			p.mode = p.prevMode
		}
		return p, nil

	case modeRound:
		return p.handleRoundKey(msg)

	case modeFeedback:
		if key == "esc" {
			return p.openQuitConfirm()
		}
		if p.result != nil && p.result.RetryOpen {
			// Back to the same activity for the single retry.
			p.mode = modeRound
			p.choice = components.NewMultiChoice(p.activity.Content.Choices, p.activity.Content.CorrectIndex)
			if p.state.Settings.HintMode == sess.HintGuided {
				sess.ShowHint(p.state)
				p.hintOpen = true
			}
			return p, nil
		}
		return p, p.nextRound()

	case modeRecap:
		switch key {
		case "r", "R":
			p.mode = modeLoading
			return p, p.restartSession()
		case "enter", "esc":
			p.closeAfter = true
			return p, p.finishSession()
		}
		return p, nil

	case modeNoContent, modeError:
		if key == "enter" || key == "esc" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}
	return p, nil
}

func (p *PlayScreen) handleRoundKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc":
		return p.openQuitConfirm()
	case "h", "H":
		if p.hintAvailable() {
			sess.ShowHint(p.state)
			p.hintOpen = true
		}
	case "enter":
		p.choice.Choose(p.choice.Selected)
		return p, p.submitAnswer(p.choice.ChosenIndex)
	default:
		// Digit shortcuts select and submit in one stroke.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(p.choice.Options) {
			p.choice.Choose(n - 1)
			return p, p.submitAnswer(p.choice.ChosenIndex)
		}
		p.choice, _ = p.choice.Update(msg)
	}
	return p, nil
}

func (p *PlayScreen) openQuitConfirm() (screen.Screen, tea.Cmd) {
	p.prevMode = p.mode
	p.mode = modeQuitConfirm
	return p, nil
}

// hintAvailable reports whether the learner may open a hint right now:
// hints are off entirely in off mode, and minimal mode gates them behind
// a failed first attempt.
func (p *PlayScreen) hintAvailable() bool {
	if p.state == nil || p.state.CurrentRound == nil {
		return false
	}
	switch p.state.Settings.HintMode {
	case sess.HintOff:
		return false
	case sess.HintMinimal:
		return p.state.CurrentRound.AttemptNumber > 1
	}
	return true
}

func (p *PlayScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		state, err := p.eng.StartSession(context.Background())
		return sessionStartedMsg{State: state, Err: err}
	}
}

func (p *PlayScreen) restartSession() tea.Cmd {
	return func() tea.Msg {
		if err := p.eng.RestartSession(context.Background(), p.state); err != nil {
			return sessionStartedMsg{Err: err}
		}
		return sessionStartedMsg{State: p.state}
	}
}

func (p *PlayScreen) nextRound() tea.Cmd {
	return func() tea.Msg {
		activity, err := p.eng.NextRound(context.Background(), p.state)
		return roundReadyMsg{Activity: activity, Err: err}
	}
}

func (p *PlayScreen) submitAnswer(choice int) tea.Cmd {
	return func() tea.Msg {
		res, err := p.eng.SubmitAnswer(context.Background(), p.state, p.activity, choice)
		return answerResultMsg{Result: res, Err: err}
	}
}

func (p *PlayScreen) finishSession() tea.Cmd {
	return func() tea.Msg {
		return sessionClosedMsg{Err: p.eng.FinishSession(context.Background(), p.state)}
	}
}

func (p *PlayScreen) abandonSession() tea.Cmd {
	return func() tea.Msg {
		return sessionClosedMsg{Err: p.eng.AbandonSession(context.Background(), p.state)}
	}
}
