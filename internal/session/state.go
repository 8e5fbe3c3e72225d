package session

import (
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

// RoundStatus is the lifecycle state of the active round.
type RoundStatus int

const (
	RoundPresented     RoundStatus = iota // question shown, awaiting first answer
	RoundAwaitingRetry                    // first answer wrong, one retry allowed
	RoundFinalized                        // outcome recorded, round closed
)

// Round is the active question and its attempt bookkeeping. A round
// finalizes exactly once; a round abandoned before finalization leaves
// no trace in the session aggregates or the store.
type Round struct {
	Plan        NextItemPlan
	ActivityID  string
	Status      RoundStatus
	AttemptNumber int // 1 on presentation, 2 after a wrong first answer
	UsedHint      bool
	HintAvailable bool
	PresentedAt   time.Time
}

// RoundOutcome is the finalized result of one round, consumed by the
// runner to drive mastery updates, review scheduling, and persistence.
type RoundOutcome struct {
	Plan          NextItemPlan
	ActivityID    string
	IsCorrect     bool
	AttemptNumber int // attempt on which the round ended
	UsedHint      bool
	RecoveryWin   bool // wrong first, correct on retry
	XPAwarded     int
	StrategyXP    int
	ResponseTimeMs int
}

// LevelUp records a skill crossing a level boundary during this session,
// for recap display.
type LevelUp struct {
	Skill skills.Skill
	From  int
	To    int
}

// SkillTally is per-skill performance within a single session.
type SkillTally struct {
	Rounds  int
	Correct int
	XP      int
}

// SessionState tracks the runtime state of an active sitting.
type SessionState struct {
	// SessionID is the UUID for this sitting.
	SessionID string

	// Settings is the adaptive configuration the sitting was started with.
	Settings Settings

	// Phases is the ordered phase list built from Settings.
	Phases []Phase

	// PhaseIndex is the position in Phases; past the end means recap.
	PhaseIndex int

	// CurrentRound is the active round, nil between rounds.
	CurrentRound *Round

	// StartTime is when the sitting began.
	StartTime time.Time

	// Aggregates for the recap screen. Only finalized rounds count.
	XP              int
	StrategyXP      int
	Rounds          int
	Correct         int
	FirstTryCorrect int
	Recoveries      int
	HintsUsed       int

	// Streak is the in-session run of consecutive correct rounds.
	Streak     int
	BestStreak int

	// LevelUps lists level boundaries crossed this sitting.
	LevelUps []LevelUp

	// Badges lists badge keys earned this sitting.
	Badges []string

	// BySkill tracks per-skill tallies for the recap.
	BySkill map[skills.Skill]*SkillTally
}

// NewSessionState builds a fresh sitting from the learner's settings.
func NewSessionState(sessionID string, settings Settings) *SessionState {
	settings = settings.Clamped()
	return &SessionState{
		SessionID: sessionID,
		Settings:  settings,
		Phases:    settings.Phases(),
		StartTime: time.Now(),
		BySkill:   make(map[skills.Skill]*SkillTally),
	}
}

// CurrentPhase returns the phase of the active slot, or PhaseRecap once
// every configured phase has been played.
func (s *SessionState) CurrentPhase() Phase {
	if s.PhaseIndex >= len(s.Phases) {
		return PhaseRecap
	}
	return s.Phases[s.PhaseIndex]
}

// AdvancePhase moves to the next slot in the sequence.
func (s *SessionState) AdvancePhase() {
	if s.PhaseIndex < len(s.Phases) {
		s.PhaseIndex++
	}
}

// Restart resets the phase cursor and the session aggregates. Persistent
// progress (mastery, reviews, badges already written) is untouched.
func (s *SessionState) Restart() {
	s.PhaseIndex = 0
	s.CurrentRound = nil
	s.StartTime = time.Now()
	s.XP = 0
	s.StrategyXP = 0
	s.Rounds = 0
	s.Correct = 0
	s.FirstTryCorrect = 0
	s.Recoveries = 0
	s.HintsUsed = 0
	s.Streak = 0
	s.BestStreak = 0
	s.LevelUps = nil
	s.Badges = nil
	s.BySkill = make(map[skills.Skill]*SkillTally)
}

// BeginRound presents a new round for the given plan and activity.
// Any unfinalized previous round is discarded without effect.
func BeginRound(state *SessionState, plan NextItemPlan, activityID string, now time.Time) *Round {
	r := &Round{
		Plan:          plan,
		ActivityID:    activityID,
		Status:        RoundPresented,
		AttemptNumber: 1,
		PresentedAt:   now,
	}
	state.CurrentRound = r
	return r
}

// ShowHint marks the hint as used for the current round. Respects the
// learner's hint mode; no-op when hints are off or no round is active.
func ShowHint(state *SessionState) bool {
	r := state.CurrentRound
	if r == nil || r.Status == RoundFinalized {
		return false
	}
	if state.Settings.HintMode == HintOff {
		return false
	}
	r.UsedHint = true
	return true
}

// HandleAnswer processes one answer for the current round. A wrong first
// answer opens a single retry (with the hint made available) and returns
// nil; every other answer finalizes the round, updates the session
// aggregates, and returns the outcome. Returns nil when no round is
// active or the round is already finalized.
func HandleAnswer(state *SessionState, correct bool, now time.Time) *RoundOutcome {
	r := state.CurrentRound
	if r == nil || r.Status == RoundFinalized {
		return nil
	}

	if !correct && r.AttemptNumber == 1 {
		r.Status = RoundAwaitingRetry
		r.AttemptNumber = 2
		if state.Settings.HintMode != HintOff {
			r.HintAvailable = true
		}
		return nil
	}

	r.Status = RoundFinalized
	xp, strategyXP := mastery.ComputeXPAward(r.Plan.Mode, correct, r.AttemptNumber, r.UsedHint)

	out := &RoundOutcome{
		Plan:           r.Plan,
		ActivityID:     r.ActivityID,
		IsCorrect:      correct,
		AttemptNumber:  r.AttemptNumber,
		UsedHint:       r.UsedHint,
		RecoveryWin:    correct && r.AttemptNumber > 1,
		XPAwarded:      xp,
		StrategyXP:     strategyXP,
		ResponseTimeMs: int(now.Sub(r.PresentedAt).Milliseconds()),
	}
	applyOutcome(state, out)
	return out
}

// AbandonRound drops the current round without finalizing it. Nothing is
// written anywhere; the phase cursor does not move.
func AbandonRound(state *SessionState) {
	if state.CurrentRound != nil && state.CurrentRound.Status != RoundFinalized {
		state.CurrentRound = nil
	}
}

// RecordLevelUp appends a crossed level boundary for recap display.
func (s *SessionState) RecordLevelUp(skill skills.Skill, from, to int) {
	if to > from {
		s.LevelUps = append(s.LevelUps, LevelUp{Skill: skill, From: from, To: to})
	}
}

// RecordBadges appends newly earned badge keys for recap display.
func (s *SessionState) RecordBadges(keys []string) {
	s.Badges = append(s.Badges, keys...)
}

func applyOutcome(state *SessionState, out *RoundOutcome) {
	state.Rounds++
	state.XP += out.XPAwarded
	state.StrategyXP += out.StrategyXP
	if out.IsCorrect {
		state.Correct++
		state.Streak++
		if state.Streak > state.BestStreak {
			state.BestStreak = state.Streak
		}
		if out.AttemptNumber == 1 {
			state.FirstTryCorrect++
		} else {
			state.Recoveries++
		}
	} else {
		state.Streak = 0
	}
	if out.UsedHint {
		state.HintsUsed++
	}

	tally := state.BySkill[out.Plan.Skill]
	if tally == nil {
		tally = &SkillTally{}
		state.BySkill[out.Plan.Skill] = tally
	}
	tally.Rounds++
	tally.XP += out.XPAwarded
	if out.IsCorrect {
		tally.Correct++
	}
}
