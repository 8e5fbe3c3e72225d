package session

import (
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

// Source identifies where the next activity should be drawn from.
type Source string

const (
	SourceReviewQueue Source = "review_queue"
	SourceNewPool     Source = "new_pool"
)

// Phase is a step in the configured session sequence.
type Phase string

const (
	PhaseWarmup Phase = "warmup"
	PhaseMain   Phase = "main"
	PhaseBoss   Phase = "boss"
	PhaseRecap  Phase = "recap" // terminal, never planned
)

// NextItemPlan is the policy's decision for one round: which skill to target,
// at what difficulty, and from which pool. It never names a concrete
// activity — content resolution is a separate concern.
type NextItemPlan struct {
	Mode             mastery.Mode
	Skill            skills.Skill
	TargetDifficulty int // 1-5
	Source           Source
}

// AttemptSummary is one row of the bounded recent-attempt window the
// policy weighs for weakness ranking.
type AttemptSummary struct {
	Skill          skills.Skill
	IsCorrect      bool
	CreatedAt      time.Time
	ResponseTimeMs int
}

// RecentWindowSize bounds how many recent attempts the weakness ranking
// considers; more may be stored, only the newest this many count.
const RecentWindowSize = 16

// errorWeight is how much each recent error on a skill adds to its
// weakness score on top of the mastery deficit.
const errorWeight = 0.06
