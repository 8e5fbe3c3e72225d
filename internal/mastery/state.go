package mastery

import (
	"time"

	"github.com/abhisek/cogniz/internal/skills"
)

// Mode identifies the session phase an attempt was made in.
type Mode string

const (
	ModeWarmup Mode = "warmup"
	ModeMain   Mode = "main"
	ModeBoss   Mode = "boss"
	ModeReview Mode = "review"
)

// AllModes returns every session mode.
func AllModes() []Mode {
	return []Mode{ModeWarmup, ModeMain, ModeBoss, ModeReview}
}

// SkillState is the persistent progression record for one (learner, skill).
// Level only ever increases; MasteryScore stays clamped to [0,1].
type SkillState struct {
	Skill        skills.Skill
	Level        int     // 1-5
	XP           int     // cumulative, non-decreasing
	MasteryScore float64 // smoothed [0,1] quality estimate
	UpdatedAt    time.Time
}

// DefaultSkillState returns the state synthesized for a skill the learner
// has never been evaluated on.
func DefaultSkillState(skill skills.Skill) SkillState {
	return SkillState{Skill: skill, Level: 1}
}

// XPToNextLevel returns the XP still needed for the next level,
// or 0 at the terminal level.
func (s SkillState) XPToNextLevel() int {
	if s.Level >= MaxLevel {
		return 0
	}
	need := LevelXPRequirements[s.Level] - s.XP
	if need < 0 {
		return 0
	}
	return need
}
