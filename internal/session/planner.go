package session

import (
	"math"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

// PlannerInput is everything the selection policy looks at for one round.
type PlannerInput struct {
	Now            time.Time
	DueReviewCount int
	DueBySkill     map[skills.Skill]int
	SkillStates    []mastery.SkillState
	RecentAttempts []AttemptSummary // most-recent-last; only the newest RecentWindowSize count
	Phase          Phase
	BossIntensity  int // 1-5, 0 means default 3
}

// ChooseNextItem picks the skill, target difficulty, and source pool for the
// next round. Pure; first matching rule wins:
//
//  1. due reviews pre-empt fresh content outside boss rounds,
//  2. warmup targets the weakest skill one notch below its level,
//  3. boss stretches the skill closest to leveling one notch above,
//  4. main drills the weakest skill at its level.
func ChooseNextItem(in PlannerInput) NextItemPlan {
	window := in.RecentAttempts
	if len(window) > RecentWindowSize {
		window = window[len(window)-RecentWindowSize:]
	}
	errorsBySkill := make(map[skills.Skill]int)
	for _, a := range window {
		if !a.IsCorrect {
			errorsBySkill[a.Skill]++
		}
	}

	weakest := weakestSkill(in.SkillStates, errorsBySkill)
	nearLevelUp := readiestSkill(in.SkillStates)

	if in.DueReviewCount > 0 && in.Phase != PhaseBoss {
		due := mostDueSkill(in.DueBySkill, weakest.Skill)
		return NextItemPlan{
			Mode:             mastery.ModeReview,
			Skill:            due,
			TargetDifficulty: weakest.Level,
			Source:           SourceReviewQueue,
		}
	}

	switch in.Phase {
	case PhaseWarmup:
		// Slightly below current level to build confidence.
		return NextItemPlan{
			Mode:             mastery.ModeWarmup,
			Skill:            weakest.Skill,
			TargetDifficulty: skills.ClampLevel(weakest.Level - 1),
			Source:           SourceNewPool,
		}
	case PhaseBoss:
		intensity := in.BossIntensity
		if intensity == 0 {
			intensity = DefaultBossIntensity
		}
		// Half-up rounding so intensity 2 lands on no offset.
		offset := int(math.Floor(float64(intensity-3)/2 + 0.5))
		return NextItemPlan{
			Mode:             mastery.ModeBoss,
			Skill:            nearLevelUp.Skill,
			TargetDifficulty: skills.ClampLevel(min(5, nearLevelUp.Level+1) + offset),
			Source:           SourceNewPool,
		}
	}

	return NextItemPlan{
		Mode:             mastery.ModeMain,
		Skill:            weakest.Skill,
		TargetDifficulty: weakest.Level,
		Source:           SourceNewPool,
	}
}

// weakestSkill ranks by mastery deficit plus recent-error pressure.
func weakestSkill(states []mastery.SkillState, errorsBySkill map[skills.Skill]int) mastery.SkillState {
	best := mastery.DefaultSkillState(skills.Interpret)
	bestScore := math.Inf(-1)
	for _, s := range states {
		score := (1 - s.MasteryScore) + float64(errorsBySkill[s.Skill])*errorWeight
		if score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best
}

// readiestSkill is the one closest to advancing: level carries more weight
// than the smoothed score, so a high-level skill wins the boss slot.
func readiestSkill(states []mastery.SkillState) mastery.SkillState {
	best := mastery.DefaultSkillState(skills.Interpret)
	bestScore := math.Inf(-1)
	for _, s := range states {
		score := float64(s.Level)*0.35 + s.MasteryScore
		if score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best
}

// mostDueSkill picks the skill with the most due reviews, falling back to
// the weakest skill when counts are empty or tied at zero.
func mostDueSkill(dueBySkill map[skills.Skill]int, fallback skills.Skill) skills.Skill {
	best := fallback
	bestCount := 0
	for _, s := range skills.All() { // fixed iteration order for deterministic ties
		if c := dueBySkill[s]; c > bestCount {
			bestCount = c
			best = s
		}
	}
	return best
}
