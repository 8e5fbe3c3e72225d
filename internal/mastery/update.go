package mastery

// The mastery update engine. One call per finalized round converts the
// outcome into an XP award, a smoothed mastery score, and any level
// transitions. Pure: no I/O, no clock, no failure modes for valid input.
// Callers are responsible for passing attemptNumber in {1,2} and a mode
// from AllModes; anything else is a programming error, not a runtime
// condition this package recovers from.

// MaxLevel is the terminal level per skill.
const MaxLevel = 5

// LevelXPRequirements maps a level to the cumulative XP needed to leave it.
// Level 5 is terminal and has no requirement.
var LevelXPRequirements = map[int]int{
	1: 80,
	2: 200,
	3: 360,
	4: 560,
}

// MasteryFloorForLevelUp is the minimum smoothed mastery score required to
// advance a level, regardless of accumulated XP.
const MasteryFloorForLevelUp = 0.82

// emaRetention and emaBlend control the exponential moving average for the
// mastery score: how much of the previous score survives one update and how
// much the new quality signal contributes.
const (
	emaRetention = 0.78
	emaBlend     = 0.22
)

// UpdateInput carries the current skill state plus one round outcome.
type UpdateInput struct {
	CurrentLevel        int // 1-5
	CurrentXP           int
	CurrentMasteryScore float64 // [0,1]
	IsCorrect           bool
	AttemptNumber       int // 1 or 2
	UsedHint            bool
	Mode                Mode
}

// UpdateResult is the outcome of applying one round to a skill state.
type UpdateResult struct {
	NewLevel        int
	NewXP           int
	NewMasteryScore float64
	LeveledUp       bool
	XPAwarded       int
	StrategyXP      int // subset of XPAwarded earned by hint use / retry success
}

var modeBaseXP = map[Mode]int{
	ModeWarmup: 10,
	ModeMain:   16,
	ModeReview: 18,
	ModeBoss:   28,
}

// ComputeXPAward returns the XP for one outcome, with the strategy sub-total
// broken out. Strategy XP rewards hint use and retry recovery; it is always
// contained in the total, never a separate pool.
func ComputeXPAward(mode Mode, isCorrect bool, attemptNumber int, usedHint bool) (xpAwarded, strategyXP int) {
	xp := modeBaseXP[mode]

	if isCorrect {
		if attemptNumber == 1 {
			xp += 10
		} else {
			xp += 6
		}
	} else {
		xp += 2
	}

	if usedHint {
		xp += 5
		strategyXP += 5
	}
	if attemptNumber == 2 && isCorrect {
		xp += 8
		strategyXP += 8
	}

	return xp, strategyXP
}

// quality maps an outcome to a 0-1 signal for mastery smoothing.
// Independent of XP: a hinted first-try success scores slightly below a
// clean one, and retry-correct dominates the hint rule.
func quality(isCorrect bool, attemptNumber int, usedHint bool) float64 {
	if isCorrect && attemptNumber == 1 {
		if usedHint {
			return 0.9
		}
		return 1.0
	}
	if isCorrect && attemptNumber == 2 {
		return 0.75
	}
	if attemptNumber == 1 {
		return 0.35
	}
	return 0.2
}

// UpdateState applies one finalized round to a skill state.
//
// The level-up loop re-checks the same final mastery score against each
// successive XP threshold, so a single high-quality round can climb several
// levels when XP is far ahead. Levels never decrease.
func UpdateState(in UpdateInput) UpdateResult {
	xpAwarded, strategyXP := ComputeXPAward(in.Mode, in.IsCorrect, in.AttemptNumber, in.UsedHint)
	newXP := in.CurrentXP + xpAwarded

	q := quality(in.IsCorrect, in.AttemptNumber, in.UsedHint)
	newMastery := clamp01(in.CurrentMasteryScore*emaRetention + q*emaBlend)

	newLevel := in.CurrentLevel
	leveledUp := false
	for newLevel < MaxLevel {
		requirement := LevelXPRequirements[newLevel]
		if newXP >= requirement && newMastery >= MasteryFloorForLevelUp {
			newLevel++
			leveledUp = true
		} else {
			break
		}
	}

	return UpdateResult{
		NewLevel:        newLevel,
		NewXP:           newXP,
		NewMasteryScore: newMastery,
		LeveledUp:       leveledUp,
		XPAwarded:       xpAwarded,
		StrategyXP:      strategyXP,
	}
}

// Apply folds an UpdateResult back into a SkillState.
func Apply(state SkillState, res UpdateResult) SkillState {
	state.Level = res.NewLevel
	state.XP = res.NewXP
	state.MasteryScore = res.NewMasteryScore
	return state
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
