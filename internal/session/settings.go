package session

// Adaptive settings defaults and bounds.
const (
	DefaultMainRounds    = 1
	MinMainRounds        = 1
	MaxMainRounds        = 4
	DefaultBossIntensity = 3
	DefaultDailyGoal     = 3
	MinDailyGoal         = 1
	MaxDailyGoal         = 10
)

// HintMode controls how hints surface during a round.
type HintMode string

const (
	HintGuided  HintMode = "guided"
	HintMinimal HintMode = "minimal"
	HintOff     HintMode = "off"
)

// Settings are the per-learner adaptive knobs.
type Settings struct {
	MainRounds    int
	BossEnabled   bool
	BossIntensity int
	HintMode      HintMode
	DailyGoal     int
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		MainRounds:    DefaultMainRounds,
		BossEnabled:   true,
		BossIntensity: DefaultBossIntensity,
		HintMode:      HintGuided,
		DailyGoal:     DefaultDailyGoal,
	}
}

// Clamped returns a copy with every knob forced into its valid range.
func (s Settings) Clamped() Settings {
	s.MainRounds = clampInt(s.MainRounds, MinMainRounds, MaxMainRounds)
	s.BossIntensity = clampInt(s.BossIntensity, 1, 5)
	s.DailyGoal = clampInt(s.DailyGoal, MinDailyGoal, MaxDailyGoal)
	switch s.HintMode {
	case HintGuided, HintMinimal, HintOff:
	default:
		s.HintMode = HintGuided
	}
	return s
}

// Phases derives the ordered phase list for one sitting:
// warmup, N main rounds, then boss if enabled. Recap is implicit past the end.
func (s Settings) Phases() []Phase {
	s = s.Clamped()
	phases := []Phase{PhaseWarmup}
	for i := 0; i < s.MainRounds; i++ {
		phases = append(phases, PhaseMain)
	}
	if s.BossEnabled {
		phases = append(phases, PhaseBoss)
	}
	return phases
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
