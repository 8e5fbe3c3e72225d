// Package badges derives and awards achievement badges. Keys are
// stable strings persisted per learner; awarding deduplicates against
// previously earned keys so a badge is only ever granted once.
package badges

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

// Streak badge thresholds, in days.
const (
	StreakBronze = 3
	StreakSilver = 7
	StreakGold   = 14
)

// Input is everything one finalized round contributes to badge
// derivation.
type Input struct {
	Skill         skills.Skill
	NewLevel      int
	IsBoss        bool
	IsCorrect     bool
	SolvedOnRetry bool
	Streak        int // daily streak after this round
	Now           time.Time
}

// CandidateKeys returns every badge key this round qualifies for,
// de-duplicated, in stable order. The caller filters against already
// earned keys before awarding.
func CandidateKeys(in Input) []string {
	keys := mastery.MilestoneBadgeKeys(mastery.MilestoneInput{
		Skill:         in.Skill,
		NewLevel:      in.NewLevel,
		IsBoss:        in.IsBoss,
		IsCorrect:     in.IsCorrect,
		SolvedOnRetry: in.SolvedOnRetry,
	})

	if in.IsBoss && in.IsCorrect {
		keys = append(keys, BossDailyKey(in.Now))
	}
	if in.Streak >= StreakBronze {
		keys = append(keys, "streak_3")
	}
	if in.Streak >= StreakSilver {
		keys = append(keys, "streak_7")
	}
	if in.Streak >= StreakGold {
		keys = append(keys, "streak_14")
	}

	return dedupe(keys)
}

// BossDailyKey is the once-per-day boss clear badge for the given day.
func BossDailyKey(now time.Time) string {
	return "boss_daily_" + now.Format("2006-01-02")
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Label renders a badge key as display text.
func Label(key string) string {
	switch {
	case key == "boss_challenge_clear":
		return "Boss Challenge Clear"
	case key == "strategy_retry_recovery":
		return "Strategy Recovery"
	case key == "streak_3":
		return "3-Day Streak"
	case key == "streak_7":
		return "7-Day Streak"
	case key == "streak_14":
		return "14-Day Streak"
	case strings.HasPrefix(key, "boss_daily_"):
		return "Daily Boss " + strings.TrimPrefix(key, "boss_daily_")
	case strings.HasPrefix(key, "track_") && strings.HasSuffix(key, "_adept"):
		return fmt.Sprintf("%s Adept", trackLabel(key, "_adept"))
	case strings.HasPrefix(key, "track_") && strings.HasSuffix(key, "_master"):
		return fmt.Sprintf("%s Master", trackLabel(key, "_master"))
	default:
		return key
	}
}

// Icon returns the display glyph for a badge key.
func Icon(key string) string {
	switch {
	case key == "boss_challenge_clear" || strings.HasPrefix(key, "boss_daily_"):
		return "🏆"
	case key == "strategy_retry_recovery":
		return "🔥"
	case strings.HasPrefix(key, "streak_"):
		return "⚡"
	case strings.HasSuffix(key, "_master"):
		return "💎"
	case strings.HasSuffix(key, "_adept"):
		return "🌟"
	default:
		return "✦"
	}
}

func trackLabel(key, suffix string) string {
	raw := strings.TrimSuffix(strings.TrimPrefix(key, "track_"), suffix)
	return skills.Normalize(raw).Label()
}
