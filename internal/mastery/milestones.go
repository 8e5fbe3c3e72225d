package mastery

import (
	"fmt"

	"github.com/abhisek/cogniz/internal/skills"
)

// MilestoneInput describes a finalized round for badge key computation.
type MilestoneInput struct {
	Skill         skills.Skill
	NewLevel      int
	IsBoss        bool
	IsCorrect     bool
	SolvedOnRetry bool
}

// MilestoneBadgeKeys returns the badge keys a finalized round qualifies for.
// Keys are deduplicated here; persistence-level dedup against previously
// earned badges is the store's job.
func MilestoneBadgeKeys(in MilestoneInput) []string {
	var keys []string

	if in.NewLevel >= 3 {
		keys = append(keys, fmt.Sprintf("track_%s_adept", in.Skill))
	}
	if in.NewLevel >= MaxLevel {
		keys = append(keys, fmt.Sprintf("track_%s_master", in.Skill))
	}
	if in.IsBoss && in.IsCorrect {
		keys = append(keys, "boss_challenge_clear")
	}
	if in.SolvedOnRetry {
		keys = append(keys, "strategy_retry_recovery")
	}

	return dedupe(keys)
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
