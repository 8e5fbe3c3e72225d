package spacedrep

import (
	"time"

	"github.com/abhisek/cogniz/internal/skills"
)

// ReviewEntry is the spaced-repetition record for one (learner, activity)
// pair. Created on the first finalized attempt, rescheduled forward on every
// subsequent one, never deleted.
type ReviewEntry struct {
	ActivityID   string
	Skill        skills.Skill
	DueAt        time.Time
	IntervalDays int
	Ease         float64
	LastResult   bool
}

// IsDue returns true if the entry is at or past its due date.
func (e *ReviewEntry) IsDue(now time.Time) bool {
	return !now.Before(e.DueAt)
}

// OverdueDays returns how many days past due the entry is, 0 if not yet due.
func (e *ReviewEntry) OverdueDays(now time.Time) float64 {
	if now.Before(e.DueAt) {
		return 0
	}
	return now.Sub(e.DueAt).Hours() / 24.0
}

// DaysUntilDue returns whole days until the entry comes due, 0 if already due.
func (e *ReviewEntry) DaysUntilDue(now time.Time) int {
	if e.IsDue(now) {
		return 0
	}
	return int(e.DueAt.Sub(now).Hours()/24.0) + 1
}

// DueSummary aggregates due counts for the selection policy.
type DueSummary struct {
	Total   int
	BySkill map[skills.Skill]int
}

// Summarize counts due entries overall and per skill.
func Summarize(entries []ReviewEntry, now time.Time) DueSummary {
	sum := DueSummary{BySkill: make(map[skills.Skill]int)}
	for i := range entries {
		if entries[i].IsDue(now) {
			sum.Total++
			sum.BySkill[entries[i].Skill]++
		}
	}
	return sum
}
