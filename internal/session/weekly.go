package session

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/abhisek/cogniz/internal/skills"
)

// AttemptRecord is one stored attempt, as the weekly report reads it.
type AttemptRecord struct {
	Skill         skills.Skill
	IsCorrect     bool
	AttemptNumber int
	CreatedAt     time.Time
}

// DailyStat is one day's line in the weekly report.
type DailyStat struct {
	Date             string // YYYY-MM-DD
	Rounds           int
	FirstTryAccuracy int // percent
}

// SkillTrend compares one skill's first-try accuracy against the prior week.
type SkillTrend struct {
	Skill           skills.Skill
	Label           string
	Attempts        int
	Accuracy        int // percent, 0 when no attempts
	DeltaVsLastWeek int // percentage points
}

// WeeklyReport summarizes the rolling 7-day window against the 7 days
// before it.
type WeeklyReport struct {
	From               string
	To                 string
	RoundsThisWeek     int
	SessionsThisWeek   int // distinct days with first attempts
	FirstTryAccuracy   int // percent
	MasteryAccuracy    int // percent, credits retry recoveries
	StrategyRecoveries int
	Streak             int
	Daily              []DailyStat
	SkillTrends        []SkillTrend
	Wins               []string
	FocusSkill         skills.Skill
	StrongestSkill     skills.Skill
	CoachNotes         []string
}

// WeeklyInput carries everything the report derivation reads: every
// attempt from the last 14 local days and the learner's current streak.
type WeeklyInput struct {
	Now           time.Time
	Attempts      []AttemptRecord
	CurrentStreak int
}

type weekBucket struct {
	rounds          int
	sessions        int
	firstTryCorrect int
	recoveryWins    int
	bySkill         map[skills.Skill]*skillBucket
}

type skillBucket struct {
	attempts int
	correct  int
}

// BuildWeeklyReport derives the weekly picture. Pure. Accuracy figures
// use first attempts only; mastery accuracy additionally credits retry
// wins, capped so it never exceeds the round count. A skill or day with
// no attempts reports 0%, not missing data.
func BuildWeeklyReport(in WeeklyInput) WeeklyReport {
	today := dayStart(in.Now)
	weekStart := today.AddDate(0, 0, -6)
	weekEnd := today.AddDate(0, 0, 1)
	prevStart := weekStart.AddDate(0, 0, -7)

	var thisWeek, prevWeek []AttemptRecord
	for _, a := range in.Attempts {
		switch {
		case !a.CreatedAt.Before(weekStart) && a.CreatedAt.Before(weekEnd):
			thisWeek = append(thisWeek, a)
		case !a.CreatedAt.Before(prevStart) && a.CreatedAt.Before(weekStart):
			prevWeek = append(prevWeek, a)
		}
	}

	current := summarizeWeek(thisWeek)
	previous := summarizeWeek(prevWeek)

	daily := make([]DailyStat, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		next := day.AddDate(0, 0, 1)
		rounds, correct := 0, 0
		for _, a := range thisWeek {
			if a.AttemptNumber != 1 || a.CreatedAt.Before(day) || !a.CreatedAt.Before(next) {
				continue
			}
			rounds++
			if a.IsCorrect {
				correct++
			}
		}
		daily = append(daily, DailyStat{
			Date:             day.Format("2006-01-02"),
			Rounds:           rounds,
			FirstTryAccuracy: percent(correct, rounds),
		})
	}

	trends := make([]SkillTrend, 0, skills.Count)
	for _, sk := range skills.All() {
		cur := current.bySkill[sk]
		prev := previous.bySkill[sk]
		curAcc, curAttempts := 0, 0
		if cur != nil {
			curAcc = percent(cur.correct, cur.attempts)
			curAttempts = cur.attempts
		}
		prevAcc := 0
		if prev != nil {
			prevAcc = percent(prev.correct, prev.attempts)
		}
		trends = append(trends, SkillTrend{
			Skill:           sk,
			Label:           sk.Label(),
			Attempts:        curAttempts,
			Accuracy:        curAcc,
			DeltaVsLastWeek: curAcc - prevAcc,
		})
	}

	focus, strongest := focusAndStrongest(trends)

	firstTryAcc := percent(current.firstTryCorrect, current.rounds)
	masteryCorrect := current.firstTryCorrect + current.recoveryWins
	if masteryCorrect > current.rounds {
		masteryCorrect = current.rounds
	}
	masteryAcc := percent(masteryCorrect, current.rounds)

	var wins []string
	if masteryAcc >= 75 {
		wins = append(wins, fmt.Sprintf("Mastery accuracy %d%% this week", masteryAcc))
	}
	if current.recoveryWins >= 2 {
		wins = append(wins, fmt.Sprintf("Strategy recoveries: %d", current.recoveryWins))
	}
	if in.CurrentStreak > 0 {
		wins = append(wins, fmt.Sprintf("Current streak: %d days", in.CurrentStreak))
	}
	if len(wins) == 0 {
		wins = append(wins, "Consistency is building. Keep short daily sessions.")
	}

	coachNotes := []string{
		fmt.Sprintf("Celebrate %s: this was the strongest track this week.", strongest.Label()),
		fmt.Sprintf("Focus next on %s with two targeted rounds each day.", focus.Label()),
		"Aim for one recovery win each session by using the hint then retrying with evidence.",
	}

	return WeeklyReport{
		From:               weekStart.Format("2006-01-02"),
		To:                 today.Format("2006-01-02"),
		RoundsThisWeek:     current.rounds,
		SessionsThisWeek:   current.sessions,
		FirstTryAccuracy:   firstTryAcc,
		MasteryAccuracy:    masteryAcc,
		StrategyRecoveries: current.recoveryWins,
		Streak:             in.CurrentStreak,
		Daily:              daily,
		SkillTrends:        trends,
		Wins:               wins,
		FocusSkill:         focus,
		StrongestSkill:     strongest,
		CoachNotes:         coachNotes,
	}
}

func summarizeWeek(rows []AttemptRecord) weekBucket {
	b := weekBucket{bySkill: make(map[skills.Skill]*skillBucket)}
	days := make(map[string]bool)
	for _, a := range rows {
		if a.AttemptNumber == 2 && a.IsCorrect {
			b.recoveryWins++
		}
		if a.AttemptNumber != 1 {
			continue
		}
		b.rounds++
		days[dayStart(a.CreatedAt).Format("2006-01-02")] = true
		if a.IsCorrect {
			b.firstTryCorrect++
		}
		sb := b.bySkill[a.Skill]
		if sb == nil {
			sb = &skillBucket{}
			b.bySkill[a.Skill] = sb
		}
		sb.attempts++
		if a.IsCorrect {
			sb.correct++
		}
	}
	b.sessions = len(days)
	return b
}

// focusAndStrongest ranks skills by accuracy among those with attempts
// this week, falling back to the full list when nothing was played.
func focusAndStrongest(trends []SkillTrend) (focus, strongest skills.Skill) {
	pool := make([]SkillTrend, 0, len(trends))
	for _, t := range trends {
		if t.Attempts > 0 {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		pool = trends
	}
	asc := make([]SkillTrend, len(pool))
	copy(asc, pool)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Accuracy < asc[j].Accuracy })
	desc := make([]SkillTrend, len(pool))
	copy(desc, pool)
	sort.SliceStable(desc, func(i, j int) bool { return desc[i].Accuracy > desc[j].Accuracy })
	return asc[0].Skill, desc[0].Skill
}

func percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
