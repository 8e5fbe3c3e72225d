package session

import (
	"testing"
	"time"

	"github.com/abhisek/cogniz/internal/skills"
)

func TestBuildWeeklyReport_Empty(t *testing.T) {
	rep := BuildWeeklyReport(WeeklyInput{Now: time.Now()})

	if rep.RoundsThisWeek != 0 || rep.SessionsThisWeek != 0 {
		t.Errorf("rounds/sessions = %d/%d, want 0/0", rep.RoundsThisWeek, rep.SessionsThisWeek)
	}
	if rep.FirstTryAccuracy != 0 || rep.MasteryAccuracy != 0 {
		t.Errorf("accuracy = %d/%d, want 0/0 for empty window", rep.FirstTryAccuracy, rep.MasteryAccuracy)
	}
	if len(rep.Daily) != 7 {
		t.Errorf("daily = %d entries, want 7", len(rep.Daily))
	}
	if len(rep.SkillTrends) != skills.Count {
		t.Errorf("trends = %d entries, want %d", len(rep.SkillTrends), skills.Count)
	}
	if len(rep.Wins) != 1 {
		t.Errorf("wins = %v, want single consistency fallback", rep.Wins)
	}
}

func TestBuildWeeklyReport_FirstTryAndMasteryAccuracy(t *testing.T) {
	now := time.Now()
	attempts := []AttemptRecord{
		// Round 1: correct first try.
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now},
		// Round 2: wrong first, recovered on retry.
		{Skill: skills.Analyze, IsCorrect: false, AttemptNumber: 1, CreatedAt: now},
		{Skill: skills.Analyze, IsCorrect: true, AttemptNumber: 2, CreatedAt: now},
		// Round 3: wrong twice.
		{Skill: skills.Evaluate, IsCorrect: false, AttemptNumber: 1, CreatedAt: now},
		{Skill: skills.Evaluate, IsCorrect: false, AttemptNumber: 2, CreatedAt: now},
		// Round 4: correct first try.
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now},
	}

	rep := BuildWeeklyReport(WeeklyInput{Now: now, Attempts: attempts})

	if rep.RoundsThisWeek != 4 {
		t.Errorf("RoundsThisWeek = %d, want 4 (first attempts only)", rep.RoundsThisWeek)
	}
	if rep.FirstTryAccuracy != 50 {
		t.Errorf("FirstTryAccuracy = %d, want 50", rep.FirstTryAccuracy)
	}
	if rep.MasteryAccuracy != 75 { // 2 first-try + 1 recovery over 4 rounds
		t.Errorf("MasteryAccuracy = %d, want 75", rep.MasteryAccuracy)
	}
	if rep.StrategyRecoveries != 1 {
		t.Errorf("StrategyRecoveries = %d, want 1", rep.StrategyRecoveries)
	}
}

func TestBuildWeeklyReport_MasteryAccuracyCapped(t *testing.T) {
	now := time.Now()
	// Retry wins with no matching first-attempt rows cannot push the
	// mastery numerator past the round count.
	attempts := []AttemptRecord{
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now},
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 2, CreatedAt: now},
		{Skill: skills.Analyze, IsCorrect: true, AttemptNumber: 2, CreatedAt: now},
	}

	rep := BuildWeeklyReport(WeeklyInput{Now: now, Attempts: attempts})

	if rep.MasteryAccuracy != 100 {
		t.Errorf("MasteryAccuracy = %d, want capped 100", rep.MasteryAccuracy)
	}
}

func TestBuildWeeklyReport_SessionsAreDistinctDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	attempts := []AttemptRecord{
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now},
		{Skill: skills.Analyze, IsCorrect: true, AttemptNumber: 1, CreatedAt: now.Add(-time.Hour)},
		{Skill: skills.Evaluate, IsCorrect: true, AttemptNumber: 1, CreatedAt: now.AddDate(0, 0, -2)},
	}

	rep := BuildWeeklyReport(WeeklyInput{Now: now, Attempts: attempts})

	if rep.SessionsThisWeek != 2 {
		t.Errorf("SessionsThisWeek = %d, want 2 distinct days", rep.SessionsThisWeek)
	}
}

func TestBuildWeeklyReport_SkillTrendDeltas(t *testing.T) {
	now := time.Now()
	lastWeek := now.AddDate(0, 0, -8)
	attempts := []AttemptRecord{
		// This week: interpret 2/2.
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now},
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now},
		// Prior week: interpret 1/2.
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: lastWeek},
		{Skill: skills.Interpret, IsCorrect: false, AttemptNumber: 1, CreatedAt: lastWeek},
		// Prior week only: analyze 1/1. This week empty reports 0%.
		{Skill: skills.Analyze, IsCorrect: true, AttemptNumber: 1, CreatedAt: lastWeek},
	}

	rep := BuildWeeklyReport(WeeklyInput{Now: now, Attempts: attempts})

	var interpret, analyze SkillTrend
	for _, tr := range rep.SkillTrends {
		switch tr.Skill {
		case skills.Interpret:
			interpret = tr
		case skills.Analyze:
			analyze = tr
		}
	}

	if interpret.Accuracy != 100 || interpret.DeltaVsLastWeek != 50 {
		t.Errorf("interpret = %d%% delta %d, want 100%% delta 50", interpret.Accuracy, interpret.DeltaVsLastWeek)
	}
	if analyze.Accuracy != 0 || analyze.DeltaVsLastWeek != -100 {
		t.Errorf("analyze = %d%% delta %d, want 0%% delta -100", analyze.Accuracy, analyze.DeltaVsLastWeek)
	}
}

func TestBuildWeeklyReport_FocusAndStrongest(t *testing.T) {
	now := time.Now()
	attempts := []AttemptRecord{
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now},
		{Skill: skills.Evaluate, IsCorrect: false, AttemptNumber: 1, CreatedAt: now},
	}

	rep := BuildWeeklyReport(WeeklyInput{Now: now, Attempts: attempts})

	if rep.FocusSkill != skills.Evaluate {
		t.Errorf("FocusSkill = %s, want evaluate (lowest accuracy with attempts)", rep.FocusSkill)
	}
	if rep.StrongestSkill != skills.Interpret {
		t.Errorf("StrongestSkill = %s, want interpret", rep.StrongestSkill)
	}
}

func TestBuildWeeklyReport_DailyBuckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	attempts := []AttemptRecord{
		{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now},
		{Skill: skills.Analyze, IsCorrect: false, AttemptNumber: 1, CreatedAt: yesterday},
		{Skill: skills.Analyze, IsCorrect: true, AttemptNumber: 1, CreatedAt: yesterday},
	}

	rep := BuildWeeklyReport(WeeklyInput{Now: now, Attempts: attempts})

	last := rep.Daily[6]
	prev := rep.Daily[5]
	if last.Rounds != 1 || last.FirstTryAccuracy != 100 {
		t.Errorf("today = %d rounds %d%%, want 1 round 100%%", last.Rounds, last.FirstTryAccuracy)
	}
	if prev.Rounds != 2 || prev.FirstTryAccuracy != 50 {
		t.Errorf("yesterday = %d rounds %d%%, want 2 rounds 50%%", prev.Rounds, prev.FirstTryAccuracy)
	}
}

func TestBuildWeeklyReport_Wins(t *testing.T) {
	now := time.Now()
	var attempts []AttemptRecord
	for i := 0; i < 4; i++ {
		attempts = append(attempts, AttemptRecord{Skill: skills.Interpret, IsCorrect: true, AttemptNumber: 1, CreatedAt: now})
	}
	// Two recovery wins.
	for i := 0; i < 2; i++ {
		attempts = append(attempts,
			AttemptRecord{Skill: skills.Analyze, IsCorrect: false, AttemptNumber: 1, CreatedAt: now},
			AttemptRecord{Skill: skills.Analyze, IsCorrect: true, AttemptNumber: 2, CreatedAt: now},
		)
	}

	rep := BuildWeeklyReport(WeeklyInput{Now: now, Attempts: attempts, CurrentStreak: 5})

	if len(rep.Wins) != 3 {
		t.Errorf("wins = %v, want mastery + recoveries + streak", rep.Wins)
	}
}
