package spacedrep

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestComputeNextReview_FirstCorrectAttempt(t *testing.T) {
	// No prior entry: interval 1, ease 2.5. Correct on attempt 1 →
	// ease 2.5 + (0.1 - 1*0.08) = 2.52, interval round(1*2.52) = 3.
	res := ComputeNextReview(ReviewInput{
		Now:           testNow,
		WasCorrect:    true,
		AttemptNumber: 1,
	})
	if res.Ease < 2.519 || res.Ease > 2.521 {
		t.Errorf("Ease = %f, want 2.52", res.Ease)
	}
	if res.IntervalDays != 3 {
		t.Errorf("IntervalDays = %d, want 3", res.IntervalDays)
	}
	wantDue := testNow.Add(3 * 24 * time.Hour)
	if !res.DueAt.Equal(wantDue) {
		t.Errorf("DueAt = %v, want %v", res.DueAt, wantDue)
	}
}

func TestComputeNextReview_CorrectOnRetry(t *testing.T) {
	// Quality 3: ease delta = 0.1 - 2*(0.08 + 2*0.02) = -0.14.
	res := ComputeNextReview(ReviewInput{
		Now:                  testNow,
		WasCorrect:           true,
		PreviousIntervalDays: 6,
		PreviousEase:         2.5,
		AttemptNumber:        2,
	})
	if res.Ease < 2.359 || res.Ease > 2.361 {
		t.Errorf("Ease = %f, want 2.36", res.Ease)
	}
	if res.IntervalDays != 14 { // round(6 * 2.36)
		t.Errorf("IntervalDays = %d, want 14", res.IntervalDays)
	}
}

func TestComputeNextReview_IncorrectResetsInterval(t *testing.T) {
	for _, prevInterval := range []int{1, 7, 30, 365} {
		res := ComputeNextReview(ReviewInput{
			Now:                  testNow,
			WasCorrect:           false,
			PreviousIntervalDays: prevInterval,
			PreviousEase:         2.5,
			AttemptNumber:        1,
		})
		if res.IntervalDays != 1 {
			t.Errorf("prev interval %d: IntervalDays = %d, want 1", prevInterval, res.IntervalDays)
		}
		if res.Ease < 2.299 || res.Ease > 2.301 {
			t.Errorf("Ease = %f, want 2.3", res.Ease)
		}
	}
}

func TestComputeNextReview_EaseFloor(t *testing.T) {
	ease := DefaultEase
	interval := DefaultIntervalDays
	for i := 0; i < 50; i++ {
		res := ComputeNextReview(ReviewInput{
			Now:                  testNow,
			WasCorrect:           false,
			PreviousIntervalDays: interval,
			PreviousEase:         ease,
			AttemptNumber:        2,
		})
		if res.Ease < MinEase {
			t.Fatalf("ease %f fell below floor at iteration %d", res.Ease, i)
		}
		ease = res.Ease
		interval = res.IntervalDays
	}
	if ease != MinEase {
		t.Errorf("ease after repeated failures = %f, want floor %f", ease, MinEase)
	}
}

func TestComputeNextReview_EaseCeiling(t *testing.T) {
	ease := DefaultEase
	interval := DefaultIntervalDays
	for i := 0; i < 50; i++ {
		res := ComputeNextReview(ReviewInput{
			Now:                  testNow,
			WasCorrect:           true,
			PreviousIntervalDays: interval,
			PreviousEase:         ease,
			AttemptNumber:        1,
		})
		if res.Ease > MaxEase {
			t.Fatalf("ease %f exceeded ceiling at iteration %d", res.Ease, i)
		}
		ease = res.Ease
		// Cap the interval so the loop stays numerically tame.
		interval = min(res.IntervalDays, 365)
	}
	if ease != MaxEase {
		t.Errorf("ease after repeated successes = %f, want ceiling %f", ease, MaxEase)
	}
}

func TestComputeNextReview_DefaultsApplied(t *testing.T) {
	// Zero-valued previous fields behave exactly like the documented defaults.
	fromZero := ComputeNextReview(ReviewInput{Now: testNow, WasCorrect: true, AttemptNumber: 1})
	explicit := ComputeNextReview(ReviewInput{
		Now:                  testNow,
		WasCorrect:           true,
		PreviousIntervalDays: DefaultIntervalDays,
		PreviousEase:         DefaultEase,
		AttemptNumber:        1,
	})
	if fromZero != explicit {
		t.Errorf("zero-value input %+v != explicit defaults %+v", fromZero, explicit)
	}
}

func TestReschedule_UpdatesEntry(t *testing.T) {
	entry := ReviewEntry{
		ActivityID:   "act-1",
		Skill:        "infer",
		IntervalDays: 3,
		Ease:         2.52,
		DueAt:        testNow.Add(-24 * time.Hour),
	}
	updated := Reschedule(entry, ReviewInput{Now: testNow, WasCorrect: true, AttemptNumber: 1})
	if !updated.LastResult {
		t.Error("LastResult should be true")
	}
	if updated.IntervalDays <= entry.IntervalDays {
		t.Errorf("interval %d did not grow from %d", updated.IntervalDays, entry.IntervalDays)
	}
	if updated.DueAt.Before(testNow) {
		t.Error("DueAt should be in the future")
	}
}

func TestReviewEntry_DueHelpers(t *testing.T) {
	entry := ReviewEntry{DueAt: testNow}
	if !entry.IsDue(testNow) {
		t.Error("entry due exactly now should be due")
	}
	if entry.IsDue(testNow.Add(-time.Minute)) {
		t.Error("entry should not be due a minute early")
	}
	if d := entry.OverdueDays(testNow.Add(48 * time.Hour)); d < 1.99 || d > 2.01 {
		t.Errorf("OverdueDays = %f, want 2", d)
	}
	if d := entry.DaysUntilDue(testNow.Add(-36 * time.Hour)); d != 2 {
		t.Errorf("DaysUntilDue = %d, want 2", d)
	}
}

func TestSummarize(t *testing.T) {
	entries := []ReviewEntry{
		{Skill: "evaluate", DueAt: testNow.Add(-time.Hour)},
		{Skill: "evaluate", DueAt: testNow.Add(-48 * time.Hour)},
		{Skill: "infer", DueAt: testNow},
		{Skill: "analyze", DueAt: testNow.Add(time.Hour)},
	}
	sum := Summarize(entries, testNow)
	if sum.Total != 3 {
		t.Errorf("Total = %d, want 3", sum.Total)
	}
	if sum.BySkill["evaluate"] != 2 {
		t.Errorf("evaluate due = %d, want 2", sum.BySkill["evaluate"])
	}
	if sum.BySkill["infer"] != 1 {
		t.Errorf("infer due = %d, want 1", sum.BySkill["infer"])
	}
	if sum.BySkill["analyze"] != 0 {
		t.Errorf("analyze due = %d, want 0", sum.BySkill["analyze"])
	}
}
