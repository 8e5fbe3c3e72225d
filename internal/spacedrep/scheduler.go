package spacedrep

import (
	"math"
	"time"
)

// SM-2-style interval computation, simplified to two quality buckets:
// a correct answer maps to quality 4 (first try) or 3 (retry), an incorrect
// answer resets the interval outright. Ease is a ratchet with a hard floor —
// it can shrink on failure but never below the same floor used for
// initialization, so intervals cannot decelerate without bound.

const (
	// DefaultIntervalDays seeds an activity with no prior review entry.
	DefaultIntervalDays = 1
	// DefaultEase seeds an activity with no prior review entry.
	DefaultEase = 2.5
	// MinEase is the hard ease floor.
	MinEase = 1.3
	// MaxEase is the soft ease ceiling reachable through repeated successes.
	MaxEase = 2.8
	// easePenalty is subtracted from ease on an incorrect answer.
	easePenalty = 0.2
)

// ReviewInput describes one finalized attempt for scheduling purposes.
// PreviousIntervalDays and PreviousEase are zero when no entry exists yet;
// defaults are applied internally.
type ReviewInput struct {
	Now                  time.Time
	WasCorrect           bool
	PreviousIntervalDays int
	PreviousEase         float64
	AttemptNumber        int // 1 or 2
}

// ReviewResult is the rescheduled state for the review queue upsert.
type ReviewResult struct {
	IntervalDays int
	Ease         float64
	DueAt        time.Time
}

// ComputeNextReview reschedules one activity after a finalized attempt.
// Always computable; no failure modes.
func ComputeNextReview(in ReviewInput) ReviewResult {
	prevInterval := in.PreviousIntervalDays
	if prevInterval < 1 {
		prevInterval = DefaultIntervalDays
	}
	prevEase := in.PreviousEase
	if prevEase < MinEase {
		prevEase = DefaultEase
	}

	intervalDays := 1
	ease := prevEase

	if in.WasCorrect {
		q := 4.0
		if in.AttemptNumber == 2 {
			q = 3.0
		}
		miss := 5.0 - q
		ease = clamp(MinEase, MaxEase, prevEase+(0.1-miss*(0.08+miss*0.02)))
		intervalDays = int(math.Round(float64(prevInterval) * ease))
		if intervalDays < 1 {
			intervalDays = 1
		}
	} else {
		ease = prevEase - easePenalty
		if ease < MinEase {
			ease = MinEase
		}
	}

	return ReviewResult{
		IntervalDays: intervalDays,
		Ease:         ease,
		DueAt:        in.Now.Add(time.Duration(intervalDays) * 24 * time.Hour),
	}
}

// Reschedule applies a ReviewResult to an existing entry (or a zero-valued
// one for a first attempt), returning the updated entry.
func Reschedule(entry ReviewEntry, in ReviewInput) ReviewEntry {
	in.PreviousIntervalDays = entry.IntervalDays
	in.PreviousEase = entry.Ease
	res := ComputeNextReview(in)
	entry.DueAt = res.DueAt
	entry.IntervalDays = res.IntervalDays
	entry.Ease = res.Ease
	entry.LastResult = in.WasCorrect
	return entry
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
