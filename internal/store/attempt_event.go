package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cogniz/ent"
	"github.com/abhisek/cogniz/ent/attemptevent"
	"github.com/abhisek/cogniz/internal/skills"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetSessionID(data.SessionID).
		SetRoundID(data.RoundID).
		SetActivityID(data.ActivityID).
		SetSkill(string(data.Skill)).
		SetMode(data.Mode).
		SetAttemptNumber(data.AttemptNumber).
		SetChoiceIndex(data.ChoiceIndex).
		SetIsCorrect(data.IsCorrect).
		SetUsedHint(data.UsedHint).
		SetResponseTimeMs(data.ResponseTimeMs).
		SetXpAwarded(data.XPAwarded).
		SetStrategyXp(data.StrategyXP).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, learnerID string, limit int) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	return attemptsFromRows(rows), nil
}

func (r *eventRepo) AttemptsSince(ctx context.Context, learnerID string, from time.Time) ([]Attempt, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.TimestampGTE(from),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts since: %w", err)
	}
	return attemptsFromRows(rows), nil
}

func (r *eventRepo) FirstAttemptsBetween(ctx context.Context, learnerID string, from, to time.Time) ([]Attempt, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.AttemptNumber(1),
			attemptevent.TimestampGTE(from),
			attemptevent.TimestampLT(to),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query first attempts: %w", err)
	}
	return attemptsFromRows(rows), nil
}

func attemptsFromRows(rows []*ent.AttemptEvent) []Attempt {
	out := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, Attempt{
			Skill:          skills.Normalize(row.Skill),
			Mode:           row.Mode,
			AttemptNumber:  row.AttemptNumber,
			IsCorrect:      row.IsCorrect,
			UsedHint:       row.UsedHint,
			ResponseTimeMs: row.ResponseTimeMs,
			CreatedAt:      row.Timestamp,
		})
	}
	return out
}
