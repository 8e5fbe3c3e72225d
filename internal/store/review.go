package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cogniz/ent"
	"github.com/abhisek/cogniz/ent/reviewentry"
	"github.com/abhisek/cogniz/internal/skills"
	"github.com/abhisek/cogniz/internal/spacedrep"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Upsert(ctx context.Context, learnerID string, e spacedrep.ReviewEntry) error {
	err := r.client.ReviewEntry.Create().
		SetLearnerID(learnerID).
		SetActivityID(e.ActivityID).
		SetSkill(string(e.Skill)).
		SetDueAt(e.DueAt).
		SetIntervalDays(e.IntervalDays).
		SetEase(e.Ease).
		SetLastResult(e.LastResult).
		OnConflictColumns(reviewentry.FieldLearnerID, reviewentry.FieldActivityID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert review entry: %w", err)
	}
	return nil
}

func (r *reviewRepo) Get(ctx context.Context, learnerID, activityID string) (*spacedrep.ReviewEntry, error) {
	row, err := r.client.ReviewEntry.Query().
		Where(
			reviewentry.LearnerID(learnerID),
			reviewentry.ActivityID(activityID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review entry: %w", err)
	}
	entries := reviewsFromRows([]*ent.ReviewEntry{row})
	return &entries[0], nil
}

func (r *reviewRepo) Due(ctx context.Context, learnerID string, now time.Time, limit int) ([]spacedrep.ReviewEntry, error) {
	q := r.client.ReviewEntry.Query().
		Where(
			reviewentry.LearnerID(learnerID),
			reviewentry.DueAtLTE(now),
		).
		Order(ent.Asc(reviewentry.FieldDueAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due reviews: %w", err)
	}
	return reviewsFromRows(rows), nil
}

func (r *reviewRepo) All(ctx context.Context, learnerID string) ([]spacedrep.ReviewEntry, error) {
	rows, err := r.client.ReviewEntry.Query().
		Where(reviewentry.LearnerID(learnerID)).
		Order(ent.Asc(reviewentry.FieldDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review entries: %w", err)
	}
	return reviewsFromRows(rows), nil
}

func reviewsFromRows(rows []*ent.ReviewEntry) []spacedrep.ReviewEntry {
	out := make([]spacedrep.ReviewEntry, 0, len(rows))
	for _, row := range rows {
		e := spacedrep.ReviewEntry{
			ActivityID:   row.ActivityID,
			Skill:        skills.Normalize(row.Skill),
			DueAt:        row.DueAt,
			IntervalDays: row.IntervalDays,
			Ease:         row.Ease,
		}
		if row.LastResult != nil {
			e.LastResult = *row.LastResult
		}
		out = append(out, e)
	}
	return out
}
