package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cogniz/ent"
	"github.com/abhisek/cogniz/ent/streak"
)

// streakRepo implements StreakRepo using the ent client.
type streakRepo struct {
	client *ent.Client
}

func (r *streakRepo) Get(ctx context.Context, learnerID string) (StreakData, error) {
	row, err := r.client.Streak.Query().
		Where(streak.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return StreakData{}, nil
		}
		return StreakData{}, fmt.Errorf("query streak: %w", err)
	}
	return StreakData{
		CurrentStreak:  row.CurrentStreak,
		LastPlayedDate: row.LastPlayedDate,
	}, nil
}

func (r *streakRepo) Save(ctx context.Context, learnerID string, d StreakData) error {
	err := r.client.Streak.Create().
		SetLearnerID(learnerID).
		SetCurrentStreak(d.CurrentStreak).
		SetLastPlayedDate(d.LastPlayedDate).
		OnConflictColumns(streak.FieldLearnerID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert streak: %w", err)
	}
	return nil
}
