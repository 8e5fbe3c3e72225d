package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cogniz/ent"
	"github.com/abhisek/cogniz/ent/badge"
)

// badgeRepo implements BadgeRepo using the ent client.
type badgeRepo struct {
	client *ent.Client
}

func (r *badgeRepo) EarnedBadgeKeys(ctx context.Context, learnerID string, keys []string) (map[string]bool, error) {
	if len(keys) == 0 {
		return map[string]bool{}, nil
	}
	rows, err := r.client.Badge.Query().
		Where(
			badge.LearnerID(learnerID),
			badge.BadgeKeyIn(keys...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query earned badges: %w", err)
	}
	earned := make(map[string]bool, len(rows))
	for _, row := range rows {
		earned[row.BadgeKey] = true
	}
	return earned, nil
}

func (r *badgeRepo) InsertBadges(ctx context.Context, learnerID string, keys []string) error {
	for _, key := range keys {
		_, err := r.client.Badge.Create().
			SetLearnerID(learnerID).
			SetBadgeKey(key).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("insert badge %s: %w", key, err)
		}
	}
	return nil
}

func (r *badgeRepo) List(ctx context.Context, learnerID string) ([]BadgeRow, error) {
	rows, err := r.client.Badge.Query().
		Where(badge.LearnerID(learnerID)).
		Order(ent.Desc(badge.FieldEarnedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	out := make([]BadgeRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, BadgeRow{BadgeKey: row.BadgeKey, EarnedAt: row.EarnedAt})
	}
	return out, nil
}
