package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cogniz/ent"
	"github.com/abhisek/cogniz/ent/adaptivesettings"
)

// settingsRepo implements SettingsRepo using the ent client.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, learnerID string) (SettingsData, error) {
	row, err := r.client.AdaptiveSettings.Query().
		Where(adaptivesettings.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultSettingsData(), nil
		}
		return SettingsData{}, fmt.Errorf("query settings: %w", err)
	}
	return SettingsData{
		MainRounds:    row.MainRounds,
		BossEnabled:   row.BossEnabled,
		BossIntensity: row.BossIntensity,
		HintMode:      row.HintMode,
		DailyGoal:     row.DailyGoal,
	}, nil
}

func (r *settingsRepo) Save(ctx context.Context, learnerID string, s SettingsData) error {
	err := r.client.AdaptiveSettings.Create().
		SetLearnerID(learnerID).
		SetMainRounds(s.MainRounds).
		SetBossEnabled(s.BossEnabled).
		SetBossIntensity(s.BossIntensity).
		SetHintMode(s.HintMode).
		SetDailyGoal(s.DailyGoal).
		OnConflictColumns(adaptivesettings.FieldLearnerID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
