package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cogniz/ent"
	"github.com/abhisek/cogniz/ent/skillstate"
	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

// skillStateRepo implements SkillStateRepo using the ent client.
type skillStateRepo struct {
	client *ent.Client
}

// Load returns one state per skill in canonical order. Skills with no row
// yet get a default row created, so callers always see the full set.
func (r *skillStateRepo) Load(ctx context.Context, learnerID string) ([]mastery.SkillState, error) {
	rows, err := r.client.SkillState.Query().
		Where(skillstate.LearnerID(learnerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill states: %w", err)
	}

	byKey := make(map[skills.Skill]*ent.SkillState, len(rows))
	for _, row := range rows {
		byKey[skills.Normalize(row.Skill)] = row
	}

	out := make([]mastery.SkillState, 0, skills.Count)
	for _, sk := range skills.All() {
		row, ok := byKey[sk]
		if !ok {
			def := mastery.DefaultSkillState(sk)
			row, err = r.client.SkillState.Create().
				SetLearnerID(learnerID).
				SetSkill(string(sk)).
				SetLevel(def.Level).
				SetXp(def.XP).
				SetMasteryScore(def.MasteryScore).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("init skill state %s: %w", sk, err)
			}
		}
		out = append(out, mastery.SkillState{
			Skill:        sk,
			Level:        row.Level,
			XP:           row.Xp,
			MasteryScore: row.MasteryScore,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return out, nil
}

func (r *skillStateRepo) Upsert(ctx context.Context, learnerID string, st mastery.SkillState) error {
	updatedAt := st.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	err := r.client.SkillState.Create().
		SetLearnerID(learnerID).
		SetSkill(string(st.Skill)).
		SetLevel(st.Level).
		SetXp(st.XP).
		SetMasteryScore(st.MasteryScore).
		SetUpdatedAt(updatedAt).
		OnConflictColumns(skillstate.FieldLearnerID, skillstate.FieldSkill).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert skill state: %w", err)
	}
	return nil
}
