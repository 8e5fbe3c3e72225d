package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cogniz/ent"
	"github.com/abhisek/cogniz/ent/learner"
	"github.com/google/uuid"
)

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) Create(ctx context.Context, name, ageBand string) (*Learner, error) {
	row, err := r.client.Learner.Create().
		SetID(uuid.NewString()).
		SetName(name).
		SetAgeBand(ageBand).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return learnerFromRow(row), nil
}

func (r *learnerRepo) Get(ctx context.Context, id string) (*Learner, error) {
	row, err := r.client.Learner.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get learner: %w", err)
	}
	return learnerFromRow(row), nil
}

func (r *learnerRepo) GetByName(ctx context.Context, name string) (*Learner, error) {
	row, err := r.client.Learner.Query().
		Where(learner.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get learner by name: %w", err)
	}
	return learnerFromRow(row), nil
}

func (r *learnerRepo) List(ctx context.Context) ([]*Learner, error) {
	rows, err := r.client.Learner.Query().
		Order(ent.Asc(learner.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}
	out := make([]*Learner, 0, len(rows))
	for _, row := range rows {
		out = append(out, learnerFromRow(row))
	}
	return out, nil
}

func learnerFromRow(row *ent.Learner) *Learner {
	return &Learner{
		ID:        row.ID,
		Name:      row.Name,
		AgeBand:   row.AgeBand,
		CreatedAt: row.CreatedAt,
	}
}
