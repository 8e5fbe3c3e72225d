// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/reviewentry"
)

// ReviewEntryCreate is the builder for creating a ReviewEntry entity.
type ReviewEntryCreate struct {
	config
	mutation *ReviewEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *ReviewEntryCreate) SetLearnerID(v string) *ReviewEntryCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *ReviewEntryCreate) SetActivityID(v string) *ReviewEntryCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *ReviewEntryCreate) SetSkill(v string) *ReviewEntryCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ReviewEntryCreate) SetDueAt(v time.Time) *ReviewEntryCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewEntryCreate) SetIntervalDays(v int) *ReviewEntryCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableIntervalDays(v *int) *ReviewEntryCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEase sets the "ease" field.
func (_c *ReviewEntryCreate) SetEase(v float64) *ReviewEntryCreate {
	_c.mutation.SetEase(v)
	return _c
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableEase(v *float64) *ReviewEntryCreate {
	if v != nil {
		_c.SetEase(*v)
	}
	return _c
}

// SetLastResult sets the "last_result" field.
func (_c *ReviewEntryCreate) SetLastResult(v bool) *ReviewEntryCreate {
	_c.mutation.SetLastResult(v)
	return _c
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableLastResult(v *bool) *ReviewEntryCreate {
	if v != nil {
		_c.SetLastResult(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewEntryCreate) SetCreatedAt(v time.Time) *ReviewEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableCreatedAt(v *time.Time) *ReviewEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_c *ReviewEntryCreate) Mutation() *ReviewEntryMutation {
	return _c.mutation
}

// Save creates the ReviewEntry in the database.
func (_c *ReviewEntryCreate) Save(ctx context.Context) (*ReviewEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEntryCreate) SaveX(ctx context.Context) *ReviewEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEntryCreate) defaults() {
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewentry.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Ease(); !ok {
		v := reviewentry.DefaultEase
		_c.mutation.SetEase(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEntryCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReviewEntry.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := reviewentry.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "ReviewEntry.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := reviewentry.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "ReviewEntry.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := reviewentry.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "ReviewEntry.due_at"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewEntry.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewentry.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ease(); !ok {
		return &ValidationError{Name: "ease", err: errors.New(`ent: missing required field "ReviewEntry.ease"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewEntry.created_at"`)}
	}
	return nil
}

func (_c *ReviewEntryCreate) sqlSave(ctx context.Context) (*ReviewEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewEntryCreate) createSpec() (*ReviewEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewentry.Table, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(reviewentry.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(reviewentry.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(reviewentry.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(reviewentry.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewentry.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Ease(); ok {
		_spec.SetField(reviewentry.FieldEase, field.TypeFloat64, value)
		_node.Ease = value
	}
	if value, ok := _c.mutation.LastResult(); ok {
		_spec.SetField(reviewentry.FieldLastResult, field.TypeBool, value)
		_node.LastResult = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewEntry.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewEntryUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewEntryCreate) OnConflict(opts ...sql.ConflictOption) *ReviewEntryUpsertOne {
	_c.conflict = opts
	return &ReviewEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewEntryCreate) OnConflictColumns(columns ...string) *ReviewEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewEntryUpsertOne{
		create: _c,
	}
}

type (
	// ReviewEntryUpsertOne is the builder for "upsert"-ing
	//  one ReviewEntry node.
	ReviewEntryUpsertOne struct {
		create *ReviewEntryCreate
	}

	// ReviewEntryUpsert is the "OnConflict" setter.
	ReviewEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *ReviewEntryUpsert) SetLearnerID(v string) *ReviewEntryUpsert {
	u.Set(reviewentry.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReviewEntryUpsert) UpdateLearnerID() *ReviewEntryUpsert {
	u.SetExcluded(reviewentry.FieldLearnerID)
	return u
}

// SetActivityID sets the "activity_id" field.
func (u *ReviewEntryUpsert) SetActivityID(v string) *ReviewEntryUpsert {
	u.Set(reviewentry.FieldActivityID, v)
	return u
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ReviewEntryUpsert) UpdateActivityID() *ReviewEntryUpsert {
	u.SetExcluded(reviewentry.FieldActivityID)
	return u
}

// SetSkill sets the "skill" field.
func (u *ReviewEntryUpsert) SetSkill(v string) *ReviewEntryUpsert {
	u.Set(reviewentry.FieldSkill, v)
	return u
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *ReviewEntryUpsert) UpdateSkill() *ReviewEntryUpsert {
	u.SetExcluded(reviewentry.FieldSkill)
	return u
}

// SetDueAt sets the "due_at" field.
func (u *ReviewEntryUpsert) SetDueAt(v time.Time) *ReviewEntryUpsert {
	u.Set(reviewentry.FieldDueAt, v)
	return u
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ReviewEntryUpsert) UpdateDueAt() *ReviewEntryUpsert {
	u.SetExcluded(reviewentry.FieldDueAt)
	return u
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewEntryUpsert) SetIntervalDays(v int) *ReviewEntryUpsert {
	u.Set(reviewentry.FieldIntervalDays, v)
	return u
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewEntryUpsert) UpdateIntervalDays() *ReviewEntryUpsert {
	u.SetExcluded(reviewentry.FieldIntervalDays)
	return u
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewEntryUpsert) AddIntervalDays(v int) *ReviewEntryUpsert {
	u.Add(reviewentry.FieldIntervalDays, v)
	return u
}

// SetEase sets the "ease" field.
func (u *ReviewEntryUpsert) SetEase(v float64) *ReviewEntryUpsert {
	u.Set(reviewentry.FieldEase, v)
	return u
}

// UpdateEase sets the "ease" field to the value that was provided on create.
func (u *ReviewEntryUpsert) UpdateEase() *ReviewEntryUpsert {
	u.SetExcluded(reviewentry.FieldEase)
	return u
}

// AddEase adds v to the "ease" field.
func (u *ReviewEntryUpsert) AddEase(v float64) *ReviewEntryUpsert {
	u.Add(reviewentry.FieldEase, v)
	return u
}

// SetLastResult sets the "last_result" field.
func (u *ReviewEntryUpsert) SetLastResult(v bool) *ReviewEntryUpsert {
	u.Set(reviewentry.FieldLastResult, v)
	return u
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *ReviewEntryUpsert) UpdateLastResult() *ReviewEntryUpsert {
	u.SetExcluded(reviewentry.FieldLastResult)
	return u
}

// ClearLastResult clears the value of the "last_result" field.
func (u *ReviewEntryUpsert) ClearLastResult() *ReviewEntryUpsert {
	u.SetNull(reviewentry.FieldLastResult)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReviewEntryUpsert) SetCreatedAt(v time.Time) *ReviewEntryUpsert {
	u.Set(reviewentry.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReviewEntryUpsert) UpdateCreatedAt() *ReviewEntryUpsert {
	u.SetExcluded(reviewentry.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReviewEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewEntryUpsertOne) UpdateNewValues() *ReviewEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReviewEntryUpsertOne) Ignore() *ReviewEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewEntryUpsertOne) DoNothing() *ReviewEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewEntryCreate.OnConflict
// documentation for more info.
func (u *ReviewEntryUpsertOne) Update(set func(*ReviewEntryUpsert)) *ReviewEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *ReviewEntryUpsertOne) SetLearnerID(v string) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReviewEntryUpsertOne) UpdateLearnerID() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateLearnerID()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *ReviewEntryUpsertOne) SetActivityID(v string) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ReviewEntryUpsertOne) UpdateActivityID() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateActivityID()
	})
}

// SetSkill sets the "skill" field.
func (u *ReviewEntryUpsertOne) SetSkill(v string) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetSkill(v)
	})
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *ReviewEntryUpsertOne) UpdateSkill() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateSkill()
	})
}

// SetDueAt sets the "due_at" field.
func (u *ReviewEntryUpsertOne) SetDueAt(v time.Time) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ReviewEntryUpsertOne) UpdateDueAt() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateDueAt()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewEntryUpsertOne) SetIntervalDays(v int) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewEntryUpsertOne) AddIntervalDays(v int) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewEntryUpsertOne) UpdateIntervalDays() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetEase sets the "ease" field.
func (u *ReviewEntryUpsertOne) SetEase(v float64) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetEase(v)
	})
}

// AddEase adds v to the "ease" field.
func (u *ReviewEntryUpsertOne) AddEase(v float64) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.AddEase(v)
	})
}

// UpdateEase sets the "ease" field to the value that was provided on create.
func (u *ReviewEntryUpsertOne) UpdateEase() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateEase()
	})
}

// SetLastResult sets the "last_result" field.
func (u *ReviewEntryUpsertOne) SetLastResult(v bool) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetLastResult(v)
	})
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *ReviewEntryUpsertOne) UpdateLastResult() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateLastResult()
	})
}

// ClearLastResult clears the value of the "last_result" field.
func (u *ReviewEntryUpsertOne) ClearLastResult() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.ClearLastResult()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReviewEntryUpsertOne) SetCreatedAt(v time.Time) *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReviewEntryUpsertOne) UpdateCreatedAt() *ReviewEntryUpsertOne {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ReviewEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReviewEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReviewEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReviewEntryCreateBulk is the builder for creating many ReviewEntry entities in bulk.
type ReviewEntryCreateBulk struct {
	config
	err      error
	builders []*ReviewEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the ReviewEntry entities in the database.
func (_c *ReviewEntryCreateBulk) Save(ctx context.Context) ([]*ReviewEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewEntryCreateBulk) SaveX(ctx context.Context) []*ReviewEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewEntryUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReviewEntryUpsertBulk {
	_c.conflict = opts
	return &ReviewEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewEntryCreateBulk) OnConflictColumns(columns ...string) *ReviewEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewEntryUpsertBulk{
		create: _c,
	}
}

// ReviewEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of ReviewEntry nodes.
type ReviewEntryUpsertBulk struct {
	create *ReviewEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReviewEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewEntryUpsertBulk) UpdateNewValues() *ReviewEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReviewEntryUpsertBulk) Ignore() *ReviewEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewEntryUpsertBulk) DoNothing() *ReviewEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewEntryCreateBulk.OnConflict
// documentation for more info.
func (u *ReviewEntryUpsertBulk) Update(set func(*ReviewEntryUpsert)) *ReviewEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *ReviewEntryUpsertBulk) SetLearnerID(v string) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ReviewEntryUpsertBulk) UpdateLearnerID() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateLearnerID()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *ReviewEntryUpsertBulk) SetActivityID(v string) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ReviewEntryUpsertBulk) UpdateActivityID() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateActivityID()
	})
}

// SetSkill sets the "skill" field.
func (u *ReviewEntryUpsertBulk) SetSkill(v string) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetSkill(v)
	})
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *ReviewEntryUpsertBulk) UpdateSkill() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateSkill()
	})
}

// SetDueAt sets the "due_at" field.
func (u *ReviewEntryUpsertBulk) SetDueAt(v time.Time) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ReviewEntryUpsertBulk) UpdateDueAt() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateDueAt()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewEntryUpsertBulk) SetIntervalDays(v int) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewEntryUpsertBulk) AddIntervalDays(v int) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewEntryUpsertBulk) UpdateIntervalDays() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetEase sets the "ease" field.
func (u *ReviewEntryUpsertBulk) SetEase(v float64) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetEase(v)
	})
}

// AddEase adds v to the "ease" field.
func (u *ReviewEntryUpsertBulk) AddEase(v float64) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.AddEase(v)
	})
}

// UpdateEase sets the "ease" field to the value that was provided on create.
func (u *ReviewEntryUpsertBulk) UpdateEase() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateEase()
	})
}

// SetLastResult sets the "last_result" field.
func (u *ReviewEntryUpsertBulk) SetLastResult(v bool) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetLastResult(v)
	})
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *ReviewEntryUpsertBulk) UpdateLastResult() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateLastResult()
	})
}

// ClearLastResult clears the value of the "last_result" field.
func (u *ReviewEntryUpsertBulk) ClearLastResult() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.ClearLastResult()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReviewEntryUpsertBulk) SetCreatedAt(v time.Time) *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReviewEntryUpsertBulk) UpdateCreatedAt() *ReviewEntryUpsertBulk {
	return u.Update(func(s *ReviewEntryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ReviewEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReviewEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
