// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/streak"
)

// StreakCreate is the builder for creating a Streak entity.
type StreakCreate struct {
	config
	mutation *StreakMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *StreakCreate) SetLearnerID(v string) *StreakCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *StreakCreate) SetCurrentStreak(v int) *StreakCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *StreakCreate) SetNillableCurrentStreak(v *int) *StreakCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetLastPlayedDate sets the "last_played_date" field.
func (_c *StreakCreate) SetLastPlayedDate(v string) *StreakCreate {
	_c.mutation.SetLastPlayedDate(v)
	return _c
}

// SetNillableLastPlayedDate sets the "last_played_date" field if the given value is not nil.
func (_c *StreakCreate) SetNillableLastPlayedDate(v *string) *StreakCreate {
	if v != nil {
		_c.SetLastPlayedDate(*v)
	}
	return _c
}

// Mutation returns the StreakMutation object of the builder.
func (_c *StreakCreate) Mutation() *StreakMutation {
	return _c.mutation
}

// Save creates the Streak in the database.
func (_c *StreakCreate) Save(ctx context.Context) (*Streak, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StreakCreate) SaveX(ctx context.Context) *Streak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreakCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreakCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StreakCreate) defaults() {
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := streak.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.LastPlayedDate(); !ok {
		v := streak.DefaultLastPlayedDate
		_c.mutation.SetLastPlayedDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StreakCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Streak.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := streak.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Streak.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "Streak.current_streak"`)}
	}
	if _, ok := _c.mutation.LastPlayedDate(); !ok {
		return &ValidationError{Name: "last_played_date", err: errors.New(`ent: missing required field "Streak.last_played_date"`)}
	}
	return nil
}

func (_c *StreakCreate) sqlSave(ctx context.Context) (*Streak, error) {
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

func (_c *StreakCreate) createSpec() (*Streak, *sqlgraph.CreateSpec) {
	var (
		_node = &Streak{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(streak.Table, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(streak.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(streak.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.LastPlayedDate(); ok {
		_spec.SetField(streak.FieldLastPlayedDate, field.TypeString, value)
		_node.LastPlayedDate = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Streak.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StreakUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *StreakCreate) OnConflict(opts ...sql.ConflictOption) *StreakUpsertOne {
	_c.conflict = opts
	return &StreakUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StreakCreate) OnConflictColumns(columns ...string) *StreakUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StreakUpsertOne{
		create: _c,
	}
}

type (
	// StreakUpsertOne is the builder for "upsert"-ing
	//  one Streak node.
	StreakUpsertOne struct {
		create *StreakCreate
	}

	// StreakUpsert is the "OnConflict" setter.
	StreakUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *StreakUpsert) SetLearnerID(v string) *StreakUpsert {
	u.Set(streak.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *StreakUpsert) UpdateLearnerID() *StreakUpsert {
	u.SetExcluded(streak.FieldLearnerID)
	return u
}

// SetCurrentStreak sets the "current_streak" field.
func (u *StreakUpsert) SetCurrentStreak(v int) *StreakUpsert {
	u.Set(streak.FieldCurrentStreak, v)
	return u
}

// UpdateCurrentStreak sets the "current_streak" field to the value that was provided on create.
func (u *StreakUpsert) UpdateCurrentStreak() *StreakUpsert {
	u.SetExcluded(streak.FieldCurrentStreak)
	return u
}

// AddCurrentStreak adds v to the "current_streak" field.
func (u *StreakUpsert) AddCurrentStreak(v int) *StreakUpsert {
	u.Add(streak.FieldCurrentStreak, v)
	return u
}

// SetLastPlayedDate sets the "last_played_date" field.
func (u *StreakUpsert) SetLastPlayedDate(v string) *StreakUpsert {
	u.Set(streak.FieldLastPlayedDate, v)
	return u
}

// UpdateLastPlayedDate sets the "last_played_date" field to the value that was provided on create.
func (u *StreakUpsert) UpdateLastPlayedDate() *StreakUpsert {
	u.SetExcluded(streak.FieldLastPlayedDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StreakUpsertOne) UpdateNewValues() *StreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Streak.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StreakUpsertOne) Ignore() *StreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StreakUpsertOne) DoNothing() *StreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StreakCreate.OnConflict
// documentation for more info.
func (u *StreakUpsertOne) Update(set func(*StreakUpsert)) *StreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StreakUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *StreakUpsertOne) SetLearnerID(v string) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *StreakUpsertOne) UpdateLearnerID() *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateLearnerID()
	})
}

// SetCurrentStreak sets the "current_streak" field.
func (u *StreakUpsertOne) SetCurrentStreak(v int) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.SetCurrentStreak(v)
	})
}

// AddCurrentStreak adds v to the "current_streak" field.
func (u *StreakUpsertOne) AddCurrentStreak(v int) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.AddCurrentStreak(v)
	})
}

// UpdateCurrentStreak sets the "current_streak" field to the value that was provided on create.
func (u *StreakUpsertOne) UpdateCurrentStreak() *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateCurrentStreak()
	})
}

// SetLastPlayedDate sets the "last_played_date" field.
func (u *StreakUpsertOne) SetLastPlayedDate(v string) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.SetLastPlayedDate(v)
	})
}

// UpdateLastPlayedDate sets the "last_played_date" field to the value that was provided on create.
func (u *StreakUpsertOne) UpdateLastPlayedDate() *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateLastPlayedDate()
	})
}

// Exec executes the query.
func (u *StreakUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StreakCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StreakUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StreakUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StreakUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StreakCreateBulk is the builder for creating many Streak entities in bulk.
type StreakCreateBulk struct {
	config
	err      error
	builders []*StreakCreate
	conflict []sql.ConflictOption
}

// Save creates the Streak entities in the database.
func (_c *StreakCreateBulk) Save(ctx context.Context) ([]*Streak, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Streak, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreakMutation)
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
func (_c *StreakCreateBulk) SaveX(ctx context.Context) []*Streak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreakCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreakCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Streak.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StreakUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *StreakCreateBulk) OnConflict(opts ...sql.ConflictOption) *StreakUpsertBulk {
	_c.conflict = opts
	return &StreakUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StreakCreateBulk) OnConflictColumns(columns ...string) *StreakUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StreakUpsertBulk{
		create: _c,
	}
}

// StreakUpsertBulk is the builder for "upsert"-ing
// a bulk of Streak nodes.
type StreakUpsertBulk struct {
	create *StreakCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StreakUpsertBulk) UpdateNewValues() *StreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StreakUpsertBulk) Ignore() *StreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StreakUpsertBulk) DoNothing() *StreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StreakCreateBulk.OnConflict
// documentation for more info.
func (u *StreakUpsertBulk) Update(set func(*StreakUpsert)) *StreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StreakUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *StreakUpsertBulk) SetLearnerID(v string) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *StreakUpsertBulk) UpdateLearnerID() *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateLearnerID()
	})
}

// SetCurrentStreak sets the "current_streak" field.
func (u *StreakUpsertBulk) SetCurrentStreak(v int) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.SetCurrentStreak(v)
	})
}

// AddCurrentStreak adds v to the "current_streak" field.
func (u *StreakUpsertBulk) AddCurrentStreak(v int) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.AddCurrentStreak(v)
	})
}

// UpdateCurrentStreak sets the "current_streak" field to the value that was provided on create.
func (u *StreakUpsertBulk) UpdateCurrentStreak() *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateCurrentStreak()
	})
}

// SetLastPlayedDate sets the "last_played_date" field.
func (u *StreakUpsertBulk) SetLastPlayedDate(v string) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.SetLastPlayedDate(v)
	})
}

// UpdateLastPlayedDate sets the "last_played_date" field to the value that was provided on create.
func (u *StreakUpsertBulk) UpdateLastPlayedDate() *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateLastPlayedDate()
	})
}

// Exec executes the query.
func (u *StreakUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StreakCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StreakCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StreakUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
