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
	"github.com/abhisek/cogniz/ent/skillstate"
)

// SkillStateCreate is the builder for creating a SkillState entity.
type SkillStateCreate struct {
	config
	mutation *SkillStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *SkillStateCreate) SetLearnerID(v string) *SkillStateCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *SkillStateCreate) SetSkill(v string) *SkillStateCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *SkillStateCreate) SetLevel(v int) *SkillStateCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableLevel(v *int) *SkillStateCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetXp sets the "xp" field.
func (_c *SkillStateCreate) SetXp(v int) *SkillStateCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableXp(v *int) *SkillStateCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *SkillStateCreate) SetMasteryScore(v float64) *SkillStateCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableMasteryScore(v *float64) *SkillStateCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillStateCreate) SetUpdatedAt(v time.Time) *SkillStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillStateCreate) SetNillableUpdatedAt(v *time.Time) *SkillStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SkillStateMutation object of the builder.
func (_c *SkillStateCreate) Mutation() *SkillStateMutation {
	return _c.mutation
}

// Save creates the SkillState in the database.
func (_c *SkillStateCreate) Save(ctx context.Context) (*SkillState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillStateCreate) SaveX(ctx context.Context) *SkillState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillStateCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := skillstate.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Xp(); !ok {
		v := skillstate.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := skillstate.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillStateCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SkillState.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := skillstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "SkillState.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := skillstate.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "SkillState.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "SkillState.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := skillstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SkillState.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "SkillState.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := skillstate.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "SkillState.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "SkillState.mastery_score"`)}
	}
	if v, ok := _c.mutation.MasteryScore(); ok {
		if err := skillstate.MasteryScoreValidator(v); err != nil {
			return &ValidationError{Name: "mastery_score", err: fmt.Errorf(`ent: validator failed for field "SkillState.mastery_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillState.updated_at"`)}
	}
	return nil
}

func (_c *SkillStateCreate) sqlSave(ctx context.Context) (*SkillState, error) {
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

func (_c *SkillStateCreate) createSpec() (*SkillState, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillstate.Table, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(skillstate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(skillstate.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(skillstate.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(skillstate.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SkillState.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillStateUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillStateCreate) OnConflict(opts ...sql.ConflictOption) *SkillStateUpsertOne {
	_c.conflict = opts
	return &SkillStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SkillState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillStateCreate) OnConflictColumns(columns ...string) *SkillStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillStateUpsertOne{
		create: _c,
	}
}

type (
	// SkillStateUpsertOne is the builder for "upsert"-ing
	//  one SkillState node.
	SkillStateUpsertOne struct {
		create *SkillStateCreate
	}

	// SkillStateUpsert is the "OnConflict" setter.
	SkillStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *SkillStateUpsert) SetLearnerID(v string) *SkillStateUpsert {
	u.Set(skillstate.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *SkillStateUpsert) UpdateLearnerID() *SkillStateUpsert {
	u.SetExcluded(skillstate.FieldLearnerID)
	return u
}

// SetSkill sets the "skill" field.
func (u *SkillStateUpsert) SetSkill(v string) *SkillStateUpsert {
	u.Set(skillstate.FieldSkill, v)
	return u
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *SkillStateUpsert) UpdateSkill() *SkillStateUpsert {
	u.SetExcluded(skillstate.FieldSkill)
	return u
}

// SetLevel sets the "level" field.
func (u *SkillStateUpsert) SetLevel(v int) *SkillStateUpsert {
	u.Set(skillstate.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *SkillStateUpsert) UpdateLevel() *SkillStateUpsert {
	u.SetExcluded(skillstate.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *SkillStateUpsert) AddLevel(v int) *SkillStateUpsert {
	u.Add(skillstate.FieldLevel, v)
	return u
}

// SetXp sets the "xp" field.
func (u *SkillStateUpsert) SetXp(v int) *SkillStateUpsert {
	u.Set(skillstate.FieldXp, v)
	return u
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *SkillStateUpsert) UpdateXp() *SkillStateUpsert {
	u.SetExcluded(skillstate.FieldXp)
	return u
}

// AddXp adds v to the "xp" field.
func (u *SkillStateUpsert) AddXp(v int) *SkillStateUpsert {
	u.Add(skillstate.FieldXp, v)
	return u
}

// SetMasteryScore sets the "mastery_score" field.
func (u *SkillStateUpsert) SetMasteryScore(v float64) *SkillStateUpsert {
	u.Set(skillstate.FieldMasteryScore, v)
	return u
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *SkillStateUpsert) UpdateMasteryScore() *SkillStateUpsert {
	u.SetExcluded(skillstate.FieldMasteryScore)
	return u
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *SkillStateUpsert) AddMasteryScore(v float64) *SkillStateUpsert {
	u.Add(skillstate.FieldMasteryScore, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillStateUpsert) SetUpdatedAt(v time.Time) *SkillStateUpsert {
	u.Set(skillstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillStateUpsert) UpdateUpdatedAt() *SkillStateUpsert {
	u.SetExcluded(skillstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SkillState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SkillStateUpsertOne) UpdateNewValues() *SkillStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SkillState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SkillStateUpsertOne) Ignore() *SkillStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillStateUpsertOne) DoNothing() *SkillStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillStateCreate.OnConflict
// documentation for more info.
func (u *SkillStateUpsertOne) Update(set func(*SkillStateUpsert)) *SkillStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *SkillStateUpsertOne) SetLearnerID(v string) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *SkillStateUpsertOne) UpdateLearnerID() *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSkill sets the "skill" field.
func (u *SkillStateUpsertOne) SetSkill(v string) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetSkill(v)
	})
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *SkillStateUpsertOne) UpdateSkill() *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateSkill()
	})
}

// SetLevel sets the "level" field.
func (u *SkillStateUpsertOne) SetLevel(v int) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *SkillStateUpsertOne) AddLevel(v int) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *SkillStateUpsertOne) UpdateLevel() *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateLevel()
	})
}

// SetXp sets the "xp" field.
func (u *SkillStateUpsertOne) SetXp(v int) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *SkillStateUpsertOne) AddXp(v int) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *SkillStateUpsertOne) UpdateXp() *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateXp()
	})
}

// SetMasteryScore sets the "mastery_score" field.
func (u *SkillStateUpsertOne) SetMasteryScore(v float64) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetMasteryScore(v)
	})
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *SkillStateUpsertOne) AddMasteryScore(v float64) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.AddMasteryScore(v)
	})
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *SkillStateUpsertOne) UpdateMasteryScore() *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateMasteryScore()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillStateUpsertOne) SetUpdatedAt(v time.Time) *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillStateUpsertOne) UpdateUpdatedAt() *SkillStateUpsertOne {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SkillStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SkillStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SkillStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SkillStateCreateBulk is the builder for creating many SkillState entities in bulk.
type SkillStateCreateBulk struct {
	config
	err      error
	builders []*SkillStateCreate
	conflict []sql.ConflictOption
}

// Save creates the SkillState entities in the database.
func (_c *SkillStateCreateBulk) Save(ctx context.Context) ([]*SkillState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillStateMutation)
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
func (_c *SkillStateCreateBulk) SaveX(ctx context.Context) []*SkillState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SkillState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillStateUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *SkillStateUpsertBulk {
	_c.conflict = opts
	return &SkillStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SkillState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillStateCreateBulk) OnConflictColumns(columns ...string) *SkillStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillStateUpsertBulk{
		create: _c,
	}
}

// SkillStateUpsertBulk is the builder for "upsert"-ing
// a bulk of SkillState nodes.
type SkillStateUpsertBulk struct {
	create *SkillStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SkillState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SkillStateUpsertBulk) UpdateNewValues() *SkillStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SkillState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SkillStateUpsertBulk) Ignore() *SkillStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillStateUpsertBulk) DoNothing() *SkillStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillStateCreateBulk.OnConflict
// documentation for more info.
func (u *SkillStateUpsertBulk) Update(set func(*SkillStateUpsert)) *SkillStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *SkillStateUpsertBulk) SetLearnerID(v string) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *SkillStateUpsertBulk) UpdateLearnerID() *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSkill sets the "skill" field.
func (u *SkillStateUpsertBulk) SetSkill(v string) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetSkill(v)
	})
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *SkillStateUpsertBulk) UpdateSkill() *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateSkill()
	})
}

// SetLevel sets the "level" field.
func (u *SkillStateUpsertBulk) SetLevel(v int) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *SkillStateUpsertBulk) AddLevel(v int) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *SkillStateUpsertBulk) UpdateLevel() *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateLevel()
	})
}

// SetXp sets the "xp" field.
func (u *SkillStateUpsertBulk) SetXp(v int) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *SkillStateUpsertBulk) AddXp(v int) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *SkillStateUpsertBulk) UpdateXp() *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateXp()
	})
}

// SetMasteryScore sets the "mastery_score" field.
func (u *SkillStateUpsertBulk) SetMasteryScore(v float64) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetMasteryScore(v)
	})
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *SkillStateUpsertBulk) AddMasteryScore(v float64) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.AddMasteryScore(v)
	})
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *SkillStateUpsertBulk) UpdateMasteryScore() *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateMasteryScore()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillStateUpsertBulk) SetUpdatedAt(v time.Time) *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillStateUpsertBulk) UpdateUpdatedAt() *SkillStateUpsertBulk {
	return u.Update(func(s *SkillStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SkillStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SkillStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
