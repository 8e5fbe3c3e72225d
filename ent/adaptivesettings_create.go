// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/adaptivesettings"
)

// AdaptiveSettingsCreate is the builder for creating a AdaptiveSettings entity.
type AdaptiveSettingsCreate struct {
	config
	mutation *AdaptiveSettingsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *AdaptiveSettingsCreate) SetLearnerID(v string) *AdaptiveSettingsCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetMainRounds sets the "main_rounds" field.
func (_c *AdaptiveSettingsCreate) SetMainRounds(v int) *AdaptiveSettingsCreate {
	_c.mutation.SetMainRounds(v)
	return _c
}

// SetNillableMainRounds sets the "main_rounds" field if the given value is not nil.
func (_c *AdaptiveSettingsCreate) SetNillableMainRounds(v *int) *AdaptiveSettingsCreate {
	if v != nil {
		_c.SetMainRounds(*v)
	}
	return _c
}

// SetBossEnabled sets the "boss_enabled" field.
func (_c *AdaptiveSettingsCreate) SetBossEnabled(v bool) *AdaptiveSettingsCreate {
	_c.mutation.SetBossEnabled(v)
	return _c
}

// SetNillableBossEnabled sets the "boss_enabled" field if the given value is not nil.
func (_c *AdaptiveSettingsCreate) SetNillableBossEnabled(v *bool) *AdaptiveSettingsCreate {
	if v != nil {
		_c.SetBossEnabled(*v)
	}
	return _c
}

// SetBossIntensity sets the "boss_intensity" field.
func (_c *AdaptiveSettingsCreate) SetBossIntensity(v int) *AdaptiveSettingsCreate {
	_c.mutation.SetBossIntensity(v)
	return _c
}

// SetNillableBossIntensity sets the "boss_intensity" field if the given value is not nil.
func (_c *AdaptiveSettingsCreate) SetNillableBossIntensity(v *int) *AdaptiveSettingsCreate {
	if v != nil {
		_c.SetBossIntensity(*v)
	}
	return _c
}

// SetHintMode sets the "hint_mode" field.
func (_c *AdaptiveSettingsCreate) SetHintMode(v string) *AdaptiveSettingsCreate {
	_c.mutation.SetHintMode(v)
	return _c
}

// SetNillableHintMode sets the "hint_mode" field if the given value is not nil.
func (_c *AdaptiveSettingsCreate) SetNillableHintMode(v *string) *AdaptiveSettingsCreate {
	if v != nil {
		_c.SetHintMode(*v)
	}
	return _c
}

// SetDailyGoal sets the "daily_goal" field.
func (_c *AdaptiveSettingsCreate) SetDailyGoal(v int) *AdaptiveSettingsCreate {
	_c.mutation.SetDailyGoal(v)
	return _c
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_c *AdaptiveSettingsCreate) SetNillableDailyGoal(v *int) *AdaptiveSettingsCreate {
	if v != nil {
		_c.SetDailyGoal(*v)
	}
	return _c
}

// Mutation returns the AdaptiveSettingsMutation object of the builder.
func (_c *AdaptiveSettingsCreate) Mutation() *AdaptiveSettingsMutation {
	return _c.mutation
}

// Save creates the AdaptiveSettings in the database.
func (_c *AdaptiveSettingsCreate) Save(ctx context.Context) (*AdaptiveSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdaptiveSettingsCreate) SaveX(ctx context.Context) *AdaptiveSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptiveSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptiveSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdaptiveSettingsCreate) defaults() {
	if _, ok := _c.mutation.MainRounds(); !ok {
		v := adaptivesettings.DefaultMainRounds
		_c.mutation.SetMainRounds(v)
	}
	if _, ok := _c.mutation.BossEnabled(); !ok {
		v := adaptivesettings.DefaultBossEnabled
		_c.mutation.SetBossEnabled(v)
	}
	if _, ok := _c.mutation.BossIntensity(); !ok {
		v := adaptivesettings.DefaultBossIntensity
		_c.mutation.SetBossIntensity(v)
	}
	if _, ok := _c.mutation.HintMode(); !ok {
		v := adaptivesettings.DefaultHintMode
		_c.mutation.SetHintMode(v)
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		v := adaptivesettings.DefaultDailyGoal
		_c.mutation.SetDailyGoal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdaptiveSettingsCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "AdaptiveSettings.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := adaptivesettings.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSettings.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MainRounds(); !ok {
		return &ValidationError{Name: "main_rounds", err: errors.New(`ent: missing required field "AdaptiveSettings.main_rounds"`)}
	}
	if _, ok := _c.mutation.BossEnabled(); !ok {
		return &ValidationError{Name: "boss_enabled", err: errors.New(`ent: missing required field "AdaptiveSettings.boss_enabled"`)}
	}
	if _, ok := _c.mutation.BossIntensity(); !ok {
		return &ValidationError{Name: "boss_intensity", err: errors.New(`ent: missing required field "AdaptiveSettings.boss_intensity"`)}
	}
	if _, ok := _c.mutation.HintMode(); !ok {
		return &ValidationError{Name: "hint_mode", err: errors.New(`ent: missing required field "AdaptiveSettings.hint_mode"`)}
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		return &ValidationError{Name: "daily_goal", err: errors.New(`ent: missing required field "AdaptiveSettings.daily_goal"`)}
	}
	return nil
}

func (_c *AdaptiveSettingsCreate) sqlSave(ctx context.Context) (*AdaptiveSettings, error) {
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

func (_c *AdaptiveSettingsCreate) createSpec() (*AdaptiveSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &AdaptiveSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adaptivesettings.Table, sqlgraph.NewFieldSpec(adaptivesettings.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(adaptivesettings.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.MainRounds(); ok {
		_spec.SetField(adaptivesettings.FieldMainRounds, field.TypeInt, value)
		_node.MainRounds = value
	}
	if value, ok := _c.mutation.BossEnabled(); ok {
		_spec.SetField(adaptivesettings.FieldBossEnabled, field.TypeBool, value)
		_node.BossEnabled = value
	}
	if value, ok := _c.mutation.BossIntensity(); ok {
		_spec.SetField(adaptivesettings.FieldBossIntensity, field.TypeInt, value)
		_node.BossIntensity = value
	}
	if value, ok := _c.mutation.HintMode(); ok {
		_spec.SetField(adaptivesettings.FieldHintMode, field.TypeString, value)
		_node.HintMode = value
	}
	if value, ok := _c.mutation.DailyGoal(); ok {
		_spec.SetField(adaptivesettings.FieldDailyGoal, field.TypeInt, value)
		_node.DailyGoal = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdaptiveSettings.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdaptiveSettingsUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *AdaptiveSettingsCreate) OnConflict(opts ...sql.ConflictOption) *AdaptiveSettingsUpsertOne {
	_c.conflict = opts
	return &AdaptiveSettingsUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdaptiveSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdaptiveSettingsCreate) OnConflictColumns(columns ...string) *AdaptiveSettingsUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdaptiveSettingsUpsertOne{
		create: _c,
	}
}

type (
	// AdaptiveSettingsUpsertOne is the builder for "upsert"-ing
	//  one AdaptiveSettings node.
	AdaptiveSettingsUpsertOne struct {
		create *AdaptiveSettingsCreate
	}

	// AdaptiveSettingsUpsert is the "OnConflict" setter.
	AdaptiveSettingsUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *AdaptiveSettingsUpsert) SetLearnerID(v string) *AdaptiveSettingsUpsert {
	u.Set(adaptivesettings.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsert) UpdateLearnerID() *AdaptiveSettingsUpsert {
	u.SetExcluded(adaptivesettings.FieldLearnerID)
	return u
}

// SetMainRounds sets the "main_rounds" field.
func (u *AdaptiveSettingsUpsert) SetMainRounds(v int) *AdaptiveSettingsUpsert {
	u.Set(adaptivesettings.FieldMainRounds, v)
	return u
}

// UpdateMainRounds sets the "main_rounds" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsert) UpdateMainRounds() *AdaptiveSettingsUpsert {
	u.SetExcluded(adaptivesettings.FieldMainRounds)
	return u
}

// AddMainRounds adds v to the "main_rounds" field.
func (u *AdaptiveSettingsUpsert) AddMainRounds(v int) *AdaptiveSettingsUpsert {
	u.Add(adaptivesettings.FieldMainRounds, v)
	return u
}

// SetBossEnabled sets the "boss_enabled" field.
func (u *AdaptiveSettingsUpsert) SetBossEnabled(v bool) *AdaptiveSettingsUpsert {
	u.Set(adaptivesettings.FieldBossEnabled, v)
	return u
}

// UpdateBossEnabled sets the "boss_enabled" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsert) UpdateBossEnabled() *AdaptiveSettingsUpsert {
	u.SetExcluded(adaptivesettings.FieldBossEnabled)
	return u
}

// SetBossIntensity sets the "boss_intensity" field.
func (u *AdaptiveSettingsUpsert) SetBossIntensity(v int) *AdaptiveSettingsUpsert {
	u.Set(adaptivesettings.FieldBossIntensity, v)
	return u
}

// UpdateBossIntensity sets the "boss_intensity" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsert) UpdateBossIntensity() *AdaptiveSettingsUpsert {
	u.SetExcluded(adaptivesettings.FieldBossIntensity)
	return u
}

// AddBossIntensity adds v to the "boss_intensity" field.
func (u *AdaptiveSettingsUpsert) AddBossIntensity(v int) *AdaptiveSettingsUpsert {
	u.Add(adaptivesettings.FieldBossIntensity, v)
	return u
}

// SetHintMode sets the "hint_mode" field.
func (u *AdaptiveSettingsUpsert) SetHintMode(v string) *AdaptiveSettingsUpsert {
	u.Set(adaptivesettings.FieldHintMode, v)
	return u
}

// UpdateHintMode sets the "hint_mode" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsert) UpdateHintMode() *AdaptiveSettingsUpsert {
	u.SetExcluded(adaptivesettings.FieldHintMode)
	return u
}

// SetDailyGoal sets the "daily_goal" field.
func (u *AdaptiveSettingsUpsert) SetDailyGoal(v int) *AdaptiveSettingsUpsert {
	u.Set(adaptivesettings.FieldDailyGoal, v)
	return u
}

// UpdateDailyGoal sets the "daily_goal" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsert) UpdateDailyGoal() *AdaptiveSettingsUpsert {
	u.SetExcluded(adaptivesettings.FieldDailyGoal)
	return u
}

// AddDailyGoal adds v to the "daily_goal" field.
func (u *AdaptiveSettingsUpsert) AddDailyGoal(v int) *AdaptiveSettingsUpsert {
	u.Add(adaptivesettings.FieldDailyGoal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AdaptiveSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AdaptiveSettingsUpsertOne) UpdateNewValues() *AdaptiveSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdaptiveSettings.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AdaptiveSettingsUpsertOne) Ignore() *AdaptiveSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdaptiveSettingsUpsertOne) DoNothing() *AdaptiveSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdaptiveSettingsCreate.OnConflict
// documentation for more info.
func (u *AdaptiveSettingsUpsertOne) Update(set func(*AdaptiveSettingsUpsert)) *AdaptiveSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdaptiveSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *AdaptiveSettingsUpsertOne) SetLearnerID(v string) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertOne) UpdateLearnerID() *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateLearnerID()
	})
}

// SetMainRounds sets the "main_rounds" field.
func (u *AdaptiveSettingsUpsertOne) SetMainRounds(v int) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetMainRounds(v)
	})
}

// AddMainRounds adds v to the "main_rounds" field.
func (u *AdaptiveSettingsUpsertOne) AddMainRounds(v int) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.AddMainRounds(v)
	})
}

// UpdateMainRounds sets the "main_rounds" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertOne) UpdateMainRounds() *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateMainRounds()
	})
}

// SetBossEnabled sets the "boss_enabled" field.
func (u *AdaptiveSettingsUpsertOne) SetBossEnabled(v bool) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetBossEnabled(v)
	})
}

// UpdateBossEnabled sets the "boss_enabled" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertOne) UpdateBossEnabled() *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateBossEnabled()
	})
}

// SetBossIntensity sets the "boss_intensity" field.
func (u *AdaptiveSettingsUpsertOne) SetBossIntensity(v int) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetBossIntensity(v)
	})
}

// AddBossIntensity adds v to the "boss_intensity" field.
func (u *AdaptiveSettingsUpsertOne) AddBossIntensity(v int) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.AddBossIntensity(v)
	})
}

// UpdateBossIntensity sets the "boss_intensity" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertOne) UpdateBossIntensity() *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateBossIntensity()
	})
}

// SetHintMode sets the "hint_mode" field.
func (u *AdaptiveSettingsUpsertOne) SetHintMode(v string) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetHintMode(v)
	})
}

// UpdateHintMode sets the "hint_mode" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertOne) UpdateHintMode() *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateHintMode()
	})
}

// SetDailyGoal sets the "daily_goal" field.
func (u *AdaptiveSettingsUpsertOne) SetDailyGoal(v int) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetDailyGoal(v)
	})
}

// AddDailyGoal adds v to the "daily_goal" field.
func (u *AdaptiveSettingsUpsertOne) AddDailyGoal(v int) *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.AddDailyGoal(v)
	})
}

// UpdateDailyGoal sets the "daily_goal" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertOne) UpdateDailyGoal() *AdaptiveSettingsUpsertOne {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateDailyGoal()
	})
}

// Exec executes the query.
func (u *AdaptiveSettingsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdaptiveSettingsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdaptiveSettingsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AdaptiveSettingsUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AdaptiveSettingsUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AdaptiveSettingsCreateBulk is the builder for creating many AdaptiveSettings entities in bulk.
type AdaptiveSettingsCreateBulk struct {
	config
	err      error
	builders []*AdaptiveSettingsCreate
	conflict []sql.ConflictOption
}

// Save creates the AdaptiveSettings entities in the database.
func (_c *AdaptiveSettingsCreateBulk) Save(ctx context.Context) ([]*AdaptiveSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdaptiveSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdaptiveSettingsMutation)
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
func (_c *AdaptiveSettingsCreateBulk) SaveX(ctx context.Context) []*AdaptiveSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptiveSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptiveSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdaptiveSettings.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdaptiveSettingsUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *AdaptiveSettingsCreateBulk) OnConflict(opts ...sql.ConflictOption) *AdaptiveSettingsUpsertBulk {
	_c.conflict = opts
	return &AdaptiveSettingsUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdaptiveSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdaptiveSettingsCreateBulk) OnConflictColumns(columns ...string) *AdaptiveSettingsUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdaptiveSettingsUpsertBulk{
		create: _c,
	}
}

// AdaptiveSettingsUpsertBulk is the builder for "upsert"-ing
// a bulk of AdaptiveSettings nodes.
type AdaptiveSettingsUpsertBulk struct {
	create *AdaptiveSettingsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AdaptiveSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AdaptiveSettingsUpsertBulk) UpdateNewValues() *AdaptiveSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdaptiveSettings.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AdaptiveSettingsUpsertBulk) Ignore() *AdaptiveSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdaptiveSettingsUpsertBulk) DoNothing() *AdaptiveSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdaptiveSettingsCreateBulk.OnConflict
// documentation for more info.
func (u *AdaptiveSettingsUpsertBulk) Update(set func(*AdaptiveSettingsUpsert)) *AdaptiveSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdaptiveSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *AdaptiveSettingsUpsertBulk) SetLearnerID(v string) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertBulk) UpdateLearnerID() *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateLearnerID()
	})
}

// SetMainRounds sets the "main_rounds" field.
func (u *AdaptiveSettingsUpsertBulk) SetMainRounds(v int) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetMainRounds(v)
	})
}

// AddMainRounds adds v to the "main_rounds" field.
func (u *AdaptiveSettingsUpsertBulk) AddMainRounds(v int) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.AddMainRounds(v)
	})
}

// UpdateMainRounds sets the "main_rounds" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertBulk) UpdateMainRounds() *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateMainRounds()
	})
}

// SetBossEnabled sets the "boss_enabled" field.
func (u *AdaptiveSettingsUpsertBulk) SetBossEnabled(v bool) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetBossEnabled(v)
	})
}

// UpdateBossEnabled sets the "boss_enabled" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertBulk) UpdateBossEnabled() *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateBossEnabled()
	})
}

// SetBossIntensity sets the "boss_intensity" field.
func (u *AdaptiveSettingsUpsertBulk) SetBossIntensity(v int) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetBossIntensity(v)
	})
}

// AddBossIntensity adds v to the "boss_intensity" field.
func (u *AdaptiveSettingsUpsertBulk) AddBossIntensity(v int) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.AddBossIntensity(v)
	})
}

// UpdateBossIntensity sets the "boss_intensity" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertBulk) UpdateBossIntensity() *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateBossIntensity()
	})
}

// SetHintMode sets the "hint_mode" field.
func (u *AdaptiveSettingsUpsertBulk) SetHintMode(v string) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetHintMode(v)
	})
}

// UpdateHintMode sets the "hint_mode" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertBulk) UpdateHintMode() *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateHintMode()
	})
}

// SetDailyGoal sets the "daily_goal" field.
func (u *AdaptiveSettingsUpsertBulk) SetDailyGoal(v int) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.SetDailyGoal(v)
	})
}

// AddDailyGoal adds v to the "daily_goal" field.
func (u *AdaptiveSettingsUpsertBulk) AddDailyGoal(v int) *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.AddDailyGoal(v)
	})
}

// UpdateDailyGoal sets the "daily_goal" field to the value that was provided on create.
func (u *AdaptiveSettingsUpsertBulk) UpdateDailyGoal() *AdaptiveSettingsUpsertBulk {
	return u.Update(func(s *AdaptiveSettingsUpsert) {
		s.UpdateDailyGoal()
	})
}

// Exec executes the query.
func (u *AdaptiveSettingsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AdaptiveSettingsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdaptiveSettingsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdaptiveSettingsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
