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
	"github.com/abhisek/cogniz/ent/predicate"
)

// AdaptiveSettingsUpdate is the builder for updating AdaptiveSettings entities.
type AdaptiveSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptiveSettingsMutation
}

// Where appends a list predicates to the AdaptiveSettingsUpdate builder.
func (_u *AdaptiveSettingsUpdate) Where(ps ...predicate.AdaptiveSettings) *AdaptiveSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AdaptiveSettingsUpdate) SetLearnerID(v string) *AdaptiveSettingsUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdate) SetNillableLearnerID(v *string) *AdaptiveSettingsUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetMainRounds sets the "main_rounds" field.
func (_u *AdaptiveSettingsUpdate) SetMainRounds(v int) *AdaptiveSettingsUpdate {
	_u.mutation.ResetMainRounds()
	_u.mutation.SetMainRounds(v)
	return _u
}

// SetNillableMainRounds sets the "main_rounds" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdate) SetNillableMainRounds(v *int) *AdaptiveSettingsUpdate {
	if v != nil {
		_u.SetMainRounds(*v)
	}
	return _u
}

// AddMainRounds adds value to the "main_rounds" field.
func (_u *AdaptiveSettingsUpdate) AddMainRounds(v int) *AdaptiveSettingsUpdate {
	_u.mutation.AddMainRounds(v)
	return _u
}

// SetBossEnabled sets the "boss_enabled" field.
func (_u *AdaptiveSettingsUpdate) SetBossEnabled(v bool) *AdaptiveSettingsUpdate {
	_u.mutation.SetBossEnabled(v)
	return _u
}

// SetNillableBossEnabled sets the "boss_enabled" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdate) SetNillableBossEnabled(v *bool) *AdaptiveSettingsUpdate {
	if v != nil {
		_u.SetBossEnabled(*v)
	}
	return _u
}

// SetBossIntensity sets the "boss_intensity" field.
func (_u *AdaptiveSettingsUpdate) SetBossIntensity(v int) *AdaptiveSettingsUpdate {
	_u.mutation.ResetBossIntensity()
	_u.mutation.SetBossIntensity(v)
	return _u
}

// SetNillableBossIntensity sets the "boss_intensity" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdate) SetNillableBossIntensity(v *int) *AdaptiveSettingsUpdate {
	if v != nil {
		_u.SetBossIntensity(*v)
	}
	return _u
}

// AddBossIntensity adds value to the "boss_intensity" field.
func (_u *AdaptiveSettingsUpdate) AddBossIntensity(v int) *AdaptiveSettingsUpdate {
	_u.mutation.AddBossIntensity(v)
	return _u
}

// SetHintMode sets the "hint_mode" field.
func (_u *AdaptiveSettingsUpdate) SetHintMode(v string) *AdaptiveSettingsUpdate {
	_u.mutation.SetHintMode(v)
	return _u
}

// SetNillableHintMode sets the "hint_mode" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdate) SetNillableHintMode(v *string) *AdaptiveSettingsUpdate {
	if v != nil {
		_u.SetHintMode(*v)
	}
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *AdaptiveSettingsUpdate) SetDailyGoal(v int) *AdaptiveSettingsUpdate {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdate) SetNillableDailyGoal(v *int) *AdaptiveSettingsUpdate {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *AdaptiveSettingsUpdate) AddDailyGoal(v int) *AdaptiveSettingsUpdate {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// Mutation returns the AdaptiveSettingsMutation object of the builder.
func (_u *AdaptiveSettingsUpdate) Mutation() *AdaptiveSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptiveSettingsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptiveSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptiveSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptiveSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptiveSettingsUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := adaptivesettings.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSettings.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptiveSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptivesettings.Table, adaptivesettings.Columns, sqlgraph.NewFieldSpec(adaptivesettings.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(adaptivesettings.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MainRounds(); ok {
		_spec.SetField(adaptivesettings.FieldMainRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMainRounds(); ok {
		_spec.AddField(adaptivesettings.FieldMainRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BossEnabled(); ok {
		_spec.SetField(adaptivesettings.FieldBossEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BossIntensity(); ok {
		_spec.SetField(adaptivesettings.FieldBossIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBossIntensity(); ok {
		_spec.AddField(adaptivesettings.FieldBossIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintMode(); ok {
		_spec.SetField(adaptivesettings.FieldHintMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(adaptivesettings.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(adaptivesettings.FieldDailyGoal, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptivesettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptiveSettingsUpdateOne is the builder for updating a single AdaptiveSettings entity.
type AdaptiveSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptiveSettingsMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *AdaptiveSettingsUpdateOne) SetLearnerID(v string) *AdaptiveSettingsUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdateOne) SetNillableLearnerID(v *string) *AdaptiveSettingsUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetMainRounds sets the "main_rounds" field.
func (_u *AdaptiveSettingsUpdateOne) SetMainRounds(v int) *AdaptiveSettingsUpdateOne {
	_u.mutation.ResetMainRounds()
	_u.mutation.SetMainRounds(v)
	return _u
}

// SetNillableMainRounds sets the "main_rounds" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdateOne) SetNillableMainRounds(v *int) *AdaptiveSettingsUpdateOne {
	if v != nil {
		_u.SetMainRounds(*v)
	}
	return _u
}

// AddMainRounds adds value to the "main_rounds" field.
func (_u *AdaptiveSettingsUpdateOne) AddMainRounds(v int) *AdaptiveSettingsUpdateOne {
	_u.mutation.AddMainRounds(v)
	return _u
}

// SetBossEnabled sets the "boss_enabled" field.
func (_u *AdaptiveSettingsUpdateOne) SetBossEnabled(v bool) *AdaptiveSettingsUpdateOne {
	_u.mutation.SetBossEnabled(v)
	return _u
}

// SetNillableBossEnabled sets the "boss_enabled" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdateOne) SetNillableBossEnabled(v *bool) *AdaptiveSettingsUpdateOne {
	if v != nil {
		_u.SetBossEnabled(*v)
	}
	return _u
}

// SetBossIntensity sets the "boss_intensity" field.
func (_u *AdaptiveSettingsUpdateOne) SetBossIntensity(v int) *AdaptiveSettingsUpdateOne {
	_u.mutation.ResetBossIntensity()
	_u.mutation.SetBossIntensity(v)
	return _u
}

// SetNillableBossIntensity sets the "boss_intensity" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdateOne) SetNillableBossIntensity(v *int) *AdaptiveSettingsUpdateOne {
	if v != nil {
		_u.SetBossIntensity(*v)
	}
	return _u
}

// AddBossIntensity adds value to the "boss_intensity" field.
func (_u *AdaptiveSettingsUpdateOne) AddBossIntensity(v int) *AdaptiveSettingsUpdateOne {
	_u.mutation.AddBossIntensity(v)
	return _u
}

// SetHintMode sets the "hint_mode" field.
func (_u *AdaptiveSettingsUpdateOne) SetHintMode(v string) *AdaptiveSettingsUpdateOne {
	_u.mutation.SetHintMode(v)
	return _u
}

// SetNillableHintMode sets the "hint_mode" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdateOne) SetNillableHintMode(v *string) *AdaptiveSettingsUpdateOne {
	if v != nil {
		_u.SetHintMode(*v)
	}
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *AdaptiveSettingsUpdateOne) SetDailyGoal(v int) *AdaptiveSettingsUpdateOne {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *AdaptiveSettingsUpdateOne) SetNillableDailyGoal(v *int) *AdaptiveSettingsUpdateOne {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *AdaptiveSettingsUpdateOne) AddDailyGoal(v int) *AdaptiveSettingsUpdateOne {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// Mutation returns the AdaptiveSettingsMutation object of the builder.
func (_u *AdaptiveSettingsUpdateOne) Mutation() *AdaptiveSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptiveSettingsUpdate builder.
func (_u *AdaptiveSettingsUpdateOne) Where(ps ...predicate.AdaptiveSettings) *AdaptiveSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptiveSettingsUpdateOne) Select(field string, fields ...string) *AdaptiveSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptiveSettings entity.
func (_u *AdaptiveSettingsUpdateOne) Save(ctx context.Context) (*AdaptiveSettings, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptiveSettingsUpdateOne) SaveX(ctx context.Context) *AdaptiveSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptiveSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptiveSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptiveSettingsUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := adaptivesettings.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AdaptiveSettings.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptiveSettingsUpdateOne) sqlSave(ctx context.Context) (_node *AdaptiveSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptivesettings.Table, adaptivesettings.Columns, sqlgraph.NewFieldSpec(adaptivesettings.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptiveSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptivesettings.FieldID)
		for _, f := range fields {
			if !adaptivesettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptivesettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(adaptivesettings.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MainRounds(); ok {
		_spec.SetField(adaptivesettings.FieldMainRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMainRounds(); ok {
		_spec.AddField(adaptivesettings.FieldMainRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BossEnabled(); ok {
		_spec.SetField(adaptivesettings.FieldBossEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BossIntensity(); ok {
		_spec.SetField(adaptivesettings.FieldBossIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBossIntensity(); ok {
		_spec.AddField(adaptivesettings.FieldBossIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintMode(); ok {
		_spec.SetField(adaptivesettings.FieldHintMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(adaptivesettings.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(adaptivesettings.FieldDailyGoal, field.TypeInt, value)
	}
	_node = &AdaptiveSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptivesettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
