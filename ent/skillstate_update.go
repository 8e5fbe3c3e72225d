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
	"github.com/abhisek/cogniz/ent/predicate"
	"github.com/abhisek/cogniz/ent/skillstate"
)

// SkillStateUpdate is the builder for updating SkillState entities.
type SkillStateUpdate struct {
	config
	hooks    []Hook
	mutation *SkillStateMutation
}

// Where appends a list predicates to the SkillStateUpdate builder.
func (_u *SkillStateUpdate) Where(ps ...predicate.SkillState) *SkillStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SkillStateUpdate) SetLearnerID(v string) *SkillStateUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableLearnerID(v *string) *SkillStateUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *SkillStateUpdate) SetSkill(v string) *SkillStateUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableSkill(v *string) *SkillStateUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SkillStateUpdate) SetLevel(v int) *SkillStateUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableLevel(v *int) *SkillStateUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *SkillStateUpdate) AddLevel(v int) *SkillStateUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *SkillStateUpdate) SetXp(v int) *SkillStateUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableXp(v *int) *SkillStateUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *SkillStateUpdate) AddXp(v int) *SkillStateUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *SkillStateUpdate) SetMasteryScore(v float64) *SkillStateUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *SkillStateUpdate) SetNillableMasteryScore(v *float64) *SkillStateUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *SkillStateUpdate) AddMasteryScore(v float64) *SkillStateUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillStateUpdate) SetUpdatedAt(v time.Time) *SkillStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillStateMutation object of the builder.
func (_u *SkillStateUpdate) Mutation() *SkillStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillStateUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := skillstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := skillstate.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "SkillState.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := skillstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SkillState.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := skillstate.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "SkillState.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryScore(); ok {
		if err := skillstate.MasteryScoreValidator(v); err != nil {
			return &ValidationError{Name: "mastery_score", err: fmt.Errorf(`ent: validator failed for field "SkillState.mastery_score": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillstate.Table, skillstate.Columns, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(skillstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(skillstate.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(skillstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(skillstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(skillstate.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(skillstate.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillStateUpdateOne is the builder for updating a single SkillState entity.
type SkillStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *SkillStateUpdateOne) SetLearnerID(v string) *SkillStateUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableLearnerID(v *string) *SkillStateUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *SkillStateUpdateOne) SetSkill(v string) *SkillStateUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableSkill(v *string) *SkillStateUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SkillStateUpdateOne) SetLevel(v int) *SkillStateUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableLevel(v *int) *SkillStateUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *SkillStateUpdateOne) AddLevel(v int) *SkillStateUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *SkillStateUpdateOne) SetXp(v int) *SkillStateUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableXp(v *int) *SkillStateUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *SkillStateUpdateOne) AddXp(v int) *SkillStateUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *SkillStateUpdateOne) SetMasteryScore(v float64) *SkillStateUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *SkillStateUpdateOne) SetNillableMasteryScore(v *float64) *SkillStateUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *SkillStateUpdateOne) AddMasteryScore(v float64) *SkillStateUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillStateUpdateOne) SetUpdatedAt(v time.Time) *SkillStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillStateMutation object of the builder.
func (_u *SkillStateUpdateOne) Mutation() *SkillStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillStateUpdate builder.
func (_u *SkillStateUpdateOne) Where(ps ...predicate.SkillState) *SkillStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillStateUpdateOne) Select(field string, fields ...string) *SkillStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillState entity.
func (_u *SkillStateUpdateOne) Save(ctx context.Context) (*SkillState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillStateUpdateOne) SaveX(ctx context.Context) *SkillState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillStateUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := skillstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SkillState.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := skillstate.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "SkillState.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := skillstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SkillState.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := skillstate.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "SkillState.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryScore(); ok {
		if err := skillstate.MasteryScoreValidator(v); err != nil {
			return &ValidationError{Name: "mastery_score", err: fmt.Errorf(`ent: validator failed for field "SkillState.mastery_score": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillStateUpdateOne) sqlSave(ctx context.Context) (_node *SkillState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillstate.Table, skillstate.Columns, sqlgraph.NewFieldSpec(skillstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillstate.FieldID)
		for _, f := range fields {
			if !skillstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillstate.FieldID {
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
		_spec.SetField(skillstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(skillstate.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(skillstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(skillstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(skillstate.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(skillstate.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(skillstate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SkillState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
