// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/attemptevent"
	"github.com/abhisek/cogniz/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AttemptEventUpdate) SetLearnerID(v string) *AttemptEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLearnerID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *AttemptEventUpdate) SetRoundID(v string) *AttemptEventUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableRoundID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *AttemptEventUpdate) SetActivityID(v string) *AttemptEventUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableActivityID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *AttemptEventUpdate) SetSkill(v string) *AttemptEventUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSkill(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptEventUpdate) SetMode(v string) *AttemptEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMode(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AttemptEventUpdate) SetAttemptNumber(v int) *AttemptEventUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptNumber(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AttemptEventUpdate) AddAttemptNumber(v int) *AttemptEventUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetChoiceIndex sets the "choice_index" field.
func (_u *AttemptEventUpdate) SetChoiceIndex(v int) *AttemptEventUpdate {
	_u.mutation.ResetChoiceIndex()
	_u.mutation.SetChoiceIndex(v)
	return _u
}

// SetNillableChoiceIndex sets the "choice_index" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableChoiceIndex(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetChoiceIndex(*v)
	}
	return _u
}

// AddChoiceIndex adds value to the "choice_index" field.
func (_u *AttemptEventUpdate) AddChoiceIndex(v int) *AttemptEventUpdate {
	_u.mutation.AddChoiceIndex(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptEventUpdate) SetIsCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableIsCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetUsedHint sets the "used_hint" field.
func (_u *AttemptEventUpdate) SetUsedHint(v bool) *AttemptEventUpdate {
	_u.mutation.SetUsedHint(v)
	return _u
}

// SetNillableUsedHint sets the "used_hint" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUsedHint(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetUsedHint(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptEventUpdate) SetResponseTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableResponseTimeMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptEventUpdate) AddResponseTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *AttemptEventUpdate) SetXpAwarded(v int) *AttemptEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableXpAwarded(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *AttemptEventUpdate) AddXpAwarded(v int) *AttemptEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetStrategyXp sets the "strategy_xp" field.
func (_u *AttemptEventUpdate) SetStrategyXp(v int) *AttemptEventUpdate {
	_u.mutation.ResetStrategyXp()
	_u.mutation.SetStrategyXp(v)
	return _u
}

// SetNillableStrategyXp sets the "strategy_xp" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStrategyXp(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetStrategyXp(*v)
	}
	return _u
}

// AddStrategyXp adds value to the "strategy_xp" field.
func (_u *AttemptEventUpdate) AddStrategyXp(v int) *AttemptEventUpdate {
	_u.mutation.AddStrategyXp(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundID(); ok {
		if err := attemptevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := attemptevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := attemptevent.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := attemptevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(attemptevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(attemptevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(attemptevent.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attemptevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChoiceIndex(); ok {
		_spec.SetField(attemptevent.FieldChoiceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChoiceIndex(); ok {
		_spec.AddField(attemptevent.FieldChoiceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedHint(); ok {
		_spec.SetField(attemptevent.FieldUsedHint, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(attemptevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(attemptevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrategyXp(); ok {
		_spec.SetField(attemptevent.FieldStrategyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrategyXp(); ok {
		_spec.AddField(attemptevent.FieldStrategyXp, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *AttemptEventUpdateOne) SetLearnerID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLearnerID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *AttemptEventUpdateOne) SetRoundID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableRoundID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *AttemptEventUpdateOne) SetActivityID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableActivityID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *AttemptEventUpdateOne) SetSkill(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSkill(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptEventUpdateOne) SetMode(v string) *AttemptEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMode(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AttemptEventUpdateOne) SetAttemptNumber(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptNumber(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AttemptEventUpdateOne) AddAttemptNumber(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetChoiceIndex sets the "choice_index" field.
func (_u *AttemptEventUpdateOne) SetChoiceIndex(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetChoiceIndex()
	_u.mutation.SetChoiceIndex(v)
	return _u
}

// SetNillableChoiceIndex sets the "choice_index" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableChoiceIndex(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetChoiceIndex(*v)
	}
	return _u
}

// AddChoiceIndex adds value to the "choice_index" field.
func (_u *AttemptEventUpdateOne) AddChoiceIndex(v int) *AttemptEventUpdateOne {
	_u.mutation.AddChoiceIndex(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptEventUpdateOne) SetIsCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableIsCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetUsedHint sets the "used_hint" field.
func (_u *AttemptEventUpdateOne) SetUsedHint(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetUsedHint(v)
	return _u
}

// SetNillableUsedHint sets the "used_hint" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUsedHint(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUsedHint(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptEventUpdateOne) SetResponseTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableResponseTimeMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptEventUpdateOne) AddResponseTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *AttemptEventUpdateOne) SetXpAwarded(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableXpAwarded(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *AttemptEventUpdateOne) AddXpAwarded(v int) *AttemptEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetStrategyXp sets the "strategy_xp" field.
func (_u *AttemptEventUpdateOne) SetStrategyXp(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetStrategyXp()
	_u.mutation.SetStrategyXp(v)
	return _u
}

// SetNillableStrategyXp sets the "strategy_xp" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStrategyXp(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStrategyXp(*v)
	}
	return _u
}

// AddStrategyXp adds value to the "strategy_xp" field.
func (_u *AttemptEventUpdateOne) AddStrategyXp(v int) *AttemptEventUpdateOne {
	_u.mutation.AddStrategyXp(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundID(); ok {
		if err := attemptevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := attemptevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := attemptevent.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := attemptevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(attemptevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(attemptevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(attemptevent.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attemptevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChoiceIndex(); ok {
		_spec.SetField(attemptevent.FieldChoiceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChoiceIndex(); ok {
		_spec.AddField(attemptevent.FieldChoiceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedHint(); ok {
		_spec.SetField(attemptevent.FieldUsedHint, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(attemptevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(attemptevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrategyXp(); ok {
		_spec.SetField(attemptevent.FieldStrategyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrategyXp(); ok {
		_spec.AddField(attemptevent.FieldStrategyXp, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
