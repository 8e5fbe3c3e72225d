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
	"github.com/abhisek/cogniz/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *AttemptEventCreate) SetLearnerID(v string) *AttemptEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *AttemptEventCreate) SetRoundID(v string) *AttemptEventCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *AttemptEventCreate) SetActivityID(v string) *AttemptEventCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *AttemptEventCreate) SetSkill(v string) *AttemptEventCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *AttemptEventCreate) SetMode(v string) *AttemptEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *AttemptEventCreate) SetAttemptNumber(v int) *AttemptEventCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetChoiceIndex sets the "choice_index" field.
func (_c *AttemptEventCreate) SetChoiceIndex(v int) *AttemptEventCreate {
	_c.mutation.SetChoiceIndex(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AttemptEventCreate) SetIsCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetUsedHint sets the "used_hint" field.
func (_c *AttemptEventCreate) SetUsedHint(v bool) *AttemptEventCreate {
	_c.mutation.SetUsedHint(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *AttemptEventCreate) SetResponseTimeMs(v int) *AttemptEventCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *AttemptEventCreate) SetXpAwarded(v int) *AttemptEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableXpAwarded(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetXpAwarded(*v)
	}
	return _c
}

// SetStrategyXp sets the "strategy_xp" field.
func (_c *AttemptEventCreate) SetStrategyXp(v int) *AttemptEventCreate {
	_c.mutation.SetStrategyXp(v)
	return _c
}

// SetNillableStrategyXp sets the "strategy_xp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableStrategyXp(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetStrategyXp(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		v := attemptevent.DefaultXpAwarded
		_c.mutation.SetXpAwarded(v)
	}
	if _, ok := _c.mutation.StrategyXp(); !ok {
		v := attemptevent.DefaultStrategyXp
		_c.mutation.SetStrategyXp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "AttemptEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "AttemptEvent.round_id"`)}
	}
	if v, ok := _c.mutation.RoundID(); ok {
		if err := attemptevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.round_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "AttemptEvent.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := attemptevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "AttemptEvent.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := attemptevent.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "AttemptEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := attemptevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "AttemptEvent.attempt_number"`)}
	}
	if _, ok := _c.mutation.ChoiceIndex(); !ok {
		return &ValidationError{Name: "choice_index", err: errors.New(`ent: missing required field "AttemptEvent.choice_index"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "AttemptEvent.is_correct"`)}
	}
	if _, ok := _c.mutation.UsedHint(); !ok {
		return &ValidationError{Name: "used_hint", err: errors.New(`ent: missing required field "AttemptEvent.used_hint"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "AttemptEvent.response_time_ms"`)}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "AttemptEvent.xp_awarded"`)}
	}
	if _, ok := _c.mutation.StrategyXp(); !ok {
		return &ValidationError{Name: "strategy_xp", err: errors.New(`ent: missing required field "AttemptEvent.strategy_xp"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(attemptevent.FieldRoundID, field.TypeString, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(attemptevent.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(attemptevent.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(attemptevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.ChoiceIndex(); ok {
		_spec.SetField(attemptevent.FieldChoiceIndex, field.TypeInt, value)
		_node.ChoiceIndex = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(attemptevent.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.UsedHint(); ok {
		_spec.SetField(attemptevent.FieldUsedHint, field.TypeBool, value)
		_node.UsedHint = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(attemptevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	if value, ok := _c.mutation.StrategyXp(); ok {
		_spec.SetField(attemptevent.FieldStrategyXp, field.TypeInt, value)
		_node.StrategyXp = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertOne {
	_c.conflict = opts
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflictColumns(columns ...string) *AttemptEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

type (
	// AttemptEventUpsertOne is the builder for "upsert"-ing
	//  one AttemptEvent node.
	AttemptEventUpsertOne struct {
		create *AttemptEventCreate
	}

	// AttemptEventUpsert is the "OnConflict" setter.
	AttemptEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *AttemptEventUpsert) SetLearnerID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateLearnerID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldLearnerID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsert) SetSessionID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSessionID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSessionID)
	return u
}

// SetRoundID sets the "round_id" field.
func (u *AttemptEventUpsert) SetRoundID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldRoundID, v)
	return u
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateRoundID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldRoundID)
	return u
}

// SetActivityID sets the "activity_id" field.
func (u *AttemptEventUpsert) SetActivityID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldActivityID, v)
	return u
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateActivityID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldActivityID)
	return u
}

// SetSkill sets the "skill" field.
func (u *AttemptEventUpsert) SetSkill(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSkill, v)
	return u
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSkill() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSkill)
	return u
}

// SetMode sets the "mode" field.
func (u *AttemptEventUpsert) SetMode(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateMode() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldMode)
	return u
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *AttemptEventUpsert) SetAttemptNumber(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldAttemptNumber, v)
	return u
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateAttemptNumber() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldAttemptNumber)
	return u
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *AttemptEventUpsert) AddAttemptNumber(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldAttemptNumber, v)
	return u
}

// SetChoiceIndex sets the "choice_index" field.
func (u *AttemptEventUpsert) SetChoiceIndex(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldChoiceIndex, v)
	return u
}

// UpdateChoiceIndex sets the "choice_index" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateChoiceIndex() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldChoiceIndex)
	return u
}

// AddChoiceIndex adds v to the "choice_index" field.
func (u *AttemptEventUpsert) AddChoiceIndex(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldChoiceIndex, v)
	return u
}

// SetIsCorrect sets the "is_correct" field.
func (u *AttemptEventUpsert) SetIsCorrect(v bool) *AttemptEventUpsert {
	u.Set(attemptevent.FieldIsCorrect, v)
	return u
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateIsCorrect() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldIsCorrect)
	return u
}

// SetUsedHint sets the "used_hint" field.
func (u *AttemptEventUpsert) SetUsedHint(v bool) *AttemptEventUpsert {
	u.Set(attemptevent.FieldUsedHint, v)
	return u
}

// UpdateUsedHint sets the "used_hint" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateUsedHint() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldUsedHint)
	return u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *AttemptEventUpsert) SetResponseTimeMs(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldResponseTimeMs, v)
	return u
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateResponseTimeMs() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldResponseTimeMs)
	return u
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *AttemptEventUpsert) AddResponseTimeMs(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldResponseTimeMs, v)
	return u
}

// SetXpAwarded sets the "xp_awarded" field.
func (u *AttemptEventUpsert) SetXpAwarded(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldXpAwarded, v)
	return u
}

// UpdateXpAwarded sets the "xp_awarded" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateXpAwarded() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldXpAwarded)
	return u
}

// AddXpAwarded adds v to the "xp_awarded" field.
func (u *AttemptEventUpsert) AddXpAwarded(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldXpAwarded, v)
	return u
}

// SetStrategyXp sets the "strategy_xp" field.
func (u *AttemptEventUpsert) SetStrategyXp(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldStrategyXp, v)
	return u
}

// UpdateStrategyXp sets the "strategy_xp" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateStrategyXp() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldStrategyXp)
	return u
}

// AddStrategyXp adds v to the "strategy_xp" field.
func (u *AttemptEventUpsert) AddStrategyXp(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldStrategyXp, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertOne) UpdateNewValues() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(attemptevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(attemptevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptEventUpsertOne) Ignore() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertOne) DoNothing() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreate.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertOne) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *AttemptEventUpsertOne) SetLearnerID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateLearnerID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsertOne) SetSessionID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSessionID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetRoundID sets the "round_id" field.
func (u *AttemptEventUpsertOne) SetRoundID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetRoundID(v)
	})
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateRoundID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateRoundID()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *AttemptEventUpsertOne) SetActivityID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateActivityID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateActivityID()
	})
}

// SetSkill sets the "skill" field.
func (u *AttemptEventUpsertOne) SetSkill(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSkill(v)
	})
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSkill() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSkill()
	})
}

// SetMode sets the "mode" field.
func (u *AttemptEventUpsertOne) SetMode(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateMode() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateMode()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *AttemptEventUpsertOne) SetAttemptNumber(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *AttemptEventUpsertOne) AddAttemptNumber(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateAttemptNumber() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetChoiceIndex sets the "choice_index" field.
func (u *AttemptEventUpsertOne) SetChoiceIndex(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetChoiceIndex(v)
	})
}

// AddChoiceIndex adds v to the "choice_index" field.
func (u *AttemptEventUpsertOne) AddChoiceIndex(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddChoiceIndex(v)
	})
}

// UpdateChoiceIndex sets the "choice_index" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateChoiceIndex() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateChoiceIndex()
	})
}

// SetIsCorrect sets the "is_correct" field.
func (u *AttemptEventUpsertOne) SetIsCorrect(v bool) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetIsCorrect(v)
	})
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateIsCorrect() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateIsCorrect()
	})
}

// SetUsedHint sets the "used_hint" field.
func (u *AttemptEventUpsertOne) SetUsedHint(v bool) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUsedHint(v)
	})
}

// UpdateUsedHint sets the "used_hint" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateUsedHint() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUsedHint()
	})
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *AttemptEventUpsertOne) SetResponseTimeMs(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetResponseTimeMs(v)
	})
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *AttemptEventUpsertOne) AddResponseTimeMs(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddResponseTimeMs(v)
	})
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateResponseTimeMs() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateResponseTimeMs()
	})
}

// SetXpAwarded sets the "xp_awarded" field.
func (u *AttemptEventUpsertOne) SetXpAwarded(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetXpAwarded(v)
	})
}

// AddXpAwarded adds v to the "xp_awarded" field.
func (u *AttemptEventUpsertOne) AddXpAwarded(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddXpAwarded(v)
	})
}

// UpdateXpAwarded sets the "xp_awarded" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateXpAwarded() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateXpAwarded()
	})
}

// SetStrategyXp sets the "strategy_xp" field.
func (u *AttemptEventUpsertOne) SetStrategyXp(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetStrategyXp(v)
	})
}

// AddStrategyXp adds v to the "strategy_xp" field.
func (u *AttemptEventUpsertOne) AddStrategyXp(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddStrategyXp(v)
	})
}

// UpdateStrategyXp sets the "strategy_xp" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateStrategyXp() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateStrategyXp()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertBulk {
	_c.conflict = opts
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflictColumns(columns ...string) *AttemptEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// AttemptEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AttemptEvent nodes.
type AttemptEventUpsertBulk struct {
	create *AttemptEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) UpdateNewValues() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(attemptevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(attemptevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) Ignore() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertBulk) DoNothing() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertBulk) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *AttemptEventUpsertBulk) SetLearnerID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateLearnerID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLearnerID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsertBulk) SetSessionID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSessionID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetRoundID sets the "round_id" field.
func (u *AttemptEventUpsertBulk) SetRoundID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetRoundID(v)
	})
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateRoundID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateRoundID()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *AttemptEventUpsertBulk) SetActivityID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateActivityID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateActivityID()
	})
}

// SetSkill sets the "skill" field.
func (u *AttemptEventUpsertBulk) SetSkill(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSkill(v)
	})
}

// UpdateSkill sets the "skill" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSkill() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSkill()
	})
}

// SetMode sets the "mode" field.
func (u *AttemptEventUpsertBulk) SetMode(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateMode() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateMode()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *AttemptEventUpsertBulk) SetAttemptNumber(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *AttemptEventUpsertBulk) AddAttemptNumber(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateAttemptNumber() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetChoiceIndex sets the "choice_index" field.
func (u *AttemptEventUpsertBulk) SetChoiceIndex(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetChoiceIndex(v)
	})
}

// AddChoiceIndex adds v to the "choice_index" field.
func (u *AttemptEventUpsertBulk) AddChoiceIndex(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddChoiceIndex(v)
	})
}

// UpdateChoiceIndex sets the "choice_index" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateChoiceIndex() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateChoiceIndex()
	})
}

// SetIsCorrect sets the "is_correct" field.
func (u *AttemptEventUpsertBulk) SetIsCorrect(v bool) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetIsCorrect(v)
	})
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateIsCorrect() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateIsCorrect()
	})
}

// SetUsedHint sets the "used_hint" field.
func (u *AttemptEventUpsertBulk) SetUsedHint(v bool) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUsedHint(v)
	})
}

// UpdateUsedHint sets the "used_hint" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateUsedHint() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUsedHint()
	})
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *AttemptEventUpsertBulk) SetResponseTimeMs(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetResponseTimeMs(v)
	})
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *AttemptEventUpsertBulk) AddResponseTimeMs(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddResponseTimeMs(v)
	})
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateResponseTimeMs() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateResponseTimeMs()
	})
}

// SetXpAwarded sets the "xp_awarded" field.
func (u *AttemptEventUpsertBulk) SetXpAwarded(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetXpAwarded(v)
	})
}

// AddXpAwarded adds v to the "xp_awarded" field.
func (u *AttemptEventUpsertBulk) AddXpAwarded(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddXpAwarded(v)
	})
}

// UpdateXpAwarded sets the "xp_awarded" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateXpAwarded() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateXpAwarded()
	})
}

// SetStrategyXp sets the "strategy_xp" field.
func (u *AttemptEventUpsertBulk) SetStrategyXp(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetStrategyXp(v)
	})
}

// AddStrategyXp adds v to the "strategy_xp" field.
func (u *AttemptEventUpsertBulk) AddStrategyXp(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddStrategyXp(v)
	})
}

// UpdateStrategyXp sets the "strategy_xp" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateStrategyXp() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateStrategyXp()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
