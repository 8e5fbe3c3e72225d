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
	"github.com/abhisek/cogniz/ent/reviewentry"
)

// ReviewEntryUpdate is the builder for updating ReviewEntry entities.
type ReviewEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEntryMutation
}

// Where appends a list predicates to the ReviewEntryUpdate builder.
func (_u *ReviewEntryUpdate) Where(ps ...predicate.ReviewEntry) *ReviewEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewEntryUpdate) SetLearnerID(v string) *ReviewEntryUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableLearnerID(v *string) *ReviewEntryUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ReviewEntryUpdate) SetActivityID(v string) *ReviewEntryUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableActivityID(v *string) *ReviewEntryUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *ReviewEntryUpdate) SetSkill(v string) *ReviewEntryUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableSkill(v *string) *ReviewEntryUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewEntryUpdate) SetDueAt(v time.Time) *ReviewEntryUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableDueAt(v *time.Time) *ReviewEntryUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEntryUpdate) SetIntervalDays(v int) *ReviewEntryUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableIntervalDays(v *int) *ReviewEntryUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEntryUpdate) AddIntervalDays(v int) *ReviewEntryUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *ReviewEntryUpdate) SetEase(v float64) *ReviewEntryUpdate {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableEase(v *float64) *ReviewEntryUpdate {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *ReviewEntryUpdate) AddEase(v float64) *ReviewEntryUpdate {
	_u.mutation.AddEase(v)
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *ReviewEntryUpdate) SetLastResult(v bool) *ReviewEntryUpdate {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableLastResult(v *bool) *ReviewEntryUpdate {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *ReviewEntryUpdate) ClearLastResult() *ReviewEntryUpdate {
	_u.mutation.ClearLastResult()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewEntryUpdate) SetCreatedAt(v time.Time) *ReviewEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableCreatedAt(v *time.Time) *ReviewEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_u *ReviewEntryUpdate) Mutation() *ReviewEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEntryUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewentry.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := reviewentry.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := reviewentry.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewentry.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewentry.Table, reviewentry.Columns, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewentry.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(reviewentry.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(reviewentry.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewentry.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewentry.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewentry.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(reviewentry.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(reviewentry.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(reviewentry.FieldLastResult, field.TypeBool, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(reviewentry.FieldLastResult, field.TypeBool)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEntryUpdateOne is the builder for updating a single ReviewEntry entity.
type ReviewEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEntryMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewEntryUpdateOne) SetLearnerID(v string) *ReviewEntryUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableLearnerID(v *string) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ReviewEntryUpdateOne) SetActivityID(v string) *ReviewEntryUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableActivityID(v *string) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *ReviewEntryUpdateOne) SetSkill(v string) *ReviewEntryUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableSkill(v *string) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewEntryUpdateOne) SetDueAt(v time.Time) *ReviewEntryUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableDueAt(v *time.Time) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEntryUpdateOne) SetIntervalDays(v int) *ReviewEntryUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableIntervalDays(v *int) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEntryUpdateOne) AddIntervalDays(v int) *ReviewEntryUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *ReviewEntryUpdateOne) SetEase(v float64) *ReviewEntryUpdateOne {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableEase(v *float64) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *ReviewEntryUpdateOne) AddEase(v float64) *ReviewEntryUpdateOne {
	_u.mutation.AddEase(v)
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *ReviewEntryUpdateOne) SetLastResult(v bool) *ReviewEntryUpdateOne {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableLastResult(v *bool) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *ReviewEntryUpdateOne) ClearLastResult() *ReviewEntryUpdateOne {
	_u.mutation.ClearLastResult()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewEntryUpdateOne) SetCreatedAt(v time.Time) *ReviewEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_u *ReviewEntryUpdateOne) Mutation() *ReviewEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEntryUpdate builder.
func (_u *ReviewEntryUpdateOne) Where(ps ...predicate.ReviewEntry) *ReviewEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEntryUpdateOne) Select(field string, fields ...string) *ReviewEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEntry entity.
func (_u *ReviewEntryUpdateOne) Save(ctx context.Context) (*ReviewEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEntryUpdateOne) SaveX(ctx context.Context) *ReviewEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEntryUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewentry.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := reviewentry.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := reviewentry.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewentry.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEntryUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewentry.Table, reviewentry.Columns, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewentry.FieldID)
		for _, f := range fields {
			if !reviewentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewentry.FieldID {
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
		_spec.SetField(reviewentry.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(reviewentry.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(reviewentry.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewentry.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewentry.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewentry.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(reviewentry.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(reviewentry.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(reviewentry.FieldLastResult, field.TypeBool, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(reviewentry.FieldLastResult, field.TypeBool)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewentry.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ReviewEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
