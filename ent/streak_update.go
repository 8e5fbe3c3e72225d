// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/predicate"
	"github.com/abhisek/cogniz/ent/streak"
)

// StreakUpdate is the builder for updating Streak entities.
type StreakUpdate struct {
	config
	hooks    []Hook
	mutation *StreakMutation
}

// Where appends a list predicates to the StreakUpdate builder.
func (_u *StreakUpdate) Where(ps ...predicate.Streak) *StreakUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *StreakUpdate) SetLearnerID(v string) *StreakUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *StreakUpdate) SetNillableLearnerID(v *string) *StreakUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *StreakUpdate) SetCurrentStreak(v int) *StreakUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *StreakUpdate) SetNillableCurrentStreak(v *int) *StreakUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *StreakUpdate) AddCurrentStreak(v int) *StreakUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLastPlayedDate sets the "last_played_date" field.
func (_u *StreakUpdate) SetLastPlayedDate(v string) *StreakUpdate {
	_u.mutation.SetLastPlayedDate(v)
	return _u
}

// SetNillableLastPlayedDate sets the "last_played_date" field if the given value is not nil.
func (_u *StreakUpdate) SetNillableLastPlayedDate(v *string) *StreakUpdate {
	if v != nil {
		_u.SetLastPlayedDate(*v)
	}
	return _u
}

// Mutation returns the StreakMutation object of the builder.
func (_u *StreakUpdate) Mutation() *StreakMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StreakUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreakUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StreakUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreakUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreakUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := streak.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Streak.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StreakUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streak.Table, streak.Columns, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(streak.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(streak.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(streak.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayedDate(); ok {
		_spec.SetField(streak.FieldLastPlayedDate, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StreakUpdateOne is the builder for updating a single Streak entity.
type StreakUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreakMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *StreakUpdateOne) SetLearnerID(v string) *StreakUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *StreakUpdateOne) SetNillableLearnerID(v *string) *StreakUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *StreakUpdateOne) SetCurrentStreak(v int) *StreakUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *StreakUpdateOne) SetNillableCurrentStreak(v *int) *StreakUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *StreakUpdateOne) AddCurrentStreak(v int) *StreakUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLastPlayedDate sets the "last_played_date" field.
func (_u *StreakUpdateOne) SetLastPlayedDate(v string) *StreakUpdateOne {
	_u.mutation.SetLastPlayedDate(v)
	return _u
}

// SetNillableLastPlayedDate sets the "last_played_date" field if the given value is not nil.
func (_u *StreakUpdateOne) SetNillableLastPlayedDate(v *string) *StreakUpdateOne {
	if v != nil {
		_u.SetLastPlayedDate(*v)
	}
	return _u
}

// Mutation returns the StreakMutation object of the builder.
func (_u *StreakUpdateOne) Mutation() *StreakMutation {
	return _u.mutation
}

// Where appends a list predicates to the StreakUpdate builder.
func (_u *StreakUpdateOne) Where(ps ...predicate.Streak) *StreakUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StreakUpdateOne) Select(field string, fields ...string) *StreakUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Streak entity.
func (_u *StreakUpdateOne) Save(ctx context.Context) (*Streak, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreakUpdateOne) SaveX(ctx context.Context) *Streak {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StreakUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreakUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreakUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := streak.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Streak.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StreakUpdateOne) sqlSave(ctx context.Context) (_node *Streak, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streak.Table, streak.Columns, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Streak.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streak.FieldID)
		for _, f := range fields {
			if !streak.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streak.FieldID {
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
		_spec.SetField(streak.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(streak.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(streak.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayedDate(); ok {
		_spec.SetField(streak.FieldLastPlayedDate, field.TypeString, value)
	}
	_node = &Streak{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
