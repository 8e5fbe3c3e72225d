// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/learner"
	"github.com/abhisek/cogniz/ent/predicate"
)

// LearnerUpdate is the builder for updating Learner entities.
type LearnerUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerMutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (_u *LearnerUpdate) Where(ps ...predicate.Learner) *LearnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LearnerUpdate) SetName(v string) *LearnerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableName(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgeBand sets the "age_band" field.
func (_u *LearnerUpdate) SetAgeBand(v string) *LearnerUpdate {
	_u.mutation.SetAgeBand(v)
	return _u
}

// SetNillableAgeBand sets the "age_band" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableAgeBand(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetAgeBand(*v)
	}
	return _u
}

// Mutation returns the LearnerMutation object of the builder.
func (_u *LearnerUpdate) Mutation() *LearnerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := learner.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Learner.name": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeBand(); ok {
		_spec.SetField(learner.FieldAgeBand, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerUpdateOne is the builder for updating a single Learner entity.
type LearnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerMutation
}

// SetName sets the "name" field.
func (_u *LearnerUpdateOne) SetName(v string) *LearnerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableName(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgeBand sets the "age_band" field.
func (_u *LearnerUpdateOne) SetAgeBand(v string) *LearnerUpdateOne {
	_u.mutation.SetAgeBand(v)
	return _u
}

// SetNillableAgeBand sets the "age_band" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableAgeBand(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetAgeBand(*v)
	}
	return _u
}

// Mutation returns the LearnerMutation object of the builder.
func (_u *LearnerUpdateOne) Mutation() *LearnerMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (_u *LearnerUpdateOne) Where(ps ...predicate.Learner) *LearnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerUpdateOne) Select(field string, fields ...string) *LearnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Learner entity.
func (_u *LearnerUpdateOne) Save(ctx context.Context) (*Learner, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerUpdateOne) SaveX(ctx context.Context) *Learner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := learner.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Learner.name": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerUpdateOne) sqlSave(ctx context.Context) (_node *Learner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Learner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learner.FieldID)
		for _, f := range fields {
			if !learner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learner.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeBand(); ok {
		_spec.SetField(learner.FieldAgeBand, field.TypeString, value)
	}
	_node = &Learner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
