// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/badge"
	"github.com/abhisek/cogniz/ent/predicate"
)

// BadgeUpdate is the builder for updating Badge entities.
type BadgeUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeMutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdate) Where(ps ...predicate.Badge) *BadgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *BadgeUpdate) SetLearnerID(v string) *BadgeUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableLearnerID(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetBadgeKey sets the "badge_key" field.
func (_u *BadgeUpdate) SetBadgeKey(v string) *BadgeUpdate {
	_u.mutation.SetBadgeKey(v)
	return _u
}

// SetNillableBadgeKey sets the "badge_key" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableBadgeKey(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetBadgeKey(*v)
	}
	return _u
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdate) Mutation() *BadgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := badge.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Badge.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BadgeKey(); ok {
		if err := badge.BadgeKeyValidator(v); err != nil {
			return &ValidationError{Name: "badge_key", err: fmt.Errorf(`ent: validator failed for field "Badge.badge_key": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(badge.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeKey(); ok {
		_spec.SetField(badge.FieldBadgeKey, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeUpdateOne is the builder for updating a single Badge entity.
type BadgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *BadgeUpdateOne) SetLearnerID(v string) *BadgeUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableLearnerID(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetBadgeKey sets the "badge_key" field.
func (_u *BadgeUpdateOne) SetBadgeKey(v string) *BadgeUpdateOne {
	_u.mutation.SetBadgeKey(v)
	return _u
}

// SetNillableBadgeKey sets the "badge_key" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableBadgeKey(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetBadgeKey(*v)
	}
	return _u
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdateOne) Mutation() *BadgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdateOne) Where(ps ...predicate.Badge) *BadgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeUpdateOne) Select(field string, fields ...string) *BadgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Badge entity.
func (_u *BadgeUpdateOne) Save(ctx context.Context) (*Badge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdateOne) SaveX(ctx context.Context) *Badge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := badge.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Badge.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BadgeKey(); ok {
		if err := badge.BadgeKeyValidator(v); err != nil {
			return &ValidationError{Name: "badge_key", err: fmt.Errorf(`ent: validator failed for field "Badge.badge_key": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeUpdateOne) sqlSave(ctx context.Context) (_node *Badge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Badge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badge.FieldID)
		for _, f := range fields {
			if !badge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badge.FieldID {
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
		_spec.SetField(badge.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BadgeKey(); ok {
		_spec.SetField(badge.FieldBadgeKey, field.TypeString, value)
	}
	_node = &Badge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
