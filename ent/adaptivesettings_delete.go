// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/adaptivesettings"
	"github.com/abhisek/cogniz/ent/predicate"
)

// AdaptiveSettingsDelete is the builder for deleting a AdaptiveSettings entity.
type AdaptiveSettingsDelete struct {
	config
	hooks    []Hook
	mutation *AdaptiveSettingsMutation
}

// Where appends a list predicates to the AdaptiveSettingsDelete builder.
func (_d *AdaptiveSettingsDelete) Where(ps ...predicate.AdaptiveSettings) *AdaptiveSettingsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdaptiveSettingsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdaptiveSettingsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdaptiveSettingsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(adaptivesettings.Table, sqlgraph.NewFieldSpec(adaptivesettings.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdaptiveSettingsDeleteOne is the builder for deleting a single AdaptiveSettings entity.
type AdaptiveSettingsDeleteOne struct {
	_d *AdaptiveSettingsDelete
}

// Where appends a list predicates to the AdaptiveSettingsDelete builder.
func (_d *AdaptiveSettingsDeleteOne) Where(ps ...predicate.AdaptiveSettings) *AdaptiveSettingsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdaptiveSettingsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{adaptivesettings.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdaptiveSettingsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
