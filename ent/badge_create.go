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
	"github.com/abhisek/cogniz/ent/badge"
)

// BadgeCreate is the builder for creating a Badge entity.
type BadgeCreate struct {
	config
	mutation *BadgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *BadgeCreate) SetLearnerID(v string) *BadgeCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetBadgeKey sets the "badge_key" field.
func (_c *BadgeCreate) SetBadgeKey(v string) *BadgeCreate {
	_c.mutation.SetBadgeKey(v)
	return _c
}

// SetEarnedAt sets the "earned_at" field.
func (_c *BadgeCreate) SetEarnedAt(v time.Time) *BadgeCreate {
	_c.mutation.SetEarnedAt(v)
	return _c
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableEarnedAt(v *time.Time) *BadgeCreate {
	if v != nil {
		_c.SetEarnedAt(*v)
	}
	return _c
}

// Mutation returns the BadgeMutation object of the builder.
func (_c *BadgeCreate) Mutation() *BadgeMutation {
	return _c.mutation
}

// Save creates the Badge in the database.
func (_c *BadgeCreate) Save(ctx context.Context) (*Badge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BadgeCreate) SaveX(ctx context.Context) *Badge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BadgeCreate) defaults() {
	if _, ok := _c.mutation.EarnedAt(); !ok {
		v := badge.DefaultEarnedAt()
		_c.mutation.SetEarnedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BadgeCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Badge.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := badge.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Badge.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BadgeKey(); !ok {
		return &ValidationError{Name: "badge_key", err: errors.New(`ent: missing required field "Badge.badge_key"`)}
	}
	if v, ok := _c.mutation.BadgeKey(); ok {
		if err := badge.BadgeKeyValidator(v); err != nil {
			return &ValidationError{Name: "badge_key", err: fmt.Errorf(`ent: validator failed for field "Badge.badge_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EarnedAt(); !ok {
		return &ValidationError{Name: "earned_at", err: errors.New(`ent: missing required field "Badge.earned_at"`)}
	}
	return nil
}

func (_c *BadgeCreate) sqlSave(ctx context.Context) (*Badge, error) {
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

func (_c *BadgeCreate) createSpec() (*Badge, *sqlgraph.CreateSpec) {
	var (
		_node = &Badge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(badge.Table, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(badge.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.BadgeKey(); ok {
		_spec.SetField(badge.FieldBadgeKey, field.TypeString, value)
		_node.BadgeKey = value
	}
	if value, ok := _c.mutation.EarnedAt(); ok {
		_spec.SetField(badge.FieldEarnedAt, field.TypeTime, value)
		_node.EarnedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Badge.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *BadgeCreate) OnConflict(opts ...sql.ConflictOption) *BadgeUpsertOne {
	_c.conflict = opts
	return &BadgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BadgeCreate) OnConflictColumns(columns ...string) *BadgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BadgeUpsertOne{
		create: _c,
	}
}

type (
	// BadgeUpsertOne is the builder for "upsert"-ing
	//  one Badge node.
	BadgeUpsertOne struct {
		create *BadgeCreate
	}

	// BadgeUpsert is the "OnConflict" setter.
	BadgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *BadgeUpsert) SetLearnerID(v string) *BadgeUpsert {
	u.Set(badge.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateLearnerID() *BadgeUpsert {
	u.SetExcluded(badge.FieldLearnerID)
	return u
}

// SetBadgeKey sets the "badge_key" field.
func (u *BadgeUpsert) SetBadgeKey(v string) *BadgeUpsert {
	u.Set(badge.FieldBadgeKey, v)
	return u
}

// UpdateBadgeKey sets the "badge_key" field to the value that was provided on create.
func (u *BadgeUpsert) UpdateBadgeKey() *BadgeUpsert {
	u.SetExcluded(badge.FieldBadgeKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BadgeUpsertOne) UpdateNewValues() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.EarnedAt(); exists {
			s.SetIgnore(badge.FieldEarnedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BadgeUpsertOne) Ignore() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeUpsertOne) DoNothing() *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeCreate.OnConflict
// documentation for more info.
func (u *BadgeUpsertOne) Update(set func(*BadgeUpsert)) *BadgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *BadgeUpsertOne) SetLearnerID(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateLearnerID() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateLearnerID()
	})
}

// SetBadgeKey sets the "badge_key" field.
func (u *BadgeUpsertOne) SetBadgeKey(v string) *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.SetBadgeKey(v)
	})
}

// UpdateBadgeKey sets the "badge_key" field to the value that was provided on create.
func (u *BadgeUpsertOne) UpdateBadgeKey() *BadgeUpsertOne {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateBadgeKey()
	})
}

// Exec executes the query.
func (u *BadgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BadgeUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BadgeUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BadgeCreateBulk is the builder for creating many Badge entities in bulk.
type BadgeCreateBulk struct {
	config
	err      error
	builders []*BadgeCreate
	conflict []sql.ConflictOption
}

// Save creates the Badge entities in the database.
func (_c *BadgeCreateBulk) Save(ctx context.Context) ([]*Badge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Badge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeMutation)
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
func (_c *BadgeCreateBulk) SaveX(ctx context.Context) []*Badge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Badge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *BadgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *BadgeUpsertBulk {
	_c.conflict = opts
	return &BadgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BadgeCreateBulk) OnConflictColumns(columns ...string) *BadgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BadgeUpsertBulk{
		create: _c,
	}
}

// BadgeUpsertBulk is the builder for "upsert"-ing
// a bulk of Badge nodes.
type BadgeUpsertBulk struct {
	create *BadgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BadgeUpsertBulk) UpdateNewValues() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.EarnedAt(); exists {
				s.SetIgnore(badge.FieldEarnedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Badge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BadgeUpsertBulk) Ignore() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeUpsertBulk) DoNothing() *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeCreateBulk.OnConflict
// documentation for more info.
func (u *BadgeUpsertBulk) Update(set func(*BadgeUpsert)) *BadgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *BadgeUpsertBulk) SetLearnerID(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateLearnerID() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateLearnerID()
	})
}

// SetBadgeKey sets the "badge_key" field.
func (u *BadgeUpsertBulk) SetBadgeKey(v string) *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.SetBadgeKey(v)
	})
}

// UpdateBadgeKey sets the "badge_key" field to the value that was provided on create.
func (u *BadgeUpsertBulk) UpdateBadgeKey() *BadgeUpsertBulk {
	return u.Update(func(s *BadgeUpsert) {
		s.UpdateBadgeKey()
	})
}

// Exec executes the query.
func (u *BadgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BadgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
