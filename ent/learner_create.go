// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniz/ent/learner"
)

// LearnerCreate is the builder for creating a Learner entity.
type LearnerCreate struct {
	config
	mutation *LearnerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *LearnerCreate) SetName(v string) *LearnerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAgeBand sets the "age_band" field.
func (_c *LearnerCreate) SetAgeBand(v string) *LearnerCreate {
	_c.mutation.SetAgeBand(v)
	return _c
}

// SetNillableAgeBand sets the "age_band" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableAgeBand(v *string) *LearnerCreate {
	if v != nil {
		_c.SetAgeBand(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerCreate) SetCreatedAt(v time.Time) *LearnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableCreatedAt(v *time.Time) *LearnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearnerCreate) SetID(v string) *LearnerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearnerMutation object of the builder.
func (_c *LearnerCreate) Mutation() *LearnerMutation {
	return _c.mutation
}

// Save creates the Learner in the database.
func (_c *LearnerCreate) Save(ctx context.Context) (*Learner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerCreate) SaveX(ctx context.Context) *Learner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerCreate) defaults() {
	if _, ok := _c.mutation.AgeBand(); !ok {
		v := learner.DefaultAgeBand
		_c.mutation.SetAgeBand(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Learner.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := learner.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Learner.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgeBand(); !ok {
		return &ValidationError{Name: "age_band", err: errors.New(`ent: missing required field "Learner.age_band"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Learner.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := learner.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Learner.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LearnerCreate) sqlSave(ctx context.Context) (*Learner, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Learner.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnerCreate) createSpec() (*Learner, *sqlgraph.CreateSpec) {
	var (
		_node = &Learner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learner.Table, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AgeBand(); ok {
		_spec.SetField(learner.FieldAgeBand, field.TypeString, value)
		_node.AgeBand = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Learner.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnerUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnerCreate) OnConflict(opts ...sql.ConflictOption) *LearnerUpsertOne {
	_c.conflict = opts
	return &LearnerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Learner.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnerCreate) OnConflictColumns(columns ...string) *LearnerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnerUpsertOne{
		create: _c,
	}
}

type (
	// LearnerUpsertOne is the builder for "upsert"-ing
	//  one Learner node.
	LearnerUpsertOne struct {
		create *LearnerCreate
	}

	// LearnerUpsert is the "OnConflict" setter.
	LearnerUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *LearnerUpsert) SetName(v string) *LearnerUpsert {
	u.Set(learner.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LearnerUpsert) UpdateName() *LearnerUpsert {
	u.SetExcluded(learner.FieldName)
	return u
}

// SetAgeBand sets the "age_band" field.
func (u *LearnerUpsert) SetAgeBand(v string) *LearnerUpsert {
	u.Set(learner.FieldAgeBand, v)
	return u
}

// UpdateAgeBand sets the "age_band" field to the value that was provided on create.
func (u *LearnerUpsert) UpdateAgeBand() *LearnerUpsert {
	u.SetExcluded(learner.FieldAgeBand)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Learner.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(learner.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LearnerUpsertOne) UpdateNewValues() *LearnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(learner.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(learner.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Learner.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LearnerUpsertOne) Ignore() *LearnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnerUpsertOne) DoNothing() *LearnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnerCreate.OnConflict
// documentation for more info.
func (u *LearnerUpsertOne) Update(set func(*LearnerUpsert)) *LearnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnerUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *LearnerUpsertOne) SetName(v string) *LearnerUpsertOne {
	return u.Update(func(s *LearnerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LearnerUpsertOne) UpdateName() *LearnerUpsertOne {
	return u.Update(func(s *LearnerUpsert) {
		s.UpdateName()
	})
}

// SetAgeBand sets the "age_band" field.
func (u *LearnerUpsertOne) SetAgeBand(v string) *LearnerUpsertOne {
	return u.Update(func(s *LearnerUpsert) {
		s.SetAgeBand(v)
	})
}

// UpdateAgeBand sets the "age_band" field to the value that was provided on create.
func (u *LearnerUpsertOne) UpdateAgeBand() *LearnerUpsertOne {
	return u.Update(func(s *LearnerUpsert) {
		s.UpdateAgeBand()
	})
}

// Exec executes the query.
func (u *LearnerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LearnerUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LearnerUpsertOne.ID is not supported by MySQL driver. Use LearnerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LearnerUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LearnerCreateBulk is the builder for creating many Learner entities in bulk.
type LearnerCreateBulk struct {
	config
	err      error
	builders []*LearnerCreate
	conflict []sql.ConflictOption
}

// Save creates the Learner entities in the database.
func (_c *LearnerCreateBulk) Save(ctx context.Context) ([]*Learner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Learner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerMutation)
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
func (_c *LearnerCreateBulk) SaveX(ctx context.Context) []*Learner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Learner.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnerUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnerCreateBulk) OnConflict(opts ...sql.ConflictOption) *LearnerUpsertBulk {
	_c.conflict = opts
	return &LearnerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Learner.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnerCreateBulk) OnConflictColumns(columns ...string) *LearnerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnerUpsertBulk{
		create: _c,
	}
}

// LearnerUpsertBulk is the builder for "upsert"-ing
// a bulk of Learner nodes.
type LearnerUpsertBulk struct {
	create *LearnerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Learner.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(learner.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LearnerUpsertBulk) UpdateNewValues() *LearnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(learner.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(learner.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Learner.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LearnerUpsertBulk) Ignore() *LearnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnerUpsertBulk) DoNothing() *LearnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnerCreateBulk.OnConflict
// documentation for more info.
func (u *LearnerUpsertBulk) Update(set func(*LearnerUpsert)) *LearnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnerUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *LearnerUpsertBulk) SetName(v string) *LearnerUpsertBulk {
	return u.Update(func(s *LearnerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LearnerUpsertBulk) UpdateName() *LearnerUpsertBulk {
	return u.Update(func(s *LearnerUpsert) {
		s.UpdateName()
	})
}

// SetAgeBand sets the "age_band" field.
func (u *LearnerUpsertBulk) SetAgeBand(v string) *LearnerUpsertBulk {
	return u.Update(func(s *LearnerUpsert) {
		s.SetAgeBand(v)
	})
}

// UpdateAgeBand sets the "age_band" field to the value that was provided on create.
func (u *LearnerUpsertBulk) UpdateAgeBand() *LearnerUpsertBulk {
	return u.Update(func(s *LearnerUpsert) {
		s.UpdateAgeBand()
	})
}

// Exec executes the query.
func (u *LearnerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LearnerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
