// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/louannemur/fleetd/ent/runnersession"
)

// RunnerSessionCreate is the builder for creating a RunnerSession entity.
type RunnerSessionCreate struct {
	config
	mutation *RunnerSessionMutation
	hooks    []Hook
}

// SetToken sets the "token" field.
func (_c *RunnerSessionCreate) SetToken(v string) *RunnerSessionCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RunnerSessionCreate) SetName(v string) *RunnerSessionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWorkingDir sets the "working_dir" field.
func (_c *RunnerSessionCreate) SetWorkingDir(v string) *RunnerSessionCreate {
	_c.mutation.SetWorkingDir(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *RunnerSessionCreate) SetIsActive(v bool) *RunnerSessionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *RunnerSessionCreate) SetNillableIsActive(v *bool) *RunnerSessionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunnerSessionCreate) SetCreatedAt(v time.Time) *RunnerSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunnerSessionCreate) SetNillableCreatedAt(v *time.Time) *RunnerSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *RunnerSessionCreate) SetLastSeenAt(v time.Time) *RunnerSessionCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *RunnerSessionCreate) SetNillableLastSeenAt(v *time.Time) *RunnerSessionCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunnerSessionCreate) SetID(v string) *RunnerSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RunnerSessionMutation object of the builder.
func (_c *RunnerSessionCreate) Mutation() *RunnerSessionMutation {
	return _c.mutation
}

// Save creates the RunnerSession in the database.
func (_c *RunnerSessionCreate) Save(ctx context.Context) (*RunnerSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunnerSessionCreate) SaveX(ctx context.Context) *RunnerSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunnerSessionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := runnersession.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runnersession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := runnersession.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunnerSessionCreate) check() error {
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "RunnerSession.token"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RunnerSession.name"`)}
	}
	if _, ok := _c.mutation.WorkingDir(); !ok {
		return &ValidationError{Name: "working_dir", err: errors.New(`ent: missing required field "RunnerSession.working_dir"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "RunnerSession.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunnerSession.created_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "RunnerSession.last_seen_at"`)}
	}
	return nil
}

func (_c *RunnerSessionCreate) sqlSave(ctx context.Context) (*RunnerSession, error) {
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
			return nil, fmt.Errorf("unexpected RunnerSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunnerSessionCreate) createSpec() (*RunnerSession, *sqlgraph.CreateSpec) {
	var (
		_node = &RunnerSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runnersession.Table, sqlgraph.NewFieldSpec(runnersession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(runnersession.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(runnersession.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.WorkingDir(); ok {
		_spec.SetField(runnersession.FieldWorkingDir, field.TypeString, value)
		_node.WorkingDir = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(runnersession.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runnersession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(runnersession.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	return _node, _spec
}

// RunnerSessionCreateBulk is the builder for creating many RunnerSession entities in bulk.
type RunnerSessionCreateBulk struct {
	config
	err      error
	builders []*RunnerSessionCreate
}

// Save creates the RunnerSession entities in the database.
func (_c *RunnerSessionCreateBulk) Save(ctx context.Context) ([]*RunnerSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunnerSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunnerSessionMutation)
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
func (_c *RunnerSessionCreateBulk) SaveX(ctx context.Context) []*RunnerSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
