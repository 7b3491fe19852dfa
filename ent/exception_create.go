// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/louannemur/fleetd/ent/exception"
)

// ExceptionCreate is the builder for creating a Exception entity.
type ExceptionCreate struct {
	config
	mutation *ExceptionMutation
	hooks    []Hook
}

// SetType sets the "type" field.
func (_c *ExceptionCreate) SetType(v exception.Type) *ExceptionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ExceptionCreate) SetSeverity(v exception.Severity) *ExceptionCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExceptionCreate) SetStatus(v exception.Status) *ExceptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableStatus(v *exception.Status) *ExceptionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ExceptionCreate) SetTitle(v string) *ExceptionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExceptionCreate) SetDescription(v string) *ExceptionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableDescription(v *string) *ExceptionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSuggestedAction sets the "suggested_action" field.
func (_c *ExceptionCreate) SetSuggestedAction(v string) *ExceptionCreate {
	_c.mutation.SetSuggestedAction(v)
	return _c
}

// SetNillableSuggestedAction sets the "suggested_action" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableSuggestedAction(v *string) *ExceptionCreate {
	if v != nil {
		_c.SetSuggestedAction(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ExceptionCreate) SetAgentID(v string) *ExceptionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableAgentID(v *string) *ExceptionCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ExceptionCreate) SetTaskID(v string) *ExceptionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableTaskID(v *string) *ExceptionCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_c *ExceptionCreate) SetResolutionNotes(v string) *ExceptionCreate {
	_c.mutation.SetResolutionNotes(v)
	return _c
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableResolutionNotes(v *string) *ExceptionCreate {
	if v != nil {
		_c.SetResolutionNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExceptionCreate) SetCreatedAt(v time.Time) *ExceptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableCreatedAt(v *time.Time) *ExceptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExceptionCreate) SetUpdatedAt(v time.Time) *ExceptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableUpdatedAt(v *time.Time) *ExceptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ExceptionCreate) SetResolvedAt(v time.Time) *ExceptionCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ExceptionCreate) SetNillableResolvedAt(v *time.Time) *ExceptionCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExceptionCreate) SetID(v string) *ExceptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExceptionMutation object of the builder.
func (_c *ExceptionCreate) Mutation() *ExceptionMutation {
	return _c.mutation
}

// Save creates the Exception in the database.
func (_c *ExceptionCreate) Save(ctx context.Context) (*Exception, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExceptionCreate) SaveX(ctx context.Context) *Exception {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExceptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExceptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExceptionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := exception.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exception.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := exception.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExceptionCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Exception.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := exception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Exception.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Exception.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := exception.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Exception.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Exception.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := exception.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Exception.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Exception.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Exception.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Exception.updated_at"`)}
	}
	return nil
}

func (_c *ExceptionCreate) sqlSave(ctx context.Context) (*Exception, error) {
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
			return nil, fmt.Errorf("unexpected Exception.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExceptionCreate) createSpec() (*Exception, *sqlgraph.CreateSpec) {
	var (
		_node = &Exception{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exception.Table, sqlgraph.NewFieldSpec(exception.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(exception.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(exception.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(exception.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(exception.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(exception.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SuggestedAction(); ok {
		_spec.SetField(exception.FieldSuggestedAction, field.TypeString, value)
		_node.SuggestedAction = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(exception.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(exception.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.ResolutionNotes(); ok {
		_spec.SetField(exception.FieldResolutionNotes, field.TypeString, value)
		_node.ResolutionNotes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exception.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(exception.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(exception.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// ExceptionCreateBulk is the builder for creating many Exception entities in bulk.
type ExceptionCreateBulk struct {
	config
	err      error
	builders []*ExceptionCreate
}

// Save creates the Exception entities in the database.
func (_c *ExceptionCreateBulk) Save(ctx context.Context) ([]*Exception, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exception, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExceptionMutation)
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
func (_c *ExceptionCreateBulk) SaveX(ctx context.Context) []*Exception {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExceptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExceptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
