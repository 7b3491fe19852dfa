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
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/predicate"
)

// ExceptionUpdate is the builder for updating Exception entities.
type ExceptionUpdate struct {
	config
	hooks    []Hook
	mutation *ExceptionMutation
}

// Where appends a list predicates to the ExceptionUpdate builder.
func (_u *ExceptionUpdate) Where(ps ...predicate.Exception) *ExceptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *ExceptionUpdate) SetType(v exception.Type) *ExceptionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableType(v *exception.Type) *ExceptionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ExceptionUpdate) SetSeverity(v exception.Severity) *ExceptionUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableSeverity(v *exception.Severity) *ExceptionUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExceptionUpdate) SetStatus(v exception.Status) *ExceptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableStatus(v *exception.Status) *ExceptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExceptionUpdate) SetTitle(v string) *ExceptionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableTitle(v *string) *ExceptionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExceptionUpdate) SetDescription(v string) *ExceptionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableDescription(v *string) *ExceptionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExceptionUpdate) ClearDescription() *ExceptionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSuggestedAction sets the "suggested_action" field.
func (_u *ExceptionUpdate) SetSuggestedAction(v string) *ExceptionUpdate {
	_u.mutation.SetSuggestedAction(v)
	return _u
}

// SetNillableSuggestedAction sets the "suggested_action" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableSuggestedAction(v *string) *ExceptionUpdate {
	if v != nil {
		_u.SetSuggestedAction(*v)
	}
	return _u
}

// ClearSuggestedAction clears the value of the "suggested_action" field.
func (_u *ExceptionUpdate) ClearSuggestedAction() *ExceptionUpdate {
	_u.mutation.ClearSuggestedAction()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ExceptionUpdate) SetAgentID(v string) *ExceptionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableAgentID(v *string) *ExceptionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ExceptionUpdate) ClearAgentID() *ExceptionUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ExceptionUpdate) SetTaskID(v string) *ExceptionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableTaskID(v *string) *ExceptionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ExceptionUpdate) ClearTaskID() *ExceptionUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *ExceptionUpdate) SetResolutionNotes(v string) *ExceptionUpdate {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableResolutionNotes(v *string) *ExceptionUpdate {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *ExceptionUpdate) ClearResolutionNotes() *ExceptionUpdate {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExceptionUpdate) SetUpdatedAt(v time.Time) *ExceptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ExceptionUpdate) SetResolvedAt(v time.Time) *ExceptionUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ExceptionUpdate) SetNillableResolvedAt(v *time.Time) *ExceptionUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ExceptionUpdate) ClearResolvedAt() *ExceptionUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ExceptionMutation object of the builder.
func (_u *ExceptionUpdate) Mutation() *ExceptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExceptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExceptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExceptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExceptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExceptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exception.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExceptionUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := exception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Exception.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := exception.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Exception.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := exception.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Exception.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExceptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exception.Table, exception.Columns, sqlgraph.NewFieldSpec(exception.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(exception.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(exception.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exception.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(exception.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(exception.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(exception.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedAction(); ok {
		_spec.SetField(exception.FieldSuggestedAction, field.TypeString, value)
	}
	if _u.mutation.SuggestedActionCleared() {
		_spec.ClearField(exception.FieldSuggestedAction, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(exception.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(exception.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(exception.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(exception.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(exception.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(exception.FieldResolutionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exception.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(exception.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(exception.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExceptionUpdateOne is the builder for updating a single Exception entity.
type ExceptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExceptionMutation
}

// SetType sets the "type" field.
func (_u *ExceptionUpdateOne) SetType(v exception.Type) *ExceptionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableType(v *exception.Type) *ExceptionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ExceptionUpdateOne) SetSeverity(v exception.Severity) *ExceptionUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableSeverity(v *exception.Severity) *ExceptionUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExceptionUpdateOne) SetStatus(v exception.Status) *ExceptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableStatus(v *exception.Status) *ExceptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExceptionUpdateOne) SetTitle(v string) *ExceptionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableTitle(v *string) *ExceptionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExceptionUpdateOne) SetDescription(v string) *ExceptionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableDescription(v *string) *ExceptionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExceptionUpdateOne) ClearDescription() *ExceptionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSuggestedAction sets the "suggested_action" field.
func (_u *ExceptionUpdateOne) SetSuggestedAction(v string) *ExceptionUpdateOne {
	_u.mutation.SetSuggestedAction(v)
	return _u
}

// SetNillableSuggestedAction sets the "suggested_action" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableSuggestedAction(v *string) *ExceptionUpdateOne {
	if v != nil {
		_u.SetSuggestedAction(*v)
	}
	return _u
}

// ClearSuggestedAction clears the value of the "suggested_action" field.
func (_u *ExceptionUpdateOne) ClearSuggestedAction() *ExceptionUpdateOne {
	_u.mutation.ClearSuggestedAction()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ExceptionUpdateOne) SetAgentID(v string) *ExceptionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableAgentID(v *string) *ExceptionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ExceptionUpdateOne) ClearAgentID() *ExceptionUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ExceptionUpdateOne) SetTaskID(v string) *ExceptionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableTaskID(v *string) *ExceptionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ExceptionUpdateOne) ClearTaskID() *ExceptionUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *ExceptionUpdateOne) SetResolutionNotes(v string) *ExceptionUpdateOne {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableResolutionNotes(v *string) *ExceptionUpdateOne {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *ExceptionUpdateOne) ClearResolutionNotes() *ExceptionUpdateOne {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExceptionUpdateOne) SetUpdatedAt(v time.Time) *ExceptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ExceptionUpdateOne) SetResolvedAt(v time.Time) *ExceptionUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ExceptionUpdateOne) SetNillableResolvedAt(v *time.Time) *ExceptionUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ExceptionUpdateOne) ClearResolvedAt() *ExceptionUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ExceptionMutation object of the builder.
func (_u *ExceptionUpdateOne) Mutation() *ExceptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExceptionUpdate builder.
func (_u *ExceptionUpdateOne) Where(ps ...predicate.Exception) *ExceptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExceptionUpdateOne) Select(field string, fields ...string) *ExceptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Exception entity.
func (_u *ExceptionUpdateOne) Save(ctx context.Context) (*Exception, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExceptionUpdateOne) SaveX(ctx context.Context) *Exception {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExceptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExceptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExceptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exception.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExceptionUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := exception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Exception.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := exception.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Exception.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := exception.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Exception.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExceptionUpdateOne) sqlSave(ctx context.Context) (_node *Exception, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exception.Table, exception.Columns, sqlgraph.NewFieldSpec(exception.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Exception.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exception.FieldID)
		for _, f := range fields {
			if !exception.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exception.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(exception.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(exception.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exception.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(exception.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(exception.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(exception.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedAction(); ok {
		_spec.SetField(exception.FieldSuggestedAction, field.TypeString, value)
	}
	if _u.mutation.SuggestedActionCleared() {
		_spec.ClearField(exception.FieldSuggestedAction, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(exception.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(exception.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(exception.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(exception.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(exception.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(exception.FieldResolutionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exception.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(exception.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(exception.FieldResolvedAt, field.TypeTime)
	}
	_node = &Exception{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
