// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/louannemur/fleetd/ent/predicate"
	"github.com/louannemur/fleetd/ent/verificationresult"
)

// VerificationResultUpdate is the builder for updating VerificationResult entities.
type VerificationResultUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationResultMutation
}

// Where appends a list predicates to the VerificationResultUpdate builder.
func (_u *VerificationResultUpdate) Where(ps ...predicate.VerificationResult) *VerificationResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the VerificationResultMutation object of the builder.
func (_u *VerificationResultUpdate) Mutation() *VerificationResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VerificationResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(verificationresult.Table, verificationresult.Columns, sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SemanticScoreCleared() {
		_spec.ClearField(verificationresult.FieldSemanticScore, field.TypeFloat64)
	}
	if _u.mutation.SemanticExplanationCleared() {
		_spec.ClearField(verificationresult.FieldSemanticExplanation, field.TypeString)
	}
	if _u.mutation.FailuresCleared() {
		_spec.ClearField(verificationresult.FieldFailures, field.TypeJSON)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(verificationresult.FieldRecommendations, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationResultUpdateOne is the builder for updating a single VerificationResult entity.
type VerificationResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationResultMutation
}

// Mutation returns the VerificationResultMutation object of the builder.
func (_u *VerificationResultUpdateOne) Mutation() *VerificationResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerificationResultUpdate builder.
func (_u *VerificationResultUpdateOne) Where(ps ...predicate.VerificationResult) *VerificationResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationResultUpdateOne) Select(field string, fields ...string) *VerificationResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationResult entity.
func (_u *VerificationResultUpdateOne) Save(ctx context.Context) (*VerificationResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationResultUpdateOne) SaveX(ctx context.Context) *VerificationResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VerificationResultUpdateOne) sqlSave(ctx context.Context) (_node *VerificationResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(verificationresult.Table, verificationresult.Columns, sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationresult.FieldID)
		for _, f := range fields {
			if !verificationresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationresult.FieldID {
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
	if _u.mutation.SemanticScoreCleared() {
		_spec.ClearField(verificationresult.FieldSemanticScore, field.TypeFloat64)
	}
	if _u.mutation.SemanticExplanationCleared() {
		_spec.ClearField(verificationresult.FieldSemanticExplanation, field.TypeString)
	}
	if _u.mutation.FailuresCleared() {
		_spec.ClearField(verificationresult.FieldFailures, field.TypeJSON)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(verificationresult.FieldRecommendations, field.TypeJSON)
	}
	_node = &VerificationResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
