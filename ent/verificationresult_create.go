// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/louannemur/fleetd/ent/verificationresult"
)

// VerificationResultCreate is the builder for creating a VerificationResult entity.
type VerificationResultCreate struct {
	config
	mutation *VerificationResultMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *VerificationResultCreate) SetTaskID(v string) *VerificationResultCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *VerificationResultCreate) SetAttemptNumber(v int) *VerificationResultCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *VerificationResultCreate) SetPassed(v bool) *VerificationResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *VerificationResultCreate) SetConfidenceScore(v float64) *VerificationResultCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetSyntaxPassed sets the "syntax_passed" field.
func (_c *VerificationResultCreate) SetSyntaxPassed(v bool) *VerificationResultCreate {
	_c.mutation.SetSyntaxPassed(v)
	return _c
}

// SetTypesPassed sets the "types_passed" field.
func (_c *VerificationResultCreate) SetTypesPassed(v bool) *VerificationResultCreate {
	_c.mutation.SetTypesPassed(v)
	return _c
}

// SetLintPassed sets the "lint_passed" field.
func (_c *VerificationResultCreate) SetLintPassed(v bool) *VerificationResultCreate {
	_c.mutation.SetLintPassed(v)
	return _c
}

// SetTestsPassed sets the "tests_passed" field.
func (_c *VerificationResultCreate) SetTestsPassed(v bool) *VerificationResultCreate {
	_c.mutation.SetTestsPassed(v)
	return _c
}

// SetTestsTotal sets the "tests_total" field.
func (_c *VerificationResultCreate) SetTestsTotal(v int) *VerificationResultCreate {
	_c.mutation.SetTestsTotal(v)
	return _c
}

// SetNillableTestsTotal sets the "tests_total" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableTestsTotal(v *int) *VerificationResultCreate {
	if v != nil {
		_c.SetTestsTotal(*v)
	}
	return _c
}

// SetTestsFailed sets the "tests_failed" field.
func (_c *VerificationResultCreate) SetTestsFailed(v int) *VerificationResultCreate {
	_c.mutation.SetTestsFailed(v)
	return _c
}

// SetNillableTestsFailed sets the "tests_failed" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableTestsFailed(v *int) *VerificationResultCreate {
	if v != nil {
		_c.SetTestsFailed(*v)
	}
	return _c
}

// SetSemanticScore sets the "semantic_score" field.
func (_c *VerificationResultCreate) SetSemanticScore(v float64) *VerificationResultCreate {
	_c.mutation.SetSemanticScore(v)
	return _c
}

// SetNillableSemanticScore sets the "semantic_score" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableSemanticScore(v *float64) *VerificationResultCreate {
	if v != nil {
		_c.SetSemanticScore(*v)
	}
	return _c
}

// SetSemanticExplanation sets the "semantic_explanation" field.
func (_c *VerificationResultCreate) SetSemanticExplanation(v string) *VerificationResultCreate {
	_c.mutation.SetSemanticExplanation(v)
	return _c
}

// SetNillableSemanticExplanation sets the "semantic_explanation" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableSemanticExplanation(v *string) *VerificationResultCreate {
	if v != nil {
		_c.SetSemanticExplanation(*v)
	}
	return _c
}

// SetFailures sets the "failures" field.
func (_c *VerificationResultCreate) SetFailures(v []map[string]interface{}) *VerificationResultCreate {
	_c.mutation.SetFailures(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *VerificationResultCreate) SetRecommendations(v []string) *VerificationResultCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationResultCreate) SetCreatedAt(v time.Time) *VerificationResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableCreatedAt(v *time.Time) *VerificationResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationResultCreate) SetID(v string) *VerificationResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VerificationResultMutation object of the builder.
func (_c *VerificationResultCreate) Mutation() *VerificationResultMutation {
	return _c.mutation
}

// Save creates the VerificationResult in the database.
func (_c *VerificationResultCreate) Save(ctx context.Context) (*VerificationResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationResultCreate) SaveX(ctx context.Context) *VerificationResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationResultCreate) defaults() {
	if _, ok := _c.mutation.TestsTotal(); !ok {
		v := verificationresult.DefaultTestsTotal
		_c.mutation.SetTestsTotal(v)
	}
	if _, ok := _c.mutation.TestsFailed(); !ok {
		v := verificationresult.DefaultTestsFailed
		_c.mutation.SetTestsFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationResultCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "VerificationResult.task_id"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "VerificationResult.attempt_number"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "VerificationResult.passed"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "VerificationResult.confidence_score"`)}
	}
	if _, ok := _c.mutation.SyntaxPassed(); !ok {
		return &ValidationError{Name: "syntax_passed", err: errors.New(`ent: missing required field "VerificationResult.syntax_passed"`)}
	}
	if _, ok := _c.mutation.TypesPassed(); !ok {
		return &ValidationError{Name: "types_passed", err: errors.New(`ent: missing required field "VerificationResult.types_passed"`)}
	}
	if _, ok := _c.mutation.LintPassed(); !ok {
		return &ValidationError{Name: "lint_passed", err: errors.New(`ent: missing required field "VerificationResult.lint_passed"`)}
	}
	if _, ok := _c.mutation.TestsPassed(); !ok {
		return &ValidationError{Name: "tests_passed", err: errors.New(`ent: missing required field "VerificationResult.tests_passed"`)}
	}
	if _, ok := _c.mutation.TestsTotal(); !ok {
		return &ValidationError{Name: "tests_total", err: errors.New(`ent: missing required field "VerificationResult.tests_total"`)}
	}
	if _, ok := _c.mutation.TestsFailed(); !ok {
		return &ValidationError{Name: "tests_failed", err: errors.New(`ent: missing required field "VerificationResult.tests_failed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationResult.created_at"`)}
	}
	return nil
}

func (_c *VerificationResultCreate) sqlSave(ctx context.Context) (*VerificationResult, error) {
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
			return nil, fmt.Errorf("unexpected VerificationResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationResultCreate) createSpec() (*VerificationResult, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationresult.Table, sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(verificationresult.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(verificationresult.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(verificationresult.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(verificationresult.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.SyntaxPassed(); ok {
		_spec.SetField(verificationresult.FieldSyntaxPassed, field.TypeBool, value)
		_node.SyntaxPassed = value
	}
	if value, ok := _c.mutation.TypesPassed(); ok {
		_spec.SetField(verificationresult.FieldTypesPassed, field.TypeBool, value)
		_node.TypesPassed = value
	}
	if value, ok := _c.mutation.LintPassed(); ok {
		_spec.SetField(verificationresult.FieldLintPassed, field.TypeBool, value)
		_node.LintPassed = value
	}
	if value, ok := _c.mutation.TestsPassed(); ok {
		_spec.SetField(verificationresult.FieldTestsPassed, field.TypeBool, value)
		_node.TestsPassed = value
	}
	if value, ok := _c.mutation.TestsTotal(); ok {
		_spec.SetField(verificationresult.FieldTestsTotal, field.TypeInt, value)
		_node.TestsTotal = value
	}
	if value, ok := _c.mutation.TestsFailed(); ok {
		_spec.SetField(verificationresult.FieldTestsFailed, field.TypeInt, value)
		_node.TestsFailed = value
	}
	if value, ok := _c.mutation.SemanticScore(); ok {
		_spec.SetField(verificationresult.FieldSemanticScore, field.TypeFloat64, value)
		_node.SemanticScore = &value
	}
	if value, ok := _c.mutation.SemanticExplanation(); ok {
		_spec.SetField(verificationresult.FieldSemanticExplanation, field.TypeString, value)
		_node.SemanticExplanation = value
	}
	if value, ok := _c.mutation.Failures(); ok {
		_spec.SetField(verificationresult.FieldFailures, field.TypeJSON, value)
		_node.Failures = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(verificationresult.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VerificationResultCreateBulk is the builder for creating many VerificationResult entities in bulk.
type VerificationResultCreateBulk struct {
	config
	err      error
	builders []*VerificationResultCreate
}

// Save creates the VerificationResult entities in the database.
func (_c *VerificationResultCreateBulk) Save(ctx context.Context) ([]*VerificationResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationResultMutation)
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
func (_c *VerificationResultCreateBulk) SaveX(ctx context.Context) []*VerificationResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
