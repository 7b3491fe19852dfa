// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/agentlog"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/filelock"
	"github.com/louannemur/fleetd/ent/runnersession"
	"github.com/louannemur/fleetd/ent/schema"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/ent/verificationresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescTotalTokensUsed is the schema descriptor for total_tokens_used field.
	agentDescTotalTokensUsed := agentFields[7].Descriptor()
	// agent.DefaultTotalTokensUsed holds the default value on creation for the total_tokens_used field.
	agent.DefaultTotalTokensUsed = agentDescTotalTokensUsed.Default.(int)
	// agentDescTasksCompleted is the schema descriptor for tasks_completed field.
	agentDescTasksCompleted := agentFields[8].Descriptor()
	// agent.DefaultTasksCompleted holds the default value on creation for the tasks_completed field.
	agent.DefaultTasksCompleted = agentDescTasksCompleted.Default.(int)
	// agentDescTasksFailed is the schema descriptor for tasks_failed field.
	agentDescTasksFailed := agentFields[9].Descriptor()
	// agent.DefaultTasksFailed holds the default value on creation for the tasks_failed field.
	agent.DefaultTasksFailed = agentDescTasksFailed.Default.(int)
	// agentDescStartedAt is the schema descriptor for started_at field.
	agentDescStartedAt := agentFields[10].Descriptor()
	// agent.DefaultStartedAt holds the default value on creation for the started_at field.
	agent.DefaultStartedAt = agentDescStartedAt.Default.(func() time.Time)
	agentlogFields := schema.AgentLog{}.Fields()
	_ = agentlogFields
	// agentlogDescCreatedAt is the schema descriptor for created_at field.
	agentlogDescCreatedAt := agentlogFields[6].Descriptor()
	// agentlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentlog.DefaultCreatedAt = agentlogDescCreatedAt.Default.(func() time.Time)
	exceptionFields := schema.Exception{}.Fields()
	_ = exceptionFields
	// exceptionDescCreatedAt is the schema descriptor for created_at field.
	exceptionDescCreatedAt := exceptionFields[10].Descriptor()
	// exception.DefaultCreatedAt holds the default value on creation for the created_at field.
	exception.DefaultCreatedAt = exceptionDescCreatedAt.Default.(func() time.Time)
	// exceptionDescUpdatedAt is the schema descriptor for updated_at field.
	exceptionDescUpdatedAt := exceptionFields[11].Descriptor()
	// exception.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	exception.DefaultUpdatedAt = exceptionDescUpdatedAt.Default.(func() time.Time)
	// exception.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	exception.UpdateDefaultUpdatedAt = exceptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	filelockFields := schema.FileLock{}.Fields()
	_ = filelockFields
	// filelockDescAcquiredAt is the schema descriptor for acquired_at field.
	filelockDescAcquiredAt := filelockFields[4].Descriptor()
	// filelock.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	filelock.DefaultAcquiredAt = filelockDescAcquiredAt.Default.(func() time.Time)
	runnersessionFields := schema.RunnerSession{}.Fields()
	_ = runnersessionFields
	// runnersessionDescIsActive is the schema descriptor for is_active field.
	runnersessionDescIsActive := runnersessionFields[4].Descriptor()
	// runnersession.DefaultIsActive holds the default value on creation for the is_active field.
	runnersession.DefaultIsActive = runnersessionDescIsActive.Default.(bool)
	// runnersessionDescCreatedAt is the schema descriptor for created_at field.
	runnersessionDescCreatedAt := runnersessionFields[5].Descriptor()
	// runnersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	runnersession.DefaultCreatedAt = runnersessionDescCreatedAt.Default.(func() time.Time)
	// runnersessionDescLastSeenAt is the schema descriptor for last_seen_at field.
	runnersessionDescLastSeenAt := runnersessionFields[6].Descriptor()
	// runnersession.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	runnersession.DefaultLastSeenAt = runnersessionDescLastSeenAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[4].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// task.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	task.PriorityValidator = func() func(int) error {
		validators := taskDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescVerificationAttempts is the schema descriptor for verification_attempts field.
	taskDescVerificationAttempts := taskFields[10].Descriptor()
	// task.DefaultVerificationAttempts holds the default value on creation for the verification_attempts field.
	task.DefaultVerificationAttempts = taskDescVerificationAttempts.Default.(int)
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[11].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[12].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[13].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	verificationresultFields := schema.VerificationResult{}.Fields()
	_ = verificationresultFields
	// verificationresultDescTestsTotal is the schema descriptor for tests_total field.
	verificationresultDescTestsTotal := verificationresultFields[9].Descriptor()
	// verificationresult.DefaultTestsTotal holds the default value on creation for the tests_total field.
	verificationresult.DefaultTestsTotal = verificationresultDescTestsTotal.Default.(int)
	// verificationresultDescTestsFailed is the schema descriptor for tests_failed field.
	verificationresultDescTestsFailed := verificationresultFields[10].Descriptor()
	// verificationresult.DefaultTestsFailed holds the default value on creation for the tests_failed field.
	verificationresult.DefaultTestsFailed = verificationresultDescTestsFailed.Default.(int)
	// verificationresultDescCreatedAt is the schema descriptor for created_at field.
	verificationresultDescCreatedAt := verificationresultFields[15].Descriptor()
	// verificationresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationresult.DefaultCreatedAt = verificationresultDescCreatedAt.Default.(func() time.Time)
}
