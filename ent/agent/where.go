// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/louannemur/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// CurrentTaskID applies equality check predicate on the "current_task_id" field. It's identical to CurrentTaskIDEQ.
func CurrentTaskID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCurrentTaskID, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldBranchName, v))
}

// RunnerSessionID applies equality check predicate on the "runner_session_id" field. It's identical to RunnerSessionIDEQ.
func RunnerSessionID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRunnerSessionID, v))
}

// WorkingDir applies equality check predicate on the "working_dir" field. It's identical to WorkingDirEQ.
func WorkingDir(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWorkingDir, v))
}

// TotalTokensUsed applies equality check predicate on the "total_tokens_used" field. It's identical to TotalTokensUsedEQ.
func TotalTokensUsed(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTotalTokensUsed, v))
}

// TasksCompleted applies equality check predicate on the "tasks_completed" field. It's identical to TasksCompletedEQ.
func TasksCompleted(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksFailed applies equality check predicate on the "tasks_failed" field. It's identical to TasksFailedEQ.
func TasksFailed(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTasksFailed, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCompletedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastActivityAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentTaskIDEQ applies the EQ predicate on the "current_task_id" field.
func CurrentTaskIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCurrentTaskID, v))
}

// CurrentTaskIDNEQ applies the NEQ predicate on the "current_task_id" field.
func CurrentTaskIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCurrentTaskID, v))
}

// CurrentTaskIDIn applies the In predicate on the "current_task_id" field.
func CurrentTaskIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCurrentTaskID, vs...))
}

// CurrentTaskIDNotIn applies the NotIn predicate on the "current_task_id" field.
func CurrentTaskIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCurrentTaskID, vs...))
}

// CurrentTaskIDGT applies the GT predicate on the "current_task_id" field.
func CurrentTaskIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCurrentTaskID, v))
}

// CurrentTaskIDGTE applies the GTE predicate on the "current_task_id" field.
func CurrentTaskIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCurrentTaskID, v))
}

// CurrentTaskIDLT applies the LT predicate on the "current_task_id" field.
func CurrentTaskIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCurrentTaskID, v))
}

// CurrentTaskIDLTE applies the LTE predicate on the "current_task_id" field.
func CurrentTaskIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCurrentTaskID, v))
}

// CurrentTaskIDContains applies the Contains predicate on the "current_task_id" field.
func CurrentTaskIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCurrentTaskID, v))
}

// CurrentTaskIDHasPrefix applies the HasPrefix predicate on the "current_task_id" field.
func CurrentTaskIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCurrentTaskID, v))
}

// CurrentTaskIDHasSuffix applies the HasSuffix predicate on the "current_task_id" field.
func CurrentTaskIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCurrentTaskID, v))
}

// CurrentTaskIDIsNil applies the IsNil predicate on the "current_task_id" field.
func CurrentTaskIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCurrentTaskID))
}

// CurrentTaskIDNotNil applies the NotNil predicate on the "current_task_id" field.
func CurrentTaskIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCurrentTaskID))
}

// CurrentTaskIDEqualFold applies the EqualFold predicate on the "current_task_id" field.
func CurrentTaskIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCurrentTaskID, v))
}

// CurrentTaskIDContainsFold applies the ContainsFold predicate on the "current_task_id" field.
func CurrentTaskIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCurrentTaskID, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldBranchName, v))
}

// RunnerSessionIDEQ applies the EQ predicate on the "runner_session_id" field.
func RunnerSessionIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRunnerSessionID, v))
}

// RunnerSessionIDNEQ applies the NEQ predicate on the "runner_session_id" field.
func RunnerSessionIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRunnerSessionID, v))
}

// RunnerSessionIDIn applies the In predicate on the "runner_session_id" field.
func RunnerSessionIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRunnerSessionID, vs...))
}

// RunnerSessionIDNotIn applies the NotIn predicate on the "runner_session_id" field.
func RunnerSessionIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRunnerSessionID, vs...))
}

// RunnerSessionIDGT applies the GT predicate on the "runner_session_id" field.
func RunnerSessionIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRunnerSessionID, v))
}

// RunnerSessionIDGTE applies the GTE predicate on the "runner_session_id" field.
func RunnerSessionIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRunnerSessionID, v))
}

// RunnerSessionIDLT applies the LT predicate on the "runner_session_id" field.
func RunnerSessionIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRunnerSessionID, v))
}

// RunnerSessionIDLTE applies the LTE predicate on the "runner_session_id" field.
func RunnerSessionIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRunnerSessionID, v))
}

// RunnerSessionIDContains applies the Contains predicate on the "runner_session_id" field.
func RunnerSessionIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldRunnerSessionID, v))
}

// RunnerSessionIDHasPrefix applies the HasPrefix predicate on the "runner_session_id" field.
func RunnerSessionIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldRunnerSessionID, v))
}

// RunnerSessionIDHasSuffix applies the HasSuffix predicate on the "runner_session_id" field.
func RunnerSessionIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldRunnerSessionID, v))
}

// RunnerSessionIDEqualFold applies the EqualFold predicate on the "runner_session_id" field.
func RunnerSessionIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldRunnerSessionID, v))
}

// RunnerSessionIDContainsFold applies the ContainsFold predicate on the "runner_session_id" field.
func RunnerSessionIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldRunnerSessionID, v))
}

// WorkingDirEQ applies the EQ predicate on the "working_dir" field.
func WorkingDirEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWorkingDir, v))
}

// WorkingDirNEQ applies the NEQ predicate on the "working_dir" field.
func WorkingDirNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldWorkingDir, v))
}

// WorkingDirIn applies the In predicate on the "working_dir" field.
func WorkingDirIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldWorkingDir, vs...))
}

// WorkingDirNotIn applies the NotIn predicate on the "working_dir" field.
func WorkingDirNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldWorkingDir, vs...))
}

// WorkingDirGT applies the GT predicate on the "working_dir" field.
func WorkingDirGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldWorkingDir, v))
}

// WorkingDirGTE applies the GTE predicate on the "working_dir" field.
func WorkingDirGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldWorkingDir, v))
}

// WorkingDirLT applies the LT predicate on the "working_dir" field.
func WorkingDirLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldWorkingDir, v))
}

// WorkingDirLTE applies the LTE predicate on the "working_dir" field.
func WorkingDirLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldWorkingDir, v))
}

// WorkingDirContains applies the Contains predicate on the "working_dir" field.
func WorkingDirContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldWorkingDir, v))
}

// WorkingDirHasPrefix applies the HasPrefix predicate on the "working_dir" field.
func WorkingDirHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldWorkingDir, v))
}

// WorkingDirHasSuffix applies the HasSuffix predicate on the "working_dir" field.
func WorkingDirHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldWorkingDir, v))
}

// WorkingDirEqualFold applies the EqualFold predicate on the "working_dir" field.
func WorkingDirEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldWorkingDir, v))
}

// WorkingDirContainsFold applies the ContainsFold predicate on the "working_dir" field.
func WorkingDirContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldWorkingDir, v))
}

// TotalTokensUsedEQ applies the EQ predicate on the "total_tokens_used" field.
func TotalTokensUsedEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTotalTokensUsed, v))
}

// TotalTokensUsedNEQ applies the NEQ predicate on the "total_tokens_used" field.
func TotalTokensUsedNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTotalTokensUsed, v))
}

// TotalTokensUsedIn applies the In predicate on the "total_tokens_used" field.
func TotalTokensUsedIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTotalTokensUsed, vs...))
}

// TotalTokensUsedNotIn applies the NotIn predicate on the "total_tokens_used" field.
func TotalTokensUsedNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTotalTokensUsed, vs...))
}

// TotalTokensUsedGT applies the GT predicate on the "total_tokens_used" field.
func TotalTokensUsedGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTotalTokensUsed, v))
}

// TotalTokensUsedGTE applies the GTE predicate on the "total_tokens_used" field.
func TotalTokensUsedGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTotalTokensUsed, v))
}

// TotalTokensUsedLT applies the LT predicate on the "total_tokens_used" field.
func TotalTokensUsedLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTotalTokensUsed, v))
}

// TotalTokensUsedLTE applies the LTE predicate on the "total_tokens_used" field.
func TotalTokensUsedLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTotalTokensUsed, v))
}

// TasksCompletedEQ applies the EQ predicate on the "tasks_completed" field.
func TasksCompletedEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksCompletedNEQ applies the NEQ predicate on the "tasks_completed" field.
func TasksCompletedNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTasksCompleted, v))
}

// TasksCompletedIn applies the In predicate on the "tasks_completed" field.
func TasksCompletedIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTasksCompleted, vs...))
}

// TasksCompletedNotIn applies the NotIn predicate on the "tasks_completed" field.
func TasksCompletedNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTasksCompleted, vs...))
}

// TasksCompletedGT applies the GT predicate on the "tasks_completed" field.
func TasksCompletedGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTasksCompleted, v))
}

// TasksCompletedGTE applies the GTE predicate on the "tasks_completed" field.
func TasksCompletedGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTasksCompleted, v))
}

// TasksCompletedLT applies the LT predicate on the "tasks_completed" field.
func TasksCompletedLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTasksCompleted, v))
}

// TasksCompletedLTE applies the LTE predicate on the "tasks_completed" field.
func TasksCompletedLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTasksCompleted, v))
}

// TasksFailedEQ applies the EQ predicate on the "tasks_failed" field.
func TasksFailedEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTasksFailed, v))
}

// TasksFailedNEQ applies the NEQ predicate on the "tasks_failed" field.
func TasksFailedNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTasksFailed, v))
}

// TasksFailedIn applies the In predicate on the "tasks_failed" field.
func TasksFailedIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTasksFailed, vs...))
}

// TasksFailedNotIn applies the NotIn predicate on the "tasks_failed" field.
func TasksFailedNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTasksFailed, vs...))
}

// TasksFailedGT applies the GT predicate on the "tasks_failed" field.
func TasksFailedGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTasksFailed, v))
}

// TasksFailedGTE applies the GTE predicate on the "tasks_failed" field.
func TasksFailedGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTasksFailed, v))
}

// TasksFailedLT applies the LT predicate on the "tasks_failed" field.
func TasksFailedLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTasksFailed, v))
}

// TasksFailedLTE applies the LTE predicate on the "tasks_failed" field.
func TasksFailedLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTasksFailed, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCompletedAt))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastActivityAt, v))
}

// LastActivityAtIsNil applies the IsNil predicate on the "last_activity_at" field.
func LastActivityAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastActivityAt))
}

// LastActivityAtNotNil applies the NotNil predicate on the "last_activity_at" field.
func LastActivityAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastActivityAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
