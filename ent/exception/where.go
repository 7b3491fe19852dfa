// Code generated by ent, DO NOT EDIT.

package exception

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/louannemur/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Exception {
	return predicate.Exception(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Exception {
	return predicate.Exception(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldDescription, v))
}

// SuggestedAction applies equality check predicate on the "suggested_action" field. It's identical to SuggestedActionEQ.
func SuggestedAction(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldSuggestedAction, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldAgentID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldTaskID, v))
}

// ResolutionNotes applies equality check predicate on the "resolution_notes" field. It's identical to ResolutionNotesEQ.
func ResolutionNotes(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldResolutionNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldUpdatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldResolvedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldType, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldSeverity, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldStatus, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Exception {
	return predicate.Exception(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Exception {
	return predicate.Exception(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContainsFold(FieldDescription, v))
}

// SuggestedActionEQ applies the EQ predicate on the "suggested_action" field.
func SuggestedActionEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldSuggestedAction, v))
}

// SuggestedActionNEQ applies the NEQ predicate on the "suggested_action" field.
func SuggestedActionNEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldSuggestedAction, v))
}

// SuggestedActionIn applies the In predicate on the "suggested_action" field.
func SuggestedActionIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldSuggestedAction, vs...))
}

// SuggestedActionNotIn applies the NotIn predicate on the "suggested_action" field.
func SuggestedActionNotIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldSuggestedAction, vs...))
}

// SuggestedActionGT applies the GT predicate on the "suggested_action" field.
func SuggestedActionGT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldSuggestedAction, v))
}

// SuggestedActionGTE applies the GTE predicate on the "suggested_action" field.
func SuggestedActionGTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldSuggestedAction, v))
}

// SuggestedActionLT applies the LT predicate on the "suggested_action" field.
func SuggestedActionLT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldSuggestedAction, v))
}

// SuggestedActionLTE applies the LTE predicate on the "suggested_action" field.
func SuggestedActionLTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldSuggestedAction, v))
}

// SuggestedActionContains applies the Contains predicate on the "suggested_action" field.
func SuggestedActionContains(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContains(FieldSuggestedAction, v))
}

// SuggestedActionHasPrefix applies the HasPrefix predicate on the "suggested_action" field.
func SuggestedActionHasPrefix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasPrefix(FieldSuggestedAction, v))
}

// SuggestedActionHasSuffix applies the HasSuffix predicate on the "suggested_action" field.
func SuggestedActionHasSuffix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasSuffix(FieldSuggestedAction, v))
}

// SuggestedActionIsNil applies the IsNil predicate on the "suggested_action" field.
func SuggestedActionIsNil() predicate.Exception {
	return predicate.Exception(sql.FieldIsNull(FieldSuggestedAction))
}

// SuggestedActionNotNil applies the NotNil predicate on the "suggested_action" field.
func SuggestedActionNotNil() predicate.Exception {
	return predicate.Exception(sql.FieldNotNull(FieldSuggestedAction))
}

// SuggestedActionEqualFold applies the EqualFold predicate on the "suggested_action" field.
func SuggestedActionEqualFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEqualFold(FieldSuggestedAction, v))
}

// SuggestedActionContainsFold applies the ContainsFold predicate on the "suggested_action" field.
func SuggestedActionContainsFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContainsFold(FieldSuggestedAction, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.Exception {
	return predicate.Exception(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.Exception {
	return predicate.Exception(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContainsFold(FieldAgentID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.Exception {
	return predicate.Exception(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.Exception {
	return predicate.Exception(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContainsFold(FieldTaskID, v))
}

// ResolutionNotesEQ applies the EQ predicate on the "resolution_notes" field.
func ResolutionNotesEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldResolutionNotes, v))
}

// ResolutionNotesNEQ applies the NEQ predicate on the "resolution_notes" field.
func ResolutionNotesNEQ(v string) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldResolutionNotes, v))
}

// ResolutionNotesIn applies the In predicate on the "resolution_notes" field.
func ResolutionNotesIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesNotIn applies the NotIn predicate on the "resolution_notes" field.
func ResolutionNotesNotIn(vs ...string) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesGT applies the GT predicate on the "resolution_notes" field.
func ResolutionNotesGT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldResolutionNotes, v))
}

// ResolutionNotesGTE applies the GTE predicate on the "resolution_notes" field.
func ResolutionNotesGTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldResolutionNotes, v))
}

// ResolutionNotesLT applies the LT predicate on the "resolution_notes" field.
func ResolutionNotesLT(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldResolutionNotes, v))
}

// ResolutionNotesLTE applies the LTE predicate on the "resolution_notes" field.
func ResolutionNotesLTE(v string) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldResolutionNotes, v))
}

// ResolutionNotesContains applies the Contains predicate on the "resolution_notes" field.
func ResolutionNotesContains(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContains(FieldResolutionNotes, v))
}

// ResolutionNotesHasPrefix applies the HasPrefix predicate on the "resolution_notes" field.
func ResolutionNotesHasPrefix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasPrefix(FieldResolutionNotes, v))
}

// ResolutionNotesHasSuffix applies the HasSuffix predicate on the "resolution_notes" field.
func ResolutionNotesHasSuffix(v string) predicate.Exception {
	return predicate.Exception(sql.FieldHasSuffix(FieldResolutionNotes, v))
}

// ResolutionNotesIsNil applies the IsNil predicate on the "resolution_notes" field.
func ResolutionNotesIsNil() predicate.Exception {
	return predicate.Exception(sql.FieldIsNull(FieldResolutionNotes))
}

// ResolutionNotesNotNil applies the NotNil predicate on the "resolution_notes" field.
func ResolutionNotesNotNil() predicate.Exception {
	return predicate.Exception(sql.FieldNotNull(FieldResolutionNotes))
}

// ResolutionNotesEqualFold applies the EqualFold predicate on the "resolution_notes" field.
func ResolutionNotesEqualFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldEqualFold(FieldResolutionNotes, v))
}

// ResolutionNotesContainsFold applies the ContainsFold predicate on the "resolution_notes" field.
func ResolutionNotesContainsFold(v string) predicate.Exception {
	return predicate.Exception(sql.FieldContainsFold(FieldResolutionNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldUpdatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Exception {
	return predicate.Exception(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Exception {
	return predicate.Exception(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Exception {
	return predicate.Exception(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Exception) predicate.Exception {
	return predicate.Exception(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Exception) predicate.Exception {
	return predicate.Exception(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Exception) predicate.Exception {
	return predicate.Exception(sql.NotPredicates(p))
}
