// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentLog is the predicate function for agentlog builders.
type AgentLog func(*sql.Selector)

// Exception is the predicate function for exception builders.
type Exception func(*sql.Selector)

// FileLock is the predicate function for filelock builders.
type FileLock func(*sql.Selector)

// RunnerSession is the predicate function for runnersession builders.
type RunnerSession func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// VerificationResult is the predicate function for verificationresult builders.
type VerificationResult func(*sql.Selector)
