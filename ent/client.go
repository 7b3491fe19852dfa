// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/louannemur/fleetd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/agentlog"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/filelock"
	"github.com/louannemur/fleetd/ent/runnersession"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/ent/verificationresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentLog is the client for interacting with the AgentLog builders.
	AgentLog *AgentLogClient
	// Exception is the client for interacting with the Exception builders.
	Exception *ExceptionClient
	// FileLock is the client for interacting with the FileLock builders.
	FileLock *FileLockClient
	// RunnerSession is the client for interacting with the RunnerSession builders.
	RunnerSession *RunnerSessionClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// VerificationResult is the client for interacting with the VerificationResult builders.
	VerificationResult *VerificationResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentLog = NewAgentLogClient(c.config)
	c.Exception = NewExceptionClient(c.config)
	c.FileLock = NewFileLockClient(c.config)
	c.RunnerSession = NewRunnerSessionClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.VerificationResult = NewVerificationResultClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Agent:              NewAgentClient(cfg),
		AgentLog:           NewAgentLogClient(cfg),
		Exception:          NewExceptionClient(cfg),
		FileLock:           NewFileLockClient(cfg),
		RunnerSession:      NewRunnerSessionClient(cfg),
		Task:               NewTaskClient(cfg),
		VerificationResult: NewVerificationResultClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Agent:              NewAgentClient(cfg),
		AgentLog:           NewAgentLogClient(cfg),
		Exception:          NewExceptionClient(cfg),
		FileLock:           NewFileLockClient(cfg),
		RunnerSession:      NewRunnerSessionClient(cfg),
		Task:               NewTaskClient(cfg),
		VerificationResult: NewVerificationResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Agent, c.AgentLog, c.Exception, c.FileLock, c.RunnerSession, c.Task,
		c.VerificationResult,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentLog, c.Exception, c.FileLock, c.RunnerSession, c.Task,
		c.VerificationResult,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentLogMutation:
		return c.AgentLog.mutate(ctx, m)
	case *ExceptionMutation:
		return c.Exception.mutate(ctx, m)
	case *FileLockMutation:
		return c.FileLock.mutate(ctx, m)
	case *RunnerSessionMutation:
		return c.RunnerSession.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *VerificationResultMutation:
		return c.VerificationResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentLogClient is a client for the AgentLog schema.
type AgentLogClient struct {
	config
}

// NewAgentLogClient returns a client for the AgentLog from the given config.
func NewAgentLogClient(c config) *AgentLogClient {
	return &AgentLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentlog.Hooks(f(g(h())))`.
func (c *AgentLogClient) Use(hooks ...Hook) {
	c.hooks.AgentLog = append(c.hooks.AgentLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentlog.Intercept(f(g(h())))`.
func (c *AgentLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentLog = append(c.inters.AgentLog, interceptors...)
}

// Create returns a builder for creating a AgentLog entity.
func (c *AgentLogClient) Create() *AgentLogCreate {
	mutation := newAgentLogMutation(c.config, OpCreate)
	return &AgentLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentLog entities.
func (c *AgentLogClient) CreateBulk(builders ...*AgentLogCreate) *AgentLogCreateBulk {
	return &AgentLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentLogClient) MapCreateBulk(slice any, setFunc func(*AgentLogCreate, int)) *AgentLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentLogCreateBulk{err: fmt.Errorf("calling to AgentLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentLog.
func (c *AgentLogClient) Update() *AgentLogUpdate {
	mutation := newAgentLogMutation(c.config, OpUpdate)
	return &AgentLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentLogClient) UpdateOne(_m *AgentLog) *AgentLogUpdateOne {
	mutation := newAgentLogMutation(c.config, OpUpdateOne, withAgentLog(_m))
	return &AgentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentLogClient) UpdateOneID(id string) *AgentLogUpdateOne {
	mutation := newAgentLogMutation(c.config, OpUpdateOne, withAgentLogID(id))
	return &AgentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentLog.
func (c *AgentLogClient) Delete() *AgentLogDelete {
	mutation := newAgentLogMutation(c.config, OpDelete)
	return &AgentLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentLogClient) DeleteOne(_m *AgentLog) *AgentLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentLogClient) DeleteOneID(id string) *AgentLogDeleteOne {
	builder := c.Delete().Where(agentlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentLogDeleteOne{builder}
}

// Query returns a query builder for AgentLog.
func (c *AgentLogClient) Query() *AgentLogQuery {
	return &AgentLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentLog entity by its id.
func (c *AgentLogClient) Get(ctx context.Context, id string) (*AgentLog, error) {
	return c.Query().Where(agentlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentLogClient) GetX(ctx context.Context, id string) *AgentLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentLogClient) Hooks() []Hook {
	return c.hooks.AgentLog
}

// Interceptors returns the client interceptors.
func (c *AgentLogClient) Interceptors() []Interceptor {
	return c.inters.AgentLog
}

func (c *AgentLogClient) mutate(ctx context.Context, m *AgentLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentLog mutation op: %q", m.Op())
	}
}

// ExceptionClient is a client for the Exception schema.
type ExceptionClient struct {
	config
}

// NewExceptionClient returns a client for the Exception from the given config.
func NewExceptionClient(c config) *ExceptionClient {
	return &ExceptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exception.Hooks(f(g(h())))`.
func (c *ExceptionClient) Use(hooks ...Hook) {
	c.hooks.Exception = append(c.hooks.Exception, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exception.Intercept(f(g(h())))`.
func (c *ExceptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exception = append(c.inters.Exception, interceptors...)
}

// Create returns a builder for creating a Exception entity.
func (c *ExceptionClient) Create() *ExceptionCreate {
	mutation := newExceptionMutation(c.config, OpCreate)
	return &ExceptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exception entities.
func (c *ExceptionClient) CreateBulk(builders ...*ExceptionCreate) *ExceptionCreateBulk {
	return &ExceptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExceptionClient) MapCreateBulk(slice any, setFunc func(*ExceptionCreate, int)) *ExceptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExceptionCreateBulk{err: fmt.Errorf("calling to ExceptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExceptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExceptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exception.
func (c *ExceptionClient) Update() *ExceptionUpdate {
	mutation := newExceptionMutation(c.config, OpUpdate)
	return &ExceptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExceptionClient) UpdateOne(_m *Exception) *ExceptionUpdateOne {
	mutation := newExceptionMutation(c.config, OpUpdateOne, withException(_m))
	return &ExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExceptionClient) UpdateOneID(id string) *ExceptionUpdateOne {
	mutation := newExceptionMutation(c.config, OpUpdateOne, withExceptionID(id))
	return &ExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exception.
func (c *ExceptionClient) Delete() *ExceptionDelete {
	mutation := newExceptionMutation(c.config, OpDelete)
	return &ExceptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExceptionClient) DeleteOne(_m *Exception) *ExceptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExceptionClient) DeleteOneID(id string) *ExceptionDeleteOne {
	builder := c.Delete().Where(exception.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExceptionDeleteOne{builder}
}

// Query returns a query builder for Exception.
func (c *ExceptionClient) Query() *ExceptionQuery {
	return &ExceptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeException},
		inters: c.Interceptors(),
	}
}

// Get returns a Exception entity by its id.
func (c *ExceptionClient) Get(ctx context.Context, id string) (*Exception, error) {
	return c.Query().Where(exception.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExceptionClient) GetX(ctx context.Context, id string) *Exception {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExceptionClient) Hooks() []Hook {
	return c.hooks.Exception
}

// Interceptors returns the client interceptors.
func (c *ExceptionClient) Interceptors() []Interceptor {
	return c.inters.Exception
}

func (c *ExceptionClient) mutate(ctx context.Context, m *ExceptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExceptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExceptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExceptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Exception mutation op: %q", m.Op())
	}
}

// FileLockClient is a client for the FileLock schema.
type FileLockClient struct {
	config
}

// NewFileLockClient returns a client for the FileLock from the given config.
func NewFileLockClient(c config) *FileLockClient {
	return &FileLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filelock.Hooks(f(g(h())))`.
func (c *FileLockClient) Use(hooks ...Hook) {
	c.hooks.FileLock = append(c.hooks.FileLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filelock.Intercept(f(g(h())))`.
func (c *FileLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.FileLock = append(c.inters.FileLock, interceptors...)
}

// Create returns a builder for creating a FileLock entity.
func (c *FileLockClient) Create() *FileLockCreate {
	mutation := newFileLockMutation(c.config, OpCreate)
	return &FileLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FileLock entities.
func (c *FileLockClient) CreateBulk(builders ...*FileLockCreate) *FileLockCreateBulk {
	return &FileLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileLockClient) MapCreateBulk(slice any, setFunc func(*FileLockCreate, int)) *FileLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileLockCreateBulk{err: fmt.Errorf("calling to FileLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FileLock.
func (c *FileLockClient) Update() *FileLockUpdate {
	mutation := newFileLockMutation(c.config, OpUpdate)
	return &FileLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileLockClient) UpdateOne(_m *FileLock) *FileLockUpdateOne {
	mutation := newFileLockMutation(c.config, OpUpdateOne, withFileLock(_m))
	return &FileLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileLockClient) UpdateOneID(id string) *FileLockUpdateOne {
	mutation := newFileLockMutation(c.config, OpUpdateOne, withFileLockID(id))
	return &FileLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FileLock.
func (c *FileLockClient) Delete() *FileLockDelete {
	mutation := newFileLockMutation(c.config, OpDelete)
	return &FileLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileLockClient) DeleteOne(_m *FileLock) *FileLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileLockClient) DeleteOneID(id string) *FileLockDeleteOne {
	builder := c.Delete().Where(filelock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileLockDeleteOne{builder}
}

// Query returns a query builder for FileLock.
func (c *FileLockClient) Query() *FileLockQuery {
	return &FileLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFileLock},
		inters: c.Interceptors(),
	}
}

// Get returns a FileLock entity by its id.
func (c *FileLockClient) Get(ctx context.Context, id string) (*FileLock, error) {
	return c.Query().Where(filelock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileLockClient) GetX(ctx context.Context, id string) *FileLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FileLockClient) Hooks() []Hook {
	return c.hooks.FileLock
}

// Interceptors returns the client interceptors.
func (c *FileLockClient) Interceptors() []Interceptor {
	return c.inters.FileLock
}

func (c *FileLockClient) mutate(ctx context.Context, m *FileLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FileLock mutation op: %q", m.Op())
	}
}

// RunnerSessionClient is a client for the RunnerSession schema.
type RunnerSessionClient struct {
	config
}

// NewRunnerSessionClient returns a client for the RunnerSession from the given config.
func NewRunnerSessionClient(c config) *RunnerSessionClient {
	return &RunnerSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runnersession.Hooks(f(g(h())))`.
func (c *RunnerSessionClient) Use(hooks ...Hook) {
	c.hooks.RunnerSession = append(c.hooks.RunnerSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runnersession.Intercept(f(g(h())))`.
func (c *RunnerSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunnerSession = append(c.inters.RunnerSession, interceptors...)
}

// Create returns a builder for creating a RunnerSession entity.
func (c *RunnerSessionClient) Create() *RunnerSessionCreate {
	mutation := newRunnerSessionMutation(c.config, OpCreate)
	return &RunnerSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunnerSession entities.
func (c *RunnerSessionClient) CreateBulk(builders ...*RunnerSessionCreate) *RunnerSessionCreateBulk {
	return &RunnerSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunnerSessionClient) MapCreateBulk(slice any, setFunc func(*RunnerSessionCreate, int)) *RunnerSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunnerSessionCreateBulk{err: fmt.Errorf("calling to RunnerSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunnerSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunnerSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunnerSession.
func (c *RunnerSessionClient) Update() *RunnerSessionUpdate {
	mutation := newRunnerSessionMutation(c.config, OpUpdate)
	return &RunnerSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunnerSessionClient) UpdateOne(_m *RunnerSession) *RunnerSessionUpdateOne {
	mutation := newRunnerSessionMutation(c.config, OpUpdateOne, withRunnerSession(_m))
	return &RunnerSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunnerSessionClient) UpdateOneID(id string) *RunnerSessionUpdateOne {
	mutation := newRunnerSessionMutation(c.config, OpUpdateOne, withRunnerSessionID(id))
	return &RunnerSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunnerSession.
func (c *RunnerSessionClient) Delete() *RunnerSessionDelete {
	mutation := newRunnerSessionMutation(c.config, OpDelete)
	return &RunnerSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunnerSessionClient) DeleteOne(_m *RunnerSession) *RunnerSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunnerSessionClient) DeleteOneID(id string) *RunnerSessionDeleteOne {
	builder := c.Delete().Where(runnersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunnerSessionDeleteOne{builder}
}

// Query returns a query builder for RunnerSession.
func (c *RunnerSessionClient) Query() *RunnerSessionQuery {
	return &RunnerSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunnerSession},
		inters: c.Interceptors(),
	}
}

// Get returns a RunnerSession entity by its id.
func (c *RunnerSessionClient) Get(ctx context.Context, id string) (*RunnerSession, error) {
	return c.Query().Where(runnersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunnerSessionClient) GetX(ctx context.Context, id string) *RunnerSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunnerSessionClient) Hooks() []Hook {
	return c.hooks.RunnerSession
}

// Interceptors returns the client interceptors.
func (c *RunnerSessionClient) Interceptors() []Interceptor {
	return c.inters.RunnerSession
}

func (c *RunnerSessionClient) mutate(ctx context.Context, m *RunnerSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunnerSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunnerSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunnerSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunnerSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunnerSession mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// VerificationResultClient is a client for the VerificationResult schema.
type VerificationResultClient struct {
	config
}

// NewVerificationResultClient returns a client for the VerificationResult from the given config.
func NewVerificationResultClient(c config) *VerificationResultClient {
	return &VerificationResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationresult.Hooks(f(g(h())))`.
func (c *VerificationResultClient) Use(hooks ...Hook) {
	c.hooks.VerificationResult = append(c.hooks.VerificationResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationresult.Intercept(f(g(h())))`.
func (c *VerificationResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationResult = append(c.inters.VerificationResult, interceptors...)
}

// Create returns a builder for creating a VerificationResult entity.
func (c *VerificationResultClient) Create() *VerificationResultCreate {
	mutation := newVerificationResultMutation(c.config, OpCreate)
	return &VerificationResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationResult entities.
func (c *VerificationResultClient) CreateBulk(builders ...*VerificationResultCreate) *VerificationResultCreateBulk {
	return &VerificationResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationResultClient) MapCreateBulk(slice any, setFunc func(*VerificationResultCreate, int)) *VerificationResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationResultCreateBulk{err: fmt.Errorf("calling to VerificationResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationResult.
func (c *VerificationResultClient) Update() *VerificationResultUpdate {
	mutation := newVerificationResultMutation(c.config, OpUpdate)
	return &VerificationResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationResultClient) UpdateOne(_m *VerificationResult) *VerificationResultUpdateOne {
	mutation := newVerificationResultMutation(c.config, OpUpdateOne, withVerificationResult(_m))
	return &VerificationResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationResultClient) UpdateOneID(id string) *VerificationResultUpdateOne {
	mutation := newVerificationResultMutation(c.config, OpUpdateOne, withVerificationResultID(id))
	return &VerificationResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationResult.
func (c *VerificationResultClient) Delete() *VerificationResultDelete {
	mutation := newVerificationResultMutation(c.config, OpDelete)
	return &VerificationResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationResultClient) DeleteOne(_m *VerificationResult) *VerificationResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationResultClient) DeleteOneID(id string) *VerificationResultDeleteOne {
	builder := c.Delete().Where(verificationresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationResultDeleteOne{builder}
}

// Query returns a query builder for VerificationResult.
func (c *VerificationResultClient) Query() *VerificationResultQuery {
	return &VerificationResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationResult},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationResult entity by its id.
func (c *VerificationResultClient) Get(ctx context.Context, id string) (*VerificationResult, error) {
	return c.Query().Where(verificationresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationResultClient) GetX(ctx context.Context, id string) *VerificationResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VerificationResultClient) Hooks() []Hook {
	return c.hooks.VerificationResult
}

// Interceptors returns the client interceptors.
func (c *VerificationResultClient) Interceptors() []Interceptor {
	return c.inters.VerificationResult
}

func (c *VerificationResultClient) mutate(ctx context.Context, m *VerificationResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentLog, Exception, FileLock, RunnerSession, Task,
		VerificationResult []ent.Hook
	}
	inters struct {
		Agent, AgentLog, Exception, FileLock, RunnerSession, Task,
		VerificationResult []ent.Interceptor
	}
)
