// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/certready/certready/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/certready/certready/ent/attemptevent"
	"github.com/certready/certready/ent/competencyrecord"
	"github.com/certready/certready/ent/examsession"
	"github.com/certready/certready/ent/reviewcard"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// CompetencyRecord is the client for interacting with the CompetencyRecord builders.
	CompetencyRecord *CompetencyRecordClient
	// ExamSession is the client for interacting with the ExamSession builders.
	ExamSession *ExamSessionClient
	// ReviewCard is the client for interacting with the ReviewCard builders.
	ReviewCard *ReviewCardClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.CompetencyRecord = NewCompetencyRecordClient(c.config)
	c.ExamSession = NewExamSessionClient(c.config)
	c.ReviewCard = NewReviewCardClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AttemptEvent:     NewAttemptEventClient(cfg),
		CompetencyRecord: NewCompetencyRecordClient(cfg),
		ExamSession:      NewExamSessionClient(cfg),
		ReviewCard:       NewReviewCardClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AttemptEvent:     NewAttemptEventClient(cfg),
		CompetencyRecord: NewCompetencyRecordClient(cfg),
		ExamSession:      NewExamSessionClient(cfg),
		ReviewCard:       NewReviewCardClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
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
	c.AttemptEvent.Use(hooks...)
	c.CompetencyRecord.Use(hooks...)
	c.ExamSession.Use(hooks...)
	c.ReviewCard.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttemptEvent.Intercept(interceptors...)
	c.CompetencyRecord.Intercept(interceptors...)
	c.ExamSession.Intercept(interceptors...)
	c.ReviewCard.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *CompetencyRecordMutation:
		return c.CompetencyRecord.mutate(ctx, m)
	case *ExamSessionMutation:
		return c.ExamSession.mutate(ctx, m)
	case *ReviewCardMutation:
		return c.ReviewCard.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// CompetencyRecordClient is a client for the CompetencyRecord schema.
type CompetencyRecordClient struct {
	config
}

// NewCompetencyRecordClient returns a client for the CompetencyRecord from the given config.
func NewCompetencyRecordClient(c config) *CompetencyRecordClient {
	return &CompetencyRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `competencyrecord.Hooks(f(g(h())))`.
func (c *CompetencyRecordClient) Use(hooks ...Hook) {
	c.hooks.CompetencyRecord = append(c.hooks.CompetencyRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `competencyrecord.Intercept(f(g(h())))`.
func (c *CompetencyRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompetencyRecord = append(c.inters.CompetencyRecord, interceptors...)
}

// Create returns a builder for creating a CompetencyRecord entity.
func (c *CompetencyRecordClient) Create() *CompetencyRecordCreate {
	mutation := newCompetencyRecordMutation(c.config, OpCreate)
	return &CompetencyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompetencyRecord entities.
func (c *CompetencyRecordClient) CreateBulk(builders ...*CompetencyRecordCreate) *CompetencyRecordCreateBulk {
	return &CompetencyRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompetencyRecordClient) MapCreateBulk(slice any, setFunc func(*CompetencyRecordCreate, int)) *CompetencyRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompetencyRecordCreateBulk{err: fmt.Errorf("calling to CompetencyRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompetencyRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompetencyRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompetencyRecord.
func (c *CompetencyRecordClient) Update() *CompetencyRecordUpdate {
	mutation := newCompetencyRecordMutation(c.config, OpUpdate)
	return &CompetencyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompetencyRecordClient) UpdateOne(_m *CompetencyRecord) *CompetencyRecordUpdateOne {
	mutation := newCompetencyRecordMutation(c.config, OpUpdateOne, withCompetencyRecord(_m))
	return &CompetencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompetencyRecordClient) UpdateOneID(id int) *CompetencyRecordUpdateOne {
	mutation := newCompetencyRecordMutation(c.config, OpUpdateOne, withCompetencyRecordID(id))
	return &CompetencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompetencyRecord.
func (c *CompetencyRecordClient) Delete() *CompetencyRecordDelete {
	mutation := newCompetencyRecordMutation(c.config, OpDelete)
	return &CompetencyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompetencyRecordClient) DeleteOne(_m *CompetencyRecord) *CompetencyRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompetencyRecordClient) DeleteOneID(id int) *CompetencyRecordDeleteOne {
	builder := c.Delete().Where(competencyrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompetencyRecordDeleteOne{builder}
}

// Query returns a query builder for CompetencyRecord.
func (c *CompetencyRecordClient) Query() *CompetencyRecordQuery {
	return &CompetencyRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompetencyRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CompetencyRecord entity by its id.
func (c *CompetencyRecordClient) Get(ctx context.Context, id int) (*CompetencyRecord, error) {
	return c.Query().Where(competencyrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompetencyRecordClient) GetX(ctx context.Context, id int) *CompetencyRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompetencyRecordClient) Hooks() []Hook {
	return c.hooks.CompetencyRecord
}

// Interceptors returns the client interceptors.
func (c *CompetencyRecordClient) Interceptors() []Interceptor {
	return c.inters.CompetencyRecord
}

func (c *CompetencyRecordClient) mutate(ctx context.Context, m *CompetencyRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompetencyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompetencyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompetencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompetencyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompetencyRecord mutation op: %q", m.Op())
	}
}

// ExamSessionClient is a client for the ExamSession schema.
type ExamSessionClient struct {
	config
}

// NewExamSessionClient returns a client for the ExamSession from the given config.
func NewExamSessionClient(c config) *ExamSessionClient {
	return &ExamSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examsession.Hooks(f(g(h())))`.
func (c *ExamSessionClient) Use(hooks ...Hook) {
	c.hooks.ExamSession = append(c.hooks.ExamSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examsession.Intercept(f(g(h())))`.
func (c *ExamSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamSession = append(c.inters.ExamSession, interceptors...)
}

// Create returns a builder for creating a ExamSession entity.
func (c *ExamSessionClient) Create() *ExamSessionCreate {
	mutation := newExamSessionMutation(c.config, OpCreate)
	return &ExamSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamSession entities.
func (c *ExamSessionClient) CreateBulk(builders ...*ExamSessionCreate) *ExamSessionCreateBulk {
	return &ExamSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamSessionClient) MapCreateBulk(slice any, setFunc func(*ExamSessionCreate, int)) *ExamSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamSessionCreateBulk{err: fmt.Errorf("calling to ExamSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamSession.
func (c *ExamSessionClient) Update() *ExamSessionUpdate {
	mutation := newExamSessionMutation(c.config, OpUpdate)
	return &ExamSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamSessionClient) UpdateOne(_m *ExamSession) *ExamSessionUpdateOne {
	mutation := newExamSessionMutation(c.config, OpUpdateOne, withExamSession(_m))
	return &ExamSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamSessionClient) UpdateOneID(id int) *ExamSessionUpdateOne {
	mutation := newExamSessionMutation(c.config, OpUpdateOne, withExamSessionID(id))
	return &ExamSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamSession.
func (c *ExamSessionClient) Delete() *ExamSessionDelete {
	mutation := newExamSessionMutation(c.config, OpDelete)
	return &ExamSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamSessionClient) DeleteOne(_m *ExamSession) *ExamSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamSessionClient) DeleteOneID(id int) *ExamSessionDeleteOne {
	builder := c.Delete().Where(examsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamSessionDeleteOne{builder}
}

// Query returns a query builder for ExamSession.
func (c *ExamSessionClient) Query() *ExamSessionQuery {
	return &ExamSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamSession entity by its id.
func (c *ExamSessionClient) Get(ctx context.Context, id int) (*ExamSession, error) {
	return c.Query().Where(examsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamSessionClient) GetX(ctx context.Context, id int) *ExamSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamSessionClient) Hooks() []Hook {
	return c.hooks.ExamSession
}

// Interceptors returns the client interceptors.
func (c *ExamSessionClient) Interceptors() []Interceptor {
	return c.inters.ExamSession
}

func (c *ExamSessionClient) mutate(ctx context.Context, m *ExamSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamSession mutation op: %q", m.Op())
	}
}

// ReviewCardClient is a client for the ReviewCard schema.
type ReviewCardClient struct {
	config
}

// NewReviewCardClient returns a client for the ReviewCard from the given config.
func NewReviewCardClient(c config) *ReviewCardClient {
	return &ReviewCardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewcard.Hooks(f(g(h())))`.
func (c *ReviewCardClient) Use(hooks ...Hook) {
	c.hooks.ReviewCard = append(c.hooks.ReviewCard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewcard.Intercept(f(g(h())))`.
func (c *ReviewCardClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewCard = append(c.inters.ReviewCard, interceptors...)
}

// Create returns a builder for creating a ReviewCard entity.
func (c *ReviewCardClient) Create() *ReviewCardCreate {
	mutation := newReviewCardMutation(c.config, OpCreate)
	return &ReviewCardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewCard entities.
func (c *ReviewCardClient) CreateBulk(builders ...*ReviewCardCreate) *ReviewCardCreateBulk {
	return &ReviewCardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewCardClient) MapCreateBulk(slice any, setFunc func(*ReviewCardCreate, int)) *ReviewCardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewCardCreateBulk{err: fmt.Errorf("calling to ReviewCardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewCardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewCardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewCard.
func (c *ReviewCardClient) Update() *ReviewCardUpdate {
	mutation := newReviewCardMutation(c.config, OpUpdate)
	return &ReviewCardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewCardClient) UpdateOne(_m *ReviewCard) *ReviewCardUpdateOne {
	mutation := newReviewCardMutation(c.config, OpUpdateOne, withReviewCard(_m))
	return &ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewCardClient) UpdateOneID(id int) *ReviewCardUpdateOne {
	mutation := newReviewCardMutation(c.config, OpUpdateOne, withReviewCardID(id))
	return &ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewCard.
func (c *ReviewCardClient) Delete() *ReviewCardDelete {
	mutation := newReviewCardMutation(c.config, OpDelete)
	return &ReviewCardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewCardClient) DeleteOne(_m *ReviewCard) *ReviewCardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewCardClient) DeleteOneID(id int) *ReviewCardDeleteOne {
	builder := c.Delete().Where(reviewcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewCardDeleteOne{builder}
}

// Query returns a query builder for ReviewCard.
func (c *ReviewCardClient) Query() *ReviewCardQuery {
	return &ReviewCardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewCard},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewCard entity by its id.
func (c *ReviewCardClient) Get(ctx context.Context, id int) (*ReviewCard, error) {
	return c.Query().Where(reviewcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewCardClient) GetX(ctx context.Context, id int) *ReviewCard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewCardClient) Hooks() []Hook {
	return c.hooks.ReviewCard
}

// Interceptors returns the client interceptors.
func (c *ReviewCardClient) Interceptors() []Interceptor {
	return c.inters.ReviewCard
}

func (c *ReviewCardClient) mutate(ctx context.Context, m *ReviewCardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewCardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewCardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewCardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewCard mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, CompetencyRecord, ExamSession, ReviewCard []ent.Hook
	}
	inters struct {
		AttemptEvent, CompetencyRecord, ExamSession, ReviewCard []ent.Interceptor
	}
)
