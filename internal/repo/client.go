// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/turnos-app/turnos_backend/internal/repo/psychologist"
	"github.com/turnos-app/turnos_backend/internal/repo/session"
	"github.com/turnos-app/turnos_backend/internal/repo/timeslot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Psychologist is the client for interacting with the Psychologist builders.
	Psychologist *PsychologistClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// TimeSlot is the client for interacting with the TimeSlot builders.
	TimeSlot *TimeSlotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Psychologist = NewPsychologistClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.TimeSlot = NewTimeSlotClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Psychologist: NewPsychologistClient(cfg),
		Session:      NewSessionClient(cfg),
		TimeSlot:     NewTimeSlotClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		Psychologist: NewPsychologistClient(cfg),
		Session:      NewSessionClient(cfg),
		TimeSlot:     NewTimeSlotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Psychologist.
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
	c.Psychologist.Use(hooks...)
	c.Session.Use(hooks...)
	c.TimeSlot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Psychologist.Intercept(interceptors...)
	c.Session.Intercept(interceptors...)
	c.TimeSlot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PsychologistMutation:
		return c.Psychologist.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *TimeSlotMutation:
		return c.TimeSlot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// PsychologistClient is a client for the Psychologist schema.
type PsychologistClient struct {
	config
}

// NewPsychologistClient returns a client for the Psychologist from the given config.
func NewPsychologistClient(c config) *PsychologistClient {
	return &PsychologistClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `psychologist.Hooks(f(g(h())))`.
func (c *PsychologistClient) Use(hooks ...Hook) {
	c.hooks.Psychologist = append(c.hooks.Psychologist, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `psychologist.Intercept(f(g(h())))`.
func (c *PsychologistClient) Intercept(interceptors ...Interceptor) {
	c.inters.Psychologist = append(c.inters.Psychologist, interceptors...)
}

// Create returns a builder for creating a Psychologist entity.
func (c *PsychologistClient) Create() *PsychologistCreate {
	mutation := newPsychologistMutation(c.config, OpCreate)
	return &PsychologistCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Psychologist entities.
func (c *PsychologistClient) CreateBulk(builders ...*PsychologistCreate) *PsychologistCreateBulk {
	return &PsychologistCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PsychologistClient) MapCreateBulk(slice any, setFunc func(*PsychologistCreate, int)) *PsychologistCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PsychologistCreateBulk{err: fmt.Errorf("calling to PsychologistClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PsychologistCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PsychologistCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Psychologist.
func (c *PsychologistClient) Update() *PsychologistUpdate {
	mutation := newPsychologistMutation(c.config, OpUpdate)
	return &PsychologistUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PsychologistClient) UpdateOne(_m *Psychologist) *PsychologistUpdateOne {
	mutation := newPsychologistMutation(c.config, OpUpdateOne, withPsychologist(_m))
	return &PsychologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PsychologistClient) UpdateOneID(id uuid.UUID) *PsychologistUpdateOne {
	mutation := newPsychologistMutation(c.config, OpUpdateOne, withPsychologistID(id))
	return &PsychologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Psychologist.
func (c *PsychologistClient) Delete() *PsychologistDelete {
	mutation := newPsychologistMutation(c.config, OpDelete)
	return &PsychologistDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PsychologistClient) DeleteOne(_m *Psychologist) *PsychologistDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PsychologistClient) DeleteOneID(id uuid.UUID) *PsychologistDeleteOne {
	builder := c.Delete().Where(psychologist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PsychologistDeleteOne{builder}
}

// Query returns a query builder for Psychologist.
func (c *PsychologistClient) Query() *PsychologistQuery {
	return &PsychologistQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePsychologist},
		inters: c.Interceptors(),
	}
}

// Get returns a Psychologist entity by its id.
func (c *PsychologistClient) Get(ctx context.Context, id uuid.UUID) (*Psychologist, error) {
	return c.Query().Where(psychologist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PsychologistClient) GetX(ctx context.Context, id uuid.UUID) *Psychologist {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PsychologistClient) Hooks() []Hook {
	return c.hooks.Psychologist
}

// Interceptors returns the client interceptors.
func (c *PsychologistClient) Interceptors() []Interceptor {
	return c.inters.Psychologist
}

func (c *PsychologistClient) mutate(ctx context.Context, m *PsychologistMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PsychologistCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PsychologistUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PsychologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PsychologistDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Psychologist mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id uuid.UUID) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id uuid.UUID) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id uuid.UUID) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Session mutation op: %q", m.Op())
	}
}

// TimeSlotClient is a client for the TimeSlot schema.
type TimeSlotClient struct {
	config
}

// NewTimeSlotClient returns a client for the TimeSlot from the given config.
func NewTimeSlotClient(c config) *TimeSlotClient {
	return &TimeSlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timeslot.Hooks(f(g(h())))`.
func (c *TimeSlotClient) Use(hooks ...Hook) {
	c.hooks.TimeSlot = append(c.hooks.TimeSlot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timeslot.Intercept(f(g(h())))`.
func (c *TimeSlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimeSlot = append(c.inters.TimeSlot, interceptors...)
}

// Create returns a builder for creating a TimeSlot entity.
func (c *TimeSlotClient) Create() *TimeSlotCreate {
	mutation := newTimeSlotMutation(c.config, OpCreate)
	return &TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimeSlot entities.
func (c *TimeSlotClient) CreateBulk(builders ...*TimeSlotCreate) *TimeSlotCreateBulk {
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimeSlotClient) MapCreateBulk(slice any, setFunc func(*TimeSlotCreate, int)) *TimeSlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimeSlotCreateBulk{err: fmt.Errorf("calling to TimeSlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimeSlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimeSlot.
func (c *TimeSlotClient) Update() *TimeSlotUpdate {
	mutation := newTimeSlotMutation(c.config, OpUpdate)
	return &TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimeSlotClient) UpdateOne(_m *TimeSlot) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlot(_m))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimeSlotClient) UpdateOneID(id uuid.UUID) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlotID(id))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimeSlot.
func (c *TimeSlotClient) Delete() *TimeSlotDelete {
	mutation := newTimeSlotMutation(c.config, OpDelete)
	return &TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimeSlotClient) DeleteOne(_m *TimeSlot) *TimeSlotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimeSlotClient) DeleteOneID(id uuid.UUID) *TimeSlotDeleteOne {
	builder := c.Delete().Where(timeslot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimeSlotDeleteOne{builder}
}

// Query returns a query builder for TimeSlot.
func (c *TimeSlotClient) Query() *TimeSlotQuery {
	return &TimeSlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimeSlot},
		inters: c.Interceptors(),
	}
}

// Get returns a TimeSlot entity by its id.
func (c *TimeSlotClient) Get(ctx context.Context, id uuid.UUID) (*TimeSlot, error) {
	return c.Query().Where(timeslot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimeSlotClient) GetX(ctx context.Context, id uuid.UUID) *TimeSlot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimeSlotClient) Hooks() []Hook {
	return c.hooks.TimeSlot
}

// Interceptors returns the client interceptors.
func (c *TimeSlotClient) Interceptors() []Interceptor {
	return c.inters.TimeSlot
}

func (c *TimeSlotClient) mutate(ctx context.Context, m *TimeSlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TimeSlot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Psychologist, Session, TimeSlot []ent.Hook
	}
	inters struct {
		Psychologist, Session, TimeSlot []ent.Interceptor
	}
)
