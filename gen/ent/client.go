// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/esdguide/ruletracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/gen/ent/ruleimage"
	"github.com/esdguide/ruletracker/gen/ent/technology"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ImportedDocument is the client for interacting with the ImportedDocument builders.
	ImportedDocument *ImportedDocumentClient
	// Rule is the client for interacting with the Rule builders.
	Rule *RuleClient
	// RuleImage is the client for interacting with the RuleImage builders.
	RuleImage *RuleImageClient
	// Technology is the client for interacting with the Technology builders.
	Technology *TechnologyClient
	// ValidationItem is the client for interacting with the ValidationItem builders.
	ValidationItem *ValidationItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ImportedDocument = NewImportedDocumentClient(c.config)
	c.Rule = NewRuleClient(c.config)
	c.RuleImage = NewRuleImageClient(c.config)
	c.Technology = NewTechnologyClient(c.config)
	c.ValidationItem = NewValidationItemClient(c.config)
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
		ImportedDocument: NewImportedDocumentClient(cfg),
		Rule:             NewRuleClient(cfg),
		RuleImage:        NewRuleImageClient(cfg),
		Technology:       NewTechnologyClient(cfg),
		ValidationItem:   NewValidationItemClient(cfg),
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
		ImportedDocument: NewImportedDocumentClient(cfg),
		Rule:             NewRuleClient(cfg),
		RuleImage:        NewRuleImageClient(cfg),
		Technology:       NewTechnologyClient(cfg),
		ValidationItem:   NewValidationItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ImportedDocument.
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
	c.ImportedDocument.Use(hooks...)
	c.Rule.Use(hooks...)
	c.RuleImage.Use(hooks...)
	c.Technology.Use(hooks...)
	c.ValidationItem.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ImportedDocument.Intercept(interceptors...)
	c.Rule.Intercept(interceptors...)
	c.RuleImage.Intercept(interceptors...)
	c.Technology.Intercept(interceptors...)
	c.ValidationItem.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ImportedDocumentMutation:
		return c.ImportedDocument.mutate(ctx, m)
	case *RuleMutation:
		return c.Rule.mutate(ctx, m)
	case *RuleImageMutation:
		return c.RuleImage.mutate(ctx, m)
	case *TechnologyMutation:
		return c.Technology.mutate(ctx, m)
	case *ValidationItemMutation:
		return c.ValidationItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ImportedDocumentClient is a client for the ImportedDocument schema.
type ImportedDocumentClient struct {
	config
}

// NewImportedDocumentClient returns a client for the ImportedDocument from the given config.
func NewImportedDocumentClient(c config) *ImportedDocumentClient {
	return &ImportedDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importeddocument.Hooks(f(g(h())))`.
func (c *ImportedDocumentClient) Use(hooks ...Hook) {
	c.hooks.ImportedDocument = append(c.hooks.ImportedDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importeddocument.Intercept(f(g(h())))`.
func (c *ImportedDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportedDocument = append(c.inters.ImportedDocument, interceptors...)
}

// Create returns a builder for creating a ImportedDocument entity.
func (c *ImportedDocumentClient) Create() *ImportedDocumentCreate {
	mutation := newImportedDocumentMutation(c.config, OpCreate)
	return &ImportedDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportedDocument entities.
func (c *ImportedDocumentClient) CreateBulk(builders ...*ImportedDocumentCreate) *ImportedDocumentCreateBulk {
	return &ImportedDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportedDocumentClient) MapCreateBulk(slice any, setFunc func(*ImportedDocumentCreate, int)) *ImportedDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportedDocumentCreateBulk{err: fmt.Errorf("calling to ImportedDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportedDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportedDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportedDocument.
func (c *ImportedDocumentClient) Update() *ImportedDocumentUpdate {
	mutation := newImportedDocumentMutation(c.config, OpUpdate)
	return &ImportedDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportedDocumentClient) UpdateOne(_m *ImportedDocument) *ImportedDocumentUpdateOne {
	mutation := newImportedDocumentMutation(c.config, OpUpdateOne, withImportedDocument(_m))
	return &ImportedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportedDocumentClient) UpdateOneID(id uuid.UUID) *ImportedDocumentUpdateOne {
	mutation := newImportedDocumentMutation(c.config, OpUpdateOne, withImportedDocumentID(id))
	return &ImportedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportedDocument.
func (c *ImportedDocumentClient) Delete() *ImportedDocumentDelete {
	mutation := newImportedDocumentMutation(c.config, OpDelete)
	return &ImportedDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportedDocumentClient) DeleteOne(_m *ImportedDocument) *ImportedDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportedDocumentClient) DeleteOneID(id uuid.UUID) *ImportedDocumentDeleteOne {
	builder := c.Delete().Where(importeddocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportedDocumentDeleteOne{builder}
}

// Query returns a query builder for ImportedDocument.
func (c *ImportedDocumentClient) Query() *ImportedDocumentQuery {
	return &ImportedDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportedDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportedDocument entity by its id.
func (c *ImportedDocumentClient) Get(ctx context.Context, id uuid.UUID) (*ImportedDocument, error) {
	return c.Query().Where(importeddocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportedDocumentClient) GetX(ctx context.Context, id uuid.UUID) *ImportedDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryValidationItems queries the validation_items edge of a ImportedDocument.
func (c *ImportedDocumentClient) QueryValidationItems(_m *ImportedDocument) *ValidationItemQuery {
	query := (&ValidationItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(importeddocument.Table, importeddocument.FieldID, id),
			sqlgraph.To(validationitem.Table, validationitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, importeddocument.ValidationItemsTable, importeddocument.ValidationItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ImportedDocumentClient) Hooks() []Hook {
	return c.hooks.ImportedDocument
}

// Interceptors returns the client interceptors.
func (c *ImportedDocumentClient) Interceptors() []Interceptor {
	return c.inters.ImportedDocument
}

func (c *ImportedDocumentClient) mutate(ctx context.Context, m *ImportedDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportedDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportedDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportedDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportedDocument mutation op: %q", m.Op())
	}
}

// RuleClient is a client for the Rule schema.
type RuleClient struct {
	config
}

// NewRuleClient returns a client for the Rule from the given config.
func NewRuleClient(c config) *RuleClient {
	return &RuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rule.Hooks(f(g(h())))`.
func (c *RuleClient) Use(hooks ...Hook) {
	c.hooks.Rule = append(c.hooks.Rule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rule.Intercept(f(g(h())))`.
func (c *RuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Rule = append(c.inters.Rule, interceptors...)
}

// Create returns a builder for creating a Rule entity.
func (c *RuleClient) Create() *RuleCreate {
	mutation := newRuleMutation(c.config, OpCreate)
	return &RuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Rule entities.
func (c *RuleClient) CreateBulk(builders ...*RuleCreate) *RuleCreateBulk {
	return &RuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuleClient) MapCreateBulk(slice any, setFunc func(*RuleCreate, int)) *RuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuleCreateBulk{err: fmt.Errorf("calling to RuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Rule.
func (c *RuleClient) Update() *RuleUpdate {
	mutation := newRuleMutation(c.config, OpUpdate)
	return &RuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuleClient) UpdateOne(_m *Rule) *RuleUpdateOne {
	mutation := newRuleMutation(c.config, OpUpdateOne, withRule(_m))
	return &RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuleClient) UpdateOneID(id uuid.UUID) *RuleUpdateOne {
	mutation := newRuleMutation(c.config, OpUpdateOne, withRuleID(id))
	return &RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Rule.
func (c *RuleClient) Delete() *RuleDelete {
	mutation := newRuleMutation(c.config, OpDelete)
	return &RuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuleClient) DeleteOne(_m *Rule) *RuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuleClient) DeleteOneID(id uuid.UUID) *RuleDeleteOne {
	builder := c.Delete().Where(rule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuleDeleteOne{builder}
}

// Query returns a query builder for Rule.
func (c *RuleClient) Query() *RuleQuery {
	return &RuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRule},
		inters: c.Interceptors(),
	}
}

// Get returns a Rule entity by its id.
func (c *RuleClient) Get(ctx context.Context, id uuid.UUID) (*Rule, error) {
	return c.Query().Where(rule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuleClient) GetX(ctx context.Context, id uuid.UUID) *Rule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTechnology queries the technology edge of a Rule.
func (c *RuleClient) QueryTechnology(_m *Rule) *TechnologyQuery {
	query := (&TechnologyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rule.Table, rule.FieldID, id),
			sqlgraph.To(technology.Table, technology.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rule.TechnologyTable, rule.TechnologyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImages queries the images edge of a Rule.
func (c *RuleClient) QueryImages(_m *Rule) *RuleImageQuery {
	query := (&RuleImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rule.Table, rule.FieldID, id),
			sqlgraph.To(ruleimage.Table, ruleimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rule.ImagesTable, rule.ImagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryValidationItems queries the validation_items edge of a Rule.
func (c *RuleClient) QueryValidationItems(_m *Rule) *ValidationItemQuery {
	query := (&ValidationItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rule.Table, rule.FieldID, id),
			sqlgraph.To(validationitem.Table, validationitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rule.ValidationItemsTable, rule.ValidationItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RuleClient) Hooks() []Hook {
	return c.hooks.Rule
}

// Interceptors returns the client interceptors.
func (c *RuleClient) Interceptors() []Interceptor {
	return c.inters.Rule
}

func (c *RuleClient) mutate(ctx context.Context, m *RuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Rule mutation op: %q", m.Op())
	}
}

// RuleImageClient is a client for the RuleImage schema.
type RuleImageClient struct {
	config
}

// NewRuleImageClient returns a client for the RuleImage from the given config.
func NewRuleImageClient(c config) *RuleImageClient {
	return &RuleImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ruleimage.Hooks(f(g(h())))`.
func (c *RuleImageClient) Use(hooks ...Hook) {
	c.hooks.RuleImage = append(c.hooks.RuleImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ruleimage.Intercept(f(g(h())))`.
func (c *RuleImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.RuleImage = append(c.inters.RuleImage, interceptors...)
}

// Create returns a builder for creating a RuleImage entity.
func (c *RuleImageClient) Create() *RuleImageCreate {
	mutation := newRuleImageMutation(c.config, OpCreate)
	return &RuleImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RuleImage entities.
func (c *RuleImageClient) CreateBulk(builders ...*RuleImageCreate) *RuleImageCreateBulk {
	return &RuleImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuleImageClient) MapCreateBulk(slice any, setFunc func(*RuleImageCreate, int)) *RuleImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuleImageCreateBulk{err: fmt.Errorf("calling to RuleImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuleImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuleImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RuleImage.
func (c *RuleImageClient) Update() *RuleImageUpdate {
	mutation := newRuleImageMutation(c.config, OpUpdate)
	return &RuleImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuleImageClient) UpdateOne(_m *RuleImage) *RuleImageUpdateOne {
	mutation := newRuleImageMutation(c.config, OpUpdateOne, withRuleImage(_m))
	return &RuleImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuleImageClient) UpdateOneID(id uuid.UUID) *RuleImageUpdateOne {
	mutation := newRuleImageMutation(c.config, OpUpdateOne, withRuleImageID(id))
	return &RuleImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RuleImage.
func (c *RuleImageClient) Delete() *RuleImageDelete {
	mutation := newRuleImageMutation(c.config, OpDelete)
	return &RuleImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuleImageClient) DeleteOne(_m *RuleImage) *RuleImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuleImageClient) DeleteOneID(id uuid.UUID) *RuleImageDeleteOne {
	builder := c.Delete().Where(ruleimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuleImageDeleteOne{builder}
}

// Query returns a query builder for RuleImage.
func (c *RuleImageClient) Query() *RuleImageQuery {
	return &RuleImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRuleImage},
		inters: c.Interceptors(),
	}
}

// Get returns a RuleImage entity by its id.
func (c *RuleImageClient) Get(ctx context.Context, id uuid.UUID) (*RuleImage, error) {
	return c.Query().Where(ruleimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuleImageClient) GetX(ctx context.Context, id uuid.UUID) *RuleImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRule queries the rule edge of a RuleImage.
func (c *RuleImageClient) QueryRule(_m *RuleImage) *RuleQuery {
	query := (&RuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ruleimage.Table, ruleimage.FieldID, id),
			sqlgraph.To(rule.Table, rule.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ruleimage.RuleTable, ruleimage.RuleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RuleImageClient) Hooks() []Hook {
	return c.hooks.RuleImage
}

// Interceptors returns the client interceptors.
func (c *RuleImageClient) Interceptors() []Interceptor {
	return c.inters.RuleImage
}

func (c *RuleImageClient) mutate(ctx context.Context, m *RuleImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuleImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuleImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuleImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuleImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RuleImage mutation op: %q", m.Op())
	}
}

// TechnologyClient is a client for the Technology schema.
type TechnologyClient struct {
	config
}

// NewTechnologyClient returns a client for the Technology from the given config.
func NewTechnologyClient(c config) *TechnologyClient {
	return &TechnologyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `technology.Hooks(f(g(h())))`.
func (c *TechnologyClient) Use(hooks ...Hook) {
	c.hooks.Technology = append(c.hooks.Technology, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `technology.Intercept(f(g(h())))`.
func (c *TechnologyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Technology = append(c.inters.Technology, interceptors...)
}

// Create returns a builder for creating a Technology entity.
func (c *TechnologyClient) Create() *TechnologyCreate {
	mutation := newTechnologyMutation(c.config, OpCreate)
	return &TechnologyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Technology entities.
func (c *TechnologyClient) CreateBulk(builders ...*TechnologyCreate) *TechnologyCreateBulk {
	return &TechnologyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TechnologyClient) MapCreateBulk(slice any, setFunc func(*TechnologyCreate, int)) *TechnologyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TechnologyCreateBulk{err: fmt.Errorf("calling to TechnologyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TechnologyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TechnologyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Technology.
func (c *TechnologyClient) Update() *TechnologyUpdate {
	mutation := newTechnologyMutation(c.config, OpUpdate)
	return &TechnologyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TechnologyClient) UpdateOne(_m *Technology) *TechnologyUpdateOne {
	mutation := newTechnologyMutation(c.config, OpUpdateOne, withTechnology(_m))
	return &TechnologyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TechnologyClient) UpdateOneID(id uuid.UUID) *TechnologyUpdateOne {
	mutation := newTechnologyMutation(c.config, OpUpdateOne, withTechnologyID(id))
	return &TechnologyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Technology.
func (c *TechnologyClient) Delete() *TechnologyDelete {
	mutation := newTechnologyMutation(c.config, OpDelete)
	return &TechnologyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TechnologyClient) DeleteOne(_m *Technology) *TechnologyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TechnologyClient) DeleteOneID(id uuid.UUID) *TechnologyDeleteOne {
	builder := c.Delete().Where(technology.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TechnologyDeleteOne{builder}
}

// Query returns a query builder for Technology.
func (c *TechnologyClient) Query() *TechnologyQuery {
	return &TechnologyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTechnology},
		inters: c.Interceptors(),
	}
}

// Get returns a Technology entity by its id.
func (c *TechnologyClient) Get(ctx context.Context, id uuid.UUID) (*Technology, error) {
	return c.Query().Where(technology.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TechnologyClient) GetX(ctx context.Context, id uuid.UUID) *Technology {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRules queries the rules edge of a Technology.
func (c *TechnologyClient) QueryRules(_m *Technology) *RuleQuery {
	query := (&RuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(technology.Table, technology.FieldID, id),
			sqlgraph.To(rule.Table, rule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, technology.RulesTable, technology.RulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TechnologyClient) Hooks() []Hook {
	return c.hooks.Technology
}

// Interceptors returns the client interceptors.
func (c *TechnologyClient) Interceptors() []Interceptor {
	return c.inters.Technology
}

func (c *TechnologyClient) mutate(ctx context.Context, m *TechnologyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TechnologyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TechnologyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TechnologyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TechnologyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Technology mutation op: %q", m.Op())
	}
}

// ValidationItemClient is a client for the ValidationItem schema.
type ValidationItemClient struct {
	config
}

// NewValidationItemClient returns a client for the ValidationItem from the given config.
func NewValidationItemClient(c config) *ValidationItemClient {
	return &ValidationItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationitem.Hooks(f(g(h())))`.
func (c *ValidationItemClient) Use(hooks ...Hook) {
	c.hooks.ValidationItem = append(c.hooks.ValidationItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationitem.Intercept(f(g(h())))`.
func (c *ValidationItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationItem = append(c.inters.ValidationItem, interceptors...)
}

// Create returns a builder for creating a ValidationItem entity.
func (c *ValidationItemClient) Create() *ValidationItemCreate {
	mutation := newValidationItemMutation(c.config, OpCreate)
	return &ValidationItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationItem entities.
func (c *ValidationItemClient) CreateBulk(builders ...*ValidationItemCreate) *ValidationItemCreateBulk {
	return &ValidationItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationItemClient) MapCreateBulk(slice any, setFunc func(*ValidationItemCreate, int)) *ValidationItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationItemCreateBulk{err: fmt.Errorf("calling to ValidationItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationItem.
func (c *ValidationItemClient) Update() *ValidationItemUpdate {
	mutation := newValidationItemMutation(c.config, OpUpdate)
	return &ValidationItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationItemClient) UpdateOne(_m *ValidationItem) *ValidationItemUpdateOne {
	mutation := newValidationItemMutation(c.config, OpUpdateOne, withValidationItem(_m))
	return &ValidationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationItemClient) UpdateOneID(id uuid.UUID) *ValidationItemUpdateOne {
	mutation := newValidationItemMutation(c.config, OpUpdateOne, withValidationItemID(id))
	return &ValidationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationItem.
func (c *ValidationItemClient) Delete() *ValidationItemDelete {
	mutation := newValidationItemMutation(c.config, OpDelete)
	return &ValidationItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationItemClient) DeleteOne(_m *ValidationItem) *ValidationItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationItemClient) DeleteOneID(id uuid.UUID) *ValidationItemDeleteOne {
	builder := c.Delete().Where(validationitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationItemDeleteOne{builder}
}

// Query returns a query builder for ValidationItem.
func (c *ValidationItemClient) Query() *ValidationItemQuery {
	return &ValidationItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationItem entity by its id.
func (c *ValidationItemClient) Get(ctx context.Context, id uuid.UUID) (*ValidationItem, error) {
	return c.Query().Where(validationitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationItemClient) GetX(ctx context.Context, id uuid.UUID) *ValidationItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ValidationItem.
func (c *ValidationItemClient) QueryDocument(_m *ValidationItem) *ImportedDocumentQuery {
	query := (&ImportedDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationitem.Table, validationitem.FieldID, id),
			sqlgraph.To(importeddocument.Table, importeddocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationitem.DocumentTable, validationitem.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRule queries the rule edge of a ValidationItem.
func (c *ValidationItemClient) QueryRule(_m *ValidationItem) *RuleQuery {
	query := (&RuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationitem.Table, validationitem.FieldID, id),
			sqlgraph.To(rule.Table, rule.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationitem.RuleTable, validationitem.RuleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationItemClient) Hooks() []Hook {
	return c.hooks.ValidationItem
}

// Interceptors returns the client interceptors.
func (c *ValidationItemClient) Interceptors() []Interceptor {
	return c.inters.ValidationItem
}

func (c *ValidationItemClient) mutate(ctx context.Context, m *ValidationItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ImportedDocument, Rule, RuleImage, Technology, ValidationItem []ent.Hook
	}
	inters struct {
		ImportedDocument, Rule, RuleImage, Technology, ValidationItem []ent.Interceptor
	}
)
