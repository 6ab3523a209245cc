// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/esdguide/ruletracker/gen/ent/importeddocument"
	"github.com/esdguide/ruletracker/gen/ent/predicate"
	"github.com/esdguide/ruletracker/gen/ent/validationitem"
	"github.com/google/uuid"
)

// ImportedDocumentQuery is the builder for querying ImportedDocument entities.
type ImportedDocumentQuery struct {
	config
	ctx                 *QueryContext
	order               []importeddocument.OrderOption
	inters              []Interceptor
	predicates          []predicate.ImportedDocument
	withValidationItems *ValidationItemQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ImportedDocumentQuery builder.
func (_q *ImportedDocumentQuery) Where(ps ...predicate.ImportedDocument) *ImportedDocumentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ImportedDocumentQuery) Limit(limit int) *ImportedDocumentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ImportedDocumentQuery) Offset(offset int) *ImportedDocumentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ImportedDocumentQuery) Unique(unique bool) *ImportedDocumentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ImportedDocumentQuery) Order(o ...importeddocument.OrderOption) *ImportedDocumentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryValidationItems chains the current query on the "validation_items" edge.
func (_q *ImportedDocumentQuery) QueryValidationItems() *ValidationItemQuery {
	query := (&ValidationItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(importeddocument.Table, importeddocument.FieldID, selector),
			sqlgraph.To(validationitem.Table, validationitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, importeddocument.ValidationItemsTable, importeddocument.ValidationItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ImportedDocument entity from the query.
// Returns a *NotFoundError when no ImportedDocument was found.
func (_q *ImportedDocumentQuery) First(ctx context.Context) (*ImportedDocument, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{importeddocument.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ImportedDocumentQuery) FirstX(ctx context.Context) *ImportedDocument {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ImportedDocument ID from the query.
// Returns a *NotFoundError when no ImportedDocument ID was found.
func (_q *ImportedDocumentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{importeddocument.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ImportedDocumentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ImportedDocument entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ImportedDocument entity is found.
// Returns a *NotFoundError when no ImportedDocument entities are found.
func (_q *ImportedDocumentQuery) Only(ctx context.Context) (*ImportedDocument, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{importeddocument.Label}
	default:
		return nil, &NotSingularError{importeddocument.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ImportedDocumentQuery) OnlyX(ctx context.Context) *ImportedDocument {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ImportedDocument ID in the query.
// Returns a *NotSingularError when more than one ImportedDocument ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ImportedDocumentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{importeddocument.Label}
	default:
		err = &NotSingularError{importeddocument.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ImportedDocumentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ImportedDocuments.
func (_q *ImportedDocumentQuery) All(ctx context.Context) ([]*ImportedDocument, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ImportedDocument, *ImportedDocumentQuery]()
	return withInterceptors[[]*ImportedDocument](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ImportedDocumentQuery) AllX(ctx context.Context) []*ImportedDocument {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ImportedDocument IDs.
func (_q *ImportedDocumentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(importeddocument.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ImportedDocumentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ImportedDocumentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ImportedDocumentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ImportedDocumentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ImportedDocumentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ImportedDocumentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ImportedDocumentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ImportedDocumentQuery) Clone() *ImportedDocumentQuery {
	if _q == nil {
		return nil
	}
	return &ImportedDocumentQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]importeddocument.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.ImportedDocument{}, _q.predicates...),
		withValidationItems: _q.withValidationItems.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithValidationItems tells the query-builder to eager-load the nodes that are connected to
// the "validation_items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ImportedDocumentQuery) WithValidationItems(opts ...func(*ValidationItemQuery)) *ImportedDocumentQuery {
	query := (&ValidationItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withValidationItems = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ImportedDocument.Query().
//		GroupBy(importeddocument.FieldFilename).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ImportedDocumentQuery) GroupBy(field string, fields ...string) *ImportedDocumentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ImportedDocumentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = importeddocument.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//	}
//
//	client.ImportedDocument.Query().
//		Select(importeddocument.FieldFilename).
//		Scan(ctx, &v)
func (_q *ImportedDocumentQuery) Select(fields ...string) *ImportedDocumentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ImportedDocumentSelect{ImportedDocumentQuery: _q}
	sbuild.label = importeddocument.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ImportedDocumentSelect configured with the given aggregations.
func (_q *ImportedDocumentQuery) Aggregate(fns ...AggregateFunc) *ImportedDocumentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ImportedDocumentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !importeddocument.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ImportedDocumentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ImportedDocument, error) {
	var (
		nodes       = []*ImportedDocument{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withValidationItems != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ImportedDocument).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ImportedDocument{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withValidationItems; query != nil {
		if err := _q.loadValidationItems(ctx, query, nodes,
			func(n *ImportedDocument) { n.Edges.ValidationItems = []*ValidationItem{} },
			func(n *ImportedDocument, e *ValidationItem) {
				n.Edges.ValidationItems = append(n.Edges.ValidationItems, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ImportedDocumentQuery) loadValidationItems(ctx context.Context, query *ValidationItemQuery, nodes []*ImportedDocument, init func(*ImportedDocument), assign func(*ImportedDocument, *ValidationItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ImportedDocument)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(validationitem.FieldDocumentID)
	}
	query.Where(predicate.ValidationItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(importeddocument.ValidationItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocumentID
		if fk == nil {
			return fmt.Errorf(`foreign-key "document_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "document_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ImportedDocumentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ImportedDocumentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(importeddocument.Table, importeddocument.Columns, sqlgraph.NewFieldSpec(importeddocument.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importeddocument.FieldID)
		for i := range fields {
			if fields[i] != importeddocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ImportedDocumentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(importeddocument.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = importeddocument.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ImportedDocumentGroupBy is the group-by builder for ImportedDocument entities.
type ImportedDocumentGroupBy struct {
	selector
	build *ImportedDocumentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ImportedDocumentGroupBy) Aggregate(fns ...AggregateFunc) *ImportedDocumentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ImportedDocumentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ImportedDocumentQuery, *ImportedDocumentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ImportedDocumentGroupBy) sqlScan(ctx context.Context, root *ImportedDocumentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ImportedDocumentSelect is the builder for selecting fields of ImportedDocument entities.
type ImportedDocumentSelect struct {
	*ImportedDocumentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ImportedDocumentSelect) Aggregate(fns ...AggregateFunc) *ImportedDocumentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ImportedDocumentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ImportedDocumentQuery, *ImportedDocumentSelect](ctx, _s.ImportedDocumentQuery, _s, _s.inters, v)
}

func (_s *ImportedDocumentSelect) sqlScan(ctx context.Context, root *ImportedDocumentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
