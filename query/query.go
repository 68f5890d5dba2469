// Package query provides a typed, fluent API for building and executing SQL
// SELECT statements on top of database/sql.
package query

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
)

// Transaction identifies a queriable database handle. This will most likely be a [sql.DB] or [sql.Tx].
type Transaction interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Query describes a SELECT statement over a Row type. The Row type declares
// the selected columns: each field either carries a `q` struct tag with the
// column expression or has the expression inferred from the field name.
// Example:
//
//	type members struct {
//		ID       int64          `q:"members.id"`
//		Username sql.NullString // inferred as members.username
//	}
//	q := query.From[members]().Where("age = ?", 20).OrderBy("username ASC")
//	results, _ := query.All(context.Background(), db, q, query.Identity[members])
//
// The table name is inferred from the Row type name but may be overwritten
// with [Query.Table]. Clause methods return the receiver so calls can be
// chained. A Query value must not be shared between goroutines.
type Query[Row any] struct {
	stmt statement
}

// From returns a new query for the Row type.
func From[Row any]() *Query[Row] {
	return &Query[Row]{stmt: statement{limit: -1, offset: -1}}
}

// Table overrides the table name inferred from the Row type.
func (q *Query[Row]) Table(name string) *Query[Row] {
	q.stmt.table = name
	return q
}

// Where appends a condition to the WHERE clause. Multiple conditions are
// combined with AND. Value placeholders use ? regardless of dialect.
func (q *Query[Row]) Where(expr string, args ...any) *Query[Row] {
	q.stmt.conds = append(q.stmt.conds, condition{expr: expr, args: args})
	return q
}

// Join appends an INNER JOIN on the supplied table. The on expression may
// contain ? placeholders bound to args.
func (q *Query[Row]) Join(table, on string, args ...any) *Query[Row] {
	q.stmt.joins = append(q.stmt.joins, joinClause{kind: joinInner, table: table, on: on, args: args})
	return q
}

// LeftJoin appends a LEFT JOIN on the supplied table. The on expression may
// contain ? placeholders bound to args.
func (q *Query[Row]) LeftJoin(table, on string, args ...any) *Query[Row] {
	q.stmt.joins = append(q.stmt.joins, joinClause{kind: joinLeft, table: table, on: on, args: args})
	return q
}

// GroupBy appends expressions to the GROUP BY clause.
func (q *Query[Row]) GroupBy(exprs ...string) *Query[Row] {
	q.stmt.groups = append(q.stmt.groups, exprs...)
	return q
}

// Having appends a condition to the HAVING clause. Multiple conditions are
// combined with AND.
func (q *Query[Row]) Having(expr string, args ...any) *Query[Row] {
	q.stmt.havings = append(q.stmt.havings, condition{expr: expr, args: args})
	return q
}

// OrderBy appends expressions to the ORDER BY clause.
func (q *Query[Row]) OrderBy(exprs ...string) *Query[Row] {
	q.stmt.orders = append(q.stmt.orders, exprs...)
	return q
}

// Limit caps the number of returned rows.
func (q *Query[Row]) Limit(n int64) *Query[Row] {
	q.stmt.limit = n
	return q
}

// Offset skips the first n rows of the result.
func (q *Query[Row]) Offset(n int64) *Query[Row] {
	q.stmt.offset = n
	return q
}

// Build renders the SQL statement and its bound arguments using the supplied
// options. A nil options value applies the default namer and dialect.
func (q *Query[Row]) Build(opts *Options) (string, []any) {
	var row Row
	stmt, _ := q.prepare(&row, opts.NameWith())
	return stmt.render(opts.DialectOrDefault())
}

// SQL returns the statement rendered with default options. It is intended
// for logging and tests.
func (q *Query[Row]) SQL() string {
	stmt, _ := q.Build(nil)
	return stmt
}

// All executes the query and returns a collection of results. Each row is
// transformed to the desired Out type using the supplied transform function.
// The caller may use the [Identity] function when Row and Out are equal.
//
// The row value is reused on each iteration; transform functions must copy
// any reference values they retain.
//
// An error is returned if any of the [Transaction] operations fail.
func All[Row, Out any](ctx context.Context, tx Transaction, q *Query[Row], transform Transform[Row, Out]) ([]Out, error) {
	opts := optionsOf(tx)
	var row Row
	stmt, bindings := q.prepare(&row, opts.NameWith())
	sqlStr, args := stmt.render(opts.DialectOrDefault())
	opts.Log(sqlStr, args)

	rows, err := tx.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %v", err)
	}
	defer rows.Close()

	var results []Out
	for rows.Next() {
		if err := rows.Scan(bindings...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		results = append(results, transform(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return results, nil
}

// One is like [All] but returns only the first result of the query. An error
// will be returned if any of the [Transaction] operations fail, including
// [sql.ErrNoRows] when the query matches nothing.
func One[Row, Out any](ctx context.Context, tx Transaction, q *Query[Row], transform Transform[Row, Out]) (Out, error) {
	opts := optionsOf(tx)
	var row Row
	stmt, bindings := q.prepare(&row, opts.NameWith())
	sqlStr, args := stmt.render(opts.DialectOrDefault())
	opts.Log(sqlStr, args)

	err := tx.QueryRowContext(ctx, sqlStr, args...).Scan(bindings...)
	return transform(row), err
}

// Count executes the query with the select list replaced by COUNT(*) and
// returns the matched row count. Ordering and pagination clauses are
// discarded; conditions and joins are preserved.
func Count[Row any](ctx context.Context, tx Transaction, q *Query[Row]) (int64, error) {
	opts := optionsOf(tx)
	var row Row
	stmt, _ := q.prepare(&row, opts.NameWith())
	stmt.columns = []column{{expr: "COUNT(*)"}}
	stmt.orders = nil
	stmt.limit, stmt.offset = -1, -1
	sqlStr, args := stmt.render(opts.DialectOrDefault())
	opts.Log(sqlStr, args)

	var n int64
	err := tx.QueryRowContext(ctx, sqlStr, args...).Scan(&n)
	return n, err
}

// prepare returns the statement completed with the table name and select
// columns derived from the Row type, along with the destination bindings
// suitable for use by [sql.Rows.Scan].
func (q *Query[Row]) prepare(row any, namer Namer) (statement, []any) {
	if namer == nil {
		namer = defaultNamer
	}
	typ := reflect.TypeOf(row).Elem()
	val := reflect.ValueOf(row).Elem()

	stmt := q.stmt
	if stmt.table == "" {
		stmt.table = namer.Table(typeInfo{typ})
	}
	stmt.columns = make([]column, 0, typ.NumField())
	bindings := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		fld := typ.Field(i)
		col := column{expr: fld.Tag.Get("q")}
		if col.expr == "" {
			col.expr = namer.Column(fieldInfo{fld})
			col.qualify = true
		}
		stmt.columns = append(stmt.columns, col)
		bindings = append(bindings, val.Field(i).Addr().Interface())
	}
	if len(stmt.columns) == 0 {
		panic(fmt.Errorf("%T: row type must declare at least one column field", row))
	}

	return stmt, bindings
}
