package query

import (
	"strconv"
	"strings"
)

// column identifies a select column. It contains the column expression and a
// qualify flag. If qualify is set, the rendered expression is prefixed with
// the current table name. This prevents overlapping column names in joins.
type column struct {
	expr    string
	qualify bool
}

// join identifies a join type that specifies how tables should be joined.
type join int

// The available join models.
const (
	joinInner join = iota
	joinLeft
)

// joinClause identifies a single JOIN with its ON expression and bound
// arguments.
type joinClause struct {
	kind  join
	table string
	on    string
	args  []any
}

// condition identifies a WHERE or HAVING expression and its bound arguments.
type condition struct {
	expr string
	args []any
}

// statement represents the properties of a query. It is used to facilitate
// the generation of a SQL query.
type statement struct {
	table   string
	columns []column
	joins   []joinClause
	conds   []condition
	groups  []string
	havings []condition
	orders  []string
	limit   int64
	offset  int64
}

// render returns the SQL query specified by the statement structure together
// with the arguments collected in clause order: joins first, then conditions,
// then having expressions.
func (s *statement) render(d Dialect) (string, []any) {
	var query strings.Builder
	var args []any
	var n int

	query.WriteString("SELECT ")
	for i, col := range s.columns {
		if i > 0 {
			query.WriteString(", ")
		}
		if col.qualify {
			query.WriteString(s.table)
			query.WriteByte('.')
		}
		query.WriteString(col.expr)
	}
	query.WriteString(" FROM ")
	query.WriteString(s.table)

	for _, j := range s.joins {
		switch j.kind {
		case joinInner:
			query.WriteString(" INNER JOIN ")
		case joinLeft:
			query.WriteString(" LEFT JOIN ")
		}
		query.WriteString(j.table)
		query.WriteString(" ON ")
		expand(&query, j.on, d, &n)
		args = append(args, j.args...)
	}

	if len(s.conds) > 0 {
		query.WriteString(" WHERE ")
		args = writeConditions(&query, s.conds, d, &n, args)
	}
	if len(s.groups) > 0 {
		query.WriteString(" GROUP BY ")
		query.WriteString(strings.Join(s.groups, ", "))
	}
	if len(s.havings) > 0 {
		query.WriteString(" HAVING ")
		args = writeConditions(&query, s.havings, d, &n, args)
	}
	if len(s.orders) > 0 {
		query.WriteString(" ORDER BY ")
		query.WriteString(strings.Join(s.orders, ", "))
	}
	if s.limit >= 0 {
		query.WriteString(" LIMIT ")
		query.WriteString(strconv.FormatInt(s.limit, 10))
	}
	if s.offset >= 0 {
		query.WriteString(" OFFSET ")
		query.WriteString(strconv.FormatInt(s.offset, 10))
	}

	return query.String(), args
}

// writeConditions writes AND-combined parenthesized expressions and appends
// their arguments.
func writeConditions(query *strings.Builder, conds []condition, d Dialect, n *int, args []any) []any {
	for i, cond := range conds {
		if i > 0 {
			query.WriteString(" AND ")
		}
		query.WriteByte('(')
		expand(query, cond.expr, d, n)
		query.WriteByte(')')
		args = append(args, cond.args...)
	}
	return args
}

// expand writes expr with each ? marker replaced by the dialect placeholder
// for the next running argument index. Markers inside quoted literals are not
// detected; bind literal values through arguments instead.
func expand(query *strings.Builder, expr string, d Dialect, n *int) {
	for _, r := range expr {
		if r == '?' {
			*n++
			query.WriteString(d.Placeholder(*n))
			continue
		}
		query.WriteRune(r)
	}
}
