package query

import "strconv"

// Dialect defines how value placeholders are rendered for the target
// database. Queries are written with ? markers; the dialect rewrites them
// during rendering.
type Dialect interface {
	// Placeholder returns the parameter placeholder for the given 1-based index.
	Placeholder(index int) string
}

// The built-in dialects. Question renders ? markers unchanged and suits
// SQLite and MySQL. Dollar renders $1, $2, ... for PostgreSQL.
var (
	Question Dialect = questionDialect{}
	Dollar   Dialect = dollarDialect{}
)

type questionDialect struct{}

func (questionDialect) Placeholder(int) string { return "?" }

type dollarDialect struct{}

func (dollarDialect) Placeholder(index int) string { return "$" + strconv.Itoa(index) }
