package query

import (
	"context"
	"database/sql"
)

// Options identifies optional parameters that may be used when performing
// queries. Default struct values signify default behaviour.
type Options struct {
	// Namer overrides inferred table and column naming.
	Namer Namer
	// Logger receives every rendered statement and its arguments.
	Logger func(query string, args []any)
	// Dialect controls placeholder rendering. Defaults to [Question].
	Dialect Dialect
}

// NameWith returns the defined Namer option or nil.
func (o *Options) NameWith() Namer {
	if o == nil {
		return nil
	}
	return o.Namer
}

// DialectOrDefault returns the configured dialect, falling back to [Question].
func (o *Options) DialectOrDefault() Dialect {
	if o == nil || o.Dialect == nil {
		return Question
	}
	return o.Dialect
}

// Log calls the [Options.Logger] function if defined in the [Options].
func (o *Options) Log(query string, args []any) {
	if o == nil || o.Logger == nil {
		return
	}
	o.Logger(query, args)
}

// DB identifies a query database handle that wraps [sql.DB] for use as a
// transaction in query operations. Its use is not required, but adds options
// not available when using [sql.DB] or [sql.Tx] directly.
type DB struct {
	*sql.DB
	*Options
}

// Open opens a new database connection using the supplied options.
func Open(driverName, dataSource string, options *Options) (*DB, error) {
	db, err := sql.Open(driverName, dataSource)
	return &DB{DB: db, Options: options}, err
}

// Wrap adapts an existing [sql.DB] handle, typically obtained from an ORM
// connection, so query operations pick up the supplied options.
func Wrap(db *sql.DB, options *Options) *DB {
	return &DB{DB: db, Options: options}
}

// Begin returns a new transaction with options using [sql.DB.Begin].
func (d *DB) Begin() (*Tx, error) {
	return d.BeginTx(context.Background(), nil)
}

// BeginTx returns a new transaction with options using [sql.DB.BeginTx].
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := d.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, Options: d.Options}, nil
}

// Tx identifies a transaction that also provides query options.
type Tx struct {
	*sql.Tx
	*Options
}

// optioned identifies transactions that carry query options.
type optioned interface {
	options() *Options
}

func (d DB) options() *Options { return d.Options }
func (t Tx) options() *Options { return t.Options }

// optionsOf extracts options from a transaction handle, returning nil when
// the handle carries none.
func optionsOf(tx Transaction) *Options {
	if o, ok := tx.(optioned); ok {
		return o.options()
	}
	return nil
}
