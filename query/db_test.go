package query_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/als904204/go-querydsl/query"
)

func TestOpen(t *testing.T) {
	db, err := query.Open("sqlite3", ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	type missing struct{ Name string }
	_, err = query.One(context.Background(), db, query.From[missing](), query.Identity[missing])
	if err == nil || err.Error() != "no such table: missing" {
		t.Errorf("unexpected error; got: %v", err)
	}
}

func TestOptionsLog(t *testing.T) {
	runDB(t, "DB", func(t *testing.T, db *sql.DB) {
		var loggedQuery string
		dbh := query.Wrap(db, &query.Options{Logger: func(query string, args []any) { loggedQuery = query }})

		type teams struct{ Name string }
		if _, err := query.All(context.Background(), dbh, query.From[teams](), query.Identity[teams]); err != nil {
			t.Fatalf("failed to get: %v", err)
		}

		const exp = "SELECT teams.name FROM teams"
		if loggedQuery != exp {
			t.Errorf("expected query to be: %q; got: %q", exp, loggedQuery)
		}
	})

	runDB(t, "Tx", func(t *testing.T, db *sql.DB) {
		var loggedQuery string
		dbh := query.Wrap(db, &query.Options{Logger: func(query string, args []any) { loggedQuery = query }})

		tx, err := dbh.Begin()
		if err != nil {
			t.Fatalf("failed to begin transaction: %v", err)
		}
		defer tx.Rollback()

		type teams struct{ Name string }
		if _, err := query.All(context.Background(), tx, query.From[teams](), query.Identity[teams]); err != nil {
			t.Fatalf("failed to get: %v", err)
		}

		const exp = "SELECT teams.name FROM teams"
		if loggedQuery != exp {
			t.Errorf("expected query to be: %q; got: %q", exp, loggedQuery)
		}
	})

	runDB(t, "BeginTx", func(t *testing.T, db *sql.DB) {
		var loggedQuery string
		dbh := query.Wrap(db, &query.Options{Logger: func(query string, args []any) { loggedQuery = query }})

		tx, err := dbh.BeginTx(context.Background(), &sql.TxOptions{ReadOnly: true})
		if err != nil {
			t.Fatalf("failed to begin transaction: %v", err)
		}
		defer tx.Rollback()

		type teams struct{ Name string }
		if _, err := query.All(context.Background(), tx, query.From[teams](), query.Identity[teams]); err != nil {
			t.Fatalf("failed to get: %v", err)
		}

		const exp = "SELECT teams.name FROM teams"
		if loggedQuery != exp {
			t.Errorf("expected query to be: %q; got: %q", exp, loggedQuery)
		}
	})
}

func TestOptionsNamer(t *testing.T) {
	runDB(t, "Custom", func(t *testing.T, db *sql.DB) {
		dbh := query.Wrap(db, &query.Options{Namer: testNamer{}})

		type people struct{ UserName string }
		q := query.From[people]().Where("username = ?", "member1")
		person, err := query.One(context.Background(), dbh, q, query.Identity[people])
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}

		const exp = "member1"
		if person.UserName != exp {
			t.Errorf("expected name to be: %q; got: %q", exp, person.UserName)
		}
	})
}

type testNamer struct{}

func (t testNamer) Table(info query.ElementInfo) string  { return "members" }
func (t testNamer) Column(info query.ElementInfo) string { return "username" }
