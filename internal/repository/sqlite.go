package repository

import (
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/esdguide/ruletracker/gen/ent"
)

// OpenSQLite opens an Ent client backed by a file-based or in-memory
// SQLite database. Used for local development and for exercising the
// validation state machine in tests without a running Postgres.
func OpenSQLite(dsn string) (*ent.Client, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	return ent.NewClient(ent.Driver(drv)), nil
}

// InMemorySQLiteDSN is a shared-cache in-memory database, suitable for
// a single test's lifetime.
const InMemorySQLiteDSN = "file:ruletracker?mode=memory&cache=shared"
