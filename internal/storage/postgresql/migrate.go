package postgresql

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// Statements splits the embedded schema on ';' and drops empty chunks.
func Statements() []string {
	var out []string
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

// Migrate opens dsn with the lib/pq driver and applies the schema.
func Migrate(ctx context.Context, dsn string) error {
	const op = "storage.postgresql.Migrate"

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return Apply(ctx, db)
}

// Apply runs every schema statement in one transaction.
func Apply(ctx context.Context, db *sql.DB) error {
	const op = "storage.postgresql.Apply"

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, stmt := range Statements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
