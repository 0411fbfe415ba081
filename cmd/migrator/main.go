package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/storage/postgresql"
)

func main() {
	var dsn string
	flag.StringVar(&dsn, "dsn", "", "postgres connection string")
	flag.Parse()

	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if dsn == "" {
		log.Error("dsn is required: pass --dsn or set DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := postgresql.Migrate(ctx, dsn); err != nil {
		log.Error("migration failed", sl.Err(err))
		os.Exit(1)
	}

	log.Info("schema applied", slog.Int("statements", len(postgresql.Statements())))
}
