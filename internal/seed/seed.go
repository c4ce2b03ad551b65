// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package seed loads the static test-data SQL file into the development
// database. The default path pipes the file into psql inside the running
// container; ApplyNative executes it over a direct pgx connection instead,
// which is useful when the psql client inside the container is unavailable
// or when seeding a non-containerized database.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
)

// DefaultFile is the seed SQL file relative to the repository root.
const DefaultFile = "db/seed.sql"

// ApplyNative executes the SQL file over a pgx connection inside a single
// transaction. The simple query protocol lets the file contain multiple
// statements without client-side splitting.
func ApplyNative(ctx context.Context, dbURL, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file %s: %w", path, err)
	}

	connCfg, err := pgx.ParseConfig(dbURL)
	if err != nil {
		return fmt.Errorf("parsing connection URL: %w", err)
	}
	connCfg.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		_ = conn.Close(ctx)
	}()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, string(script)); err != nil {
		return fmt.Errorf("executing seed file: %w", err)
	}

	return tx.Commit(ctx)
}
