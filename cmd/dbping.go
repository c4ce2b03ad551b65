// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"os"
	"time"

	"devstack/cli/internal/config"
	"devstack/cli/internal/logging"

	"atomicgo.dev/cursor"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dbpingCmd verifies connectivity to the database over the composed URL,
// the same way the server under development reaches it.
var dbpingCmd = &cobra.Command{
	Use:   "dbping",
	Short: "Verify connectivity to the database",

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Read()
		if err != nil {
			return err
		}

		cursor.Hide()
		defer cursor.Show()

		stop := startInlineSpinner(os.Stderr, "verifying connection",
			[]string{"-", "\\", "|", "/"}, 100*time.Millisecond)

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.URL())
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
		}
		stop()

		if err != nil {
			pterm.Println("❌ " + logging.PresentError("database unreachable", err))
			return err
		}

		pterm.Println("✓ Database reachable at " + logging.Mask(cfg.URL()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbpingCmd)
}
