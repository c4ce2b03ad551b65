// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"devstack/cli/internal/config"
	"devstack/cli/internal/docker"
	"devstack/cli/internal/migrate"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var migrateNative bool

// dbmigrateCmd runs schema migrations against the composed connection URL.
// Arguments are forwarded to the migrate tool verbatim; no arguments means
// "up". The default mode runs the migrate image in a disposable container on
// the host network; --native runs golang-migrate in-process.
var dbmigrateCmd = &cobra.Command{
	Use:   "dbmigrate [args...]",
	Short: "Run schema migrations against the database",
	Long: `The dbmigrate command applies versioned schema changes from the ` + migrate.DefaultDir + `
directory. Arguments are passed through to the migrate tool (up, down N,
force V, version, drop); with no arguments all pending migrations are applied.

A non-zero exit from the migration tool fails the command as-is.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		engine, err := docker.Find()
		if err != nil {
			return err
		}
		cfg, err := config.Read()
		if err != nil {
			return err
		}

		if migrateNative {
			if err := migrate.RunNative(migrate.DefaultDir, cfg.URL(), args); err != nil {
				return err
			}
			pterm.Println("✓ Migrations applied (native)")
			return nil
		}

		spec, err := migrate.ContainerSpec(migrate.DefaultDir, cfg.URL(), args)
		if err != nil {
			return err
		}
		return engine.Run(ctx, spec)
	},
}

func init() {
	dbmigrateCmd.Flags().BoolVar(&migrateNative, "native", false,
		"run migrations in-process instead of via the migrate container image")
	rootCmd.AddCommand(dbmigrateCmd)
}
