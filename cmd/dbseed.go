// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"devstack/cli/internal/config"
	"devstack/cli/internal/docker"
	"devstack/cli/internal/errors"
	"devstack/cli/internal/seed"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var seedNative bool

// dbseedCmd pipes the static seed SQL file into the running database
// container. With --native the file is executed over a direct pgx connection
// in a single transaction instead of going through psql.
var dbseedCmd = &cobra.Command{
	Use:   "dbseed",
	Short: "Load test data from " + seed.DefaultFile + " into the database",

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

		if !engine.IsRunning(ctx, config.ContainerName) {
			return errors.New(errors.PreconditionFailed,
				config.ContainerName+" is not running; run devstack dbstart first")
		}

		if seedNative {
			if err := seed.ApplyNative(ctx, cfg.URL(), seed.DefaultFile); err != nil {
				return err
			}
			pterm.Println("✓ Seed data loaded (native)")
			return nil
		}

		f, err := os.Open(seed.DefaultFile)
		if err != nil {
			return errors.Wrap(errors.PreconditionFailed, "opening seed file", err)
		}
		defer func() {
			_ = f.Close()
		}()

		spec := docker.PsqlExecSpec(cfg, false)
		spec.Stdin = f
		if err := engine.Exec(ctx, spec); err != nil {
			return err
		}
		pterm.Println("✓ Seed data loaded")
		return nil
	},
}

func init() {
	dbseedCmd.Flags().BoolVar(&seedNative, "native", false,
		"execute the seed file over a direct connection instead of psql in the container")
	rootCmd.AddCommand(dbseedCmd)
}
