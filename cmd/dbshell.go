// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"devstack/cli/internal/config"
	"devstack/cli/internal/docker"
	"devstack/cli/internal/errors"

	"github.com/spf13/cobra"
)

// dbshellCmd attaches an interactive psql session to the running database
// container, with the password passed through PGPASSWORD.
var dbshellCmd = &cobra.Command{
	Use:   "dbshell",
	Short: "Open an interactive psql shell in the database container",

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

		return engine.Exec(ctx, docker.PsqlExecSpec(cfg, true))
	},
}

func init() {
	rootCmd.AddCommand(dbshellCmd)
}
