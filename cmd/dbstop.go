// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"devstack/cli/internal/config"
	"devstack/cli/internal/docker"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dbstopCmd force-removes the database container. Stopping a container that
// does not exist is not an error; the command is idempotent.
var dbstopCmd = &cobra.Command{
	Use:   "dbstop",
	Short: "Stop and remove the local PostgreSQL container",

	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := docker.Find()
		if err != nil {
			return err
		}
		engine.RemoveForce(cmd.Context(), config.ContainerName)
		pterm.Println("✓ " + config.ContainerName + " removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbstopCmd)
}
