// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"devstack/cli/internal/certs"
	"devstack/cli/internal/config"
	"devstack/cli/internal/docker"
	"devstack/cli/internal/errors"
	"devstack/cli/internal/logging"
	"devstack/cli/internal/xdg"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dbstartCmd brings up the TLS-enabled database container. The certificate
// bundle is regenerated wholesale on every start; a start against an
// already-running container fails fast without touching anything.
var dbstartCmd = &cobra.Command{
	Use:   "dbstart",
	Short: "Start the local PostgreSQL container with TLS enabled",
	Long: `The dbstart command provisions a fresh self-signed certificate bundle,
pulls the database image, and launches the devstack-postgres container with
SSL forced on and the configured credentials. It refuses to start when the
container is already running; use dbstop first to recreate it.`,

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

		if engine.IsRunning(ctx, config.ContainerName) {
			return errors.New(errors.PreconditionFailed,
				config.ContainerName+" is already running; run devstack dbstop first")
		}

		certsDir, err := xdg.CertsDir()
		if err != nil {
			return err
		}
		bundle, err := certs.Provision(certs.Options{
			Dir:      certsDir,
			OwnerUID: config.PostgresUID,
		})
		if err != nil {
			return err
		}
		pterm.Println("✓ Certificate bundle regenerated in " + certsDir)

		if err := engine.Pull(ctx, config.PostgresImage); err != nil {
			return err
		}

		// A stopped leftover with the fixed name would make docker run fail;
		// it is not "running", so removing it here is safe.
		engine.RemoveForce(ctx, config.ContainerName)

		if err := engine.Run(ctx, docker.PostgresRunSpec(cfg, bundle)); err != nil {
			return err
		}

		pterm.Println("✓ " + config.ContainerName + " is up")
		pterm.Println("  " + logging.Mask(cfg.URL()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbstartCmd)
}
