// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"devstack/cli/internal/docker"
	"devstack/cli/internal/errors"
	"devstack/cli/internal/protoc"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// protosCmd regenerates the Go server bindings from the protocol definition
// files, running protoc inside the toolchain container with the repository
// mounted at a fixed path.
var protosCmd = &cobra.Command{
	Use:   "protos",
	Short: "Regenerate Go bindings from the protocol definitions",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		engine, err := docker.Find()
		if err != nil {
			return err
		}

		if !engine.ImageExists(ctx, protoc.ImageTag) {
			return errors.New(errors.PreconditionFailed,
				"toolchain image "+protoc.ImageTag+" not found; run devstack toolchain first")
		}

		root, err := os.Getwd()
		if err != nil {
			return err
		}
		sources, err := protoc.CollectSources(root)
		if err != nil {
			return err
		}

		if err := engine.Run(ctx, protoc.CompileSpec(root, sources)); err != nil {
			return err
		}
		pterm.Printf("✓ Compiled %d definition file(s)\n", len(sources))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(protosCmd)
}
