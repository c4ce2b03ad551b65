// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"devstack/cli/internal/docker"
	"devstack/cli/internal/protoc"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// toolchainCmd builds the local protoc toolchain image from its fixed build
// file. The protos command requires this image to exist.
var toolchainCmd = &cobra.Command{
	Use:   "toolchain",
	Short: "Build the protoc toolchain image",

	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := docker.Find()
		if err != nil {
			return err
		}
		if err := engine.Build(cmd.Context(), protoc.ImageTag, protoc.Dockerfile, "."); err != nil {
			return err
		}
		pterm.Println("✓ Toolchain image " + protoc.ImageTag + " built")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolchainCmd)
}
