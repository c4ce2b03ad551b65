// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

// versionCmd reports the CLI version. It works without a container engine.
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show the devstack CLI version",
	Annotations: map[string]string{skipEngineCheck: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("devstack %s\n", Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
