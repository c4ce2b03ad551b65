// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"devstack/cli/internal/config"

	"github.com/spf13/cobra"
)

// dburlCmd prints the composed connection URL to stdout, unmasked, for use
// by scripts and other tools. The output is exactly the URL every other
// subcommand derives from the same environment parameters.
var dburlCmd = &cobra.Command{
	Use:   "dburl",
	Short: "Print the database connection URL",

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Read()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.URL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dburlCmd)
}
