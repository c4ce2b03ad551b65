// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"devstack/cli/internal/config"

	"github.com/spf13/cobra"
)

// initCmd emits shell export statements for the effective configuration so
// the server project and ad-hoc tooling see the same values the database
// container was started with. Intended usage: eval "$(devstack init)".
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Emit shell export statements for the current configuration",
	Long: `The init command prints an "export KEY=value" line for every recognized
environment variable, with defaults applied where the variable is unset.

Typical usage:

  eval "$(devstack init)"`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Read()
		if err != nil {
			return err
		}
		for _, kv := range cfg.Exports() {
			fmt.Fprintf(cmd.OutOrStdout(), "export %s=%q\n", kv[0], kv[1])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
