// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the devstack CLI.
// It implements the subcommands that orchestrate the local development
// environment — database container lifecycle, TLS certificates, schema
// migrations, seed data, and the protoc toolchain — using the Cobra CLI
// framework. Each invocation is an independent action; no state is carried
// between runs, the container runtime owns everything.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"devstack/cli/internal/docker"

	"github.com/spf13/cobra"
)

// skipEngineCheck marks commands that must work without a container engine
// installed (usage output and version reporting).
const skipEngineCheck = "devstack_skip_engine_check"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "devstack",
	Short:         "Local development environment for the server project",
	Long: `Devstack orchestrates the local development environment: a TLS-enabled
PostgreSQL container, schema migrations, seed data, and the containerized
protoc toolchain. Configuration comes from DB_* environment variables (or a
.env file); run "devstack init" to see the effective values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Annotations:   map[string]string{skipEngineCheck: "true"},
	// Every operational subcommand needs the container engine; verifying it
	// here guarantees the diagnostic fires before any other side effect.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipEngineCheck] == "true" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		_, err := docker.Find()
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Usage goes to stderr so stdout stays clean for scripted callers.
		cmd.SetOut(os.Stderr)
		return cmd.Help()
	},
}

// Execute runs the CLI application. Any error is printed to stderr;
// recognized failures exit with status 1, while external-tool failures pass
// the delegated command's own exit code through. Unrecognized subcommands
// additionally get the usage text.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isUnknownCommand(err) {
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps an Execute error to the process exit status. A wrapped
// *exec.ExitError carries the delegated tool's exit code (migration tool,
// compiler, docker itself) and is passed through verbatim; everything else
// is a recognized failure and exits 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// isUnknownCommand reports whether err is cobra's unrecognized-subcommand
// error, the one case where usage goes to stderr alongside the message.
func isUnknownCommand(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown command")
}
