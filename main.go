// Package main is the entry point for the devstack CLI.
// It orchestrates the local development environment (PostgreSQL container,
// schema migrations, protoc toolchain) for the server project.
package main

import (
	"devstack/cli/cmd"

	"github.com/joho/godotenv"
)

// main loads an optional .env file from the working directory and hands
// control to the command dispatcher.
func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
