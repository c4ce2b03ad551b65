// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package migrate runs schema migrations against the development database.
//
// The default path mirrors production tooling: the migrate image runs in a
// disposable container on the host network with the migrations directory
// mounted read-only. The native path runs golang-migrate in-process, which is
// faster and works without pulling the image; both consume the same composed
// connection URL and migration files.
package migrate

import (
	"fmt"
	"path/filepath"
	"strconv"

	"devstack/cli/internal/docker"
	"devstack/cli/internal/errors"

	gomigrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Image is the migration tool image used for container runs.
const Image = "migrate/migrate:v4.18.2"

// containerDir is where the migrations directory is mounted inside the
// disposable container.
const containerDir = "/migrations"

// DefaultDir is the migrations directory relative to the repository root.
const DefaultDir = "migrations"

// ContainerSpec composes the disposable-container invocation of the migrate
// tool. Args defaults to ["up"] when empty.
func ContainerSpec(migrationsDir, dbURL string, args []string) (docker.RunSpec, error) {
	abs, err := filepath.Abs(migrationsDir)
	if err != nil {
		return docker.RunSpec{}, fmt.Errorf("resolving migrations dir: %w", err)
	}
	if len(args) == 0 {
		args = []string{"up"}
	}
	cmd := append([]string{"-path", containerDir, "-database", dbURL}, args...)
	return docker.RunSpec{
		Image:   Image,
		Remove:  true,
		Network: "host",
		Mounts:  []docker.Mount{{Source: abs, Target: containerDir, ReadOnly: true}},
		Cmd:     cmd,
	}, nil
}

// action is a parsed native migration command, validated before any
// database connection is opened.
type action struct {
	name    string
	steps   int
	hasN    bool
	version int
}

// parseArgs validates the argument forms shared with the container path:
// up [N], down [N], force V, version, drop. No arguments means up.
func parseArgs(args []string) (action, error) {
	if len(args) == 0 {
		args = []string{"up"}
	}
	a := action{name: args[0]}
	switch a.name {
	case "up", "down":
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return a, fmt.Errorf("%s: invalid step count %q", a.name, args[1])
			}
			a.steps = n
			a.hasN = true
		}
	case "force":
		if len(args) < 2 {
			return a, fmt.Errorf("force requires a version argument")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return a, fmt.Errorf("force: invalid version %q", args[1])
		}
		a.version = v
	case "version", "drop":
	default:
		return a, fmt.Errorf("unsupported migration command %q (use up, down, force, version, drop)", a.name)
	}
	return a, nil
}

// RunNative applies migrations in-process via golang-migrate.
func RunNative(migrationsDir, dbURL string, args []string) error {
	a, err := parseArgs(args)
	if err != nil {
		return err
	}

	m, err := gomigrate.New("file://"+migrationsDir, dbURL)
	if err != nil {
		return errors.Wrap(errors.ExternalTool, "initializing migrations", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	switch a.name {
	case "up":
		if a.hasN {
			return ignoreNoChange(m.Steps(a.steps))
		}
		return ignoreNoChange(m.Up())
	case "down":
		if a.hasN {
			return ignoreNoChange(m.Steps(-a.steps))
		}
		return ignoreNoChange(m.Down())
	case "force":
		return m.Force(a.version)
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return ignoreNoChange(err)
		}
		if dirty {
			fmt.Printf("%d (dirty)\n", v)
		} else {
			fmt.Printf("%d\n", v)
		}
		return nil
	default: // drop
		return m.Drop()
	}
}

// ignoreNoChange treats an already-up-to-date schema as success, matching the
// migrate CLI's behavior.
func ignoreNoChange(err error) error {
	if err == nil || err == gomigrate.ErrNoChange {
		return nil
	}
	return errors.Wrap(errors.ExternalTool, "migration failed", err)
}
