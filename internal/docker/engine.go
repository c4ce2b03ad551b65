// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package docker wraps invocations of the docker binary.
// Every operation here is a thin subprocess call with inherited stdio; the
// container runtime owns all state, and the helpers keep consistent
// diagnostics and exit-code propagation across the CLI.
package docker

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"devstack/cli/internal/errors"
)

// Engine invokes a docker binary found on PATH.
type Engine struct {
	bin string
}

// Find locates the docker binary. It returns a dependency_missing error when
// no container engine is installed; callers surface it before attempting any
// other side effect.
func Find() (*Engine, error) {
	bin, err := exec.LookPath("docker")
	if err != nil {
		return nil, errors.Wrap(errors.DependencyMissing,
			"docker is required but was not found on PATH", err)
	}
	return &Engine{bin: bin}, nil
}

// IsRunning reports whether the named container's status is exactly "running".
// Absent containers and inspect failures both report false.
func (e *Engine) IsRunning(ctx context.Context, name string) bool {
	cmd := exec.CommandContext(ctx, e.bin, "inspect", "--format", "{{.State.Status}}", name)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return false
	}
	return strings.TrimSpace(out.String()) == "running"
}

// ImageExists reports whether the given image tag is present locally.
func (e *Engine) ImageExists(ctx context.Context, tag string) bool {
	cmd := exec.CommandContext(ctx, e.bin, "image", "inspect", tag)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

// Pull fetches an image, streaming docker's progress output to the terminal.
func (e *Engine) Pull(ctx context.Context, image string) error {
	if err := e.passthrough(ctx, "pull", image); err != nil {
		return errors.Wrap(errors.ExternalTool, "docker pull "+image+" failed", err)
	}
	return nil
}

// Build builds an image from the given dockerfile and context directory.
func (e *Engine) Build(ctx context.Context, tag, dockerfile, contextDir string) error {
	if err := e.passthrough(ctx, "build", "-t", tag, "-f", dockerfile, contextDir); err != nil {
		return errors.Wrap(errors.ExternalTool, "docker build "+tag+" failed", err)
	}
	return nil
}

// RemoveForce force-removes the named container. Removal of a non-existent
// container is not an error; stop must be idempotent.
func (e *Engine) RemoveForce(ctx context.Context, name string) {
	cmd := exec.CommandContext(ctx, e.bin, "rm", "-f", name)
	cmd.Stdout = nil
	cmd.Stderr = nil
	_ = cmd.Run()
}

// Run launches a container from the spec, streaming output to the terminal.
func (e *Engine) Run(ctx context.Context, spec RunSpec) error {
	if err := e.passthrough(ctx, spec.Args()...); err != nil {
		return errors.Wrap(errors.ExternalTool, "docker run "+spec.Image+" failed", err)
	}
	return nil
}

// Exec attaches to a running container per the spec. When spec.Stdin is nil
// the process inherits the terminal's stdin, which docker needs for
// interactive sessions.
func (e *Engine) Exec(ctx context.Context, spec ExecSpec) error {
	cmd := exec.CommandContext(ctx, e.bin, spec.Args()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if spec.Stdin != nil {
		cmd.Stdin = spec.Stdin
	} else {
		cmd.Stdin = os.Stdin
	}
	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.ExternalTool, "docker exec in "+spec.Container+" failed", err)
	}
	return nil
}

// passthrough runs docker with inherited stdout and stderr.
func (e *Engine) passthrough(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, e.bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
