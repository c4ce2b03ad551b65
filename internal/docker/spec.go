// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package docker

import "io"

// Mount describes a bind mount.
type Mount struct {
	Source   string
	Target   string
	ReadOnly bool
}

// RunSpec describes a `docker run` invocation. Args builds the full argument
// vector deterministically so invocations are reproducible and testable.
type RunSpec struct {
	Image   string
	Name    string
	Detach  bool
	Remove  bool
	Network string
	Workdir string
	// Env holds KEY=value pairs in emission order.
	Env    []string
	Mounts []Mount
	// Ports holds host:container publish specs.
	Ports []string
	// Cmd is the command and arguments passed to the container after the image.
	Cmd []string
}

// Args returns the argument vector for the docker binary, excluding the
// binary itself.
func (s RunSpec) Args() []string {
	args := []string{"run"}
	if s.Detach {
		args = append(args, "-d")
	}
	if s.Remove {
		args = append(args, "--rm")
	}
	if s.Name != "" {
		args = append(args, "--name", s.Name)
	}
	if s.Network != "" {
		args = append(args, "--network", s.Network)
	}
	if s.Workdir != "" {
		args = append(args, "-w", s.Workdir)
	}
	for _, e := range s.Env {
		args = append(args, "-e", e)
	}
	for _, m := range s.Mounts {
		spec := m.Source + ":" + m.Target
		if m.ReadOnly {
			spec += ":ro"
		}
		args = append(args, "-v", spec)
	}
	for _, p := range s.Ports {
		args = append(args, "-p", p)
	}
	args = append(args, s.Image)
	args = append(args, s.Cmd...)
	return args
}

// ExecSpec describes a `docker exec` invocation against a running container.
type ExecSpec struct {
	Container   string
	Interactive bool
	TTY         bool
	Env         []string
	Cmd         []string
	// Stdin, when set, replaces the inherited terminal stdin (used by the
	// seed loader to feed a SQL file).
	Stdin io.Reader
}

// Args returns the argument vector for the docker binary.
func (s ExecSpec) Args() []string {
	args := []string{"exec"}
	if s.Interactive {
		args = append(args, "-i")
	}
	if s.TTY {
		args = append(args, "-t")
	}
	for _, e := range s.Env {
		args = append(args, "-e", e)
	}
	args = append(args, s.Container)
	args = append(args, s.Cmd...)
	return args
}
