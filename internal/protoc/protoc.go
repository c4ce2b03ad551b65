// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package protoc drives the containerized protocol-compiler toolchain.
// The toolchain image bundles protoc and its Go plugins so contributors do
// not install compiler versions locally; compilation runs inside a container
// with the repository mounted at a fixed path.
package protoc

import (
	"fmt"
	"path/filepath"
	"sort"

	"devstack/cli/internal/docker"
	"devstack/cli/internal/errors"
)

// ImageTag is the local tag of the toolchain image built by `devstack toolchain`.
const ImageTag = "devstack/protoc"

// Dockerfile is the fixed build file for the toolchain image.
const Dockerfile = "docker/protoc.Dockerfile"

// workdir is where the repository is mounted inside the compiler container.
const workdir = "/work"

// SourceDirs are the two fixed directories scanned for definition files.
var SourceDirs = []string{"proto/api", "proto/rpc"}

// CollectSources globs the definition files under the fixed source
// directories, relative to repoRoot. It fails when no files are found so a
// misplaced checkout does not silently compile nothing.
func CollectSources(repoRoot string) ([]string, error) {
	var files []string
	for _, dir := range SourceDirs {
		matches, err := filepath.Glob(filepath.Join(repoRoot, dir, "*.proto"))
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		for _, m := range matches {
			rel, err := filepath.Rel(repoRoot, m)
			if err != nil {
				return nil, err
			}
			files = append(files, filepath.ToSlash(rel))
		}
	}
	if len(files) == 0 {
		return nil, errors.New(errors.PreconditionFailed,
			fmt.Sprintf("no .proto files found under %v", SourceDirs))
	}
	sort.Strings(files)
	return files, nil
}

// CompileSpec composes the container invocation that regenerates the Go
// server bindings from the given definition files.
func CompileSpec(repoRoot string, sources []string) docker.RunSpec {
	cmd := []string{
		"protoc",
		"-I", ".",
		"--go_out=paths=source_relative:.",
		"--go-grpc_out=paths=source_relative:.",
	}
	cmd = append(cmd, sources...)
	return docker.RunSpec{
		Image:   ImageTag,
		Remove:  true,
		Workdir: workdir,
		Mounts:  []docker.Mount{{Source: repoRoot, Target: workdir}},
		Cmd:     cmd,
	}
}
