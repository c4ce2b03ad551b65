// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package migrate

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestContainerSpecDefaultsToUp(t *testing.T) {
	spec, err := ContainerSpec("migrations", "postgres://u:p@localhost:5432/db?sslmode=require", nil)
	if err != nil {
		t.Fatalf("ContainerSpec() error: %v", err)
	}

	args := spec.Args()
	joined := strings.Join(args, " ")

	if args[len(args)-1] != "up" {
		t.Errorf("last arg = %q, want default subcommand up", args[len(args)-1])
	}
	if !strings.Contains(joined, "--rm") {
		t.Error("disposable container must carry --rm")
	}
	if !strings.Contains(joined, "--network host") {
		t.Error("migration container must run on the host network")
	}
	if !strings.Contains(joined, ":/migrations:ro") {
		t.Errorf("migrations dir must be mounted read-only, got %q", joined)
	}

	abs, _ := filepath.Abs("migrations")
	if !strings.Contains(joined, abs+":/migrations:ro") {
		t.Errorf("mount should use the absolute migrations path, got %q", joined)
	}
}

func TestContainerSpecPassesArgsThrough(t *testing.T) {
	spec, err := ContainerSpec("migrations", "postgres://u:p@h:5432/db", []string{"down", "1"})
	if err != nil {
		t.Fatalf("ContainerSpec() error: %v", err)
	}
	joined := strings.Join(spec.Args(), " ")
	if !strings.HasSuffix(joined, "-path /migrations -database postgres://u:p@h:5432/db down 1") {
		t.Errorf("args should end with the forwarded subcommand, got %q", joined)
	}
}

func TestRunNativeRejectsUnknownCommand(t *testing.T) {
	dir := t.TempDir()
	err := RunNative(dir, "postgres://u:p@localhost:1/db?sslmode=disable", []string{"sideways"})
	if err == nil {
		t.Fatal("expected error for unsupported migration command")
	}
	if !strings.Contains(err.Error(), "sideways") {
		t.Errorf("error should name the bad command, got %q", err.Error())
	}
}

func TestRunNativeValidatesNumericArgs(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"down", "many"},
		{"up", "few"},
		{"force", "x"},
		{"force"},
	} {
		if err := RunNative(dir, "postgres://u:p@localhost:1/db?sslmode=disable", args); err == nil {
			t.Errorf("RunNative(%v) expected error", args)
		}
	}
}
