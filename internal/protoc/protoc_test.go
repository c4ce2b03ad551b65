// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package protoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeProto(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("syntax = \"proto3\";\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectSources(t *testing.T) {
	root := t.TempDir()
	writeProto(t, root, "proto/api/users.proto")
	writeProto(t, root, "proto/api/events.proto")
	writeProto(t, root, "proto/rpc/internal.proto")
	writeProto(t, root, "proto/api/notes.txt") // ignored

	got, err := CollectSources(root)
	if err != nil {
		t.Fatalf("CollectSources() error: %v", err)
	}
	want := []string{
		"proto/api/events.proto",
		"proto/api/users.proto",
		"proto/rpc/internal.proto",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CollectSources() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectSourcesEmpty(t *testing.T) {
	_, err := CollectSources(t.TempDir())
	if err == nil {
		t.Fatal("expected error when no definition files exist")
	}
}

func TestCompileSpec(t *testing.T) {
	spec := CompileSpec("/repo", []string{"proto/api/users.proto"})
	joined := strings.Join(spec.Args(), " ")

	for _, want := range []string{
		"--rm",
		"-w /work",
		"-v /repo:/work",
		ImageTag,
		"protoc",
		"--go_out=paths=source_relative:.",
		"proto/api/users.proto",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("compile args missing %q in %q", want, joined)
		}
	}
}
