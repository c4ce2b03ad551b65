// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyNativeMissingFile(t *testing.T) {
	err := ApplyNative(context.Background(), "postgres://u:p@localhost:5432/db", filepath.Join(t.TempDir(), "absent.sql"))
	if err == nil {
		t.Fatal("expected error for missing seed file")
	}
	if !strings.Contains(err.Error(), "absent.sql") {
		t.Errorf("error should name the seed file, got %q", err.Error())
	}
}

func TestApplyNativeRejectsBadURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.sql")
	if err := os.WriteFile(path, []byte("SELECT 1;"), 0o600); err != nil {
		t.Fatal(err)
	}
	err := ApplyNative(context.Background(), "::not-a-url::", path)
	if err == nil {
		t.Fatal("expected error for malformed connection URL")
	}
	if !strings.Contains(err.Error(), "connection URL") {
		t.Errorf("error should mention the connection URL, got %q", err.Error())
	}
}
