// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	deverrors "devstack/cli/internal/errors"
)

func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_SSLMODE", "DB_NAME",
		"CONFIG_REFRESH_DURATION", "TARGET_REFRESH_DURATION", "EXPORT_FILE_MAX_RECORDS",
		"DATABASE_URL",
	} {
		unset(t, k)
	}
}

func TestDBURLOutputMatchesEnvironment(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "appdb")
	t.Setenv("DB_SSLMODE", "disable")

	var buf bytes.Buffer
	dburlCmd.SetOut(&buf)
	defer dburlCmd.SetOut(nil)

	if err := dburlCmd.RunE(dburlCmd, nil); err != nil {
		t.Fatalf("dburl error: %v", err)
	}

	want := "postgres://app:pw@127.0.0.1:5433/appdb?sslmode=disable\n"
	if got := buf.String(); got != want {
		t.Errorf("dburl output = %q, want %q", got, want)
	}
}

func TestInitEmitsExportsForEveryVariable(t *testing.T) {
	clearDBEnv(t)

	var buf bytes.Buffer
	initCmd.SetOut(&buf)
	defer initCmd.SetOut(nil)

	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("init error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 9 {
		t.Fatalf("init emitted %d lines, want 9:\n%s", len(lines), out)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "export ") || !strings.Contains(line, "=") {
			t.Errorf("line %q is not an export statement", line)
		}
	}
	if !strings.Contains(out, `export DB_SSLMODE="require"`) {
		t.Errorf("init output missing DB_SSLMODE default:\n%s", out)
	}
	if !strings.Contains(out, `export CONFIG_REFRESH_DURATION="30s"`) {
		t.Errorf("init output missing duration default:\n%s", out)
	}
}

func TestEngineGateExemptions(t *testing.T) {
	// Usage and version output must work without a container engine.
	for _, c := range []struct {
		name        string
		annotations map[string]string
	}{
		{"root", rootCmd.Annotations},
		{"version", versionCmd.Annotations},
	} {
		if c.annotations[skipEngineCheck] != "true" {
			t.Errorf("%s command must skip the engine check", c.name)
		}
	}

	// Operational commands must not be exempt: the missing-engine diagnostic
	// has to fire before any other side effect.
	for _, c := range []struct {
		name        string
		annotations map[string]string
	}{
		{"dbstart", dbstartCmd.Annotations},
		{"dbstop", dbstopCmd.Annotations},
		{"dbmigrate", dbmigrateCmd.Annotations},
		{"dbseed", dbseedCmd.Annotations},
		{"protos", protosCmd.Annotations},
		{"toolchain", toolchainCmd.Annotations},
	} {
		if c.annotations[skipEngineCheck] == "true" {
			t.Errorf("%s command must require the container engine", c.name)
		}
	}
}

func TestExitCodePassthrough(t *testing.T) {
	// A delegated tool's exit status must survive the external_tool wrap,
	// e.g. a migration failing with exit 3 exits this process with 3.
	cause := exec.Command("sh", "-c", "exit 3").Run()
	var exitErr *exec.ExitError
	if !errors.As(cause, &exitErr) {
		t.Fatalf("expected *exec.ExitError from sh, got %v", cause)
	}

	wrapped := deverrors.Wrap(deverrors.ExternalTool, "docker run migrate/migrate failed", cause)
	if got := exitCode(wrapped); got != 3 {
		t.Errorf("exitCode(wrapped exit 3) = %d, want 3", got)
	}

	if got := exitCode(errors.New("dependency_missing: docker not found")); got != 1 {
		t.Errorf("exitCode(recognized failure) = %d, want 1", got)
	}
	if got := exitCode(deverrors.New(deverrors.PreconditionFailed, "already running")); got != 1 {
		t.Errorf("exitCode(precondition failure) = %d, want 1", got)
	}
}

func TestUnknownCommandGetsUsage(t *testing.T) {
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"frobnicate"})
	defer func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unrecognized subcommand")
	}
	if !isUnknownCommand(err) {
		t.Errorf("isUnknownCommand(%q) = false, want true", err.Error())
	}

	if isUnknownCommand(errors.New("external_tool: docker run failed")) {
		t.Error("ordinary runtime errors must not trigger usage output")
	}
}

func TestInlineSpinnerClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := startInlineSpinner(&buf, "working", []string{"|", "/"}, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	stop()

	out := buf.String()
	if !strings.Contains(out, "working") {
		t.Errorf("spinner never rendered its text: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should leave the cursor at line start, got %q", out)
	}
}
