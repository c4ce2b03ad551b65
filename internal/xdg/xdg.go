// Package xdg provides helpers to resolve XDG Base Directory paths for devstack.
// It implements the XDG Base Directory specification for determining the
// state directory holding the TLS certificate store, with fallback to the
// traditional location when XDG environment variables are not set and private
// permissions enforced throughout.
package xdg

import (
	"os"
	"path/filepath"
)

// StateDir returns the XDG state directory for devstack.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/devstack when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(base, "devstack")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// CertsDir returns the directory holding the generated TLS certificate bundle
// for the local database container, nested under the state dir.
func CertsDir() (string, error) {
	state, err := StateDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(state, "certs")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
