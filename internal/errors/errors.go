// Package errors defines typed errors with categories for user-friendly reporting.
// The CLI distinguishes three failure classes: a required external dependency is
// missing, a precondition for the requested operation does not hold, or an
// external tool exited non-zero. None of them are recovered locally; the
// category decides what remediation hint the user sees.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// DependencyMissing indicates a required external binary (docker) is absent.
	DependencyMissing Kind = "dependency_missing"
	// PreconditionFailed indicates the environment is not in the required state,
	// e.g. the database container is already running or the toolchain image
	// has not been built.
	PreconditionFailed Kind = "precondition_failed"
	// ExternalTool indicates a delegated tool exited non-zero.
	ExternalTool Kind = "external_tool"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
