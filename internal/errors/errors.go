// Package errors defines typed errors with categories for user-friendly
// reporting. Commands return an E so the root command can present failures
// consistently while callers still match on Kind.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// AuthFailed indicates the submitted credentials matched no account.
	AuthFailed Kind = "auth_failed"
	// ValidationFailed indicates one or more form fields were rejected.
	ValidationFailed Kind = "validation_failed"
	// StorageFailed indicates the persisted auth state could not be
	// read or written.
	StorageFailed Kind = "storage_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *E) Unwrap() error { return e.Err }

// Wrap builds an E around an underlying error.
func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }

// New builds an E without an underlying error.
func New(kind Kind, msg string) *E { return &E{Kind: kind, Message: msg} }
