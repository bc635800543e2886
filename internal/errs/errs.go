// Package errs defines the portal-wide error kinds. Sentinels allow the
// outer shell to map failures to user-facing messages with errors.Is;
// structured kinds carry the detail a message needs.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: unknown tracking number or email. No write performed.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate: registration email collision.
	ErrDuplicate = errors.New("already exists")
	// ErrNetwork: persistence unreachable. Surfaced as transient; the
	// caller may retry manually, this layer never retries on its own.
	ErrNetwork = errors.New("store unreachable")
)

// ValidationError reports missing or invalid create-time input. It is
// recovered locally and surfaced as a user-facing message; the triggering
// operation performs no write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports an illegal status change. The stored
// record is left untouched.
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move shipment from %q to %q", e.From, e.To)
}

// MappingError reports a record missing its structurally required
// identifier (tracking number for shipments, email for users). It is
// fatal to the operation that hit it: logged, then aborted.
type MappingError struct {
	Entity string
	Field  string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s record missing required %s", e.Entity, e.Field)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var v *InvalidTransitionError
	return errors.As(err, &v)
}
