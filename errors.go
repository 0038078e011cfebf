package gocompsel

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for invalid registration arguments.
var (
	// ErrNilAction indicates a rule was registered without a body.
	ErrNilAction = errors.New("component selection action cannot be nil")

	// ErrNilSpec indicates a rule was registered without a matching spec.
	ErrNilSpec = errors.New("component selection spec cannot be nil")
)

// BlockSignatureError indicates an untyped rule body whose shape cannot be
// adapted to a RuleAction.
type BlockSignatureError struct {
	Type   reflect.Type // the supplied body's type
	Reason string       // why the shape cannot serve as a rule body
}

func (e *BlockSignatureError) Error() string {
	return fmt.Sprintf("invalid component selection rule body %s: %s", e.Type, e.Reason)
}

// RuleRegistrationError indicates a module-scoped rule could not be
// registered because its module notation text did not parse. The wrapped
// cause is the *coordinates.UnsupportedNotationError describing the text.
type RuleRegistrationError struct {
	Notation string // the notation text as supplied to Module
	Err      error  // the underlying notation failure
}

// Error returns Gradle's registration failure message verbatim, including
// the trailing period.
func (e *RuleRegistrationError) Error() string {
	return fmt.Sprintf("Could not add a component selection rule for module '%s'.", e.Notation)
}

// Unwrap returns the underlying notation error.
func (e *RuleRegistrationError) Unwrap() error {
	return e.Err
}
