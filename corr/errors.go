package corr

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for correlation dispatch and property lookup.
var (
	// ErrUnknownMethod indicates a method name not registered for the scenario.
	ErrUnknownMethod = errors.New("corr: unknown method")

	// ErrMissingInput indicates a method was selected without one of its
	// mandatory inputs.
	ErrMissingInput = errors.New("corr: missing required input")
)

// UnknownMethodError reports an unrecognized method identifier together
// with the scenario's valid names.
type UnknownMethodError struct {
	Scenario string
	Name     string
	Valid    []string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("%s: unknown method %q; valid methods are: %s",
		e.Scenario, e.Name, strings.Join(e.Valid, ", "))
}

func (e *UnknownMethodError) Unwrap() error {
	return ErrUnknownMethod
}

// MissingInputError reports a method invoked without inputs it cannot
// run without. Optional inputs never produce this error; their absence
// only skips the correction term they drive.
type MissingInputError struct {
	Scenario string
	Method   string
	Inputs   []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: method %q requires: %s",
		e.Scenario, e.Method, strings.Join(e.Inputs, ", "))
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}
