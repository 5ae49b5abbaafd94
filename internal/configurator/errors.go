// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import (
	"errors"
	"fmt"
)

// Failure kinds reported by [Configurator.Mirror]. Every one of them is fatal
// for the bind pass; callers are expected to stop the process.
var (
	// ErrMissingRequiredValue indicates that a field tagged as required has no
	// value in the source file nor in the process environment.
	ErrMissingRequiredValue = errors.New("no value for required field")
	// ErrUnsupportedType indicates that a field type has neither a built-in
	// coercion rule nor a registered adapter.
	ErrUnsupportedType = errors.New("no adapter for field")
	// ErrConversionFailure indicates that a raw value could not be converted to
	// the field type.
	ErrConversionFailure = errors.New("cannot convert field value")
	// ErrAccessFailure indicates that a field cannot be written (for example,
	// an unexported field that is not ignored).
	ErrAccessFailure = errors.New("field is not settable")
	// ErrInvalidTarget is returned when Mirror receives anything but a non-nil
	// pointer to a struct.
	ErrInvalidTarget = errors.New("target must be a non-nil pointer to a struct")
)

// FieldError describes a failed bind of a single field.
//
// Kind is one of the sentinel errors above, Cause is the underlying error if
// there is one (parse errors, adapter errors). Both are reachable through
// errors.Is and errors.As.
type FieldError struct {
	Field string
	Key   string
	Kind  error
	Cause error
}

func (e *FieldError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%v `%s` [key=%s]", e.Kind, e.Field, e.Key)
	}

	return fmt.Sprintf("%v `%s` [key=%s]: %v", e.Kind, e.Field, e.Key, e.Cause)
}

func (e *FieldError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}
