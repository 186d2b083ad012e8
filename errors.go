package nullsafety

import "fmt"

// AbsenceError reports a violated non-absence contract: a value whose
// static type forbids absence held the absence marker at runtime.
// It is constructed at the point of detection and returned (or panicked)
// immediately; it is never stored or reused.
type AbsenceError struct {
	msg string
}

// NewExpressionError builds the error for a checked expression that
// unexpectedly held the absence marker.
func NewExpressionError(typeName string) *AbsenceError {
	return &AbsenceError{
		msg: fmt.Sprintf("A non-absent-typed expression of type %s was absent due to a soundness gap", typeName),
	}
}

// NewArgumentError builds the error for a named parameter that
// unexpectedly held the absence marker.
func NewArgumentError(name, typeName string) *AbsenceError {
	return &AbsenceError{
		msg: fmt.Sprintf("The '%s' parameter of type %s was absent due to a soundness gap", name, typeName),
	}
}

// NewCastError builds the error for a strict cast that received the
// absence marker for a type that does not permit it.
func NewCastError(typeName string) *AbsenceError {
	return &AbsenceError{
		msg: fmt.Sprintf("An absent value was cast to %s", typeName),
	}
}

// Error implements the error interface.
func (e *AbsenceError) Error() string {
	return e.msg
}
