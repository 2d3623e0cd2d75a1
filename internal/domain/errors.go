package domain

import "fmt"

// ValidationError marks a precondition failure the user can fix by correcting
// input. It covers both local checks and the remote symbol-listing check.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError creates a ValidationError without an underlying cause.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// Validationf creates a formatted ValidationError.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// WrapValidation attaches a cause to a ValidationError. The cause is kept for
// logs only; Error() stays the concise user-facing message.
func WrapValidation(msg string, err error) *ValidationError {
	return &ValidationError{Msg: msg, Err: err}
}

// SubmissionError marks any failure of the order-submission call, rejection
// and transport errors alike. The CLI can only report it and exit, so one
// kind is enough.
type SubmissionError struct {
	Msg string
	Err error
}

func (e *SubmissionError) Error() string { return e.Msg }

func (e *SubmissionError) Unwrap() error { return e.Err }

// Submissionf creates a SubmissionError wrapping err, with the cause rendered
// into the message so the single stderr line stays diagnostic.
func Submissionf(err error, format string, args ...any) *SubmissionError {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &SubmissionError{Msg: msg, Err: err}
}
