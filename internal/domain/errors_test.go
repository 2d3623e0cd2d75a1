package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_WrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := WrapValidation("unable to validate symbol", cause)

	if err.Error() != "unable to validate symbol" {
		t.Errorf("Error() = %q, want the concise message only", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}

	var vErr *ValidationError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &vErr) {
		t.Error("ValidationError not found through wrapping")
	}
}

func TestSubmissionf_RendersCauseIntoMessage(t *testing.T) {
	cause := errors.New("Margin is insufficient")
	err := Submissionf(cause, "order submission failed")

	want := "order submission failed: Margin is insufficient"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestSubmissionf_NilCause(t *testing.T) {
	err := Submissionf(nil, "order submission failed")
	if err.Error() != "order submission failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap() should be nil")
	}
}
