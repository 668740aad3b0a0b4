package intelligence

import (
	"context"
	"errors"

	"github.com/alexanderramin/hoikuplan/internal/llm"
)

// FailureCode classifies why a suggestion could not be produced.
type FailureCode string

const (
	CodeDisabled      FailureCode = "disabled"
	CodeUnavailable   FailureCode = "unavailable"
	CodeTimeout       FailureCode = "timeout"
	CodeInvalidOutput FailureCode = "invalid_output"
	CodeFailed        FailureCode = "failed"
)

// Failure is the tagged error returned by the suggestion services. Message is
// safe to show to the end user; the cause stays reachable through Unwrap.
type Failure struct {
	Code    FailureCode `json:"code"`
	Message string      `json:"message"`
	cause   error
}

func (f *Failure) Error() string {
	return string(f.Code) + ": " + f.Message
}

func (f *Failure) Unwrap() error { return f.cause }

// AsFailure reports whether err carries a *Failure.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

var failureMessages = map[FailureCode]string{
	CodeDisabled:      "AI suggestions are turned off",
	CodeUnavailable:   "the suggestion server could not be reached",
	CodeTimeout:       "the suggestion server did not answer in time",
	CodeInvalidOutput: "the suggestion could not be read",
	CodeFailed:        "the suggestion request failed",
}

func newFailure(code FailureCode, cause error) *Failure {
	return &Failure{Code: code, Message: failureMessages[code], cause: cause}
}

// classifyErr maps llm client errors onto failure codes.
func classifyErr(err error) *Failure {
	switch {
	case errors.Is(err, llm.ErrDisabled):
		return newFailure(CodeDisabled, err)
	case errors.Is(err, llm.ErrUnavailable):
		return newFailure(CodeUnavailable, err)
	case errors.Is(err, llm.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return newFailure(CodeTimeout, err)
	case errors.Is(err, llm.ErrInvalidOutput):
		return newFailure(CodeInvalidOutput, err)
	default:
		return newFailure(CodeFailed, err)
	}
}
