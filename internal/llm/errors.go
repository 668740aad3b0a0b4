package llm

import "errors"

var (
	// ErrDisabled is returned by the client built when HOIKUPLAN_LLM_ENABLED is off.
	ErrDisabled = errors.New("llm suggestions are disabled")

	// ErrUnavailable indicates the model server could not be reached.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates every attempt exceeded the task timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the response did not have the expected shape.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts failed.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
