package llm

import "errors"

var (
	// ErrUnavailable indicates the Ollama server is unreachable. Callers
	// recover by falling back to deterministic recommendations.
	ErrUnavailable = errors.New("generator unavailable")

	// ErrTimeout indicates the generation request exceeded its timeout.
	ErrTimeout = errors.New("generator request timed out")

	// ErrEmptyOutput indicates the model returned no usable text.
	ErrEmptyOutput = errors.New("generator returned empty output")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generator retry attempts exhausted")
)
