// Package client provides the insight sources: interchangeable backends that
// turn an InsightRequest into a normalized InsightResult. A source performs
// exactly one fetch per call, retries nothing, and keeps no state between
// calls; a failed fetch surfaces immediately and the caller may simply call
// again.
package client

import (
	"context"
	"fmt"

	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// Source fetches insights for a job title / career level pair from some
// backend. Implementations must return either a complete, normalized result
// or a descriptive error, never a partial result.
type Source interface {
	FetchInsights(ctx context.Context, req types.InsightRequest) (*types.InsightResult, error)
}

// RequestError represents a transport-level failure reaching the backend.
type RequestError struct {
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("request failed: %s", e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// StatusError represents a non-success HTTP status from the REST backend. The
// Detail field carries the service's own error message when one was provided.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("insight service returned status %d", e.StatusCode)
}

// DecodeError represents a malformed or schema-invalid response payload.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid response: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
