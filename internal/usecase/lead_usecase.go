package usecase

import (
	"context"

	"yelocar/internal/domain/service"
	"yelocar/internal/errors"
)

// RetryableError marks a lead failure worth redelivering.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err, or anything it wraps, is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

// LeadUsecase handles lead events in the worker.
type LeadUsecase interface {
	// ProcessLead notifies the sales team of a new lead. Failures that
	// IsRetryable reports on should be redelivered; others are dropped.
	ProcessLead(ctx context.Context, event *service.LeadEvent) error
}
