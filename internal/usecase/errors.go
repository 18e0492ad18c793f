package usecase

import (
	"context"
	"errors"
	"fmt"
	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"
)

// Error taxonomy. Every error leaving this package matches exactly one of these
// with errors.Is, or none of them for internal bugs.
var (
	ErrValidation        = errors.New("validation failure")
	ErrUpstream          = errors.New("upstream service failure")
	ErrMalformedResponse = interfaces.ErrMalformedResponse
)

var (
	ErrMissingDocument     = fmt.Errorf("%w: missing pdf document", ErrValidation)
	ErrMissingFirstName    = fmt.Errorf("%w: firstName is required", ErrValidation)
	ErrMissingLastName     = fmt.Errorf("%w: lastName is required", ErrValidation)
	ErrMissingEmail        = fmt.Errorf("%w: email is required", ErrValidation)
	ErrMissingAddress      = fmt.Errorf("%w: propertyAddress is required", ErrValidation)
	ErrNoExtractableText   = fmt.Errorf("%w: document contains no extractable text", ErrValidation)
	ErrPaymentNotCompleted = fmt.Errorf("%w: checkout session is not paid", ErrValidation)
	ErrInvalidOrigin       = fmt.Errorf("%w: invalid origin url", ErrValidation)
	ErrInvalidRecordID     = fmt.Errorf("%w: invalid record id", ErrValidation)
	ErrRecordNotFound      = errors.New("record not found")

	ErrRecordStoreNotConfigured = errors.New("record store not configured")
)

// StageError is a fatal pipeline failure. Stage is the state the workflow was
// trying to reach when it failed.
type StageError struct {
	Stage entities.ProcessStage
	Kind  error
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// stageFailure classifies err and wraps it for the given stage. Errors that already
// carry a kind keep it; everything else coming from a collaborator is upstream.
func stageFailure(stage entities.ProcessStage, err error) *StageError {
	var kind error
	switch {
	case errors.Is(err, ErrValidation):
		kind = nil
	case errors.Is(err, interfaces.ErrInvalidDocument):
		kind = ErrValidation
	case errors.Is(err, ErrMalformedResponse):
		kind = nil
	case errors.Is(err, context.Canceled):
		kind = nil
	default:
		kind = ErrUpstream
	}
	return &StageError{Stage: stage, Kind: kind, Err: err}
}
