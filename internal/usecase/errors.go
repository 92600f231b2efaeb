package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrExternalService  = errors.New("external service failure")
	ErrInternal         = errors.New("internal error")
)

var (
	ErrDocumentTooLarge    = fmt.Errorf("%w: document too large", ErrInvalidInput)
	ErrAnalyzerUnavailable = fmt.Errorf("%w: analyzer not configured", ErrExternalService)
)

func internalError(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
