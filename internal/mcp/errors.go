package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/readycheck/internal/domain/checkin"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, checkin.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Metrics are 1-5; time_available is 0-120 minutes"}
	case errors.Is(err, errInvalidDate):
		return &APIError{Code: "INVALID_DATE", Message: err.Error(), RecoveryHint: "Use an RFC 3339 timestamp or omit date"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
