package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

// Error titles. The message field carries the detail.
const (
	ErrTitleValidation   = "Validation error"
	ErrTitleNotFound     = "Not found"
	ErrTitleInternal     = "Internal server error"
	ErrTitleUnauthorized = "Unauthorized"
	ErrTitleForbidden    = "Forbidden"
	ErrTitleTooLarge     = "Payload too large"
)

// Client-facing messages. Internal causes are logged, never returned.
const (
	ErrMsgWeaponNotFound    = "Weapon configuration not found"
	ErrMsgFetchFailed       = "Failed to fetch weapon configurations"
	ErrMsgSaveFailed        = "Failed to save weapon configuration"
	ErrMsgDeleteFailed      = "Failed to delete weapon configuration"
	ErrMsgInvalidRequest    = "Invalid request body"
	ErrMsgBodyTooLarge      = "Request body is too large"
	ErrMsgNoPlayer          = "A valid player token is required"
	ErrMsgForbiddenResource = "You can only access your own weapon configurations"
	ErrMsgServiceUnready    = "database connection failed"
)

// Success messages
const (
	MsgWeaponSaved   = "Weapon configuration saved successfully"
	MsgWeaponDeleted = "Weapon configuration deleted successfully"
)

// mapWeaponError converts a service error into a status and response body.
// failMsg is the generic message used for anything that is not client-caused.
func mapWeaponError(err error, failMsg string) (int, ErrorResponse) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, ErrorResponse{Error: ErrTitleValidation, Message: vErr.Message}
	case errors.Is(err, domain.ErrWeaponNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrTitleNotFound, Message: ErrMsgWeaponNotFound}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Error: ErrTitleUnauthorized, Message: ErrMsgNoPlayer}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Error: ErrTitleForbidden, Message: ErrMsgForbiddenResource}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: ErrTitleInternal, Message: failMsg}
	}
}
