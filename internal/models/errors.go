package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned by the service layer. Expected business failures are
// always *AppError values; nothing in the service layer panics or throws past
// the public boundary.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// ErrorResponse is the standardized API error payload.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// AppError is a typed application error carrying a stable code and, for
// validation failures, field-level detail.
type AppError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a VALIDATION_ERROR with a single message.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewFieldValidationError returns a VALIDATION_ERROR carrying per-field detail.
func NewFieldValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "입력값이 올바르지 않습니다.",
		Fields:  fields,
	}
}

// NewNotFoundError returns a NOT_FOUND for the named resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// NewPermissionDeniedError returns a PERMISSION_DENIED (ownership mismatch).
func NewPermissionDeniedError(message string) *AppError {
	return &AppError{Code: CodePermissionDenied, Message: message}
}

// NewUnauthenticatedError returns an UNAUTHENTICATED (missing caller id).
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

// NewStoreUnavailableError wraps an infrastructure failure from the store.
func NewStoreUnavailableError(err error) *AppError {
	return &AppError{
		Code:    CodeStoreUnavailable,
		Message: "저장소에 일시적인 문제가 발생했습니다. 잠시 후 다시 시도해주세요.",
		Err:     err,
	}
}

// StatusForCode maps an error code to an HTTP status.
func StatusForCode(code string) int {
	switch code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodePermissionDenied:
		return fiber.StatusForbidden
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodeStoreUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes a standardized error response.
func RespondWithError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*AppError); ok {
		return c.Status(StatusForCode(appErr.Code)).JSON(ErrorResponse{
			Success: false,
			Error:   appErr.Message,
			Code:    appErr.Code,
			Fields:  appErr.Fields,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
