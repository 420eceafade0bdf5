package errors

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Status     int    `json:"status"`
	RetryAfter int    `json:"retry_after,omitempty"` // seconds, rate-limit denials only
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
}

// Common error codes
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeBadRequest      = "BAD_REQUEST"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeUpgradeRequired = "UPGRADE_REQUIRED"
)

// Error constructors
func Validation(message string, details string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Details: details,
		Status:  400,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  404,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
		Status:  401,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
		Status:  403,
	}
}

// UpgradeRequired is an entitlement denial: the user is authenticated
// but their subscription tier does not cover the content. Clients
// branch on the code to show the paywall instead of the login screen.
func UpgradeRequired(message string, teaser string) *AppError {
	return &AppError{
		Code:    CodeUpgradeRequired,
		Message: message,
		Details: teaser,
		Status:  403,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Status:  409,
	}
}

func Internal(message string, details string) *AppError {
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Details: details,
		Status:  500,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// TooManyRequests is a control-flow outcome, not a fault; callers
// should not log it as an error.
func TooManyRequests(message string, retryAfter int) *AppError {
	return &AppError{
		Code:       CodeTooManyRequests,
		Message:    message,
		Status:     429,
		RetryAfter: retryAfter,
	}
}
