package models

import "net/http"

// AppError is a domain error carrying the HTTP status it should surface as.
// Every failure path constructs one with an explicit human-readable message;
// handlers translate anything else to a plain 500.
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates an error with an explicit message and status code
func NewAppError(message string, status int) *AppError {
	return &AppError{Status: status, Message: message}
}

// NewValidationError creates a 400 error for malformed input
func NewValidationError(message string) *AppError {
	return NewAppError(message, http.StatusBadRequest)
}

// NewUnauthenticatedError creates a 401 error for requests with no resolved caller
func NewUnauthenticatedError(message string) *AppError {
	return NewAppError(message, http.StatusUnauthorized)
}

// NewForbiddenError creates a 403 error for authenticated callers that are
// neither the record owner nor an admin
func NewForbiddenError(message string) *AppError {
	return NewAppError(message, http.StatusForbidden)
}

// NewNotFoundError creates a 404 error for a missing record
func NewNotFoundError(message string) *AppError {
	return NewAppError(message, http.StatusNotFound)
}

// NewInternalError creates a 500 error for storage or unexpected failures
func NewInternalError(message string) *AppError {
	return NewAppError(message, http.StatusInternalServerError)
}
