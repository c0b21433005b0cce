package internal

import "fmt"

// AppError is the error shape returned to API clients. Code mirrors the
// HTTP status of the response carrying it.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewAppError builds an AppError for the given status code.
func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}
