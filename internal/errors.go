package internal

import "errors"

var (
	ErrParse        = errors.New("malformed timestamp")
	ErrCorruptStore = errors.New("sleep log store is corrupt")
	ErrWrite        = errors.New("failed to write sleep log store")
	ErrValidation   = errors.New("validation failed")
	// ErrEmptyHistory is returned when there is nothing to summarize. It is
	// a notice for the user, not a failure.
	ErrEmptyHistory = errors.New("no sleep data recorded")
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

func (e *AppError) Error() string {
	return e.Message
}
