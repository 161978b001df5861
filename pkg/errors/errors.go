package errors

import "errors"

// Error codes shared by the domain services and the HTTP transport.
const (
	CodeInvalidInput    = "invalid_input"
	CodeInvalidAction   = "invalid_action"
	CodeNotFound        = "not_found"
	CodeSessionNotFound = "session_not_found"
	CodeSessionError    = "session_error"
	CodeInvalidCatalog  = "invalid_catalog"
	CodeCatalogError    = "catalog_error"
)

// AppError carries a machine readable code alongside the message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode reports whether any AppError in the chain carries code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the outermost AppError, or "" when there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
