package apperror

import "net/http"

// AppError pairs an HTTP status with the user-facing message for it.
// Err holds the underlying cause for server-side logging; it is never
// serialized to the client.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MissingFields is the fixed 400 returned when a required submission
// field is absent.
func MissingFields() *AppError {
	return New(http.StatusBadRequest, "Missing required fields", nil)
}

// SendFailure is the fixed 500 covering parse errors, provider
// rejections and everything else that stops an email going out.
func SendFailure(err error) *AppError {
	return New(http.StatusInternalServerError, "Error sending email", err)
}
