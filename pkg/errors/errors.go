package errors

import "fmt"

// ErrorCode identifies an application error class.
type ErrorCode int

const (
	ErrNotFound ErrorCode = iota + 1000
	ErrBadRequest
	ErrUnauthorized
	ErrUpstream
	ErrPhoneNotSendable
	ErrInternal
)

// AppError carries a code, a safe message and the wrapped cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{Code: ErrBadRequest, Message: message, Err: err}
}

func Unauthorized(err error) *AppError {
	return &AppError{Code: ErrUnauthorized, Message: "unauthorized", Err: err}
}

// Upstream wraps failures talking to the data source.
func Upstream(err error) *AppError {
	return &AppError{Code: ErrUpstream, Message: "upstream request failed", Err: err}
}

// PhoneNotSendable is the distinct rejection for building a message link
// against a record whose phone was flagged invalid by the upstream. It is
// its own class so handlers can surface a specific user message.
func PhoneNotSendable(err error) *AppError {
	return &AppError{
		Code:    ErrPhoneNotSendable,
		Message: "phone number is flagged invalid for messaging",
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{Code: ErrInternal, Message: "internal server error", Err: err}
}
