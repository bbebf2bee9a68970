// Package apierrors defines the error taxonomy shared by every endpoint and
// the single funnel that maps any failure to a wire error and HTTP status.
package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Wire messages. These are rendered directly by the client, so they are
// fixed strings rather than wrapped Go errors.
const (
	MsgUnknownParameters      = "The request includes unsupported or unrecognized parameter(s)."
	MsgInternalCommunication  = "Internal Communication Exception"
	MsgInvalidJSON            = "Request Body contains invalid JSON"
	MsgResourceDoesNotExist   = "The requested resource could not be located."
	MsgUserAlreadyExists      = "User already exists"
	MsgUserDoesNotExist       = "User doesn't exist"
	MsgEmailOrPasswordInvalid = "Either email or password is invalid"
	MsgAuthenticationFailed   = "Authentication failed"
	MsgTokenExpired           = "The authentication token has expired"
	MsgTooManyRequests        = "Too many requests, please try again later."
)

// ErrorResponse is the error half of the response envelope. Code doubles as
// the HTTP status the normalizer sends.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func New(message string, code int) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
		Code:    code,
	}
}

// Validation tags a message as a request-validation failure.
func Validation(message string) *ErrorResponse {
	return New(message, http.StatusUnprocessableEntity)
}

var (
	ErrInvalidJSON          = New(MsgInvalidJSON, http.StatusUnprocessableEntity)
	ErrResourceDoesNotExist = New(MsgResourceDoesNotExist, http.StatusNotFound)
	ErrUserAlreadyExists    = New(MsgUserAlreadyExists, http.StatusConflict)
	ErrUserDoesNotExist     = New(MsgUserDoesNotExist, http.StatusNotFound)
	ErrInvalidCredentials   = New(MsgEmailOrPasswordInvalid, http.StatusUnauthorized)
	ErrAuthenticationFailed = New(MsgAuthenticationFailed, http.StatusUnauthorized)
	ErrTokenExpired         = New(MsgTokenExpired, http.StatusUnauthorized)
	ErrInternal             = New(MsgInternalCommunication, http.StatusInternalServerError)
	ErrTooManyRequests      = New(MsgTooManyRequests, http.StatusTooManyRequests)
)

// Normalize classifies any error raised during a request's lifecycle.
// Priority: malformed JSON, then pre-classified application errors, then
// everything else collapses to a generic internal error so no detail leaks.
func Normalize(err error) (*ErrorResponse, int) {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrInvalidJSON, http.StatusUnprocessableEntity
	}

	var resp *ErrorResponse
	if errors.As(err, &resp) {
		status := resp.Code
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadRequest
		}
		return resp, status
	}

	return ErrInternal, http.StatusInternalServerError
}
