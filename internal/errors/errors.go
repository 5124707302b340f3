// Package errors defines the coded errors shared by the incident client,
// its terminal UIs and the CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a structured error type used across the application.
type Code string

const (
	CodeUnknown Code = "unknown"

	// Transport and API contract failures.
	CodeRequestFailed    Code = "request_failed"
	CodeUnexpectedStatus Code = "unexpected_status"
	CodeDecodeFailed     Code = "decode_failed"

	// Local input and configuration failures.
	CodeInvalidRequest     Code = "invalid_request"
	CodeConfigurationError Code = "configuration_error"
)

const maxBodySnippetLen = 200

// Error carries a machine-readable code next to a human message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e Error) Unwrap() error {
	return e.Err
}

// New wraps an error with a code/message.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// Newf is New with a formatted message.
func Newf(code Code, err error, format string, args ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// StatusError records a non-2xx reply from the incidents API. The body is
// kept for logs and the CLI; the terminal UIs never show it.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > maxBodySnippetLen {
		body = body[:maxBodySnippetLen] + "..."
	}
	if body == "" {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, body)
}

// Unexpected builds the coded error for a non-2xx reply.
func Unexpected(method, url string, status int, body []byte) Error {
	se := StatusError{Method: method, URL: url, StatusCode: status, Body: string(body)}
	return Error{Code: CodeUnexpectedStatus, Message: se.Error(), Err: se}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether the error (or its unwrap chain) matches the provided code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// StatusCodeOf returns the HTTP status carried by err, if any.
func StatusCodeOf(err error) (int, bool) {
	var se StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}
