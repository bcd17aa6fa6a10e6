package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response is read and kept.
const maxErrorBody = 4 << 10

// Error is the failure reported by HTTPTransport. StatusCode is zero when no
// response was received, for example on a dial error or timeout.
type Error struct {
	StatusCode int
	Message    string
	Body       []byte
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("status %d: %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying the same request may succeed.
func (e *Error) Temporary() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

// newStatusError builds an Error from a non-2xx response body. The service reports
// failures as {"message": ...} and sometimes {"error": ...}; anything else falls
// back to the status text.
func newStatusError(status int, body []byte) *Error {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = messageText(payload.Message)
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{StatusCode: status, Message: msg, Body: body}
}

// messageText accepts a string message or a list of strings, which some validation
// failures return.
func messageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return strings.Join(list, "; ")
	}
	return string(raw)
}
