package domain

import "encoding/json"

// Default messages used when a failure carries no message of its own.
const (
	MsgRequestFailed = "Request failed"
	MsgNetworkError  = "Network error"
)

// APIError is the error half of the envelope. Status is the HTTP status the
// failure came with; it is 0 for transport and decoding failures and never
// goes on the wire.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Response is the {success, data, error} envelope every backend call resolves to.
// When Success is true Data holds the payload and Error is nil; otherwise Error
// is set and Data is the zero value.
type Response[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// Envelope is a response whose payload has not been decoded yet.
type Envelope = Response[json.RawMessage]

// OK builds a successful response.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// Fail builds a failed response with no HTTP status attached.
func Fail[T any](message string) Response[T] {
	return FailStatus[T](0, message)
}

// FailStatus builds a failed response, substituting MsgRequestFailed for an
// empty message.
func FailStatus[T any](status int, message string) Response[T] {
	if message == "" {
		message = MsgRequestFailed
	}
	return Response[T]{Error: &APIError{Message: message, Status: status}}
}

// Err returns the failure as an error, or nil for a successful response.
func (r Response[T]) Err() error {
	if r.Success {
		return nil
	}
	if r.Error == nil {
		return &APIError{Message: MsgRequestFailed}
	}
	return r.Error
}

// Message returns the failure message, or "" for a successful response.
func (r Response[T]) Message() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return ""
}
