package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnreachable is returned when the backend cannot be contacted at all
// (connection refused, DNS failure, probe timeout).
var ErrUnreachable = errors.New("backend unreachable")

// ErrNotFound is returned when a looked-up job or contract is absent from
// the backend's listing.
var ErrNotFound = errors.New("not found")

// Error is a non-2xx response from the backend. Detail carries the
// human-readable "detail" field when the response had one.
type Error struct {
	Status int
	Method string
	Path   string
	Detail string
	Body   string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

// IsUnreachable reports whether err (or any error in its chain) is a
// connectivity failure.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// Detail returns the server-provided detail message carried by err, if any.
func Detail(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	return "", false
}

// UserMessage returns the text to show the user for a failed request: the
// server's detail when present, otherwise fallback.
func UserMessage(err error, fallback string) string {
	if detail, ok := Detail(err); ok {
		return detail
	}
	return fallback
}

// decodeDetail extracts the "detail" field of an error body. FastAPI sends
// either a string or a list of validation errors with "msg" fields.
func decodeDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(body, &envelope) != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if json.Unmarshal(envelope.Detail, &text) == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(envelope.Detail, &items) == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return string(envelope.Detail)
}
