package domain

import "errors"

var (
	// ErrEmptyMessage rejects a chat turn whose message body is missing or
	// empty. Surfaced as HTTP 400.
	ErrEmptyMessage = errors.New("message is required")

	// ErrUnauthorized covers every identity failure: missing header, bad
	// signature, expired token, missing subject. Surfaced as HTTP 401 with
	// no further detail.
	ErrUnauthorized = errors.New("unauthorized")
)
