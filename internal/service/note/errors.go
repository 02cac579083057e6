package note

import "errors"

var (
	ErrNotFound        = errors.New("note not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrEmptyContent    = errors.New("note content is required")
)
