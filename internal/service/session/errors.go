package session

import "errors"

var (
	ErrNotFound         = errors.New("session not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrAlreadyCompleted = errors.New("session already completed")
	ErrAlreadyCancelled = errors.New("session already cancelled")
	ErrInvalidStatus    = errors.New("invalid session status")
)
