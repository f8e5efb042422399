package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyTitle      = errors.New("session title is empty")
	ErrPendingTurn     = errors.New("session has a generation in flight")
)
