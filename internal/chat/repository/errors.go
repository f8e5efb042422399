package repository

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found in store")
	ErrPendingTurnExists = errors.New("session already has a pending turn")
)
