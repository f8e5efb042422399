package repository

import (
	"context"

	"supermind/internal/model"
)

// Repository is the composed interface for the chat domain data store.
type Repository interface {
	SessionRepository
}

// SessionRepository defines all data access methods for sessions and their
// turns. Every mutation is atomic with respect to a single session: a
// concurrent reader sees the full prior state or the full new state, never
// a partial one.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.Session, error)

	// GetSession returns the zero Session when the ID is unknown.
	GetSession(ctx context.Context, id string) (model.Session, error)

	// ListSessions returns sessions sorted descending by creation time.
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]model.Session, error)

	AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error

	// AppendPendingTurn checks for a trailing pending marker and appends the
	// given turn as the new marker in one atomic step. Returns
	// ErrPendingTurnExists when a generation is already in flight.
	AppendPendingTurn(ctx context.Context, sessionID string, turn model.Turn) error

	ReplacePendingTurn(ctx context.Context, sessionID string, turn model.Turn) error
	DeleteSession(ctx context.Context, id string) error
}
