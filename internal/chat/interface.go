package chat

import (
	"context"

	"supermind/internal/model"
)

// UseCase defines the business logic interface for the chat session domain.
type UseCase interface {
	// CreateSession starts a new, empty session titled from the first query.
	CreateSession(ctx context.Context, sc model.Scope, input CreateSessionInput) (CreateSessionOutput, error)

	// ListSessions returns the scope's sessions, most recent first.
	ListSessions(ctx context.Context, sc model.Scope) (ListSessionsOutput, error)

	// GetTurns returns a session's turns in arrival order.
	GetTurns(ctx context.Context, sessionID string) (GetTurnsOutput, error)

	// AppendTurn adds one turn to the end of a session.
	AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error

	// AppendPendingTurn atomically guards against an in-flight generation
	// and appends the pending marker. Returns ErrPendingTurn when the
	// session's trailing turn is already pending.
	AppendPendingTurn(ctx context.Context, sessionID string, turn model.Turn) error

	// ReplacePendingTurn swaps a trailing pending marker for the final turn.
	ReplacePendingTurn(ctx context.Context, sessionID string, turn model.Turn) error

	// DeleteSession removes a session and all its turns atomically.
	DeleteSession(ctx context.Context, sessionID string) error
}
