package usecase

import (
	"context"
	"errors"
	"strings"

	"supermind/internal/chat"
	repo "supermind/internal/chat/repository"
	"supermind/internal/model"
)

// MaxTitleLen bounds a session title derived from the first query.
const MaxTitleLen = 80

// CreateSession starts a new session titled from the given first query.
func (uc *implUseCase) CreateSession(ctx context.Context, sc model.Scope, input chat.CreateSessionInput) (chat.CreateSessionOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return chat.CreateSessionOutput{}, chat.ErrEmptyTitle
	}

	session, err := uc.repo.CreateSession(ctx, repo.CreateSessionOptions{
		UserID:    sc.UserID,
		ProjectID: sc.ProjectID,
		Title:     truncateTitle(title, MaxTitleLen),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSession CreateSession: %v", err)
		return chat.CreateSessionOutput{}, err
	}

	return chat.CreateSessionOutput{Session: session}, nil
}

// ListSessions returns the scope's sessions, newest first.
func (uc *implUseCase) ListSessions(ctx context.Context, sc model.Scope) (chat.ListSessionsOutput, error) {
	sessions, err := uc.repo.ListSessions(ctx, repo.ListSessionsOptions{
		UserID:    sc.UserID,
		ProjectID: sc.ProjectID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSessions ListSessions: %v", err)
		return chat.ListSessionsOutput{}, err
	}

	return chat.ListSessionsOutput{
		Sessions: sessions,
		Count:    len(sessions),
	}, nil
}

// GetTurns returns a session's turns in arrival order.
func (uc *implUseCase) GetTurns(ctx context.Context, sessionID string) (chat.GetTurnsOutput, error) {
	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTurns GetSession: %v", err)
		return chat.GetTurnsOutput{}, err
	}
	if session.ID == "" {
		return chat.GetTurnsOutput{}, chat.ErrSessionNotFound
	}
	return chat.GetTurnsOutput{Turns: session.Turns}, nil
}

// AppendTurn adds one turn to the end of a session.
func (uc *implUseCase) AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	if err := uc.repo.AppendTurn(ctx, sessionID, turn); err != nil {
		uc.l.Errorf(ctx, "uc.AppendTurn AppendTurn: %v", err)
		return mapRepoErr(err)
	}
	return nil
}

// AppendPendingTurn atomically rejects an in-flight session and appends the
// pending marker.
func (uc *implUseCase) AppendPendingTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	if err := uc.repo.AppendPendingTurn(ctx, sessionID, turn); err != nil {
		uc.l.Errorf(ctx, "uc.AppendPendingTurn AppendPendingTurn: %v", err)
		return mapRepoErr(err)
	}
	return nil
}

// ReplacePendingTurn swaps a trailing pending marker for the final turn.
func (uc *implUseCase) ReplacePendingTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	if err := uc.repo.ReplacePendingTurn(ctx, sessionID, turn); err != nil {
		uc.l.Errorf(ctx, "uc.ReplacePendingTurn ReplacePendingTurn: %v", err)
		return mapRepoErr(err)
	}
	return nil
}

// DeleteSession removes a session and all its turns.
func (uc *implUseCase) DeleteSession(ctx context.Context, sessionID string) error {
	if err := uc.repo.DeleteSession(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSession DeleteSession: %v", err)
		return mapRepoErr(err)
	}
	return nil
}

func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrSessionNotFound):
		return chat.ErrSessionNotFound
	case errors.Is(err, repo.ErrPendingTurnExists):
		return chat.ErrPendingTurn
	}
	return err
}

// truncateTitle safely truncates a title to maxLen runes.
func truncateTitle(title string, maxLen int) string {
	runes := []rune(title)
	if len(runes) <= maxLen {
		return title
	}
	return string(runes[:maxLen])
}
