package inmem

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"supermind/internal/chat/repository"
	"supermind/internal/model"
)

// record wraps a session with an insertion sequence number so list ordering
// stays strict even when two sessions share a creation timestamp.
type record struct {
	session model.Session
	seq     uint64
}

// CreateSession inserts a new empty session and returns a copy of it.
func (s *Store) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	session := model.Session{
		ID:        uuid.NewString(),
		ProjectID: opt.ProjectID,
		UserID:    opt.UserID,
		Title:     opt.Title,
		CreatedAt: time.Now(),
	}
	s.sessions[session.ID] = &record{session: session, seq: s.seq}

	return copySession(session), nil
}

// GetSession returns a copy of the session, or the zero Session when the
// ID is unknown.
func (s *Store) GetSession(ctx context.Context, id string) (model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[id]
	if !ok {
		return model.Session{}, nil
	}
	return copySession(rec.session), nil
}

// ListSessions returns the scope's sessions sorted descending by creation
// time, newest first. Ties fall back to insertion order.
func (s *Store) ListSessions(ctx context.Context, opt repository.ListSessionsOptions) ([]model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]*record, 0, len(s.sessions))
	for _, rec := range s.sessions {
		if opt.UserID != "" && rec.session.UserID != opt.UserID {
			continue
		}
		if opt.ProjectID != "" && rec.session.ProjectID != opt.ProjectID {
			continue
		}
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].session.CreatedAt.Equal(recs[j].session.CreatedAt) {
			return recs[i].seq > recs[j].seq
		}
		return recs[i].session.CreatedAt.After(recs[j].session.CreatedAt)
	})

	out := make([]model.Session, 0, len(recs))
	for _, rec := range recs {
		out = append(out, copySession(rec.session))
	}
	return out, nil
}

// AppendTurn adds a turn at the end of the session's turn list.
func (s *Store) AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sessionID]
	if !ok {
		return repository.ErrSessionNotFound
	}

	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}
	rec.session.Turns = append(rec.session.Turns, turn)
	return nil
}

// AppendPendingTurn appends the pending marker unless one is already
// trailing. Check and append happen under one write lock, so two racing
// generations can never both slip past the in-flight guard.
func (s *Store) AppendPendingTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sessionID]
	if !ok {
		return repository.ErrSessionNotFound
	}

	turns := rec.session.Turns
	if n := len(turns); n > 0 && turns[n-1].Format == model.FormatPending {
		return repository.ErrPendingTurnExists
	}

	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}
	turn.Format = model.FormatPending
	rec.session.Turns = append(turns, turn)
	return nil
}

// ReplacePendingTurn swaps the trailing pending marker for the given turn.
// When no pending marker exists the turn is appended, so a finished
// generation is never lost.
func (s *Store) ReplacePendingTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[sessionID]
	if !ok {
		return repository.ErrSessionNotFound
	}

	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}

	turns := rec.session.Turns
	if n := len(turns); n > 0 && turns[n-1].Format == model.FormatPending {
		turns[n-1] = turn
		return nil
	}
	rec.session.Turns = append(turns, turn)
	return nil
}

// DeleteSession removes the session and all its turns as one unit.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// copySession deep-copies the turn list so callers never alias store state.
func copySession(in model.Session) model.Session {
	out := in
	if in.Turns != nil {
		out.Turns = make([]model.Turn, len(in.Turns))
		copy(out.Turns, in.Turns)
	}
	return out
}
