package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"supermind/internal/chat"
	"supermind/internal/chat/repository/inmem"
	"supermind/internal/chat/usecase"
	"supermind/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newUseCase() chat.UseCase {
	return usecase.New(&mockLogger{}, inmem.New(&mockLogger{}))
}

var testScope = model.Scope{UserID: "user-1", ProjectID: "project-1"}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Title Error", func(t *testing.T) {
		uc := newUseCase()
		_, err := uc.CreateSession(ctx, testScope, chat.CreateSessionInput{Title: "   "})
		if !errors.Is(err, chat.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Title Truncated To Limit", func(t *testing.T) {
		uc := newUseCase()
		long := strings.Repeat("x", usecase.MaxTitleLen+20)
		out, err := uc.CreateSession(ctx, testScope, chat.CreateSessionInput{Title: long})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len([]rune(out.Session.Title)); got != usecase.MaxTitleLen {
			t.Errorf("expected %d-rune title, got %d", usecase.MaxTitleLen, got)
		}
	})

	t.Run("Scope Recorded", func(t *testing.T) {
		uc := newUseCase()
		out, err := uc.CreateSession(ctx, testScope, chat.CreateSessionInput{Title: "Weekly report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.UserID != "user-1" || out.Session.ProjectID != "project-1" {
			t.Errorf("scope not recorded: %+v", out.Session)
		}
	})
}

func TestGetTurns(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Session Error", func(t *testing.T) {
		uc := newUseCase()
		_, err := uc.GetTurns(ctx, "missing")
		if !errors.Is(err, chat.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Turns In Arrival Order", func(t *testing.T) {
		uc := newUseCase()
		out, err := uc.CreateSession(ctx, testScope, chat.CreateSessionInput{Title: "t"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id := out.Session.ID

		for _, q := range []string{"a", "b"} {
			if err := uc.AppendTurn(ctx, id, model.Turn{Query: q, Format: model.FormatMarkdown}); err != nil {
				t.Fatalf("AppendTurn: %v", err)
			}
		}

		turns, err := uc.GetTurns(ctx, id)
		if err != nil {
			t.Fatalf("GetTurns: %v", err)
		}
		if len(turns.Turns) != 2 || turns.Turns[0].Query != "a" || turns.Turns[1].Query != "b" {
			t.Errorf("unexpected turn order: %+v", turns.Turns)
		}
	})
}

func TestMutatorsMapNotFound(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	if err := uc.AppendTurn(ctx, "missing", model.Turn{}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("AppendTurn: expected ErrSessionNotFound, got %v", err)
	}
	if err := uc.AppendPendingTurn(ctx, "missing", model.Turn{}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("AppendPendingTurn: expected ErrSessionNotFound, got %v", err)
	}
	if err := uc.ReplacePendingTurn(ctx, "missing", model.Turn{}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("ReplacePendingTurn: expected ErrSessionNotFound, got %v", err)
	}
	if err := uc.DeleteSession(ctx, "missing"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("DeleteSession: expected ErrSessionNotFound, got %v", err)
	}
}

func TestAppendPendingTurnMapsInFlight(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	out, err := uc.CreateSession(ctx, testScope, chat.CreateSessionInput{Title: "t"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	id := out.Session.ID

	if err := uc.AppendPendingTurn(ctx, id, model.Turn{Query: "q1"}); err != nil {
		t.Fatalf("AppendPendingTurn: %v", err)
	}
	if err := uc.AppendPendingTurn(ctx, id, model.Turn{Query: "q2"}); !errors.Is(err, chat.ErrPendingTurn) {
		t.Errorf("expected ErrPendingTurn, got %v", err)
	}
}

func TestListSessions(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := uc.CreateSession(ctx, testScope, chat.CreateSessionInput{Title: title}); err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
	}

	out, err := uc.ListSessions(ctx, testScope)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if out.Count != 3 {
		t.Fatalf("expected 3 sessions, got %d", out.Count)
	}
	if out.Sessions[0].Title != "three" || out.Sessions[2].Title != "one" {
		t.Errorf("not newest first: %+v", out.Sessions)
	}
}
