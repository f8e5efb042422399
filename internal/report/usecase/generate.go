package usecase

import (
	"context"
	"errors"
	"strings"

	"supermind/internal/chat"
	"supermind/internal/model"
	"supermind/internal/report"
	"supermind/pkg/langflow"
	"supermind/pkg/render"
	"supermind/pkg/vizparse"
)

// Generate runs the full report pipeline for one query:
// validate → resolve session → pending marker → flow call → extract →
// render → replace the pending marker with the final turn.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.GenerateOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		// Resolved locally; the upstream engine is never called.
		return errorOutput(input.SessionID, report.MsgEmptyQuery), nil
	}

	uc.l.Infof(ctx, "Generate: user=%s project=%s format=%s query=%q", sc.UserID, sc.ProjectID, input.Format, query)

	sessionID, err := uc.resolveSession(ctx, sc, query, input.SessionID)
	if err != nil {
		return report.GenerateOutput{}, err
	}

	// Pending marker: observers of the session see the in-flight state.
	// The append doubles as the in-flight guard, atomically in the store,
	// so two racing generations on one session can never interleave.
	pending := model.Turn{Query: query, Format: model.FormatPending}
	if err := uc.chatUC.AppendPendingTurn(ctx, sessionID, pending); err != nil {
		if errors.Is(err, chat.ErrPendingTurn) {
			return report.GenerateOutput{}, report.ErrGenerationInFlight
		}
		return report.GenerateOutput{}, err
	}

	runOut, err := uc.flow.RunFlow(ctx, langflow.RunInput{
		InputValue: query,
		InputType:  langflow.InputTypeChat,
		OutputType: langflow.OutputTypeChat,
		Tweaks:     uc.mergeTweaks(input.Tweaks),
	})
	if err != nil {
		msg := failureMessage(err)
		uc.l.Warnf(ctx, "Generate: flow call failed: %v", err)
		uc.finalize(ctx, sessionID, model.Turn{
			Query:      query,
			Format:     model.FormatError,
			AnswerText: msg,
		})
		return errorOutput(sessionID, msg), nil
	}

	cleaned, specs := vizparse.Extract(runOut.Message)

	result, err := render.Render(cleaned, input.Format, specs)
	if err != nil {
		uc.l.Errorf(ctx, "Generate: render failed: %v", err)
		uc.finalize(ctx, sessionID, model.Turn{
			Query:      query,
			Format:     model.FormatError,
			AnswerText: report.MsgGeneric,
		})
		return errorOutput(sessionID, report.MsgGeneric), nil
	}

	uc.finalize(ctx, sessionID, model.Turn{
		Query:          query,
		Format:         result.Format,
		AnswerText:     result.Text,
		Binary:         result.Binary,
		Visualizations: result.Visualizations,
	})

	return report.GenerateOutput{
		SessionID:      sessionID,
		Format:         result.Format,
		Text:           result.Text,
		Binary:         result.Binary,
		Visualizations: result.Visualizations,
	}, nil
}

// resolveSession finds the target session or creates one titled from the
// first query. Existence of a given session is verified by the pending
// append itself, which also rejects a generation still in flight.
func (uc *implUseCase) resolveSession(ctx context.Context, sc model.Scope, query, sessionID string) (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}

	out, err := uc.chatUC.CreateSession(ctx, sc, chat.CreateSessionInput{Title: query})
	if err != nil {
		uc.l.Errorf(ctx, "Generate: CreateSession: %v", err)
		return "", err
	}
	return out.Session.ID, nil
}

// finalize replaces the pending marker with the final turn. The marker must
// never stay visible after Generate returns, so a bookkeeping failure here
// is logged but not surfaced over the result.
func (uc *implUseCase) finalize(ctx context.Context, sessionID string, turn model.Turn) {
	if err := uc.chatUC.ReplacePendingTurn(ctx, sessionID, turn); err != nil {
		uc.l.Errorf(ctx, "Generate: ReplacePendingTurn: %v", err)
	}
}

// mergeTweaks overlays per-request tweaks on the configured defaults.
func (uc *implUseCase) mergeTweaks(override map[string]map[string]any) map[string]map[string]any {
	if len(override) == 0 {
		return uc.tweaks
	}
	merged := make(map[string]map[string]any, len(uc.tweaks)+len(override))
	for k, v := range uc.tweaks {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// failureMessage selects the user-facing message for an upstream failure.
// Categories are mutually exclusive and checked in fixed priority order:
// timeout, connectivity, server-reported detail, generic fallback.
func failureMessage(err error) string {
	var apiErr *langflow.APIError
	switch {
	case errors.Is(err, langflow.ErrTimeout):
		return report.MsgTimeout
	case errors.Is(err, langflow.ErrUnreachable):
		return report.MsgUnreachable
	case errors.As(err, &apiErr):
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return report.MsgEngineError
	default:
		return report.MsgGeneric
	}
}

func errorOutput(sessionID, msg string) report.GenerateOutput {
	return report.GenerateOutput{
		SessionID:    sessionID,
		Format:       model.FormatError,
		ErrorMessage: msg,
	}
}
