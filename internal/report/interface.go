package report

import (
	"context"

	"supermind/internal/model"
)

// UseCase defines the business logic interface for the report domain.
type UseCase interface {
	// Generate runs one query through the AI flow and packages the answer
	// in the requested format, recording the exchange in the session.
	// Upstream and validation failures come back as an ERROR-formatted
	// output, not as a Go error; only session bookkeeping failures do.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
}
