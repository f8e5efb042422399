package usecase

import (
	"supermind/internal/chat"
	"supermind/pkg/langflow"
	"supermind/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	flow   langflow.ILangflow
	chatUC chat.UseCase
	tweaks map[string]map[string]any
}

// New creates a new report UseCase instance. The tweaks map holds the
// deployment's default per-component flow overrides; per-request tweaks
// take precedence over it.
func New(
	l log.Logger,
	flow langflow.ILangflow,
	chatUC chat.UseCase,
	tweaks map[string]map[string]any,
) *implUseCase {
	return &implUseCase{
		l:      l,
		flow:   flow,
		chatUC: chatUC,
		tweaks: tweaks,
	}
}
