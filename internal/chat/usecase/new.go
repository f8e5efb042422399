package usecase

import (
	"supermind/internal/chat/repository"
	"supermind/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a new chat UseCase implementation.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
