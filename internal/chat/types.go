package chat

import "supermind/internal/model"

// CreateSessionInput holds the first query a new session is titled from.
type CreateSessionInput struct {
	Title string
}

type CreateSessionOutput struct {
	Session model.Session
}

type ListSessionsOutput struct {
	Sessions []model.Session
	Count    int
}

type GetTurnsOutput struct {
	Turns []model.Turn
}
