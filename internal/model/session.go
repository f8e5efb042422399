package model

import "time"

// Turn is one user query plus its eventual answer (or error), the atomic
// unit appended to a session.
type Turn struct {
	Query          string
	AnswerText     string
	Format         Format
	Binary         []byte
	Visualizations []VisualizationSpec
	CreatedAt      time.Time
}

// Session is a titled, ordered collection of conversation turns scoped to
// a user and project. Turns are strictly ordered by arrival; the title is
// derived from the first query and never changes afterwards.
type Session struct {
	ID        string
	ProjectID string
	UserID    string
	Title     string
	CreatedAt time.Time
	Turns     []Turn
}
