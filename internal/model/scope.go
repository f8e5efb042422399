package model

// Scope carries the caller identity every use case operates under.
type Scope struct {
	UserID    string
	ProjectID string
}
