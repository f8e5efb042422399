package repository

// CreateSessionOptions holds parameters for inserting a new session.
type CreateSessionOptions struct {
	UserID    string
	ProjectID string
	Title     string
}

// ListSessionsOptions holds filter parameters for listing sessions.
// All non-empty fields are applied as AND conditions.
type ListSessionsOptions struct {
	UserID    string
	ProjectID string
}
