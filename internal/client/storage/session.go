package storage

import "context"

// SessionStorage defines the durable mirror of the client session.
// It holds exactly one record: the current bearer token plus the
// identity it belongs to, set and cleared together.
type SessionStorage interface {
	// SaveSession stores the session record, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session record.
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session record (logout)
	DeleteSession(ctx context.Context) error
}

// SessionData represents the persisted session: an opaque bearer
// token and the minimal identity derived from login. The invariant is
// that both fields are populated together or not at all.
type SessionData struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
