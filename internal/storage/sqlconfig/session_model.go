package sqlconfig

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when no token is persisted for a view session.
var ErrSessionNotFound = errors.New("session not found")

// Session is the persisted token of one browser's view session.
type Session struct {
	ViewID    string
	Token     string
	UpdatedAt time.Time
}

// ISessionTable defines the interface for session token storage.
// This abstraction allows swapping the backend (sqlite, redis, memory) without changing callers.
type ISessionTable interface {
	FindByViewID(ctx context.Context, viewID string) (*Session, error)
	Upsert(ctx context.Context, viewID, token string) error
	Delete(ctx context.Context, viewID string) error
}
