package storage

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-web/internal/storage/sqlconfig"
)

// SessionStore persists the opaque session token of one view session.
type SessionStore struct {
	table  sqlconfig.ISessionTable
	viewID string
}

func (s *SessionStore) Set(ctx context.Context, token string) error {
	return s.table.Upsert(ctx, s.viewID, token)
}

// Get returns the persisted token and whether one exists.
func (s *SessionStore) Get(ctx context.Context) (string, bool, error) {
	session, err := s.table.FindByViewID(ctx, s.viewID)
	if errors.Is(err, sqlconfig.ErrSessionNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return session.Token, session.Token != "", nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.table.Delete(ctx, s.viewID)
}
