package session

import (
	"context"
	"sync"
	"time"

	"github.com/carson-networks/budget-web/internal/storage/sqlconfig"
)

var _ sqlconfig.ISessionTable = (*MemoryTable)(nil)

// MemoryTable keeps sessions in process memory. Tokens survive page reloads but not restarts.
type MemoryTable struct {
	mu       sync.RWMutex
	sessions map[string]sqlconfig.Session
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{sessions: make(map[string]sqlconfig.Session)}
}

func (m *MemoryTable) FindByViewID(_ context.Context, viewID string) (*sqlconfig.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[viewID]
	if !ok {
		return nil, sqlconfig.ErrSessionNotFound
	}
	return &session, nil
}

func (m *MemoryTable) Upsert(_ context.Context, viewID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[viewID] = sqlconfig.Session{
		ViewID:    viewID,
		Token:     token,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

func (m *MemoryTable) Delete(_ context.Context, viewID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, viewID)
	return nil
}
