package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/carson-networks/budget-web/internal/apiclient"
)

// sessionStore persists one view session's token. *storage.SessionStore satisfies it.
type sessionStore interface {
	Set(ctx context.Context, token string) error
	Get(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
}

// AuthManager is the single source of truth for whether a view session is logged in.
// Every change goes through the session store first, so the in-memory copy never
// claims a token that is not persisted.
type AuthManager struct {
	store    sessionStore
	onChange func(ctx context.Context)

	mu    sync.RWMutex
	token string
}

// NewAuthManager restores the authentication state from store.
func NewAuthManager(ctx context.Context, store sessionStore) (*AuthManager, error) {
	token, ok, err := store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		token = ""
	}
	return &AuthManager{store: store, token: token}, nil
}

// Login persists token and marks the view session authenticated.
func (a *AuthManager) Login(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptySession
	}

	a.mu.Lock()
	if err := a.store.Set(ctx, token); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}
	a.token = token
	a.mu.Unlock()

	a.changed(ctx)
	return nil
}

// Logout clears the persisted token. It is a no-op when nothing is stored.
func (a *AuthManager) Logout(ctx context.Context) error {
	a.mu.Lock()
	if err := a.store.Clear(ctx); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("clear session: %w", err)
	}
	a.token = ""
	a.mu.Unlock()

	a.changed(ctx)
	return nil
}

// OnChange registers fn to run after every successful Login or Logout.
func (a *AuthManager) OnChange(fn func(ctx context.Context)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onChange = fn
}

func (a *AuthManager) changed(ctx context.Context) {
	a.mu.RLock()
	fn := a.onChange
	a.mu.RUnlock()
	if fn != nil {
		fn(ctx)
	}
}

func (a *AuthManager) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token != ""
}

// Credential returns the credential attached to protected API calls.
// It is the zero Credential while logged out.
func (a *AuthManager) Credential() apiclient.Credential {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return apiclient.Credential{Session: a.token}
}
