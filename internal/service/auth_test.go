package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/storage"
)

type failingStore struct{}

func (failingStore) Set(context.Context, string) error { return errors.New("disk full") }
func (failingStore) Get(context.Context) (string, bool, error) { return "", false, nil }
func (failingStore) Clear(context.Context) error { return errors.New("disk full") }

func newTestAuthManager(t *testing.T) (*AuthManager, *storage.SessionStore) {
	t.Helper()
	store := storage.NewMemoryStorage().SessionStore("view-1")
	manager, err := NewAuthManager(context.Background(), store)
	require.NoError(t, err)
	return manager, store
}

// -- AuthManager --

func TestAuthManager_LoginLogout(t *testing.T) {
	ctx := context.Background()
	manager, store := newTestAuthManager(t)
	assert.False(t, manager.IsAuthenticated())
	assert.True(t, manager.Credential().IsZero())

	require.NoError(t, manager.Login(ctx, "sessionid=abc"))
	assert.True(t, manager.IsAuthenticated())
	assert.Equal(t, apiclient.Credential{Session: "sessionid=abc"}, manager.Credential())

	token, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sessionid=abc", token)

	require.NoError(t, manager.Logout(ctx))
	assert.False(t, manager.IsAuthenticated())
	_, ok, err = store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthManager_RestoresPersistedToken(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage().SessionStore("view-1")
	require.NoError(t, store.Set(ctx, "sessionid=persisted"))

	manager, err := NewAuthManager(ctx, store)
	require.NoError(t, err)
	assert.True(t, manager.IsAuthenticated())
	assert.Equal(t, "sessionid=persisted", manager.Credential().Session)
}

func TestAuthManager_RejectsEmptyToken(t *testing.T) {
	manager, _ := newTestAuthManager(t)
	assert.ErrorIs(t, manager.Login(context.Background(), ""), ErrEmptySession)
	assert.False(t, manager.IsAuthenticated())
}

func TestAuthManager_StoreFailureLeavesStateUnchanged(t *testing.T) {
	manager, err := NewAuthManager(context.Background(), failingStore{})
	require.NoError(t, err)

	assert.Error(t, manager.Login(context.Background(), "sessionid=abc"))
	assert.False(t, manager.IsAuthenticated())
}

// -- AuthService --

func TestSignIn_PersistsCookieString(t *testing.T) {
	client := NewMockIAuthClient(t)
	client.EXPECT().Login(mock.Anything, "ana", "pw").Return(testCred, nil)

	manager, _ := newTestAuthManager(t)
	svc := NewAuthService(client, newTestLogger())

	require.NoError(t, svc.SignIn(context.Background(), manager, "ana", "pw"))
	assert.True(t, manager.IsAuthenticated())
	assert.Equal(t, testCred, manager.Credential())
}

func TestSignIn_RejectedLeavesUserLoggedOut(t *testing.T) {
	client := NewMockIAuthClient(t)
	client.EXPECT().Login(mock.Anything, "ana", "wrong").
		Return(apiclient.Credential{}, &apiclient.APIError{StatusCode: http.StatusUnauthorized, Detail: "Incorrect username or password"})

	manager, _ := newTestAuthManager(t)
	svc := NewAuthService(client, newTestLogger())

	err := svc.SignIn(context.Background(), manager, "ana", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect username or password", apiclient.DetailOr(err, "Invalid credentials"))
	assert.False(t, manager.IsAuthenticated())
}

func TestSignOut_ClearsOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	client := NewMockIAuthClient(t)
	client.EXPECT().Logout(mock.Anything, testCred).Return(errors.New("connection refused")).Once()
	client.EXPECT().Logout(mock.Anything, testCred).Return(nil).Once()

	manager, _ := newTestAuthManager(t)
	require.NoError(t, manager.Login(ctx, testCred.Session))
	svc := NewAuthService(client, newTestLogger())

	assert.Error(t, svc.SignOut(ctx, manager))
	assert.True(t, manager.IsAuthenticated())

	assert.NoError(t, svc.SignOut(ctx, manager))
	assert.False(t, manager.IsAuthenticated())
}

func TestSignOut_LoggedOutIsNoop(t *testing.T) {
	client := NewMockIAuthClient(t)
	manager, _ := newTestAuthManager(t)

	assert.NoError(t, NewAuthService(client, newTestLogger()).SignOut(context.Background(), manager))
	client.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}

func TestRegister_PasswordMismatchSkipsAPI(t *testing.T) {
	client := NewMockIAuthClient(t)
	svc := NewAuthService(client, newTestLogger())

	err := svc.Register(context.Background(), "ana", "pw1", "pw2")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	client.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_SurfacesServerDetail(t *testing.T) {
	client := NewMockIAuthClient(t)
	client.EXPECT().Register(mock.Anything, "ana", "pw").
		Return(&apiclient.APIError{StatusCode: http.StatusBadRequest, Detail: "Username already registered"})

	err := NewAuthService(client, newTestLogger()).Register(context.Background(), "ana", "pw", "pw")
	require.Error(t, err)
	assert.Equal(t, "Username already registered", apiclient.DetailOr(err, "Registration failed"))
}
