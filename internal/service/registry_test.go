package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/operator"
	"github.com/carson-networks/budget-web/internal/storage"
)

func newTestRegistry(t *testing.T, client ITransactionClient) (*Registry, *storage.Storage, *time.Time) {
	t.Helper()
	store := storage.NewMemoryStorage()
	registry := NewRegistry(store, client, RaceSequence, 10*time.Minute, newTestLogger())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }
	t.Cleanup(registry.Close)
	return registry, store, &now
}

func TestRegistry_GetReusesViewSession(t *testing.T) {
	registry, _, _ := newTestRegistry(t, NewMockITransactionClient(t))

	first, err := registry.Get(context.Background(), "view-1")
	require.NoError(t, err)
	second, err := registry.Get(context.Background(), "view-1")
	require.NoError(t, err)
	other, err := registry.Get(context.Background(), "view-2")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, registry.Len())
}

func TestRegistry_RestoresTokenFromStorage(t *testing.T) {
	ctx := context.Background()
	registry, store, _ := newTestRegistry(t, NewMockITransactionClient(t))
	require.NoError(t, store.SessionStore("view-1").Set(ctx, "sessionid=abc123"))

	view, err := registry.Get(ctx, "view-1")
	require.NoError(t, err)
	assert.True(t, view.Auth.IsAuthenticated())
	assert.Equal(t, testCred, view.Auth.Credential())
}

func TestRegistry_SweepEvictsIdleAndStopsLoop(t *testing.T) {
	ctx := context.Background()
	registry, store, now := newTestRegistry(t, NewMockITransactionClient(t))

	idle, err := registry.Get(ctx, "idle")
	require.NoError(t, err)
	require.NoError(t, idle.Auth.Login(ctx, "sessionid=abc123"))

	*now = now.Add(8 * time.Minute)
	_, err = registry.Get(ctx, "active")
	require.NoError(t, err)

	*now = now.Add(3 * time.Minute)
	assert.Equal(t, 1, registry.Sweep())
	assert.Equal(t, 1, registry.Len())

	_, err = idle.List.State(ctx)
	assert.ErrorIs(t, err, operator.ErrStopped)

	restored, err := registry.Get(ctx, "idle")
	require.NoError(t, err)
	assert.NotSame(t, idle, restored)
	assert.True(t, restored.Auth.IsAuthenticated(), "token survives eviction")

	token, ok, err := store.SessionStore("idle").Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sessionid=abc123", token)
}

func TestViewSession_HomeFormRefetchesList(t *testing.T) {
	ctx := context.Background()
	client := NewMockITransactionClient(t)
	client.EXPECT().CreateTransaction(mock.Anything, testCred, mock.Anything).Return(nil).Once()
	client.EXPECT().ListTransactions(mock.Anything, testCred, apiclient.DefaultListQuery()).Return(nil, nil).Once()

	registry, _, _ := newTestRegistry(t, client)
	view, err := registry.Get(ctx, "view-1")
	require.NoError(t, err)
	require.NoError(t, view.Auth.Login(ctx, testCred.Session))

	view.HomeForm.SetFields("main", "ACME", "12.50")
	require.NoError(t, view.HomeForm.Submit(ctx))
	view.List.Wait()

	state, err := view.List.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, PhaseLoaded, state.Phase)
}

func TestViewSession_DetailsFormReloadsDetail(t *testing.T) {
	ctx := context.Background()
	client := NewMockITransactionClient(t)
	client.EXPECT().GetTransaction(mock.Anything, testCred, int64(9)).
		Return(makeTransaction(9, "ACME", "5", apiclient.StatusSent), nil).Twice()
	client.EXPECT().CreateTransaction(mock.Anything, testCred, mock.Anything).Return(nil).Once()

	registry, _, _ := newTestRegistry(t, client)
	view, err := registry.Get(ctx, "view-1")
	require.NoError(t, err)
	require.NoError(t, view.Auth.Login(ctx, testCred.Session))

	view.Detail.Load(ctx, "9")
	view.DetailsForm.SetFields("main", "ACME", "1")
	require.NoError(t, view.DetailsForm.Submit(ctx))
	assert.Equal(t, DetailLoaded, view.Detail.State().Phase)
}

func TestRequireAuthenticated(t *testing.T) {
	ctx := context.Background()
	_, err := RequireAuthenticated(ctx)
	assert.ErrorIs(t, err, ErrNoViewSession)

	registry, _, _ := newTestRegistry(t, NewMockITransactionClient(t))
	view, err := registry.Get(ctx, "view-1")
	require.NoError(t, err)

	ctx = WithViewSession(ctx, view)
	_, err = RequireAuthenticated(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	require.NoError(t, view.Auth.Login(ctx, "sessionid=abc123"))
	got, err := RequireAuthenticated(ctx)
	require.NoError(t, err)
	assert.Same(t, view, got)
}

func TestViewSession_SwitchingUsersDropsPreviousUserState(t *testing.T) {
	ctx := context.Background()
	credA := apiclient.Credential{Session: "sessionid=alice"}
	credB := apiclient.Credential{Session: "sessionid=bob"}
	itemsA := []apiclient.Transaction{makeTransaction(1, "alice-rent", "800", apiclient.StatusPaid)}
	itemsB := []apiclient.Transaction{makeTransaction(7, "bob-gym", "30", apiclient.StatusSent)}
	startedLate := make(chan struct{})
	releaseLate := make(chan struct{})

	client := NewMockITransactionClient(t)
	client.EXPECT().ListTransactions(mock.Anything, credA, mock.Anything).Return(itemsA, nil).Once()
	client.EXPECT().ListTransactions(mock.Anything, credA, mock.Anything).
		RunAndReturn(func(context.Context, apiclient.Credential, apiclient.ListQuery) ([]apiclient.Transaction, error) {
			close(startedLate)
			<-releaseLate
			return itemsA, nil
		}).Once()
	client.EXPECT().GetTransaction(mock.Anything, credA, int64(1)).Return(itemsA[0], nil).Once()
	client.EXPECT().ListTransactions(mock.Anything, credB, apiclient.DefaultListQuery()).Return(itemsB, nil).Once()
	client.EXPECT().GetTransaction(mock.Anything, credB, int64(1)).
		Return(apiclient.Transaction{}, &apiclient.APIError{StatusCode: 404}).Once()

	registry, _, _ := newTestRegistry(t, client)
	view, err := registry.Get(ctx, "view-1")
	require.NoError(t, err)

	require.NoError(t, view.Auth.Login(ctx, credA.Session))
	require.NoError(t, view.List.Mount(ctx))
	view.List.Wait()
	require.NoError(t, view.List.SetContractorFilter(ctx, "alice"))
	<-startedLate
	require.Equal(t, DetailLoaded, view.Detail.Mount(ctx, "1").Phase)
	view.HomeForm.SetFields("main", "alice-rent", "5")

	require.NoError(t, view.Auth.Logout(ctx))
	require.NoError(t, view.Auth.Login(ctx, credB.Session))
	close(releaseLate)
	view.List.Wait()

	state, err := view.List.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Items, "in-flight fetch of the previous user is dropped")
	assert.Equal(t, apiclient.DefaultListQuery(), state.Query)
	assert.Equal(t, FormState{}, view.HomeForm.State())
	assert.Nil(t, view.Detail.State().Transaction)

	require.NoError(t, view.List.Mount(ctx))
	view.List.Wait()
	state, err = view.List.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, itemsB, state.Items)

	detail := view.Detail.Mount(ctx, "1")
	assert.Nil(t, detail.Transaction)
	assert.Equal(t, DetailLoadFailed, detail.Phase)
}

func TestViewSession_HomeShowsTransactionCreatedFromDetails(t *testing.T) {
	ctx := context.Background()
	before := []apiclient.Transaction{makeTransaction(9, "ACME", "5", apiclient.StatusSent)}
	after := append(before, makeTransaction(10, "ACME", "1", apiclient.StatusSent))

	client := NewMockITransactionClient(t)
	client.EXPECT().ListTransactions(mock.Anything, testCred, apiclient.DefaultListQuery()).Return(before, nil).Once()
	client.EXPECT().GetTransaction(mock.Anything, testCred, int64(9)).Return(before[0], nil).Twice()
	client.EXPECT().CreateTransaction(mock.Anything, testCred, mock.Anything).Return(nil).Once()
	client.EXPECT().ListTransactions(mock.Anything, testCred, apiclient.DefaultListQuery()).Return(after, nil).Once()

	registry, _, _ := newTestRegistry(t, client)
	view, err := registry.Get(ctx, "view-1")
	require.NoError(t, err)
	require.NoError(t, view.Auth.Login(ctx, testCred.Session))

	require.NoError(t, view.List.Mount(ctx))
	view.List.Wait()
	view.Detail.Mount(ctx, "9")
	view.DetailsForm.SetFields("main", "ACME", "1")
	require.NoError(t, view.DetailsForm.Submit(ctx))

	require.NoError(t, view.List.Mount(ctx))
	view.List.Wait()
	state, err := view.List.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, after, state.Items)
}

func TestViewSession_LoopStartsWithFirstListOperation(t *testing.T) {
	ctx := context.Background()
	client := NewMockITransactionClient(t)
	client.EXPECT().ListTransactions(mock.Anything, testCred, apiclient.DefaultListQuery()).Return(nil, nil).Once()

	registry, store, _ := newTestRegistry(t, client)
	require.NoError(t, store.SessionStore("view-1").Set(ctx, testCred.Session))
	view, err := registry.Get(ctx, "view-1")
	require.NoError(t, err)
	require.True(t, view.Auth.IsAuthenticated())
	assert.False(t, view.loop.Started())

	require.NoError(t, view.List.Mount(ctx))
	view.List.Wait()
	assert.True(t, view.loop.Started())
}
