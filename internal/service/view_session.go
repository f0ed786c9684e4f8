package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/operator"
)

// ViewSession is everything one browser works with: its authentication state and the
// controllers of the home and details views.
type ViewSession struct {
	ID          string
	Auth        *AuthManager
	List        *TransactionListController
	HomeForm    *TransactionFormController
	Detail      *TransactionDetailController
	DetailsForm *TransactionFormController

	loop     *operator.OperatorDelegator
	lastSeen atomic.Int64
}

func newViewSession(id string, auth *AuthManager, client ITransactionClient, policy RacePolicy, logger *logrus.Logger) *ViewSession {
	// Started by the first list operation; sessions that never show the list cost no goroutine.
	loop := operator.NewOnDemandOperatorDelegator(1)

	v := &ViewSession{
		ID:   id,
		Auth: auth,
		loop: loop,
	}
	v.List = NewTransactionListController(loop, client, auth, policy, logger)
	v.Detail = NewTransactionDetailController(client, auth, logger)
	v.HomeForm = NewTransactionFormController(client, auth, logger, func(ctx context.Context) {
		if err := v.List.Refetch(ctx); err != nil {
			logger.WithError(err).Warn("ViewSession.HomeForm.refetch")
		}
	})
	v.DetailsForm = NewTransactionFormController(client, auth, logger, v.Detail.Reload)
	auth.OnChange(func(ctx context.Context) {
		if err := v.reset(ctx); err != nil {
			logger.WithError(err).WithField("viewID", id).Warn("ViewSession.reset")
		}
	})
	return v
}

// reset drops everything the previous user saw. It runs whenever the session logs
// in or out.
func (v *ViewSession) reset(ctx context.Context) error {
	v.Detail.Reset()
	v.HomeForm.Reset()
	v.DetailsForm.Reset()
	return v.List.Reset(ctx)
}

func (v *ViewSession) touch(now time.Time) {
	v.lastSeen.Store(now.UnixNano())
}

func (v *ViewSession) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, v.lastSeen.Load()))
}

// Close stops the view session's loop. Completions still in flight are dropped.
func (v *ViewSession) Close() {
	v.loop.Stop()
}

// RequireAuthenticated returns the view session of ctx if it is logged in.
func RequireAuthenticated(ctx context.Context) (*ViewSession, error) {
	view := ViewSessionFromContext(ctx)
	if view == nil {
		return nil, ErrNoViewSession
	}
	if !view.Auth.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	return view, nil
}

type viewSessionKey struct{}

func WithViewSession(ctx context.Context, view *ViewSession) context.Context {
	return context.WithValue(ctx, viewSessionKey{}, view)
}

// ViewSessionFromContext returns nil when ctx carries no view session.
func ViewSessionFromContext(ctx context.Context) *ViewSession {
	view, _ := ctx.Value(viewSessionKey{}).(*ViewSession)
	return view
}
