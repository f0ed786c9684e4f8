package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/storage"
)

// Registry keeps the live view sessions, creating them on first use and evicting the
// ones that have been idle for longer than idleTimeout.
type Registry struct {
	storage     *storage.Storage
	client      ITransactionClient
	policy      RacePolicy
	idleTimeout time.Duration
	logger      *logrus.Logger
	now         func() time.Time

	mu    sync.Mutex
	views map[string]*ViewSession
}

func NewRegistry(store *storage.Storage, client ITransactionClient, policy RacePolicy, idleTimeout time.Duration, logger *logrus.Logger) *Registry {
	return &Registry{
		storage:     store,
		client:      client,
		policy:      policy,
		idleTimeout: idleTimeout,
		logger:      logger,
		now:         time.Now,
		views:       make(map[string]*ViewSession),
	}
}

// Get returns the view session id, restoring its token from storage if it is not live.
func (r *Registry) Get(ctx context.Context, id string) (*ViewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if view, ok := r.views[id]; ok {
		view.touch(r.now())
		return view, nil
	}

	auth, err := NewAuthManager(ctx, r.storage.SessionStore(id))
	if err != nil {
		return nil, err
	}

	view := newViewSession(id, auth, r.client, r.policy, r.logger)
	view.touch(r.now())
	r.views[id] = view

	r.logger.WithFields(logrus.Fields{
		"viewID":        id,
		"authenticated": auth.IsAuthenticated(),
	}).Debug("Registry.Get.created")
	return view, nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep evicts idle view sessions and returns how many were evicted. Their persisted
// tokens are kept, so a returning browser is still logged in.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var idle []*ViewSession
	for id, view := range r.views {
		if view.idleSince(now) >= r.idleTimeout {
			idle = append(idle, view)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, view := range idle {
		view.Close()
	}
	if len(idle) > 0 {
		r.logger.WithField("evicted", len(idle)).Info("Registry.Sweep.evicted")
	}
	return len(idle)
}

// RunSweeper sweeps periodically until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context) error {
	interval := r.idleTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close stops every live view session.
func (r *Registry) Close() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*ViewSession)
	r.mu.Unlock()

	for _, view := range views {
		view.Close()
	}
}
