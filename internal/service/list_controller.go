package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/config"
	"github.com/carson-networks/budget-web/internal/operator/actions"
)

// RacePolicy decides which of several overlapping list fetches ends up on screen.
type RacePolicy int

const (
	// RaceSequence applies a completion only if no later-issued fetch has already been applied.
	RaceSequence RacePolicy = iota
	// RaceArrival lets whichever completion arrives last overwrite the items.
	RaceArrival
)

func ParseRacePolicy(s string) (RacePolicy, error) {
	switch s {
	case config.RacePolicySequence:
		return RaceSequence, nil
	case config.RacePolicyArrival:
		return RaceArrival, nil
	}
	return RaceSequence, fmt.Errorf("unknown race policy %q", s)
}

func (p RacePolicy) String() string {
	if p == RaceArrival {
		return config.RacePolicyArrival
	}
	return config.RacePolicySequence
}

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseError   Phase = "error"
)

// ListState is a snapshot of the list view.
type ListState struct {
	Query apiclient.ListQuery
	Items []apiclient.Transaction
	Phase Phase
}

// dispatcher runs actions one at a time. *operator.OperatorDelegator satisfies it.
type dispatcher interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionListController owns the sort and filter inputs of the transaction list
// and the last result set. Every mutation runs as an action on the view session's
// loop; list requests run outside it and post their completion back as an action.
type TransactionListController struct {
	loop   dispatcher
	client ITransactionClient
	auth   credentialSource
	policy RacePolicy
	logger *logrus.Logger

	// Owned by the loop.
	query   apiclient.ListQuery
	items   []apiclient.Transaction
	phase   Phase
	issued  uint64
	applied uint64
	// Completions with seq <= discarded were issued before the last Reset.
	discarded uint64

	fetches sync.WaitGroup
}

func NewTransactionListController(loop dispatcher, client ITransactionClient, auth credentialSource, policy RacePolicy, logger *logrus.Logger) *TransactionListController {
	return &TransactionListController{
		loop:   loop,
		client: client,
		auth:   auth,
		policy: policy,
		logger: logger,
		query:  apiclient.DefaultListQuery(),
		phase:  PhaseIdle,
	}
}

// Mount issues a fetch for the current query. It runs every time the list view is shown.
func (c *TransactionListController) Mount(ctx context.Context) error {
	return c.Refetch(ctx)
}

// Reset returns the controller to its initial state. Fetches still in flight are
// discarded when they complete.
func (c *TransactionListController) Reset(ctx context.Context) error {
	return c.run(ctx, func(context.Context) error {
		c.query = apiclient.DefaultListQuery()
		c.items = nil
		c.phase = PhaseIdle
		c.discarded = c.issued
		c.applied = c.issued
		return nil
	})
}

func (c *TransactionListController) SetSortBy(ctx context.Context, key apiclient.SortKey) error {
	if _, err := apiclient.ParseSortKey(string(key)); err != nil {
		return err
	}
	return c.update(ctx, func(q *apiclient.ListQuery) bool {
		if q.SortBy == key {
			return false
		}
		q.SortBy = key
		return true
	})
}

func (c *TransactionListController) SetOrder(ctx context.Context, order apiclient.SortOrder) error {
	if _, err := apiclient.ParseSortOrder(string(order)); err != nil {
		return err
	}
	return c.update(ctx, func(q *apiclient.ListQuery) bool {
		if q.Order == order {
			return false
		}
		q.Order = order
		return true
	})
}

// SetContractorFilter sets the contractor substring filter. Empty text clears it.
func (c *TransactionListController) SetContractorFilter(ctx context.Context, text string) error {
	return c.update(ctx, func(q *apiclient.ListQuery) bool {
		current := ""
		if q.Contractor != nil {
			current = *q.Contractor
		}
		if current == text {
			return false
		}
		if text == "" {
			q.Contractor = nil
		} else {
			q.Contractor = &text
		}
		return true
	})
}

// SetDateFilter sets the exact-date filter. A nil date clears it.
func (c *TransactionListController) SetDateFilter(ctx context.Context, date *time.Time) error {
	var day *time.Time
	if date != nil {
		d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		day = &d
	}
	return c.update(ctx, func(q *apiclient.ListQuery) bool {
		switch {
		case q.Date == nil && day == nil:
			return false
		case q.Date != nil && day != nil && q.Date.Equal(*day):
			return false
		}
		q.Date = day
		return true
	})
}

// Refetch issues a list request for the current query.
func (c *TransactionListController) Refetch(ctx context.Context) error {
	return c.run(ctx, func(ctx context.Context) error {
		c.startFetch(ctx)
		return nil
	})
}

// State returns a copy of the current view state.
func (c *TransactionListController) State(ctx context.Context) (ListState, error) {
	var state ListState
	err := c.run(ctx, func(context.Context) error {
		state = ListState{
			Query: cloneQuery(c.query),
			Items: append([]apiclient.Transaction(nil), c.items...),
			Phase: c.phase,
		}
		return nil
	})
	return state, err
}

// Wait blocks until every list request issued so far has completed.
func (c *TransactionListController) Wait() {
	c.fetches.Wait()
}

// update applies change to the query and refetches when it reports a change.
func (c *TransactionListController) update(ctx context.Context, change func(q *apiclient.ListQuery) bool) error {
	return c.run(ctx, func(ctx context.Context) error {
		if !change(&c.query) {
			return nil
		}
		c.startFetch(ctx)
		return nil
	})
}

func (c *TransactionListController) run(ctx context.Context, fn func(ctx context.Context) error) error {
	return c.loop.Process(ctx, actions.Func(fn))
}

// startFetch must run on the loop.
func (c *TransactionListController) startFetch(ctx context.Context) {
	c.issued++
	seq := c.issued
	query := cloneQuery(c.query)
	cred := c.auth.Credential()
	c.phase = PhaseLoading

	// The request outlives the HTTP request that triggered it.
	fetchCtx := context.WithoutCancel(ctx)

	c.fetches.Add(1)
	go func() {
		defer c.fetches.Done()

		start := time.Now()
		items, err := c.client.ListTransactions(fetchCtx, cred, query)
		elapsed := time.Since(start)

		perr := c.run(fetchCtx, func(context.Context) error {
			c.complete(seq, items, err, elapsed)
			return nil
		})
		if perr != nil {
			c.logger.WithError(perr).WithField("seq", seq).Debug("TransactionListController.fetch.dropped")
		}
	}()
}

// complete must run on the loop.
func (c *TransactionListController) complete(seq uint64, items []apiclient.Transaction, err error, elapsed time.Duration) {
	log := c.logger.WithFields(logrus.Fields{
		"seq":        seq,
		"issued":     c.issued,
		"policy":     c.policy.String(),
		"durationMs": elapsed.Milliseconds(),
	})

	if seq <= c.discarded {
		log.Debug("TransactionListController.fetch.discarded")
		return
	}
	if c.policy == RaceSequence {
		if seq < c.applied {
			log.WithField("applied", c.applied).Info("TransactionListController.fetch.stale")
			return
		}
		c.applied = seq
	}
	settles := c.policy == RaceArrival || seq == c.issued

	if err != nil {
		log.WithError(err).Error("TransactionListController.fetch.failed")
		if settles {
			c.phase = PhaseError
		}
		return
	}

	c.items = items
	if settles {
		c.phase = PhaseLoaded
	}
	log.WithField("count", len(items)).Debug("TransactionListController.fetch.applied")
}

func cloneQuery(q apiclient.ListQuery) apiclient.ListQuery {
	out := apiclient.ListQuery{SortBy: q.SortBy, Order: q.Order}
	if q.Contractor != nil {
		contractor := strings.Clone(*q.Contractor)
		out.Contractor = &contractor
	}
	if q.Date != nil {
		date := *q.Date
		out.Date = &date
	}
	return out
}
