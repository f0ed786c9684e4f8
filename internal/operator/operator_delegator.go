package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/budget-web/internal/operator/actions"
)

// ErrStopped is returned by Process once the delegator has been stopped.
var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
// With a single worker, actions run one at a time in the order they were enqueued.
type OperatorDelegator struct {
	queue      chan ActionItem
	done       chan struct{}
	numWorkers int
	onDemand   bool
	wg         sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
}

func NewOperatorDelegator(numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		queue:      make(chan ActionItem, 64),
		done:       make(chan struct{}),
		numWorkers: numWorkers,
	}
}

// NewOnDemandOperatorDelegator returns a delegator whose workers start with the first
// Process call instead of an explicit Start.
func NewOnDemandOperatorDelegator(numWorkers int) *OperatorDelegator {
	d := NewOperatorDelegator(numWorkers)
	d.onDemand = true
	return d
}

// Start launches the workers. It does nothing once the delegator is started or stopped.
func (d *OperatorDelegator) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}
	d.started = true
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.queue, d.done)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

func (d *OperatorDelegator) Started() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started
}

// Stop ends the workers. Items still queued are dropped and their callers get ErrStopped.
func (d *OperatorDelegator) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.done)
	d.mu.Unlock()

	d.wg.Wait()
}

// Process enqueues action and waits for it to run.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	if d.onDemand {
		d.Start()
	}

	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case d.queue <- item:
	case <-d.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-d.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}
