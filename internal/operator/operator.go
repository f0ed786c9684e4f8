package operator

import (
	"context"

	"github.com/carson-networks/budget-web/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	queue <-chan ActionItem
	done  <-chan struct{}
}

func NewOperator(queue <-chan ActionItem, done <-chan struct{}) *Operator {
	return &Operator{
		queue: queue,
		done:  done,
	}
}

// Run processes items until done is closed.
func (o *Operator) Run() {
	for {
		select {
		case item := <-o.queue:
			o.processItem(item)
		case <-o.done:
			return
		}
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
