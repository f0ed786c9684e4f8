package actions

import (
	"context"
)

// IAction is one unit of work run on an operator's loop.
type IAction interface {
	Perform(ctx context.Context) error
}

// Func adapts a plain function to IAction.
type Func func(ctx context.Context) error

func (f Func) Perform(ctx context.Context) error {
	return f(ctx)
}
