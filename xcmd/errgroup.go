// Package xcmd holds small concurrency helpers.
package xcmd

import (
	"context"
	"fmt"
	"sync"
)

// Group runs tasks concurrently and cancels its context on the first error.
// Unlike errgroup it also converts a panicking task into that error.
type Group struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	wg      sync.WaitGroup
	sem     chan struct{}
	errOnce sync.Once
	err     error
}

// ErrGroup returns a new Group and an associated Context derived from ctx.
// The derived Context is canceled when the first task fails or when Wait
// returns, whichever happens first.
func ErrGroup(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancelCause(ctx)
	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// SetLimit bounds the number of tasks running at once. A limit below one
// removes the bound. It must not be called while tasks are running.
func (g *Group) SetLimit(n int) {
	if n < 1 {
		g.sem = nil
		return
	}
	g.sem = make(chan struct{}, n)
}

// Go runs f in a new goroutine, blocking first while the limit is reached.
// Tasks queued after the context is canceled are skipped.
func (g *Group) Go(f func(ctx context.Context) error) {
	if g.ctx.Err() != nil {
		return
	}

	if g.sem != nil {
		select {
		case g.sem <- struct{}{}:
		case <-g.ctx.Done():
			return
		}
	}

	g.wg.Add(1)

	go func() {
		defer g.wg.Done()
		if g.sem != nil {
			defer func() { <-g.sem }()
		}

		if err := g.run(f); err != nil {
			g.fail(err)
		}
	}()
}

func (g *Group) run(f func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("xcmd: task panicked: %v", r)
		}
	}()

	return f(g.ctx)
}

func (g *Group) fail(err error) {
	g.errOnce.Do(func() {
		g.err = err
		g.cancel(err)
	})
}

// Wait blocks until all tasks have returned and reports the first error.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.cancel(nil)
	return g.err
}
