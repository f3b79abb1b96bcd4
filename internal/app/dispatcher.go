package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrDispatcherStopped = errors.New("dispatcher stopped")

// Dispatcher is the single goroutine that applies every state transition.
// Tasks run to completion in submission order; none may Submit again.
type Dispatcher struct {
	tasks chan func()
	done  chan struct{}
}

func NewDispatcher(queue int) *Dispatcher {
	return &Dispatcher{
		tasks: make(chan func(), queue),
		done:  make(chan struct{}),
	}
}

// Run processes tasks until ctx is canceled.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer close(d.done)
	log.Info().Str("module", "app.dispatcher").Msg("dispatcher started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "app.dispatcher").Msg("dispatcher stopped")
			return nil
		case task := <-d.tasks:
			d.run(task)
		}
	}
}

func (d *Dispatcher) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("module", "app.dispatcher").Str("panic", fmt.Sprint(r)).Msg("task panicked, event dropped")
		}
	}()
	task()
}

// Submit enqueues task without waiting for it to run.
func (d *Dispatcher) Submit(ctx context.Context, task func()) error {
	select {
	case d.tasks <- task:
		return nil
	case <-d.done:
		return ErrDispatcherStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do enqueues task and blocks until it has run.
func (d *Dispatcher) Do(ctx context.Context, task func()) error {
	finished := make(chan struct{})
	err := d.Submit(ctx, func() {
		defer close(finished)
		task()
	})
	if err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-d.done:
		return ErrDispatcherStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}
