// Package lazy defers construction of a value until the first time it is
// needed. A successful construction is kept for the life of the process; a
// failed one is not, so the next caller tries again.
package lazy

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

type State int

const (
	Uninitialized State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "uninitialized"
	}
}

type Value[T any] struct {
	init  func(ctx context.Context) (T, error)
	group singleflight.Group

	mu    sync.RWMutex
	state State
	value T
	err   error
}

func New[T any](init func(ctx context.Context) (T, error)) *Value[T] {
	return &Value[T]{init: init}
}

// Get returns the value, constructing it first if needed. Concurrent callers
// that arrive while construction is in flight wait for and share its result.
func (v *Value[T]) Get(ctx context.Context) (T, error) {
	if val, ok := v.ready(); ok {
		return val, nil
	}

	_, err, _ := v.group.Do("init", func() (any, error) {
		if _, ok := v.ready(); ok {
			return nil, nil
		}

		// construction is shared, so one caller's cancellation must not leak into it
		val, err := v.init(context.WithoutCancel(ctx))

		v.mu.Lock()
		defer v.mu.Unlock()
		if err != nil {
			v.state = Failed
			v.err = err
			return nil, err
		}
		v.state = Ready
		v.value = val
		v.err = nil
		return nil, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	val, _ := v.ready()
	return val, nil
}

func (v *Value[T]) ready() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.state == Ready
}

func (v *Value[T]) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Err is the most recent construction failure, nil once Ready.
func (v *Value[T]) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

// Close releases a constructed value with fn and returns to Uninitialized.
// It is a no-op when nothing was constructed.
func (v *Value[T]) Close(fn func(T) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != Ready {
		return nil
	}

	err := fn(v.value)
	var zero T
	v.value = zero
	v.state = Uninitialized
	return err
}
