package maybe

import (
	"fmt"
	"reflect"
	"sync"
)

// Source delivers a single value at some point in the future.
type Source interface {
	// OnSettled registers fn to be called exactly once, with either the
	// value or the error the source settled with. Callbacks registered
	// after settlement are called right away.
	OnSettled(fn func(value any, err error))
}

// Future is a Source that is settled by calling Resolve or Reject.
type Future struct {
	mu        sync.Mutex
	settled   bool
	value     any
	err       error
	callbacks []func(value any, err error)
}

func NewFuture() *Future {
	return &Future{}
}

// Go runs fn on a new goroutine and settles the returned future with its result.
// A panic in fn rejects the future.
func Go(fn func() (any, error)) *Future {
	future := NewFuture()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				future.Reject(fmt.Errorf("source panicked: %v", p))
			}
		}()

		value, err := fn()
		if err != nil {
			future.Reject(err)
			return
		}

		future.Resolve(value)
	}()

	return future
}

// FromChannel settles with the first value received from ch.
// If ch is closed before a value arrives, the source is rejected with ErrSourceClosed.
func FromChannel[T any](ch <-chan T) Source {
	future := NewFuture()

	go func() {
		value, ok := <-ch
		if !ok {
			future.Reject(ErrSourceClosed)
			return
		}

		future.Resolve(value)
	}()

	return future
}

// fromReflectChannel does the same as FromChannel for a channel of unknown type.
func fromReflectChannel(ch reflect.Value) Source {
	future := NewFuture()

	go func() {
		value, ok := ch.Recv()
		if !ok {
			future.Reject(ErrSourceClosed)
			return
		}

		future.Resolve(value.Interface())
	}()

	return future
}

// Resolve settles the future with value. It returns false if the future was already settled.
func (f *Future) Resolve(value any) bool {
	return f.settle(value, nil)
}

// Reject settles the future with err. It returns false if the future was already settled.
func (f *Future) Reject(err error) bool {
	return f.settle(nil, err)
}

func (f *Future) OnSettled(fn func(value any, err error)) {
	f.mu.Lock()

	if !f.settled {
		f.callbacks = append(f.callbacks, fn)
		f.mu.Unlock()
		return
	}

	value, err := f.value, f.err
	f.mu.Unlock()

	fn(value, err)
}

func (f *Future) settle(value any, err error) bool {
	f.mu.Lock()

	if f.settled {
		f.mu.Unlock()
		return false
	}

	f.settled = true
	f.value, f.err = value, err

	callbacks := f.callbacks
	f.callbacks = nil

	f.mu.Unlock()

	// run callbacks outside of the lock, they might register new ones
	for _, callback := range callbacks {
		callback(value, err)
	}

	return true
}
