package maybe

import (
	"context"
	"log/slog"
	"reflect"
	"sync/atomic"

	"github.com/oliverbestmann/maybe/internal/refl"
)

// Pending is a Maybe that waits for a Source to settle. Until then it reads as
// Nothing. It settles exactly once: a truthy result becomes Just(result), a
// falsy result (nil, false, 0, NaN, "") or a rejection becomes Nothing.
// After settlement the snapshot returned by Maybe never changes again.
type Pending struct {
	noCopy noCopy

	source Source
	state  atomic.Pointer[settlement]
	done   chan struct{}
}

type settlement struct {
	value Maybe
	err   error
}

// NewPending registers on source and returns the unsettled wrapper.
func NewPending(source Source) *Pending {
	if refl.IsNil(source) {
		return settledNothing()
	}

	p := &Pending{
		source: source,
		done:   make(chan struct{}),
	}

	source.OnSettled(p.settle)

	return p
}

// AsyncOf wraps a Source or a receive channel into a Pending. Any other
// value produces a Pending that already settled as Nothing and has no source.
func AsyncOf(value any) *Pending {
	if refl.IsNil(value) {
		return settledNothing()
	}

	if source, ok := value.(Source); ok {
		return NewPending(source)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Chan && rv.Type().ChanDir()&reflect.RecvDir != 0 {
		return NewPending(fromReflectChannel(rv))
	}

	return settledNothing()
}

func settledNothing() *Pending {
	p := &Pending{done: make(chan struct{})}
	p.state.Store(&settlement{value: Nothing()})
	close(p.done)
	return p
}

func (p *Pending) settle(value any, err error) {
	result := Nothing()
	if err == nil && truthy(value) {
		result = Just(value)
	}

	if !p.state.CompareAndSwap(nil, &settlement{value: result, err: err}) {
		return
	}

	close(p.done)

	if err != nil {
		slog.Debug("Pending Maybe rejected", slog.Any("error", err))
		return
	}

	slog.Debug("Pending Maybe settled", slog.Any("value", result))
}

// Maybe returns the current state: Nothing while unsettled, the final value afterwards.
func (p *Pending) Maybe() Maybe {
	if s := p.state.Load(); s != nil {
		return s.value
	}

	return Nothing()
}

func (p *Pending) Settled() bool {
	return p.state.Load() != nil
}

// Source returns the source the Pending is waiting for, or nil once it has settled.
func (p *Pending) Source() Source {
	if p.Settled() {
		return nil
	}

	return p.source
}

// Err returns the error the source was rejected with.
func (p *Pending) Err() error {
	if s := p.state.Load(); s != nil {
		return s.err
	}

	return nil
}

// Done is closed once the Pending has settled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the Pending has settled or ctx is done. A rejected
// source yields Nothing together with the rejection error.
func (p *Pending) Await(ctx context.Context) (Maybe, error) {
	select {
	case <-p.done:
		s := p.state.Load()
		return s.value, s.err

	case <-ctx.Done():
		return Nothing(), ctx.Err()
	}
}

func (p *Pending) IsJust() bool {
	return p.Maybe().IsJust()
}

func (p *Pending) IsNothing() bool {
	return p.Maybe().IsNothing()
}

func (p *Pending) ValueOr(defaultValue any) any {
	return p.Maybe().ValueOr(defaultValue)
}

func (p *Pending) String() string {
	return p.Maybe().String()
}
