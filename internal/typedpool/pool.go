package typedpool

import "sync"

// Pool is a sync.Pool of *T values.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(value *T)
}

// New creates an empty pool. If reset is not nil, it is applied to
// every value handed back with Put.
func New[T any](reset func(value *T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return new(T) },
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

func (p *Pool[T]) Put(value *T) {
	if p.reset != nil {
		p.reset(value)
	}

	p.pool.Put(value)
}
