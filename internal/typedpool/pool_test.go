package typedpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	pool := New[[]int](nil)

	buf := pool.Get()
	require.NotNil(t, buf)
	require.Empty(t, *buf)

	*buf = append(*buf, 1, 2, 3)
	pool.Put(buf)

	// sync.Pool makes no promise to hand back the same value
	require.NotNil(t, pool.Get())
}

func TestPoolReset(t *testing.T) {
	var resets int
	pool := New(func(buf *[]any) {
		resets++
		clear(*buf)
		*buf = (*buf)[:0]
	})

	buf := pool.Get()
	*buf = append(*buf, "a", "b")
	pool.Put(buf)

	require.Equal(t, 1, resets)
	require.Empty(t, *buf)
	require.Equal(t, 2, cap(*buf))
}
