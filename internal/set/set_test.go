package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetOf(t *testing.T) {
	s := Of("map", "concat", "map")

	require.True(t, s.Has("map"))
	require.True(t, s.Has("concat"))
	require.False(t, s.Has("chain"))
}

func TestSetZeroValue(t *testing.T) {
	var s Set[int]
	require.False(t, s.Has(1))

	require.True(t, s.Insert(1))
	require.False(t, s.Insert(1))
	require.True(t, s.Has(1))
}
