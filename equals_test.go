package maybe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEquals(t *testing.T) {
	require.True(t, Just(1).Equals(Just(1)))
	require.False(t, Just(1).Equals(Just(2)))
	require.True(t, Nothing().Equals(Nothing()))
	require.False(t, Just(1).Equals(Nothing()))
	require.False(t, Nothing().Equals(Just(1)))

	t.Run("just nil is not nothing", func(t *testing.T) {
		require.False(t, Just(nil).Equals(Nothing()))
		require.True(t, Just(nil).Equals(Just(nil)))
	})

	t.Run("no maybe", func(t *testing.T) {
		for _, value := range notFunctions {
			require.False(t, Just(value).Equals(value))
		}
	})

	t.Run("deep", func(t *testing.T) {
		require.True(t, Just([]int{1, 2}).Equals(Just([]int{1, 2})))
		require.False(t, Just([]int{1, 2}).Equals(Just([]int{2, 1})))
		require.True(t, Just(map[string]any{"a": []any{1}}).Equals(Just(map[string]any{"a": []any{1}})))
		require.True(t, Just(box{value: 1}).Equals(Just(box{value: 1})))
		require.False(t, Just(box{value: 1}).Equals(Just(box{value: 2})))
	})

	t.Run("nested", func(t *testing.T) {
		require.True(t, Just(Just(1)).Equals(Just(Just(1))))
		require.False(t, Just(Just(1)).Equals(Just(Nothing())))
	})

	t.Run("nan", func(t *testing.T) {
		require.True(t, Just(math.NaN()).Equals(Just(math.NaN())))
	})

	t.Run("functions", func(t *testing.T) {
		require.True(t, Just(double).Equals(Just(double)))
		require.False(t, Just(double).Equals(Just(func(x int) int { return x })))

		nested := Just(map[string]any{"double": double, "all": []func(int) int{double}})
		require.True(t, nested.Equals(nested))
		require.False(t, nested.Equals(Just(map[string]any{"double": double, "all": []func(int) int{}})))
	})

	t.Run("pointer", func(t *testing.T) {
		other := Just(1)
		require.True(t, Just(1).Equals(&other))
	})

	t.Run("different types", func(t *testing.T) {
		require.False(t, Just(1).Equals(Just(int64(1))))
	})
}
