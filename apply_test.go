package maybe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func double(x int) int {
	return x * 2
}

func TestApErrors(t *testing.T) {
	m := map[string]any{"type": "Maybe...Not"}

	for _, value := range []any{0, 1, "", "string", false, true, []any{}, map[string]any{}} {
		require.True(t, Just(value).Ap(nil).IsNothing(), "nothing when wrapped value is %v", value)
		require.True(t, Just(value).Ap(Just(0)).IsNothing(), "nothing when neither side holds a function")
	}

	for _, value := range append(notFunctions, m) {
		require.True(t, Just(double).Ap(value).IsNothing(), "nothing with %v", value)
	}
}

func TestApDemo(t *testing.T) {
	a := Of(3)
	f := Of(double)
	n := Nothing()

	require.Equal(t, "Just 6", a.Ap(f).String(), "a ap f")
	require.Equal(t, "Just 6", f.Ap(a).String(), "f ap a")
	require.True(t, f.Ap(n).IsNothing(), "f ap nothing")
	require.True(t, n.Ap(a).IsNothing(), "nothing ap a")
	require.True(t, n.Ap(f).IsNothing(), "nothing ap f")

	require.True(t, a.Ap(f).Equals(f.Ap(a)))
}

func TestApExample(t *testing.T) {
	const nothingOption = "_NOTHING_"

	safeDouble := func(x any) any {
		return SafeOf(x).Ap(Of(double)).ValueOr(nothingOption)
	}

	require.Equal(t, 20, safeDouble(10), "doubles the value safely")
	require.Equal(t, 0, safeDouble(0), "handles zero just fine")
	require.Equal(t, nothingOption, safeDouble(nil), "safely handles nil using Nothing")
	require.Equal(t, nothingOption, safeDouble([]int{1, 2}), "safely handles a non number")
	require.Equal(t, nothingOption, safeDouble("one hundred"), "safely handles a string")
}

func TestApApplicative(t *testing.T) {
	identity := func(x any) any { return x }

	m := Just(identity)
	j := Just(3)

	require.Equal(t, 3, m.Ap(j).ValueOr("Nothing"), "identity")
	require.Equal(t, Of(identity(3)), m.Ap(Of(3)), "homomorphism")

	applyTo := func(x any) func(func(any) any) any {
		return func(f func(any) any) any { return f(x) }
	}

	require.Equal(t, m.Ap(Of(3)), Of(applyTo(3)).Ap(m), "interchange")

	require.Equal(t, "Just 3", j.Ap(m).String(), "value applying the function works")
	require.Equal(t, "Just 3", m.Ap(j).String(), "function applying the value works too")
	require.Equal(t, "Nothing", j.Ap(j).String(), "value applying itself is nothing")
}

func TestApAlternative(t *testing.T) {
	x := Of(11)
	f := Of(func(x int) int { return x })
	g := Of(func(x int) int { return x * 12 })
	n := Nothing()

	require.Equal(t, x.Ap(f.Alt(g)), x.Ap(f).Alt(x.Ap(g)), "distributivity")
	require.Equal(t, x.Ap(n.Alt(g)), x.Ap(n).Alt(x.Ap(g)), "distributivity with nothing")
	require.Equal(t, Zero(), x.Ap(Zero()), "annihilation")
}

func TestApPointer(t *testing.T) {
	f := Of(double)
	require.Equal(t, Just(6), Just(3).Ap(&f))

	var missing *Maybe
	require.True(t, Just(3).Ap(missing).IsNothing())
}
