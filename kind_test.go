package maybe

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	var nilPointer *int
	var nilFunc func()
	number := 12

	cases := []struct {
		value any
		kind  Kind
	}{
		{value: nil, kind: KindNil},
		{value: nilPointer, kind: KindNil},
		{value: nilFunc, kind: KindNil},
		{value: 1, kind: KindNumber},
		{value: uint8(1), kind: KindNumber},
		{value: 1.5, kind: KindNumber},
		{value: math.NaN(), kind: KindNumber},
		{value: &number, kind: KindNumber},
		{value: celsius(1), kind: KindNumber},
		{value: "", kind: KindString},
		{value: nickname("x"), kind: KindString},
		{value: true, kind: KindBoolean},
		{value: double, kind: KindFunction},
		{value: []int{}, kind: KindArray},
		{value: []int(nil), kind: KindArray},
		{value: [2]int{}, kind: KindArray},
		{value: map[string]any{}, kind: KindObject},
		{value: box{}, kind: KindObject},
		{value: time.Now(), kind: KindDate},
		{value: &time.Time{}, kind: KindDate},
		{value: make(chan int), kind: KindOther},
	}

	for _, tc := range cases {
		require.Equal(t, tc.kind, KindOf(tc.value), "kind of %#v", tc.value)
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Number", KindNumber.String())
	require.Equal(t, "Date", KindDate.String())
	require.Equal(t, "Kind(42)", Kind(42).String())
}

func TestTruthy(t *testing.T) {
	zero := 0

	for _, value := range []any{nil, false, 0, 0.0, uint(0), math.NaN(), "", &zero, (*int)(nil)} {
		require.False(t, truthy(value), "%#v is falsy", value)
	}

	for _, value := range []any{true, 1, -1, 0.5, "0", " ", []int{}, map[string]any{}, box{}, double, time.Time{}} {
		require.True(t, truthy(value), "%#v is truthy", value)
	}
}
