package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	require.Equal(t, "null", Print(nil))
	require.Equal(t, `"great"`, Print("great"))
	require.Equal(t, "13", Print(13))
	require.Equal(t, "true", Print(true))
	require.Equal(t, "[1,2]", Print([]int{1, 2}))
	require.Equal(t, `{"a":1}`, Print(map[string]int{"a": 1}))
	require.Equal(t, `{"Name":"cat"}`, Print(struct{ Name string }{Name: "cat"}))
}

func TestPrintFunction(t *testing.T) {
	printed := Print(strings.ToUpper)
	require.True(t, strings.HasPrefix(printed, "func(string) string"))
	require.Contains(t, printed, "strings.ToUpper")

	var fn func()
	require.Equal(t, "null", Print(fn))
}

func TestPrintFallback(t *testing.T) {
	ch := make(chan int)
	printed := Print(ch)
	require.True(t, strings.HasPrefix(printed, "0x"))
}
