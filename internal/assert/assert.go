package assert

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/maybe/internal/refl"
)

// NotAFunctionError is raised when a callback parameter does not hold a function.
type NotAFunctionError struct {
	// Param names the offending parameter, e.g. "f", "left" or "right".
	Param string
	Value any
}

func (err *NotAFunctionError) Error() string {
	return fmt.Sprintf("%s is not a function, got %T", err.Param, err.Value)
}

// IsFunc panics with a *NotAFunctionError if value is not a callable function.
func IsFunc(param string, value any) {
	if !refl.IsFunc(value) {
		panic(&NotAFunctionError{Param: param, Value: value})
	}
}

// ArgumentError is raised when a callback cannot take the arguments it is called with.
type ArgumentError struct {
	Param string
	Value any
	Args  []any
}

func (err *ArgumentError) Error() string {
	types := make([]string, len(err.Args))
	for idx, arg := range err.Args {
		types[idx] = fmt.Sprintf("%T", arg)
	}

	return fmt.Sprintf("%s of type %T cannot be called with (%s)", err.Param, err.Value, strings.Join(types, ", "))
}

// Accepts panics with an *ArgumentError if fn cannot be called with args.
func Accepts(param string, fn any, args ...any) {
	if !refl.Accepts(fn, args...) {
		panic(&ArgumentError{Param: param, Value: fn, Args: args})
	}
}
