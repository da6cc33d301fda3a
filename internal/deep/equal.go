// Package deep compares arbitrary held values structurally.
package deep

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var options = cmp.Options{
	// values are compared as data, hidden fields included
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),

	// functions are equal only to themselves, at any depth
	cmp.FilterValues(bothFuncs, cmp.Comparer(sameFunc)),
}

// Equal reports whether a and b are deeply equal.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, options)
}

func bothFuncs(x, y any) bool {
	return reflect.ValueOf(x).Kind() == reflect.Func && reflect.ValueOf(y).Kind() == reflect.Func
}

func sameFunc(x, y any) bool {
	fx, fy := reflect.ValueOf(x), reflect.ValueOf(y)
	return fx.Type() == fy.Type() && fx.Pointer() == fy.Pointer()
}
