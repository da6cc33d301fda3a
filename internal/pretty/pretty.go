// Package pretty renders held values the way Maybe.String shows them.
package pretty

import (
	"fmt"
	"reflect"
	"runtime"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Print renders functions by their symbol name and everything else as JSON.
// Values that cannot be encoded fall back to their %v form.
func Print(value any) string {
	if value == nil {
		return "null"
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Func {
		return funcName(rv)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(encoded)
}

func funcName(rv reflect.Value) string {
	if rv.IsNil() {
		return "null"
	}

	if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
		return fmt.Sprintf("%s %s", rv.Type(), fn.Name())
	}

	return rv.Type().String()
}
