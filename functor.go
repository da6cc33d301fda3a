package maybe

import (
	"reflect"

	"github.com/oliverbestmann/maybe/internal/assert"
	"github.com/oliverbestmann/maybe/internal/refl"
	"github.com/oliverbestmann/maybe/internal/typedpool"
)

var anyType = reflect.TypeFor[any]()

var resultBuffers = typedpool.New(func(buf *[]any) {
	clear(*buf)
	*buf = (*buf)[:0]
})

// Map applies f to the held value and wraps the result in a Just.
// Nothing maps to Nothing without calling f.
//
// Values rejected by ScalarPolicy take the Ap route instead: a held scalar is
// passed to f, a held function is applied to f. A nil value maps to Nothing.
// Slices and arrays are mapped element by element, values with their own
// Map method delegate to it, everything else is passed to f as a whole.
func (m Maybe) Map(f any) Maybe {
	assert.IsFunc("f", f)

	if !m.just {
		return Nothing()
	}

	if ScalarPolicy.Rejects(m.value) {
		return m.mapAsAp(f)
	}

	return m.mapStructure(f)
}

func (m Maybe) mapAsAp(f any) Maybe {
	if refl.IsNil(m.value) {
		return Nothing()
	}

	return m.Ap(Just(f))
}

func (m Maybe) mapStructure(f any) Maybe {
	if refl.HasMethod(m.value, "map") {
		result, ok := refl.CallMethod(m.value, "map", f)
		if !ok {
			return Nothing()
		}

		return Just(result)
	}

	rv := reflect.ValueOf(m.value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return mapElements(rv, f)
	}

	return apply(f, m.value)
}

// mapElements produces a slice typed by the result type of f. If f returns
// an interface, the element type of the input is kept when every result fits
// into it, and []any is used otherwise.
func mapElements(rv reflect.Value, f any) Maybe {
	buf := resultBuffers.Get()
	defer resultBuffers.Put(buf)

	for idx := range rv.Len() {
		result, ok := refl.Call(f, rv.Index(idx).Interface())
		if !ok {
			return Nothing()
		}

		*buf = append(*buf, result)
	}

	results := *buf

	elemType := resultElemType(reflect.TypeOf(f), rv.Type().Elem(), results)

	out := reflect.MakeSlice(reflect.SliceOf(elemType), len(results), len(results))
	for idx, result := range results {
		if result != nil {
			out.Index(idx).Set(reflect.ValueOf(result))
		}
	}

	return Just(out.Interface())
}

func resultElemType(fnType, inputElemType reflect.Type, results []any) reflect.Type {
	if fnType.NumOut() > 0 && fnType.Out(0).Kind() != reflect.Interface {
		return fnType.Out(0)
	}

	for _, result := range results {
		if result == nil || !reflect.TypeOf(result).AssignableTo(inputElemType) {
			return anyType
		}
	}

	return inputElemType
}

func apply(f any, value any) Maybe {
	result, ok := refl.Call(f, value)
	if !ok {
		return Nothing()
	}

	return Just(result)
}
