package maybe

import (
	"reflect"

	"github.com/oliverbestmann/maybe/internal/refl"
)

// Concat combines the values of m and other.
//
// A nil value on either side is the identity and the other side is returned
// as is, which makes Nothing the identity element. Otherwise both values must
// be of the same kind and pass ConcatPolicy: strings and lists are joined,
// values with a Concat method delegate to it. Everything else yields Nothing.
func (m Maybe) Concat(other any) Maybe {
	o, ok := asMaybe(other)
	if !ok {
		return Nothing()
	}

	if refl.IsNil(m.value) {
		return o
	}

	if refl.IsNil(o.value) {
		return m
	}

	if ConcatPolicy.Rejects(m.value) || ConcatPolicy.Rejects(o.value) {
		return Nothing()
	}

	if KindOf(m.value) != KindOf(o.value) {
		return Nothing()
	}

	result, ok := concatValues(m.value, o.value)
	if !ok {
		return Nothing()
	}

	return Just(result)
}

func concatValues(a, b any) (any, bool) {
	if refl.HasMethod(a, "concat") {
		return refl.CallMethod(a, "concat", b)
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)

	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		// keep the type of the receiver
		out := reflect.New(ra.Type()).Elem()
		out.SetString(ra.String() + rb.String())
		return out.Interface(), true

	case isList(ra) && isList(rb):
		return concatLists(ra, rb), true

	default:
		return nil, false
	}
}

func isList(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// concatLists keeps the slice type if both sides share it, and falls back to
// a slice of the shared element type or to []any.
func concatLists(a, b reflect.Value) any {
	if a.Type() == b.Type() && a.Kind() == reflect.Slice {
		out := reflect.MakeSlice(a.Type(), 0, a.Len()+b.Len())
		out = reflect.AppendSlice(out, a)
		out = reflect.AppendSlice(out, b)
		return out.Interface()
	}

	elemType := anyType
	if a.Type().Elem() == b.Type().Elem() {
		elemType = a.Type().Elem()
	}

	out := reflect.MakeSlice(reflect.SliceOf(elemType), 0, a.Len()+b.Len())
	for _, list := range []reflect.Value{a, b} {
		for idx := range list.Len() {
			out = reflect.Append(out, list.Index(idx))
		}
	}

	return out.Interface()
}
