package maybe

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/oliverbestmann/maybe/internal/refl"
)

// Kind classifies a held value at runtime. Dispatch in Map and Concat
// as well as Is work on kinds rather than on concrete Go types.
type Kind uint8

const (
	KindNil Kind = iota
	KindNumber
	KindString
	KindBoolean
	KindFunction
	KindArray
	KindObject
	KindDate
	KindOther
)

var kindNames = [...]string{
	KindNil:      "Nil",
	KindNumber:   "Number",
	KindString:   "String",
	KindBoolean:  "Boolean",
	KindFunction: "Function",
	KindArray:    "Array",
	KindObject:   "Object",
	KindDate:     "Date",
	KindOther:    "Other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

var timeType = reflect.TypeFor[time.Time]()

// KindOf classifies value. Non nil pointers classify as the value they point to,
// a time.Time is a date and not an object.
func KindOf(value any) Kind {
	if refl.IsNil(value) {
		return KindNil
	}

	return kindOf(reflect.ValueOf(value))
}

func kindOf(rv reflect.Value) Kind {
	if rv.Type() == timeType {
		return KindDate
	}

	switch kind := rv.Kind(); {
	case refl.IsNumeric(kind):
		return KindNumber

	case kind == reflect.String:
		return KindString

	case kind == reflect.Bool:
		return KindBoolean

	case kind == reflect.Func:
		return KindFunction

	case kind == reflect.Slice, kind == reflect.Array:
		return KindArray

	case kind == reflect.Map, kind == reflect.Struct:
		return KindObject

	case kind == reflect.Pointer, kind == reflect.Interface:
		if rv.IsNil() {
			return KindNil
		}

		return kindOf(rv.Elem())

	default:
		return KindOther
	}
}

// truthy reports false for the values a settled source treats as "no value":
// nil, false, zero numbers, NaN and the empty string.
func truthy(value any) bool {
	if refl.IsNil(value) {
		return false
	}

	rv := deref(reflect.ValueOf(value))
	switch kindOf(rv) {
	case KindNil:
		return false

	case KindBoolean:
		return rv.Bool()

	case KindString:
		return rv.Len() > 0

	case KindNumber:
		return !rv.IsZero() && !isNaN(rv)

	default:
		return true
	}
}

func deref(rv reflect.Value) reflect.Value {
	for (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && !rv.IsNil() {
		rv = rv.Elem()
	}

	return rv
}

func isNaN(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}
