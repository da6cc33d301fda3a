package refl

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

var errorType = reflect.TypeFor[error]()

// IsNil reports true for an untyped nil as well as for nil
// pointers, functions, channels and interfaces hidden inside an any.
// Nil slices and maps are not nil: they are empty collections.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsFunc reports whether value is a function that can be called.
func IsFunc(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func IsNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// Call invokes fn with the given arguments. Superfluous arguments are dropped,
// missing ones make the call fail. The first result is returned, unless the
// last result is a non nil error, in which case the call fails too.
func Call(fn any, args ...any) (any, bool) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, false
	}

	return call(fv, args)
}

// Accepts reports whether fn is a function that can be called with args,
// following the same argument rules as Call.
func Accepts(fn any, args ...any) bool {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return false
	}

	_, ok := arguments(fv.Type(), args)
	return ok
}

// HasCapabilities reports whether value provides every named capability,
// either as an exported method or intrinsically through its kind.
func HasCapabilities(value any, names ...string) bool {
	if value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	for _, name := range names {
		if !Intrinsic(rv.Kind(), name) && !rv.MethodByName(MethodName(name)).IsValid() {
			return false
		}
	}

	return true
}

// HasMethod reports whether value has an exported method for the capability.
func HasMethod(value any, name string) bool {
	if value == nil {
		return false
	}

	return reflect.ValueOf(value).MethodByName(MethodName(name)).IsValid()
}

// CallMethod invokes the method providing the named capability on value.
func CallMethod(value any, name string, args ...any) (any, bool) {
	if value == nil {
		return nil, false
	}

	method := reflect.ValueOf(value).MethodByName(MethodName(name))
	if !method.IsValid() {
		return nil, false
	}

	return call(method, args)
}

// Intrinsic reports whether values of the given kind provide the capability
// without declaring a method for it.
func Intrinsic(kind reflect.Kind, name string) bool {
	switch name {
	case "map":
		return kind == reflect.Slice || kind == reflect.Array
	case "concat":
		return kind == reflect.Slice || kind == reflect.Array || kind == reflect.String
	default:
		return false
	}
}

// MethodName maps a capability name like "concat" to its method name "Concat".
func MethodName(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(first)) + name[size:]
}

func call(fv reflect.Value, args []any) (any, bool) {
	ty := fv.Type()

	in, ok := arguments(ty, args)
	if !ok {
		return nil, false
	}

	return results(ty, fv.Call(in))
}

func arguments(ty reflect.Type, args []any) ([]reflect.Value, bool) {
	numIn := ty.NumIn()

	if ty.IsVariadic() {
		fixed := numIn - 1
		if len(args) < fixed {
			return nil, false
		}

		in := make([]reflect.Value, 0, len(args))
		for idx, arg := range args {
			paramType := ty.In(min(idx, fixed))
			if idx >= fixed {
				paramType = paramType.Elem()
			}

			value, ok := coerce(arg, paramType)
			if !ok {
				return nil, false
			}

			in = append(in, value)
		}

		return in, true
	}

	if len(args) < numIn {
		return nil, false
	}

	in := make([]reflect.Value, numIn)
	for idx := range numIn {
		value, ok := coerce(args[idx], ty.In(idx))
		if !ok {
			return nil, false
		}

		in[idx] = value
	}

	return in, true
}

func coerce(arg any, ty reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		return reflect.Zero(ty), true
	}

	value := reflect.ValueOf(arg)
	if value.Type().AssignableTo(ty) {
		return value, true
	}

	if IsNumeric(value.Kind()) && IsNumeric(ty.Kind()) && value.Type().ConvertibleTo(ty) {
		return value.Convert(ty), true
	}

	return reflect.Value{}, false
}

func results(ty reflect.Type, out []reflect.Value) (any, bool) {
	if len(out) == 0 {
		return nil, true
	}

	if last := len(out) - 1; ty.Out(last) == errorType {
		if !out[last].IsNil() {
			return nil, false
		}

		out = out[:last]
		if len(out) == 0 {
			return nil, true
		}
	}

	return out[0].Interface(), true
}
