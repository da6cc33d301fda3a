package maybe

// Standalone forms of the Maybe methods. The curried form takes the
// configuring argument first and returns a function of the Maybe. The
// uncurried form, suffixed with U, takes all arguments at once.

func Map(f any) func(m Maybe) Maybe {
	return func(m Maybe) Maybe {
		return m.Map(f)
	}
}

func MapU(f any, m Maybe) Maybe {
	return m.Map(f)
}

func Chain(f any) func(m Maybe) Maybe {
	return func(m Maybe) Maybe {
		return m.Chain(f)
	}
}

func ChainU(f any, m Maybe) Maybe {
	return m.Chain(f)
}

// Ap returns a function computing m.Ap(other).
func Ap(m Maybe) func(other any) Maybe {
	return m.Ap
}

func ApU(m Maybe, other any) Maybe {
	return m.Ap(other)
}

func Alt(m Maybe) func(other any) Maybe {
	return m.Alt
}

func AltU(m Maybe, other any) Maybe {
	return m.Alt(other)
}

func Concat(m Maybe) func(other any) Maybe {
	return m.Concat
}

func ConcatU(m Maybe, other any) Maybe {
	return m.Concat(other)
}

func Equals(m Maybe) func(other any) bool {
	return m.Equals
}

func EqualsU(m Maybe, other any) bool {
	return m.Equals(other)
}

func Either(onAbsent, onPresent any) func(m Maybe) any {
	return func(m Maybe) any {
		return m.Either(onAbsent, onPresent)
	}
}

func EitherU(onAbsent, onPresent any, m Maybe) any {
	return m.Either(onAbsent, onPresent)
}

func ValueOr(defaultValue any) func(m Maybe) any {
	return func(m Maybe) any {
		return m.ValueOr(defaultValue)
	}
}

func ValueOrU(defaultValue any, m Maybe) any {
	return m.ValueOr(defaultValue)
}

func Is(kind Kind) func(m Maybe) bool {
	return func(m Maybe) bool {
		return m.Is(kind)
	}
}

func IsU(kind Kind, m Maybe) bool {
	return m.Is(kind)
}

func IsJust(m Maybe) bool {
	return m.IsJust()
}

func IsNothing(m Maybe) bool {
	return m.IsNothing()
}

func ToString(m Maybe) string {
	return m.String()
}

// ValueAs returns the held value as a T.
// It fails for Nothing and for values of another type.
func ValueAs[T any](m Maybe) (T, bool) {
	value, ok := m.value.(T)
	return value, ok && m.just
}

// IsType reports whether m is a Just holding a T.
func IsType[T any](m Maybe) bool {
	_, ok := ValueAs[T](m)
	return ok
}
