package maybe

import "github.com/oliverbestmann/maybe/internal/refl"

// Ap applies a function held by one side to the value held by the other.
// The function may sit on either side: Just(f).Ap(Just(x)) and
// Just(x).Ap(Just(f)) both yield Just(f(x)). If other is not a Maybe, if
// either side is Nothing or if neither holds a function, Ap returns Nothing.
func (m Maybe) Ap(other any) Maybe {
	o, ok := asMaybe(other)
	if !ok {
		return Nothing()
	}

	switch {
	case m.just && refl.IsFunc(m.value):
		if !o.just {
			return Nothing()
		}

		return apply(m.value, o.value)

	case o.just && refl.IsFunc(o.value):
		if !m.just {
			return Nothing()
		}

		return apply(o.value, m.value)

	default:
		return Nothing()
	}
}
