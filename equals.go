package maybe

import "github.com/oliverbestmann/maybe/internal/deep"

// Equals reports whether other is a Maybe equal to m.
func (m Maybe) Equals(other any) bool {
	o, ok := asMaybe(other)
	if !ok {
		return false
	}

	return m.Equal(o)
}

// Equal compares two Maybes: two Nothings are equal, a Just never equals a
// Nothing, and two Justs are equal if their values are deeply equal.
// Just(nil) is not Nothing.
func (m Maybe) Equal(other Maybe) bool {
	if !m.just || !other.just {
		return m.just == other.just
	}

	return deep.Equal(m.value, other.value)
}
