package maybe

import (
	"github.com/oliverbestmann/maybe/internal/assert"
	"github.com/oliverbestmann/maybe/internal/refl"
)

// Chain calls f with the held value and returns the Maybe it produces.
// Nothing short circuits without calling f. If f returns anything but a
// Maybe, the result is Nothing.
func (m Maybe) Chain(f any) Maybe {
	assert.IsFunc("f", f)

	if !m.just {
		return Nothing()
	}

	result, ok := refl.Call(f, m.value)
	if !ok {
		return Nothing()
	}

	next, ok := asMaybe(result)
	if !ok {
		return Nothing()
	}

	return next
}
