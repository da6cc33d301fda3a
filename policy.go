package maybe

import (
	"slices"

	"github.com/oliverbestmann/maybe/internal/refl"
	"github.com/oliverbestmann/maybe/internal/set"
)

// Policy describes which held values a combinator refuses to handle directly.
// A value is rejected if it is nil, or if its kind is excluded and it does not
// provide every required capability.
type Policy struct {
	name     string
	excluded set.Set[Kind]
	requires []string
}

// ScalarPolicy routes plain scalars and functions held by a Just to Ap when mapping,
// unless the value brings its own Map method.
var ScalarPolicy = NewPolicy("scalar",
	[]Kind{KindNumber, KindString, KindBoolean, KindFunction},
	"map",
)

// ConcatPolicy lists the kinds that cannot be concatenated,
// unless the value brings its own Concat method.
var ConcatPolicy = NewPolicy("concat",
	[]Kind{KindNumber, KindObject, KindBoolean, KindFunction},
	"concat",
)

func NewPolicy(name string, excluded []Kind, requires ...string) Policy {
	return Policy{
		name:     name,
		excluded: set.Of(excluded...),
		requires: slices.Clone(requires),
	}
}

func (p Policy) Name() string {
	return p.name
}

// Excludes reports whether the policy lists the given kind.
func (p Policy) Excludes(kind Kind) bool {
	return p.excluded.Has(kind)
}

// Rejects applies the policy to a value.
func (p Policy) Rejects(value any) bool {
	if refl.IsNil(value) {
		return true
	}

	if !p.excluded.Has(KindOf(value)) {
		return false
	}

	// an excluded kind can still be handled if it implements everything we need
	return len(p.requires) == 0 || !refl.HasCapabilities(value, p.requires...)
}

// Select returns left if the policy rejects value. Otherwise right is
// evaluated and its result returned.
func Select[T any](p Policy, value any, left T, right func() T) T {
	if p.Rejects(value) {
		return left
	}

	return right()
}
