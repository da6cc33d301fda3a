// Package maybe provides an optional value container with two variants,
// Just holding a value and Nothing holding none.
//
// A Maybe holds values of any type and dispatches on their runtime kind,
// so combinators never fail on missing or mismatched data: they return
// Nothing instead. Only passing something that is not a function where a
// callback is expected panics, with a *NotAFunctionError.
package maybe

import (
	"log/slog"

	"github.com/oliverbestmann/maybe/fantasy"
	"github.com/oliverbestmann/maybe/internal/assert"
	"github.com/oliverbestmann/maybe/internal/pretty"
	"github.com/oliverbestmann/maybe/internal/refl"
	"github.com/oliverbestmann/maybe/internal/set"
)

// TypeName identifies the Maybe type, both on the package and on every instance.
const TypeName = "oliverbestmann/Maybe"

var implemented = set.Of(fantasy.Names...)

var (
	_ fantasy.Monad[Maybe]       = Maybe{}
	_ fantasy.Alternative[Maybe] = Maybe{}
	_ fantasy.Monoid[Maybe]      = Maybe{}
	_ fantasy.Setoid             = Maybe{}
)

// Maybe is either Just a value or Nothing. The zero value is Nothing.
// A Maybe never changes once constructed.
type Maybe struct {
	value any
	just  bool
}

// Just wraps value, which may be anything, nil included.
func Just(value any) Maybe {
	return Maybe{value: value, just: true}
}

func Nothing() Maybe {
	return Maybe{}
}

// Of is the applicative constructor, an alias for Just.
func Of(value any) Maybe {
	return Just(value)
}

// Zero is the identity of Alt.
func Zero() Maybe {
	return Nothing()
}

// Empty is the identity of Concat.
func Empty() Maybe {
	return Nothing()
}

// SafeOf returns Nothing for a nil value and Just otherwise.
// Zero values like 0, false or "" are kept.
func SafeOf(value any) Maybe {
	if refl.IsNil(value) {
		return Nothing()
	}

	return Just(value)
}

// New builds a Maybe with an explicit tag: New(value) is Just(value),
// New(value, true) is Nothing. Any other call fails with ErrInvalidConstruction.
func New(args ...any) (Maybe, error) {
	switch len(args) {
	case 1:
		return Just(args[0]), nil

	case 2:
		nothing, ok := args[1].(bool)
		if !ok {
			return Nothing(), ErrInvalidConstruction
		}

		if nothing {
			return Nothing(), nil
		}

		return Just(args[0]), nil

	default:
		return Nothing(), ErrInvalidConstruction
	}
}

// Type returns TypeName.
func Type() string {
	return TypeName
}

// Implements reports whether Maybe provides the named algebraic capability.
func Implements(name string) bool {
	return implemented.Has(name)
}

// Test returns a function that yields right() for a Maybe and left for anything else.
func Test(left any, right func() any) func(item any) any {
	return func(item any) any {
		if _, ok := asMaybe(item); ok {
			return right()
		}

		return left
	}
}

func (m Maybe) IsJust() bool {
	return m.just
}

func (m Maybe) IsNothing() bool {
	return !m.just
}

// Get returns the held value and whether there is one.
func (m Maybe) Get() (any, bool) {
	return m.value, m.just
}

func (m Maybe) ValueOr(defaultValue any) any {
	if !m.just {
		return defaultValue
	}

	return m.value
}

// Either calls onAbsent() for Nothing and onPresent(value) for a Just and
// returns the result of the branch taken. Both must be functions, and the
// branch taken must accept its arguments, else Either panics. A branch
// failing with a trailing error returns nil.
func (m Maybe) Either(onAbsent, onPresent any) any {
	assert.IsFunc("left", onAbsent)
	assert.IsFunc("right", onPresent)

	if !m.just {
		assert.Accepts("left", onAbsent)
		result, _ := refl.Call(onAbsent)
		return result
	}

	assert.Accepts("right", onPresent, m.value)
	result, _ := refl.Call(onPresent, m.value)
	return result
}

func (m Maybe) String() string {
	if !m.just {
		return "Nothing"
	}

	switch value := m.value.(type) {
	case Maybe:
		return "Just " + value.String()
	case *Pending:
		return "Just " + value.String()
	default:
		return "Just " + pretty.Print(value)
	}
}

func (m Maybe) LogValue() slog.Value {
	return slog.StringValue(m.String())
}

// Is reports whether m holds a value of the given kind. Nothing is never of any kind.
func (m Maybe) Is(kind Kind) bool {
	return m.just && KindOf(m.value) == kind
}

// Test returns left if the held value is nil, or of an excluded kind
// without providing all required capabilities. Otherwise right() is returned.
func (m Maybe) Test(left any, right func() any, excluded []Kind, required ...string) any {
	return Select(NewPolicy("test", excluded, required...), m.value, left, right)
}

func (m Maybe) Type() string {
	return TypeName
}

func (m Maybe) Of(value any) Maybe {
	return Just(value)
}

// ToJust wraps value in a Just, independent of m.
func (m Maybe) ToJust(value any) Maybe {
	return Just(value)
}

func (m Maybe) Zero() Maybe {
	return Nothing()
}

func (m Maybe) Empty() Maybe {
	return Nothing()
}

// asMaybe accepts only real Maybe values, never look-alikes.
func asMaybe(value any) (Maybe, bool) {
	switch value := value.(type) {
	case Maybe:
		return value, true
	case *Maybe:
		if value == nil {
			return Maybe{}, false
		}

		return *value, true
	default:
		return Maybe{}, false
	}
}
