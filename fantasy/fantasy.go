// Package fantasy names the algebraic interfaces a container can implement.
// The interfaces are parameterized by the container type itself, so that
// combinators return the concrete container rather than an interface.
package fantasy

// Names lists the capabilities reported by Implements of a conforming type.
var Names = []string{"alt", "ap", "chain", "concat", "equals", "map", "of", "zero"}

type Setoid interface {
	Equals(other any) bool
}

type Semigroup[M any] interface {
	Concat(other any) M
}

type Monoid[M any] interface {
	Semigroup[M]
	Empty() M
}

type Functor[M any] interface {
	Map(f any) M
}

type Apply[M any] interface {
	Functor[M]
	Ap(other any) M
}

type Applicative[M any] interface {
	Apply[M]
	Of(value any) M
}

type Chain[M any] interface {
	Apply[M]
	Chain(f any) M
}

type Monad[M any] interface {
	Applicative[M]
	Chain[M]
}

type Alt[M any] interface {
	Functor[M]
	Alt(other any) M
}

type Plus[M any] interface {
	Alt[M]
	Zero() M
}

type Alternative[M any] interface {
	Applicative[M]
	Plus[M]
}
