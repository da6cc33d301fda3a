package fantasy

// The functions below check a single law for concrete values. They report
// whether the law holds, so they can be used from tests of any container.

func identity(value any) any {
	return value
}

func SetoidReflexivity[M Setoid](a M) bool {
	return a.Equals(a)
}

func SetoidSymmetry[M Setoid](a, b M) bool {
	return a.Equals(b) == b.Equals(a)
}

func SetoidTransitivity[M Setoid](a, b, c M) bool {
	return !(a.Equals(b) && b.Equals(c)) || a.Equals(c)
}

func SemigroupAssociativity[M interface {
	Semigroup[M]
	Setoid
}](a, b, c M) bool {
	return a.Concat(b).Concat(c).Equals(a.Concat(b.Concat(c)))
}

func MonoidRightIdentity[M interface {
	Monoid[M]
	Setoid
}](a M) bool {
	return a.Concat(a.Empty()).Equals(a)
}

func MonoidLeftIdentity[M interface {
	Monoid[M]
	Setoid
}](a M) bool {
	return a.Empty().Concat(a).Equals(a)
}

func FunctorIdentity[M interface {
	Functor[M]
	Setoid
}](m M) bool {
	return m.Map(identity).Equals(m)
}

func FunctorComposition[M interface {
	Functor[M]
	Setoid
}](m M, f, g func(any) any) bool {
	composed := func(value any) any { return f(g(value)) }
	return m.Map(composed).Equals(m.Map(g).Map(f))
}

func ChainAssociativity[M interface {
	Chain[M]
	Setoid
}](m M, f, g func(any) M) bool {
	nested := func(value any) M { return f(value).Chain(g) }
	return m.Chain(f).Chain(g).Equals(m.Chain(nested))
}

func MonadLeftIdentity[M interface {
	Monad[M]
	Setoid
}](of func(any) M, value any, f func(any) M) bool {
	return of(value).Chain(f).Equals(f(value))
}

func MonadRightIdentity[M interface {
	Monad[M]
	Setoid
}](m M) bool {
	return m.Chain(m.Of).Equals(m)
}

func AltAssociativity[M interface {
	Alt[M]
	Setoid
}](a, b, c M) bool {
	return a.Alt(b).Alt(c).Equals(a.Alt(b.Alt(c)))
}

func AltDistributivity[M interface {
	Alt[M]
	Setoid
}](a, b M, f func(any) any) bool {
	return a.Alt(b).Map(f).Equals(a.Map(f).Alt(b.Map(f)))
}

func PlusRightIdentity[M interface {
	Plus[M]
	Setoid
}](a M) bool {
	return a.Alt(a.Zero()).Equals(a)
}

func PlusLeftIdentity[M interface {
	Plus[M]
	Setoid
}](a M) bool {
	return a.Zero().Alt(a).Equals(a)
}

func PlusAnnihilation[M interface {
	Plus[M]
	Setoid
}](a M, f func(any) any) bool {
	return a.Zero().Map(f).Equals(a.Zero())
}
