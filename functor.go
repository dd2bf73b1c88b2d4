// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Mapping capability chain.
//
// Go has no kind polymorphism, so a contract over a container F is
// specialized at the type applications in play: FA stands for F<A>,
// FB for F<B>, FAB for F<func(A) B>. Instances are explicit dictionaries
// passed to generic algorithms; dispatch never inspects concrete types.
//
// Minimal definition: Bind and Of are necessary and sufficient for a
// Monad. Map and Ap are kept as direct members to avoid intermediate
// closure allocations; MapFromBind and ApFromBind must agree with them.

// Functor is the mapping capability: lift a pure function A -> B over
// the container without inspecting its internals.
//
// Laws: Map(fa, Identity) == fa; Map(fa, g∘f) == Map(Map(fa, f), g).
type Functor[A, B, FA, FB any] struct {
	Map func(fa FA, f func(A) B) FB
}

// Apply extends Functor with Ap, combining a container-held function
// with a container-held argument. This is the mechanism for combining
// two independent computations.
type Apply[A, B, FA, FB, FAB any] struct {
	Functor[A, B, FA, FB]
	Ap func(fab FAB, fa FA) FB
}

// Pointed provides Of, the minimal-context constructor.
type Pointed[A, FA any] struct {
	Of func(a A) FA
}

// Applicative is Apply with Of.
//
// Laws: identity, homomorphism (Ap(Of(f), Of(a)) == Of(f(a))),
// interchange.
type Applicative[A, B, FA, FB, FAB any] struct {
	Apply[A, B, FA, FB, FAB]
	Pointed[A, FA]
}

// Chain extends Apply with Bind: the selector itself produces a new
// container and Bind flattens, never double-wrapping.
//
// Law: Bind(Bind(fa, f), g) == Bind(fa, func(a) Bind(f(a), g)).
type Chain[A, B, FA, FB, FAB any] struct {
	Apply[A, B, FA, FB, FAB]
	Bind func(fa FA, f func(A) FB) FB
}

// Monad is Applicative and Chain combined. This is the terminal
// capability most consumer code programs against.
type Monad[A, B, FA, FB, FAB any] struct {
	Pointed[A, FA]
	Chain[A, B, FA, FB, FAB]
}

// Identity returns its argument unchanged.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func Identity[A any](a A) A { return a }

// Compose2 composes two functions left-to-right: Compose2(f, g)(a) == g(f(a)).
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// MapFromBind derives Functor Map from Bind and Of.
// The derived Map must agree with any directly supplied implementation.
func MapFromBind[A, B, FA, FB any](bind func(FA, func(A) FB) FB, of func(B) FB) func(FA, func(A) B) FB {
	return func(fa FA, f func(A) B) FB {
		return bind(fa, func(a A) FB { return of(f(a)) })
	}
}

// ApFromBind derives Ap from Bind and Map.
// The derived Ap must agree with any directly supplied implementation.
func ApFromBind[A, B, FA, FB, FAB any](bind func(FAB, func(func(A) B) FB) FB, mp func(FA, func(A) B) FB) func(FAB, FA) FB {
	return func(fab FAB, fa FA) FB {
		return bind(fab, func(f func(A) B) FB { return mp(fa, f) })
	}
}

// OptionFunctor is the Functor instance for Option at A -> B.
func OptionFunctor[A, B any]() Functor[A, B, Option[A], Option[B]] {
	return Functor[A, B, Option[A], Option[B]]{Map: MapOption[A, B]}
}

// OptionApplicative is the Applicative instance for Option at A -> B.
func OptionApplicative[A, B any]() Applicative[A, B, Option[A], Option[B], Option[func(A) B]] {
	return Applicative[A, B, Option[A], Option[B], Option[func(A) B]]{
		Apply: Apply[A, B, Option[A], Option[B], Option[func(A) B]]{
			Functor: OptionFunctor[A, B](),
			Ap:      ApOption[A, B],
		},
		Pointed: Pointed[A, Option[A]]{Of: Some[A]},
	}
}

// OptionMonad is the Monad instance for Option at A -> B.
func OptionMonad[A, B any]() Monad[A, B, Option[A], Option[B], Option[func(A) B]] {
	return Monad[A, B, Option[A], Option[B], Option[func(A) B]]{
		Pointed: Pointed[A, Option[A]]{Of: Some[A]},
		Chain: Chain[A, B, Option[A], Option[B], Option[func(A) B]]{
			Apply: Apply[A, B, Option[A], Option[B], Option[func(A) B]]{
				Functor: OptionFunctor[A, B](),
				Ap:      ApOption[A, B],
			},
			Bind: FlatMapOption[A, B],
		},
	}
}

// EitherFunctor is the Functor instance for Either[E, -] at A -> B.
func EitherFunctor[E, A, B any]() Functor[A, B, Either[E, A], Either[E, B]] {
	return Functor[A, B, Either[E, A], Either[E, B]]{Map: MapEither[E, A, B]}
}

// EitherApplicative is the Applicative instance for Either[E, -] at A -> B.
func EitherApplicative[E, A, B any]() Applicative[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]] {
	return Applicative[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]]{
		Apply: Apply[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]]{
			Functor: EitherFunctor[E, A, B](),
			Ap:      ApEither[E, A, B],
		},
		Pointed: Pointed[A, Either[E, A]]{Of: Right[E, A]},
	}
}

// EitherMonad is the Monad instance for Either[E, -] at A -> B.
func EitherMonad[E, A, B any]() Monad[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]] {
	return Monad[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]]{
		Pointed: Pointed[A, Either[E, A]]{Of: Right[E, A]},
		Chain: Chain[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]]{
			Apply: Apply[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]]{
				Functor: EitherFunctor[E, A, B](),
				Ap:      ApEither[E, A, B],
			},
			Bind: FlatMapEither[E, A, B],
		},
	}
}

// SliceFunctor is the Functor instance for slices at A -> B.
func SliceFunctor[A, B any]() Functor[A, B, []A, []B] {
	return Functor[A, B, []A, []B]{Map: MapSlice[A, B]}
}

// SliceMonad is the Monad instance for slices at A -> B.
// Of produces a one-element slice; Ap is the cartesian product.
func SliceMonad[A, B any]() Monad[A, B, []A, []B, []func(A) B] {
	return Monad[A, B, []A, []B, []func(A) B]{
		Pointed: Pointed[A, []A]{Of: OfSlice[A]},
		Chain: Chain[A, B, []A, []B, []func(A) B]{
			Apply: Apply[A, B, []A, []B, []func(A) B]{
				Functor: SliceFunctor[A, B](),
				Ap:      ApSlice[A, B],
			},
			Bind: FlatMapSlice[A, B],
		},
	}
}
