// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Either represents a value that is either Left (error) or Right (success).
// Exactly one variant is active; operations are right-biased — the generic
// map/bind act on Right and pass Left through unchanged.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
// Left short-circuits, preserving its payload unchanged.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// ApEither applies an Either-held function to an Either-held argument.
// The first Left encountered wins; see ValidationAp for accumulation.
func ApEither[E, A, B any](fab Either[E, func(A) B], fa Either[E, A]) Either[E, B] {
	if !fab.isRight {
		return Left[E, B](fab.left)
	}
	if !fa.isRight {
		return Left[E, B](fa.left)
	}
	return Right[E](fab.right(fa.right))
}

// BimapEither maps each side independently.
func BimapEither[E, F, A, B any](e Either[E, A], onLeft func(E) F, onRight func(A) B) Either[F, B] {
	if e.isRight {
		return Right[F](onRight(e.right))
	}
	return Left[F, B](onLeft(e.left))
}

// AltEither picks the first Right among alternatives; if both fail the
// last Left wins. that is only evaluated when e is Left.
func AltEither[E, A any](e Either[E, A], that func() Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	return that()
}

// GetOrElseEither returns the Right value, or the result of onLeft.
func GetOrElseEither[E, A any](e Either[E, A], onLeft func(E) A) A {
	if e.isRight {
		return e.right
	}
	return onLeft(e.left)
}

// OrElseEither recovers from Left with a new Either, possibly changing
// the error type. Right passes through unchanged.
func OrElseEither[E, F, A any](e Either[E, A], onLeft func(E) Either[F, A]) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return onLeft(e.left)
}

// SwapEither exchanges the sides.
func SwapEither[E, A any](e Either[E, A]) Either[A, E] {
	if e.isRight {
		return Left[A, E](e.right)
	}
	return Right[A](e.left)
}

// ReduceEither collapses the zero-or-one Right elements left-to-right.
// Left contributes nothing.
func ReduceEither[E, A, B any](e Either[E, A], initial B, step func(B, A) B) B {
	if !e.isRight {
		return initial
	}
	return step(initial, e.right)
}

// ReduceRightEither is the right-to-left mirror of ReduceEither.
func ReduceRightEither[E, A, B any](e Either[E, A], initial B, step func(A, B) B) B {
	if !e.isRight {
		return initial
	}
	return step(e.right, initial)
}

// ExistsEither reports whether a Right value satisfies pred.
func ExistsEither[E, A any](e Either[E, A], pred func(A) bool) bool {
	return e.isRight && pred(e.right)
}

// EitherToOption keeps the Right value, discarding any Left payload.
func EitherToOption[E, A any](e Either[E, A]) Option[A] {
	if e.isRight {
		return Some(e.right)
	}
	return None[A]()
}

// FromPredicateEither builds a smart constructor that keeps values
// satisfying pred as Right and converts the rest to Left via onFalse.
func FromPredicateEither[E, A any](pred func(A) bool, onFalse func(A) E) func(A) Either[E, A] {
	return func(a A) Either[E, A] {
		if pred(a) {
			return Right[E](a)
		}
		return Left[E, A](onFalse(a))
	}
}

// FromNullableEither builds a smart constructor converting a
// possibly-nil pointer into an Either, with onNil supplying the Left
// payload for nil.
func FromNullableEither[E, A any](onNil func() E) func(*A) Either[E, A] {
	return func(p *A) Either[E, A] {
		if p == nil {
			return Left[E, A](onNil())
		}
		return Right[E](*p)
	}
}

// TryCatchEither runs a thunk that may panic and converts the outcome:
// a normal return becomes Right, any panic becomes Left via onThrow.
// onThrow must be total. This is the single interop point where a thrown
// signal is absorbed.
func TryCatchEither[E, A any](thunk func() A, onThrow func(r any) E) (e Either[E, A]) {
	defer func() {
		if r := recover(); r != nil {
			e = Left[E, A](onThrow(r))
		}
	}()
	return Right[E](thunk())
}

// ValidationAp is the accumulating variant of ApEither: when both sides
// are Left, the payloads combine left-to-right through s instead of the
// first Left winning.
func ValidationAp[E, A, B any](s Semigroup[E], fab Either[E, func(A) B], fa Either[E, A]) Either[E, B] {
	if !fab.isRight {
		if !fa.isRight {
			return Left[E, B](s.Concat(fab.left, fa.left))
		}
		return Left[E, B](fab.left)
	}
	if !fa.isRight {
		return Left[E, B](fa.left)
	}
	return Right[E](fab.right(fa.right))
}

// ValidationAlt is the accumulating variant of AltEither: when both
// alternatives fail, the Left payloads combine left-to-right through s.
func ValidationAlt[E, A any](s Semigroup[E], e Either[E, A], that func() Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	other := that()
	if other.isRight {
		return other
	}
	return Left[E, A](s.Concat(e.left, other.left))
}

// EitherFoldable is the Foldable instance for Either[E, -] at result
// type B.
func EitherFoldable[E, A, B any]() Foldable[A, B, Either[E, A]] {
	return Foldable[A, B, Either[E, A]]{
		Reduce:      ReduceEither[E, A, B],
		ReduceRight: ReduceRightEither[E, A, B],
	}
}
