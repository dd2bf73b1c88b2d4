// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Option represents zero or one value of type A: None or Some.
// Exactly one variant is active; a value is immutable once constructed.
// Nesting is never implicit — see DuplicateOption.
type Option[A any] struct {
	value A
	ok    bool
}

// Some creates an Option holding a value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, ok: true}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// IsNone returns true if the Option is empty.
func (o Option[A]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// GetOrElse returns the held value, or the result of onNone for None.
func GetOrElse[A any](o Option[A], onNone func() A) A {
	if o.ok {
		return o.value
	}
	return onNone()
}

// MapOption applies a pure function to the held value.
// None passes through unchanged.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.value))
}

// ApOption applies an Option-held function to an Option-held argument.
// The result is None if either side is None.
func ApOption[A, B any](fab Option[func(A) B], fa Option[A]) Option[B] {
	if !fab.ok || !fa.ok {
		return None[B]()
	}
	return Some(fab.value(fa.value))
}

// FlatMapOption sequences two Option computations (monadic bind).
// None short-circuits; the result is never double-wrapped.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return f(o.value)
}

// AltOption returns the first present Option; that is only evaluated
// when o is None.
func AltOption[A any](o Option[A], that func() Option[A]) Option[A] {
	if o.ok {
		return o
	}
	return that()
}

// FilterOption keeps the held value only when pred holds.
func FilterOption[A any](o Option[A], pred func(A) bool) Option[A] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[A]()
}

// FilterMapOption keeps and transforms the held value through an
// Option-returning selector.
func FilterMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	return FlatMapOption(o, f)
}

// PartitionOption routes the held value to Right when pred holds,
// to Left otherwise.
func PartitionOption[A any](o Option[A], pred func(A) bool) Separated[Option[A], Option[A]] {
	if !o.ok {
		return Separated[Option[A], Option[A]]{Left: None[A](), Right: None[A]()}
	}
	if pred(o.value) {
		return Separated[Option[A], Option[A]]{Left: None[A](), Right: o}
	}
	return Separated[Option[A], Option[A]]{Left: o, Right: None[A]()}
}

// PartitionMapOption routes the held value through an Either-returning
// selector, transforming it on the way.
func PartitionMapOption[A, B, C any](o Option[A], f func(A) Either[B, C]) Separated[Option[B], Option[C]] {
	if !o.ok {
		return Separated[Option[B], Option[C]]{Left: None[B](), Right: None[C]()}
	}
	e := f(o.value)
	if e.isRight {
		return Separated[Option[B], Option[C]]{Left: None[B](), Right: Some(e.right)}
	}
	return Separated[Option[B], Option[C]]{Left: Some(e.left), Right: None[C]()}
}

// CompactOption flattens one layer of optionality.
func CompactOption[A any](o Option[Option[A]]) Option[A] {
	if !o.ok {
		return None[A]()
	}
	return o.value
}

// SeparateOption splits an Option of Either into its two sides.
func SeparateOption[A, B any](o Option[Either[A, B]]) Separated[Option[A], Option[B]] {
	return PartitionMapOption(o, Identity[Either[A, B]])
}

// DuplicateOption nests the Option explicitly.
func DuplicateOption[A any](o Option[A]) Option[Option[A]] {
	if !o.ok {
		return None[Option[A]]()
	}
	return Some(o)
}

// ReduceOption collapses the zero-or-one elements left-to-right.
func ReduceOption[A, B any](o Option[A], initial B, step func(B, A) B) B {
	if !o.ok {
		return initial
	}
	return step(initial, o.value)
}

// ReduceRightOption is the right-to-left mirror of ReduceOption.
func ReduceRightOption[A, B any](o Option[A], initial B, step func(A, B) B) B {
	if !o.ok {
		return initial
	}
	return step(o.value, initial)
}

// ExistsOption reports whether a held value satisfies pred.
func ExistsOption[A any](o Option[A], pred func(A) bool) bool {
	return o.ok && pred(o.value)
}

// ContainsOption reports whether the Option holds a value equal to a
// under e.
func ContainsOption[A any](e Eq[A], o Option[A], a A) bool {
	return o.ok && e.Equals(o.value, a)
}

// FromNullable converts a possibly-nil pointer into an Option,
// dereferencing on Some.
func FromNullable[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// FromPredicate builds a smart constructor that keeps values satisfying
// pred and yields None otherwise.
func FromPredicate[A any](pred func(A) bool) func(A) Option[A] {
	return func(a A) Option[A] {
		if pred(a) {
			return Some(a)
		}
		return None[A]()
	}
}

// TryCatchOption runs a thunk that may panic and converts the outcome:
// a normal return becomes Some, any panic becomes None.
// This is the single interop point where a thrown signal is absorbed.
func TryCatchOption[A any](thunk func() A) (o Option[A]) {
	defer func() {
		if recover() != nil {
			o = None[A]()
		}
	}()
	return Some(thunk())
}

// OptionToEither converts absence into a Left produced by onNone.
func OptionToEither[E, A any](o Option[A], onNone func() E) Either[E, A] {
	if o.ok {
		return Right[E](o.value)
	}
	return Left[E, A](onNone())
}

// OptionAlternative is the Alternative instance for Option:
// AltOption with None as the identity.
func OptionAlternative[A any]() Alternative[A, Option[A]] {
	return Alternative[A, Option[A]]{
		Alt:  AltOption[A],
		Of:   Some[A],
		Zero: None[A],
	}
}

// OptionFoldable is the Foldable instance for Option at result type B.
func OptionFoldable[A, B any]() Foldable[A, B, Option[A]] {
	return Foldable[A, B, Option[A]]{
		Reduce:      ReduceOption[A, B],
		ReduceRight: ReduceRightOption[A, B],
	}
}

// OptionFilterable is the Filterable instance for Option at A -> B.
func OptionFilterable[A, B any]() Filterable[A, B, Option[A], Option[B]] {
	return Filterable[A, B, Option[A], Option[B]]{
		Filter:       FilterOption[A],
		FilterMap:    FilterMapOption[A, B],
		Partition:    PartitionOption[A],
		PartitionMap: PartitionMapOption[A, A, B],
	}
}

// OptionCompactable is the Compactable instance for Option at element A
// and Either sides L/R.
func OptionCompactable[A, L, R any]() Compactable[Option[Option[A]], Option[A], Option[Either[L, R]], Option[L], Option[R]] {
	return Compactable[Option[Option[A]], Option[A], Option[Either[L, R]], Option[L], Option[R]]{
		Compact:  CompactOption[A],
		Separate: SeparateOption[L, R],
	}
}
