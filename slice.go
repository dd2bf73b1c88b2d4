// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Slice instances for the capability contracts. Slices are the ordered
// many-element container the generic derived operations are exercised
// against; every operation returns a fresh slice and never mutates or
// retains its input.

// OfSlice lifts a value into a one-element slice.
func OfSlice[A any](a A) []A {
	return []A{a}
}

// MapSlice applies a pure function to every element, preserving order.
func MapSlice[A, B any](as []A, f func(A) B) []B {
	out := make([]B, len(as))
	for i, a := range as {
		out[i] = f(a)
	}
	return out
}

// FlatMapSlice maps every element to a slice and concatenates the
// results in order (monadic bind).
func FlatMapSlice[A, B any](as []A, f func(A) []B) []B {
	out := make([]B, 0, len(as))
	for _, a := range as {
		out = append(out, f(a)...)
	}
	return out
}

// ApSlice applies every held function to every argument, functions
// outermost (cartesian order).
func ApSlice[A, B any](fabs []func(A) B, as []A) []B {
	out := make([]B, 0, len(fabs)*len(as))
	for _, f := range fabs {
		for _, a := range as {
			out = append(out, f(a))
		}
	}
	return out
}

// AltSlice concatenates the two alternatives.
func AltSlice[A any](as []A, that func() []A) []A {
	return SliceMonoid[A]().Concat(as, that())
}

// FilterSlice keeps the elements satisfying pred, preserving order.
func FilterSlice[A any](as []A, pred func(A) bool) []A {
	out := make([]A, 0, len(as))
	for _, a := range as {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

// FilterMapSlice keeps and transforms elements through an
// Option-returning selector, preserving order.
func FilterMapSlice[A, B any](as []A, f func(A) Option[B]) []B {
	out := make([]B, 0, len(as))
	for _, a := range as {
		if b := f(a); b.ok {
			out = append(out, b.value)
		}
	}
	return out
}

// PartitionSlice splits elements by a predicate: satisfying elements go
// Right, the rest Left. Order within each side follows the source.
func PartitionSlice[A any](as []A, pred func(A) bool) Separated[[]A, []A] {
	left := make([]A, 0, len(as))
	right := make([]A, 0, len(as))
	for _, a := range as {
		if pred(a) {
			right = append(right, a)
		} else {
			left = append(left, a)
		}
	}
	return Separated[[]A, []A]{Left: left, Right: right}
}

// PartitionMapSlice splits and transforms elements through an
// Either-returning selector. Order within each side follows the source.
func PartitionMapSlice[A, B, C any](as []A, f func(A) Either[B, C]) Separated[[]B, []C] {
	left := make([]B, 0, len(as))
	right := make([]C, 0, len(as))
	for _, a := range as {
		if e := f(a); e.isRight {
			right = append(right, e.right)
		} else {
			left = append(left, e.left)
		}
	}
	return Separated[[]B, []C]{Left: left, Right: right}
}

// CompactSlice drops absent entries, keeping held values in order.
func CompactSlice[A any](as []Option[A]) []A {
	out := make([]A, 0, len(as))
	for _, o := range as {
		if o.ok {
			out = append(out, o.value)
		}
	}
	return out
}

// SeparateSlice splits a slice of Either into its two sides in order.
func SeparateSlice[A, B any](as []Either[A, B]) Separated[[]A, []B] {
	return PartitionMapSlice(as, Identity[Either[A, B]])
}

// UnfoldSlice rebuilds a slice from a seed: f produces the next element
// and seed until it yields None. The loop is explicit — no recursion,
// arbitrarily long results are safe.
func UnfoldSlice[A, B any](seed B, f func(B) Option[Pair[A, B]]) []A {
	var out []A
	b := seed
	for {
		step := f(b)
		if !step.ok {
			return out
		}
		out = append(out, step.value.Fst)
		b = step.value.Snd
	}
}

// ReplicateSlice builds a slice of n copies of a.
func ReplicateSlice[A any](n int, a A) []A {
	out := make([]A, n)
	for i := range out {
		out[i] = a
	}
	return out
}

// SliceAlternative is the Alternative instance for slices: Alt is
// concatenation, Zero the empty slice.
func SliceAlternative[A any]() Alternative[A, []A] {
	return Alternative[A, []A]{
		Alt:  AltSlice[A],
		Of:   OfSlice[A],
		Zero: func() []A { return []A{} },
	}
}

// SliceFilterable is the Filterable instance for slices at A -> B.
func SliceFilterable[A, B any]() Filterable[A, B, []A, []B] {
	return Filterable[A, B, []A, []B]{
		Filter:       FilterSlice[A],
		FilterMap:    FilterMapSlice[A, B],
		Partition:    PartitionSlice[A],
		PartitionMap: PartitionMapSlice[A, A, B],
	}
}

// SliceCompactable is the Compactable instance for slices at element A
// and Either sides L/R.
func SliceCompactable[A, L, R any]() Compactable[[]Option[A], []A, []Either[L, R], []L, []R] {
	return Compactable[[]Option[A], []A, []Either[L, R], []L, []R]{
		Compact:  CompactSlice[A],
		Separate: SeparateSlice[L, R],
	}
}
