// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

import "cmp"

// Eq is the equality capability for A.
// Equals must be total, reflexive, symmetric, and transitive.
type Eq[A any] struct {
	Equals func(x, y A) bool
}

// EqFromEquals builds an Eq from an equality predicate.
func EqFromEquals[A any](equals func(x, y A) bool) Eq[A] {
	return Eq[A]{Equals: equals}
}

// EqStrict is the Eq for comparable carriers using ==.
func EqStrict[A comparable]() Eq[A] {
	return Eq[A]{Equals: func(x, y A) bool { return x == y }}
}

// ContramapEq derives Eq[B] from Eq[A] through a projection B -> A.
func ContramapEq[A, B any](e Eq[A], f func(B) A) Eq[B] {
	return Eq[B]{Equals: func(x, y B) bool { return e.Equals(f(x), f(y)) }}
}

// Ord is the total-order capability for A. An Ord is also an Eq.
// Compare returns -1 when x is strictly less than y, 0 when equal,
// and 1 when strictly greater.
type Ord[A any] struct {
	Eq[A]
	Compare func(x, y A) int
}

// OrdFromCompare builds an Ord from a comparator, deriving Equals
// from Compare(x, y) == 0.
func OrdFromCompare[A any](compare func(x, y A) int) Ord[A] {
	return Ord[A]{
		Eq:      Eq[A]{Equals: func(x, y A) bool { return compare(x, y) == 0 }},
		Compare: compare,
	}
}

// OrdPrimitive is the Ord for naturally ordered carriers.
func OrdPrimitive[A cmp.Ordered]() Ord[A] {
	return OrdFromCompare(func(x, y A) int { return cmp.Compare(x, y) })
}

// ReverseOrd flips the order of an Ord.
func ReverseOrd[A any](o Ord[A]) Ord[A] {
	return OrdFromCompare(func(x, y A) int { return o.Compare(y, x) })
}

// ContramapOrd derives Ord[B] from Ord[A] through a projection B -> A.
func ContramapOrd[A, B any](o Ord[A], f func(B) A) Ord[B] {
	return OrdFromCompare(func(x, y B) int { return o.Compare(f(x), f(y)) })
}

// Min returns the smaller of two values under o.
// Ties resolve to the first argument.
func Min[A any](o Ord[A], x, y A) A {
	if o.Compare(x, y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of two values under o.
// Ties resolve to the first argument.
func Max[A any](o Ord[A], x, y A) A {
	if o.Compare(x, y) >= 0 {
		return x
	}
	return y
}

// Clamp restricts values to the closed interval [lo, hi] under o.
func Clamp[A any](o Ord[A], lo, hi A) func(A) A {
	return func(a A) A {
		return Max(o, lo, Min(o, hi, a))
	}
}

// Between reports whether a value lies in the closed interval [lo, hi].
func Between[A any](o Ord[A], lo, hi A) func(A) bool {
	return func(a A) bool {
		return o.Compare(lo, a) <= 0 && o.Compare(a, hi) <= 0
	}
}

// Bounded is an Ord with least and greatest elements:
// Bottom <= a <= Top for every a in the carrier.
type Bounded[A any] struct {
	Ord[A]
	Bottom A
	Top    A
}

// BoundedFromOrd attaches Bottom and Top to an existing Ord.
func BoundedFromOrd[A any](o Ord[A], bottom, top A) Bounded[A] {
	return Bounded[A]{Ord: o, Bottom: bottom, Top: top}
}

// SliceOrd derives the lexicographic Ord for slices: the first unequal
// pairwise comparison wins; if all shared elements compare equal, the
// longer slice is greater.
func SliceOrd[A any](o Ord[A]) Ord[[]A] {
	return OrdFromCompare(func(xs, ys []A) int {
		n := min(len(xs), len(ys))
		for i := range n {
			if c := o.Compare(xs[i], ys[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(xs), len(ys))
	})
}

// SliceEq derives element-wise Eq for slices of equal length.
func SliceEq[A any](e Eq[A]) Eq[[]A] {
	return Eq[[]A]{Equals: func(xs, ys []A) bool {
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !e.Equals(xs[i], ys[i]) {
				return false
			}
		}
		return true
	}}
}

// OptionOrd derives the Ord for Option where None sorts strictly below
// every Some.
func OptionOrd[A any](o Ord[A]) Ord[Option[A]] {
	return OrdFromCompare(func(x, y Option[A]) int {
		switch {
		case x.ok && y.ok:
			return o.Compare(x.value, y.value)
		case x.ok:
			return 1
		case y.ok:
			return -1
		default:
			return 0
		}
	})
}

// OptionEq derives Eq for Option from the payload Eq.
func OptionEq[A any](e Eq[A]) Eq[Option[A]] {
	return Eq[Option[A]]{Equals: func(x, y Option[A]) bool {
		if x.ok != y.ok {
			return false
		}
		if !x.ok {
			return true
		}
		return e.Equals(x.value, y.value)
	}}
}

// EitherEq derives Eq for Either from the payload Eqs of each side.
func EitherEq[E, A any](el Eq[E], ea Eq[A]) Eq[Either[E, A]] {
	return Eq[Either[E, A]]{Equals: func(x, y Either[E, A]) bool {
		if x.isRight != y.isRight {
			return false
		}
		if x.isRight {
			return ea.Equals(x.right, y.right)
		}
		return el.Equals(x.left, y.left)
	}}
}
