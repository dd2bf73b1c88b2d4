// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Combination capability hierarchy.
//
// Minimal definition: a closed binary operation (Magma). Semigroup adds
// the associativity contract, Monoid an identity element, Group an
// inverse. Higher structures are modeled as struct bundles of the lower
// ones plus the new member, never as nominal subtyping.

// Magma is a closed binary operation on A. No laws beyond closure.
type Magma[A any] struct {
	Concat func(x, y A) A
}

// Semigroup is a Magma whose Concat is associative:
// Concat(Concat(x, y), z) == Concat(x, Concat(y, z)).
// Associativity is a contract of the instance, not runtime-checked.
type Semigroup[A any] struct {
	Concat func(x, y A) A
}

// SemigroupFromConcat builds a Semigroup from an associative operation.
func SemigroupFromConcat[A any](concat func(x, y A) A) Semigroup[A] {
	return Semigroup[A]{Concat: concat}
}

// Monoid is a Semigroup with an identity element:
// Concat(x, Empty) == x == Concat(Empty, x).
type Monoid[A any] struct {
	Semigroup[A]
	Empty A
}

// MonoidFromConcat builds a Monoid from an associative operation and its
// identity element.
func MonoidFromConcat[A any](concat func(x, y A) A, empty A) Monoid[A] {
	return Monoid[A]{Semigroup: Semigroup[A]{Concat: concat}, Empty: empty}
}

// Group is a Monoid with an inverse: Concat(a, Inverse(a)) == Empty.
type Group[A any] struct {
	Monoid[A]
	Inverse func(A) A
}

// FoldSemigroup reduces items left-to-right with s.Concat, seeded at start.
func FoldSemigroup[A any](s Semigroup[A], start A, items []A) A {
	acc := start
	for _, a := range items {
		acc = s.Concat(acc, a)
	}
	return acc
}

// ConcatAll reduces items left-to-right with m.Concat, seeded at m.Empty.
// ConcatAll(m, nil) == m.Empty.
func ConcatAll[A any](m Monoid[A], items []A) A {
	return FoldSemigroup(m.Semigroup, m.Empty, items)
}

// Numeric constrains the carriers of the arithmetic instances.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SumMonoid is numeric addition with identity 0.
func SumMonoid[A Numeric]() Monoid[A] {
	return MonoidFromConcat(func(x, y A) A { return x + y }, 0)
}

// ProductMonoid is numeric multiplication with identity 1.
func ProductMonoid[A Numeric]() Monoid[A] {
	return MonoidFromConcat(func(x, y A) A { return x * y }, 1)
}

// AdditiveGroup is SumMonoid with negation as the inverse.
// Unsigned carriers form the group modulo 2^n.
func AdditiveGroup[A Numeric]() Group[A] {
	return Group[A]{Monoid: SumMonoid[A](), Inverse: func(a A) A { return -a }}
}

// StringMonoid is string concatenation with identity "".
func StringMonoid() Monoid[string] {
	return MonoidFromConcat(func(x, y string) string { return x + y }, "")
}

// AllMonoid is conjunction with identity true.
func AllMonoid() Monoid[bool] {
	return MonoidFromConcat(func(x, y bool) bool { return x && y }, true)
}

// AnyMonoid is disjunction with identity false.
func AnyMonoid() Monoid[bool] {
	return MonoidFromConcat(func(x, y bool) bool { return x || y }, false)
}

// SliceMonoid is slice concatenation with identity []A{}.
// Concat copies both operands; neither input is retained.
func SliceMonoid[A any]() Monoid[[]A] {
	concat := func(x, y []A) []A {
		out := make([]A, 0, len(x)+len(y))
		out = append(out, x...)
		return append(out, y...)
	}
	return MonoidFromConcat(concat, []A{})
}

// FirstMonoid keeps the first present value: Concat(Some(a), _) == Some(a).
// Identity is None.
func FirstMonoid[A any]() Monoid[Option[A]] {
	concat := func(x, y Option[A]) Option[A] {
		if x.ok {
			return x
		}
		return y
	}
	return MonoidFromConcat(concat, None[A]())
}

// LastMonoid keeps the last present value: Concat(_, Some(b)) == Some(b).
// Identity is None.
func LastMonoid[A any]() Monoid[Option[A]] {
	concat := func(x, y Option[A]) Option[A] {
		if y.ok {
			return y
		}
		return x
	}
	return MonoidFromConcat(concat, None[A]())
}

// OptionMonoid lifts a Semigroup[A] into Monoid[Option[A]]: two present
// values combine through s, a single present value wins, None is identity.
func OptionMonoid[A any](s Semigroup[A]) Monoid[Option[A]] {
	concat := func(x, y Option[A]) Option[A] {
		switch {
		case x.ok && y.ok:
			return Some(s.Concat(x.value, y.value))
		case x.ok:
			return x
		default:
			return y
		}
	}
	return MonoidFromConcat(concat, None[A]())
}

// DualSemigroup reverses the operand order of a Semigroup.
func DualSemigroup[A any](s Semigroup[A]) Semigroup[A] {
	return Semigroup[A]{Concat: func(x, y A) A { return s.Concat(y, x) }}
}

// DualMonoid reverses the operand order of a Monoid. Identity is unchanged.
func DualMonoid[A any](m Monoid[A]) Monoid[A] {
	return Monoid[A]{Semigroup: DualSemigroup(m.Semigroup), Empty: m.Empty}
}

// FunctionMonoid lifts Monoid[B] to Monoid[func(A) B] pointwise.
func FunctionMonoid[A, B any](m Monoid[B]) Monoid[func(A) B] {
	concat := func(f, g func(A) B) func(A) B {
		return func(a A) B { return m.Concat(f(a), g(a)) }
	}
	return MonoidFromConcat(concat, func(A) B { return m.Empty })
}

// PairMonoid combines pairs component-wise.
func PairMonoid[A, B any](ma Monoid[A], mb Monoid[B]) Monoid[Pair[A, B]] {
	concat := func(x, y Pair[A, B]) Pair[A, B] {
		return Pair[A, B]{Fst: ma.Concat(x.Fst, y.Fst), Snd: mb.Concat(x.Snd, y.Snd)}
	}
	return MonoidFromConcat(concat, Pair[A, B]{Fst: ma.Empty, Snd: mb.Empty})
}

// EndoMonoid is function composition on A: Concat(f, g) applies g first,
// then f. Identity is the identity function.
func EndoMonoid[A any]() Monoid[func(A) A] {
	concat := func(f, g func(A) A) func(A) A {
		return func(a A) A { return f(g(a)) }
	}
	return MonoidFromConcat(concat, Identity[A])
}

// MinSemigroup keeps the smaller operand under o.
func MinSemigroup[A any](o Ord[A]) Semigroup[A] {
	return Semigroup[A]{Concat: func(x, y A) A { return Min(o, x, y) }}
}

// MaxSemigroup keeps the larger operand under o.
func MaxSemigroup[A any](o Ord[A]) Semigroup[A] {
	return Semigroup[A]{Concat: func(x, y A) A { return Max(o, x, y) }}
}

// BoundedMinMonoid is MinSemigroup with the Bounded Top as identity.
func BoundedMinMonoid[A any](b Bounded[A]) Monoid[A] {
	return Monoid[A]{Semigroup: MinSemigroup(b.Ord), Empty: b.Top}
}

// BoundedMaxMonoid is MaxSemigroup with the Bounded Bottom as identity.
func BoundedMaxMonoid[A any](b Bounded[A]) Monoid[A] {
	return Monoid[A]{Semigroup: MaxSemigroup(b.Ord), Empty: b.Bottom}
}
