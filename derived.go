// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Generic derived operations, implemented once against the capability
// dictionaries and never against a concrete container. Behavior is
// identical for Option, Either, slices, or any future conforming type —
// the dictionary supplies all container knowledge.

// Fold reduces items left-to-right with m.Concat, seeded at m.Empty.
func Fold[A any](m Monoid[A], items []A) A {
	return ConcatAll(m, items)
}

// FoldMap maps every element into a Monoid through a supplied Foldable.
func FoldMap[A, M, FA any](fo Foldable[A, M, FA], m Monoid[M], fa FA, f func(A) M) M {
	return fo.Reduce(fa, m.Empty, func(acc M, a A) M {
		return m.Concat(acc, f(a))
	})
}

// FilterWith narrows a container by predicate through a supplied
// Filterable.
func FilterWith[A, B, FA, FB any](fl Filterable[A, B, FA, FB], fa FA, pred func(A) bool) FA {
	return fl.Filter(fa, pred)
}

// FilterMapWith narrows and transforms through a supplied Filterable.
func FilterMapWith[A, B, FA, FB any](fl Filterable[A, B, FA, FB], fa FA, f func(A) Option[B]) FB {
	return fl.FilterMap(fa, f)
}

// PartitionWith splits a container by predicate through a supplied
// Filterable.
func PartitionWith[A, B, FA, FB any](fl Filterable[A, B, FA, FB], fa FA, pred func(A) bool) Separated[FA, FA] {
	return fl.Partition(fa, pred)
}

// PartitionMapWith splits and transforms through a supplied Filterable.
func PartitionMapWith[A, B, FA, FB any](fl Filterable[A, B, FA, FB], fa FA, f func(A) Either[A, B]) Separated[FA, FB] {
	return fl.PartitionMap(fa, f)
}

// CompactWith drops absent entries through a supplied Compactable.
func CompactWith[FOA, FA, FE, FL, FR any](c Compactable[FOA, FA, FE, FL, FR], foa FOA) FA {
	return c.Compact(foa)
}

// SeparateWith splits a container of Eithers through a supplied
// Compactable.
func SeparateWith[FOA, FA, FE, FL, FR any](c Compactable[FOA, FA, FE, FL, FR], fe FE) Separated[FL, FR] {
	return c.Separate(fe)
}

// AltWith picks the first present alternative through a supplied
// Alternative, falling back to Zero when given no candidates.
func AltWith[A, FA any](alt Alternative[A, FA], candidates ...func() FA) FA {
	out := alt.Zero()
	for _, c := range candidates {
		out = alt.Alt(out, c)
	}
	return out
}

// LiftA2 combines two independent computations in F through a binary
// function. fmap and fap are F's Map and Ap at the curried
// instantiations this lifting needs: FBC stands for F<func(B) C>.
func LiftA2[A, B, C, FA, FB, FC, FBC any](
	fmap func(FA, func(A) func(B) C) FBC,
	fap func(FBC, FB) FC,
	f func(A, B) C,
	fa FA,
	fb FB,
) FC {
	curried := fmap(fa, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
	return fap(curried, fb)
}
