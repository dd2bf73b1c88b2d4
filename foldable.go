// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Reduction capability. Reduce collapses a container to a single value
// left-to-right without reconstructing it; ReduceRight is the mirror.
// All slice reductions are iterative loops — recursion depth never grows
// with input size.

// Foldable is the reduction capability for a container F at element A
// and accumulator B. FA stands for F<A>.
type Foldable[A, B, FA any] struct {
	Reduce      func(fa FA, initial B, step func(B, A) B) B
	ReduceRight func(fa FA, initial B, step func(A, B) B) B
}

// ReduceSlice collapses a slice left-to-right.
func ReduceSlice[A, B any](as []A, initial B, step func(B, A) B) B {
	acc := initial
	for _, a := range as {
		acc = step(acc, a)
	}
	return acc
}

// ReduceRightSlice collapses a slice right-to-left.
func ReduceRightSlice[A, B any](as []A, initial B, step func(A, B) B) B {
	acc := initial
	for i := len(as) - 1; i >= 0; i-- {
		acc = step(as[i], acc)
	}
	return acc
}

// FoldMapSlice maps every element into a Monoid and combines the images
// left-to-right, seeded at m.Empty.
func FoldMapSlice[A, M any](m Monoid[M], as []A, f func(A) M) M {
	acc := m.Empty
	for _, a := range as {
		acc = m.Concat(acc, f(a))
	}
	return acc
}

// SliceFoldable is the Foldable instance for slices at accumulator B.
func SliceFoldable[A, B any]() Foldable[A, B, []A] {
	return Foldable[A, B, []A]{
		Reduce:      ReduceSlice[A, B],
		ReduceRight: ReduceRightSlice[A, B],
	}
}
