// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// PairOf constructs a Pair from two values.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Separated splits a container's elements into two sub-containers,
// produced by partitioning operations. Every element of the source appears
// in exactly one of Left/Right; order within each side follows the source.
type Separated[L, R any] struct {
	Left  L
	Right R
}

// SeparatedOf constructs a Separated from its two sides.
func SeparatedOf[L, R any](left L, right R) Separated[L, R] {
	return Separated[L, R]{Left: left, Right: right}
}
