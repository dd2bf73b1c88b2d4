// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Choice and narrowing capabilities.

// Alternative combines the Alt capability ("first that succeeds") with
// Of and Zero, where Zero is the identity for Alt and the annihilator
// for Map/Ap.
//
// Laws: Alt is associative and distributes over Map:
// Map(Alt(fa, ga), f) == Alt(Map(fa, f), Map(ga, f)).
type Alternative[A, FA any] struct {
	Alt  func(fa FA, that func() FA) FA
	Of   func(a A) FA
	Zero func() FA
}

// Compactable narrows a container by dropping absent entries.
// FOA stands for F<Option[A]>, FE for F<Either[L, R]>.
type Compactable[FOA, FA, FE, FL, FR any] struct {
	Compact  func(foa FOA) FA
	Separate func(fe FE) Separated[FL, FR]
}

// Filterable narrows a container by predicate or selector.
// Filter/Partition use boolean predicates; FilterMap/PartitionMap use
// Option/Either-returning selectors and additionally transform the kept
// value.
type Filterable[A, B, FA, FB any] struct {
	Filter       func(fa FA, pred func(A) bool) FA
	FilterMap    func(fa FA, f func(A) Option[B]) FB
	Partition    func(fa FA, pred func(A) bool) Separated[FA, FA]
	PartitionMap func(fa FA, f func(A) Either[A, B]) Separated[FA, FB]
}
