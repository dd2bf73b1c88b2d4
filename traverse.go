// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Traversable capability: run an effectful mapping over every element
// and reassemble the original shape inside the other container G.
//
// The applicative for G is passed as the explicit operation functions a
// given traversal shape needs, specialized at the type applications in
// play (GB stands for G<B>, GOB for G<Option[B]>, and so on). Sequence
// is traverse with the identity selector.
//
// Elements are visited in the container's natural iteration order; if G
// sequences effects, they occur in that same order.

// TraverseOption traverses the zero-or-one elements of an Option.
// gof and gmap are G's Of and Map at the instantiations this shape needs.
func TraverseOption[A, B, GB, GOB any](
	fa Option[A],
	gof func(Option[B]) GOB,
	gmap func(GB, func(B) Option[B]) GOB,
	f func(A) GB,
) GOB {
	if !fa.ok {
		return gof(None[B]())
	}
	return gmap(f(fa.value), Some[B])
}

// SequenceOption is TraverseOption with the identity selector.
func SequenceOption[A, GA, GOA any](
	fga Option[GA],
	gof func(Option[A]) GOA,
	gmap func(GA, func(A) Option[A]) GOA,
) GOA {
	return TraverseOption(fga, gof, gmap, Identity[GA])
}

// TraverseEither traverses the zero-or-one Right elements of an Either.
// A Left reassembles unchanged inside G via gof.
func TraverseEither[E, A, B, GB, GEB any](
	fa Either[E, A],
	gof func(Either[E, B]) GEB,
	gmap func(GB, func(B) Either[E, B]) GEB,
	f func(A) GB,
) GEB {
	if !fa.isRight {
		return gof(Left[E, B](fa.left))
	}
	return gmap(f(fa.right), Right[E, B])
}

// SequenceEither is TraverseEither with the identity selector.
func SequenceEither[E, GA, A, GEA any](
	fga Either[E, GA],
	gof func(Either[E, A]) GEA,
	gmap func(GA, func(A) Either[E, A]) GEA,
) GEA {
	return TraverseEither(fga, gof, gmap, Identity[GA])
}

// TraverseSlice traverses a slice inside an arbitrary applicative G,
// rebuilding the slice left-to-right. GBS stands for G<[]B>, GPUSH for
// G<func([]B) []B>. Iterative; effects occur in element order.
func TraverseSlice[A, B, GB, GBS, GPUSH any](
	as []A,
	gof func([]B) GBS,
	gmap func(GB, func(B) func([]B) []B) GPUSH,
	gap func(GPUSH, GBS) GBS,
	f func(A) GB,
) GBS {
	acc := gof([]B{})
	for _, a := range as {
		push := gmap(f(a), appendTo[B])
		acc = gap(push, acc)
	}
	return acc
}

// appendTo returns a function appending b to a copy of its argument.
// Copying keeps every intermediate slice independent.
func appendTo[B any](b B) func([]B) []B {
	return func(bs []B) []B {
		out := make([]B, len(bs)+1)
		copy(out, bs)
		out[len(bs)] = b
		return out
	}
}

// TraverseSliceOption is TraverseSlice specialized at G = Option with a
// direct short-circuit: the first None aborts without the quadratic
// rebuild of the generic path.
func TraverseSliceOption[A, B any](as []A, f func(A) Option[B]) Option[[]B] {
	out := make([]B, 0, len(as))
	for _, a := range as {
		b := f(a)
		if !b.ok {
			return None[[]B]()
		}
		out = append(out, b.value)
	}
	return Some(out)
}

// SequenceSliceOption reassembles a slice of Options: Some of the slice
// when every element is present, None as soon as any element is absent.
// Element order is preserved.
func SequenceSliceOption[A any](as []Option[A]) Option[[]A] {
	return TraverseSliceOption(as, Identity[Option[A]])
}

// TraverseSliceEither is TraverseSlice specialized at G = Either with a
// direct short-circuit on the first Left.
func TraverseSliceEither[E, A, B any](as []A, f func(A) Either[E, B]) Either[E, []B] {
	out := make([]B, 0, len(as))
	for _, a := range as {
		e := f(a)
		if !e.isRight {
			return Left[E, []B](e.left)
		}
		out = append(out, e.right)
	}
	return Right[E](out)
}

// SequenceSliceEither reassembles a slice of Eithers: Right of the slice
// when every element is Right, otherwise the first Left.
func SequenceSliceEither[E, A any](as []Either[E, A]) Either[E, []A] {
	return TraverseSliceEither(as, Identity[Either[E, A]])
}

// TraverseOptionEither traverses an Option inside Either.
func TraverseOptionEither[E, A, B any](fa Option[A], f func(A) Either[E, B]) Either[E, Option[B]] {
	return TraverseOption(fa, Right[E, Option[B]], MapEither[E, B, Option[B]], f)
}

// SequenceOptionEither flips Option[Either] into Either[Option].
func SequenceOptionEither[E, A any](fa Option[Either[E, A]]) Either[E, Option[A]] {
	return TraverseOptionEither(fa, Identity[Either[E, A]])
}

// TraverseEitherOption traverses an Either inside Option.
func TraverseEitherOption[E, A, B any](fa Either[E, A], f func(A) Option[B]) Option[Either[E, B]] {
	return TraverseEither(fa, Some[Either[E, B]], MapOption[B, Either[E, B]], f)
}

// SequenceEitherOption flips Either[E, Option] into Option[Either].
func SequenceEitherOption[E, A any](fa Either[E, Option[A]]) Option[Either[E, A]] {
	return TraverseEitherOption(fa, Identity[Option[A]])
}
