// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

import (
	"strconv"
	"strings"
)

// Show is the one-directional serialization capability: a total
// rendering of A to text, with no parse-back contract.
type Show[A any] struct {
	Show func(a A) string
}

// ShowString renders strings quoted.
func ShowString() Show[string] {
	return Show[string]{Show: strconv.Quote}
}

// ShowInt renders ints in decimal.
func ShowInt() Show[int] {
	return Show[int]{Show: strconv.Itoa}
}

// ShowBool renders bools as true/false.
func ShowBool() Show[bool] {
	return Show[bool]{Show: strconv.FormatBool}
}

// ShowOption renders None or Some(x) through the payload Show.
func ShowOption[A any](s Show[A]) Show[Option[A]] {
	return Show[Option[A]]{Show: func(o Option[A]) string {
		if !o.ok {
			return "None"
		}
		return "Some(" + s.Show(o.value) + ")"
	}}
}

// ShowEither renders Left(e) or Right(a) through the side Shows.
func ShowEither[E, A any](se Show[E], sa Show[A]) Show[Either[E, A]] {
	return Show[Either[E, A]]{Show: func(e Either[E, A]) string {
		if e.isRight {
			return "Right(" + sa.Show(e.right) + ")"
		}
		return "Left(" + se.Show(e.left) + ")"
	}}
}

// ShowSlice renders a slice as [a, b, ...] through the element Show.
func ShowSlice[A any](s Show[A]) Show[[]A] {
	return Show[[]A]{Show: func(as []A) string {
		var b strings.Builder
		b.WriteByte('[')
		for i, a := range as {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(s.Show(a))
		}
		b.WriteByte(']')
		return b.String()
	}}
}

// ShowPair renders a Pair as (a, b) through the component Shows.
func ShowPair[A, B any](sa Show[A], sb Show[B]) Show[Pair[A, B]] {
	return Show[Pair[A, B]]{Show: func(p Pair[A, B]) string {
		return "(" + sa.Show(p.Fst) + ", " + sb.Show(p.Snd) + ")"
	}}
}
