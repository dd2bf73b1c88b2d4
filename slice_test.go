// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg"
)

func isEven(n int) bool { return n%2 == 0 }

func TestMapSlice(t *testing.T) {
	got := alg.MapSlice([]int{1, 2, 3}, func(x int) int { return x * 2 })
	assert.Equal(t, []int{2, 4, 6}, got)
	assert.Empty(t, alg.MapSlice(nil, func(x int) int { return x }))
}

func TestFlatMapSlice(t *testing.T) {
	got := alg.FlatMapSlice([]int{1, 2}, func(x int) []int { return []int{x, x * 10} })
	assert.Equal(t, []int{1, 10, 2, 20}, got)

	got = alg.FlatMapSlice([]int{1, 2, 3}, func(x int) []int {
		if isEven(x) {
			return nil
		}
		return []int{x}
	})
	assert.Equal(t, []int{1, 3}, got)
}

func TestApSlice(t *testing.T) {
	double := func(x int) int { return x * 2 }
	negate := func(x int) int { return -x }
	got := alg.ApSlice([]func(int) int{double, negate}, []int{1, 2})
	assert.Equal(t, []int{2, 4, -1, -2}, got)
}

func TestAltSlice(t *testing.T) {
	got := alg.AltSlice([]int{1}, func() []int { return []int{2, 3} })
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestFilterSlice(t *testing.T) {
	got := alg.FilterSlice([]int{1, 2, 3, 4}, isEven)
	assert.Equal(t, []int{2, 4}, got)
}

func TestFilterMapSlice(t *testing.T) {
	halve := func(n int) alg.Option[int] {
		if !isEven(n) {
			return alg.None[int]()
		}
		return alg.Some(n / 2)
	}
	got := alg.FilterMapSlice([]int{1, 2, 3, 4}, halve)
	assert.Equal(t, []int{1, 2}, got)
}

func TestPartitionSlice(t *testing.T) {
	got := alg.PartitionSlice([]int{1, 2, 3, 4}, isEven)
	require.Equal(t, []int{1, 3}, got.Left)
	require.Equal(t, []int{2, 4}, got.Right)
}

func TestPartitionMapSlice(t *testing.T) {
	classify := func(n int) alg.Either[int, string] {
		if n < 0 {
			return alg.Left[int, string](n)
		}
		return alg.Right[int](string(rune('a' + n)))
	}
	got := alg.PartitionMapSlice([]int{0, -1, 2, -3}, classify)
	assert.Equal(t, []int{-1, -3}, got.Left)
	assert.Equal(t, []string{"a", "c"}, got.Right)
}

func TestCompactSlice(t *testing.T) {
	got := alg.CompactSlice([]alg.Option[int]{alg.Some(1), alg.None[int](), alg.Some(3)})
	assert.Equal(t, []int{1, 3}, got)
}

func TestSeparateSlice(t *testing.T) {
	got := alg.SeparateSlice([]alg.Either[string, int]{
		alg.Right[string](1),
		alg.Left[string, int]("e1"),
		alg.Right[string](2),
		alg.Left[string, int]("e2"),
	})
	assert.Equal(t, []string{"e1", "e2"}, got.Left)
	assert.Equal(t, []int{1, 2}, got.Right)
}

func TestUnfoldSlice(t *testing.T) {
	countdown := alg.UnfoldSlice(3, func(n int) alg.Option[alg.Pair[int, int]] {
		if n == 0 {
			return alg.None[alg.Pair[int, int]]()
		}
		return alg.Some(alg.PairOf(n, n-1))
	})
	assert.Equal(t, []int{3, 2, 1}, countdown)

	empty := alg.UnfoldSlice(0, func(n int) alg.Option[alg.Pair[int, int]] {
		return alg.None[alg.Pair[int, int]]()
	})
	assert.Empty(t, empty)
}

func TestReplicateSlice(t *testing.T) {
	assert.Equal(t, []string{"x", "x", "x"}, alg.ReplicateSlice(3, "x"))
	assert.Empty(t, alg.ReplicateSlice(0, "x"))
}

func TestReduceSlice(t *testing.T) {
	sum := alg.ReduceSlice([]int{1, 2, 3, 4}, 0, func(acc, a int) int { return acc + a })
	assert.Equal(t, 10, sum)

	// left-to-right order
	order := alg.ReduceSlice([]int{1, 2, 3}, "s", func(acc string, a int) string {
		return acc + string(rune('0'+a))
	})
	assert.Equal(t, "s123", order)
}

func TestReduceRightSlice(t *testing.T) {
	order := alg.ReduceRightSlice([]int{1, 2, 3}, "s", func(a int, acc string) string {
		return acc + string(rune('0'+a))
	})
	assert.Equal(t, "s321", order)
}

func TestReduceRightSliceLargeInput(t *testing.T) {
	// iterative reduction: depth must not grow with input size
	big := make([]int, 1_000_000)
	for i := range big {
		big[i] = 1
	}
	assert.Equal(t, 1_000_000, alg.ReduceRightSlice(big, 0, func(a, acc int) int { return acc + a }))
}

func TestFoldMapSlice(t *testing.T) {
	got := alg.FoldMapSlice(alg.StringMonoid(), []int{1, 2, 3}, func(n int) string {
		return string(rune('0' + n))
	})
	assert.Equal(t, "123", got)
}
