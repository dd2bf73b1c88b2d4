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

func TestEqStrict(t *testing.T) {
	eq := alg.EqStrict[int]()
	assert.True(t, eq.Equals(3, 3))
	assert.False(t, eq.Equals(3, 4))
}

func TestContramapEq(t *testing.T) {
	type user struct {
		id   int
		name string
	}
	eq := alg.ContramapEq(alg.EqStrict[int](), func(u user) int { return u.id })
	assert.True(t, eq.Equals(user{1, "a"}, user{1, "b"}))
	assert.False(t, eq.Equals(user{1, "a"}, user{2, "a"}))
}

func TestOrdPrimitive(t *testing.T) {
	ord := alg.OrdPrimitive[int]()
	assert.Equal(t, -1, ord.Compare(1, 2))
	assert.Equal(t, 0, ord.Compare(2, 2))
	assert.Equal(t, 1, ord.Compare(3, 2))
	assert.True(t, ord.Equals(2, 2))
}

func TestReverseOrd(t *testing.T) {
	ord := alg.ReverseOrd(alg.OrdPrimitive[int]())
	assert.Equal(t, 1, ord.Compare(1, 2))
	assert.Equal(t, -1, ord.Compare(3, 2))
}

func TestContramapOrd(t *testing.T) {
	ord := alg.ContramapOrd(alg.OrdPrimitive[int](), func(s string) int { return len(s) })
	assert.Equal(t, -1, ord.Compare("a", "bb"))
	assert.Equal(t, 0, ord.Compare("xy", "ab"))
}

func TestMinMaxClampBetween(t *testing.T) {
	ord := alg.OrdPrimitive[int]()
	assert.Equal(t, 1, alg.Min(ord, 1, 2))
	assert.Equal(t, 2, alg.Max(ord, 1, 2))

	clamp := alg.Clamp(ord, 0, 10)
	assert.Equal(t, 0, clamp(-5))
	assert.Equal(t, 7, clamp(7))
	assert.Equal(t, 10, clamp(15))

	between := alg.Between(ord, 0, 10)
	assert.True(t, between(0))
	assert.True(t, between(10))
	assert.False(t, between(11))
	assert.False(t, between(-1))
}

func TestBounded(t *testing.T) {
	b := alg.BoundedFromOrd(alg.OrdPrimitive[int](), -100, 100)
	for _, a := range []int{-100, -1, 0, 42, 100} {
		assert.LessOrEqual(t, b.Compare(b.Bottom, a), 0)
		assert.LessOrEqual(t, b.Compare(a, b.Top), 0)
	}
}

func TestSliceOrdLexicographic(t *testing.T) {
	ord := alg.SliceOrd(alg.OrdPrimitive[int]())

	// shorter-but-equal-prefix is lesser
	require.Equal(t, -1, ord.Compare([]int{1, 2}, []int{1, 2, 3}))
	require.Equal(t, 1, ord.Compare([]int{1, 2, 3}, []int{1, 2}))
	// first unequal pairwise comparison wins
	require.Equal(t, 1, ord.Compare([]int{1, 3}, []int{1, 2}))
	require.Equal(t, -1, ord.Compare([]int{1, 2, 9}, []int{1, 3}))
	// equal length, equal elements
	require.Equal(t, 0, ord.Compare([]int{1, 2}, []int{1, 2}))
	require.Equal(t, 0, ord.Compare(nil, []int{}))
}

func TestSliceEq(t *testing.T) {
	eq := alg.SliceEq(alg.EqStrict[int]())
	assert.True(t, eq.Equals([]int{1, 2}, []int{1, 2}))
	assert.False(t, eq.Equals([]int{1, 2}, []int{2, 1}))
	assert.False(t, eq.Equals([]int{1}, []int{1, 2}))
}

func TestOptionOrd(t *testing.T) {
	ord := alg.OptionOrd(alg.OrdPrimitive[int]())
	assert.Equal(t, -1, ord.Compare(alg.None[int](), alg.Some(-999)))
	assert.Equal(t, 0, ord.Compare(alg.None[int](), alg.None[int]()))
	assert.Equal(t, -1, ord.Compare(alg.Some(1), alg.Some(2)))
	assert.Equal(t, 0, ord.Compare(alg.Some(2), alg.Some(2)))
}

func TestEitherEq(t *testing.T) {
	eq := alg.EitherEq(alg.EqStrict[string](), alg.EqStrict[int]())
	assert.True(t, eq.Equals(alg.Right[string](1), alg.Right[string](1)))
	assert.True(t, eq.Equals(alg.Left[string, int]("e"), alg.Left[string, int]("e")))
	assert.False(t, eq.Equals(alg.Left[string, int]("e"), alg.Right[string](1)))
	assert.False(t, eq.Equals(alg.Right[string](1), alg.Right[string](2)))
}
