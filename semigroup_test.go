// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/alg"
)

func TestFoldSemigroup(t *testing.T) {
	s := alg.SemigroupFromConcat(func(x, y int) int { return x + y })
	assert.Equal(t, 10, alg.FoldSemigroup(s, 0, []int{1, 2, 3, 4}))
	assert.Equal(t, 5, alg.FoldSemigroup(s, 5, nil))
}

func TestConcatAll(t *testing.T) {
	assert.Equal(t, 6, alg.ConcatAll(alg.SumMonoid[int](), []int{1, 2, 3}))
	assert.Equal(t, 24, alg.ConcatAll(alg.ProductMonoid[int](), []int{2, 3, 4}))
	assert.Equal(t, "abc", alg.ConcatAll(alg.StringMonoid(), []string{"a", "b", "c"}))
	assert.Equal(t, 0, alg.ConcatAll(alg.SumMonoid[int](), nil))
}

func TestBoolMonoids(t *testing.T) {
	assert.True(t, alg.ConcatAll(alg.AllMonoid(), []bool{true, true}))
	assert.False(t, alg.ConcatAll(alg.AllMonoid(), []bool{true, false}))
	assert.True(t, alg.ConcatAll(alg.AnyMonoid(), []bool{false, true}))
	assert.False(t, alg.ConcatAll(alg.AnyMonoid(), nil))
}

func TestSliceMonoid(t *testing.T) {
	m := alg.SliceMonoid[int]()
	x := []int{1, 2}
	y := []int{3}
	got := m.Concat(x, y)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Empty(t, m.Empty)

	// operands are never mutated
	got[0] = 99
	assert.Equal(t, []int{1, 2}, x)
}

func TestFirstLastMonoid(t *testing.T) {
	first := alg.FirstMonoid[int]()
	last := alg.LastMonoid[int]()

	a, b := alg.Some(1), alg.Some(2)
	assert.Equal(t, a, first.Concat(a, b))
	assert.Equal(t, b, last.Concat(a, b))
	assert.Equal(t, b, first.Concat(alg.None[int](), b))
	assert.Equal(t, a, last.Concat(a, alg.None[int]()))
}

func TestOptionMonoid(t *testing.T) {
	m := alg.OptionMonoid(alg.SumMonoid[int]().Semigroup)
	assert.Equal(t, alg.Some(3), m.Concat(alg.Some(1), alg.Some(2)))
	assert.Equal(t, alg.Some(1), m.Concat(alg.Some(1), alg.None[int]()))
	assert.Equal(t, alg.Some(2), m.Concat(alg.None[int](), alg.Some(2)))
	assert.Equal(t, alg.None[int](), m.Concat(alg.None[int](), alg.None[int]()))
}

func TestDualMonoid(t *testing.T) {
	dual := alg.DualMonoid(alg.StringMonoid())
	assert.Equal(t, "ba", dual.Concat("a", "b"))
	assert.Equal(t, "x", dual.Concat(dual.Empty, "x"))
}

func TestFunctionMonoid(t *testing.T) {
	m := alg.FunctionMonoid[int](alg.SumMonoid[int]())
	double := func(x int) int { return x * 2 }
	square := func(x int) int { return x * x }
	f := m.Concat(double, square)
	assert.Equal(t, 3*2+3*3, f(3))
	assert.Equal(t, 0, m.Empty(42))
}

func TestPairMonoid(t *testing.T) {
	m := alg.PairMonoid(alg.SumMonoid[int](), alg.StringMonoid())
	got := m.Concat(alg.PairOf(1, "a"), alg.PairOf(2, "b"))
	assert.Equal(t, alg.PairOf(3, "ab"), got)
	assert.Equal(t, alg.PairOf(0, ""), m.Empty)
}

func TestEndoMonoid(t *testing.T) {
	m := alg.EndoMonoid[int]()
	addOne := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }
	// Concat applies the right operand first
	assert.Equal(t, 7, m.Concat(addOne, double)(3))
	assert.Equal(t, 8, m.Concat(double, addOne)(3))
	assert.Equal(t, 5, m.Empty(5))
}

func TestMinMaxSemigroup(t *testing.T) {
	ord := alg.OrdPrimitive[int]()
	assert.Equal(t, 1, alg.MinSemigroup(ord).Concat(3, 1))
	assert.Equal(t, 3, alg.MaxSemigroup(ord).Concat(3, 1))
}

func TestAdditiveGroup(t *testing.T) {
	g := alg.AdditiveGroup[int]()
	assert.Equal(t, g.Empty, g.Concat(7, g.Inverse(7)))
	assert.Equal(t, g.Empty, g.Concat(g.Inverse(-3), -3))
}
