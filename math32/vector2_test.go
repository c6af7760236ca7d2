// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	assert.Equal(t, fixed.P(4, -2), Vec2(4, -2).ToFixed())
	assert.Equal(t, float32(-1.5), FromFixed(ToFixed(-1.5)))
}

func TestVector2Arith(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vec2(-3, -4), a.Negate())
	assert.Equal(t, Vec2(1, -2), a.Min(b))
	assert.Equal(t, Vec2(3, 4), a.Max(b))
	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(5), Vector2{}.DistanceTo(a))

	c := a
	c.SetAdd(b)
	assert.Equal(t, Vec2(4, 2), c)
	c.SetSubScalar(1)
	assert.Equal(t, Vec2(3, 1), c)
	c.Clamp(Vec2(0, 2), Vec2(2, 5))
	assert.Equal(t, Vec2(2, 2), c)

	c.SetDim(1, 9)
	assert.Equal(t, float32(9), c.Dim(1))
	assert.Equal(t, float32(2), c.Dim(0))
}
