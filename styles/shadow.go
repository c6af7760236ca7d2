// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/diagram/colors"
	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/props"
)

// Shadow is the drop shadow style of a shape.
type Shadow struct {
	Props *props.Bag
}

// ShadowOf returns the shadow style over the given bag.
func ShadowOf(b *props.Bag) Shadow { return Shadow{Props: b} }

// Visible returns whether the shadow is drawn, false by default.
func (s Shadow) Visible() bool { return getBool(s.Props, ShadowVisible, false) }

func (s Shadow) SetVisible(on bool) { s.Props.Set(ShadowVisible, props.Bool(on)) }

// Color returns the shadow color, translucent gray by default.
func (s Shadow) Color() color.RGBA {
	return getColor(s.Props, ShadowColor, colors.WithA(color.RGBA{128, 128, 128, 255}, 128))
}

func (s Shadow) SetColor(c color.Color) { s.Props.Set(ShadowColor, props.RGBA(c)) }

// Offset returns the shadow offset, (5, 5) by default.
func (s Shadow) Offset() math32.Vector2 {
	return math32.Vec2(getFloat(s.Props, ShadowOffsetX, 5), getFloat(s.Props, ShadowOffsetY, 5))
}

// SetOffset sets the shadow offset.
func (s Shadow) SetOffset(off math32.Vector2) {
	s.Props.Set(ShadowOffsetX, props.Float(float64(off.X)))
	s.Props.Set(ShadowOffsetY, props.Float(float64(off.Y)))
}
