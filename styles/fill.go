// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/diagram/colors"
	"cogentcore.org/diagram/props"
)

// Fill is the interior paint style of a shape.
type Fill struct {
	Props *props.Bag
}

// FillOf returns the fill style over the given bag.
func FillOf(b *props.Bag) Fill { return Fill{Props: b} }

// Mode returns the fill mode, [FillSolid] by default.
func (f Fill) Mode() FillModes {
	return getEnum(f.Props, FillMode, FillSolid, FillModesValues())
}

// SetMode sets the fill mode.
func (f Fill) SetMode(m FillModes) {
	f.Props.Set(FillMode, props.Enum(m.String()))
}

// Color returns the solid fill color, white by default.
func (f Fill) Color() color.RGBA {
	return getColor(f.Props, FillColor, colors.White)
}

// SetColor sets the solid fill color. While the mode is [FillSolid],
// it also sets the gradient start color, so that a later switch to
// [FillGradient] starts from the color already visible.
func (f Fill) SetColor(c color.Color) {
	v := props.RGBA(c)
	f.Props.Set(FillColor, v)
	if f.Mode() == FillSolid {
		f.Props.Set(GradientStartColor, v)
	}
}

// GradientStartColor returns the gradient start color,
// which defaults to the fill color.
func (f Fill) GradientStartColor() color.RGBA {
	return getColor(f.Props, GradientStartColor, f.Color())
}

// SetGradientStartColor sets the gradient start color.
func (f Fill) SetGradientStartColor(c color.Color) {
	f.Props.Set(GradientStartColor, props.RGBA(c))
}

// GradientEndColor returns the gradient end color, black by default.
func (f Fill) GradientEndColor() color.RGBA {
	return getColor(f.Props, GradientEndColor, colors.Black)
}

// SetGradientEndColor sets the gradient end color.
func (f Fill) SetGradientEndColor(c color.Color) {
	f.Props.Set(GradientEndColor, props.RGBA(c))
}

// MidColor returns the color halfway along the gradient.
func (f Fill) MidColor() color.RGBA {
	return colors.Blend(0.5, f.GradientStartColor(), f.GradientEndColor())
}

// Texture returns the texture resource reference, if any.
func (f Fill) Texture() (string, bool) {
	if v, ok := f.Props.Get(FillTexture); ok {
		return v.Resource()
	}
	return "", false
}

// SetTexture sets the texture resource reference.
// An empty reference removes it.
func (f Fill) SetTexture(ref string) {
	if ref == "" {
		f.Props.Remove(FillTexture)
		return
	}
	f.Props.Set(FillTexture, props.Resource(ref))
}
