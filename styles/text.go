// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/diagram/colors"
	"cogentcore.org/diagram/props"
)

// Text is the label style of a node.
type Text struct {
	Props *props.Bag
}

// TextOf returns the text style over the given bag.
func TextOf(b *props.Bag) Text { return Text{Props: b} }

// Font returns the font family, "sans-serif" by default.
func (t Text) Font() string { return getString(t.Props, FontFamily, "sans-serif") }

func (t Text) SetFont(family string) { t.Props.Set(FontFamily, props.String(family)) }

// Size returns the font size in points, 12 by default.
func (t Text) Size() float32 { return getFloat(t.Props, FontSize, 12) }

func (t Text) SetSize(size float32) { t.Props.Set(FontSize, props.Float(float64(size))) }

// Color returns the text color, black by default.
func (t Text) Color() color.RGBA { return getColor(t.Props, TextColor, colors.Black) }

func (t Text) SetColor(c color.Color) { t.Props.Set(TextColor, props.RGBA(c)) }
