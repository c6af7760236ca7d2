// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/diagram/colors"
	"cogentcore.org/diagram/props"
)

// Line is the outline (pen) style of a shape or link.
type Line struct {
	Props *props.Bag
}

// LineOf returns the line style over the given bag.
func LineOf(b *props.Bag) Line { return Line{Props: b} }

// Color returns the line color, black by default.
func (l Line) Color() color.RGBA { return getColor(l.Props, LineColor, colors.Black) }

// SetColor sets the line color.
func (l Line) SetColor(c color.Color) { l.Props.Set(LineColor, props.RGBA(c)) }

// Width returns the line width, 1 by default.
func (l Line) Width() float32 { return getFloat(l.Props, LineWidth, 1) }

// SetWidth sets the line width.
func (l Line) SetWidth(w float32) { l.Props.Set(LineWidth, props.Float(float64(w))) }

// Dash returns the dash pattern, [DashSolid] by default.
func (l Line) Dash() Dashes { return getEnum(l.Props, LineDash, DashSolid, DashesValues()) }

// SetDash sets the dash pattern.
func (l Line) SetDash(d Dashes) { l.Props.Set(LineDash, props.Enum(d.String())) }
