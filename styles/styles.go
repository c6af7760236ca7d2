// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides typed accessors over the named properties
// of a [props.Bag]. Each style reads through the bag's inheritance
// chain and substitutes a documented default when a name is absent
// everywhere; writes always go to the local bag.
package styles

import (
	"image/color"

	"cogentcore.org/diagram/props"
)

// Property names used by the styles in this package.
const (
	FillMode           = "FillMode"
	FillColor          = "FillColor"
	GradientStartColor = "GradientStartColor"
	GradientEndColor   = "GradientEndColor"
	FillTexture        = "FillTexture"

	LineColor = "LineColor"
	LineWidth = "LineWidth"
	LineDash  = "LineDash"

	FontFamily = "FontFamily"
	FontSize   = "FontSize"
	TextColor  = "TextColor"

	ShadowVisible = "ShadowVisible"
	ShadowColor   = "ShadowColor"
	ShadowOffsetX = "ShadowOffsetX"
	ShadowOffsetY = "ShadowOffsetY"
)

func getColor(b *props.Bag, name string, def color.RGBA) color.RGBA {
	if v, ok := b.Get(name); ok {
		if c, ok := v.Color(); ok {
			return c
		}
	}
	return def
}

func getFloat(b *props.Bag, name string, def float32) float32 {
	if v, ok := b.Get(name); ok {
		if f, ok := v.Float(); ok {
			return float32(f)
		}
	}
	return def
}

func getBool(b *props.Bag, name string, def bool) bool {
	if v, ok := b.Get(name); ok {
		if f, ok := v.Bool(); ok {
			return f
		}
	}
	return def
}

func getString(b *props.Bag, name, def string) string {
	if v, ok := b.Get(name); ok {
		if s, ok := v.Str(); ok {
			return s
		}
	}
	return def
}

// enum is implemented by the enum types of this package.
type enum interface {
	~int32
	String() string
}

func getEnum[E enum](b *props.Bag, name string, def E, values []E) E {
	v, ok := b.Get(name)
	if !ok {
		return def
	}
	s, ok := v.Enum()
	if !ok {
		return def
	}
	for _, e := range values {
		if e.String() == s {
			return e
		}
	}
	return def
}
