// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides named colors, hex and name parsing,
// and blending for the color values stored in diagram properties.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/diagram/base/errors"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// Transparent is fully transparent black.
	Transparent = color.RGBA{}

	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}
)

// AsRGBA returns the given color as an alpha-premultiplied [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return Transparent
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// asNRGBA returns the given color as a non alpha-premultiplied [color.NRGBA].
func asNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// WithA returns the given color with the given alpha value,
// keeping its unpremultiplied red, green and blue components.
func WithA(c color.Color, a uint8) color.RGBA {
	n := asNRGBA(c)
	n.A = a
	return AsRGBA(n)
}

// IsNil returns whether the color is fully transparent,
// which is treated as the absence of a color.
func IsNil(c color.Color) bool {
	return AsRGBA(c).A == 0
}

// FromHex parses the given hex color string, with an optional
// leading '#', in the form rgb, rrggbb or rrggbbaa.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(hex) {
	case 3, 6:
		cf, err := colorful.Hex("#" + hex)
		if err != nil {
			return Transparent, fmt.Errorf("colors.FromHex: %w", err)
		}
		r, g, b := cf.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	case 8:
		c, err := FromHex(hex[:6])
		if err != nil {
			return Transparent, err
		}
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Transparent, fmt.Errorf("colors.FromHex: invalid alpha %q: %w", hex[6:], err)
		}
		return WithA(c, uint8(a)), nil
	}
	return Transparent, fmt.Errorf("colors.FromHex: invalid hex color %q", hex)
}

// AsHex returns the color as a #rrggbb string, or #rrggbbaa when
// it is not fully opaque.
func AsHex(c color.Color) string {
	r := asNRGBA(c)
	cf := colorful.Color{R: float64(r.R) / 255, G: float64(r.G) / 255, B: float64(r.B) / 255}
	if r.A == 255 {
		return cf.Hex()
	}
	return fmt.Sprintf("%s%02x", cf.Hex(), r.A)
}

// FromName returns the SVG color with the given name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Transparent, fmt.Errorf("colors.FromName: unknown color name %q", name)
	}
	return c, nil
}

// FromString parses a color from a hex value, an SVG color name,
// or one of the keywords "none" and "transparent".
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	switch lstr := strings.ToLower(str); {
	case lstr == "none" || lstr == "transparent" || lstr == "":
		return Transparent, nil
	case strings.HasPrefix(lstr, "#"):
		return FromHex(lstr)
	}
	return FromName(str)
}

// MustFromString is like [FromString] but logs any error and
// returns [Transparent] in that case.
func MustFromString(str string) color.RGBA {
	return errors.Log1(FromString(str))
}

// Blend returns a color that is the given proportion (0-1) of the way
// from x to y, interpolated in the perceptual Lab space. Alpha is
// interpolated linearly.
func Blend(p float32, x, y color.Color) color.RGBA {
	switch {
	case p <= 0:
		return AsRGBA(x)
	case p >= 1:
		return AsRGBA(y)
	}
	xr, yr := asNRGBA(x), asNRGBA(y)
	xc := colorful.Color{R: float64(xr.R) / 255, G: float64(xr.G) / 255, B: float64(xr.B) / 255}
	yc := colorful.Color{R: float64(yr.R) / 255, G: float64(yr.G) / 255, B: float64(yr.B) / 255}
	r, g, b := xc.BlendLab(yc, float64(p)).Clamped().RGB255()
	a := float32(xr.A) + p*(float32(yr.A)-float32(xr.A))
	return AsRGBA(color.NRGBA{r, g, b, uint8(a + 0.5)})
}
