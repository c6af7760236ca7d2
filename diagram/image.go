// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"fmt"
	"image"

	"cogentcore.org/diagram/base/iox/imagex"
	"cogentcore.org/diagram/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Image is a bitmap image shown in a rectangle. Images can be moved
// and resized, but not rotated or scaled about an anchor.
type Image struct {
	Rect

	// Filename is the file the image was loaded from, if any.
	Filename string

	// Pixels are the image pixels, resampled to the size of the rectangle.
	Pixels *image.RGBA `json:"-"`
}

// NewImage returns a new empty [Image] with the given position and size,
// added to the given parent if it is non-nil.
func NewImage(parent Composite, x, y, width, height float32) *Image {
	im := &Image{Rect: Rect{Rect: math32.B2Rect(x, y, width, height)}}
	addNew(parent, im)
	return im
}

// Rotate returns [ErrUnsupported].
func (im *Image) Rotate(degrees float32, anchor ...math32.Vector2) error {
	return fmt.Errorf("%w: rotate %s", ErrUnsupported, im.Path())
}

// Scale returns [ErrUnsupported].
func (im *Image) Scale(sx, sy float32, anchor ...math32.Vector2) error {
	return fmt.Errorf("%w: scale %s", ErrUnsupported, im.Path())
}

// SetImage copies the given image into the pixels, resampling it to
// the size of the rectangle. An empty rectangle takes on the size of
// the image.
func (im *Image) SetImage(img image.Image) {
	sz := img.Bounds().Size()
	if im.Rect.Rect.Size() == (math32.Vector2{}) {
		im.Rect.Rect.Max = im.Rect.Rect.Min.Add(math32.Vector2FromPoint(sz))
	}
	tsz := im.Rect.Rect.Size().ToPointCeil()
	if tsz.X <= 0 || tsz.Y <= 0 {
		im.Pixels = nil
		return
	}
	if tsz == sz {
		im.Pixels = imagex.CloneAsRGBA(img)
		return
	}
	im.Pixels = image.NewRGBA(image.Rectangle{Max: tsz})
	m := math32.Scale2D(float32(tsz.X)/float32(sz.X), float32(tsz.Y)/float32(sz.Y))
	s2d := f64.Aff3{float64(m.XX), float64(m.XY), float64(m.X0), float64(m.YX), float64(m.YY), float64(m.Y0)}
	draw.BiLinear.Transform(im.Pixels, s2d, img, img.Bounds(), draw.Src, nil)
}

// OpenImage loads the image from the given file in any of the
// [imagex.Formats] and sets it with [Image.SetImage].
func (im *Image) OpenImage(filename string) error {
	img, _, err := imagex.Open(filename)
	if err != nil {
		return fmt.Errorf("diagram: decoding image %q: %w", filename, err)
	}
	im.Filename = filename
	im.SetImage(img)
	return nil
}
