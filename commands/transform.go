// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/undo"
)

// Resize grows (or shrinks, for negative values) the bounds of nodes by
// a width and height, moving the given anchor of each bounding box while
// the opposite side or corner stays fixed. A node whose size would not
// be positive is skipped. It can not be undone.
type Resize struct {
	undo.Irreversible

	Nodes  []diagram.Node
	DW, DH float32
	Anchor Anchors
}

// NewResize returns a command resizing the nodes at the anchor.
func NewResize(anchor Anchors, dw, dh float32, nodes ...diagram.Node) *Resize {
	return &Resize{Nodes: nodes, DW: dw, DH: dh, Anchor: anchor}
}

func (c *Resize) Description() string {
	return fmt.Sprintf("Resize %d by (%g, %g) at %v", len(c.Nodes), c.DW, c.DH, c.Anchor)
}

func (c *Resize) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("Resize", c.Nodes, 1); err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	for _, n := range c.Nodes {
		nb := n.AsNodeBase()
		b := resizeBox(nb.Bounds(), c.Anchor, c.DW, c.DH)
		if b.Width() <= 0 || b.Height() <= 0 {
			continue
		}
		applied("Resize", n, nb.SetBounds(b))
	}
	return c.EndDo(true), nil
}

// resizeBox moves the given anchor of the box by the width and height.
func resizeBox(b math32.Box2, anchor Anchors, dw, dh float32) math32.Box2 {
	switch anchor {
	case TopLeft:
		b.Min.X -= dw
		b.Min.Y -= dh
	case Top:
		b.Min.Y -= dh
	case TopRight:
		b.Max.X += dw
		b.Min.Y -= dh
	case Right:
		b.Max.X += dw
	case BottomRight:
		b.Max.X += dw
		b.Max.Y += dh
	case Bottom:
		b.Max.Y += dh
	case BottomLeft:
		b.Min.X -= dw
		b.Max.Y += dh
	case Left:
		b.Min.X -= dw
	}
	return b
}

// Rotate rotates nodes by an angle in degrees, each around the center of
// its bounds or around a common anchor point in parent coordinates.
// Nodes that can not be rotated are skipped. It can not be undone.
type Rotate struct {
	undo.Irreversible

	Nodes   []diagram.Node
	Degrees float32

	// Anchor is the point to rotate around, if non-nil.
	Anchor *math32.Vector2
}

// NewRotate returns a command rotating the nodes by the given degrees.
func NewRotate(degrees float32, nodes ...diagram.Node) *Rotate {
	return &Rotate{Nodes: nodes, Degrees: degrees}
}

// NewRotateRadians returns a command rotating the nodes by the given radians.
func NewRotateRadians(radians float32, nodes ...diagram.Node) *Rotate {
	return NewRotate(math32.RadToDeg(radians), nodes...)
}

func (c *Rotate) Description() string { return fmt.Sprintf("Rotate %d by %g°", len(c.Nodes), c.Degrees) }
func (c *Rotate) Radians() float32    { return math32.DegToRad(c.Degrees) }

func (c *Rotate) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("Rotate", c.Nodes, 1); err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	for _, n := range c.Nodes {
		tr, ok := n.(diagram.Transformer)
		if !ok {
			continue
		}
		applied("Rotate", n, tr.Rotate(c.Degrees, anchors(c.Anchor)...))
	}
	return c.EndDo(true), nil
}

// Scale scales nodes by factors along each axis, each around the center
// of its bounds or around a common anchor point in parent coordinates.
// Nodes that can not be scaled are skipped. It can not be undone.
type Scale struct {
	undo.Irreversible

	Nodes  []diagram.Node
	SX, SY float32

	// Anchor is the point to scale around, if non-nil.
	Anchor *math32.Vector2
}

// NewScale returns a command scaling the nodes by the given factors.
func NewScale(sx, sy float32, nodes ...diagram.Node) *Scale {
	return &Scale{Nodes: nodes, SX: sx, SY: sy}
}

func (c *Scale) Description() string { return fmt.Sprintf("Scale %d by (%g, %g)", len(c.Nodes), c.SX, c.SY) }

func (c *Scale) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("Scale", c.Nodes, 1); err != nil {
		return false, err
	}
	if c.SX == 0 || c.SY == 0 {
		return false, fmt.Errorf("%w: Scale by zero", undo.ErrInvalidParameter)
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	for _, n := range c.Nodes {
		tr, ok := n.(diagram.Transformer)
		if !ok {
			continue
		}
		applied("Scale", n, tr.Scale(c.SX, c.SY, anchors(c.Anchor)...))
	}
	return c.EndDo(true), nil
}

func anchors(anchor *math32.Vector2) []math32.Vector2 {
	if anchor == nil {
		return nil
	}
	return []math32.Vector2{*anchor}
}
