// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"cogentcore.org/diagram/math32"
)

// Rect is a rectangle shape.
type Rect struct {
	NodeBase

	// Rect is the rectangle in local coordinates.
	Rect math32.Box2
}

// NewRect returns a new [Rect] with the given position and size,
// added to the given parent if it is non-nil.
func NewRect(parent Composite, x, y, width, height float32) *Rect {
	r := &Rect{Rect: math32.B2Rect(x, y, width, height)}
	addNew(parent, r)
	return r
}

func (r *Rect) LocalBBox() math32.Box2      { return r.Rect }
func (r *Rect) ApplyLocal(m math32.Matrix2) { r.Rect = r.Rect.MulMatrix2(m) }
func (r *Rect) SaveShape(g *Geometry)       { g.Rect = r.Rect }
func (r *Rect) RestoreShape(g Geometry)     { r.Rect = g.Rect }

// Ellipse is an ellipse shape inscribed in a rectangle.
type Ellipse struct {
	Rect
}

// NewEllipse returns a new [Ellipse] inscribed in the given rectangle,
// added to the given parent if it is non-nil.
func NewEllipse(parent Composite, x, y, width, height float32) *Ellipse {
	e := &Ellipse{Rect: Rect{Rect: math32.B2Rect(x, y, width, height)}}
	addNew(parent, e)
	return e
}

// ContainsPoint returns whether the point, in parent coordinates,
// is inside the ellipse grown by the tolerance.
func (e *Ellipse) ContainsPoint(pt math32.Vector2, tol float32) bool {
	lpt := e.Transform.Inverse().MulVector2AsPoint(pt)
	c := e.Rect.Rect.Center()
	rx := e.Rect.Rect.Width()/2 + tol
	ry := e.Rect.Rect.Height()/2 + tol
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (lpt.X - c.X) / rx
	dy := (lpt.Y - c.Y) / ry
	return dx*dx+dy*dy <= 1
}

// addNew initializes the node and adds it to the parent, if any.
func addNew(parent Composite, n Node) {
	if parent == nil {
		InitNode(n)
		return
	}
	parent.AppendChild(n)
}
