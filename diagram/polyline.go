// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"fmt"
	"slices"

	"cogentcore.org/diagram/math32"
)

// PointEditor is the capability of a node with an ordered list of
// points in local coordinates that can be edited one at a time.
type PointEditor interface {
	Node

	// NumPoints returns the number of points.
	NumPoints() int

	// Point returns the point at the given index.
	Point(index int) (math32.Vector2, error)

	// InsertPoint inserts the point at the given index. An index
	// of -1 or NumPoints appends it. It returns the index used.
	InsertPoint(index int, pt math32.Vector2) (int, error)

	// DeletePoint removes and returns the point at the given index.
	DeletePoint(index int) (math32.Vector2, error)

	// SetPoint replaces the point at the given index.
	SetPoint(index int, pt math32.Vector2) error
}

// Polyline is a sequence of connected line segments.
type Polyline struct {
	NodeBase

	// Points are the vertices in local coordinates.
	Points []math32.Vector2
}

// NewPolyline returns a new [Polyline] through the given points,
// added to the given parent if it is non-nil.
func NewPolyline(parent Composite, pts ...math32.Vector2) *Polyline {
	p := &Polyline{Points: pts}
	addNew(parent, p)
	return p
}

func (p *Polyline) SaveShape(g *Geometry)   { g.Points = slices.Clone(p.Points) }
func (p *Polyline) RestoreShape(g Geometry) { p.Points = slices.Clone(g.Points) }
func (p *Polyline) NumPoints() int          { return len(p.Points) }

// LocalBBox returns the box spanning the points,
// or an empty box at the origin if there are none.
func (p *Polyline) LocalBBox() math32.Box2 {
	if len(p.Points) == 0 {
		return math32.Box2{}
	}
	var bb math32.Box2
	bb.SetFromPoints(p.Points)
	return bb
}

// ApplyLocal transforms each of the points.
func (p *Polyline) ApplyLocal(m math32.Matrix2) {
	for i, pt := range p.Points {
		p.Points[i] = m.MulVector2AsPoint(pt)
	}
}

// ContainsPoint returns whether the point, in parent coordinates,
// is within the tolerance of any segment.
func (p *Polyline) ContainsPoint(pt math32.Vector2, tol float32) bool {
	return p.nearSegment(p.Transform.Inverse().MulVector2AsPoint(pt), tol, false)
}

func (p *Polyline) nearSegment(lpt math32.Vector2, tol float32, closed bool) bool {
	np := len(p.Points)
	switch np {
	case 0:
		return false
	case 1:
		return p.Points[0].DistanceTo(lpt) <= tol
	}
	for i := 1; i < np; i++ {
		if math32.NewLine2(p.Points[i-1], p.Points[i]).DistanceToPoint(lpt) <= tol {
			return true
		}
	}
	return closed && math32.NewLine2(p.Points[np-1], p.Points[0]).DistanceToPoint(lpt) <= tol
}

func (p *Polyline) checkIndex(index int) error {
	if index < 0 || index >= len(p.Points) {
		return fmt.Errorf("%w: point %d of %d in %s", ErrIndexOutOfRange, index, len(p.Points), p.Path())
	}
	return nil
}

// Point returns the point at the given index.
func (p *Polyline) Point(index int) (math32.Vector2, error) {
	if err := p.checkIndex(index); err != nil {
		return math32.Vector2{}, err
	}
	return p.Points[index], nil
}

// InsertPoint inserts the point at the given index, or appends it
// for an index of -1 or [Polyline.NumPoints].
func (p *Polyline) InsertPoint(index int, pt math32.Vector2) (int, error) {
	if index == -1 {
		index = len(p.Points)
	}
	if index < 0 || index > len(p.Points) {
		return -1, fmt.Errorf("%w: insert point at %d of %d in %s", ErrIndexOutOfRange, index, len(p.Points), p.Path())
	}
	old := p.Bounds()
	p.Points = slices.Insert(p.Points, index, pt)
	p.boundsChanged(old)
	return index, nil
}

// DeletePoint removes and returns the point at the given index.
func (p *Polyline) DeletePoint(index int) (math32.Vector2, error) {
	if err := p.checkIndex(index); err != nil {
		return math32.Vector2{}, err
	}
	old := p.Bounds()
	pt := p.Points[index]
	p.Points = slices.Delete(p.Points, index, index+1)
	p.boundsChanged(old)
	return pt, nil
}

// SetPoint replaces the point at the given index.
func (p *Polyline) SetPoint(index int, pt math32.Vector2) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	old := p.Bounds()
	p.Points[index] = pt
	p.boundsChanged(old)
	return nil
}

// Polygon is a closed [Polyline] whose interior is filled.
type Polygon struct {
	Polyline
}

// NewPolygon returns a new [Polygon] through the given points,
// added to the given parent if it is non-nil.
func NewPolygon(parent Composite, pts ...math32.Vector2) *Polygon {
	p := &Polygon{Polyline: Polyline{Points: pts}}
	addNew(parent, p)
	return p
}

// ContainsPoint returns whether the point, in parent coordinates,
// is inside the polygon or within the tolerance of its outline.
func (p *Polygon) ContainsPoint(pt math32.Vector2, tol float32) bool {
	lpt := p.Transform.Inverse().MulVector2AsPoint(pt)
	if p.nearSegment(lpt, tol, true) {
		return true
	}
	// even-odd ray casting to the right of the point
	inside := false
	pts := p.Points
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > lpt.Y) != (b.Y > lpt.Y) &&
			lpt.X < (b.X-a.X)*(lpt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
