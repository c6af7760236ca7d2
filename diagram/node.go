// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"fmt"
	"log/slog"

	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/tree"
)

// Node is the interface for all diagram nodes.
type Node interface {
	tree.Node

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// LocalBBox returns the bounding box of the node geometry in
	// its own local coordinates, before its transform is applied.
	LocalBBox() math32.Box2

	// ApplyLocal changes the geometry of the node by the given
	// transform in its local coordinates. Nodes with editable
	// geometry transform it directly; the default absorbs the
	// transform into [NodeBase.Transform].
	ApplyLocal(m math32.Matrix2)

	// SaveShape records the geometry of the node other than
	// its transform in the given snapshot.
	SaveShape(g *Geometry)

	// RestoreShape restores geometry saved by SaveShape.
	RestoreShape(g Geometry)

	// ContainsPoint returns whether the given point, in parent
	// coordinates, hits the node within the given tolerance.
	ContainsPoint(pt math32.Vector2, tol float32) bool
}

// Transformer is the capability of a node to be translated, rotated and
// scaled. All nodes have it through [NodeBase], but a node type may
// refuse some of the operations with [ErrUnsupported].
type Transformer interface {
	Translate(dx, dy float32) error
	Rotate(degrees float32, anchor ...math32.Vector2) error
	Scale(sx, sy float32, anchor ...math32.Vector2) error
}

// Constrainer is implemented by a node, typically the [Model], that
// limits where the nodes below it may be placed. ConstrainBounds
// returns an error wrapping [ErrBoundaryConstraint] if the given
// world bounds are not allowed for the node.
type Constrainer interface {
	ConstrainBounds(n Node, world math32.Box2) error
}

// BoundsObserver is implemented by a node that wants to hear about
// geometry changes of the nodes below it. A change is reported to
// the nearest ancestor implementing it.
type BoundsObserver interface {
	NodeBoundsChanged(n Node, old, new math32.Box2)
}

// Geometry is a snapshot of the geometry of a node, used to
// restore it exactly.
type Geometry struct {
	Transform math32.Matrix2
	Rect      math32.Box2
	Points    []math32.Vector2
}

// NodeBase is the base type for all nodes within a diagram.
// It implements the [Node] interface and contains the local transform
// and ports shared by all node types.
type NodeBase struct {
	tree.NodeBase

	// Transform is the local transform of the node, mapping its local
	// coordinates into the coordinates of its parent. Use the
	// [NodeBase.Translate], [NodeBase.Rotate] and [NodeBase.Scale]
	// methods to change it with boundary checking and notification.
	Transform math32.Matrix2 `set:"-"`

	// Ports are the named connection points of the node.
	Ports []Port `set:"-"`
}

func (n *NodeBase) AsNodeBase() *NodeBase              { return n }
func (n *NodeBase) LocalBBox() math32.Box2             { return math32.Box2{} }
func (n *NodeBase) SaveShape(g *Geometry)              {}
func (n *NodeBase) RestoreShape(g Geometry)            {}
func (n *NodeBase) ApplyLocal(m math32.Matrix2)        { n.Transform = n.Transform.Mul(m) }
func (n *NodeBase) LocalTransform() math32.Matrix2     { return n.Transform }
func (n *NodeBase) ContainedByRect(r math32.Box2) bool { return r.ContainsBox(n.Bounds()) }
func (n *NodeBase) IntersectsRect(r math32.Box2) bool  { return r.IntersectsBox(n.Bounds()) }
func (n *NodeBase) node() Node                         { return n.This.(Node) }

// boundsFor returns the local bounding box under the given transform.
func (n *NodeBase) boundsFor(xf math32.Matrix2) math32.Box2 {
	return n.node().LocalBBox().MulMatrix2(xf)
}

func (n *NodeBase) Init() {
	if n.Transform == (math32.Matrix2{}) {
		n.Transform = math32.Identity2()
	}
}

// ContainsPoint returns whether the given point, in parent coordinates,
// is within the bounds of the node expanded by the tolerance.
func (n *NodeBase) ContainsPoint(pt math32.Vector2, tol float32) bool {
	b := n.Bounds()
	b.ExpandByScalar(tol)
	return b.ContainsPoint(pt)
}

// ParentTransform returns the world transform of the parent of this node,
// or the identity for a root node.
func (n *NodeBase) ParentTransform() math32.Matrix2 {
	if pn, ok := n.Parent.(Node); ok {
		return pn.AsNodeBase().WorldTransform()
	}
	return math32.Identity2()
}

// WorldTransform returns the full transform from the local coordinates
// of this node to the coordinates of the root, which is the product
// of the local transforms of all of its ancestors and itself, root first.
func (n *NodeBase) WorldTransform() math32.Matrix2 {
	return n.ParentTransform().Mul(n.Transform)
}

// Bounds returns the bounding box of the node in the coordinates of its parent.
func (n *NodeBase) Bounds() math32.Box2 {
	return n.boundsFor(n.Transform)
}

// WorldBounds returns the bounding box of the node in root coordinates.
func (n *NodeBase) WorldBounds() math32.Box2 {
	return n.boundsFor(n.WorldTransform())
}

// Location returns the upper left corner of the bounds of the node.
func (n *NodeBase) Location() math32.Vector2 {
	return n.Bounds().Min
}

// Center returns the center of the bounds of the node.
func (n *NodeBase) Center() math32.Vector2 {
	return n.Bounds().Center()
}

// SetLocation moves the node so that the upper left corner of its
// bounds is at the given point in parent coordinates.
func (n *NodeBase) SetLocation(pt math32.Vector2) error {
	d := pt.Sub(n.Location())
	return n.Translate(d.X, d.Y)
}

// SetBounds changes the geometry of the node so that its bounds are the
// given box, in parent coordinates. It returns an error wrapping
// [ErrBoundaryConstraint] without changing anything if the result
// is not allowed.
func (n *NodeBase) SetBounds(b math32.Box2) error {
	old := n.Bounds()
	if old == b {
		return nil
	}
	m := old.MapTo(b)
	local := n.Transform.Inverse().Mul(m).Mul(n.Transform)
	if err := n.constrain(b.MulMatrix2(n.ParentTransform())); err != nil {
		return err
	}
	if local.XY != 0 || local.YX != 0 {
		// a sheared box can not be folded into axis aligned geometry
		n.Transform = m.Mul(n.Transform)
	} else {
		n.node().ApplyLocal(local)
	}
	n.boundsChanged(old)
	return nil
}

// SetTransform sets the local transform without boundary checking,
// reporting the bounds change.
func (n *NodeBase) SetTransform(m math32.Matrix2) {
	old := n.Bounds()
	n.Transform = m
	n.boundsChanged(old)
}

// Translate moves the node by the given offset in parent coordinates.
// It returns an error wrapping [ErrBoundaryConstraint] without moving
// if the new location is not allowed.
func (n *NodeBase) Translate(dx, dy float32) error {
	return n.applyParent(math32.Translate2D(dx, dy))
}

// Rotate rotates the node by the given angle in degrees around the given
// anchor point in parent coordinates, which defaults to the center of
// the node bounds.
func (n *NodeBase) Rotate(degrees float32, anchor ...math32.Vector2) error {
	return n.applyParent(math32.RotateAround2D(math32.DegToRad(degrees), n.anchor(anchor)))
}

// Scale scales the node by the given factors around the given anchor
// point in parent coordinates, which defaults to the center of the
// node bounds.
func (n *NodeBase) Scale(sx, sy float32, anchor ...math32.Vector2) error {
	return n.applyParent(math32.ScaleAround2D(sx, sy, n.anchor(anchor)))
}

func (n *NodeBase) anchor(anchor []math32.Vector2) math32.Vector2 {
	if len(anchor) > 0 {
		return anchor[0]
	}
	return n.Center()
}

// applyParent premultiplies the local transform by the given transform
// in parent coordinates, after checking the boundary constraint.
func (n *NodeBase) applyParent(m math32.Matrix2) error {
	xf := m.Mul(n.Transform)
	if err := n.constrain(n.boundsFor(n.ParentTransform().Mul(xf))); err != nil {
		return err
	}
	old := n.Bounds()
	n.Transform = xf
	n.boundsChanged(old)
	return nil
}

// Geometry returns a snapshot of the geometry of the node.
func (n *NodeBase) Geometry() Geometry {
	g := Geometry{Transform: n.Transform}
	n.node().SaveShape(&g)
	return g
}

// RestoreGeometry restores a snapshot taken with [NodeBase.Geometry].
// It does not check the boundary constraint, since the snapshot was
// a valid state.
func (n *NodeBase) RestoreGeometry(g Geometry) {
	old := n.Bounds()
	n.Transform = g.Transform
	n.node().RestoreShape(g)
	n.boundsChanged(old)
}

// constrain checks the given world bounds against the nearest
// [Constrainer] above the node.
func (n *NodeBase) constrain(world math32.Box2) error {
	if c := tree.ParentOf[Constrainer](n); c != nil {
		return c.ConstrainBounds(n.node(), world)
	}
	return nil
}

// boundsChanged reports a change from the given old bounds to the
// nearest [BoundsObserver] above the node.
func (n *NodeBase) boundsChanged(old math32.Box2) {
	if n.Parent == nil {
		return
	}
	nb := n.Bounds()
	if nb == old {
		return
	}
	if bo := tree.ParentOf[BoundsObserver](n); bo != nil {
		bo.NodeBoundsChanged(n.node(), old, nb)
	}
}

// AsNode returns the given tree node as a [Node], logging an error
// if it is not one.
func AsNode(tn tree.Node) Node {
	if tn == nil {
		return nil
	}
	n, ok := tn.(Node)
	if !ok {
		slog.Error("diagram.AsNode: not a diagram node", "node", fmt.Sprint(tn))
	}
	return n
}
