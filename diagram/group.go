// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"cogentcore.org/diagram/math32"
)

// Composite is the capability of a node to own an ordered list of
// child nodes. Indexes are dense and zero based, and the order is the
// z-order of the children, back to front.
type Composite interface {
	Node

	// AppendChild adds the node as the last child and returns its index.
	// The node is removed from any previous parent first.
	AppendChild(kid Node) int

	// InsertChildAt inserts the node at the given index, which may
	// equal ChildCount to append.
	InsertChildAt(kid Node, index int) error

	// DetachChildAt removes and returns the child at the given index,
	// leaving it intact so that it can be inserted again.
	DetachChildAt(index int) (Node, error)

	// ChildIndex returns the index of the given child, or -1.
	ChildIndex(kid Node) int

	// ChildCount returns the number of children.
	ChildCount() int

	// ChildAt returns the child at the given index, or nil.
	ChildAt(index int) Node
}

// Group groups together child nodes, which move, rotate and scale
// together through the transform of the group.
type Group struct {
	NodeBase
}

func (g *Group) AppendChild(kid Node) int                { return g.AddChild(kid) }
func (g *Group) InsertChildAt(kid Node, index int) error { return g.InsertChild(kid, index) }
func (g *Group) ChildIndex(kid Node) int                 { return g.IndexOf(kid) }
func (g *Group) ChildCount() int                         { return g.NumChildren() }
func (g *Group) ChildAt(index int) Node                  { return AsNode(g.Child(index)) }

func (g *Group) DetachChildAt(index int) (Node, error) {
	kid, err := g.RemoveChildAt(index)
	if err != nil {
		return nil, err
	}
	return AsNode(kid), nil
}

// LocalBBox returns the union of the bounds of the children,
// or an empty box at the origin if there are none.
func (g *Group) LocalBBox() math32.Box2 {
	bb := math32.B2Empty()
	for _, kid := range g.Children {
		if kn, ok := kid.(Node); ok {
			bb.ExpandByBox(kn.AsNodeBase().Bounds())
		}
	}
	if bb.IsEmpty() {
		return math32.Box2{}
	}
	return bb
}

// ContainsPoint returns whether any child contains the point.
func (g *Group) ContainsPoint(pt math32.Vector2, tol float32) bool {
	lpt := g.Transform.Inverse().MulVector2AsPoint(pt)
	for _, kid := range g.Children {
		if kn, ok := kid.(Node); ok && kn.ContainsPoint(lpt, tol) {
			return true
		}
	}
	return false
}

// Members returns the children of the group as nodes.
func (g *Group) Members() []Node {
	ms := make([]Node, 0, len(g.Children))
	for _, kid := range g.Children {
		if kn, ok := kid.(Node); ok {
			ms = append(ms, kn)
		}
	}
	return ms
}
