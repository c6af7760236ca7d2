// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"slices"

	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/undo"
)

// Move translates nodes by an offset in the coordinates of their parents.
// Nodes that can not move there are left where they are. Undo restores
// the moved nodes exactly.
type Move struct {
	undo.Base

	Nodes  []diagram.Node
	DX, DY float32

	moved snapshots
}

// NewMove returns a command that moves the nodes by the given offset.
func NewMove(dx, dy float32, nodes ...diagram.Node) *Move {
	return &Move{Nodes: nodes, DX: dx, DY: dy}
}

func (c *Move) Description() string { return fmt.Sprintf("Move %d by (%g, %g)", len(c.Nodes), c.DX, c.DY) }
func (c *Move) CanUndo() bool       { return true }

// Moved returns the nodes that the last Do moved.
func (c *Move) Moved() []diagram.Node { return c.moved.nodes() }

func (c *Move) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("Move", c.Nodes, 1); err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	c.moved = nil
	for _, n := range c.Nodes {
		c.moved.save(n)
		if !applied("Move", n, n.AsNodeBase().Translate(c.DX, c.DY)) {
			c.moved.drop()
		}
	}
	return c.EndDo(true), nil
}

func (c *Move) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	c.moved.restore()
	return c.EndUndo(true), nil
}

// Align moves nodes so that the chosen edge or center of each lines up
// with that of the first node, which is the anchor and never moves.
// Alignment is done in root coordinates, so nodes may have different
// parents. Undo restores the nodes that moved.
type Align struct {
	undo.Base

	Nodes []diagram.Node
	Edge  Alignments

	moved snapshots
}

// NewAlign returns a command aligning the nodes to the first one.
func NewAlign(edge Alignments, nodes ...diagram.Node) *Align {
	return &Align{Nodes: nodes, Edge: edge}
}

func (c *Align) Description() string { return fmt.Sprintf("Align %d %v", len(c.Nodes), c.Edge) }
func (c *Align) CanUndo() bool       { return true }

func (c *Align) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("Align", c.Nodes, 2); err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	c.moved = nil
	anchor := c.Nodes[0].AsNodeBase().WorldBounds()
	for _, n := range c.Nodes[1:] {
		nb := n.AsNodeBase()
		d := alignOffset(c.Edge, anchor, nb.WorldBounds())
		if d == (math32.Vector2{}) {
			continue
		}
		c.moved.save(n)
		if !applied("Align", n, translateWorld(nb, d)) {
			c.moved.drop()
		}
	}
	return c.EndDo(true), nil
}

func (c *Align) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	c.moved.restore()
	return c.EndUndo(true), nil
}

// alignOffset returns the offset that lines up b with the anchor.
func alignOffset(edge Alignments, anchor, b math32.Box2) math32.Vector2 {
	switch edge {
	case AlignLeft:
		return math32.Vec2(anchor.Min.X-b.Min.X, 0)
	case AlignRight:
		return math32.Vec2(anchor.Max.X-b.Max.X, 0)
	case AlignTop:
		return math32.Vec2(0, anchor.Min.Y-b.Min.Y)
	case AlignBottom:
		return math32.Vec2(0, anchor.Max.Y-b.Max.Y)
	case AlignCenter:
		return math32.Vec2(anchor.Center().X-b.Center().X, 0)
	case AlignMiddle:
		return math32.Vec2(0, anchor.Center().Y-b.Center().Y)
	}
	return math32.Vector2{}
}

// translateWorld translates the node by an offset in root coordinates.
func translateWorld(nb *diagram.NodeBase, d math32.Vector2) error {
	ld := nb.ParentTransform().Inverse().MulVector2AsVector(d)
	return nb.Translate(ld.X, ld.Y)
}

// Spacing distributes nodes at equal intervals along an axis. The nodes
// with the smallest and largest centers stay where they are, and the
// rest are moved so that their centers are evenly spaced between them,
// in the order of their current centers. Undo restores the nodes that moved.
type Spacing struct {
	undo.Base

	Nodes     []diagram.Node
	Direction Directions

	moved snapshots
}

// NewSpacing returns a command spacing the nodes evenly in the direction.
func NewSpacing(dir Directions, nodes ...diagram.Node) *Spacing {
	return &Spacing{Nodes: nodes, Direction: dir}
}

func (c *Spacing) Description() string { return fmt.Sprintf("Space %d %v", len(c.Nodes), c.Direction) }
func (c *Spacing) CanUndo() bool       { return true }

func (c *Spacing) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("Spacing", c.Nodes, 3); err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	c.moved = nil
	dim := int(c.Direction)
	center := func(n diagram.Node) float32 {
		return n.AsNodeBase().WorldBounds().Center().Dim(dim)
	}
	sorted := slices.Clone(c.Nodes)
	slices.SortStableFunc(sorted, func(a, b diagram.Node) int {
		ca, cb := center(a), center(b)
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
		return 0
	})
	lo, hi := center(sorted[0]), center(sorted[len(sorted)-1])
	step := (hi - lo) / float32(len(sorted)-1)
	for i, n := range sorted[1 : len(sorted)-1] {
		var d math32.Vector2
		d.SetDim(dim, lo+float32(i+1)*step-center(n))
		if d == (math32.Vector2{}) {
			continue
		}
		c.moved.save(n)
		if !applied("Spacing", n, translateWorld(n.AsNodeBase(), d)) {
			c.moved.drop()
		}
	}
	return c.EndDo(true), nil
}

func (c *Spacing) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	c.moved.restore()
	return c.EndUndo(true), nil
}
