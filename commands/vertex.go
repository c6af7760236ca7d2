// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"log/slog"

	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/undo"
)

// pointEditor returns the node as a [diagram.PointEditor], or nil
// with a debug log if it does not have editable points.
func pointEditor(cmd string, n diagram.Node) (diagram.PointEditor, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %s node is nil", undo.ErrInvalidParameter, cmd)
	}
	pe, ok := n.(diagram.PointEditor)
	if !ok {
		slog.Debug("commands."+cmd+": skipping node", "node", n.AsTree().Path(), "err", diagram.ErrNoPoints)
	}
	return pe, nil
}

// InsertVertex inserts a point into a node with editable points.
// Undo deletes it again.
type InsertVertex struct {
	undo.Base

	Node diagram.Node

	// Index is where to insert the point, or -1 to append it.
	Index int

	// Point is the point in root coordinates.
	Point math32.Vector2

	inserted int
}

// NewInsertVertex returns a command inserting the point, in root
// coordinates, at the index.
func NewInsertVertex(n diagram.Node, index int, pt math32.Vector2) *InsertVertex {
	return &InsertVertex{Node: n, Index: index, Point: pt}
}

func (c *InsertVertex) Description() string { return fmt.Sprintf("Insert vertex at %d", c.Index) }
func (c *InsertVertex) CanUndo() bool       { return true }

func (c *InsertVertex) Do(target diagram.Node) (bool, error) {
	pe, err := pointEditor("InsertVertex", c.Node)
	if err != nil || pe == nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	local := pe.AsNodeBase().WorldTransform().Inverse().MulVector2AsPoint(c.Point)
	idx, err := pe.InsertPoint(c.Index, local)
	if !applied("InsertVertex", pe, err) {
		return false, nil
	}
	c.inserted = idx
	return c.EndDo(true), nil
}

func (c *InsertVertex) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	_, err := c.Node.(diagram.PointEditor).DeletePoint(c.inserted)
	return c.EndUndo(applied("InsertVertex", c.Node, err)), nil
}

// DeleteVertex deletes a point from a node with editable points.
// Undo inserts it again.
type DeleteVertex struct {
	undo.Base

	Node  diagram.Node
	Index int

	point math32.Vector2
}

// NewDeleteVertex returns a command deleting the point at the index.
func NewDeleteVertex(n diagram.Node, index int) *DeleteVertex {
	return &DeleteVertex{Node: n, Index: index}
}

func (c *DeleteVertex) Description() string { return fmt.Sprintf("Delete vertex %d", c.Index) }
func (c *DeleteVertex) CanUndo() bool       { return true }

func (c *DeleteVertex) Do(target diagram.Node) (bool, error) {
	pe, err := pointEditor("DeleteVertex", c.Node)
	if err != nil || pe == nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	pt, err := pe.DeletePoint(c.Index)
	if !applied("DeleteVertex", pe, err) {
		return false, nil
	}
	c.point = pt
	return c.EndDo(true), nil
}

func (c *DeleteVertex) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	_, err := c.Node.(diagram.PointEditor).InsertPoint(c.Index, c.point)
	return c.EndUndo(applied("DeleteVertex", c.Node, err)), nil
}

// MoveVertex moves a point of a node with editable points by an offset
// in root coordinates, which is mapped into the local coordinates of the
// node. Undo puts the point back exactly where it was.
type MoveVertex struct {
	undo.Base

	Node   diagram.Node
	Index  int
	DX, DY float32

	point math32.Vector2
}

// NewMoveVertex returns a command moving the point at the index.
func NewMoveVertex(n diagram.Node, index int, dx, dy float32) *MoveVertex {
	return &MoveVertex{Node: n, Index: index, DX: dx, DY: dy}
}

func (c *MoveVertex) Description() string { return fmt.Sprintf("Move vertex %d", c.Index) }
func (c *MoveVertex) CanUndo() bool       { return true }

func (c *MoveVertex) Do(target diagram.Node) (bool, error) {
	pe, err := pointEditor("MoveVertex", c.Node)
	if err != nil || pe == nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	pt, err := pe.Point(c.Index)
	if !applied("MoveVertex", pe, err) {
		return false, nil
	}
	world := pe.AsNodeBase().WorldTransform()
	moved := world.MulVector2AsPoint(pt).Add(math32.Vec2(c.DX, c.DY))
	if !applied("MoveVertex", pe, pe.SetPoint(c.Index, world.Inverse().MulVector2AsPoint(moved))) {
		return false, nil
	}
	c.point = pt
	return c.EndDo(true), nil
}

func (c *MoveVertex) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	err := c.Node.(diagram.PointEditor).SetPoint(c.Index, c.point)
	return c.EndUndo(applied("MoveVertex", c.Node, err)), nil
}
