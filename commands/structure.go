// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/undo"
)

// ZOrder restacks nodes among their siblings. Nodes without a parent
// are skipped. It can not be undone.
type ZOrder struct {
	undo.Irreversible

	Nodes []diagram.Node
	Order ZOrders
}

// NewZOrder returns a command restacking the nodes.
func NewZOrder(order ZOrders, nodes ...diagram.Node) *ZOrder {
	return &ZOrder{Nodes: nodes, Order: order}
}

func (c *ZOrder) Description() string { return fmt.Sprintf("Bring %d %v", len(c.Nodes), c.Order) }

func (c *ZOrder) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("ZOrder", c.Nodes, 1); err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	type entry struct {
		node   diagram.Node
		parent diagram.Composite
		index  int
	}
	var entries []entry
	for _, n := range c.Nodes {
		if p := parentOf(n); p != nil {
			entries = append(entries, entry{n, p, p.ChildIndex(n)})
		}
	}
	// nodes nearest their destination go first, so that the others
	// keep their relative order and do not swap places with them
	desc := c.Order == Forward || c.Order == Back
	slices.SortStableFunc(entries, func(a, b entry) int {
		if desc {
			return b.index - a.index
		}
		return a.index - b.index
	})
	// limits are the furthest index a step can reach in each parent
	limits := map[diagram.Composite]int{}
	for _, e := range entries {
		p := e.parent
		from := p.ChildIndex(e.node)
		last := p.ChildCount() - 1
		var to int
		switch c.Order {
		case Front:
			to = last
		case Back:
			to = 0
		case Forward:
			limit, ok := limits[p]
			if !ok {
				limit = last
			}
			to = max(min(from+1, limit), from)
			limits[p] = to - 1
		case Backward:
			limit := limits[p]
			to = min(max(from-1, limit), from)
			limits[p] = to + 1
		}
		if to == from {
			continue
		}
		// the node is not in the count when it is reinserted
		applied("ZOrder", e.node, p.InsertChildAt(e.node, to))
	}
	return c.EndDo(true), nil
}

// membership is where a grouped node came from.
type membership struct {
	node      diagram.Node
	parent    diagram.Composite
	index     int
	transform math32.Matrix2
}

// Group makes a new [diagram.Group] in the target, and moves the nodes
// into it, keeping their positions on the page. Undo puts the nodes back
// in their original parents with their original transforms, and removes
// the group; redo reuses the same group. Nodes restored into a parent
// that was changed in the meantime may end up at different indexes.
type Group struct {
	undo.Base

	Nodes []diagram.Node

	group   *diagram.Group
	members []membership
}

// NewGroup returns a command grouping the nodes.
func NewGroup(nodes ...diagram.Node) *Group {
	return &Group{Nodes: nodes}
}

func (c *Group) Description() string { return fmt.Sprintf("Group %d", len(c.Nodes)) }
func (c *Group) CanUndo() bool       { return true }

// Group returns the group made by the command, or nil before it is done.
func (c *Group) Group() *diagram.Group { return c.group }

func (c *Group) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("Group", c.Nodes, 1); err != nil {
		return false, err
	}
	parent, err := composite("Group", target)
	if err != nil {
		return false, err
	}
	for _, n := range c.Nodes {
		if n == target || target.AsTree().ParentLevel(n) >= 0 {
			return false, fmt.Errorf("%w: Group can not put %s inside itself", undo.ErrInvalidParameter, n.AsTree().Path())
		}
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	if c.group == nil {
		c.group = diagram.NewGroup(nil)
	}
	c.members = c.members[:0]
	for _, n := range c.Nodes {
		p := parentOf(n)
		m := membership{node: n, parent: p, index: -1, transform: n.AsNodeBase().Transform}
		if p != nil {
			m.index = p.ChildIndex(n)
		}
		c.members = append(c.members, m)
	}
	parent.AppendChild(c.group)
	gw := c.group.WorldTransform().Inverse()
	for _, m := range c.members {
		nb := m.node.AsNodeBase()
		world := nb.WorldTransform()
		c.group.AppendChild(m.node)
		nb.SetTransform(gw.Mul(world))
	}
	return c.EndDo(true), nil
}

func (c *Group) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	if p := parentOf(c.group); p != nil {
		p.DetachChildAt(p.ChildIndex(c.group))
	}
	// in order of original index, so each goes back where it was
	restore := slices.Clone(c.members)
	slices.SortStableFunc(restore, func(a, b membership) int { return a.index - b.index })
	for _, m := range restore {
		if m.parent == nil {
			c.group.DetachChildAt(c.group.ChildIndex(m.node))
		} else {
			idx := min(max(m.index, 0), m.parent.ChildCount())
			m.parent.InsertChildAt(m.node, idx)
		}
		m.node.AsNodeBase().SetTransform(m.transform)
	}
	return c.EndUndo(true), nil
}

// Ungroup disbands groups, moving the children of each into its parent
// with the transform of the group folded into theirs, so that they stay
// where they are on the page. Groups without a parent are skipped.
// It can not be undone.
type Ungroup struct {
	undo.Irreversible

	Groups []*diagram.Group

	children []diagram.Node
}

// NewUngroup returns a command disbanding the groups.
func NewUngroup(groups ...*diagram.Group) *Ungroup {
	return &Ungroup{Groups: groups}
}

func (c *Ungroup) Description() string { return fmt.Sprintf("Ungroup %d", len(c.Groups)) }

// Children returns the former children of the groups after Do.
func (c *Ungroup) Children() []diagram.Node { return c.children }

func (c *Ungroup) Do(target diagram.Node) (bool, error) {
	if len(c.Groups) == 0 || slices.Contains(c.Groups, nil) {
		return false, fmt.Errorf("%w: Ungroup needs groups", undo.ErrInvalidParameter)
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	c.children = nil
	for _, g := range c.Groups {
		p := parentOf(g)
		if p == nil {
			continue
		}
		p.DetachChildAt(p.ChildIndex(g))
		for _, kid := range g.Members() {
			nb := kid.AsNodeBase()
			xf := g.Transform.Mul(nb.Transform)
			p.AppendChild(kid)
			nb.SetTransform(xf)
			c.children = append(c.children, kid)
		}
		g.Destroy()
	}
	return c.EndDo(true), nil
}

// InsertNodes adds nodes as children of the target, optionally moving
// each to a location. Nodes that are already children of the target
// are skipped. Undo removes them again.
type InsertNodes struct {
	undo.Base

	Nodes []diagram.Node

	// Location is where to put the nodes, if non-nil.
	Location *math32.Vector2

	// indexes maps each inserted node to the index it was inserted at.
	indexes map[diagram.Node]int
	order   []diagram.Node
	parent  diagram.Composite
}

// NewInsertNodes returns a command inserting the nodes.
func NewInsertNodes(nodes ...diagram.Node) *InsertNodes {
	return &InsertNodes{Nodes: nodes}
}

func (c *InsertNodes) Description() string { return fmt.Sprintf("Insert %d", len(c.Nodes)) }
func (c *InsertNodes) CanUndo() bool       { return true }

// Index returns the index that the node was inserted at, or -1.
func (c *InsertNodes) Index(n diagram.Node) int {
	if idx, ok := c.indexes[n]; ok {
		return idx
	}
	return -1
}

func (c *InsertNodes) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("InsertNodes", c.Nodes, 1); err != nil {
		return false, err
	}
	parent, err := composite("InsertNodes", target)
	if err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	c.parent = parent
	c.indexes = make(map[diagram.Node]int, len(c.Nodes))
	c.order = c.order[:0]
	for _, n := range c.Nodes {
		if parent.ChildIndex(n) >= 0 {
			slog.Debug("commands.InsertNodes: skipping node already in target", "node", n.AsTree().Path())
			continue
		}
		c.indexes[n] = parent.AppendChild(n)
		c.order = append(c.order, n)
		if c.Location != nil {
			applied("InsertNodes", n, n.AsNodeBase().SetLocation(*c.Location))
		}
	}
	return c.EndDo(true), nil
}

func (c *InsertNodes) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	for i := len(c.order) - 1; i >= 0; i-- {
		n := c.order[i]
		idx := c.indexes[n]
		if c.parent.ChildAt(idx) != n {
			return false, nil
		}
		c.parent.DetachChildAt(idx)
	}
	return c.EndUndo(true), nil
}

// RemoveNodes removes nodes from the target, without destroying them.
// Nodes that are not children of the target are skipped. Undo inserts
// them again at the indexes they were removed from.
type RemoveNodes struct {
	undo.Base

	Nodes []diagram.Node

	// indexes maps each removed node to the index it was removed from.
	indexes map[diagram.Node]int
	order   []diagram.Node
	parent  diagram.Composite
}

// NewRemoveNodes returns a command removing the nodes.
func NewRemoveNodes(nodes ...diagram.Node) *RemoveNodes {
	return &RemoveNodes{Nodes: nodes}
}

func (c *RemoveNodes) Description() string { return fmt.Sprintf("Remove %d", len(c.Nodes)) }
func (c *RemoveNodes) CanUndo() bool       { return true }

// Removed returns the nodes that the last Do removed, in order.
func (c *RemoveNodes) Removed() []diagram.Node { return c.order }

func (c *RemoveNodes) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("RemoveNodes", c.Nodes, 1); err != nil {
		return false, err
	}
	parent, err := composite("RemoveNodes", target)
	if err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	c.parent = parent
	c.indexes = make(map[diagram.Node]int, len(c.Nodes))
	c.order = nil
	for _, n := range c.Nodes {
		idx := parent.ChildIndex(n)
		if idx < 0 {
			continue
		}
		if _, err := parent.DetachChildAt(idx); !applied("RemoveNodes", n, err) {
			continue
		}
		c.indexes[n] = idx
		c.order = append(c.order, n)
	}
	return c.EndDo(true), nil
}

func (c *RemoveNodes) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	for i := len(c.order) - 1; i >= 0; i-- {
		n := c.order[i]
		if err := c.parent.InsertChildAt(n, c.indexes[n]); err != nil {
			applied("RemoveNodes", n, err)
			return false, nil
		}
	}
	return c.EndUndo(true), nil
}

// Duplicate appends deep copies of nodes to the target, each moved by
// an offset. The copies have new IDs. Links among the copies are not
// reconnected. Undo removes the copies; redo adds the same copies back.
type Duplicate struct {
	undo.Base

	Nodes  []diagram.Node
	Offset math32.Vector2

	clones []diagram.Node
	parent diagram.Composite
}

// NewDuplicate returns a command duplicating the nodes with the offset.
func NewDuplicate(offset math32.Vector2, nodes ...diagram.Node) *Duplicate {
	return &Duplicate{Nodes: nodes, Offset: offset}
}

func (c *Duplicate) Description() string { return fmt.Sprintf("Duplicate %d", len(c.Nodes)) }
func (c *Duplicate) CanUndo() bool       { return true }

// Clones returns the copies made by the command.
func (c *Duplicate) Clones() []diagram.Node { return c.clones }

func (c *Duplicate) Do(target diagram.Node) (bool, error) {
	if err := checkNodes("Duplicate", c.Nodes, 1); err != nil {
		return false, err
	}
	parent, err := composite("Duplicate", target)
	if err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	c.parent = parent
	if c.clones == nil {
		for _, n := range c.Nodes {
			c.clones = append(c.clones, diagram.AsNode(n.AsTree().Clone()))
		}
		for _, cl := range c.clones {
			parent.AppendChild(cl)
			nb := cl.AsNodeBase()
			nb.SetTransform(math32.Translate2D(c.Offset.X, c.Offset.Y).Mul(nb.Transform))
		}
		return c.EndDo(true), nil
	}
	for _, cl := range c.clones {
		parent.AppendChild(cl)
	}
	return c.EndDo(true), nil
}

func (c *Duplicate) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	for i := len(c.clones) - 1; i >= 0; i-- {
		c.parent.AsTree().RemoveChild(c.clones[i])
	}
	return c.EndUndo(true), nil
}
