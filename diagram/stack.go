// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"log/slog"

	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/tree"
)

// TransformStack accumulates world transforms during a traversal of
// the diagram, so that each node does not need to walk up to the root.
// Each pushed entry is the product of the entry below it and the
// local transform being pushed.
type TransformStack struct {
	stack []math32.Matrix2
}

// Push pushes the product of the current top and the given
// local transform, and returns it.
func (ts *TransformStack) Push(m math32.Matrix2) math32.Matrix2 {
	if len(ts.stack) > 0 {
		m = ts.Top().Mul(m)
	}
	ts.stack = append(ts.stack, m)
	return m
}

// Pop removes the top entry, restoring the previous one.
func (ts *TransformStack) Pop() {
	n := len(ts.stack)
	if n == 0 {
		slog.Error("programmer error: diagram.TransformStack.Pop: stack is empty")
		return
	}
	ts.stack = ts.stack[:n-1]
}

// Top returns the current accumulated transform,
// or the identity if the stack is empty.
func (ts *TransformStack) Top() math32.Matrix2 {
	if len(ts.stack) == 0 {
		return math32.Identity2()
	}
	return ts.stack[len(ts.stack)-1]
}

func (ts *TransformStack) Len() int { return len(ts.stack) }
func (ts *TransformStack) Reset()   { ts.stack = ts.stack[:0] }

// Bounds returns the bounds of the node under the current transform,
// which is the world bounds of the node when the stack holds the
// world transform of its parent.
func (ts *TransformStack) Bounds(n Node) math32.Box2 {
	return n.LocalBBox().MulMatrix2(ts.Top().Mul(n.AsNodeBase().Transform))
}

// Walk calls the function on the root and all of the diagram nodes
// below it, depth first, with the world transform of each node.
// If the function returns [tree.Break] the children of that node
// are skipped.
func Walk(root Node, fun func(n Node, world math32.Matrix2) bool) {
	var ts TransformStack
	ts.Push(root.AsNodeBase().ParentTransform())
	walk(root, &ts, fun)
}

func walk(n Node, ts *TransformStack, fun func(n Node, world math32.Matrix2) bool) {
	world := ts.Push(n.AsNodeBase().Transform)
	defer ts.Pop()
	if fun(n, world) == tree.Break {
		return
	}
	for _, kid := range n.AsTree().Children {
		if kn, ok := kid.(Node); ok {
			walk(kn, ts, fun)
		}
	}
}

// HitTest returns all of the leaf nodes at or below the root that
// contain the given point in root coordinates within the tolerance,
// topmost first. Groups are descended into rather than returned.
func HitTest(root Node, pt math32.Vector2, tol float32) []Node {
	var hits []Node
	Walk(root, func(n Node, world math32.Matrix2) bool {
		if n.AsTree().HasChildren() {
			return tree.Continue
		}
		if n == root {
			return tree.Continue
		}
		parent := world.Mul(n.AsNodeBase().Transform.Inverse())
		if n.ContainsPoint(parent.Inverse().MulVector2AsPoint(pt), tol) {
			hits = append(hits, n)
		}
		return tree.Continue
	})
	// depth first order is back to front
	for i, j := 0, len(hits)-1; i < j; i, j = i+1, j-1 {
		hits[i], hits[j] = hits[j], hits[i]
	}
	return hits
}

// Pick returns the topmost direct child of the root that contains the
// given point in root coordinates within the tolerance, or nil.
// Unlike [HitTest], a group is returned as a whole.
func Pick(root Composite, pt math32.Vector2, tol float32) Node {
	lpt := root.AsNodeBase().WorldTransform().Inverse().MulVector2AsPoint(pt)
	for i := root.ChildCount() - 1; i >= 0; i-- {
		kid := root.ChildAt(i)
		if kid != nil && kid.ContainsPoint(lpt, tol) {
			return kid
		}
	}
	return nil
}

// Contained returns the direct children of the root whose world
// bounds are inside the given box, in z-order, for rubber band selection.
func Contained(root Composite, box math32.Box2) []Node {
	var res []Node
	for i := range root.ChildCount() {
		kid := root.ChildAt(i)
		if kid != nil && box.ContainsBox(kid.AsNodeBase().WorldBounds()) {
			res = append(res, kid)
		}
	}
	return res
}
