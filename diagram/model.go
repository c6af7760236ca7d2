// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"fmt"

	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/props"
	"cogentcore.org/diagram/tree"
)

// Model is the root of a diagram. It holds the page that nodes are laid
// out on, enforces boundary constraints, and dispatches change
// notifications from the nodes below it to its listeners.
type Model struct {
	Group

	// Page is the page rectangle in root coordinates.
	Page math32.Box2

	// BoundaryConstraints rejects changes that would move the
	// location of a node off the page.
	BoundaryConstraints bool

	propertyListeners []func(n Node, name string, old, new props.Value)
	boundsListeners   []func(n Node, old, new math32.Box2)
}

// NewModel returns a new model with a page of the given size at the origin.
func NewModel(width, height float32) *Model {
	m := tree.NewRoot[*Model]("model")
	m.Page = math32.B2(0, 0, width, height)
	return m
}

// OnPropertyChanged adds a function called when a property of
// any node in the model changes.
func (m *Model) OnPropertyChanged(fun func(n Node, name string, old, new props.Value)) {
	m.propertyListeners = append(m.propertyListeners, fun)
}

// OnBoundsChanged adds a function called when the bounds of
// any node in the model change.
func (m *Model) OnBoundsChanged(fun func(n Node, old, new math32.Box2)) {
	m.boundsListeners = append(m.boundsListeners, fun)
}

// NodePropertyChanged implements [tree.PropertyObserver].
func (m *Model) NodePropertyChanged(n tree.Node, name string, old, new props.Value) {
	dn, ok := n.(Node)
	if !ok {
		return
	}
	for _, fun := range m.propertyListeners {
		fun(dn, name, old, new)
	}
}

// NodeBoundsChanged implements [BoundsObserver].
func (m *Model) NodeBoundsChanged(n Node, old, new math32.Box2) {
	for _, fun := range m.boundsListeners {
		fun(n, old, new)
	}
}

// ConstrainBounds implements [Constrainer]. With boundary constraints
// enabled, the location (upper left corner) of the world bounds of a
// node must be on the page.
func (m *Model) ConstrainBounds(n Node, world math32.Box2) error {
	if !m.BoundaryConstraints || m.Page.ContainsPoint(world.Min) {
		return nil
	}
	return fmt.Errorf("%w: %s at %v is outside of page %v", ErrBoundaryConstraint, n.AsTree().Name, world.Min, m.Page)
}

// Links returns all of the links in the model, depth first.
func (m *Model) Links() []*Link {
	var links []*Link
	m.WalkDown(func(n tree.Node) bool {
		if l, ok := n.(*Link); ok {
			links = append(links, l)
		}
		return tree.Continue
	})
	return links
}

// RouteLinks recomputes the points of all links from the current
// positions of the ports they connect.
func (m *Model) RouteLinks() {
	for _, l := range m.Links() {
		l.Route()
	}
}

// NodeByID returns the node in the model with the given ID string, or nil.
func (m *Model) NodeByID(id string) Node {
	var found Node
	m.WalkDown(func(n tree.Node) bool {
		if found != nil {
			return tree.Break
		}
		if n.AsTree().ID.String() == id {
			found, _ = n.(Node)
			return tree.Break
		}
		return tree.Continue
	})
	return found
}
