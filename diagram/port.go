// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"fmt"

	"cogentcore.org/diagram/math32"
)

// Port is a named connection point on a node that links attach to.
type Port struct {

	// Name is unique among the ports of a node.
	Name string

	// Offset is the position of the port relative to the local bounding
	// box of the node, with (0, 0) at its upper left corner and (1, 1)
	// at its lower right corner.
	Offset math32.Vector2
}

// Standard port offsets.
var (
	PortCenter = math32.Vec2(0.5, 0.5)
	PortTop    = math32.Vec2(0.5, 0)
	PortRight  = math32.Vec2(1, 0.5)
	PortBottom = math32.Vec2(0.5, 1)
	PortLeft   = math32.Vec2(0, 0.5)
)

// AddPort adds a port with the given name and offset.
func (n *NodeBase) AddPort(name string, offset math32.Vector2) error {
	if _, ok := n.PortByName(name); ok {
		return fmt.Errorf("%w: %q on %s", ErrDuplicatePort, name, n.Path())
	}
	n.Ports = append(n.Ports, Port{Name: name, Offset: offset})
	return nil
}

// AddSidePorts adds the ports "top", "right", "bottom" and "left"
// at the middle of each side, skipping any that already exist.
func (n *NodeBase) AddSidePorts() {
	for _, p := range []Port{{"top", PortTop}, {"right", PortRight}, {"bottom", PortBottom}, {"left", PortLeft}} {
		if _, ok := n.PortByName(p.Name); !ok {
			n.Ports = append(n.Ports, p)
		}
	}
}

// PortByName returns the port with the given name.
func (n *NodeBase) PortByName(name string) (Port, bool) {
	for _, p := range n.Ports {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// PortPosition returns the position of the named port in root
// coordinates. The empty name is the center of the node.
func (n *NodeBase) PortPosition(name string) (math32.Vector2, bool) {
	off := PortCenter
	if name != "" {
		p, ok := n.PortByName(name)
		if !ok {
			return math32.Vector2{}, false
		}
		off = p.Offset
	}
	lb := n.node().LocalBBox()
	local := lb.Min.Add(lb.Size().Mul(off))
	return n.WorldTransform().MulVector2AsPoint(local), true
}

// PortRef refers to a port of a node, as one end of a [Link].
type PortRef struct {
	Node Node

	// Port is the name of the port, or empty for the node center.
	Port string
}

// Position returns the position of the port in root coordinates.
// It returns false for a nil reference, a destroyed node or a
// missing port.
func (r *PortRef) Position() (math32.Vector2, bool) {
	if r == nil || r.Node == nil || r.Node.AsTree().This == nil {
		return math32.Vector2{}, false
	}
	return r.Node.AsNodeBase().PortPosition(r.Port)
}
