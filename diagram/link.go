// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"fmt"
	"strings"

	"cogentcore.org/diagram/math32"
)

// Routings are the ways that a [Link] can be routed between its ports.
type Routings int32

const (
	// RouteStraight is a single straight segment.
	RouteStraight Routings = iota

	// RouteOrthogonal uses horizontal and vertical segments,
	// turning at the middle between the two ends.
	RouteOrthogonal
)

var routingNames = []string{"straight", "orthogonal"}

func (r Routings) String() string {
	if r < 0 || int(r) >= len(routingNames) {
		return fmt.Sprintf("Routings(%d)", int32(r))
	}
	return routingNames[r]
}

// SetString sets the routing from its name, ignoring case.
func (r *Routings) SetString(s string) error {
	for i, nm := range routingNames {
		if strings.EqualFold(nm, s) {
			*r = Routings(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Routings", s)
}

func (r Routings) MarshalText() ([]byte, error)     { return []byte(r.String()), nil }
func (r *Routings) UnmarshalText(text []byte) error { return r.SetString(string(text)) }

// LinkFactory makes links between ports.
type LinkFactory interface {
	NewLink(parent Composite, tail, head PortRef) *Link
}

// NewLink implements [LinkFactory] by making a link with this routing.
func (r Routings) NewLink(parent Composite, tail, head PortRef) *Link {
	l := &Link{Routing: r}
	addNew(parent, l)
	l.Connect(tail, head)
	return l
}

// Link is a polyline connecting two ports, which is routed between
// them when they move. Either end may be left unconnected, in which
// case that end stays where it is.
type Link struct {
	Polyline

	// Tail is the port the link starts at.
	Tail *PortRef `copier:"-" json:"-"`

	// Head is the port the link ends at.
	Head *PortRef `copier:"-" json:"-"`

	// Routing is how the link is routed.
	Routing Routings
}

// NewLink returns a new straight link between the given ports,
// added to the given parent if it is non-nil.
func NewLink(parent Composite, tail, head PortRef) *Link {
	return RouteStraight.NewLink(parent, tail, head)
}

// Connect sets the ends of the link and routes it. A [PortRef]
// with a nil node leaves that end unconnected.
func (l *Link) Connect(tail, head PortRef) {
	l.Tail, l.Head = nil, nil
	if tail.Node != nil {
		l.Tail = &tail
	}
	if head.Node != nil {
		l.Head = &head
	}
	l.Route()
}

// Route recomputes the points of the link from the positions of its
// ports. It does nothing if neither end has a position.
func (l *Link) Route() {
	inv := l.WorldTransform().Inverse()
	tail, tok := l.Tail.Position()
	head, hok := l.Head.Position()
	if tok {
		tail = inv.MulVector2AsPoint(tail)
	}
	if hok {
		head = inv.MulVector2AsPoint(head)
	}
	np := len(l.Points)
	switch {
	case !tok && !hok:
		return
	case !tok:
		if np == 0 {
			tail = head
		} else {
			tail = l.Points[0]
		}
	case !hok:
		if np == 0 {
			head = tail
		} else {
			head = l.Points[np-1]
		}
	}
	old := l.Bounds()
	switch l.Routing {
	case RouteOrthogonal:
		mx := (tail.X + head.X) / 2
		l.Points = []math32.Vector2{tail, math32.Vec2(mx, tail.Y), math32.Vec2(mx, head.Y), head}
	default:
		l.Points = []math32.Vector2{tail, head}
	}
	l.boundsChanged(old)
}

// IsConnectedTo returns whether either end of the link is
// attached to the given node.
func (l *Link) IsConnectedTo(n Node) bool {
	return (l.Tail != nil && l.Tail.Node == n) || (l.Head != nil && l.Head.Node == n)
}
