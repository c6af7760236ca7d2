// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands provides the structural editing commands for
// diagrams, which are executed through an [undo.Dispatcher] whose
// target is the diagram node they operate within, typically the
// [diagram.Model].
//
// Commands over several nodes are best effort: a node that can not be
// changed, because of a boundary constraint or a missing capability,
// is skipped and the command goes on with the rest. Invalid usage,
// such as a missing required node, is returned as an error wrapping
// [undo.ErrInvalidParameter] or [undo.ErrInvalidOperation].
package commands

import (
	"fmt"
	"log/slog"

	"cogentcore.org/diagram/base/errors"
	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/undo"
)

// Command is a command on a diagram.
type Command = undo.Command[diagram.Node]

// Dispatcher is a dispatcher of diagram commands.
type Dispatcher = undo.Dispatcher[diagram.Node]

// NewDispatcher returns a new [Dispatcher] for the given target.
func NewDispatcher(target diagram.Node) *Dispatcher {
	return undo.New(target)
}

// NewMacro returns a command doing the given commands in order.
func NewMacro(name string, cmds ...Command) *undo.Macro[diagram.Node] {
	return undo.NewMacro(name, cmds...)
}

// checkNodes returns an error if there are fewer than min nodes
// or any of them is nil.
func checkNodes(cmd string, nodes []diagram.Node, min int) error {
	if len(nodes) < min {
		return fmt.Errorf("%w: %s needs at least %d nodes, got %d", undo.ErrInvalidParameter, cmd, min, len(nodes))
	}
	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("%w: %s node %d is nil", undo.ErrInvalidParameter, cmd, i)
		}
	}
	return nil
}

// composite returns the target as a [diagram.Composite].
func composite(cmd string, target diagram.Node) (diagram.Composite, error) {
	c, ok := target.(diagram.Composite)
	if !ok || target == nil {
		return nil, fmt.Errorf("%w: %s target %v can not have children", undo.ErrInvalidParameter, cmd, target)
	}
	return c, nil
}

// parentOf returns the parent of the node if it can have children.
func parentOf(n diagram.Node) diagram.Composite {
	p, _ := n.AsTree().Parent.(diagram.Composite)
	return p
}

// applied reports whether a change to one node of a batch succeeded.
// Expected failures are logged at debug level and skipped by the caller.
func applied(cmd string, n diagram.Node, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, diagram.ErrBoundaryConstraint),
		errors.Is(err, diagram.ErrUnsupported),
		errors.Is(err, diagram.ErrIndexOutOfRange):
		slog.Debug("commands."+cmd+": skipping node", "node", n.AsTree().Path(), "err", err)
	default:
		errors.Log(err)
	}
	return false
}

// snapshot is the geometry of a node before a command changed it.
type snapshot struct {
	node     diagram.Node
	geometry diagram.Geometry
}

// snapshots records geometry so that it can be restored exactly.
type snapshots []snapshot

func (ss *snapshots) save(n diagram.Node) {
	*ss = append(*ss, snapshot{node: n, geometry: n.AsNodeBase().Geometry()})
}

// drop forgets the most recent snapshot, for a change that failed.
func (ss *snapshots) drop() {
	*ss = (*ss)[:len(*ss)-1]
}

// restore restores the snapshots in reverse order and forgets them.
func (ss *snapshots) restore() {
	for i := len(*ss) - 1; i >= 0; i-- {
		s := (*ss)[i]
		s.node.AsNodeBase().RestoreGeometry(s.geometry)
	}
	*ss = nil
}

// nodes returns the nodes that were changed.
func (ss snapshots) nodes() []diagram.Node {
	ns := make([]diagram.Node, len(ss))
	for i, s := range ss {
		ns[i] = s.node
	}
	return ns
}
