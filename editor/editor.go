// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides an editing session over a diagram: a model,
// its undo history, a selection and a clipboard, configured by [Settings].
package editor

import (
	"log/slog"
	"slices"

	"cogentcore.org/diagram/commands"
	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/props"
)

// Editor is an editing session. All changes made through its methods
// go through the [commands.Dispatcher], so that they can be undone.
type Editor struct {

	// Model is the diagram being edited.
	Model *diagram.Model

	// Dispatcher executes commands on the model and holds the undo history.
	Dispatcher *commands.Dispatcher

	// Settings are the settings the session was made with.
	Settings *Settings

	// Links makes the links added by [Editor.Connect].
	Links diagram.LinkFactory

	selection []diagram.Node
	clipboard []diagram.Node

	// pastes counts the pastes of the current clipboard.
	pastes int
}

// New returns a new editor with an empty model. Default settings
// are used if settings is nil.
func New(settings *Settings) *Editor {
	if settings == nil {
		settings = NewSettings()
	}
	e := &Editor{Settings: settings}
	e.Reset()
	return e
}

// Reset starts over with an empty model and history, applying the
// current settings.
func (e *Editor) Reset() {
	s := e.Settings
	e.Model = diagram.NewModel(s.Page.Width, s.Page.Height)
	e.Model.BoundaryConstraints = s.BoundaryConstraints
	e.Dispatcher = commands.NewDispatcher(e.Model)
	e.Dispatcher.SetMaxHistory(s.MaxHistory)
	e.Links = s.LinkKind
	e.selection = nil
	e.clipboard = nil
	e.pastes = 0
}

// Execute executes the command on the model, and reroutes the links
// if it succeeded.
func (e *Editor) Execute(cmd commands.Command) (bool, error) {
	ok, err := e.Dispatcher.Execute(cmd)
	e.after(ok, err)
	return ok, err
}

// Undo undoes the last command.
func (e *Editor) Undo() (bool, error) {
	ok, err := e.Dispatcher.UndoCommand()
	e.after(ok, err)
	return ok, err
}

// Redo redoes the last undone command.
func (e *Editor) Redo() (bool, error) {
	ok, err := e.Dispatcher.RedoCommand()
	e.after(ok, err)
	return ok, err
}

func (e *Editor) after(ok bool, err error) {
	if err != nil || !ok {
		return
	}
	e.Model.RouteLinks()
	e.pruneSelection()
}

// pruneSelection drops selected nodes that are no longer in the model.
func (e *Editor) pruneSelection() {
	e.selection = slices.DeleteFunc(e.selection, func(n diagram.Node) bool {
		return n.AsTree().This == nil || n.AsTree().ParentLevel(e.Model) < 0
	})
}

// Selection returns the selected nodes.
func (e *Editor) Selection() []diagram.Node { return e.selection }

// HasSelection returns whether any nodes are selected.
func (e *Editor) HasSelection() bool { return len(e.selection) > 0 }

// Select replaces the selection with the given nodes.
func (e *Editor) Select(nodes ...diagram.Node) {
	sel := make([]diagram.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil && !slices.Contains(sel, n) {
			sel = append(sel, n)
		}
	}
	e.selection = sel
}

// ClearSelection deselects everything.
func (e *Editor) ClearSelection() { e.selection = nil }

// IsSelected returns whether the node is selected.
func (e *Editor) IsSelected(n diagram.Node) bool { return slices.Contains(e.selection, n) }

// SelectAt selects the topmost node of the model at the given point,
// and returns it. The selection is cleared if there is none.
func (e *Editor) SelectAt(pt math32.Vector2) diagram.Node {
	n := diagram.Pick(e.Model, pt, e.Settings.HitTolerance)
	e.Select(n)
	return n
}

// SelectRect selects the nodes of the model that are inside the box.
func (e *Editor) SelectRect(box math32.Box2) []diagram.Node {
	e.Select(diagram.Contained(e.Model, box.Canon())...)
	return e.selection
}

// Snap returns the point rounded to the nearest grid point.
func (e *Editor) Snap(pt math32.Vector2) math32.Vector2 {
	g := e.Settings.Grid
	if g <= 0 {
		return pt
	}
	return math32.Vec2(math32.Round(pt.X/g)*g, math32.Round(pt.Y/g)*g)
}

// MoveSelection moves the selected nodes. With snapping on, the delta
// is adjusted so that the first node ends up on the grid.
func (e *Editor) MoveSelection(dx, dy float32) (bool, error) {
	if !e.HasSelection() {
		return false, nil
	}
	if e.Settings.SnapToGrid {
		loc := e.selection[0].AsNodeBase().WorldBounds().Min
		to := e.Snap(loc.Add(math32.Vec2(dx, dy)))
		dx, dy = to.X-loc.X, to.Y-loc.Y
	}
	return e.Execute(commands.NewMove(dx, dy, e.selection...))
}

// AlignSelection aligns the selected nodes with the first one.
func (e *Editor) AlignSelection(edge commands.Alignments) (bool, error) {
	return e.Execute(commands.NewAlign(edge, e.selection...))
}

// GroupSelection groups the selected nodes, and selects the new group.
func (e *Editor) GroupSelection() (bool, error) {
	cmd := commands.NewGroup(e.selection...)
	ok, err := e.Execute(cmd)
	if ok {
		e.Select(cmd.Group())
	}
	return ok, err
}

// UngroupSelection disbands the selected groups, and selects their
// former children along with the other selected nodes.
func (e *Editor) UngroupSelection() (bool, error) {
	var groups []*diagram.Group
	var rest []diagram.Node
	for _, n := range e.selection {
		if g, ok := n.(*diagram.Group); ok {
			groups = append(groups, g)
		} else {
			rest = append(rest, n)
		}
	}
	if len(groups) == 0 {
		return false, nil
	}
	cmd := commands.NewUngroup(groups...)
	ok, err := e.Execute(cmd)
	if ok {
		e.Select(append(rest, cmd.Children()...)...)
	}
	return ok, err
}

// DeleteSelection removes the selected nodes from the model, along
// with any links to them.
func (e *Editor) DeleteSelection() (bool, error) {
	if !e.HasSelection() {
		return false, nil
	}
	nodes := slices.Clone(e.selection)
	for _, l := range e.Model.Links() {
		if slices.Contains(nodes, diagram.Node(l)) {
			continue
		}
		if slices.ContainsFunc(e.selection, l.IsConnectedTo) {
			nodes = append(nodes, l)
		}
	}
	ok, err := e.Execute(commands.NewRemoveNodes(nodes...))
	if ok {
		e.ClearSelection()
	}
	return ok, err
}

// Copy puts copies of the selected nodes on the clipboard.
func (e *Editor) Copy() {
	if !e.HasSelection() {
		return
	}
	e.clipboard = make([]diagram.Node, len(e.selection))
	for i, n := range e.selection {
		e.clipboard[i] = diagram.AsNode(n.AsTree().Clone())
	}
	e.pastes = 0
	slog.Debug("editor.Editor.Copy", "nodes", len(e.clipboard))
}

// Cut copies the selected nodes to the clipboard and deletes them.
func (e *Editor) Cut() (bool, error) {
	e.Copy()
	return e.DeleteSelection()
}

// Paste adds copies of the clipboard to the model and selects them.
// Each paste of the same clipboard is offset further.
func (e *Editor) Paste() (bool, error) {
	if len(e.clipboard) == 0 {
		return false, nil
	}
	off := e.Settings.DuplicateOffset * float32(e.pastes+1)
	cmd := commands.NewDuplicate(math32.Vec2(off, off), e.clipboard...)
	ok, err := e.Execute(cmd)
	if ok {
		e.pastes++
		e.Select(cmd.Clones()...)
	}
	return ok, err
}

// Duplicate adds copies of the selected nodes to the model and
// selects them.
func (e *Editor) Duplicate() (bool, error) {
	off := e.Settings.DuplicateOffset
	cmd := commands.NewDuplicate(math32.Vec2(off, off), e.selection...)
	ok, err := e.Execute(cmd)
	if ok {
		e.Select(cmd.Clones()...)
	}
	return ok, err
}

// Connect links the two ports with a link made by [Editor.Links],
// and returns it.
func (e *Editor) Connect(tail, head diagram.PortRef) (*diagram.Link, error) {
	cmd := commands.NewLink(e.Links, tail, head)
	ok, err := e.Execute(cmd)
	if !ok {
		return nil, err
	}
	return cmd.Link(), nil
}

// SetSelectionProperty sets a property on each of the selected nodes,
// as a single command.
func (e *Editor) SetSelectionProperty(name string, value props.Value) (bool, error) {
	if !e.HasSelection() {
		return false, nil
	}
	cmds := make([]commands.Command, len(e.selection))
	for i, n := range e.selection {
		cmds[i] = commands.NewSetProperty(n, name, value)
	}
	return e.Execute(commands.NewMacro("Set "+name, cmds...))
}
