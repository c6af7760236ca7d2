// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"cogentcore.org/diagram/base/tolassert"
	"cogentcore.org/diagram/colors"
	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/props"
	"cogentcore.org/diagram/undo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBox(t *testing.T, expected, actual math32.Box2) {
	t.Helper()
	tolassert.EqualTol(t, expected.Min.X, actual.Min.X, 1e-3)
	tolassert.EqualTol(t, expected.Min.Y, actual.Min.Y, 1e-3)
	tolassert.EqualTol(t, expected.Max.X, actual.Max.X, 1e-3)
	tolassert.EqualTol(t, expected.Max.Y, actual.Max.Y, 1e-3)
}

func execute(t *testing.T, d *Dispatcher, cmd Command) {
	t.Helper()
	ok, err := d.Execute(cmd)
	require.NoError(t, err)
	require.True(t, ok, cmd.Description())
}

func children(c diagram.Composite) []diagram.Node {
	var ns []diagram.Node
	for i := range c.ChildCount() {
		ns = append(ns, c.ChildAt(i))
	}
	return ns
}

func TestMoveBoundaryScenario(t *testing.T) {
	m := diagram.NewModel(800, 600)
	m.BoundaryConstraints = true
	r := diagram.NewRect(m, 780, 580, 50, 50)
	d := NewDispatcher(m)

	mv := NewMove(40, 0, r)
	execute(t, d, mv)
	assert.Equal(t, math32.Vec2(780, 580), r.Location())
	assert.Empty(t, mv.Moved())

	execute(t, d, NewMove(-40, 0, r))
	assert.Equal(t, math32.Vec2(740, 580), r.Location())
}

func TestMoveUndoRedoExact(t *testing.T) {
	m := diagram.NewModel(800, 600)
	a := diagram.NewRect(m, 10.1, 20.3, 30.7, 40.9)
	b := diagram.NewEllipse(m, 100, 100, 33.3, 12.1)
	require.NoError(t, a.Rotate(17.3))
	before := []math32.Box2{a.Bounds(), b.Bounds()}
	d := NewDispatcher(m)

	execute(t, d, NewMove(0.1, -0.7, a, b))
	after := []math32.Box2{a.Bounds(), b.Bounds()}
	assert.NotEqual(t, before, after)

	ok, err := d.UndoCommand()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before, []math32.Box2{a.Bounds(), b.Bounds()})

	ok, _ = d.RedoCommand()
	require.True(t, ok)
	assert.Equal(t, after, []math32.Box2{a.Bounds(), b.Bounds()})

	_, err = d.Execute(NewMove(1, 1))
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
	_, err = d.Execute(NewMove(1, 1, a, nil))
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
}

func TestAlign(t *testing.T) {
	m := diagram.NewModel(800, 600)
	a := diagram.NewRect(m, 10, 10, 20, 20)
	b := diagram.NewRect(m, 50, 40, 10, 10)
	g := diagram.NewGroup(m)
	c := diagram.NewRect(g, 0, 0, 30, 30)
	g.SetTransform(math32.Translate2D(100, 100))
	d := NewDispatcher(m)

	execute(t, d, NewAlign(AlignLeft, a, b, c))
	assertBox(t, math32.B2(10, 10, 30, 30), a.WorldBounds())
	assertBox(t, math32.B2(10, 40, 20, 50), b.WorldBounds())
	assertBox(t, math32.B2(10, 100, 40, 130), c.WorldBounds())

	d.UndoCommand()
	assertBox(t, math32.B2(50, 40, 60, 50), b.WorldBounds())
	assertBox(t, math32.B2(100, 100, 130, 130), c.WorldBounds())

	execute(t, d, NewAlign(AlignMiddle, a, b))
	tolassert.EqualTol(t, 20, b.Center().Y, 1e-4)
	execute(t, d, NewAlign(AlignBottom, a, b))
	tolassert.EqualTol(t, 30, b.Bounds().Max.Y, 1e-4)

	_, err := d.Execute(NewAlign(AlignLeft, a))
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
}

func TestSpacing(t *testing.T) {
	m := diagram.NewModel(800, 600)
	a := diagram.NewRect(m, 0, 0, 10, 10)
	b := diagram.NewRect(m, 70, 0, 10, 10)
	c := diagram.NewRect(m, 100, 0, 10, 10)
	d := NewDispatcher(m)

	execute(t, d, NewSpacing(Across, c, b, a))
	tolassert.EqualTol(t, 5, a.Center().X, 1e-4)
	tolassert.EqualTol(t, 55, b.Center().X, 1e-4)
	tolassert.EqualTol(t, 105, c.Center().X, 1e-4)

	d.UndoCommand()
	tolassert.EqualTol(t, 75, b.Center().X, 1e-4)

	_, err := d.Execute(NewSpacing(Down, a, b))
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
}

func TestResize(t *testing.T) {
	tests := []struct {
		anchor Anchors
		want   math32.Box2
	}{
		{TopLeft, math32.B2(5, 6, 30, 30)},
		{Top, math32.B2(10, 6, 30, 30)},
		{TopRight, math32.B2(10, 6, 35, 30)},
		{Right, math32.B2(10, 10, 35, 30)},
		{BottomRight, math32.B2(10, 10, 35, 34)},
		{Bottom, math32.B2(10, 10, 30, 34)},
		{BottomLeft, math32.B2(5, 10, 30, 34)},
		{Left, math32.B2(5, 10, 30, 30)},
	}
	for _, test := range tests {
		t.Run(test.anchor.String(), func(t *testing.T) {
			m := diagram.NewModel(800, 600)
			r := diagram.NewRect(m, 10, 10, 20, 20)
			d := NewDispatcher(m)
			execute(t, d, NewResize(test.anchor, 5, 4, r))
			assertBox(t, test.want, r.Bounds())
			assert.Equal(t, 0, d.UndoLen())
		})
	}

	m := diagram.NewModel(800, 600)
	r := diagram.NewRect(m, 10, 10, 20, 20)
	rs := NewResize(Right, -25, 0, r)
	ok, err := rs.Do(m)
	require.NoError(t, err)
	assert.True(t, ok)
	assertBox(t, math32.B2(10, 10, 30, 30), r.Bounds())
	_, err = rs.Undo()
	assert.ErrorIs(t, err, undo.ErrInvalidOperation)
}

func TestRotateScale(t *testing.T) {
	m := diagram.NewModel(800, 600)
	r := diagram.NewRect(m, 0, 0, 20, 10)
	im := diagram.NewImage(m, 100, 100, 20, 10)
	d := NewDispatcher(m)

	execute(t, d, NewRotate(90, r, im))
	assertBox(t, math32.B2(5, -5, 15, 15), r.Bounds())
	assertBox(t, math32.B2(100, 100, 120, 110), im.Bounds())
	assert.Equal(t, 0, d.UndoLen())

	rr := NewRotateRadians(math32.Pi/2, r)
	tolassert.EqualTol(t, 90, rr.Degrees, 1e-4)
	tolassert.EqualTol(t, math32.Pi/2, rr.Radians(), 1e-6)

	anchor := math32.Vec2(0, 0)
	sc := NewScale(2, 2, r)
	sc.Anchor = &anchor
	execute(t, d, sc)
	assertBox(t, math32.B2(10, -10, 30, 30), r.Bounds())

	_, err := d.Execute(NewScale(0, 1, r))
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
}

func TestZOrder(t *testing.T) {
	m := diagram.NewModel(800, 600)
	a := diagram.NewRect(m, 0, 0, 1, 1)
	b := diagram.NewRect(m, 0, 0, 1, 1)
	c := diagram.NewRect(m, 0, 0, 1, 1)
	d := NewDispatcher(m)

	execute(t, d, NewZOrder(Front, a))
	assert.Equal(t, []diagram.Node{b, c, a}, children(m))
	execute(t, d, NewZOrder(Back, a))
	assert.Equal(t, []diagram.Node{a, b, c}, children(m))
	execute(t, d, NewZOrder(Forward, a))
	assert.Equal(t, []diagram.Node{b, a, c}, children(m))
	execute(t, d, NewZOrder(Forward, c))
	assert.Equal(t, []diagram.Node{b, a, c}, children(m))
	execute(t, d, NewZOrder(Backward, c))
	assert.Equal(t, []diagram.Node{b, c, a}, children(m))
	execute(t, d, NewZOrder(Backward, b))
	assert.Equal(t, []diagram.Node{b, c, a}, children(m))
	assert.Equal(t, 0, d.UndoLen())
}

func TestZOrderAdjacent(t *testing.T) {
	m := diagram.NewModel(800, 600)
	a := diagram.NewRect(m, 0, 0, 1, 1)
	b := diagram.NewRect(m, 0, 0, 1, 1)
	c := diagram.NewRect(m, 0, 0, 1, 1)
	d := NewDispatcher(m)

	tests := []struct {
		order ZOrders
		nodes []diagram.Node
		want  []diagram.Node
	}{
		{Forward, []diagram.Node{a, b}, []diagram.Node{c, a, b}},
		{Forward, []diagram.Node{a, b}, []diagram.Node{c, a, b}},
		{Backward, []diagram.Node{b, a}, []diagram.Node{a, b, c}},
		{Forward, []diagram.Node{c, a, b}, []diagram.Node{a, b, c}},
		{Front, []diagram.Node{a, b}, []diagram.Node{c, a, b}},
		{Back, []diagram.Node{b, a}, []diagram.Node{a, b, c}},
	}
	for i, tt := range tests {
		execute(t, d, NewZOrder(tt.order, tt.nodes...))
		assert.Equal(t, tt.want, children(m), "%d: %v", i, tt.order)
	}
}

func TestGroupUngroup(t *testing.T) {
	m := diagram.NewModel(800, 600)
	a := diagram.NewRect(m, 10, 10, 20, 20)
	b := diagram.NewEllipse(m, 50, 50, 10, 10)
	keep := diagram.NewRect(m, 0, 0, 5, 5)
	aWorld, bWorld := a.WorldBounds(), b.WorldBounds()
	d := NewDispatcher(m)

	gc := NewGroup(a, b)
	execute(t, d, gc)
	g := gc.Group()
	require.NotNil(t, g)
	assert.Equal(t, []diagram.Node{keep, g}, children(m))
	assert.Equal(t, []diagram.Node{a, b}, g.Members())
	assertBox(t, aWorld, a.WorldBounds())
	assertBox(t, bWorld, b.WorldBounds())

	d.UndoCommand()
	assert.Equal(t, []diagram.Node{a, b, keep}, children(m))
	assert.True(t, a.Transform.IsIdentity())
	assert.Equal(t, 0, g.ChildCount())

	d.RedoCommand()
	assert.Same(t, g, gc.Group())
	assert.Equal(t, []diagram.Node{keep, g}, children(m))

	require.NoError(t, g.Translate(10, 0))
	execute(t, d, NewUngroup(g))
	assert.Equal(t, []diagram.Node{keep, a, b}, children(m))
	assertBox(t, aWorld.Translate(math32.Vec2(10, 0)), a.WorldBounds())
	assertBox(t, bWorld.Translate(math32.Vec2(10, 0)), b.WorldBounds())

	_, err := d.Execute(NewGroup(m))
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
	_, err = NewGroup(a).Do(b)
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
	_, err = d.Execute(NewUngroup())
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
}

func TestRemoveNodesRestoresIndexes(t *testing.T) {
	m := diagram.NewModel(800, 600)
	var kids []diagram.Node
	for range 5 {
		kids = append(kids, diagram.NewRect(m, 0, 0, 10, 10))
	}
	d := NewDispatcher(m)

	rm := NewRemoveNodes(kids[0], kids[2], kids[4])
	execute(t, d, rm)
	assert.Equal(t, []diagram.Node{kids[1], kids[3]}, children(m))
	assert.Len(t, rm.Removed(), 3)

	d.UndoCommand()
	assert.Equal(t, kids, children(m))

	d.RedoCommand()
	assert.Equal(t, []diagram.Node{kids[1], kids[3]}, children(m))

	stray := diagram.NewRect(nil, 0, 0, 1, 1)
	sr := NewRemoveNodes(stray)
	execute(t, d, sr)
	assert.Empty(t, sr.Removed())
}

func TestInsertNodes(t *testing.T) {
	m := diagram.NewModel(800, 600)
	existing := diagram.NewRect(m, 0, 0, 10, 10)
	a := diagram.NewRect(nil, 0, 0, 10, 10)
	b := diagram.NewRect(nil, 0, 0, 10, 10)
	d := NewDispatcher(m)

	ins := NewInsertNodes(a, b)
	loc := math32.Vec2(200, 100)
	ins.Location = &loc
	execute(t, d, ins)
	assert.Equal(t, []diagram.Node{existing, a, b}, children(m))
	assert.Equal(t, 2, ins.Index(b))
	assert.Equal(t, -1, ins.Index(existing))
	assert.Equal(t, loc, a.Location())

	d.UndoCommand()
	assert.Equal(t, []diagram.Node{existing}, children(m))

	_, err := d.Execute(NewInsertNodes(diagram.NewRect(nil, 0, 0, 1, 1)))
	assert.NoError(t, err)
	_, err = NewInsertNodes(a).Do(existing)
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
}

func TestInsertNodesAlreadyInTarget(t *testing.T) {
	m := diagram.NewModel(800, 600)
	a := diagram.NewRect(m, 0, 0, 10, 10)
	b := diagram.NewRect(m, 0, 0, 10, 10)
	c := diagram.NewRect(nil, 0, 0, 10, 10)
	d := NewDispatcher(m)

	ins := NewInsertNodes(c, a, c)
	execute(t, d, ins)
	assert.Equal(t, []diagram.Node{a, b, c}, children(m))
	assert.Equal(t, 2, ins.Index(c))
	assert.Equal(t, -1, ins.Index(a))

	ok, err := d.UndoCommand()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []diagram.Node{a, b}, children(m))
}

func TestVertexCommands(t *testing.T) {
	m := diagram.NewModel(800, 600)
	g := diagram.NewGroup(m)
	p := diagram.NewPolyline(g, math32.Vec2(0, 0), math32.Vec2(10, 0))
	g.SetTransform(math32.Translate2D(100, 0).Mul(math32.Scale2D(2, 2)))
	d := NewDispatcher(m)

	execute(t, d, NewInsertVertex(p, -1, math32.Vec2(120, 20)))
	require.Equal(t, 3, p.NumPoints())
	pt, _ := p.Point(2)
	tolassert.EqualTol(t, 10, pt.X, 1e-4)
	tolassert.EqualTol(t, 10, pt.Y, 1e-4)
	d.UndoCommand()
	assert.Equal(t, 2, p.NumPoints())

	execute(t, d, NewMoveVertex(p, 1, 4, 6))
	pt, _ = p.Point(1)
	tolassert.EqualTol(t, 12, pt.X, 1e-4)
	tolassert.EqualTol(t, 3, pt.Y, 1e-4)
	d.UndoCommand()
	pt, _ = p.Point(1)
	assert.Equal(t, math32.Vec2(10, 0), pt)

	execute(t, d, NewDeleteVertex(p, 0))
	assert.Equal(t, 1, p.NumPoints())
	d.UndoCommand()
	assert.Equal(t, []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(10, 0)}, p.Points)

	// soft failures
	ok, err := d.Execute(NewDeleteVertex(p, 5))
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = d.Execute(NewMoveVertex(diagram.NewRect(m, 0, 0, 1, 1), 0, 1, 1))
	assert.NoError(t, err)
	assert.False(t, ok)
	_, err = d.Execute(NewInsertVertex(nil, 0, math32.Vector2{}))
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)
}

func TestLinkCommand(t *testing.T) {
	m := diagram.NewModel(800, 600)
	a := diagram.NewRect(m, 0, 0, 10, 10)
	b := diagram.NewRect(m, 100, 100, 10, 10)
	d := NewDispatcher(m)

	lc := NewLink(diagram.RouteOrthogonal, diagram.PortRef{Node: a}, diagram.PortRef{Node: b})
	execute(t, d, lc)
	require.NotNil(t, lc.Link())
	assert.Len(t, lc.Link().Points, 4)
	assert.Equal(t, 0, d.UndoLen())

	dangling := NewLink(nil, diagram.PortRef{}, diagram.PortRef{Node: b})
	execute(t, d, dangling)
	assert.Nil(t, dangling.Link().Tail)
	assert.Len(t, m.Links(), 2)
}

func TestSetPropertyAndMacro(t *testing.T) {
	m := diagram.NewModel(800, 600)
	r := diagram.NewRect(m, 0, 0, 10, 10)
	r.SetProperty("LineWidth", props.Float(1))
	d := NewDispatcher(m)

	execute(t, d, NewSetProperty(r, "LineWidth", props.Float(3)))
	execute(t, d, NewSetProperty(r, "FillColor", props.RGBA(colors.Black)))
	d.UndoCommand()
	assert.False(t, r.Properties.Has("FillColor"))
	d.UndoCommand()
	v, _ := r.Property("LineWidth")
	assert.Equal(t, props.Float(1), v)

	_, err := d.Execute(NewSetProperty(r, "", props.Float(1)))
	assert.ErrorIs(t, err, undo.ErrInvalidParameter)

	mc := NewMacro("move and color", NewMove(5, 0, r), NewSetProperty(r, "FillColor", props.RGBA(colors.White)))
	execute(t, d, mc)
	assert.Equal(t, math32.Vec2(5, 0), r.Location())
	assert.True(t, r.Properties.Has("FillColor"))
	assert.Equal(t, 1, d.UndoLen())

	d.UndoCommand()
	assert.Equal(t, math32.Vec2(0, 0), r.Location())
	assert.False(t, r.Properties.Has("FillColor"))
}

func TestDuplicate(t *testing.T) {
	m := diagram.NewModel(800, 600)
	r := diagram.NewRect(m, 10, 10, 20, 20)
	r.SetProperty("LineWidth", props.Float(2))
	p := diagram.NewPolyline(m, math32.Vec2(0, 0), math32.Vec2(5, 5))
	d := NewDispatcher(m)

	dup := NewDuplicate(math32.Vec2(10, 10), r, p)
	execute(t, d, dup)
	clones := dup.Clones()
	require.Len(t, clones, 2)
	assert.Equal(t, 4, m.ChildCount())
	rc := clones[0].(*diagram.Rect)
	assert.NotEqual(t, r.ID, rc.ID)
	assert.NotEqual(t, r.Name, rc.Name)
	assertBox(t, math32.B2(20, 20, 40, 40), rc.Bounds())
	assertBox(t, math32.B2(10, 10, 30, 30), r.Bounds())
	v, ok := rc.Properties.Local("LineWidth")
	assert.True(t, ok)
	assert.Equal(t, props.Float(2), v)

	pc := clones[1].(*diagram.Polyline)
	pc.Points[0] = math32.Vec2(1, 1)
	assert.Equal(t, math32.Vec2(0, 0), p.Points[0])

	d.UndoCommand()
	assert.Equal(t, []diagram.Node{r, p}, children(m))
	d.RedoCommand()
	assert.Equal(t, []diagram.Node{r, p, rc, pc}, children(m))
	assertBox(t, math32.B2(20, 20, 40, 40), rc.Bounds())
}
