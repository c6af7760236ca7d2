// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram_test

import (
	"image"
	"path/filepath"
	"testing"

	"cogentcore.org/diagram/base/errors"
	"cogentcore.org/diagram/base/iox/imagex"
	"cogentcore.org/diagram/base/tolassert"
	"cogentcore.org/diagram/colors"
	. "cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/math32"
	"cogentcore.org/diagram/props"
	"cogentcore.org/diagram/styles"
	"cogentcore.org/diagram/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-4)

func assertVector(t *testing.T, expected, actual math32.Vector2) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
}

func assertBox(t *testing.T, expected, actual math32.Box2) {
	t.Helper()
	assertVector(t, expected.Min, actual.Min)
	assertVector(t, expected.Max, actual.Max)
}

func assertMatrix(t *testing.T, expected, actual math32.Matrix2) {
	t.Helper()
	for i, v := range []float32{expected.XX, expected.YX, expected.XY, expected.YY, expected.X0, expected.Y0} {
		a := []float32{actual.XX, actual.YX, actual.XY, actual.YY, actual.X0, actual.Y0}[i]
		tolassert.EqualTol(t, v, a, tol)
	}
}

func TestWorldTransformComposition(t *testing.T) {
	m := NewModel(800, 600)
	outer := NewGroup(m)
	inner := NewGroup(outer)
	r := NewRect(inner, 0, 0, 10, 20)

	outer.SetTransform(math32.Translate2D(100, 50).Mul(math32.Rotate2D(math32.DegToRad(30))))
	inner.SetTransform(math32.Scale2D(2, 0.5))
	r.SetTransform(math32.Translate2D(5, 5))

	want := m.Transform.Mul(outer.Transform).Mul(inner.Transform).Mul(r.Transform)
	assertMatrix(t, want, r.WorldTransform())
	assertMatrix(t, want, inner.WorldTransform().Mul(r.LocalTransform()))
	assertMatrix(t, inner.WorldTransform(), r.ParentTransform())
	assertMatrix(t, math32.Identity2(), m.ParentTransform())

	local := r.Transform
	innerLocal := inner.Transform
	before := r.WorldBounds()
	require.NoError(t, outer.Translate(30, -10))
	assert.Equal(t, local, r.Transform)
	assert.Equal(t, innerLocal, inner.Transform)
	assertBox(t, before.Translate(math32.Vec2(30, -10)), r.WorldBounds())
}

func TestBoundsInParentSpace(t *testing.T) {
	m := NewModel(800, 600)
	g := NewGroup(m)
	r := NewRect(g, 10, 10, 20, 10)
	g.SetTransform(math32.Translate2D(100, 0))

	assertBox(t, math32.B2(10, 10, 30, 20), r.Bounds())
	assertBox(t, math32.B2(110, 10, 130, 20), r.WorldBounds())
	assertBox(t, math32.B2(110, 10, 130, 20), g.Bounds())
	assertVector(t, math32.Vec2(10, 10), r.Location())
	assertVector(t, math32.Vec2(20, 15), r.Center())

	require.NoError(t, r.Rotate(90))
	assertBox(t, math32.B2(15, 5, 25, 25), r.Bounds())

	require.NoError(t, r.Scale(2, 1, math32.Vec2(15, 5)))
	assertBox(t, math32.B2(15, 5, 35, 25), r.Bounds())
}

func TestSetBounds(t *testing.T) {
	m := NewModel(800, 600)
	r := NewRect(m, 10, 10, 20, 20)
	require.NoError(t, r.SetBounds(math32.B2(0, 0, 40, 10)))
	assertBox(t, math32.B2(0, 0, 40, 10), r.Rect)
	assert.True(t, r.Transform.IsIdentity())

	require.NoError(t, r.Rotate(90))
	require.NoError(t, r.SetBounds(math32.B2(100, 100, 130, 160)))
	assertBox(t, math32.B2(100, 100, 130, 160), r.Bounds())

	g := NewGroup(m)
	NewRect(g, 0, 0, 10, 10)
	NewRect(g, 20, 0, 10, 10)
	require.NoError(t, g.SetBounds(math32.B2(0, 0, 60, 20)))
	assertBox(t, math32.B2(0, 0, 60, 20), g.Bounds())
	assertMatrix(t, math32.Scale2D(2, 2), g.Transform)

	require.NoError(t, r.SetLocation(math32.Vec2(5, 6)))
	assertVector(t, math32.Vec2(5, 6), r.Location())

	tilted := NewRect(m, 100, 100, 100, 50)
	require.NoError(t, tilted.Rotate(30))
	b := tilted.Bounds()
	b.Max = b.Max.Add(math32.Vec2(20, 20))
	require.NoError(t, tilted.SetBounds(b))
	assertBox(t, b, tilted.Bounds())
	assertBox(t, math32.B2(100, 100, 200, 150), tilted.Rect)
}

func TestBoundaryConstraint(t *testing.T) {
	m := NewModel(800, 600)
	m.BoundaryConstraints = true
	r := NewRect(m, 780, 580, 50, 50)

	err := r.Translate(40, 0)
	assert.ErrorIs(t, err, ErrBoundaryConstraint)
	assertVector(t, math32.Vec2(780, 580), r.Location())

	require.NoError(t, r.Translate(-40, 0))
	assertVector(t, math32.Vec2(740, 580), r.Location())

	assert.ErrorIs(t, r.SetLocation(math32.Vec2(-1, 0)), ErrBoundaryConstraint)
	assert.ErrorIs(t, r.SetBounds(math32.B2(900, 0, 950, 50)), ErrBoundaryConstraint)
	assertVector(t, math32.Vec2(740, 580), r.Location())

	g := NewGroup(m)
	gr := NewRect(g, 0, 0, 10, 10)
	g.SetTransform(math32.Translate2D(780, 0))
	assert.ErrorIs(t, gr.Translate(30, 0), ErrBoundaryConstraint)
	assert.NoError(t, gr.Translate(10, 0))

	m.BoundaryConstraints = false
	assert.NoError(t, r.Translate(1000, 0))

	free := NewRect(nil, 0, 0, 10, 10)
	assert.NoError(t, free.Translate(-100, -100))
}

func TestPropertyInheritance(t *testing.T) {
	m := NewModel(800, 600)
	mid := NewGroup(m)
	leaf := NewRect(mid, 0, 0, 10, 10)

	m.SetProperty("Color", props.RGBA(colors.Black))
	v, ok := leaf.Property("Color")
	require.True(t, ok)
	assert.Equal(t, props.RGBA(colors.Black), v)

	leaf.SetProperty("Color", props.RGBA(colors.White))
	v, _ = leaf.Property("Color")
	assert.Equal(t, props.RGBA(colors.White), v)

	leaf.DeleteProperty("Color")
	v, _ = leaf.Property("Color")
	assert.Equal(t, props.RGBA(colors.Black), v)
	_, ok = mid.Properties.Local("Color")
	assert.False(t, ok)

	styles.FillOf(&m.Properties).SetColor(colors.MustFromString("red"))
	assert.Equal(t, colors.MustFromString("red"), styles.FillOf(&leaf.Properties).Color())
}

func TestNotifications(t *testing.T) {
	m := NewModel(800, 600)
	r := NewRect(m, 0, 0, 10, 10)

	var propNames []string
	m.OnPropertyChanged(func(n Node, name string, old, new props.Value) {
		assert.Equal(t, Node(r), n)
		propNames = append(propNames, name)
	})
	var moves [][2]math32.Box2
	m.OnBoundsChanged(func(n Node, old, new math32.Box2) {
		moves = append(moves, [2]math32.Box2{old, new})
	})

	styles.LineOf(&r.Properties).SetWidth(2)
	r.DeleteProperty(styles.LineWidth)
	assert.Equal(t, []string{styles.LineWidth, styles.LineWidth}, propNames)

	require.NoError(t, r.Translate(5, 0))
	require.Len(t, moves, 1)
	assertBox(t, math32.B2(0, 0, 10, 10), moves[0][0])
	assertBox(t, math32.B2(5, 0, 15, 10), moves[0][1])

	// no change, no notification
	require.NoError(t, r.Translate(0, 0))
	assert.Len(t, moves, 1)

	// detached nodes notify no one
	d := NewRect(nil, 0, 0, 10, 10)
	d.SetProperty("Color", props.RGBA(colors.Black))
	require.NoError(t, d.Translate(1, 1))
	assert.Len(t, propNames, 2)
	assert.Len(t, moves, 1)
}

func TestGroupChildren(t *testing.T) {
	m := NewModel(800, 600)
	a := NewRect(m, 0, 0, 10, 10)
	b := NewRect(m, 20, 0, 10, 10)
	c := NewEllipse(nil, 40, 0, 10, 10)

	assert.Equal(t, 2, m.AppendChild(c))
	assert.Equal(t, 3, m.ChildCount())
	assert.Equal(t, 1, m.ChildIndex(b))
	assert.Equal(t, -1, m.ChildIndex(NewRect(nil, 0, 0, 1, 1)))

	kid, err := m.DetachChildAt(0)
	require.NoError(t, err)
	assert.Equal(t, Node(a), kid)
	assert.Equal(t, 0, m.ChildIndex(b))

	require.NoError(t, m.InsertChildAt(a, 2))
	assert.Equal(t, Node(a), m.ChildAt(2))
	assert.ErrorIs(t, m.InsertChildAt(a, 5), ErrIndexOutOfRange)
	_, err = m.DetachChildAt(7)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Equal(t, []Node{b, c, a}, m.Members())
	assertBox(t, math32.B2(0, 0, 50, 10), m.LocalBBox())
	assertBox(t, math32.Box2{}, NewGroup(nil).LocalBBox())
}

func TestTransformStack(t *testing.T) {
	var ts TransformStack
	assert.True(t, ts.Top().IsIdentity())
	ts.Push(math32.Translate2D(10, 0))
	ts.Push(math32.Scale2D(2, 2))
	assert.Equal(t, 2, ts.Len())
	assert.Equal(t, math32.Translate2D(10, 0).Mul(math32.Scale2D(2, 2)), ts.Top())
	ts.Pop()
	assert.Equal(t, math32.Translate2D(10, 0), ts.Top())
	ts.Pop()
	ts.Pop() // logs
	assert.Equal(t, 0, ts.Len())

	m := NewModel(800, 600)
	g := NewGroup(m)
	g.SetTransform(math32.Translate2D(100, 50).Mul(math32.Rotate2D(math32.DegToRad(45))))
	g2 := NewGroup(g)
	g2.SetTransform(math32.Scale2D(3, 2))
	NewRect(g2, 1, 2, 3, 4)
	NewPolyline(g, math32.Vec2(0, 0), math32.Vec2(10, 10))
	NewRect(m, 5, 5, 5, 5)

	visited := 0
	Walk(m, func(n Node, world math32.Matrix2) bool {
		visited++
		assert.Equal(t, n.AsNodeBase().WorldTransform(), world, n.AsTree().Path())
		return tree.Continue
	})
	assert.Equal(t, 6, visited)

	ts.Reset()
	ts.Push(g2.WorldTransform())
	r := g2.ChildAt(0)
	assertBox(t, r.AsNodeBase().WorldBounds(), ts.Bounds(r))

	visited = 0
	Walk(m, func(n Node, world math32.Matrix2) bool {
		visited++
		if n == Node(g) {
			return tree.Break
		}
		return tree.Continue
	})
	assert.Equal(t, 3, visited)
}

func TestHitTest(t *testing.T) {
	m := NewModel(800, 600)
	back := NewRect(m, 0, 0, 100, 100)
	front := NewRect(m, 50, 50, 100, 100)
	g := NewGroup(m)
	e := NewEllipse(g, 0, 0, 40, 40)
	g.SetTransform(math32.Translate2D(200, 0))

	assert.Equal(t, []Node{front, back}, HitTest(m, math32.Vec2(75, 75), 0))
	assert.Equal(t, []Node{back}, HitTest(m, math32.Vec2(10, 10), 0))
	assert.Equal(t, []Node{e}, HitTest(m, math32.Vec2(220, 20), 0))
	assert.Empty(t, HitTest(m, math32.Vec2(201, 1), 0))
	assert.Empty(t, HitTest(m, math32.Vec2(500, 500), 0))

	assert.Equal(t, Node(g), Pick(m, math32.Vec2(220, 20), 0))
	assert.Equal(t, Node(front), Pick(m, math32.Vec2(75, 75), 0))
	assert.Nil(t, Pick(m, math32.Vec2(500, 500), 0))

	assert.True(t, back.ContainsPoint(math32.Vec2(101, 50), 2))
	assert.False(t, back.ContainsPoint(math32.Vec2(103, 50), 2))
	assert.True(t, front.IntersectsRect(math32.B2(140, 140, 200, 200)))
	assert.False(t, front.ContainedByRect(math32.B2(140, 140, 200, 200)))
	assert.Equal(t, []Node{back}, Contained(m, math32.B2(-1, -1, 101, 101)))
}

func TestPolyline(t *testing.T) {
	m := NewModel(800, 600)
	p := NewPolyline(m, math32.Vec2(0, 0), math32.Vec2(10, 0), math32.Vec2(10, 10))
	assertBox(t, math32.B2(0, 0, 10, 10), p.Bounds())
	assert.True(t, p.ContainsPoint(math32.Vec2(5, 1), 1.5))
	assert.False(t, p.ContainsPoint(math32.Vec2(5, 5), 1))

	var pe PointEditor = p
	idx, err := pe.InsertPoint(-1, math32.Vec2(0, 10))
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	_, err = pe.InsertPoint(5, math32.Vec2(0, 10))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	pt, err := pe.DeletePoint(1)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(10, 0), pt)
	assert.Equal(t, 3, pe.NumPoints())
	_, err = pe.DeletePoint(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, pe.SetPoint(0, math32.Vec2(-5, 0)))
	pt, _ = pe.Point(0)
	assert.Equal(t, math32.Vec2(-5, 0), pt)

	require.NoError(t, p.Translate(5, 5))
	assertBox(t, math32.B2(0, 5, 15, 15), p.Bounds())
	require.NoError(t, p.SetBounds(math32.B2(0, 0, 40, 20)))
	assertBox(t, math32.B2(0, 0, 40, 20), p.Bounds())

	pg := NewPolygon(m, math32.Vec2(0, 0), math32.Vec2(100, 0), math32.Vec2(0, 100))
	assert.True(t, pg.ContainsPoint(math32.Vec2(10, 10), 0))
	assert.False(t, pg.ContainsPoint(math32.Vec2(80, 80), 0))
	assert.True(t, pg.ContainsPoint(math32.Vec2(50, 51), 2))

	var _ PointEditor = pg
	_, isEditor := Node(NewRect(nil, 0, 0, 1, 1)).(PointEditor)
	assert.False(t, isEditor)
}

func TestImage(t *testing.T) {
	m := NewModel(800, 600)
	im := NewImage(m, 10, 10, 8, 8)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	im.SetImage(src)
	require.NotNil(t, im.Pixels)
	assert.Equal(t, image.Pt(8, 8), im.Pixels.Bounds().Size())

	var tr Transformer = im
	assert.ErrorIs(t, tr.Rotate(90), ErrUnsupported)
	assert.ErrorIs(t, tr.Scale(2, 2), ErrUnsupported)
	require.NoError(t, tr.Translate(5, 0))
	assertVector(t, math32.Vec2(15, 10), im.Location())

	auto := NewImage(m, 0, 0, 0, 0)
	auto.SetImage(src)
	assertBox(t, math32.B2(0, 0, 4, 4), auto.Bounds())

	assert.Error(t, auto.OpenImage("testdata/missing.png"))

	fn := filepath.Join(t.TempDir(), "square.bmp")
	require.NoError(t, imagex.Save(image.NewRGBA(image.Rect(0, 0, 6, 6)), fn))
	opened := NewImage(m, 20, 20, 0, 0)
	require.NoError(t, opened.OpenImage(fn))
	assert.Equal(t, fn, opened.Filename)
	assertBox(t, math32.B2(20, 20, 26, 26), opened.Bounds())
	assert.Equal(t, image.Pt(6, 6), opened.Pixels.Bounds().Size())
}

func TestPortsAndLinks(t *testing.T) {
	m := NewModel(800, 600)
	a := NewRect(m, 0, 0, 10, 10)
	b := NewRect(m, 100, 50, 10, 10)
	a.AddSidePorts()
	b.AddSidePorts()
	assert.ErrorIs(t, a.AddPort("top", PortTop), ErrDuplicatePort)
	require.NoError(t, a.AddPort("corner", math32.Vec2(1, 1)))

	pos, ok := a.PortPosition("corner")
	require.True(t, ok)
	assertVector(t, math32.Vec2(10, 10), pos)
	_, ok = a.PortPosition("nowhere")
	assert.False(t, ok)

	l := NewLink(m, PortRef{Node: a, Port: "right"}, PortRef{Node: b, Port: "left"})
	require.Len(t, l.Points, 2)
	assertVector(t, math32.Vec2(10, 5), l.Points[0])
	assertVector(t, math32.Vec2(100, 55), l.Points[1])
	assert.True(t, l.IsConnectedTo(b))

	require.NoError(t, b.Translate(0, 10))
	m.RouteLinks()
	assertVector(t, math32.Vec2(100, 65), l.Points[1])

	ol := RouteOrthogonal.NewLink(m, PortRef{Node: a, Port: "right"}, PortRef{Node: b, Port: "left"})
	require.Len(t, ol.Points, 4)
	assertVector(t, math32.Vec2(55, 5), ol.Points[1])
	assertVector(t, math32.Vec2(55, 65), ol.Points[2])

	var lf LinkFactory = RouteStraight
	dangling := lf.NewLink(m, PortRef{Node: a}, PortRef{})
	require.Len(t, dangling.Points, 2)
	assertVector(t, math32.Vec2(5, 5), dangling.Points[0])
	assert.Nil(t, dangling.Head)

	none := NewLink(m, PortRef{}, PortRef{})
	assert.Empty(t, none.Points)
	assert.Len(t, m.Links(), 4)

	var r Routings
	require.NoError(t, r.SetString("Orthogonal"))
	assert.Equal(t, RouteOrthogonal, r)
	assert.Error(t, r.SetString("curvy"))
}

func TestGeometrySnapshot(t *testing.T) {
	m := NewModel(800, 600)
	p := NewPolyline(m, math32.Vec2(0, 0), math32.Vec2(10, 0))
	g := p.Geometry()
	require.NoError(t, p.Rotate(33))
	require.NoError(t, p.SetPoint(1, math32.Vec2(20, 3)))
	p.RestoreGeometry(g)
	assert.Equal(t, g.Transform, p.Transform)
	assert.Equal(t, []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(10, 0)}, p.Points)

	found := m.NodeByID(p.ID.String())
	assert.Equal(t, Node(p), found)
	assert.Nil(t, m.NodeByID("nope"))
	assert.True(t, errors.Is(NewImage(nil, 0, 0, 1, 1).Rotate(1), ErrUnsupported))
}
