// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"encoding/json"
	"image/color"
	"testing"

	"cogentcore.org/diagram/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainOwner is a minimal [Owner] that links bags into a chain
// and records notifications.
type chainOwner struct {
	parent  *Bag
	changes []string
}

func (o *chainOwner) InheritedBag() *Bag { return o.parent }

func (o *chainOwner) PropertyChanged(name string, old, new Value) {
	o.changes = append(o.changes, name+":"+old.String()+"->"+new.String())
}

func newChain() (root, mid, leaf *Bag, leafOwner *chainOwner) {
	root = NewBag(nil)
	mid = NewBag(&chainOwner{parent: root})
	leafOwner = &chainOwner{parent: mid}
	leaf = NewBag(leafOwner)
	return
}

func TestValueKinds(t *testing.T) {
	f, ok := Float(2.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	_, ok = Float(2.5).Color()
	assert.False(t, ok)

	c, ok := RGBA(color.RGBA{255, 0, 0, 255}).Color()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	e, ok := Enum("dash").Enum()
	assert.True(t, ok)
	assert.Equal(t, "dash", e)

	m, ok := Matrix(math32.Translate2D(1, 2)).Matrix()
	assert.True(t, ok)
	assert.Equal(t, math32.Translate2D(1, 2), m)

	b, ok := Bool(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.False(t, Value{}.IsValid())
	assert.Equal(t, KindResource, Resource("logo.png").Kind())
	assert.Equal(t, Int(3), Float(3))
	assert.NotEqual(t, String("a"), Enum("a"))
}

func TestValueJSON(t *testing.T) {
	vals := []Value{
		Float(1.25),
		RGBA(color.RGBA{0, 128, 255, 255}),
		Enum("gradient"),
		Resource("tex/wood.png"),
		Matrix(math32.Translate2D(4, 5).Scale(2, 2)),
		String("hello"),
		Bool(true),
	}
	for _, v := range vals {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		var got Value
		require.NoError(t, json.Unmarshal(b, &got), string(b))
		assert.Equal(t, v, got, string(b))
	}

	var bad Value
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"number","value":"x"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"nope","value":1}`), &bad))
}

func TestBagInheritance(t *testing.T) {
	root, mid, leaf, _ := newChain()

	_, ok := leaf.Get("Color")
	assert.False(t, ok)

	red := RGBA(color.RGBA{255, 0, 0, 255})
	blue := RGBA(color.RGBA{0, 0, 255, 255})
	root.Set("Color", red)

	v, ok := leaf.Get("Color")
	assert.True(t, ok)
	assert.Equal(t, red, v)
	assert.False(t, leaf.Has("Color"))
	assert.False(t, mid.Has("Color"))

	leaf.Set("Color", blue)
	v, _ = leaf.Get("Color")
	assert.Equal(t, blue, v)
	v, _ = root.Get("Color")
	assert.Equal(t, red, v)

	leaf.Remove("Color")
	v, ok = leaf.Get("Color")
	assert.True(t, ok)
	assert.Equal(t, red, v)
}

func TestBagSetChangeRemove(t *testing.T) {
	_, _, leaf, owner := newChain()

	old, had := leaf.Set("Width", Float(1))
	assert.False(t, had)
	assert.False(t, old.IsValid())

	old, had = leaf.Set("Width", Float(2))
	assert.True(t, had)
	assert.Equal(t, Float(1), old)

	assert.False(t, leaf.Change("Width", Float(2)))
	assert.True(t, leaf.Change("Width", Float(3)))

	leaf.Set("Dash", Enum("dot"))
	assert.Equal(t, []string{"Width", "Dash"}, leaf.Names())
	assert.Equal(t, 2, leaf.Len())

	removed, ok := leaf.Remove("Width")
	assert.True(t, ok)
	assert.Equal(t, Float(3), removed)
	_, ok = leaf.Remove("Width")
	assert.False(t, ok)

	assert.Equal(t, []string{
		"Width:<invalid>->1",
		"Width:1->2",
		"Width:2->3",
		"Dash:<invalid>->dot",
		"Width:3-><invalid>",
	}, owner.changes)
}

func TestBagJSON(t *testing.T) {
	b := NewBag(nil)
	b.Set("z", Float(1))
	b.Set("a", Enum("solid"))
	b.Set("m", RGBA(color.RGBA{1, 2, 3, 255}))

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var got Bag
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []string{"z", "a", "m"}, got.Names())
	v, _ := got.Local("m")
	assert.Equal(t, RGBA(color.RGBA{1, 2, 3, 255}), v)

	var cp Bag
	cp.CopyFrom(b)
	cp.Set("z", Float(9))
	v, _ = b.Local("z")
	assert.Equal(t, Float(1), v)
}
