// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cogentcore.org/diagram/base/ordmap"
)

// Owner is implemented by whatever owns a [Bag], typically a tree node.
// It links the bag into its inheritance chain and receives change
// notifications for it.
type Owner interface {

	// InheritedBag returns the bag that lookups fall back to when a
	// name is absent locally, typically the parent node's bag.
	// It returns nil at the top of the chain.
	InheritedBag() *Bag

	// PropertyChanged is called after a local value is set, changed
	// or removed. old or new is the invalid [Value] when absent.
	// The owner decides whether anyone is listening.
	PropertyChanged(name string, old, new Value)
}

// Bag is an ordered set of named property values with inheritance
// through its [Owner]. Reads that miss locally continue up the chain;
// writes always go to the local bag ("shadow on write").
// The zero Bag is empty, ownerless and ready to use.
type Bag struct {
	values ordmap.Map[string, Value]
	owner  Owner
}

// NewBag returns a new empty bag with the given owner, which may be nil.
func NewBag(owner Owner) *Bag {
	return &Bag{owner: owner}
}

// SetOwner sets the owner used for inheritance and notification.
func (b *Bag) SetOwner(owner Owner) {
	b.owner = owner
}

// Owner returns the owner of the bag, which may be nil.
func (b *Bag) Owner() Owner {
	return b.owner
}

// Local returns the value set directly in this bag,
// without consulting the inheritance chain.
func (b *Bag) Local(name string) (Value, bool) {
	if b == nil {
		return Value{}, false
	}
	return b.values.ValueByKeyTry(name)
}

// Get returns the value for the given name, looking in this bag
// first and then up the inheritance chain. It returns false if no
// bag in the chain has the name.
func (b *Bag) Get(name string) (Value, bool) {
	for cur := b; cur != nil; {
		if v, ok := cur.values.ValueByKeyTry(name); ok {
			return v, true
		}
		if cur.owner == nil {
			break
		}
		next := cur.owner.InheritedBag()
		if next == cur {
			break
		}
		cur = next
	}
	return Value{}, false
}

// Has returns whether the name is set locally.
func (b *Bag) Has(name string) bool {
	_, ok := b.Local(name)
	return ok
}

// Set writes the value locally and returns the previous local value,
// if there was one. Setting an invalid value removes the name.
func (b *Bag) Set(name string, v Value) (Value, bool) {
	if !v.IsValid() {
		return b.Remove(name)
	}
	old, had := b.values.ValueByKeyTry(name)
	b.values.Add(name, v)
	b.notify(name, old, v)
	return old, had
}

// Change sets the value only if it differs from the current local
// value, returning whether anything changed.
func (b *Bag) Change(name string, v Value) bool {
	if old, had := b.Local(name); had && old == v {
		return false
	}
	if !v.IsValid() && !b.Has(name) {
		return false
	}
	b.Set(name, v)
	return true
}

// Remove deletes the local value for the name, after which reads see
// the inherited value again. It returns the removed value, if any.
func (b *Bag) Remove(name string) (Value, bool) {
	old, had := b.values.ValueByKeyTry(name)
	if !had {
		return Value{}, false
	}
	b.values.DeleteKey(name)
	b.notify(name, old, Value{})
	return old, true
}

// Names returns the locally set names in the order they were first set.
func (b *Bag) Names() []string {
	if b == nil {
		return nil
	}
	return b.values.Keys()
}

// Len returns the number of locally set names.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return b.values.Len()
}

// CopyFrom replaces the local values with those of the other bag.
// It does not notify and does not change the owner.
func (b *Bag) CopyFrom(other *Bag) {
	b.values.Reset()
	if other == nil {
		return
	}
	for k, v := range other.values.All() {
		b.values.Add(k, v)
	}
}

func (b *Bag) notify(name string, old, new Value) {
	if b.owner != nil {
		b.owner.PropertyChanged(name, old, new)
	}
}

// MarshalJSON encodes the local values as a JSON object
// with keys in order.
func (b Bag) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range b.values.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the form written by [Bag.MarshalJSON],
// keeping key order. It replaces the local values without notifying.
func (b *Bag) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("props.Bag.UnmarshalJSON: expected object, got %v", tok)
	}
	b.values.Reset()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("props.Bag.UnmarshalJSON: expected key, got %v", tok)
		}
		var v Value
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("props.Bag.UnmarshalJSON: %q: %w", key, err)
		}
		if v.IsValid() {
			b.values.Add(key, v)
		}
	}
	_, err = dec.Token()
	return err
}
