// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a generic map that remembers the order
// in which keys were first added. Lookups go through a key to index
// map, and iteration follows the ordered slice, so property listings
// and serialized output are deterministic.
package ordmap

import (
	"fmt"
	"iter"
	"slices"
)

// KeyValue is one entry of a [Map].
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered map. The zero value is ready to use.
type Map[K comparable, V any] struct {

	// Order holds the entries in the order their keys were first added.
	Order []KeyValue[K, V]

	// Map is the key to Order index mapping.
	Map map[K]int `display:"-"`
}

// New returns a new, empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Map: make(map[K]int)}
}

// Init makes the index map if it does not yet exist.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Reset removes all entries.
func (om *Map[K, V]) Reset() {
	om.Map = nil
	om.Order = nil
}

// Add sets the value for the given key. An existing key keeps its
// position; a new key goes to the end.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKeyTry returns the value for the given key,
// and false if the key is not present.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if om != nil {
		if idx, ok := om.Map[key]; ok {
			return om.Order[idx].Value, true
		}
	}
	var zv V
	return zv, false
}

// ValueByKey returns the value for the given key, or the zero value.
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// IndexByKey returns the position of the given key, or -1.
func (om *Map[K, V]) IndexByKey(key K) int {
	if om != nil {
		if idx, ok := om.Map[key]; ok {
			return idx
		}
	}
	return -1
}

// IndexIsValid returns an error if the given index is out of range.
func (om *Map[K, V]) IndexIsValid(idx int) error {
	if idx < 0 || idx >= om.Len() {
		return fmt.Errorf("ordmap.Map: index %d is out of range of a map of length %d", idx, om.Len())
	}
	return nil
}

// Len returns the number of entries.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteKey removes the entry for the given key, renumbering
// the entries after it. It returns false if the key was absent.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx := om.IndexByKey(key)
	if idx < 0 {
		return false
	}
	delete(om.Map, key)
	om.Order = slices.Delete(om.Order, idx, idx+1)
	for i := idx; i < len(om.Order); i++ {
		om.Map[om.Order[i].Key] = i
	}
	return true
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// All iterates over the entries in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Clone returns a copy of the map that shares no storage with it.
func (om *Map[K, V]) Clone() *Map[K, V] {
	nm := &Map[K, V]{Order: slices.Clone(om.Order), Map: make(map[K]int, om.Len())}
	for i, kv := range nm.Order {
		nm.Map[kv.Key] = i
	}
	return nm
}
