// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"cogentcore.org/diagram/tree"
)

// InitNode initializes a node that is not yet in a tree.
func InitNode(n Node) {
	tree.InitNode(n)
}

// NewGroup returns a new empty [Group] added to the given parent
// if it is non-nil.
func NewGroup(parent Composite) *Group {
	g := &Group{}
	addNew(parent, g)
	return g
}
