// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node if it has not been already:
// it sets [NodeBase.This], assigns a fresh [NodeBase.ID], links the
// property bag to the node and calls [Node.Init].
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This == n {
		return
	}
	nb.This = n
	if nb.ID == uuid.Nil {
		nb.ID = uuid.New()
	}
	nb.Properties.SetOwner(nb)
	n.Init()
}

// New returns a new node of the given type, initialized and
// added as the last child of the given parent (if non-nil).
// The name is optional.
func New[T Node](parent Node, name ...string) T {
	n := reflect.New(reflect.TypeFor[T]().Elem()).Interface().(T)
	InitNode(n)
	if len(name) > 0 {
		n.AsTree().Name = name[0]
	}
	if parent != nil {
		parent.AsTree().AddChild(n)
	}
	return n
}

// NewRoot returns a new initialized root node of the given type.
func NewRoot[T Node](name ...string) T {
	return New[T](nil, name...)
}

// typeName returns the lowercase type name of the node,
// used as the base of default names.
func typeName(n Node) string {
	typ := reflect.TypeOf(n)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return strings.ToLower(typ.Name())
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent. It does not add the node to the
// parent's list of children; see [NodeBase.AddChild] for a version that does.
// It makes the name of the node unique among its new siblings.
func SetParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	if parent != nil {
		parent.AsTree().numLifetimeChildren++
		SetUniqueName(child)
	}
	child.OnAdd()
}

// detach removes the node from its current parent's children, if any,
// without destroying it.
func detach(child Node) {
	n := child.AsTree()
	if n.Parent == nil {
		return
	}
	pb := n.Parent.AsTree()
	if idx := pb.IndexOf(child); idx >= 0 {
		pb.Children = append(pb.Children[:idx], pb.Children[idx+1:]...)
	}
	n.Parent = nil
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	nb := n.AsTree()
	return nb.This == nil || nb.Parent == nil || nb.Parent.AsTree().This == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n.AsTree().This
	}
	return Root(n.AsTree().Parent)
}

// SetUniqueName makes the name of the node unique among its siblings.
// An empty name becomes the lowercase type name plus the number of
// children ever added to the parent; a duplicate name gets that
// number appended.
func SetUniqueName(n Node) {
	nb := n.AsTree()
	if nb.Parent == nil {
		return
	}
	pb := nb.Parent.AsTree()
	taken := func(name string) bool {
		for _, sib := range pb.Children {
			if sib != n && sib.AsTree().Name == name {
				return true
			}
		}
		return false
	}
	if nb.Name != "" && !taken(nb.Name) {
		return
	}
	base := nb.Name
	if base == "" {
		base = typeName(n)
	}
	c := pb.numLifetimeChildren
	for {
		name := base + "-" + strconv.FormatUint(c-1, 10) // must subtract 1 so we start at 0
		if !taken(name) {
			nb.Name = name
			return
		}
		c++
	}
}

// ParentOf returns the first ancestor of the node that is of type T,
// or the zero value if there is none.
func ParentOf[T any](n Node) T {
	var found T
	n.AsTree().WalkUpParent(func(p Node) bool {
		if t, ok := p.(T); ok {
			found = t
			return Break
		}
		return Continue
	})
	return found
}
