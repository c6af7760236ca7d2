// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"cogentcore.org/diagram/base/errors"
	"cogentcore.org/diagram/props"
)

// ErrIndexOutOfRange is returned by child operations given an index
// outside of the current children.
var ErrIndexOutOfRange = errors.New("tree: index out of range")

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// All nodes must be properly initialized by using one of [New], [NewRoot],
// [NodeBase.AddChild], [NodeBase.InsertChild], [NodeBase.Clone] or [InitNode].
// This ensures that the [NodeBase.This] field is set correctly and the [Node.Init]
// method is called.
//
// A node has at most one parent. The parent owns its children through
// [NodeBase.Children]; [NodeBase.Parent] is only a back reference used
// for walking up, such as for property inheritance.
type NodeBase struct {

	// Name is the name of this node, which is unique among the children
	// of the same parent. It can be used for finding nodes by path.
	// If not otherwise set, it defaults to the lowercase type name of
	// the node combined with the number of children that have ever
	// been added to the node's parent.
	Name string `copier:"-"`

	// ID is a stable identity for the node, assigned when the node is
	// initialized. Clones get a new ID.
	ID uuid.UUID `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types.
	// It is set to nil when the node is destroyed.
	This Node `copier:"-" json:"-" xml:"-" display:"-" set:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. Nodes can only have one parent at a time.
	Parent Node `copier:"-" json:"-" xml:"-" display:"-" set:"-"`

	// Children is the ordered list of children of this node.
	// Their order is their z-order, back to front.
	Children []Node `table:"-" copier:"-" set:"-" json:",omitempty"`

	// Properties holds the named, inheriting property values of this node.
	// Use [NodeBase.SetProperty], [NodeBase.Property] and [NodeBase.DeleteProperty]
	// or the typed wrappers in the styles package to access them.
	Properties props.Bag `table:"-" xml:"-" copier:"-" set:"-" json:",omitempty"`

	// numLifetimeChildren is the number of children that have ever been added to this
	// node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the name of the node, making it unique among its siblings.
func (n *NodeBase) SetName(name string) {
	n.Name = name
	if n.This != nil {
		SetUniqueName(n.This)
	}
}

// NewInstance returns a new, uninitialized instance of this node type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index) // very fast if index is close
	n.index = idx
	return idx
}

// ParentLevel finds a given potential parent node recursively up the
// hierarchy, returning the level above the current node that the parent was
// found, and -1 if not found.
func (n *NodeBase) ParentLevel(parent Node) int {
	parLev := -1
	level := 0
	n.WalkUpParent(func(k Node) bool {
		if k == parent {
			parLev = level
			return Break
		}
		level++
		return Continue
	})
	return parLev
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found.
func (n *NodeBase) ChildByName(name string, startIndex ...int) Node {
	return n.Child(IndexByName(n.Children, name, startIndex...))
}

// IndexOf returns the index of the given child, or -1 if it is
// not a child of this node.
func (n *NodeBase) IndexOf(kid Node) int {
	if kid == nil {
		return -1
	}
	return IndexOf(n.Children, kid, kid.AsTree().index)
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using [Node.Name]s separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// PathFrom returns the path to this node from the given parent node,
// excluding the name of the parent and the leading slash; for example,
// in the tree a/b/c/d/e, the result of d.PathFrom(b) would be c/d.
func (n *NodeBase) PathFrom(parent Node) string {
	if n.This == parent {
		return ""
	}
	parent = parent.AsTree().This
	if n.Parent == nil || n.Parent == parent {
		return EscapePathName(n.Name)
	}
	return n.Parent.AsTree().PathFrom(parent) + "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path from this node.
// The given path must be consistent with the format produced
// by [NodeBase.PathFrom]. There is also support for index-based
// access (ie: [0] for the first child, [-1] for the last).
// It returns nil if no node is found at the given path.
func (n *NodeBase) FindPath(path string) Node {
	curn := n.This
	pels := strings.Split(strings.Trim(strings.TrimSpace(path), "\""), "/")
	for _, pe := range pels {
		if len(pe) == 0 {
			continue
		}
		idx := findPathChild(curn, UnescapePathName(pe))
		if idx < 0 || idx >= curn.AsTree().NumChildren() {
			return nil
		}
		curn = curn.AsTree().Children[idx]
	}
	return curn
}

// findPathChild finds the child with the given string representation in [NodeBase.FindPath].
func findPathChild(n Node, child string) int {
	if child[0] == '[' && child[len(child)-1] == ']' {
		idx, err := strconv.Atoi(child[1 : len(child)-1])
		if err != nil {
			return -1
		}
		if idx < 0 { // from end
			idx = len(n.AsTree().Children) + idx
		}
		return idx
	}
	return IndexByName(n.AsTree().Children, child)
}

// Adding, Inserting and Removing Children:

// AddChild adds the given child at the end of the children list and
// returns its index. A child that already has a parent is first
// removed from it, so that it only ever has one.
func (n *NodeBase) AddChild(kid Node) int {
	InitNode(kid)
	detach(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
	idx := len(n.Children) - 1
	kid.AsTree().index = idx
	return idx
}

// InsertChild inserts the given child at the given index, which may
// equal the number of children to append. A child that already has a
// parent is first removed from it. It returns an error wrapping
// [ErrIndexOutOfRange], without changing anything, if the index is invalid.
func (n *NodeBase) InsertChild(kid Node, index int) error {
	InitNode(kid)
	sz := len(n.Children)
	if kid.AsTree().Parent == n.This {
		sz--
	}
	if index < 0 || index > sz {
		return fmt.Errorf("%w: insert at %d into %d children of %s", ErrIndexOutOfRange, index, sz, n.Path())
	}
	detach(kid)
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
	kid.AsTree().index = index
	return nil
}

// RemoveChildAt removes the child at the given index and returns it,
// detached but intact, so that it can be inserted elsewhere. It returns
// an error wrapping [ErrIndexOutOfRange] if there is no such child.
func (n *NodeBase) RemoveChildAt(index int) (Node, error) {
	kid := n.Child(index)
	if kid == nil {
		return nil, fmt.Errorf("%w: remove at %d of %d children of %s", ErrIndexOutOfRange, index, len(n.Children), n.Path())
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	kid.AsTree().Parent = nil
	return kid, nil
}

// RemoveChild removes the given child without destroying it,
// returning false if it is not a child of this node.
func (n *NodeBase) RemoveChild(kid Node) bool {
	idx := n.IndexOf(kid)
	if idx < 0 {
		return false
	}
	_, err := n.RemoveChildAt(idx)
	return err == nil
}

// DeleteChildren destroys all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = nil
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.AsTree().Parent = nil
		kid.Destroy()
	}
}

// Delete removes this node from its parent's children list
// and then destroys it.
func (n *NodeBase) Delete() {
	if n.Parent != nil {
		n.Parent.AsTree().RemoveChild(n.This)
	}
	if n.This != nil {
		n.This.Destroy()
	}
}

// Destroy recursively destroys the node, all of its children,
// and all of its children's children, etc.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.This = nil
}

// Property Storage:

// SetProperty sets the given property to the given value locally,
// returning the previous local value if any.
func (n *NodeBase) SetProperty(key string, value props.Value) (props.Value, bool) {
	return n.Properties.Set(key, value)
}

// Property returns the value of the given property, inherited from
// the nearest ancestor that sets it if it is not set on this node.
func (n *NodeBase) Property(key string) (props.Value, bool) {
	return n.Properties.Get(key)
}

// DeleteProperty removes the local value of the given property,
// making any inherited value visible again.
func (n *NodeBase) DeleteProperty(key string) {
	n.Properties.Remove(key)
}

// InheritedBag implements [props.Owner] by returning the property bag
// of the parent node, or nil for a root node.
func (n *NodeBase) InheritedBag() *props.Bag {
	if n.Parent == nil {
		return nil
	}
	return &n.Parent.AsTree().Properties
}

// PropertyChanged implements [props.Owner] by reporting the change to
// the nearest ancestor that implements [PropertyObserver], if any.
func (n *NodeBase) PropertyChanged(name string, old, new props.Value) {
	if n.Parent == nil || n.This == nil {
		return
	}
	n.WalkUpParent(func(p Node) bool {
		if po, ok := p.(PropertyObserver); ok {
			po.NodePropertyChanged(n.This, name, old, new)
			return Break
		}
		return Continue
	})
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if
// it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself). It stops walking if the function returns [Break] and
// keeps walking if it returns [Continue]. It returns whether walking was
// finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	if n.Parent == nil {
		return true
	}
	return n.Parent.AsTree().WalkUp(fun)
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner, in child order. It does not descend into
// the children of a node for which the function returns [Break].
// It is non-recursive.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	stack := []Node{n.This}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cb := cur.AsTree()
		// fun can destroy the node, so we have to check for nil before and after.
		if cb.This == nil || !fun(cur) || cb.This == nil {
			continue
		}
		for i := len(cb.Children) - 1; i >= 0; i-- {
			if kid := cb.Children[i]; kid != nil {
				stack = append(stack, kid)
			}
		}
	}
}

// Deep Copy:

// note: we use the copy from direction (instead of copy to), as the receiver
// is modified whereas the from is not and assignment is typically in the same
// direction.

// CopyFrom copies the data, properties and children of the given node to
// this node, replacing any existing children with clones of the source's.
// Only copying to the same type is supported. The struct field tag copier:"-"
// can be added for any fields that should not be copied. Also, unexported
// fields are not copied. See [Node.CopyFieldsFrom] for more information on
// field copying.
func (n *NodeBase) CopyFrom(from Node) {
	if from == nil {
		slog.Error("tree.NodeBase.CopyFrom: nil source", "destinationNode", n)
		return
	}
	fromt := from.AsTree()
	n.DeleteChildren()
	n.Properties.CopyFrom(&fromt.Properties)
	n.This.CopyFieldsFrom(from)
	for _, kid := range fromt.Children {
		n.AddChild(kid.AsTree().Clone())
	}
}

// Clone creates and returns a deep copy of the tree from this node down.
// The clone and each of its descendants get new IDs and no parent.
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	InitNode(nc)
	nc.AsTree().Name = n.Name
	nc.AsTree().CopyFrom(n.This)
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node.
// By default, it is [NodeBase.CopyFieldsFrom], which automatically does
// a deep copy of all of the fields of the node that do not a have a
// `copier:"-"` struct tag. Node types should only implement a custom
// CopyFieldsFrom method when they have fields that need special copying
// logic that can not be automatically handled.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Event methods:

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}
