// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the parent/child node hierarchy that diagram
// scene graphs are built on, centered on the [Node] interface.
package tree

import (
	"cogentcore.org/diagram/props"
)

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level tree types
// must embed it. This interface only contains the tree functionality that
// higher-level tree types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Init is called when the node is first initialized,
	// before it is added to any parent. It is called only
	// once in the lifetime of the node.
	Init()

	// OnAdd is called when the node is added to a parent,
	// including when it is moved to a new parent.
	OnAdd()

	// Destroy recursively destroys the node and all of its children.
	// Node types that implement this should call [NodeBase.Destroy]
	// at the end of their implementation.
	Destroy()

	// CopyFieldsFrom copies the fields of the node from the given node.
	// By default, it is [NodeBase.CopyFieldsFrom], which automatically does
	// a deep copy of all of the fields of the node that do not a have a
	// `copier:"-"` struct tag. Node types should only implement a custom
	// CopyFieldsFrom method when they have fields that need special copying
	// logic, and should call [NodeBase.CopyFieldsFrom] first.
	CopyFieldsFrom(from Node)
}

// PropertyObserver is an optional capability of a node that wants to hear
// about property changes on its descendants. A change is reported to the
// nearest ancestor that implements it; a node with no such ancestor,
// such as a detached node, reports nothing.
type PropertyObserver interface {
	NodePropertyChanged(n Node, name string, old, new props.Value)
}
