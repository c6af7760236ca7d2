// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/props"
	"cogentcore.org/diagram/undo"
)

// SetProperty sets a property locally on a node. An invalid value
// removes the local value. Undo restores the previous local value,
// or removes it if there was none.
type SetProperty struct {
	undo.Base

	Node  diagram.Node
	Name  string
	Value props.Value

	old    props.Value
	hadOld bool
}

// NewSetProperty returns a command setting the property.
func NewSetProperty(n diagram.Node, name string, value props.Value) *SetProperty {
	return &SetProperty{Node: n, Name: name, Value: value}
}

func (c *SetProperty) Description() string { return "Set " + c.Name }
func (c *SetProperty) CanUndo() bool       { return true }

func (c *SetProperty) Do(target diagram.Node) (bool, error) {
	if c.Node == nil || c.Name == "" {
		return false, fmt.Errorf("%w: SetProperty needs a node and a name", undo.ErrInvalidParameter)
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	c.old, c.hadOld = c.Node.AsTree().SetProperty(c.Name, c.Value)
	return c.EndDo(true), nil
}

func (c *SetProperty) Undo() (bool, error) {
	if err := c.BeginUndo(); err != nil {
		return false, err
	}
	if c.hadOld {
		c.Node.AsTree().SetProperty(c.Name, c.old)
	} else {
		c.Node.AsTree().DeleteProperty(c.Name)
	}
	return c.EndUndo(true), nil
}
