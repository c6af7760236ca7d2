// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"cogentcore.org/diagram/diagram"
	"cogentcore.org/diagram/undo"
)

// Link adds a link to the target between two ports, either of which
// may be empty to leave that end of the link unconnected. It can not
// be undone.
type Link struct {
	undo.Irreversible

	Tail, Head diagram.PortRef

	// Factory makes the link. It is straight routing if nil.
	Factory diagram.LinkFactory

	link *diagram.Link
}

// NewLink returns a command linking the two ports.
func NewLink(factory diagram.LinkFactory, tail, head diagram.PortRef) *Link {
	return &Link{Tail: tail, Head: head, Factory: factory}
}

func (c *Link) Description() string { return "Link" }

// Link returns the link made by the command.
func (c *Link) Link() *diagram.Link { return c.link }

func (c *Link) Do(target diagram.Node) (bool, error) {
	parent, err := composite("Link", target)
	if err != nil {
		return false, err
	}
	if err := c.BeginDo(); err != nil {
		return false, err
	}
	f := c.Factory
	if f == nil {
		f = diagram.RouteStraight
	}
	c.link = f.NewLink(parent, c.Tail, c.Head)
	return c.EndDo(true), nil
}
