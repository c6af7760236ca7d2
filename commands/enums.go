// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import "fmt"

// Alignments are the edges and centers that [Align] can line nodes up on.
type Alignments int32

const (
	AlignLeft Alignments = iota
	AlignRight
	AlignTop
	AlignBottom

	// AlignCenter lines up the horizontal centers.
	AlignCenter

	// AlignMiddle lines up the vertical centers.
	AlignMiddle
)

// Directions are the axes that [Spacing] distributes nodes along.
type Directions int32

const (
	// Across spaces nodes along the x axis.
	Across Directions = iota

	// Down spaces nodes along the y axis.
	Down
)

// Anchors are the handles of a bounding box that [Resize] moves.
// The opposite side or corner stays fixed.
type Anchors int32

const (
	TopLeft Anchors = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

// ZOrders are the ways that [ZOrder] can restack a node among its siblings.
type ZOrders int32

const (
	// Front moves the node to the end of its siblings, in front of all of them.
	Front ZOrders = iota

	// Back moves the node to the start of its siblings, behind all of them.
	Back

	// Forward moves the node one step toward the front.
	Forward

	// Backward moves the node one step toward the back.
	Backward
)

var (
	alignmentNames = []string{"left", "right", "top", "bottom", "center", "middle"}
	directionNames = []string{"across", "down"}
	anchorNames    = []string{"top-left", "top", "top-right", "right", "bottom-right", "bottom", "bottom-left", "left"}
	zOrderNames    = []string{"front", "back", "forward", "backward"}
)

func enumString[E ~int32](e E, names []string, typ string) string {
	if e < 0 || int(e) >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, int32(e))
	}
	return names[e]
}

func (a Alignments) String() string { return enumString(a, alignmentNames, "Alignments") }
func (d Directions) String() string { return enumString(d, directionNames, "Directions") }
func (a Anchors) String() string    { return enumString(a, anchorNames, "Anchors") }
func (z ZOrders) String() string    { return enumString(z, zOrderNames, "ZOrders") }
