// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"cogentcore.org/diagram/base/errors"
	"cogentcore.org/diagram/tree"
)

var (
	// ErrBoundaryConstraint is returned when a change would place a node
	// outside of the page of a model with boundary constraints enabled.
	ErrBoundaryConstraint = errors.New("diagram: boundary constraint violated")

	// ErrUnsupported is returned when a node type does not support
	// an operation, such as rotating an image.
	ErrUnsupported = errors.New("diagram: operation not supported by node")

	// ErrIndexOutOfRange is returned for a child or point index
	// outside of the valid range.
	ErrIndexOutOfRange = tree.ErrIndexOutOfRange

	// ErrDuplicatePort is returned when adding a port whose name
	// is already used on the node.
	ErrDuplicatePort = errors.New("diagram: duplicate port name")
)

// ErrNoPoints is returned when a point edit targets a node
// that does not implement [PointEditor].
var ErrNoPoints = errors.New("diagram: node has no editable points")
