// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "fmt"

// FillModes are the ways a shape interior can be painted.
type FillModes int32

const (
	// FillSolid paints with a single color.
	FillSolid FillModes = iota

	// FillGradient paints a linear gradient between two colors.
	FillGradient

	// FillTextured paints with a texture resource.
	FillTextured

	// FillNone does not paint the interior.
	FillNone
)

// FillModesValues returns all possible values for the type FillModes.
func FillModesValues() []FillModes {
	return []FillModes{FillSolid, FillGradient, FillTextured, FillNone}
}

func (m FillModes) String() string {
	switch m {
	case FillSolid:
		return "solid"
	case FillGradient:
		return "gradient"
	case FillTextured:
		return "textured"
	case FillNone:
		return "none"
	}
	return fmt.Sprintf("FillModes(%d)", int32(m))
}

// Dashes are the line dash patterns.
type Dashes int32

const (
	DashSolid Dashes = iota
	DashDashed
	DashDotted
	DashDashDot
)

// DashesValues returns all possible values for the type Dashes.
func DashesValues() []Dashes {
	return []Dashes{DashSolid, DashDashed, DashDotted, DashDashDot}
}

func (d Dashes) String() string {
	switch d {
	case DashSolid:
		return "solid"
	case DashDashed:
		return "dashed"
	case DashDotted:
		return "dotted"
	case DashDashDot:
		return "dash-dot"
	}
	return fmt.Sprintf("Dashes(%d)", int32(d))
}
