// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"strings"
)

// Kind is the type of value held by a [Value].
type Kind int32

const (
	// KindInvalid is the kind of the zero [Value], which holds nothing.
	KindInvalid Kind = iota

	// KindNumber is a float64 number, used for widths, sizes and offsets.
	KindNumber

	// KindColor is an RGBA color.
	KindColor

	// KindEnum is the name of a value of some enum type,
	// such as a fill mode or dash style.
	KindEnum

	// KindResource is a reference to an external resource,
	// such as an image or texture name.
	KindResource

	// KindMatrix is a 2D affine transform.
	KindMatrix

	// KindString is an arbitrary string.
	KindString

	// KindBool is a boolean flag.
	KindBool
)

var kindNames = []string{"invalid", "number", "color", "enum", "resource", "matrix", "string", "bool"}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the kind from its name, ignoring case.
func (k *Kind) SetString(s string) error {
	s = strings.ToLower(s)
	for i, nm := range kindNames {
		if nm == s {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("props.Kind.SetString: %q is not a valid value for type Kind", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	return k.SetString(string(text))
}
