// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"

	"cogentcore.org/diagram/colors"
	"cogentcore.org/diagram/math32"
)

// Value is a small tagged variant holding one property value.
// Values are comparable with ==, and the zero Value is invalid
// (it is never stored in a [Bag]).
type Value struct {
	kind   Kind
	num    float64
	str    string
	color  color.RGBA
	matrix math32.Matrix2
}

// Float returns a number value.
func Float(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a number value from an int.
func Int(i int) Value { return Float(float64(i)) }

// RGBA returns a color value, stored as non alpha-premultiplied RGBA.
func RGBA(c color.Color) Value { return Value{kind: KindColor, color: colors.AsRGBA(c)} }

// Enum returns an enum value holding the given name.
func Enum(name string) Value { return Value{kind: KindEnum, str: name} }

// Resource returns a resource reference value.
func Resource(ref string) Value { return Value{kind: KindResource, str: ref} }

// Matrix returns a transform value.
func Matrix(m math32.Matrix2) Value { return Value{kind: KindMatrix, matrix: m} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Kind returns the kind of value held.
func (v Value) Kind() Kind { return v.kind }

// IsValid returns whether the value holds anything.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Equal returns whether the two values have the same kind and contents.
func (v Value) Equal(o Value) bool { return v == o }

// Float returns the number held, and false if v is not a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Color returns the color held, and false if v is not a color.
func (v Value) Color() (color.RGBA, bool) {
	return v.color, v.kind == KindColor
}

// Enum returns the enum name held, and false if v is not an enum.
func (v Value) Enum() (string, bool) {
	return v.str, v.kind == KindEnum
}

// Resource returns the resource reference held,
// and false if v is not a resource.
func (v Value) Resource() (string, bool) {
	return v.str, v.kind == KindResource
}

// Matrix returns the transform held, and false if v is not a matrix.
func (v Value) Matrix() (math32.Matrix2, bool) {
	if v.kind != KindMatrix {
		return math32.Identity2(), false
	}
	return v.matrix, true
}

// Str returns the string held, and false if v is not a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Bool returns the flag held, and false if v is not a bool.
func (v Value) Bool() (bool, bool) {
	return v.num != 0, v.kind == KindBool
}

// String returns a human-readable rendering of the value,
// which is also the text form used in JSON.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindColor:
		return colors.AsHex(v.color)
	case KindEnum, KindResource, KindString:
		return v.str
	case KindMatrix:
		return v.matrix.String()
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	}
	return "<invalid>"
}

// jsonValue is the wire form of a [Value].
type jsonValue struct {
	Kind  Kind `json:"kind"`
	Value any  `json:"value"`
}

// MarshalJSON encodes the value as {"kind": ..., "value": ...}.
func (v Value) MarshalJSON() ([]byte, error) {
	jv := jsonValue{Kind: v.kind}
	switch v.kind {
	case KindNumber:
		jv.Value = v.num
	case KindBool:
		jv.Value = v.num != 0
	case KindInvalid:
		jv.Value = nil
	default:
		jv.Value = v.String()
	}
	return json.Marshal(jv)
}

// UnmarshalJSON decodes the form written by [Value.MarshalJSON].
func (v *Value) UnmarshalJSON(b []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(b, &jv); err != nil {
		return err
	}
	switch jv.Kind {
	case KindInvalid:
		*v = Value{}
		return nil
	case KindNumber:
		f, ok := jv.Value.(float64)
		if !ok {
			return fmt.Errorf("props.Value.UnmarshalJSON: number value is %T", jv.Value)
		}
		*v = Float(f)
		return nil
	case KindBool:
		bv, ok := jv.Value.(bool)
		if !ok {
			return fmt.Errorf("props.Value.UnmarshalJSON: bool value is %T", jv.Value)
		}
		*v = Bool(bv)
		return nil
	}
	s, ok := jv.Value.(string)
	if !ok {
		return fmt.Errorf("props.Value.UnmarshalJSON: %s value is %T", jv.Kind, jv.Value)
	}
	switch jv.Kind {
	case KindColor:
		c, err := colors.FromHex(s)
		if err != nil {
			return err
		}
		*v = RGBA(c)
	case KindMatrix:
		var m math32.Matrix2
		if err := m.SetString(s); err != nil {
			return err
		}
		*v = Matrix(m)
	case KindEnum:
		*v = Enum(s)
	case KindResource:
		*v = Resource(s)
	case KindString:
		*v = String(s)
	}
	return nil
}
