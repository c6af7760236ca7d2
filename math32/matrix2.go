// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted initially from gonum/matrix/mat64/dense.go and
// the SVG transform conventions (matrix(a, b, c, d, e, f)).

package math32

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Matrix2 is a 3x2 matrix representing a 2D affine transform:
//
//	[XX XY X0]
//	[YX YY Y0]
//	[ 0  0  1]
//
// Multiplication order follows the standard convention: in a.Mul(b),
// b is applied first and a second, so a parent transform multiplied
// by a child transform maps child-local coordinates into the parent's
// parent space.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 2D matrix with given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 2D matrix with given rotation, specified in radians.
// This uses the standard graphics convention where increasing Y goes down
// instead of up, so positive angles rotate clockwise on screen.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// RotateAround2D returns a Matrix2 that rotates by the given angle in radians
// around the given anchor point.
func RotateAround2D(angle float32, anchor Vector2) Matrix2 {
	return Translate2D(anchor.X, anchor.Y).Rotate(angle).Translate(-anchor.X, -anchor.Y)
}

// ScaleAround2D returns a Matrix2 that scales by the given factors
// while holding the given anchor point fixed.
func ScaleAround2D(x, y float32, anchor Vector2) Matrix2 {
	return Translate2D(anchor.X, anchor.Y).Scale(x, y).Translate(-anchor.X, -anchor.Y)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a*b, which applies b first and then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a*b.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Translate returns a*Translate2D(x, y).
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a*Scale2D(x, y).
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a*Rotate2D(angle), with angle in radians.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// Det returns the determinant of the linear part of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns inverse of matrix, for inverting transforms.
// A singular matrix returns the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Identity2()
	}
	d := 1 / det
	return Matrix2{
		XX: a.YY * d,
		YX: -a.YX * d,
		XY: -a.XY * d,
		YY: a.XX * d,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * d,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * d,
	}
}

// ExtractRot extracts the rotation component from a given matrix, in radians.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}

// ExtractScale extracts the scaling factors, given the rotation.
func (a Matrix2) ExtractScale() (scx, scy float32) {
	rot := a.ExtractRot()
	tx := a.Rotate(-rot)
	scxv := tx.MulVector2AsVector(Vec2(1, 0))
	scyv := tx.MulVector2AsVector(Vec2(0, 1))
	return scxv.X, scyv.Y
}

// ExtractTranslation returns the translation component of the matrix.
func (a Matrix2) ExtractTranslation() Vector2 {
	return Vec2(a.X0, a.Y0)
}

// String returns the SVG transform representation of the matrix.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX == 0 && a.XY == 0 { // no rotation, emit scale and translate
		str := ""
		if a.X0 != 0 || a.Y0 != 0 {
			str += fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0)
		}
		if a.XX != 1 || a.YY != 1 {
			if str != "" {
				str += " "
			}
			str += fmt.Sprintf("scale(%g,%g)", a.XX, a.YY)
		}
		return str
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// SetString processes the standard SVG-style transform strings
// (matrix, translate, scale, rotate in degrees) into this matrix.
// The keyword "none" sets the identity.
func (a *Matrix2) SetString(str string) error {
	errmsg := "math32.Matrix2.SetString:"
	str = strings.ToLower(strings.TrimSpace(str))
	*a = Identity2()
	if str == "none" || str == "" {
		return nil
	}
	for str != "" {
		pidx := strings.IndexByte(str, '(')
		if pidx < 0 {
			return fmt.Errorf("%s no params for transform: %v", errmsg, str)
		}
		cmd := strings.TrimSpace(str[:pidx])
		str = str[pidx+1:]
		eidx := strings.IndexByte(str, ')')
		if eidx < 0 {
			return fmt.Errorf("%s no closing paren for transform: %v", errmsg, str)
		}
		vals, err := parseFloats(str[:eidx])
		if err != nil {
			return fmt.Errorf("%s %w", errmsg, err)
		}
		str = strings.TrimSpace(str[eidx+1:])
		str = strings.TrimLeft(str, ",")
		switch cmd {
		case "matrix":
			if len(vals) != 6 {
				return fmt.Errorf("%s matrix needs 6 values, got %d", errmsg, len(vals))
			}
			a.SetMul(Matrix2{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]})
		case "translate":
			switch len(vals) {
			case 1:
				a.SetMul(Translate2D(vals[0], 0))
			case 2:
				a.SetMul(Translate2D(vals[0], vals[1]))
			default:
				return fmt.Errorf("%s translate needs 1 or 2 values, got %d", errmsg, len(vals))
			}
		case "scale":
			switch len(vals) {
			case 1:
				a.SetMul(Scale2D(vals[0], vals[0]))
			case 2:
				a.SetMul(Scale2D(vals[0], vals[1]))
			default:
				return fmt.Errorf("%s scale needs 1 or 2 values, got %d", errmsg, len(vals))
			}
		case "rotate":
			switch len(vals) {
			case 1:
				a.SetMul(Rotate2D(DegToRad(vals[0])))
			case 3:
				a.SetMul(RotateAround2D(DegToRad(vals[0]), Vec2(vals[1], vals[2])))
			default:
				return fmt.Errorf("%s rotate needs 1 or 3 values, got %d", errmsg, len(vals))
			}
		default:
			*a = Identity2()
			return fmt.Errorf("%s unknown transform command: %q", errmsg, cmd)
		}
	}
	return nil
}

// parseFloats parses a comma or space separated list of numbers.
func parseFloats(str string) ([]float32, error) {
	flds := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(flds) == 0 {
		return nil, errors.New("no values")
	}
	vals := make([]float32, len(flds))
	for i, f := range flds {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		vals[i] = float32(v)
	}
	return vals, nil
}
