// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pose provides a rigid transform type, a position plus
// a unit quaternion orientation, used to place markers and frames.
package pose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose contains the position and orientation of an element,
// always relative to some parent frame.
type Pose struct {

	// Pos is the position of the origin of the element.
	Pos r3.Vec

	// Quat is the orientation of the element as a unit quaternion.
	// The zero value is treated as the identity rotation.
	Quat quat.Number
}

// Identity returns the identity pose.
func Identity() Pose {
	return Pose{Quat: quat.Number{Real: 1}}
}

// New returns a pose at the given position with the given
// orientation quaternion (x, y, z, w ordering, as in ROS messages).
func New(pos r3.Vec, x, y, z, w float64) Pose {
	return Pose{Pos: pos, Quat: quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}}
}

// Translation returns a pose with the given position and no rotation.
func Translation(x, y, z float64) Pose {
	return Pose{Pos: r3.Vec{X: x, Y: y, Z: z}, Quat: quat.Number{Real: 1}}
}

// AxisAngle returns a pose with no translation that rotates
// by angle radians about the given axis.
func AxisAngle(axis r3.Vec, angle float64) Pose {
	return Pose{Quat: quat.Number(r3.NewRotation(angle, axis))}
}

// Rot returns the orientation, with a zero quaternion mapped to identity
// and any other value normalized.
func (ps Pose) Rot() quat.Number {
	return Normalize(ps.Quat)
}

// Normalize returns q scaled to unit length. The zero quaternion,
// which carries no orientation, is mapped to identity.
func Normalize(q quat.Number) quat.Number {
	l := quat.Abs(q)
	if l == 0 {
		return quat.Number{Real: 1}
	}
	if l == 1 {
		return q
	}
	return quat.Scale(1/l, q)
}

// Rotate rotates the vector v by the unit quaternion q.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	return r3.Rotation(q).Rotate(v)
}

// Mul returns the composition ps · other: other is expressed
// relative to ps, and the result relative to the parent of ps.
func (ps Pose) Mul(other Pose) Pose {
	q := ps.Rot()
	return Pose{
		Pos:  r3.Add(ps.Pos, Rotate(q, other.Pos)),
		Quat: quat.Mul(q, other.Rot()),
	}
}

// Inverse returns the pose that undoes ps.
func (ps Pose) Inverse() Pose {
	inv := quat.Conj(ps.Rot())
	return Pose{
		Pos:  r3.Scale(-1, Rotate(inv, ps.Pos)),
		Quat: inv,
	}
}

// Apply transforms the point p from the local frame of ps into its parent.
func (ps Pose) Apply(p r3.Vec) r3.Vec {
	return r3.Add(ps.Pos, Rotate(ps.Rot(), p))
}

// IsIdentity returns whether ps has no translation and no rotation.
func (ps Pose) IsIdentity() bool {
	return ps.Pos == (r3.Vec{}) && ps.Rot() == (quat.Number{Real: 1})
}

// ApproxEqual returns whether the two poses are equal within tol,
// treating q and -q as the same orientation.
func (ps Pose) ApproxEqual(other Pose, tol float64) bool {
	if r3.Norm(r3.Sub(ps.Pos, other.Pos)) > tol {
		return false
	}
	a, b := ps.Rot(), other.Rot()
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	return 1-math.Abs(dot) <= tol
}

func (ps Pose) String() string {
	return fmt.Sprintf("pos: (%g, %g, %g) quat: (%g, %g, %g, %g)",
		ps.Pos.X, ps.Pos.Y, ps.Pos.Z, ps.Quat.Imag, ps.Quat.Jmag, ps.Quat.Kmag, ps.Quat.Real)
}
