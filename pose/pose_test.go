// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func TestIdentity(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.True(t, Pose{}.IsIdentity(), "zero quaternion is identity")
	assert.False(t, Translation(1, 0, 0).IsIdentity())
}

func TestMulTranslation(t *testing.T) {
	a := Translation(1, 2, 3)
	b := Translation(-1, 1, 0)
	c := a.Mul(b)
	assert.Equal(t, r3.Vec{X: 0, Y: 3, Z: 3}, c.Pos)
	assert.True(t, c.ApproxEqual(Translation(0, 3, 3), tol))
}

func TestMulRotation(t *testing.T) {
	rz := AxisAngle(r3.Vec{Z: 1}, math.Pi/2)
	rz.Pos = r3.Vec{X: 1}
	p := rz.Apply(r3.Vec{X: 1})
	assert.InDelta(t, 1, p.X, tol)
	assert.InDelta(t, 1, p.Y, tol)
	assert.InDelta(t, 0, p.Z, tol)

	c := rz.Mul(Translation(1, 0, 0))
	assert.InDelta(t, 1, c.Pos.X, tol)
	assert.InDelta(t, 1, c.Pos.Y, tol)
	assert.True(t, Pose{Pos: c.Pos, Quat: rz.Quat}.ApproxEqual(c, tol))
}

func TestInverse(t *testing.T) {
	ps := AxisAngle(r3.Vec{X: 1, Y: 1}, 0.7)
	ps.Pos = r3.Vec{X: 3, Y: -2, Z: 0.5}
	assert.True(t, ps.Mul(ps.Inverse()).ApproxEqual(Identity(), tol))
	assert.True(t, ps.Inverse().Mul(ps).ApproxEqual(Identity(), tol))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, quat.Number{Real: 1}, Normalize(quat.Number{}))
	q := Normalize(quat.Number{Real: 2})
	assert.InDelta(t, 1, q.Real, tol)
}

func TestApproxEqualSign(t *testing.T) {
	a := New(r3.Vec{}, 0, 0, 1, 0)
	b := New(r3.Vec{}, 0, 0, -1, 0)
	assert.True(t, a.ApproxEqual(b, tol), "q and -q are the same rotation")
}
