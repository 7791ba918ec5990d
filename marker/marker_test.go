// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "sphere", Sphere.String())
	assert.Equal(t, "triangle-list", TriangleList.String())
	assert.Equal(t, "42", Type(42).String())
	assert.False(t, Type(42).IsValid())
	assert.False(t, Type(-1).IsValid())
}

func TestTypeSetString(t *testing.T) {
	var tp Type
	require.NoError(t, tp.SetString("line_strip"))
	assert.Equal(t, LineStrip, tp)
	require.NoError(t, tp.SetString("Mesh-Resource"))
	assert.Equal(t, MeshResource, tp)
	require.NoError(t, tp.SetString("2"))
	assert.Equal(t, Sphere, tp)
	require.NoError(t, tp.SetString("99"))
	assert.Equal(t, Type(99), tp)
	err := tp.SetString("blob")
	if assert.Error(t, err) {
		assert.Equal(t, "blob is not a valid value for type Type", err.Error())
	}
}

func TestTypeEnum(t *testing.T) {
	assert.Len(t, TypeValues(), int(TypesN))
	assert.Len(t, Sphere.Values(), int(TypesN))
	assert.Equal(t, int64(9), TextViewFacing.Int64())
	assert.Equal(t, "Sphere", Sphere.Desc())
	assert.Equal(t, "42", Type(42).Desc())

	var tp Type
	tp.SetInt64(4)
	assert.Equal(t, LineStrip, tp)

	text, err := CubeList.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cube-list", string(text))
	require.NoError(t, tp.UnmarshalText([]byte("sphere_list")))
	assert.Equal(t, SphereList, tp)
	assert.NoError(t, tp.UnmarshalText([]byte("blob")), "invalid text is logged")
	assert.Equal(t, SphereList, tp)
}

func TestClone(t *testing.T) {
	m := &Marker{Namespace: "goals", Type: LineStrip, Points: []r3.Vec{{X: 1}, {Y: 1}}}
	cp := m.Clone()
	cp.Points[0].X = 5
	cp.Namespace = "other"
	assert.Equal(t, 1.0, m.Points[0].X)
	assert.Equal(t, "goals", m.Namespace)
}
