// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"cogentcore.org/core/base/errors"

	"cogentcore.org/markers/frames"
	"cogentcore.org/markers/marker"
	"cogentcore.org/markers/pose"
	"cogentcore.org/markers/scene"
)

func TestNewAllTypes(t *testing.T) {
	g := scene.NewGraph("root")
	group := g.NewNode("group")
	for tp := marker.Type(0); tp < marker.TypesN; tp++ {
		d, err := New(tp, group)
		require.NoError(t, err, tp.String())
		assert.Equal(t, tp, d.Type())
		assert.Equal(t, group, d.Node().Parent())
	}
	assert.Equal(t, int(marker.TypesN), group.NumChildren())
}

func TestNewUnknownType(t *testing.T) {
	g := scene.NewGraph("root")
	group := g.NewNode("group")
	d, err := New(marker.Type(77), group)
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.Zero(t, group.NumChildren())
}

func TestFactoryMapping(t *testing.T) {
	g := scene.NewGraph("root")
	group := g.NewNode("group")
	d, _ := New(marker.Cylinder, group)
	assert.IsType(t, &Shape{}, d)
	d, _ = New(marker.SphereList, group)
	assert.IsType(t, &Points{}, d)
	d, _ = New(marker.TextViewFacing, group)
	assert.IsType(t, &Text{}, d)
}

func TestSetMessage(t *testing.T) {
	tree := frames.NewTree("world")
	require.NoError(t, tree.Set("base", "world", pose.Translation(0, 0, 2)))
	ctx := tree.Context("world")

	g := scene.NewGraph("root")
	group := g.NewNode("group")
	d, err := New(marker.LineStrip, group)
	require.NoError(t, err)
	m := &marker.Marker{
		Namespace: "path", ID: 3, Type: marker.LineStrip, Frame: "base",
		Pose:   pose.Translation(1, 0, 0),
		Scale:  r3.Vec{X: 0.1},
		Points: []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}},
	}
	d.SetMessage(m, ctx)
	assert.Equal(t, "line-strip-3", d.Node().Name)
	assert.True(t, d.Node().Pose.ApproxEqual(pose.Translation(1, 0, 2), 1e-12))
	ls := d.(*LineStrip)
	assert.Len(t, ls.Points, 3)
	assert.Nil(t, ls.Colors)

	m.Points[0].X = 9
	assert.Equal(t, 0.0, ls.Points[0].X, "points are copied")
}

func TestSetMessageUnknownFrame(t *testing.T) {
	ctx := frames.NewTree("world").Context("")
	g := scene.NewGraph("root")
	d, err := New(marker.Arrow, g.NewNode("group"))
	require.NoError(t, err)
	m := &marker.Marker{Type: marker.Arrow, Frame: "moon", Pose: pose.Translation(1, 2, 3),
		Points: []r3.Vec{{}, {Z: 1}}}
	d.SetMessage(m, ctx)
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, d.Position())
	ar := d.(*Arrow)
	assert.True(t, ar.HasPoints)
	assert.Equal(t, r3.Vec{Z: 1}, ar.End)
}

func TestDestroy(t *testing.T) {
	g := scene.NewGraph("root")
	group := g.Root.NewChild("group")
	d, err := New(marker.Sphere, group)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumLive())
	d.Destroy()
	assert.True(t, d.Node().IsDestroyed())
	assert.Zero(t, group.NumChildren())
	assert.Equal(t, 2, g.NumLive())
}
