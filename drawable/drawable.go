// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawable provides the renderable objects that markers are
// turned into. Each drawable owns one scene node, created under the group
// node it is made for, that carries the pose of the marker.
package drawable

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"cogentcore.org/markers/frames"
	"cogentcore.org/markers/marker"
	"cogentcore.org/markers/pose"
	"cogentcore.org/markers/scene"
)

// ErrUnknownType is returned by [New] for marker types that have no drawable.
var ErrUnknownType = errors.New("unknown marker type")

// Drawable is an engine object that renders one marker.
type Drawable interface {

	// Type returns the marker type this drawable was made for.
	Type() marker.Type

	// Node returns the scene node of the drawable.
	Node() *scene.Node

	// SetMessage initializes the drawable from the geometry and appearance
	// of m, and places it relative to the fixed frame of ctx.
	SetMessage(m *marker.Marker, ctx frames.Context)

	// Position returns the position of the drawable relative to its parent node.
	Position() r3.Vec

	// SetPosition sets the position of the drawable relative to its parent node.
	SetPosition(pos r3.Vec)

	// Orientation returns the orientation of the drawable relative to its parent node.
	Orientation() quat.Number

	// SetOrientation sets the orientation of the drawable relative to its parent node.
	SetOrientation(q quat.Number)

	// Destroy destroys the scene node of the drawable.
	Destroy()
}

// New makes the drawable for the given marker type, with its scene node
// as a new child of group. It returns [ErrUnknownType] if t has no drawable.
func New(t marker.Type, group *scene.Node) (Drawable, error) {
	switch t {
	case marker.Cube, marker.Cylinder, marker.Sphere:
		return newBase(&Shape{}, t, group), nil
	case marker.Arrow:
		return newBase(&Arrow{}, t, group), nil
	case marker.LineStrip:
		return newBase(&LineStrip{}, t, group), nil
	case marker.LineList:
		return newBase(&LineList{}, t, group), nil
	case marker.SphereList, marker.CubeList, marker.Points:
		return newBase(&Points{}, t, group), nil
	case marker.TextViewFacing:
		return newBase(&Text{}, t, group), nil
	case marker.MeshResource:
		return newBase(&Mesh{}, t, group), nil
	case marker.TriangleList:
		return newBase(&TriangleList{}, t, group), nil
	}
	return nil, fmt.Errorf("drawable.New: %w: %d", ErrUnknownType, int(t))
}

// drawer is implemented by the concrete drawables; it gives access to
// the embedded [Base] and sets the type-specific geometry.
type drawer interface {
	Drawable
	asBase() *Base
	setGeometry(m *marker.Marker)
}

func newBase[T drawer](d T, t marker.Type, group *scene.Node) T {
	b := d.asBase()
	b.this = d
	b.typ = t
	b.node = group.NewChild(t.String())
	return d
}

// Base implements the part of [Drawable] that is common to all marker types.
type Base struct {

	// Scale is the scale of the primitive.
	Scale r3.Vec

	// Color is the color of the whole primitive.
	Color color.RGBA

	this drawer
	typ  marker.Type
	node *scene.Node
}

func (b *Base) asBase() *Base { return b }

func (b *Base) Type() marker.Type { return b.typ }

func (b *Base) Node() *scene.Node { return b.node }

func (b *Base) Position() r3.Vec { return b.node.Pose.Pos }

func (b *Base) SetPosition(pos r3.Vec) { b.node.Pose.Pos = pos }

func (b *Base) Orientation() quat.Number { return b.node.Pose.Quat }

func (b *Base) SetOrientation(q quat.Number) { b.node.Pose.Quat = q }

func (b *Base) Destroy() { b.node.Destroy() }

// SetMessage implements [Drawable]. The pose of the marker is expressed
// in the fixed frame of ctx; if its frame can not be looked up, the pose
// is used as is.
func (b *Base) SetMessage(m *marker.Marker, ctx frames.Context) {
	b.node.Name = fmt.Sprintf("%s-%d", m.Type, m.ID)
	b.Scale = m.Scale
	b.Color = m.Color
	tm, err := ctx.LookupTransform(ctx.FixedFrame(), m.Frame, m.Stamp)
	if err != nil {
		slog.Warn("drawable: can not place marker relative to fixed frame", "ns", m.Namespace, "id", m.ID, "err", err)
		tm = pose.Identity()
	}
	b.node.Pose = tm.Mul(m.Pose)
	b.this.setGeometry(m)
}

func (b *Base) warn(m *marker.Marker, msg string) {
	slog.Warn("drawable: "+msg, "type", m.Type, "ns", m.Namespace, "id", m.ID)
}

// pointList holds the vertices of list-based primitives.
type pointList struct {
	Points []r3.Vec
	Colors []color.RGBA
}

func (pl *pointList) setPoints(m *marker.Marker) {
	pl.Points = slices.Clone(m.Points)
	pl.Colors = nil
	if len(m.Colors) == len(m.Points) {
		pl.Colors = slices.Clone(m.Colors)
	}
}
