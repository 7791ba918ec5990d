// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marker defines the description of a single visualization
// marker: a typed primitive with a pose in some frame, grouped by namespace.
package marker

import (
	"image/color"
	"slices"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"cogentcore.org/markers/pose"
)

// Marker describes one visual primitive. It mirrors the fields of the
// ROS visualization_msgs/Marker message that are relevant for display.
type Marker struct {

	// Namespace groups markers for visibility control.
	Namespace string

	// ID identifies the marker within its namespace.
	ID int

	// Type is the primitive to draw.
	Type Type

	// Frame is the coordinate frame that Pose is expressed in.
	Frame string

	// Stamp is the time the marker was produced.
	Stamp time.Time

	// Pose places the primitive in Frame.
	Pose pose.Pose

	// Scale is the size of the primitive; its meaning depends on Type.
	Scale r3.Vec

	// Color is the color of the whole primitive.
	Color color.RGBA

	// Points are the vertices of line, point and triangle primitives,
	// or the start and end of an arrow.
	Points []r3.Vec

	// Colors are optional per-point colors, parallel to Points.
	Colors []color.RGBA

	// Text is displayed by [TextViewFacing] markers.
	Text string

	// MeshResource is the resource path of a [MeshResource] marker.
	MeshResource string
}

// Clone returns a deep copy of the marker.
func (m *Marker) Clone() *Marker {
	cp := *m
	cp.Points = slices.Clone(m.Points)
	cp.Colors = slices.Clone(m.Colors)
	return &cp
}
