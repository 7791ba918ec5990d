// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawable

import (
	"gonum.org/v1/gonum/spatial/r3"

	"cogentcore.org/markers/marker"
)

// Shape draws a single cube, sphere or cylinder, sized by Scale.
type Shape struct {
	Base
}

func (sh *Shape) setGeometry(m *marker.Marker) {
	if sh.Scale.X == 0 || sh.Scale.Y == 0 || sh.Scale.Z == 0 {
		sh.warn(m, "shape has a zero scale")
	}
}

// Arrow draws an arrow, either along the x axis of its pose, scaled by
// Scale, or from Start to End when the marker has two points.
type Arrow struct {
	Base

	// Start and End are set when the arrow is given by two points.
	Start, End r3.Vec

	// HasPoints is whether Start and End are used.
	HasPoints bool
}

func (ar *Arrow) setGeometry(m *marker.Marker) {
	ar.HasPoints = false
	switch len(m.Points) {
	case 0:
	case 2:
		ar.Start, ar.End, ar.HasPoints = m.Points[0], m.Points[1], true
	default:
		ar.warn(m, "arrow needs zero or two points")
	}
}

// LineStrip draws a connected sequence of line segments.
type LineStrip struct {
	Base
	pointList
}

func (ls *LineStrip) setGeometry(m *marker.Marker) {
	ls.setPoints(m)
	if len(ls.Points) < 2 {
		ls.warn(m, "line strip needs at least two points")
	}
}

// LineList draws independent line segments between pairs of points.
type LineList struct {
	Base
	pointList
}

func (ll *LineList) setGeometry(m *marker.Marker) {
	ll.setPoints(m)
	if len(ll.Points)%2 != 0 {
		ll.warn(m, "line list needs an even number of points")
	}
}

// Points draws one point, cube or sphere at each point.
type Points struct {
	Base
	pointList
}

func (pt *Points) setGeometry(m *marker.Marker) {
	pt.setPoints(m)
	if pt.Scale.X == 0 || pt.Scale.Y == 0 {
		pt.warn(m, "points have a zero scale")
	}
}

// TriangleList draws independent triangles from triples of points.
type TriangleList struct {
	Base
	pointList
}

func (tl *TriangleList) setGeometry(m *marker.Marker) {
	tl.setPoints(m)
	if len(tl.Points)%3 != 0 {
		tl.warn(m, "triangle list needs a multiple of three points")
	}
}

// Text draws text that always faces the camera.
type Text struct {
	Base

	// Text is the text to display.
	Text string
}

func (tx *Text) setGeometry(m *marker.Marker) {
	tx.Text = m.Text
}

// Mesh draws a mesh loaded from a resource.
type Mesh struct {
	Base

	// Resource is the resource path of the mesh.
	Resource string
}

func (ms *Mesh) setGeometry(m *marker.Marker) {
	ms.Resource = m.MeshResource
	if ms.Resource == "" {
		ms.warn(m, "mesh has no resource")
	}
}
