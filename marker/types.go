// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marker

import (
	"strconv"
	"strings"

	"cogentcore.org/core/enums"
)

// Type is the primitive type of a marker. The values match the
// type constants of the ROS visualization_msgs/Marker message.
type Type int32

const (
	Arrow Type = iota
	Cube
	Sphere
	Cylinder
	LineStrip
	LineList
	CubeList
	SphereList
	Points
	TextViewFacing
	MeshResource
	TriangleList

	// TypesN is the number of known types.
	TypesN
)

var _TypeValues = []Type{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

var _TypeMap = map[Type]string{0: `arrow`, 1: `cube`, 2: `sphere`, 3: `cylinder`, 4: `line-strip`, 5: `line-list`, 6: `cube-list`, 7: `sphere-list`, 8: `points`, 9: `text-view-facing`, 10: `mesh-resource`, 11: `triangle-list`}

var _TypeDescMap = map[Type]string{0: `Arrow from the pose along x, or between two points.`, 1: `Cube`, 2: `Sphere`, 3: `Cylinder along z.`, 4: `Connected line through all points.`, 5: `Line segments between pairs of points.`, 6: `Cube at every point.`, 7: `Sphere at every point.`, 8: `Point cloud.`, 9: `Text that always faces the viewer.`, 10: `Mesh loaded from a resource.`, 11: `Triangles from triples of points.`}

// _TypeValueMap maps names to types, accepting _ in place of -.
var _TypeValueMap = func() map[string]Type {
	m := map[string]Type{}
	for t, nm := range _TypeMap {
		m[nm] = t
		m[strings.ReplaceAll(nm, "-", "_")] = t
	}
	return m
}()

// IsValid returns whether t is one of the known types.
func (i Type) IsValid() bool { return i >= 0 && i < TypesN }

// String returns the kebab-case name of the type, or its number
// if the type is unknown.
func (i Type) String() string { return enums.String(i, _TypeMap) }

// SetString sets the type from its name or number. Numbers outside
// the known range are accepted, since unknown types must survive
// decoding to be reported when they are drawn.
func (i *Type) SetString(s string) error {
	s = strings.TrimSpace(s)
	err := enums.SetStringLower(i, s, _TypeValueMap, "Type")
	if err == nil {
		return nil
	}
	n, perr := strconv.ParseInt(s, 10, 32)
	if perr != nil {
		return err
	}
	*i = Type(n)
	return nil
}

// Int64 returns the Type value as an int64.
func (i Type) Int64() int64 { return int64(i) }

// SetInt64 sets the Type value from an int64.
func (i *Type) SetInt64(in int64) { *i = Type(in) }

// Desc returns the description of the Type value.
func (i Type) Desc() string { return enums.Desc(i, _TypeDescMap) }

// TypeValues returns all known values of Type.
func TypeValues() []Type { return _TypeValues }

// Values returns all known values of Type.
func (i Type) Values() []enums.Enum { return enums.Values(_TypeValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Type) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Type) UnmarshalText(text []byte) error { return enums.UnmarshalText(i, text, "Type") }
