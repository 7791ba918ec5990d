// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario reads YAML files describing a frame tree and batches
// of markers, for driving a marker host without a planning pipeline.
package scenario

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"cogentcore.org/markers/frames"
	"cogentcore.org/markers/marker"
	"cogentcore.org/markers/pose"
)

// Scenario is the content of a scenario file.
type Scenario struct {

	// CommonFrame is the root of the frame tree.
	CommonFrame string `yaml:"common_frame"`

	// FixedFrame is the fixed frame of the renderer; empty means CommonFrame.
	FixedFrame string `yaml:"fixed_frame"`

	// Frames are the other frames, each of which must come after its parent.
	Frames []Frame `yaml:"frames"`

	// Batches are the marker batches, in the order they are added.
	Batches []Batch `yaml:"batches"`
}

// Frame is one frame of the tree.
type Frame struct {
	Name        string    `yaml:"name"`
	Parent      string    `yaml:"parent"`
	Position    []float64 `yaml:"position"`
	Orientation []float64 `yaml:"orientation"`
}

// Batch is a named list of markers.
type Batch struct {
	Name    string   `yaml:"name"`
	Markers []Marker `yaml:"markers"`
}

// Marker is the file form of a [marker.Marker]. Vectors are lists of
// numbers: positions and scales have three, orientations are x, y, z, w
// quaternions and colors are r, g, b, a bytes.
type Marker struct {
	Namespace   string      `yaml:"ns"`
	ID          int         `yaml:"id"`
	Type        string      `yaml:"type"`
	Frame       string      `yaml:"frame"`
	Position    []float64   `yaml:"position"`
	Orientation []float64   `yaml:"orientation"`
	Scale       []float64   `yaml:"scale"`
	Color       []int       `yaml:"color"`
	Points      [][]float64 `yaml:"points"`
	Text        string      `yaml:"text"`
	Mesh        string      `yaml:"mesh"`
}

// Open reads a scenario from the given file.
func Open(filename string) (*Scenario, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// Read reads a scenario from r. Unknown fields are an error.
func Read(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	sc := &Scenario{}
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if sc.CommonFrame == "" {
		return nil, errors.New("scenario: common_frame is required")
	}
	return sc, nil
}

// Tree returns the frame tree of the scenario.
func (sc *Scenario) Tree() (*frames.Tree, error) {
	tr := frames.NewTree(sc.CommonFrame)
	for _, f := range sc.Frames {
		ps, err := toPose(f.Position, f.Orientation)
		if err != nil {
			return nil, fmt.Errorf("scenario: frame %q: %w", f.Name, err)
		}
		if err := tr.Set(f.Name, f.Parent, ps); err != nil {
			return nil, fmt.Errorf("scenario: %w", err)
		}
	}
	return tr, nil
}

// ToMarkers converts the markers of the batch.
func (b *Batch) ToMarkers() ([]*marker.Marker, error) {
	ms := make([]*marker.Marker, 0, len(b.Markers))
	for i := range b.Markers {
		m, err := b.Markers[i].ToMarker()
		if err != nil {
			return nil, fmt.Errorf("scenario: batch %q marker %d: %w", b.Name, i, err)
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// ToMarker converts the file form into a [marker.Marker].
func (fm *Marker) ToMarker() (*marker.Marker, error) {
	m := &marker.Marker{
		Namespace:    fm.Namespace,
		ID:           fm.ID,
		Frame:        fm.Frame,
		Text:         fm.Text,
		MeshResource: fm.Mesh,
	}
	if err := m.Type.SetString(fm.Type); err != nil {
		return nil, err
	}
	ps, err := toPose(fm.Position, fm.Orientation)
	if err != nil {
		return nil, err
	}
	m.Pose = ps
	if fm.Scale != nil {
		if m.Scale, err = toVec(fm.Scale); err != nil {
			return nil, fmt.Errorf("scale: %w", err)
		}
	}
	if m.Color, err = toColor(fm.Color); err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	for _, p := range fm.Points {
		v, err := toVec(p)
		if err != nil {
			return nil, fmt.Errorf("point: %w", err)
		}
		m.Points = append(m.Points, v)
	}
	return m, nil
}

func toColor(c []int) (color.RGBA, error) {
	rgba := []uint8{255, 255, 255, 255}
	if len(c) != 0 && len(c) != 3 && len(c) != 4 {
		return color.RGBA{}, fmt.Errorf("needs 3 or 4 values, not %d", len(c))
	}
	for i, v := range c {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("value %d is not in [0, 255]", v)
		}
		rgba[i] = uint8(v)
	}
	return color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}

func toVec(v []float64) (r3.Vec, error) {
	if len(v) != 3 {
		return r3.Vec{}, fmt.Errorf("vector needs 3 values, not %d", len(v))
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

func toPose(pos, orient []float64) (pose.Pose, error) {
	ps := pose.Identity()
	if pos != nil {
		v, err := toVec(pos)
		if err != nil {
			return ps, fmt.Errorf("position: %w", err)
		}
		ps.Pos = v
	}
	switch len(orient) {
	case 0:
	case 4:
		ps = pose.New(ps.Pos, orient[0], orient[1], orient[2], orient[3])
	default:
		return ps, fmt.Errorf("orientation needs 4 values, not %d", len(orient))
	}
	return ps, nil
}
