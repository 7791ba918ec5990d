// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markers manages the lifecycle of visualization markers in a
// scene. A [Batch] holds one snapshot of markers, normalized into a common
// frame, and lazily turns them into drawables grouped by namespace. A
// [Host] shows any number of batches under one scene node, with a
// visibility toggle for each namespace.
package markers

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"cogentcore.org/markers/drawable"
	"cogentcore.org/markers/frames"
	"cogentcore.org/markers/marker"
	"cogentcore.org/markers/pose"
	"cogentcore.org/markers/scene"
)

// Entry is one marker of a [Batch] together with its drawable.
type Entry struct {

	// Marker is the batch's own copy of the marker, expressed
	// in the common frame of the batch.
	Marker *marker.Marker

	// Drawable is nil until the batch is materialized, and stays nil
	// if the marker type has no drawable.
	Drawable drawable.Drawable

	// failed is set when no drawable could be made, so that it is not retried.
	failed bool
}

// Batch is an immutable set of markers produced at one point in time.
// Its group nodes, one per namespace, and the drawables under them are
// owned by the batch: a [Host] attaches and detaches them but only
// [Batch.Release] destroys them.
type Batch struct {
	entries []*Entry

	// namespaces maps each namespace to its group node, which is nil
	// until the first call to [Batch.CreateRenderables].
	namespaces map[string]*scene.Node

	released bool
}

// NewBatch returns a new batch of copies of the given markers, with every
// pose expressed in the common frame of the snapshot. Markers whose frame
// is unknown to the snapshot are dropped. No drawables are made yet.
func NewBatch(markers []*marker.Marker, snapshot frames.Snapshot) *Batch {
	b := &Batch{namespaces: map[string]*scene.Node{}}
	for _, m := range markers {
		if m == nil {
			continue
		}
		cp := m.Clone()
		if !toCommonFrame(cp, snapshot) {
			continue
		}
		b.entries = append(b.entries, &Entry{Marker: cp})
		if _, has := b.namespaces[cp.Namespace]; !has {
			b.namespaces[cp.Namespace] = nil
		}
	}
	return b
}

// toCommonFrame expresses the pose of m relative to the common frame of
// the snapshot, returning false if the frame of m is unknown.
func toCommonFrame(m *marker.Marker, snapshot frames.Snapshot) bool {
	common := snapshot.CommonFrame()
	if m.Frame == common {
		return true
	}
	if !snapshot.KnowsTransform(m.Frame) {
		warnUnknownFrame(m.Frame, m.Namespace)
		return false
	}
	m.Pose = snapshot.Transform(m.Frame).Mul(m.Pose)
	m.Frame = common
	return true
}

type frameNamespace struct {
	frame, ns string
}

var (
	warnedMu sync.Mutex
	warned   = map[frameNamespace]bool{}
)

// warnUnknownFrame warns once per process about each combination of
// unknown frame and namespace.
func warnUnknownFrame(frame, ns string) {
	key := frameNamespace{frame, ns}
	warnedMu.Lock()
	done := warned[key]
	warned[key] = true
	warnedMu.Unlock()
	if !done {
		slog.Warn("markers: dropping marker in unknown frame", "frame", frame, "ns", ns)
	}
}

// Len returns the number of markers in the batch.
func (b *Batch) Len() int {
	return len(b.entries)
}

// Entries returns the entries of the batch in their original order.
// The returned slice must not be modified.
func (b *Batch) Entries() []*Entry {
	return b.entries
}

// Namespaces returns the sorted names of all namespaces in the batch.
func (b *Batch) Namespaces() []string {
	return slices.Sorted(maps.Keys(b.namespaces))
}

// HasNamespace returns whether the batch has markers in namespace ns.
func (b *Batch) HasNamespace(ns string) bool {
	_, has := b.namespaces[ns]
	return has
}

// GroupNode returns the group node of namespace ns, or nil if it does
// not exist (yet).
func (b *Batch) GroupNode(ns string) *scene.Node {
	return b.namespaces[ns]
}

// NumDrawables returns the number of entries that have a drawable.
func (b *Batch) NumDrawables() int {
	n := 0
	for _, e := range b.entries {
		if e.Drawable != nil {
			n++
		}
	}
	return n
}

// Materialized returns whether every entry has been given a drawable
// or has failed to get one.
func (b *Batch) Materialized() bool {
	for _, e := range b.entries {
		if e.Drawable == nil && !e.failed {
			return false
		}
	}
	return true
}

// CreateRenderables makes the drawables of all entries that do not have
// one yet, each under the group node of its namespace. Group nodes are
// created in the graph of parent but are not attached to it. Drawables are
// first placed relative to the fixed frame of ctx and then corrected by
// the transform from the fixed frame to the common frame of the batch, so
// that they end up expressed in the common frame. If that transform can
// not be looked up, the drawables are left uncorrected.
//
// All entries must be in the same frame; a batch made by [NewBatch]
// always is, and CreateRenderables panics otherwise.
func (b *Batch) CreateRenderables(ctx frames.Context, parent *scene.Node) {
	if b.released {
		return
	}
	var corr *correction
	for _, e := range b.entries {
		if e.Drawable != nil || e.failed {
			continue
		}
		m := e.Marker
		group := b.namespaces[m.Namespace]
		if group == nil {
			group = parent.Graph().NewNode(m.Namespace)
			b.namespaces[m.Namespace] = group
		}
		d, err := drawable.New(m.Type, group)
		if err != nil {
			errors.Log(fmt.Errorf("markers: namespace %q id %d: %w", m.Namespace, m.ID, err))
			e.failed = true
			continue
		}
		d.SetMessage(m, ctx)
		if corr == nil {
			corr = newCorrection(ctx, m.Frame)
		} else if m.Frame != corr.frame {
			panic(fmt.Sprintf("markers: batch mixes frames %q and %q", corr.frame, m.Frame))
		}
		corr.apply(d)
		e.Drawable = d
	}
}

// correction maps poses relative to the fixed frame of a rendering
// context into poses relative to a target frame.
type correction struct {
	frame string
	quat  quat.Number
	pos   r3.Vec
}

func newCorrection(ctx frames.Context, frame string) *correction {
	c := &correction{frame: frame, quat: quat.Number{Real: 1}}
	tm, err := ctx.LookupTransform(ctx.FixedFrame(), frame, time.Time{})
	if err != nil {
		errors.Log(fmt.Errorf("markers: leaving markers in fixed frame %q: %w", ctx.FixedFrame(), err))
		return c
	}
	c.quat = quat.Conj(tm.Rot())
	c.pos = tm.Pos
	return c
}

func (c *correction) apply(d drawable.Drawable) {
	d.SetOrientation(quat.Mul(c.quat, pose.Normalize(d.Orientation())))
	d.SetPosition(pose.Rotate(c.quat, r3.Sub(d.Position(), c.pos)))
}

// SetVisible attaches the group node of namespace ns to parent if visible
// is true, and detaches it otherwise. It does nothing for namespaces that
// the batch does not have or that have no group node yet.
func (b *Batch) SetVisible(ns string, parent *scene.Node, visible bool) {
	group := b.namespaces[ns]
	if group == nil {
		return
	}
	setVisibility(group, parent, visible)
}

// setVisibility attaches node to parent if visible and it is not already
// there, or detaches node from wherever it is if not visible.
func setVisibility(node, parent *scene.Node, visible bool) {
	if visible {
		if node.Parent() != parent {
			parent.AddChild(node)
		}
		return
	}
	node.Detach()
}

// Release destroys all group nodes of the batch and with them all of its
// drawables, whether or not they are attached to a scene. The batch can
// not be materialized again afterwards.
func (b *Batch) Release() {
	if b.released {
		return
	}
	b.released = true
	for ns, group := range b.namespaces {
		if group != nil {
			group.Destroy()
		}
		b.namespaces[ns] = nil
	}
	for _, e := range b.entries {
		e.Drawable = nil
	}
}
