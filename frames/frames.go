// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frames defines how markers resolve coordinate frames: a
// [Snapshot] of the planning scene expresses frames in one common frame,
// and a [Context] of the renderer looks up transforms relative to its
// fixed frame. [Tree] is an in-memory implementation of both.
package frames

import (
	"time"

	"cogentcore.org/core/base/errors"

	"cogentcore.org/markers/pose"
)

// ErrUnknownFrame is returned when a frame can not be resolved.
var ErrUnknownFrame = errors.New("unknown frame")

// Snapshot is a read-only view of the frames known to a planning scene
// at one point in time.
type Snapshot interface {

	// CommonFrame returns the frame that all other frames are expressed in.
	CommonFrame() string

	// KnowsTransform returns whether frame can be expressed in the common frame.
	KnowsTransform(frame string) bool

	// Transform returns the pose of frame in the common frame. It is only
	// valid if [Snapshot.KnowsTransform] returns true.
	Transform(frame string) pose.Pose
}

// Context is the view of the rendering engine onto the transform tree.
type Context interface {

	// FixedFrame returns the frame that the rendered scene is fixed to.
	// It may move relative to other frames over time.
	FixedFrame() string

	// LookupTransform returns the pose of target expressed in fixed at
	// the given time; the zero time means the latest available transform.
	LookupTransform(fixed, target string, at time.Time) (pose.Pose, error)
}
