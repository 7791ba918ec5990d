// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"fmt"
	"slices"
	"time"

	"cogentcore.org/core/base/errors"

	"cogentcore.org/markers/pose"
)

// Tree is a static tree of named frames. Each frame except the root has
// a parent and a pose relative to it. The root is the common frame of
// the tree as a [Snapshot].
type Tree struct {
	root   string
	frames map[string]treeFrame
}

type treeFrame struct {
	parent string
	pose   pose.Pose
}

// NewTree returns a new tree with only the given root frame.
func NewTree(root string) *Tree {
	return &Tree{root: root, frames: map[string]treeFrame{}}
}

// Root returns the name of the root frame.
func (t *Tree) Root() string {
	return t.root
}

// Set adds or replaces frame as a child of parent at the given pose.
// The parent must already be known, and the frame must not be the root
// or one of the ancestors of parent.
func (t *Tree) Set(frame, parent string, ps pose.Pose) error {
	if frame == "" || parent == "" {
		return errors.New("frames.Tree.Set: frame names must not be empty")
	}
	if frame == t.root {
		return fmt.Errorf("frames.Tree.Set: can not set a parent for the root frame %q", frame)
	}
	if !t.has(parent) {
		return fmt.Errorf("frames.Tree.Set: parent of %q: %w: %q", frame, ErrUnknownFrame, parent)
	}
	if slices.Contains(t.chain(parent), frame) {
		return fmt.Errorf("frames.Tree.Set: making %q a child of %q would create a cycle", frame, parent)
	}
	t.frames[frame] = treeFrame{parent: parent, pose: ps}
	return nil
}

// Frames returns the names of all frames other than the root, sorted.
func (t *Tree) Frames() []string {
	names := make([]string, 0, len(t.frames))
	for nm := range t.frames {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

func (t *Tree) has(frame string) bool {
	if frame == t.root {
		return true
	}
	_, ok := t.frames[frame]
	return ok
}

// chain returns frame followed by all of its ancestors up to the root.
func (t *Tree) chain(frame string) []string {
	ch := []string{frame}
	for frame != t.root {
		f, ok := t.frames[frame]
		if !ok {
			return ch
		}
		frame = f.parent
		ch = append(ch, frame)
	}
	return ch
}

// poseInRoot returns the pose of frame expressed in the root frame.
func (t *Tree) poseInRoot(frame string) (pose.Pose, error) {
	ps := pose.Identity()
	for frame != t.root {
		f, ok := t.frames[frame]
		if !ok {
			return pose.Identity(), fmt.Errorf("%w: %q", ErrUnknownFrame, frame)
		}
		ps = f.pose.Mul(ps)
		frame = f.parent
	}
	return ps, nil
}

// CommonFrame implements [Snapshot] by returning the root frame.
func (t *Tree) CommonFrame() string {
	return t.root
}

// KnowsTransform implements [Snapshot].
func (t *Tree) KnowsTransform(frame string) bool {
	return t.has(frame)
}

// Transform implements [Snapshot]. Unknown frames return identity.
func (t *Tree) Transform(frame string) pose.Pose {
	ps, _ := t.poseInRoot(frame)
	return ps
}

// Lookup returns the pose of target expressed in fixed.
func (t *Tree) Lookup(fixed, target string) (pose.Pose, error) {
	fp, err := t.poseInRoot(fixed)
	if err != nil {
		return fp, err
	}
	tp, err := t.poseInRoot(target)
	if err != nil {
		return tp, err
	}
	return fp.Inverse().Mul(tp), nil
}

// Context returns a rendering [Context] on this tree with the given
// fixed frame. An empty fixed frame means the root.
func (t *Tree) Context(fixed string) *TreeContext {
	if fixed == "" {
		fixed = t.root
	}
	return &TreeContext{Tree: t, Fixed: fixed}
}

// TreeContext is a [Context] backed by a [Tree]. Since the tree is
// static, lookups ignore the requested time.
type TreeContext struct {
	Tree *Tree

	// Fixed is the fixed frame of the renderer.
	Fixed string
}

// FixedFrame implements [Context].
func (c *TreeContext) FixedFrame() string {
	return c.Fixed
}

// LookupTransform implements [Context].
func (c *TreeContext) LookupTransform(fixed, target string, at time.Time) (pose.Pose, error) {
	return c.Tree.Lookup(fixed, target)
}
