// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/markers/pose"
)

// Graph creates the nodes of a scene and keeps track of those that
// have not been destroyed yet. It plays the role of the scene manager of
// a rendering engine: every node has a creator that must be used to
// destroy it, and nodes that are still live when they should not be are
// leaks of engine resources.
type Graph struct {

	// Root is the root node of the scene.
	Root *Node

	live map[*Node]struct{}
}

// NewGraph returns a new graph with a root node of the given name.
func NewGraph(rootName string) *Graph {
	g := &Graph{live: map[*Node]struct{}{}}
	g.Root = g.NewNode(rootName)
	return g
}

// NewNode creates a new detached node in this graph.
func (g *Graph) NewNode(name string) *Node {
	n := &Node{Name: name, Pose: pose.Identity(), graph: g}
	g.live[n] = struct{}{}
	return n
}

func (g *Graph) release(n *Node) {
	delete(g.live, n)
}

// NumLive returns the number of nodes that have been created and
// not yet destroyed, including the root.
func (g *Graph) NumLive() int {
	return len(g.live)
}

// NumAttached returns the number of nodes reachable from the root,
// including the root itself.
func (g *Graph) NumAttached() int {
	n := 0
	g.Root.WalkDown(func(k *Node) bool {
		n++
		return Continue
	})
	return n
}

// NumDetached returns the number of live nodes that do not descend
// from the root. These are either waiting to be attached or leaked.
func (g *Graph) NumDetached() int {
	return g.NumLive() - g.NumAttached()
}
