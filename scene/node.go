// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a minimal retained-mode scene graph: nodes with
// a pose relative to their parent, created and destroyed through a [Graph]
// that accounts for every live node.
package scene

import (
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/markers/pose"
)

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// Node is a node in a scene graph. Nodes can only have one parent at
// a time; adding a node to a new parent moves it. A node is only
// destroyed by an explicit call to [Node.Destroy].
type Node struct {

	// Name is the name of this node, which is typically unique relative to
	// other children of the same parent.
	Name string

	// Pose is the transform of this node relative to its parent.
	Pose pose.Pose

	graph    *Graph
	parent   *Node
	children []*Node

	// numLifetimeChildren is the number of children that have ever been
	// created under this node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	destroyed bool
}

func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	return n.Path()
}

// Graph returns the graph that created this node.
func (n *Node) Graph() *Graph {
	return n.graph
}

// Parent returns the parent of this node, or nil if it is detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children of this node. The returned
// slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children this node has.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// HasChild returns whether kid is a direct child of this node.
func (n *Node) HasChild(kid *Node) bool {
	return slices.Contains(n.children, kid)
}

// IsDestroyed returns whether [Node.Destroy] has been called on this node
// or on one of the ancestors it had at that time.
func (n *Node) IsDestroyed() bool {
	return n.destroyed
}

// NewChild creates a new node in the same graph and adds it as a child.
// An empty name defaults to "node" plus the number of children ever
// created under this node.
func (n *Node) NewChild(name string) *Node {
	if name == "" {
		name = "node" + strconv.FormatUint(n.numLifetimeChildren, 10)
	}
	n.numLifetimeChildren++
	kid := n.graph.NewNode(name)
	n.AddChild(kid)
	return kid
}

// AddChild adds kid at the end of the children of this node. If kid
// already has a parent it is first removed from it. Adding a node that
// is already a child of n does nothing.
func (n *Node) AddChild(kid *Node) {
	if kid == nil || kid == n || kid.destroyed || n.destroyed {
		return
	}
	if kid.parent == n {
		return
	}
	if kid.parent != nil {
		kid.parent.RemoveChild(kid)
	}
	n.children = append(n.children, kid)
	kid.parent = n
}

// RemoveChild detaches kid from this node without destroying it,
// returning false if it is not a child.
func (n *Node) RemoveChild(kid *Node) bool {
	idx := slices.Index(n.children, kid)
	if idx < 0 {
		return false
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	kid.parent = nil
	return true
}

// RemoveAllChildren detaches all children of this node without
// destroying them.
func (n *Node) RemoveAllChildren() {
	for _, kid := range n.children {
		kid.parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Detach removes this node from its parent, if it has one.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Destroy detaches this node from its parent and recursively destroys it
// and all of its descendants. Calling it again is safe.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.Detach()
	n.destroy()
}

func (n *Node) destroy() {
	kids := n.children
	n.children = nil
	for _, kid := range kids {
		kid.parent = nil
		kid.destroy()
	}
	n.destroyed = true
	n.graph.release(n)
}

// WalkDown calls fun on this node and then on its descendants in depth-first
// order. Returning [Break] from fun skips the children of that node.
func (n *Node) WalkDown(fun func(k *Node) bool) {
	if !fun(n) {
		return
	}
	for _, kid := range slices.Clone(n.children) {
		kid.WalkDown(fun)
	}
}

// Root returns the top-most ancestor of this node.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// IsAncestorOf returns whether n is a (possibly indirect) parent of k.
func (n *Node) IsAncestorOf(k *Node) bool {
	for p := k.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Path returns the path to this node from the tree root,
// using names separated by / delimeters.
func (n *Node) Path() string {
	if n.parent != nil {
		return n.parent.Path() + "/" + escapePathName(n.Name)
	}
	return "/" + escapePathName(n.Name)
}

// WorldPose returns the pose of this node relative to the root of its tree.
func (n *Node) WorldPose() pose.Pose {
	if n.parent == nil {
		return n.Pose
	}
	return n.parent.WorldPose().Mul(n.Pose)
}

// escapePathName returns a name that replaces any / with \\
func escapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}
