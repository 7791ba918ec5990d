// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markers

import (
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/markers/config"
	"cogentcore.org/markers/frames"
	"cogentcore.org/markers/props"
	"cogentcore.org/markers/scene"
)

// Host displays the markers of any number of batches under one umbrella
// scene node. Its [props.Bool] switches the umbrella node on and off,
// and has one child toggle per namespace seen in any hosted batch, which
// switches the group nodes of that namespace in all hosted batches.
//
// A Host never destroys the nodes of a batch: it only attaches them to
// and detaches them from its umbrella node.
type Host struct {
	settings *config.Settings
	prop     *props.Bool
	ctx      frames.Context

	// parent is the scene node that the umbrella node is attached to
	// while the host is visible.
	parent   *scene.Node
	umbrella *scene.Node

	batches    []*Batch
	namespaces map[string]*hostNamespace
}

// hostNamespace is the toggle of one namespace and the hosted
// batches that have markers in it.
type hostNamespace struct {
	prop    *props.Bool
	batches []*Batch
}

// NewHost returns a new host with the given name for its property.
// Nil settings means [config.Defaults]. The host must be bound to
// a scene with [Host.Init] before batches can be added.
func NewHost(name string, settings *config.Settings) *Host {
	if settings == nil {
		settings = config.Defaults()
	}
	h := &Host{settings: settings, namespaces: map[string]*hostNamespace{}}
	h.prop = props.NewBool(name, settings.Visible, "Enable/disable markers")
	h.prop.OnChange(func(p *props.Bool) {
		h.onEnableChanged()
	})
	return h
}

// Init binds the host to the given parent node and rendering context,
// creating the umbrella node as a child of parent. Calling Init again
// moves the existing umbrella node, with everything attached to it, to
// the new parent. Batches that are already materialized keep the poses
// they got from the previous context.
func (h *Host) Init(parent *scene.Node, ctx frames.Context) {
	if h.umbrella == nil {
		h.umbrella = parent.NewChild(h.prop.Name)
	} else {
		h.umbrella.Detach()
	}
	h.parent = parent
	h.ctx = ctx
	h.onEnableChanged()
}

func (h *Host) onEnableChanged() {
	if h.umbrella == nil {
		return
	}
	setVisibility(h.umbrella, h.parent, h.prop.Value())
}

func (h *Host) onNamespaceChanged(ns string, visible bool) {
	if h.umbrella == nil {
		return
	}
	for _, b := range h.namespaces[ns].batches {
		b.SetVisible(ns, h.umbrella, visible)
	}
}

// Property returns the master visibility toggle of the host,
// whose children are the namespace toggles.
func (h *Host) Property() *props.Bool {
	return h.prop
}

// Umbrella returns the scene node under which the host attaches the
// group nodes of its batches. It is nil before [Host.Init] and after
// [Host.Destroy].
func (h *Host) Umbrella() *scene.Node {
	return h.umbrella
}

// Batches returns the hosted batches in the order they were added.
// The returned slice must not be modified.
func (h *Host) Batches() []*Batch {
	return h.batches
}

// Namespaces returns the sorted names of all namespaces with a toggle.
func (h *Host) Namespaces() []string {
	return slices.Sorted(maps.Keys(h.namespaces))
}

// Namespace returns the toggle of namespace ns, or nil if the host
// has never seen ns.
func (h *Host) Namespace(ns string) *props.Bool {
	if hn := h.namespaces[ns]; hn != nil {
		return hn.prop
	}
	return nil
}

// SetVisible switches the master toggle.
func (h *Host) SetVisible(visible bool) {
	h.prop.SetValue(visible)
}

// SetNamespaceVisible switches the toggle of namespace ns, returning
// false if the host has no such namespace.
func (h *Host) SetNamespaceVisible(ns string, visible bool) bool {
	p := h.Namespace(ns)
	if p == nil {
		return false
	}
	p.SetValue(visible)
	return true
}

// Clear detaches all group nodes from the umbrella node and forgets all
// hosted batches. Namespace toggles are kept with their current state,
// which applies to batches that are added afterwards.
func (h *Host) Clear() {
	if h.umbrella != nil {
		h.umbrella.RemoveAllChildren()
	}
	h.batches = nil
	for _, hn := range h.namespaces {
		hn.batches = nil
	}
}

// AddBatch hosts the given batch. Toggles are created for namespaces
// that the host has not seen yet, the batch is materialized if it has not
// been already, and the group node of each namespace is attached to the
// umbrella node if its toggle is on. Nil and already hosted batches are
// ignored.
func (h *Host) AddBatch(b *Batch) {
	if b == nil || slices.Contains(h.batches, b) {
		return
	}
	if h.umbrella == nil {
		slog.Error("markers: AddBatch called on a host that is not initialized", "host", h.prop.Name)
		return
	}
	h.batches = append(h.batches, b)
	for _, ns := range b.Namespaces() {
		hn := h.namespaces[ns]
		if hn == nil {
			hn = &hostNamespace{}
			hn.prop = h.prop.NewChild(ns, h.settings.NamespaceVisible(ns), "Show/hide markers of this namespace",
				func(p *props.Bool) {
					h.onNamespaceChanged(ns, p.Value())
				})
			h.namespaces[ns] = hn
		}
		hn.batches = append(hn.batches, b)
		if b.GroupNode(ns) == nil {
			b.CreateRenderables(h.ctx, h.umbrella)
		}
		if hn.prop.Value() {
			b.SetVisible(ns, h.umbrella, true)
		}
	}
}

// Destroy detaches all group nodes, destroys the umbrella node and forgets
// all hosted batches. The batches keep their nodes until they are released.
func (h *Host) Destroy() {
	h.Clear()
	if h.umbrella != nil {
		h.umbrella.Destroy()
		h.umbrella = nil
	}
}
