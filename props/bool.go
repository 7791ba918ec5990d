// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props provides a tree of user-facing boolean properties that
// notify listeners when their value changes, the way a property panel
// exposes checkboxes to a user.
package props

import (
	"slices"
)

// Bool is a named boolean property that can have child properties.
type Bool struct {

	// Name is the label of the property, unique among its siblings.
	Name string

	// Description is shown to the user as help text.
	Description string

	value     bool
	parent    *Bool
	children  []*Bool
	listeners []func(b *Bool)
}

// NewBool returns a new root property.
func NewBool(name string, value bool, description string) *Bool {
	return &Bool{Name: name, value: value, Description: description}
}

// NewChild adds a new child property. If onChange is non-nil it is
// registered with [Bool.OnChange]. A child with the same name is replaced,
// and the replaced child loses its listeners so that it no longer
// notifies anyone.
func (b *Bool) NewChild(name string, value bool, description string, onChange func(b *Bool)) *Bool {
	if old := b.Child(name); old != nil {
		b.RemoveChild(old)
		old.listeners = nil
	}
	kid := NewBool(name, value, description)
	kid.parent = b
	if onChange != nil {
		kid.OnChange(onChange)
	}
	b.children = append(b.children, kid)
	return kid
}

// Value returns the current value of the property.
func (b *Bool) Value() bool {
	return b.value
}

// SetValue sets the value of the property and notifies the listeners
// if it changed. It returns whether the value changed.
func (b *Bool) SetValue(v bool) bool {
	if b.value == v {
		return false
	}
	b.value = v
	for _, fun := range slices.Clone(b.listeners) {
		fun(b)
	}
	return true
}

// OnChange adds a function that is called after the value changes.
func (b *Bool) OnChange(fun func(b *Bool)) {
	b.listeners = append(b.listeners, fun)
}

// Parent returns the parent property, or nil for a root.
func (b *Bool) Parent() *Bool {
	return b.parent
}

// Children returns the child properties. The returned slice must not be modified.
func (b *Bool) Children() []*Bool {
	return b.children
}

// Child returns the child with the given name, or nil.
func (b *Bool) Child(name string) *Bool {
	idx := slices.IndexFunc(b.children, func(k *Bool) bool { return k.Name == name })
	if idx < 0 {
		return nil
	}
	return b.children[idx]
}

// RemoveChild removes kid from the children, returning false if it is
// not a child. Its listeners are kept so that it can be re-added.
func (b *Bool) RemoveChild(kid *Bool) bool {
	idx := slices.Index(b.children, kid)
	if idx < 0 {
		return false
	}
	b.children = slices.Delete(b.children, idx, idx+1)
	kid.parent = nil
	return true
}

// Path returns the names from the root to this property separated by /.
func (b *Bool) Path() string {
	if b.parent == nil {
		return b.Name
	}
	return b.parent.Path() + "/" + b.Name
}
