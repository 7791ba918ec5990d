// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolSetValue(t *testing.T) {
	b := NewBool("Markers", true, "Enable/disable markers")
	var got []bool
	b.OnChange(func(b *Bool) { got = append(got, b.Value()) })

	assert.False(t, b.SetValue(true), "no change")
	assert.True(t, b.SetValue(false))
	assert.True(t, b.SetValue(true))
	assert.Equal(t, []bool{false, true}, got)
}

func TestBoolChildren(t *testing.T) {
	root := NewBool("Markers", true, "")
	calls := 0
	a := root.NewChild("a", true, "", func(b *Bool) { calls++ })
	root.NewChild("b", false, "", nil)
	assert.Len(t, root.Children(), 2)
	assert.Equal(t, a, root.Child("a"))
	assert.Nil(t, root.Child("c"))
	assert.Equal(t, root, a.Parent())
	assert.Equal(t, "Markers/a", a.Path())

	a.SetValue(false)
	assert.Equal(t, 1, calls)

	root.NewChild("a", true, "", nil)
	assert.Len(t, root.Children(), 2, "same name replaces")
	assert.Nil(t, a.Parent())
	a.SetValue(true)
	assert.Equal(t, 1, calls, "replaced child does not notify")

	assert.True(t, root.RemoveChild(root.Child("b")))
	assert.False(t, root.RemoveChild(a))
	assert.Len(t, root.Children(), 1)
}
