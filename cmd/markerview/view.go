// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"cogentcore.org/markers/config"
	"cogentcore.org/markers/markers"
	"cogentcore.org/markers/props"
	"cogentcore.org/markers/scenario"
	"cogentcore.org/markers/scene"
)

// view builds a host for the scenario in filename and prints it to w.
func view(w io.Writer, filename string, settings *config.Settings, opts *options) error {
	sc, err := scenario.Open(filename)
	if err != nil {
		return err
	}
	tree, err := sc.Tree()
	if err != nil {
		return err
	}
	fixed := settings.FixedFrame
	if fixed == "" {
		fixed = sc.FixedFrame
	}

	graph := scene.NewGraph("scene")
	display := graph.Root.NewChild("display")
	host := markers.NewHost("Markers", settings)
	host.Init(display, tree.Context(fixed))

	var batches []*markers.Batch
	for i := range sc.Batches {
		ms, err := sc.Batches[i].ToMarkers()
		if err != nil {
			return err
		}
		b := markers.NewBatch(ms, tree)
		batches = append(batches, b)
		host.AddBatch(b)
	}

	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String("properties").Bold())
	printProps(w, out, host.Property(), 1)
	fmt.Fprintln(w, out.String("scene").Bold())
	printNodes(w, out, graph.Root)
	fmt.Fprintf(w, "nodes: %d live, %d attached\n", graph.NumLive(), graph.NumAttached())

	if opts.release {
		host.Destroy()
		for _, b := range batches {
			b.Release()
		}
		fmt.Fprintf(w, "after release: %d live, %d detached\n", graph.NumLive(), graph.NumDetached())
	}
	return nil
}

func printProps(w io.Writer, out *termenv.Output, p *props.Bool, depth int) {
	box := out.String("[ ]").Foreground(out.Color("1"))
	if p.Value() {
		box = out.String("[x]").Foreground(out.Color("2"))
	}
	fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth), box, p.Name)
	for _, kid := range p.Children() {
		printProps(w, out, kid, depth+1)
	}
}

func printNodes(w io.Writer, out *termenv.Output, root *scene.Node) {
	depth := map[*scene.Node]int{root: 1}
	root.WalkDown(func(n *scene.Node) bool {
		d := depth[n]
		for _, kid := range n.Children() {
			depth[kid] = d + 1
		}
		name := out.String(n.Name)
		if n.NumChildren() == 0 {
			name = name.Foreground(out.Color("6"))
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", d), name)
		return scene.Continue
	})
}
