// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"q3world/math/vec"
)

// LocateLeaf returns the index of the leaf containing p. Trees deeper than
// MaxTreeDepth, which Validate rejects, resolve to leaf 0.
func (w *World) LocateLeaf(p vec.Vec3) int {
	leaf, _ := w.locateLeaf(p)
	return leaf
}

func (w *World) locateLeaf(p vec.Vec3) (int, bool) {
	c := w.Root()
	for depth := 0; !c.IsLeaf(); depth++ {
		if depth >= MaxTreeDepth {
			return 0, false
		}
		n := &w.Nodes[c.Index]
		if w.Planes[n.Plane].Front(p) {
			c = n.Children[0]
		} else {
			c = n.Children[1]
		}
	}
	return c.Index, true
}

// LeafCluster returns the visibility cluster of the leaf containing p or -1
// if there is none.
func (w *World) LeafCluster(p vec.Vec3) int {
	if len(w.Leafs) == 0 {
		return -1
	}
	leaf, ok := w.locateLeaf(p)
	if !ok {
		return -1
	}
	return w.Leafs[leaf].Cluster
}

// PotentiallyVisible reports whether cluster to can be seen from cluster
// from. The row of the visibility data is selected by to.
func (w *World) PotentiallyVisible(to, from int) bool {
	return w.Vis.Visible(to, from)
}
