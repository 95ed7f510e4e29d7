// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"q3world/math/vec"
)

func TestLocateLeaf(t *testing.T) {
	w := newTestWorld()
	tests := []struct {
		p    vec.Vec3
		want int
	}{
		{vec.Vec3{10, 0, 0}, 0},
		{vec.Vec3{0, 0, 0}, 0}, // on the plane counts as front
		{vec.Vec3{-0.5, 7, 3}, 1},
		{vec.Vec3{-5000, 0, 0}, 1},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, w.LocateLeaf(tc.p), "LocateLeaf(%v)", tc.p)
	}
	require.Equal(t, 1, w.LeafCluster(vec.Vec3{-1, 0, 0}))
}

func TestLocateLeafNoNodes(t *testing.T) {
	w := &World{Leafs: []Leaf{{Cluster: 4}}}
	require.Equal(t, 0, w.LocateLeaf(vec.Vec3{1, 2, 3}))
	require.Equal(t, 4, w.LeafCluster(vec.Vec3{}))
	require.Equal(t, -1, (&World{}).LeafCluster(vec.Vec3{}))
}

func TestLocateLeafDeepTree(t *testing.T) {
	w := &World{
		Planes: []Plane{{Normal: vec.Vec3{1, 0, 0}}},
		Leafs:  []Leaf{{Cluster: 5}},
	}
	for i := 0; i < 2*MaxTreeDepth; i++ {
		w.Nodes = append(w.Nodes, Node{Children: [2]Child{NodeChild(i + 1), LeafChild(0)}})
	}
	w.Nodes[len(w.Nodes)-1].Children[0] = LeafChild(0)

	leaf := w.LocateLeaf(vec.Vec3{1, 0, 0})
	require.GreaterOrEqual(t, leaf, 0)
	require.Less(t, leaf, len(w.Leafs))
	require.NotPanics(t, func() {
		require.Equal(t, -1, w.LeafCluster(vec.Vec3{1, 0, 0}))
	})
	// the back side reaches leaf 0 right away
	require.Equal(t, 5, w.LeafCluster(vec.Vec3{-1, 0, 0}))
}

func TestPotentiallyVisible(t *testing.T) {
	w := &World{Vis: NewVisData(10)}
	w.Vis.Set(3, 1)
	w.Vis.Set(9, 9)

	require.True(t, w.PotentiallyVisible(3, 1), "cluster 3 seen from cluster 1")
	require.False(t, w.PotentiallyVisible(1, 3), "rows are selected by the tested cluster")
	require.True(t, w.PotentiallyVisible(9, 9))
	require.False(t, w.PotentiallyVisible(9, 8))
	require.True(t, w.PotentiallyVisible(-1, 3))
	require.True(t, w.PotentiallyVisible(3, -1))

	// bit addressing is test*bytesPerCluster*8+cam, lsb first
	require.Equal(t, byte(1<<1), w.Vis.Bits[3*2])
	require.Equal(t, byte(1<<(9-8)), w.Vis.Bits[9*2+1])
}

func TestPotentiallyVisibleEmpty(t *testing.T) {
	w := &World{}
	require.True(t, w.PotentiallyVisible(0, 0))
	require.True(t, w.PotentiallyVisible(12, 7))
}
