// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"q3world/math/vec"
)

func faces(cmds []DrawCommand) []int {
	r := []int{}
	for _, c := range cmds {
		r = append(r, c.Face)
	}
	return r
}

func TestRenderWorldOrder(t *testing.T) {
	w := newTestWorld()
	p := NewRenderPass(w)

	tests := []struct {
		origin  vec.Vec3
		opaque  []int
		blended []int
	}{
		// front leaf first
		{vec.Vec3{10, 0, 0}, []int{0, 2}, []int{1}},
		// back leaf first
		{vec.Vec3{-10, 0, 0}, []int{2, 0}, []int{1}},
	}
	for _, tc := range tests {
		cmds := w.RenderWorld(p, tc.origin, noCull)
		require.Equal(t, tc.opaque, faces(p.Opaque()), "opaque from %v", tc.origin)
		require.Equal(t, tc.blended, faces(p.Blended()), "blended from %v", tc.origin)
		require.Len(t, cmds, len(tc.opaque)+len(tc.blended))
		for _, c := range p.Opaque() {
			require.False(t, c.Blend)
		}
		for _, c := range p.Blended() {
			require.True(t, c.Blend)
		}
	}
}

func TestRenderWorldBlendedBackToFront(t *testing.T) {
	w := newTestWorld()
	// a second transparent face in the front leaf
	w.Faces = append(w.Faces, Face{Type: FacePolygon, Shader: shaderGlass, VertexCount: 3, IndexCount: 3})
	w.LeafFaces = []int{3, 0, 4, 2, 1, 0}
	w.Leafs[0].FaceCount = 3
	w.Leafs[1].FirstFace = 3

	p := NewRenderPass(w)
	w.RenderWorld(p, vec.Vec3{10, 0, 0}, noCull)
	require.Equal(t, []int{1, 4}, faces(p.Blended()))
	w.RenderWorld(p, vec.Vec3{-10, 0, 0}, noCull)
	require.Equal(t, []int{4, 1}, faces(p.Blended()))
}

func TestRenderWorldEmitsOnce(t *testing.T) {
	w := newTestWorld()
	p := NewRenderPass(w)
	cmds := w.RenderWorld(p, vec.Vec3{10, 0, 0}, noCull)
	seen := map[int]bool{}
	for _, c := range cmds {
		require.False(t, seen[c.Face], "face %d emitted twice", c.Face)
		seen[c.Face] = true
	}
	require.False(t, seen[3], "water is not rendered")
}

func TestRenderWorldCommand(t *testing.T) {
	w := newTestWorld()
	w.Faces[2].FirstIndex = 0
	w.Faces[2].IndexCount = 3
	w.Faces[2].Lightmaps = [MaxLightmaps]int{5, 1, 1, 1}
	p := NewRenderPass(w)
	w.RenderWorld(p, vec.Vec3{-10, 0, 0}, noCull)
	require.Equal(t, DrawCommand{
		Face:       2,
		Shader:     shaderOpaque,
		Lightmaps:  [MaxLightmaps]int{5, 1, 1, 1},
		FirstIndex: 0,
		IndexCount: 3,
	}, p.Opaque()[0])
}

func TestRenderWorldPVS(t *testing.T) {
	w := newTestWorld()
	w.Vis = NewVisData(2)
	w.Vis.Set(1, 1)
	w.Vis.Set(1, 0)
	w.Vis.Set(0, 0)
	p := NewRenderPass(w)

	before := testutil.ToFloat64(leavesCulledByReason[cullPVS])
	// cluster 0 is not visible from cluster 1
	w.RenderWorld(p, vec.Vec3{-10, 0, 0}, noCull)
	require.Equal(t, 1, p.Cluster)
	require.Equal(t, []int{2, 0}, faces(p.Opaque()))
	require.Equal(t, before+2, testutil.ToFloat64(leavesCulledByReason[cullPVS]))

	p.NoVis = true
	w.Vis.Bits[1] = 0
	w.RenderWorld(p, vec.Vec3{-10, 0, 0}, noCull)
	require.Equal(t, []int{2, 0}, faces(p.Opaque()))
	require.Equal(t, []int{1}, faces(p.Blended()))
}

func TestRenderWorldFrustum(t *testing.T) {
	w := newTestWorld()
	p := NewRenderPass(w)

	// keep only boxes reaching into x > 0
	front := frustumFunc(func(mins, maxs vec.Vec3) bool { return maxs[0] <= 0 })
	before := testutil.ToFloat64(leavesCulledByReason[cullFrustum])
	w.RenderWorld(p, vec.Vec3{-10, 0, 0}, front)
	require.Equal(t, []int{0}, faces(p.Commands()))
	require.Equal(t, before+2, testutil.ToFloat64(leavesCulledByReason[cullFrustum]))

	nodes := testutil.ToFloat64(nodesCulled)
	all := frustumFunc(func(mins, maxs vec.Vec3) bool { return true })
	require.Empty(t, w.RenderWorld(p, vec.Vec3{10, 0, 0}, all))
	require.Equal(t, nodes+2, testutil.ToFloat64(nodesCulled))
}

func TestRenderWorldMetrics(t *testing.T) {
	w := newTestWorld()
	p := NewRenderPass(w)
	opaque := testutil.ToFloat64(facesEmittedByPass[passOpaque])
	blend := testutil.ToFloat64(facesEmittedByPass[passBlend])
	w.RenderWorld(p, vec.Vec3{10, 0, 0}, noCull)
	require.Equal(t, opaque+2, testutil.ToFloat64(facesEmittedByPass[passOpaque]))
	require.Equal(t, blend+1, testutil.ToFloat64(facesEmittedByPass[passBlend]))
}

func TestRenderWorldEmpty(t *testing.T) {
	w := &World{}
	require.Empty(t, w.RenderWorld(NewRenderPass(w), vec.Vec3{}, noCull))
}
