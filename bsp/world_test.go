// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"q3world/math/vec"
)

type frustumFunc func(mins, maxs vec.Vec3) bool

func (f frustumFunc) CullBox(mins, maxs vec.Vec3) bool {
	return f(mins, maxs)
}

var noCull = frustumFunc(func(mins, maxs vec.Vec3) bool { return false })

const (
	shaderOpaque = iota
	shaderGlass
	shaderWater
	shaderClip
)

// newTestWorld returns two leafs split by the plane x=0. Leaf 0 (x>=0,
// cluster 0) holds faces 3 and 0, leaf 1 (x<0, cluster 1) holds faces 2, 1
// and 0. Face 0 and 2 are opaque, face 1 is transparent and face 3 is not
// rendered. The floor brush z in [-16,0] is referenced by both leafs.
func newTestWorld() *World {
	w := &World{
		name: "test",
		Shaders: []Shader{
			NewShader("textures/base/floor", 0, ContentsSolid),
			NewShader("textures/base/glass", 0, ContentsSolid|ContentsTranslucent),
			NewShader("textures/liquids/water", SurfaceNonSolid, ContentsWater),
			NewShader("textures/common/clip", SurfaceNonSolid, ContentsPlayerClip),
		},
		Planes: []Plane{
			{Normal: vec.Vec3{1, 0, 0}, Dist: 0},
			{Normal: vec.Vec3{0, 0, 1}, Dist: 0},
			{Normal: vec.Vec3{0, 0, -1}, Dist: 16},
			{Normal: vec.Vec3{1, 0, 0}, Dist: 100},
			{Normal: vec.Vec3{-1, 0, 0}, Dist: 100},
			{Normal: vec.Vec3{0, 1, 0}, Dist: 100},
			{Normal: vec.Vec3{0, -1, 0}, Dist: 100},
		},
		Nodes: []Node{{
			Plane:    0,
			Children: [2]Child{LeafChild(0), LeafChild(1)},
			Mins:     [3]int32{-1000, -1000, -1000},
			Maxs:     [3]int32{1000, 1000, 1000},
		}},
		Leafs: []Leaf{{
			Cluster: 0,
			Mins:    [3]int32{0, -1000, -1000}, Maxs: [3]int32{1000, 1000, 1000},
			FirstFace: 0, FaceCount: 2,
			FirstBrush: 0, BrushCount: 1,
		}, {
			Cluster: 1,
			Mins:    [3]int32{-1000, -1000, -1000}, Maxs: [3]int32{0, 1000, 1000},
			FirstFace: 2, FaceCount: 3,
			FirstBrush: 1, BrushCount: 1,
		}},
		LeafFaces:   []int{3, 0, 2, 1, 0},
		LeafBrushes: []int{0, 0},
		Brushes:     []Brush{{FirstSide: 0, SideCount: 6, Shader: shaderOpaque}},
		BrushSides: []BrushSide{
			{Plane: 1}, {Plane: 2}, {Plane: 3}, {Plane: 4}, {Plane: 5}, {Plane: 6},
		},
		Models: []Model{{
			Mins: vec.Vec3{-1000, -1000, -1000},
			Maxs: vec.Vec3{1000, 1000, 1000},
		}},
		Vertices: make([]Vertex, 3),
		Indices:  []uint32{0, 1, 2},
		Faces: []Face{
			{Type: FacePolygon, Shader: shaderOpaque, VertexCount: 3, IndexCount: 3},
			{Type: FacePolygon, Shader: shaderGlass, VertexCount: 3, IndexCount: 3},
			{Type: FacePolygon, Shader: shaderOpaque, VertexCount: 3, IndexCount: 3},
			{Type: FacePolygon, Shader: shaderWater, VertexCount: 3, IndexCount: 3},
		},
		Vis: NewVisData(2),
	}
	for c := 0; c < 2; c++ {
		for d := 0; d < 2; d++ {
			w.Vis.Set(c, d)
		}
	}
	return w
}
