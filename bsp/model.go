// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"q3world/math/vec"
)

const (
	// MaxLightmaps is the number of lightmap slots per vertex and face.
	MaxLightmaps = 4
	// MaxTreeDepth bounds every tree traversal.
	MaxTreeDepth = 256
	// DefaultSubdivisions is the patch tesselation level.
	DefaultSubdivisions = 3
	// syntheticLightmaps are appended after the lightmaps of the file.
	syntheticLightmaps = 3
)

type Plane struct {
	Normal vec.Vec3
	Dist   float32
}

// Distance returns the signed distance of p to the plane.
func (p *Plane) Distance(v vec.Vec3) float32 {
	return vec.Dot(p.Normal, v) - p.Dist
}

// Front reports whether v lies in the half-space dot(normal,v) >= dist.
func (p *Plane) Front(v vec.Vec3) bool {
	return vec.Dot(p.Normal, v) >= p.Dist
}

type ChildKind uint8

const (
	ChildNode ChildKind = iota
	ChildLeaf
)

// Child references either an interior node or a leaf.
type Child struct {
	Kind  ChildKind
	Index int
}

func NodeChild(i int) Child {
	return Child{Kind: ChildNode, Index: i}
}

func LeafChild(i int) Child {
	return Child{Kind: ChildLeaf, Index: i}
}

// childFromDisk decodes the file encoding where a negative value n
// references leaf ^n.
func childFromDisk(c int32) Child {
	if c < 0 {
		return LeafChild(int(^c))
	}
	return NodeChild(int(c))
}

func (c Child) IsLeaf() bool {
	return c.Kind == ChildLeaf
}

type Node struct {
	Plane    int
	Children [2]Child
	Mins     [3]int32
	Maxs     [3]int32
}

type Leaf struct {
	Cluster    int
	Area       int
	Mins       [3]int32
	Maxs       [3]int32
	FirstFace  int // into World.LeafFaces
	FaceCount  int
	FirstBrush int // into World.LeafBrushes
	BrushCount int
}

// Model is a brush model. Model 0 is the world itself.
type Model struct {
	Mins       vec.Vec3
	Maxs       vec.Vec3
	FirstFace  int
	FaceCount  int
	FirstBrush int
	BrushCount int
}

type Brush struct {
	FirstSide int
	SideCount int
	Shader    int
}

type BrushSide struct {
	Plane  int
	Shader int
}

type Vertex struct {
	Position vec.Vec3
	TexCoord vec.Vec2
	LMCoord  [MaxLightmaps]vec.Vec2
	Normal   vec.Vec3
	Color    [MaxLightmaps][4]byte
}

// Add returns the component wise sum of the interpolated attributes.
// Colors are left zero, bezier blends them separately.
func (v Vertex) Add(o Vertex) Vertex {
	r := Vertex{
		Position: vec.Add(v.Position, o.Position),
		TexCoord: vec.Add2(v.TexCoord, o.TexCoord),
		Normal:   vec.Add(v.Normal, o.Normal),
	}
	for i := range r.LMCoord {
		r.LMCoord[i] = vec.Add2(v.LMCoord[i], o.LMCoord[i])
	}
	return r
}

// Scale multiplies all interpolated attributes with s.
func (v Vertex) Scale(s float32) Vertex {
	r := Vertex{
		Position: vec.Scale(s, v.Position),
		TexCoord: vec.Scale2(s, v.TexCoord),
		Normal:   vec.Scale(s, v.Normal),
	}
	for i := range r.LMCoord {
		r.LMCoord[i] = vec.Scale2(s, v.LMCoord[i])
	}
	return r
}

type FaceType int

const (
	FaceNone FaceType = iota
	FacePolygon
	FacePatch
	FaceMesh
)

func (t FaceType) String() string {
	switch t {
	case FacePolygon:
		return "polygon"
	case FacePatch:
		return "patch"
	case FaceMesh:
		return "mesh"
	default:
		return "none"
	}
}

type Face struct {
	Type        FaceType
	Shader      int
	Effect      int
	FirstVertex int
	VertexCount int
	// FirstIndex and IndexCount address World.Indices. For patches they
	// point to the tesselated triangles, not the on-disk mesh verts.
	FirstIndex int
	IndexCount int
	Lightmaps  [MaxLightmaps]int
	PatchSize  [2]int
}

type LightVol struct {
	Ambient     [MaxLightmaps]vec.Vec3
	Directional [MaxLightmaps]vec.Vec3
	Styles      [MaxLightmaps]byte
	Direction   vec.Vec3
}

type Lightmap struct {
	Width  int
	Height int
	RGBA   []byte
}

type Effect struct {
	Name  string
	Brush int
}

// World is the geometry store of a loaded map. It is populated once by Load
// and must not be modified afterwards. Queries only read it and may run
// concurrently as long as every goroutine uses its own RenderPass and
// TracePass.
type World struct {
	name string

	Entities    []*Entity
	Shaders     []Shader
	Planes      []Plane
	Nodes       []Node
	Leafs       []Leaf
	LeafFaces   []int
	LeafBrushes []int
	Models      []Model
	Brushes     []Brush
	BrushSides  []BrushSide
	Vertices    []Vertex
	Indices     []uint32
	Effects     []Effect
	Faces       []Face
	Lightmaps   []Lightmap
	LightVols   []LightVol
	Vis         VisData

	lightGrid lightGrid
}

func (w *World) Name() string {
	return w.name
}

// FileLightmaps returns the lightmaps stored in the map file without the
// generated ones.
func (w *World) FileLightmaps() []Lightmap {
	if len(w.Lightmaps) < syntheticLightmaps {
		return nil
	}
	return w.Lightmaps[:len(w.Lightmaps)-syntheticLightmaps]
}

// Root returns the reference of the tree root. A map without nodes
// consists of the single leaf 0.
func (w *World) Root() Child {
	if len(w.Nodes) == 0 {
		return LeafChild(0)
	}
	return NodeChild(0)
}
