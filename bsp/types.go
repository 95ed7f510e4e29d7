// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

// On-disk layout of an IBSP file. All values are little endian.

// called lump_t in c
type directory struct {
	Offset int32
	Size   int32
}

const (
	lumpEntities = iota
	lumpShaders
	lumpPlanes
	lumpNodes
	lumpLeafs
	lumpLeafFaces
	lumpLeafBrushes
	lumpModels
	lumpBrushes
	lumpBrushSides
	lumpVertexes
	lumpMeshVerts
	lumpEffects
	lumpFaces
	lumpLightmaps
	lumpLightVols
	lumpVisData
	lumpCount
)

var ibspMagic = [4]byte{'I', 'B', 'S', 'P'}

const (
	versionQ3   = 0x2E // 46
	versionRTCW = 0x2F // 47
)

type header struct {
	Magic   [4]byte
	Version int32
	Lumps   [lumpCount]directory
}

type rawShader struct {
	Name     [64]byte
	Surface  int32
	Contents int32
}

type rawPlane struct {
	Normal   [3]float32
	Distance float32
}

type rawNode struct {
	Plane    int32
	Children [2]int32 // negative values are ^leaf
	Mins     [3]int32
	Maxs     [3]int32
}

type rawLeaf struct {
	Cluster    int32
	Area       int32
	Mins       [3]int32
	Maxs       [3]int32
	FirstFace  int32
	FaceCount  int32
	FirstBrush int32
	BrushCount int32
}

type rawModel struct {
	Mins       [3]float32
	Maxs       [3]float32
	FirstFace  int32
	FaceCount  int32
	FirstBrush int32
	BrushCount int32
}

type rawBrush struct {
	FirstSide int32
	SideCount int32
	Shader    int32
}

type rawBrushSide struct {
	Plane  int32
	Shader int32
}

type rawVertex struct {
	Position [3]float32
	TexCoord [2]float32
	LMCoord  [2]float32
	Normal   [3]float32
	Color    [4]byte
}

type rawEffect struct {
	Name    [64]byte
	Brush   int32
	Unknown int32
}

type rawFace struct {
	Shader         int32
	Effect         int32
	Type           int32
	FirstVertex    int32
	VertexCount    int32
	FirstMeshVert  int32
	MeshVertCount  int32
	Lightmap       int32
	LightmapStart  [2]int32
	LightmapSize   [2]int32
	LightmapOrigin [3]float32
	LightmapVecs   [2][3]float32
	Normal         [3]float32
	Size           [2]int32 // patch control grid dimensions
}

type rawLightVol struct {
	Ambient     [3]byte
	Directional [3]byte
	Direction   [2]byte // longitude, latitude
}

const (
	lightmapWidth  = 128
	lightmapHeight = 128
	lightmapSize   = lightmapWidth * lightmapHeight * 3
)

// special lightmap indices stored in faces
const (
	lightmapByVertex = -3
	lightmapWhite    = -2
	lightmapNone     = -1
)
