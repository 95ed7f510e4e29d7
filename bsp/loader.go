// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"q3world/conlog"
)

// LoadOptions controls the geometry generated while loading.
type LoadOptions struct {
	// Subdivisions is the tesselation level of curved patches. Values
	// below 1 select DefaultSubdivisions.
	Subdivisions int
}

var (
	ErrBadMagic   = errors.New("not an IBSP file")
	ErrBadVersion = errors.New("unsupported IBSP version")
	ErrBadLump    = errors.New("malformed lump")
)

// Load parses an IBSP file and returns the validated world.
func Load(name string, data []byte, opts LoadOptions) (*World, error) {
	r := bytes.NewReader(data)
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrapf(err, "%s: could not read header", name)
	}
	if h.Magic != ibspMagic {
		return nil, errors.Wrap(ErrBadMagic, name)
	}
	if h.Version != versionQ3 && h.Version != versionRTCW {
		return nil, errors.Wrapf(ErrBadVersion, "%s: version %d", name, h.Version)
	}
	for i, l := range h.Lumps {
		if l.Offset < 0 || l.Size < 0 || int64(l.Offset)+int64(l.Size) > int64(len(data)) {
			return nil, errors.Wrapf(ErrBadLump, "%s: lump %d out of file bounds", name, i)
		}
	}

	w := &World{name: name}
	ld := loader{data: data, lumps: &h.Lumps}
	steps := []struct {
		what string
		load func(*loader, *World) error
	}{
		{"entities", loadEntities},
		{"shaders", loadShaders},
		{"planes", loadPlanes},
		{"nodes", loadNodes},
		{"leafs", loadLeafs},
		{"leaf faces", loadLeafFaces},
		{"leaf brushes", loadLeafBrushes},
		{"models", loadModels},
		{"brushes", loadBrushes},
		{"brush sides", loadBrushSides},
		{"vertexes", loadVertexes},
		{"mesh verts", loadMeshVerts},
		{"effects", loadEffects},
		{"faces", loadFaces},
		{"lightmaps", loadLightmaps},
		{"light volumes", loadLightVols},
		{"visibility", loadVisData},
	}
	for _, s := range steps {
		if err := s.load(&ld, w); err != nil {
			return nil, errors.Wrapf(err, "%s: could not load %s", name, s.what)
		}
	}
	if err := w.rebaseMeshIndices(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	w.tesselatePatches(opts.Subdivisions)
	if len(w.Models) > 0 {
		w.lightGrid = newLightGrid(&w.Models[0])
	}
	if err := w.Validate(); err != nil {
		return nil, errors.Wrap(err, name)
	}

	conlog.DPrintf("loaded %s: %d nodes, %d leafs, %d faces, %d brushes, %d clusters",
		name, len(w.Nodes), len(w.Leafs), len(w.Faces), len(w.Brushes), w.Vis.ClusterCount)
	return w, nil
}

type loader struct {
	data  []byte
	lumps *[lumpCount]directory
}

func (l *loader) lump(i int) []byte {
	d := l.lumps[i]
	return l.data[d.Offset : d.Offset+d.Size]
}

// readLump decodes a lump as an array of fixed size records.
func readLump[T any](l *loader, i int) ([]T, error) {
	b := l.lump(i)
	var zero T
	sz := binary.Size(zero)
	if len(b)%sz != 0 {
		return nil, errors.Wrapf(ErrBadLump, "size %d is not a multiple of %d", len(b), sz)
	}
	v := make([]T, len(b)/sz)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return v, nil
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func loadEntities(l *loader, w *World) error {
	w.Entities = ParseEntities(l.lump(lumpEntities))
	return nil
}

func loadShaders(l *loader, w *World) error {
	raw, err := readLump[rawShader](l, lumpShaders)
	if err != nil {
		return err
	}
	w.Shaders = make([]Shader, len(raw))
	for i := range raw {
		s := &raw[i]
		w.Shaders[i] = NewShader(cString(s.Name[:]), uint32(s.Surface), uint32(s.Contents))
	}
	return nil
}

func loadPlanes(l *loader, w *World) error {
	raw, err := readLump[rawPlane](l, lumpPlanes)
	if err != nil {
		return err
	}
	w.Planes = make([]Plane, len(raw))
	for i, p := range raw {
		w.Planes[i] = Plane{Normal: p.Normal, Dist: p.Distance}
	}
	return nil
}

func loadNodes(l *loader, w *World) error {
	raw, err := readLump[rawNode](l, lumpNodes)
	if err != nil {
		return err
	}
	w.Nodes = make([]Node, len(raw))
	for i, n := range raw {
		w.Nodes[i] = Node{
			Plane:    int(n.Plane),
			Children: [2]Child{childFromDisk(n.Children[0]), childFromDisk(n.Children[1])},
			Mins:     n.Mins,
			Maxs:     n.Maxs,
		}
	}
	return nil
}

func loadLeafs(l *loader, w *World) error {
	raw, err := readLump[rawLeaf](l, lumpLeafs)
	if err != nil {
		return err
	}
	w.Leafs = make([]Leaf, len(raw))
	for i, r := range raw {
		w.Leafs[i] = Leaf{
			Cluster:    int(r.Cluster),
			Area:       int(r.Area),
			Mins:       r.Mins,
			Maxs:       r.Maxs,
			FirstFace:  int(r.FirstFace),
			FaceCount:  int(r.FaceCount),
			FirstBrush: int(r.FirstBrush),
			BrushCount: int(r.BrushCount),
		}
	}
	return nil
}

func readIndexLump(l *loader, i int) ([]int, error) {
	raw, err := readLump[int32](l, i)
	if err != nil {
		return nil, err
	}
	v := make([]int, len(raw))
	for i, r := range raw {
		v[i] = int(r)
	}
	return v, nil
}

func loadLeafFaces(l *loader, w *World) (err error) {
	w.LeafFaces, err = readIndexLump(l, lumpLeafFaces)
	return err
}

func loadLeafBrushes(l *loader, w *World) (err error) {
	w.LeafBrushes, err = readIndexLump(l, lumpLeafBrushes)
	return err
}

func loadModels(l *loader, w *World) error {
	raw, err := readLump[rawModel](l, lumpModels)
	if err != nil {
		return err
	}
	w.Models = make([]Model, len(raw))
	for i, m := range raw {
		w.Models[i] = Model{
			Mins:       m.Mins,
			Maxs:       m.Maxs,
			FirstFace:  int(m.FirstFace),
			FaceCount:  int(m.FaceCount),
			FirstBrush: int(m.FirstBrush),
			BrushCount: int(m.BrushCount),
		}
	}
	return nil
}

func loadBrushes(l *loader, w *World) error {
	raw, err := readLump[rawBrush](l, lumpBrushes)
	if err != nil {
		return err
	}
	w.Brushes = make([]Brush, len(raw))
	for i, b := range raw {
		w.Brushes[i] = Brush{
			FirstSide: int(b.FirstSide),
			SideCount: int(b.SideCount),
			Shader:    int(b.Shader),
		}
	}
	return nil
}

func loadBrushSides(l *loader, w *World) error {
	raw, err := readLump[rawBrushSide](l, lumpBrushSides)
	if err != nil {
		return err
	}
	w.BrushSides = make([]BrushSide, len(raw))
	for i, s := range raw {
		w.BrushSides[i] = BrushSide{Plane: int(s.Plane), Shader: int(s.Shader)}
	}
	return nil
}

func loadVertexes(l *loader, w *World) error {
	raw, err := readLump[rawVertex](l, lumpVertexes)
	if err != nil {
		return err
	}
	w.Vertices = make([]Vertex, len(raw))
	for i, r := range raw {
		v := &w.Vertices[i]
		v.Position = r.Position
		v.TexCoord = r.TexCoord
		v.LMCoord[0] = r.LMCoord
		v.Normal = r.Normal
		v.Color[0] = r.Color
	}
	return nil
}

func loadMeshVerts(l *loader, w *World) error {
	raw, err := readLump[uint32](l, lumpMeshVerts)
	if err != nil {
		return err
	}
	w.Indices = raw
	return nil
}

func loadEffects(l *loader, w *World) error {
	raw, err := readLump[rawEffect](l, lumpEffects)
	if err != nil {
		return err
	}
	w.Effects = make([]Effect, len(raw))
	for i := range raw {
		w.Effects[i] = Effect{Name: cString(raw[i].Name[:]), Brush: int(raw[i].Brush)}
	}
	return nil
}

func loadFaces(l *loader, w *World) error {
	raw, err := readLump[rawFace](l, lumpFaces)
	if err != nil {
		return err
	}
	w.Faces = make([]Face, len(raw))
	for i := range raw {
		r := &raw[i]
		f := &w.Faces[i]
		*f = Face{
			Type:        FaceType(r.Type),
			Shader:      int(r.Shader),
			Effect:      int(r.Effect),
			FirstVertex: int(r.FirstVertex),
			VertexCount: int(r.VertexCount),
			FirstIndex:  int(r.FirstMeshVert),
			IndexCount:  int(r.MeshVertCount),
			PatchSize:   [2]int{int(r.Size[0]), int(r.Size[1])},
		}
		// resolved to real slots once the lightmaps are loaded
		f.Lightmaps[0] = int(r.Lightmap)
		for s := 1; s < MaxLightmaps; s++ {
			f.Lightmaps[s] = lightmapNone
		}
	}
	return nil
}

func loadLightmaps(l *loader, w *World) error {
	b := l.lump(lumpLightmaps)
	if len(b)%lightmapSize != 0 {
		return errors.Wrapf(ErrBadLump, "size %d is not a multiple of %d", len(b), lightmapSize)
	}
	n := len(b) / lightmapSize
	w.Lightmaps = make([]Lightmap, 0, n+syntheticLightmaps)
	for i := 0; i < n; i++ {
		w.Lightmaps = append(w.Lightmaps, expandLightmap(b[i*lightmapSize:(i+1)*lightmapSize]))
	}
	byVertex := len(w.Lightmaps)
	w.Lightmaps = append(w.Lightmaps, solidLightmap(85))
	dark := len(w.Lightmaps)
	w.Lightmaps = append(w.Lightmaps, solidLightmap(0))
	white := len(w.Lightmaps)
	w.Lightmaps = append(w.Lightmaps, solidLightmap(255))

	for i := range w.Faces {
		f := &w.Faces[i]
		for s := range f.Lightmaps {
			switch lm := f.Lightmaps[s]; {
			case s > 0:
				f.Lightmaps[s] = dark
			case lm == lightmapByVertex:
				f.Lightmaps[s] = byVertex
			case lm == lightmapWhite:
				f.Lightmaps[s] = white
			case lm < 0 || lm >= n:
				f.Lightmaps[s] = dark
			}
		}
	}
	return nil
}

func expandLightmap(rgb []byte) Lightmap {
	m := Lightmap{Width: lightmapWidth, Height: lightmapHeight}
	m.RGBA = make([]byte, 0, lightmapWidth*lightmapHeight*4)
	for i := 0; i < len(rgb); i += 3 {
		m.RGBA = append(m.RGBA, rgb[i], rgb[i+1], rgb[i+2], 255)
	}
	return m
}

func solidLightmap(c byte) Lightmap {
	return Lightmap{Width: 1, Height: 1, RGBA: []byte{c, c, c, 255}}
}

func loadLightVols(l *loader, w *World) error {
	raw, err := readLump[rawLightVol](l, lumpLightVols)
	if err != nil {
		return err
	}
	w.LightVols = make([]LightVol, len(raw))
	for i := range raw {
		w.LightVols[i] = decodeLightVol(&raw[i])
	}
	return nil
}

func loadVisData(l *loader, w *World) error {
	b := l.lump(lumpVisData)
	if len(b) == 0 {
		return nil
	}
	r := bytes.NewReader(b)
	var hdr struct {
		Clusters        int32
		BytesPerCluster int32
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	if hdr.Clusters < 0 || hdr.BytesPerCluster < 0 {
		return errors.Wrapf(ErrBadLump, "bad dimensions %d x %d", hdr.Clusters, hdr.BytesPerCluster)
	}
	size := int(hdr.Clusters) * int(hdr.BytesPerCluster)
	if size > r.Len() {
		return errors.Wrapf(io.ErrUnexpectedEOF, "%d bytes of visibility expected, %d left", size, r.Len())
	}
	bits := make([]byte, size)
	if _, err := io.ReadFull(r, bits); err != nil {
		return err
	}
	w.Vis = VisData{
		ClusterCount:    int(hdr.Clusters),
		BytesPerCluster: int(hdr.BytesPerCluster),
		Bits:            bits,
	}
	return nil
}

// rebaseMeshIndices turns the face relative mesh vertex offsets of polygons
// and meshes into absolute vertex indices. The vertex ranges of patches are
// checked here since tesselation reads them before Validate runs.
func (w *World) rebaseMeshIndices() error {
	for i := range w.Faces {
		f := &w.Faces[i]
		if f.FirstVertex < 0 || f.VertexCount < 0 || f.FirstVertex+f.VertexCount > len(w.Vertices) {
			return errors.Errorf("face %d: vertices %d+%d out of range", i, f.FirstVertex, f.VertexCount)
		}
		if f.Type == FacePatch {
			if err := checkPatchSize(f); err != nil {
				return errors.Wrapf(err, "face %d", i)
			}
			continue
		}
		if f.FirstIndex < 0 || f.IndexCount < 0 || f.FirstIndex+f.IndexCount > len(w.Indices) {
			return errors.Errorf("face %d: indices %d+%d out of range", i, f.FirstIndex, f.IndexCount)
		}
		base := uint32(f.FirstVertex)
		for j := f.FirstIndex; j < f.FirstIndex+f.IndexCount; j++ {
			w.Indices[j] += base
		}
	}
	return nil
}
