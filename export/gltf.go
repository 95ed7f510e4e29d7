// SPDX-License-Identifier: GPL-2.0-or-later

// Package export writes the tesselated world geometry to glTF.
package export

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"q3world/bsp"
)

// Document converts the renderable faces of w into a glTF document with a
// single mesh. Each used shader becomes one material and one primitive.
// Positions are rotated from the z up map space into the y up glTF space.
func Document(w *bsp.World) (*gltf.Document, error) {
	groups := make([][]uint32, len(w.Shaders))
	for i := range w.Faces {
		f := &w.Faces[i]
		s := &w.Shaders[f.Shader]
		if !s.Render || f.IndexCount == 0 {
			continue
		}
		idx := w.Indices[f.FirstIndex : f.FirstIndex+f.IndexCount]
		// the map winding is clockwise
		for t := 0; t+2 < len(idx); t += 3 {
			groups[f.Shader] = append(groups[f.Shader], idx[t], idx[t+2], idx[t+1])
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "q3world"
	if len(w.Vertices) == 0 {
		return nil, errors.Errorf("%s has no vertices", w.Name())
	}
	pos := make([][3]float32, len(w.Vertices))
	nrm := make([][3]float32, len(w.Vertices))
	tex := make([][2]float32, len(w.Vertices))
	for i := range w.Vertices {
		v := &w.Vertices[i]
		pos[i] = [3]float32{v.Position[0], v.Position[2], -v.Position[1]}
		nrm[i] = [3]float32{v.Normal[0], v.Normal[2], -v.Normal[1]}
		tex[i] = v.TexCoord
	}
	attrs := gltf.PrimitiveAttributes{
		gltf.POSITION:   modeler.WritePosition(doc, pos),
		gltf.NORMAL:     modeler.WriteNormal(doc, nrm),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, tex),
	}

	mesh := &gltf.Mesh{Name: w.Name()}
	for s, idx := range groups {
		if len(idx) == 0 {
			continue
		}
		mat := len(doc.Materials)
		doc.Materials = append(doc.Materials, material(&w.Shaders[s]))
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Indices:    gltf.Index(modeler.WriteIndices(doc, idx)),
			Attributes: attrs,
			Material:   gltf.Index(mat),
			Mode:       gltf.PrimitiveTriangles,
		})
	}
	if len(mesh.Primitives) == 0 {
		return nil, errors.Errorf("%s has no renderable faces", w.Name())
	}
	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: w.Name(), Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return doc, nil
}

func material(s *bsp.Shader) *gltf.Material {
	m := &gltf.Material{
		Name: s.Name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{0.8, 0.8, 0.8, 1},
			MetallicFactor:  gltf.Float(0),
		},
	}
	if s.Transparent {
		m.AlphaMode = gltf.AlphaBlend
		m.PBRMetallicRoughness.BaseColorFactor[3] = 0.5
		m.DoubleSided = true
	}
	return m
}

// WriteGLB writes the world as binary glTF to path.
func WriteGLB(w *bsp.World, path string) error {
	doc, err := Document(w)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	return nil
}
