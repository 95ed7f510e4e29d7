// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/chewxy/math32"

	"q3world/math"
)

// PatchVertexCount is the number of vertices one 3x3 patch produces.
func PatchVertexCount(level int) int {
	return (level + 1) * (level + 1)
}

// PatchIndexCount is the number of triangle indices one 3x3 patch produces.
func PatchIndexCount(level int) int {
	return 6 * level * level
}

// bezier evaluates the quadratic curve through a, b, c at t.
func bezier(a, b, c *Vertex, t float32) Vertex {
	s := 1 - t
	wa, wb, wc := s*s, 2*s*t, t*t
	v := a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc))
	for i := range v.Color {
		for ch := range v.Color[i] {
			f := wa*float32(a.Color[i][ch]) + wb*float32(b.Color[i][ch]) + wc*float32(c.Color[i][ch])
			v.Color[i][ch] = uint8(math.Clamp(0, math32.Round(f), 255))
		}
	}
	return v
}

// Tesselate appends the (level+1)^2 vertices and 6*level^2 indices of the
// biquadratic patch defined by the row major control grid to verts and idx.
// The indices reference the appended vertices.
func Tesselate(verts []Vertex, idx []uint32, controls *[9]Vertex, level int) ([]Vertex, []uint32) {
	base := uint32(len(verts))
	l1 := level + 1
	var row [3]Vertex
	for i := 0; i <= level; i++ {
		u := float32(i) / float32(level)
		for r := 0; r < 3; r++ {
			row[r] = bezier(&controls[3*r], &controls[3*r+1], &controls[3*r+2], u)
		}
		for j := 0; j <= level; j++ {
			v := float32(j) / float32(level)
			verts = append(verts, bezier(&row[0], &row[1], &row[2], v))
		}
	}
	for i := 0; i < level; i++ {
		for j := 0; j < level; j++ {
			a := base + uint32(i*l1+j)
			b := base + uint32(i*l1+j+1)
			c := base + uint32((i+1)*l1+j+1)
			d := base + uint32((i+1)*l1+j)
			idx = append(idx, a, b, c, c, d, a)
		}
	}
	return verts, idx
}

// tesselatePatches replaces the index range of every patch face with the
// triangles of its subdivided control grid. Only called while loading.
func (w *World) tesselatePatches(level int) {
	if level < 1 {
		level = DefaultSubdivisions
	}
	for i := range w.Faces {
		if f := &w.Faces[i]; f.Type == FacePatch {
			w.tesselateFace(f, level)
		}
	}
}

func (w *World) tesselateFace(f *Face, level int) {
	width := f.PatchSize[0]
	nx := (f.PatchSize[0] - 1) / 2
	ny := (f.PatchSize[1] - 1) / 2

	f.FirstIndex = len(w.Indices)
	var controls [9]Vertex
	for n := 0; n < nx; n++ {
		for m := 0; m < ny; m++ {
			first := f.FirstVertex + 2*n + 2*m*width
			for r := 0; r < 3; r++ {
				copy(controls[3*r:3*r+3], w.Vertices[first+r*width:first+r*width+3])
			}
			w.Vertices, w.Indices = Tesselate(w.Vertices, w.Indices, &controls, level)
			instrumentPatchTesselated()
		}
	}
	f.IndexCount = len(w.Indices) - f.FirstIndex
}
