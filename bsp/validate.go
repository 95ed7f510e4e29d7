// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"
)

var (
	ErrBadIndex = errors.New("index out of range")
	ErrBadTree  = errors.New("malformed tree")
)

func checkRange(what string, i, n int) error {
	if i < 0 || i >= n {
		return errors.Wrapf(ErrBadIndex, "%s %d not in [0,%d)", what, i, n)
	}
	return nil
}

func checkSpan(what string, first, count, n int) error {
	if first < 0 || count < 0 || first+count > n {
		return errors.Wrapf(ErrBadIndex, "%s %d+%d exceed %d", what, first, count, n)
	}
	return nil
}

func checkPatchSize(f *Face) error {
	w, h := f.PatchSize[0], f.PatchSize[1]
	if w < 3 || h < 3 || w%2 == 0 || h%2 == 0 {
		return errors.Errorf("patch size %dx%d is not odd and at least 3", w, h)
	}
	if w*h > f.VertexCount {
		return errors.Errorf("patch size %dx%d needs more than %d vertices", w, h, f.VertexCount)
	}
	return nil
}

// Validate checks every cross reference of the store and the shape of the
// tree. Queries on a store that passed never index out of range.
func (w *World) Validate() error {
	if err := w.validateTree(); err != nil {
		return err
	}
	for i, n := range w.Nodes {
		if err := checkRange("plane", n.Plane, len(w.Planes)); err != nil {
			return errors.Wrapf(err, "node %d", i)
		}
	}
	for i, l := range w.Leafs {
		if err := checkSpan("leaf faces", l.FirstFace, l.FaceCount, len(w.LeafFaces)); err != nil {
			return errors.Wrapf(err, "leaf %d", i)
		}
		if err := checkSpan("leaf brushes", l.FirstBrush, l.BrushCount, len(w.LeafBrushes)); err != nil {
			return errors.Wrapf(err, "leaf %d", i)
		}
	}
	for i, f := range w.LeafFaces {
		if err := checkRange("face", f, len(w.Faces)); err != nil {
			return errors.Wrapf(err, "leaf face %d", i)
		}
	}
	for i, b := range w.LeafBrushes {
		if err := checkRange("brush", b, len(w.Brushes)); err != nil {
			return errors.Wrapf(err, "leaf brush %d", i)
		}
	}
	for i, b := range w.Brushes {
		if err := checkRange("shader", b.Shader, len(w.Shaders)); err != nil {
			return errors.Wrapf(err, "brush %d", i)
		}
		if err := checkSpan("sides", b.FirstSide, b.SideCount, len(w.BrushSides)); err != nil {
			return errors.Wrapf(err, "brush %d", i)
		}
	}
	for i, s := range w.BrushSides {
		if err := checkRange("plane", s.Plane, len(w.Planes)); err != nil {
			return errors.Wrapf(err, "brush side %d", i)
		}
		if err := checkRange("shader", s.Shader, len(w.Shaders)); err != nil {
			return errors.Wrapf(err, "brush side %d", i)
		}
	}
	for i := range w.Faces {
		if err := w.validateFace(&w.Faces[i]); err != nil {
			return errors.Wrapf(err, "face %d", i)
		}
	}
	if v := &w.Vis; len(v.Bits) != 0 && len(v.Bits) < v.ClusterCount*v.BytesPerCluster {
		return errors.Wrapf(ErrBadIndex, "visibility has %d of %d bytes", len(v.Bits), v.ClusterCount*v.BytesPerCluster)
	}
	for i, l := range w.Leafs {
		if l.Cluster >= w.Vis.ClusterCount && len(w.Vis.Bits) != 0 {
			return errors.Wrapf(ErrBadIndex, "leaf %d: cluster %d of %d", i, l.Cluster, w.Vis.ClusterCount)
		}
	}
	if len(w.Vis.Bits) != 0 && w.Vis.ClusterCount > w.Vis.BytesPerCluster*8 {
		return errors.Wrapf(ErrBadIndex, "%d clusters do not fit into %d bytes", w.Vis.ClusterCount, w.Vis.BytesPerCluster)
	}
	return nil
}

func (w *World) validateFace(f *Face) error {
	if err := checkRange("shader", f.Shader, len(w.Shaders)); err != nil {
		return err
	}
	if err := checkSpan("vertices", f.FirstVertex, f.VertexCount, len(w.Vertices)); err != nil {
		return err
	}
	if err := checkSpan("indices", f.FirstIndex, f.IndexCount, len(w.Indices)); err != nil {
		return err
	}
	for _, idx := range w.Indices[f.FirstIndex : f.FirstIndex+f.IndexCount] {
		if err := checkRange("vertex", int(idx), len(w.Vertices)); err != nil {
			return err
		}
	}
	for _, lm := range f.Lightmaps {
		if err := checkRange("lightmap", lm, len(w.Lightmaps)); err != nil && len(w.Lightmaps) != 0 {
			return err
		}
	}
	if f.Type == FacePatch {
		return checkPatchSize(f)
	}
	return nil
}

// validateTree walks the tree from the root and rejects references out of
// range, nodes reachable on more than one path and trees deeper than
// MaxTreeDepth.
func (w *World) validateTree() error {
	if len(w.Nodes) == 0 {
		if len(w.Leafs) == 0 && len(w.Faces) != 0 {
			return errors.Wrap(ErrBadTree, "faces without leafs")
		}
		return nil
	}
	type entry struct {
		node  int
		depth int
	}
	seen := make([]bool, len(w.Nodes))
	seen[0] = true
	stack := []entry{{0, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.depth >= MaxTreeDepth {
			return errors.Wrapf(ErrBadTree, "deeper than %d", MaxTreeDepth)
		}
		for _, c := range w.Nodes[e.node].Children {
			if c.IsLeaf() {
				if err := checkRange("leaf", c.Index, len(w.Leafs)); err != nil {
					return errors.Wrapf(err, "node %d", e.node)
				}
				continue
			}
			if err := checkRange("child", c.Index, len(w.Nodes)); err != nil {
				return errors.Wrapf(err, "node %d", e.node)
			}
			if seen[c.Index] {
				return errors.Wrapf(ErrBadTree, "node %d is referenced twice", c.Index)
			}
			seen[c.Index] = true
			stack = append(stack, entry{c.Index, e.depth + 1})
		}
	}
	return nil
}
