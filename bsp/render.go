// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"q3world/math/vec"
)

// Frustum rejects bounding boxes outside of the view volume.
type Frustum interface {
	// CullBox returns true if the box is completely outside the frustum
	CullBox(mins, maxs vec.Vec3) bool
}

// DrawCommand is one indexed triangle draw of a face.
type DrawCommand struct {
	Face       int
	Shader     int
	Lightmaps  [MaxLightmaps]int
	FirstIndex int
	IndexCount int
	// Blend is set for the commands of the transparent pass.
	Blend bool
}

// RenderPass holds the per frame state of the visibility walk. It is owned
// by a single goroutine and reused across frames.
type RenderPass struct {
	Origin  vec.Vec3
	Cluster int
	// NoVis ignores the potentially visible set.
	NoVis bool

	frustum  Frustum
	drawn    []uint64
	commands []DrawCommand
	opaque   int
}

func NewRenderPass(w *World) *RenderPass {
	return &RenderPass{
		drawn: make([]uint64, (len(w.Faces)+63)/64),
	}
}

func (p *RenderPass) reset(origin vec.Vec3, f Frustum) {
	p.Origin = origin
	p.frustum = f
	clear(p.drawn)
	p.commands = p.commands[:0]
	p.opaque = 0
}

func (p *RenderPass) markDrawn(face int) bool {
	w, b := face>>6, uint64(1)<<(face&63)
	if p.drawn[w]&b != 0 {
		return false
	}
	p.drawn[w] |= b
	return true
}

// Commands returns the draw commands of the last frame, opaque ones first.
func (p *RenderPass) Commands() []DrawCommand {
	return p.commands
}

func (p *RenderPass) Opaque() []DrawCommand {
	return p.commands[:p.opaque]
}

func (p *RenderPass) Blended() []DrawCommand {
	return p.commands[p.opaque:]
}

// RenderWorld collects the faces visible from origin. The first pass walks
// the tree front to back and emits non transparent faces, the second one
// walks back to front and emits transparent faces. Every face is emitted at
// most once per call even if several leaves reference it.
func (w *World) RenderWorld(p *RenderPass, origin vec.Vec3, f Frustum) []DrawCommand {
	p.reset(origin, f)
	if len(w.Leafs) == 0 {
		return p.commands
	}
	p.Cluster = w.LeafCluster(origin)

	w.renderNode(w.Root(), p, true, 0)
	p.opaque = len(p.commands)
	instrumentFacesEmitted(passOpaque, p.opaque)

	w.renderNode(w.Root(), p, false, 0)
	instrumentFacesEmitted(passBlend, len(p.commands)-p.opaque)
	return p.commands
}

func (w *World) renderNode(c Child, p *RenderPass, solid bool, depth int) {
	if depth > MaxTreeDepth {
		return
	}
	if c.IsLeaf() {
		w.renderLeaf(c.Index, p, solid)
		return
	}
	n := &w.Nodes[c.Index]
	if p.frustum.CullBox(vec.FromInt(n.Mins), vec.FromInt(n.Maxs)) {
		instrumentNodeCulled()
		return
	}
	front := w.Planes[n.Plane].Front(p.Origin)
	if front == solid {
		w.renderNode(n.Children[0], p, solid, depth+1)
		w.renderNode(n.Children[1], p, solid, depth+1)
	} else {
		w.renderNode(n.Children[1], p, solid, depth+1)
		w.renderNode(n.Children[0], p, solid, depth+1)
	}
}

func (w *World) renderLeaf(idx int, p *RenderPass, solid bool) {
	l := &w.Leafs[idx]
	if !p.NoVis && !w.Vis.Visible(l.Cluster, p.Cluster) {
		instrumentLeafCulled(cullPVS)
		return
	}
	if p.frustum.CullBox(vec.FromInt(l.Mins), vec.FromInt(l.Maxs)) {
		instrumentLeafCulled(cullFrustum)
		return
	}
	for _, f := range w.LeafFaces[l.FirstFace : l.FirstFace+l.FaceCount] {
		w.renderFace(f, p, solid)
	}
}

func (w *World) renderFace(idx int, p *RenderPass, solid bool) {
	f := &w.Faces[idx]
	s := &w.Shaders[f.Shader]
	if s.Transparent == solid || !s.Render {
		return
	}
	if !p.markDrawn(idx) {
		return
	}
	p.commands = append(p.commands, DrawCommand{
		Face:       idx,
		Shader:     f.Shader,
		Lightmaps:  f.Lightmaps,
		FirstIndex: f.FirstIndex,
		IndexCount: f.IndexCount,
		Blend:      !solid,
	})
}
