// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"q3world/math/vec"
)

// TracePass holds the state of one sphere trace. It is owned by a single
// goroutine and may be reused for consecutive traces.
type TracePass struct {
	// Position is corrected while the trace runs.
	Position    vec.Vec3
	OldPosition vec.Vec3
	Radius      float32

	tested []uint64
}

func NewTracePass(w *World) *TracePass {
	return &TracePass{
		tested: make([]uint64, (len(w.Brushes)+63)/64),
	}
}

func (t *TracePass) reset(pos, oldPos vec.Vec3, radius float32) {
	t.Position = pos
	t.OldPosition = oldPos
	t.Radius = radius
	clear(t.tested)
}

func (t *TracePass) markTested(brush int) bool {
	w, b := brush>>6, uint64(1)<<(brush&63)
	if t.tested[w]&b != 0 {
		return false
	}
	t.tested[w] |= b
	return true
}

// TraceSphere moves a sphere of the given radius from oldPos to pos and
// returns pos with the penetration of solid brushes removed. Each brush
// pushes the sphere out along at most one of its planes.
func (w *World) TraceSphere(t *TracePass, pos, oldPos vec.Vec3, radius float32) vec.Vec3 {
	t.reset(pos, oldPos, radius)
	if len(w.Leafs) == 0 {
		return pos
	}
	w.traceNode(w.Root(), t, 0)
	return t.Position
}

// TraceWorld is TraceSphere with a fresh TracePass.
func (w *World) TraceWorld(pos, oldPos vec.Vec3, radius float32) vec.Vec3 {
	return w.TraceSphere(NewTracePass(w), pos, oldPos, radius)
}

func (w *World) traceNode(c Child, t *TracePass, depth int) {
	if depth > MaxTreeDepth {
		return
	}
	if c.IsLeaf() {
		l := &w.Leafs[c.Index]
		for _, b := range w.LeafBrushes[l.FirstBrush : l.FirstBrush+l.BrushCount] {
			w.traceBrush(b, t)
		}
		return
	}
	n := &w.Nodes[c.Index]
	d := w.Planes[n.Plane].Distance(t.Position)
	// near the plane both sides are visited
	if d > -t.Radius {
		w.traceNode(n.Children[0], t, depth+1)
	}
	if d < t.Radius {
		w.traceNode(n.Children[1], t, depth+1)
	}
}

func (w *World) traceBrush(idx int, t *TracePass) {
	if !t.markTested(idx) {
		return
	}
	b := &w.Brushes[idx]
	if !w.Shaders[b.Shader].Solid {
		return
	}

	var colliding *Plane
	var collidingDist float32

	for _, side := range w.BrushSides[b.FirstSide : b.FirstSide+b.SideCount] {
		plane := &w.Planes[side.Plane]
		// Only sides the sphere was clear of before the move can stop it.
		if plane.Distance(t.OldPosition) < t.Radius {
			continue
		}
		d := plane.Distance(t.Position) - t.Radius
		if d > 0 {
			// outside of the brush, non solid sides bound it as well
			return
		}
		if !w.Shaders[side.Shader].Solid {
			continue
		}
		if colliding == nil || d > collidingDist {
			colliding = plane
			collidingDist = d
		}
	}

	if colliding == nil {
		return
	}
	t.Position = vec.Sub(t.Position, vec.Scale(collidingDist, colliding.Normal))
	instrumentBrushCorrection()
}
