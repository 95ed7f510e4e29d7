// SPDX-License-Identifier: GPL-2.0-or-later

package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"q3world/math/vec"
)

type fPlane struct {
	signBits uint8 // caching of plane side tests
	normal   vec.Vec3
	dist     float32
}

func (p *fPlane) updateSignBits() {
	p.signBits = 0
	if p.normal[0] < 0 {
		p.signBits |= 1 << 0
	}
	if p.normal[1] < 0 {
		p.signBits |= 1 << 1
	}
	if p.normal[2] < 0 {
		p.signBits |= 1 << 2
	}
}

// Frustum is the view volume of a view-projection matrix. Its zero value
// culls nothing.
type Frustum struct {
	planes [6]fPlane
	n      int
}

// NewFrustum extracts the left, right, bottom, top, near and far planes of
// m with the Gribb/Hartmann method. The normals point into the volume.
func NewFrustum(m mgl32.Mat4) *Frustum {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	f := &Frustum{n: 6}
	for i, p := range [6]mgl32.Vec4{
		r3.Add(r0), r3.Sub(r0),
		r3.Add(r1), r3.Sub(r1),
		r3.Add(r2), r3.Sub(r2),
	} {
		n := vec.Vec3{p[0], p[1], p[2]}
		l := n.Length()
		if l == 0 {
			continue
		}
		f.planes[i].normal = vec.Scale(1/l, n)
		f.planes[i].dist = -p[3] / l
		f.planes[i].updateSignBits()
	}
	return f
}

// CullBox returns true if the box is completely outside the frustum
func (f *Frustum) CullBox(mins, maxs vec.Vec3) bool {
	for _, p := range f.planes[:f.n] {
		// corner furthest along the normal
		c := maxs
		if p.signBits&(1<<0) != 0 {
			c[0] = mins[0]
		}
		if p.signBits&(1<<1) != 0 {
			c[1] = mins[1]
		}
		if p.signBits&(1<<2) != 0 {
			c[2] = mins[2]
		}
		if vec.Dot(p.normal, c) < p.dist {
			return true
		}
	}
	return false
}
