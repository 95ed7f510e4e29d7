// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/chewxy/math32"

	"q3world/math"
	"q3world/math/vec"
)

// size of a light volume cell in world units
var lightGridCell = vec.Vec3{64, 64, 128}

type lightGrid struct {
	origin [3]int // ceil(mins / cell) of model 0
	size   [3]int
}

func newLightGrid(m *Model) lightGrid {
	var g lightGrid
	for i := 0; i < 3; i++ {
		lo := int(math32.Ceil(m.Mins[i] / lightGridCell[i]))
		hi := int(math32.Floor(m.Maxs[i] / lightGridCell[i]))
		g.origin[i] = lo
		g.size[i] = hi - lo + 1
	}
	return g
}

// decodeLightVol converts a sample of the file. Colors are scaled to [0,1),
// the direction is stored as longitude and latitude in 1/256 turns.
func decodeLightVol(r *rawLightVol) LightVol {
	var l LightVol
	for i := 0; i < 3; i++ {
		l.Ambient[0][i] = float32(r.Ambient[i]) / 256
		l.Directional[0][i] = float32(r.Directional[i]) / 256
	}
	const turn = 2 * math32.Pi / 256
	lng := float32(r.Direction[0]) * turn
	lat := float32(r.Direction[1]) * turn
	sl, cl := math32.Sincos(lat)
	sn, cn := math32.Sincos(lng)
	l.Direction = vec.Vec3{cl * sn, sl * sn, cn}.Normalize()
	return l
}

// LightSample returns the light volume sample of the grid cell containing p.
// Points outside of the grid use the closest cell. Without light volumes
// the zero sample is returned.
func (w *World) LightSample(p vec.Vec3) LightVol {
	g := &w.lightGrid
	if len(w.LightVols) == 0 || g.size[0] <= 0 || g.size[1] <= 0 || g.size[2] <= 0 {
		return LightVol{}
	}
	var cell [3]int
	for i := 0; i < 3; i++ {
		c := int(math32.Floor(p[i]/lightGridCell[i])) - g.origin[i]
		cell[i] = math.Clamp(0, c, g.size[i]-1)
	}
	idx := cell[0] + cell[1]*g.size[0] + cell[2]*g.size[0]*g.size[1]
	if idx >= len(w.LightVols) {
		return LightVol{}
	}
	return w.LightVols[idx]
}
