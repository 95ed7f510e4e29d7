// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"q3world/math/vec"
)

func TestNewLightGrid(t *testing.T) {
	g := newLightGrid(&Model{
		Mins: vec.Vec3{-100, 0, -10},
		Maxs: vec.Vec3{200, 64, 300},
	})
	require.Equal(t, [3]int{-1, 0, 0}, g.origin)
	// floor(max/cell) - ceil(min/cell) + 1
	require.Equal(t, [3]int{3 - -1 + 1, 1 + 1, 2 + 1}, g.size)
}

func TestLightSample(t *testing.T) {
	w := &World{Models: []Model{{Maxs: vec.Vec3{128, 128, 128}}}}
	w.lightGrid = newLightGrid(&w.Models[0])
	w.LightVols = make([]LightVol, 3*3*2)
	for i := range w.LightVols {
		w.LightVols[i].Ambient[0][0] = float32(i)
	}
	tests := []struct {
		p    vec.Vec3
		want int
	}{
		{vec.Vec3{0, 0, 0}, 0},
		{vec.Vec3{70, 0, 0}, 1},
		{vec.Vec3{0, 64, 0}, 3},
		{vec.Vec3{127, 127, 127}, 1 + 3 + 0},
		{vec.Vec3{128, 128, 128}, 2 + 2*3 + 9},
		// clamped to the grid
		{vec.Vec3{-500, 1000, 1000}, 0 + 2*3 + 9},
		{vec.Vec3{9000, -9000, -9000}, 2},
	}
	for _, tc := range tests {
		got := w.LightSample(tc.p)
		require.Equal(t, float32(tc.want), got.Ambient[0][0], "LightSample(%v)", tc.p)
	}
}

func TestLightSampleEmpty(t *testing.T) {
	w := newTestWorld()
	require.Equal(t, LightVol{}, w.LightSample(vec.Vec3{1, 2, 3}))
}

func TestDecodeLightVol(t *testing.T) {
	l := decodeLightVol(&rawLightVol{
		Ambient:     [3]byte{0, 128, 255},
		Directional: [3]byte{64, 0, 0},
		Direction:   [2]byte{0, 0},
	})
	require.InDeltaSlice(t, []float32{0, 0.5, 255.0 / 256}, l.Ambient[0][:], 1e-6)
	require.InDeltaSlice(t, []float32{0.25, 0, 0}, l.Directional[0][:], 1e-6)
	require.InDeltaSlice(t, []float32{0, 0, 1}, l.Direction[:], 1e-6)

	// longitude a quarter turn, latitude a quarter turn
	l = decodeLightVol(&rawLightVol{Direction: [2]byte{64, 64}})
	require.InDeltaSlice(t, []float32{0, 1, 0}, l.Direction[:], 1e-6)
}
