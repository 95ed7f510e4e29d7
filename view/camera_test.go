// SPDX-License-Identifier: GPL-2.0-or-later

package view

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"

	"q3world/math/vec"
)

func TestCameraTurn(t *testing.T) {
	c := NewCamera(vec.Vec3{}, 350, 90, 640, 480)
	c.Turn(20, 120)
	require.InDelta(t, 10, c.Yaw, 0.01)
	require.Equal(t, float32(maxPitch), c.Pitch)
	c.Turn(0, -500)
	require.Equal(t, float32(-maxPitch), c.Pitch)
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(vec.Vec3{1, 2, 3}, 90, 90, 640, 480)
	got := c.Move(10, 0, 0)
	require.InDeltaSlice(t, []float32{1, 12, 3}, got[:], 1e-4)
	// the camera is only moved by the caller
	require.Equal(t, vec.Vec3{1, 2, 3}, c.Origin)
}

func TestCameraFovY(t *testing.T) {
	c := NewCamera(vec.Vec3{}, 0, 90, 100, 100)
	require.InDelta(t, math32.Pi/2, c.FovY(), 1e-5)
	c.Width = 200
	require.Less(t, c.FovY(), float32(math32.Pi/2))
}

func TestFrustumCullBox(t *testing.T) {
	c := NewCamera(vec.Vec3{}, 0, 90, 640, 480)
	f := c.Frustum()
	tests := []struct {
		name       string
		mins, maxs vec.Vec3
		cull       bool
	}{
		{"ahead", vec.Vec3{100, -5, -5}, vec.Vec3{110, 5, 5}, false},
		{"behind", vec.Vec3{-110, -5, -5}, vec.Vec3{-100, 5, 5}, true},
		{"left", vec.Vec3{10, 1000, -5}, vec.Vec3{20, 1010, 5}, true},
		{"above", vec.Vec3{10, -5, 1000}, vec.Vec3{20, 5, 1010}, true},
		{"beyond far plane", vec.Vec3{20000, -5, -5}, vec.Vec3{20010, 5, 5}, true},
		{"around camera", vec.Vec3{-10, -10, -10}, vec.Vec3{10, 10, 10}, false},
		{"huge", vec.Vec3{-1e4, -1e4, -1e4}, vec.Vec3{1e4, 1e4, 1e4}, false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.cull, f.CullBox(tc.mins, tc.maxs), tc.name)
	}

	c.Turn(180, 0)
	require.False(t, c.Frustum().CullBox(vec.Vec3{-110, -5, -5}, vec.Vec3{-100, 5, 5}))
}

func TestFrustumZero(t *testing.T) {
	var f Frustum
	require.False(t, f.CullBox(vec.Vec3{-1, -1, -1}, vec.Vec3{1, 1, 1}))
}
