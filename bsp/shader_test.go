// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"testing"
)

func TestNewShader(t *testing.T) {
	tests := []struct {
		name                       string
		surface, contents          uint32
		render, solid, transparent bool
	}{
		{"textures/base/wall", 0, ContentsSolid, true, true, false},
		{"textures/base/nosolid", SurfaceNonSolid, 0, true, false, false},
		{"textures/common/clip", SurfaceNonSolid | SurfaceNoDraw, ContentsPlayerClip, true, true, false},
		{"textures/base/glass", 0, ContentsTranslucent, true, true, true},
		{"textures/liquids/lava", SurfaceNonSolid, ContentsLava, false, false, false},
		{"textures/liquids/slime", 0, ContentsSlime | ContentsTranslucent, false, true, true},
		{"textures/liquids/water", 0, ContentsWater, false, true, false},
		{"textures/fog/mist", 0, ContentsFog, false, true, false},
		{"noshader", 0, 0, false, true, false},
	}
	for _, tc := range tests {
		s := NewShader(tc.name, tc.surface, tc.contents)
		if s.Render != tc.render || s.Solid != tc.solid || s.Transparent != tc.transparent {
			t.Errorf("NewShader(%q) = render %v solid %v transparent %v, want %v %v %v",
				tc.name, s.Render, s.Solid, s.Transparent, tc.render, tc.solid, tc.transparent)
		}
	}
	if s := NewShader("textures/common/clip", SurfaceNoDraw, 0); !s.NoDraw {
		t.Errorf("NoDraw not set")
	}
}
