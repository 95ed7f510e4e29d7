// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

// content flags of a shader
const (
	ContentsSolid       = 0x1
	ContentsLava        = 0x8
	ContentsSlime       = 0x10
	ContentsWater       = 0x20
	ContentsFog         = 0x40
	ContentsAreaPortal  = 0x8000
	ContentsPlayerClip  = 0x10000
	ContentsMonsterClip = 0x20000
	ContentsTeleporter  = 0x40000
	ContentsJumpPad     = 0x80000
	ContentsDetail      = 0x8000000
	ContentsStructural  = 0x10000000
	ContentsTranslucent = 0x20000000
	ContentsTrigger     = 0x40000000
)

// surface flags of a shader
const (
	SurfaceNoDamage = 0x1
	SurfaceSlick    = 0x2
	SurfaceSky      = 0x4
	SurfaceLadder   = 0x8
	SurfaceNoImpact = 0x10
	SurfaceNoMarks  = 0x20
	SurfaceFlesh    = 0x40
	SurfaceNoDraw   = 0x80
	SurfaceHint     = 0x100
	SurfaceSkip     = 0x200
	SurfaceNonSolid = 0x4000
)

// Shader is the material of faces and brushes. Only Render, Transparent and
// Solid influence the world queries.
type Shader struct {
	Name     string
	Surface  uint32
	Contents uint32

	// Render false skips every face using this shader.
	Render bool
	// Transparent faces are drawn in the blended pass.
	Transparent bool
	// Solid brushes and brush sides take part in collision.
	Solid bool
	// NoDraw shaders have no texture.
	NoDraw bool
}

// NewShader classifies a shader by its name and flags.
func NewShader(name string, surface, contents uint32) Shader {
	s := Shader{
		Name:     name,
		Surface:  surface,
		Contents: contents,
		Render:   true,
		Solid:    true,
	}
	if surface&SurfaceNonSolid != 0 {
		s.Solid = false
	}
	if contents&ContentsPlayerClip != 0 {
		s.Solid = true
	}
	if contents&ContentsTranslucent != 0 {
		s.Transparent = true
	}
	if contents&(ContentsLava|ContentsSlime|ContentsWater|ContentsFog) != 0 {
		s.Render = false
	}
	if name == "noshader" {
		s.Render = false
	}
	s.NoDraw = surface&SurfaceNoDraw != 0
	return s
}
