// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"q3world/bsp"
)

const (
	vertexWorldSource = `
#version 410
layout (location = 0) in vec3 position;
layout (location = 1) in vec2 lmcoord;
layout (location = 2) in vec4 color;

uniform mat4 viewproj;

out vec2 LMCoord;
out vec4 Color;

void main() {
	LMCoord = lmcoord;
	Color = color;
	gl_Position = viewproj * vec4(position, 1.0);
}
` + "\x00"

	fragmentWorldSource = `
#version 410
in vec2 LMCoord;
in vec4 Color;

uniform sampler2D lightmaps[4];
uniform float alpha;

out vec4 frag_color;

void main() {
	vec3 light = texture(lightmaps[0], LMCoord).rgb;
	light += texture(lightmaps[1], LMCoord).rgb;
	light += texture(lightmaps[2], LMCoord).rgb;
	light += texture(lightmaps[3], LMCoord).rgb;
	frag_color = vec4(light * Color.rgb * 2.0, alpha);
}
` + "\x00"
)

// floats per vertex: position, lightmap coordinate, color
const vertexStride = 3 + 2 + 4

// WorldVertexData interleaves the attributes the world shader reads.
func WorldVertexData(w *bsp.World) []float32 {
	data := make([]float32, 0, len(w.Vertices)*vertexStride)
	for i := range w.Vertices {
		v := &w.Vertices[i]
		c := v.Color[0]
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.LMCoord[0][0], v.LMCoord[0][1],
			float32(c[0])/255, float32(c[1])/255, float32(c[2])/255, float32(c[3])/255,
		)
	}
	return data
}

// WorldDrawer holds the GPU copy of a world and executes its draw commands.
type WorldDrawer struct {
	vao       *VertexArray
	vbo       *Buffer
	ebo       *Buffer
	prog      *Program
	lightmaps []*Texture2D
	viewproj  Uniform
	alpha     Uniform
	lightmap  Uniform
}

// NewWorldDrawer uploads the vertices, indices and lightmaps of w. It must
// run on the main thread.
func NewWorldDrawer(w *bsp.World) (*WorldDrawer, error) {
	prog, err := NewProgram(vertexWorldSource, fragmentWorldSource)
	if err != nil {
		return nil, err
	}
	d := &WorldDrawer{
		vao:      NewVertexArray(),
		vbo:      NewBuffer(ArrayBuffer),
		ebo:      NewBuffer(ElementArrayBuffer),
		prog:     prog,
		viewproj: prog.Uniform("viewproj"),
		alpha:    prog.Uniform("alpha"),
		lightmap: prog.Uniform("lightmaps"),
	}
	d.vao.Bind()
	d.vbo.Bind()
	SetSlice(d.vbo, WorldVertexData(w))
	d.ebo.Bind()
	SetSlice(d.ebo, w.Indices)
	// position, lightmap coordinate, vertex color
	d.vao.FloatAttrib(0, 3, vertexStride, 0)
	d.vao.FloatAttrib(1, 2, vertexStride, 3)
	d.vao.FloatAttrib(2, 4, vertexStride, 5)
	gl.BindVertexArray(0)

	for _, lm := range w.Lightmaps {
		t := NewTexture2D()
		t.Bind()
		t.SetRGBA(lm.Width, lm.Height, lm.RGBA)
		d.lightmaps = append(d.lightmaps, t)
	}
	return d, nil
}

func SetupGLState() {
	gl.ClearColor(0.15, 0.15, 0.15, 0)
	gl.CullFace(gl.BACK)
	// the map winding is clockwise
	gl.FrontFace(gl.CW)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthRange(0, 1)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.DEPTH_TEST)
}

// Draw executes the commands of a render pass. Opaque commands are drawn
// with back face culling, blended ones without culling and depth writes.
func (d *WorldDrawer) Draw(viewproj mgl32.Mat4, opaque, blended []bsp.DrawCommand) {
	d.prog.Use()
	d.vao.Bind()
	d.viewproj.SetMat4(viewproj)
	d.lightmap.SetInts(lightmapUnits[:])

	gl.Enable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	d.alpha.SetFloat(1)
	d.execute(opaque)

	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	d.alpha.SetFloat(0.5)
	d.execute(blended)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
}

// lightmapUnits are the texture units of the lightmap slots.
var lightmapUnits = [bsp.MaxLightmaps]int32{0, 1, 2, 3}

// rebind returns the lightmaps of want that differ from bound per slot. Slots
// without a valid lightmap are -1 and keep the previous texture.
func rebind(bound, want [bsp.MaxLightmaps]int, n int) [bsp.MaxLightmaps]int {
	var r [bsp.MaxLightmaps]int
	for s, lm := range want {
		if lm == bound[s] || lm < 0 || lm >= n {
			r[s] = -1
		} else {
			r[s] = lm
		}
	}
	return r
}

func (d *WorldDrawer) execute(cmds []bsp.DrawCommand) {
	bound := [bsp.MaxLightmaps]int{-1, -1, -1, -1}
	for _, c := range cmds {
		if c.IndexCount == 0 {
			continue
		}
		for s, lm := range rebind(bound, c.Lightmaps, len(d.lightmaps)) {
			if lm < 0 {
				continue
			}
			gl.ActiveTexture(gl.TEXTURE0 + uint32(lightmapUnits[s]))
			d.lightmaps[lm].Bind()
			bound[s] = lm
		}
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(c.IndexCount), gl.UNSIGNED_INT, uintptr(4*c.FirstIndex))
	}
	gl.ActiveTexture(gl.TEXTURE0)
}
