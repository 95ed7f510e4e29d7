// SPDX-License-Identifier: GPL-2.0-or-later

package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"q3world/math"
	"q3world/math/vec"
)

const (
	zNear    = 4
	zFar     = 16384
	maxPitch = 89
)

var up = mgl32.Vec3{0, 0, 1}

// Camera is a first person view with z up. Angles are in degrees, a
// positive pitch looks down.
type Camera struct {
	Origin vec.Vec3
	Pitch  float32
	Yaw    float32
	// Fov is the horizontal field of view in degrees.
	Fov    float32
	Width  int
	Height int
}

func NewCamera(origin vec.Vec3, yaw, fov float32, width, height int) *Camera {
	return &Camera{
		Origin: origin,
		Yaw:    math.AngleMod32(yaw),
		Fov:    fov,
		Width:  width,
		Height: height,
	}
}

// Turn rotates the view. Pitch stays short of straight up and down.
func (c *Camera) Turn(yaw, pitch float32) {
	c.Yaw = math.AngleMod32(c.Yaw + yaw)
	c.Pitch = math.Clamp(-maxPitch, c.Pitch+pitch, maxPitch)
}

// Vectors returns the forward, right and up vectors of the view.
func (c *Camera) Vectors() (forward, right, up vec.Vec3) {
	return vec.AngleVectors(vec.Vec3{c.Pitch, c.Yaw, 0})
}

// Move returns the origin displaced by the given distances along the view
// axes. The camera itself is not changed, callers clip the result first.
func (c *Camera) Move(forward, right, upward float32) vec.Vec3 {
	f, r, u := c.Vectors()
	p := vec.Add(c.Origin, vec.Scale(forward, f))
	p = vec.Add(p, vec.Scale(right, r))
	return vec.Add(p, vec.Scale(upward, u))
}

func (c *Camera) aspect() float32 {
	if c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// FovY converts the horizontal field of view to the vertical one.
func (c *Camera) FovY() float32 {
	x := math32.Tan(math.DegToRad(c.Fov) / 2)
	return 2 * math32.Atan(x/c.aspect())
}

func (c *Camera) View() mgl32.Mat4 {
	f, _, _ := c.Vectors()
	eye := mgl32.Vec3(c.Origin)
	return mgl32.LookAtV(eye, eye.Add(mgl32.Vec3(f)), up)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY(), c.aspect(), zNear, zFar)
}

func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Frustum returns the culling volume of the current view.
func (c *Camera) Frustum() *Frustum {
	return NewFrustum(c.ViewProjection())
}
