// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "github.com/chewxy/math32"

// AngleMod32 changes an angle to be within 0-360 degrees
func AngleMod32(a float32) float32 {
	return a - math32.Floor(a/360)*360
}

// DegToRad converts degrees to radians.
func DegToRad(a float32) float32 {
	return a * math32.Pi / 180
}
