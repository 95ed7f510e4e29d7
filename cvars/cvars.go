// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"q3world/cvar"
)

var (
	ClientRadius  *cvar.Cvar
	ClientSpeed   *cvar.Cvar
	Fov           *cvar.Cvar
	RDrawWorld    *cvar.Cvar
	RNoVis        *cvar.Cvar
	RSubdivisions *cvar.Cvar
	Sensitivity   *cvar.Cvar

	VideoFsaa       *cvar.Cvar
	VideoFullscreen *cvar.Cvar
	VideoVSync      *cvar.Cvar
)

func init() {
	ClientRadius = cvar.MustRegister("cl_radius", "16", cvar.ARCHIVE)
	ClientSpeed = cvar.MustRegister("cl_speed", "320", cvar.ARCHIVE)
	Fov = cvar.MustRegister("fov", "90", cvar.ARCHIVE)
	RDrawWorld = cvar.MustRegister("r_drawworld", "1", cvar.NONE)
	RNoVis = cvar.MustRegister("r_novis", "0", cvar.NONE)
	// patch subdivision level, only read at map load
	RSubdivisions = cvar.MustRegister("r_subdivisions", "3", cvar.ARCHIVE)
	Sensitivity = cvar.MustRegister("sensitivity", "3", cvar.ARCHIVE)

	VideoFsaa = cvar.MustRegister("vid_fsaa", "0", cvar.ARCHIVE)
	VideoFullscreen = cvar.MustRegister("vid_fullscreen", "0", cvar.ARCHIVE)
	VideoVSync = cvar.MustRegister("vid_vsync", "1", cvar.ARCHIVE)
}
