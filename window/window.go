// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"q3world/conlog"
	"q3world/cvars"
)

const title = "q3view"

var (
	window  *sdl.Window
	context sdl.GLContext
)

func Get() *sdl.Window {
	return window
}

func Size() (int, int) {
	w, h := window.GetSize()
	return int(w), int(h)
}

func Shutdown() {
	if context != nil {
		sdl.GLDeleteContext(context)
		context = nil
	}
	if window != nil {
		window.Destroy()
		window = nil
	}
}

func Fullscreen() bool {
	return window.GetFlags()&sdl.WINDOW_FULLSCREEN != 0
}

func InputFocus() bool {
	return window.GetFlags()&(sdl.WINDOW_MOUSE_FOCUS|sdl.WINDOW_INPUT_FOCUS) != 0
}

func createWindow(width, height int32, flags uint32) (*sdl.Window, error) {
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err == nil {
		return w, nil
	}
	// retry with less demanding buffers
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 0)
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 0)
	if w, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags); err == nil {
		return w, nil
	}
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 16)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 0)
	if w, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags); err == nil {
		return w, nil
	}
	return nil, errors.Wrap(err, "could not create window")
}

// SetMode opens the window with a GL 4.6 core context or resizes an open
// one. It must run on the main thread.
func SetMode(width, height int32, fullscreen bool) error {
	if window == nil {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 6)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
		sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

		fsaa := cvars.VideoFsaa.Int()
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, func() int {
			if fsaa > 0 {
				return 1
			}
			return 0
		}())
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, fsaa)

		w, err := createWindow(width, height, sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE)
		if err != nil {
			return err
		}
		window = w
	}
	if Fullscreen() {
		if err := window.SetFullscreen(0); err != nil {
			return errors.Wrap(err, "could not leave fullscreen")
		}
	}
	window.SetSize(width, height)
	window.SetPosition(sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED)
	if fullscreen {
		if err := window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			return errors.Wrap(err, "could not set fullscreen")
		}
	}
	window.Show()

	if context == nil {
		c, err := window.GLCreateContext()
		if err != nil {
			return errors.Wrap(err, "could not create GL context")
		}
		context = c
		if err := gl.Init(); err != nil {
			return errors.Wrap(err, "could not init gl")
		}
		gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	}
	SetVSync(cvars.VideoVSync.Bool())
	return nil
}

func SetVSync(on bool) {
	i := 0
	if on {
		i = 1
	}
	if err := sdl.GLSetSwapInterval(i); err != nil {
		conlog.Warnf("could not set swap interval: %v", err)
	}
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		conlog.Warnf("[GL_DEBUG] source %d gltype %d id %d: %s", source, gltype, id, message)
	} else {
		conlog.DPrintf("[GL_DEBUG] source %d gltype %d id %d: %s", source, gltype, id, message)
	}
}

func EndRendering() {
	window.GLSwap()
}
