// SPDX-License-Identifier: GPL-2.0-or-later

// Command q3view flies through a map. The camera collides with the world
// as a sphere and only the potentially visible faces are drawn.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"q3world/bsp"
	"q3world/cbuf"
	"q3world/commandline"
	"q3world/config"
	"q3world/conlog"
	"q3world/cvars"
	"q3world/filesystem"
	"q3world/glh"
	"q3world/image"
	"q3world/maps"
	"q3world/qtime"
	"q3world/view"
	"q3world/window"
)

// eyeHeight lifts the camera from the spawn point to eye level.
const eyeHeight = 26

type viewer struct {
	world  *bsp.World
	drawer *glh.WorldDrawer
	camera *view.Camera
	render *bsp.RenderPass
	trace  *bsp.TracePass
	cmds   cbuf.CommandBuffer
	binds  map[sdl.Keycode]string
	shots  int
	quit   bool
}

func keyBindings(names map[string]string) map[sdl.Keycode]string {
	binds := make(map[sdl.Keycode]string, len(names))
	for name, line := range names {
		if line == "" {
			continue
		}
		k := sdl.GetKeyFromName(name)
		if k == sdl.K_UNKNOWN {
			conlog.Warnf("unknown key %q in bindings", name)
			continue
		}
		binds[k] = line
	}
	return binds
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		conlog.Log.Info("serving metrics", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			conlog.Log.Error("metrics endpoint stopped", zap.Error(err))
		}
	}()
}

// screenshot handles "screenshot [name]" and writes the last frame as png.
func (v *viewer) screenshot(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	if a.Argv(0).String() != "screenshot" {
		return false, nil
	}
	name := a.Argv(1).String()
	if name == "" {
		v.shots++
		name = fmt.Sprintf("%s_shot%03d.png", v.world.Name(), v.shots)
	}
	w, h := window.Size()
	if err := image.Write(name, glh.ReadPixels(w, h), w, h); err != nil {
		return true, errors.Wrap(err, "screenshot")
	}
	conlog.Printf("Wrote %s", name)
	return true, nil
}

func (v *viewer) handleEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			v.quit = true
		case *sdl.KeyboardEvent:
			if t.Type != sdl.KEYDOWN {
				break
			}
			if t.Keysym.Sym == sdl.K_ESCAPE {
				v.quit = true
			} else if line, ok := v.binds[t.Keysym.Sym]; ok && t.Repeat == 0 {
				v.cmds.AddText(line + "\n")
			}
		case *sdl.MouseMotionEvent:
			if !window.InputFocus() {
				break
			}
			s := cvars.Sensitivity.Value() * 0.022
			v.camera.Turn(-float32(t.XRel)*s, float32(t.YRel)*s)
		case *sdl.WindowEvent:
			if t.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				v.camera.Width, v.camera.Height = int(t.Data1), int(t.Data2)
				gl.Viewport(0, 0, t.Data1, t.Data2)
			}
		}
	}
}

// move applies the keyboard movement of one frame and clips it against the
// world.
func (v *viewer) move(dt float32) {
	keys := sdl.GetKeyboardState()
	var fwd, side, up float32
	if keys[sdl.SCANCODE_W] != 0 {
		fwd++
	}
	if keys[sdl.SCANCODE_S] != 0 {
		fwd--
	}
	if keys[sdl.SCANCODE_D] != 0 {
		side++
	}
	if keys[sdl.SCANCODE_A] != 0 {
		side--
	}
	if keys[sdl.SCANCODE_SPACE] != 0 {
		up++
	}
	if keys[sdl.SCANCODE_C] != 0 {
		up--
	}
	if fwd == 0 && side == 0 && up == 0 {
		return
	}
	d := cvars.ClientSpeed.Value() * dt
	wish := v.camera.Move(fwd*d, side*d, up*d)
	v.camera.Origin = v.world.TraceSphere(v.trace, wish, v.camera.Origin, cvars.ClientRadius.Value())
}

func (v *viewer) frame(dt float32) {
	v.handleEvents()
	v.move(dt)
	v.camera.Fov = cvars.Fov.Value()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if cvars.RDrawWorld.Bool() {
		vp := v.camera.ViewProjection()
		v.render.NoVis = cvars.RNoVis.Bool()
		v.world.RenderWorld(v.render, v.camera.Origin, view.NewFrustum(vp))
		v.drawer.Draw(vp, v.render.Opaque(), v.render.Blended())
	}
	// run after drawing so screenshots read the finished frame
	if err := v.cmds.Execute(); err != nil {
		conlog.Warnf("%v", err)
	}
	window.EndRendering()
}

func (v *viewer) init(cfg *config.Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "could not init sdl")
	}
	if err := window.SetMode(int32(cfg.Video.Width), int32(cfg.Video.Height), cvars.VideoFullscreen.Bool()); err != nil {
		return err
	}
	sdl.SetRelativeMouseMode(true)
	glh.SetupGLState()
	d, err := glh.NewWorldDrawer(v.world)
	if err != nil {
		return err
	}
	v.drawer = d
	w, h := window.Size()
	v.camera.Width, v.camera.Height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
	return nil
}

func shutdown() {
	window.Shutdown()
	sdl.Quit()
}

func run() error {
	cfg, err := config.Load(commandline.Config())
	if err != nil {
		return err
	}
	conlog.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer conlog.Sync()
	if err := cfg.ApplyCvars(); err != nil {
		conlog.Warnf("%v", err)
	}
	if cfg.Map == "" {
		return errors.New("no map given, use -map")
	}
	if err := filesystem.UseBaseDir(cfg.BaseDir, cfg.Game); err != nil {
		conlog.DPrintf("no search path: %v", err)
	}
	defer filesystem.Close()
	if cfg.Metrics != "" {
		serveMetrics(cfg.Metrics)
	}

	world, err := maps.Load(cfg.Map, bsp.LoadOptions{Subdivisions: cvars.RSubdivisions.Int()})
	if err != nil {
		return err
	}
	origin, yaw := world.SpawnPoint()
	origin[2] += eyeHeight
	v := &viewer{
		world:  world,
		camera: view.NewCamera(origin, yaw, cvars.Fov.Value(), cfg.Video.Width, cfg.Video.Height),
		render: bsp.NewRenderPass(world),
		trace:  bsp.NewTracePass(world),
		binds:  keyBindings(cfg.Binds),
	}
	v.cmds.SetCommandExecutors([]cbuf.Efunc{cbuf.ExecuteCvar, v.screenshot})

	if err := mainthread.CallErr(func() error { return v.init(cfg) }); err != nil {
		mainthread.Call(shutdown)
		return err
	}
	defer mainthread.Call(shutdown)

	clock := qtime.NewClock()
	for !v.quit {
		dt := clock.Tick()
		mainthread.Call(func() { v.frame(dt) })
	}
	return nil
}

func main() {
	flag.Parse()
	var err error
	mainthread.Run(func() {
		err = run()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "q3view: %v\n", err)
		os.Exit(1)
	}
}
