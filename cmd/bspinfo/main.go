// SPDX-License-Identifier: GPL-2.0-or-later

// Command bspinfo loads a map and runs queries against it without opening
// a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"q3world/bsp"
	"q3world/commandline"
	"q3world/config"
	"q3world/conlog"
	"q3world/cvars"
	"q3world/export"
	"q3world/filesystem"
	"q3world/image"
	"q3world/maps"
	"q3world/math/vec"
)

var (
	locate = flag.String("locate", "", "print leaf and cluster of x,y,z")
	light  = flag.String("light", "", "print the light volume sample at x,y,z")
	trace  = flag.String("trace", "", "trace a sphere from x,y,z to x,y,z")
	radius = flag.Float64("radius", 16, "sphere radius of -trace")
	gltf   = flag.String("gltf", "", "write the world geometry to this .glb file")
	lmDir  = flag.String("lightmaps", "", "write the lightmaps as png into this directory")
)

func parseVec(s string) (vec.Vec3, error) {
	f := strings.Split(s, ",")
	if len(f) != 3 {
		return vec.Vec3{}, errors.Errorf("%q is not of the form x,y,z", s)
	}
	var v vec.Vec3
	for i := range v {
		x, err := strconv.ParseFloat(strings.TrimSpace(f[i]), 32)
		if err != nil {
			return vec.Vec3{}, errors.Wrapf(err, "bad coordinate in %q", s)
		}
		v[i] = float32(x)
	}
	return v, nil
}

func printStats(w *bsp.World) {
	count := map[bsp.FaceType]int{}
	for _, f := range w.Faces {
		count[f.Type]++
	}
	fmt.Printf("map        %s (%s)\n", w.Name(), maps.Title(w.Name()))
	fmt.Printf("entities   %d\n", len(w.Entities))
	fmt.Printf("shaders    %d\n", len(w.Shaders))
	fmt.Printf("planes     %d\n", len(w.Planes))
	fmt.Printf("nodes      %d\n", len(w.Nodes))
	fmt.Printf("leafs      %d\n", len(w.Leafs))
	fmt.Printf("brushes    %d (%d sides)\n", len(w.Brushes), len(w.BrushSides))
	fmt.Printf("faces      %d (%d polygon, %d patch, %d mesh)\n", len(w.Faces),
		count[bsp.FacePolygon], count[bsp.FacePatch], count[bsp.FaceMesh])
	fmt.Printf("vertices   %d\n", len(w.Vertices))
	fmt.Printf("indices    %d\n", len(w.Indices))
	fmt.Printf("lightmaps  %d\n", len(w.Lightmaps))
	fmt.Printf("lightvols  %d\n", len(w.LightVols))
	fmt.Printf("clusters   %d\n", w.Vis.ClusterCount)
	o, yaw := w.SpawnPoint()
	fmt.Printf("spawn      %v yaw %v\n", o, yaw)
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

	w, err := maps.Load(cfg.Map, bsp.LoadOptions{Subdivisions: cvars.RSubdivisions.Int()})
	if err != nil {
		return err
	}
	printStats(w)

	if *locate != "" {
		p, err := parseVec(*locate)
		if err != nil {
			return err
		}
		if len(w.Leafs) == 0 {
			return errors.New("map has no leafs")
		}
		leaf := w.LocateLeaf(p)
		fmt.Printf("leaf       %d cluster %d area %d\n", leaf, w.Leafs[leaf].Cluster, w.Leafs[leaf].Area)
	}
	if *light != "" {
		p, err := parseVec(*light)
		if err != nil {
			return err
		}
		s := w.LightSample(p)
		fmt.Printf("ambient    %v\ndirected   %v\ndirection  %v\n", s.Ambient[0], s.Directional[0], s.Direction)
	}
	if *trace != "" {
		from, to, ok := strings.Cut(*trace, ":")
		if !ok {
			return errors.Errorf("%q is not of the form x,y,z:x,y,z", *trace)
		}
		old, err := parseVec(from)
		if err != nil {
			return err
		}
		pos, err := parseVec(to)
		if err != nil {
			return err
		}
		fmt.Printf("trace      %v\n", w.TraceWorld(pos, old, float32(*radius)))
	}
	if *gltf != "" {
		if err := export.WriteGLB(w, *gltf); err != nil {
			return err
		}
		fmt.Printf("wrote      %s\n", *gltf)
	}
	if *lmDir != "" {
		n, err := image.WriteLightmaps(w, *lmDir)
		if err != nil {
			return err
		}
		fmt.Printf("wrote      %d lightmaps to %s\n", n, *lmDir)
	}
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bspinfo: %v\n", err)
		os.Exit(1)
	}
}
