// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
)

var (
	debug      bool
	fullscreen bool

	fsaa   int
	height int
	width  int

	basedir string
	config  string
	game    string
	logFile string
	mapName string
	metrics string
)

func register(fs *flag.FlagSet) {
	fs.BoolVar(&debug, "debug", false, "enable debug logging")
	fs.BoolVar(&fullscreen, "f", false, "")
	fs.BoolVar(&fullscreen, "fullscreen", false, "run in fullscreen")

	fs.IntVar(&fsaa, "fsaa", -1, "fsaa level, negative is unset")
	fs.IntVar(&height, "height", -1, "window height, negative is unset")
	fs.IntVar(&width, "width", -1, "window width, negative is unset")

	fs.StringVar(&basedir, "basedir", "", "directory containing the game directory")
	fs.StringVar(&config, "config", "", "path of the yaml configuration")
	fs.StringVar(&game, "game", "", "game directory below basedir")
	fs.StringVar(&logFile, "logfile", "", "additionally log to this file")
	fs.StringVar(&mapName, "map", "", "map to load, a name below maps/ or a path")
	fs.StringVar(&metrics, "metrics", "", "listen address of the prometheus endpoint")
}

func init() {
	register(flag.CommandLine)
}

func BaseDirectory() string {
	return basedir
}

func Config() string {
	return config
}

func Debug() bool {
	return debug
}

func Fsaa() int {
	return fsaa
}

func Fullscreen() bool {
	return fullscreen
}

func Game() string {
	return game
}

func Height() int {
	return height
}

func LogFile() string {
	return logFile
}

func Map() string {
	return mapName
}

func Metrics() string {
	return metrics
}

func Width() int {
	return width
}
