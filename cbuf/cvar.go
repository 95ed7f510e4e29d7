// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"github.com/pkg/errors"

	"q3world/conlog"
	"q3world/cvar"
)

// ExecuteCvar handles the cvar commands: "set name value", "toggle name",
// "reset name", "cvarlist" and a bare cvar name which prints or assigns it.
func ExecuteCvar(_ *CommandBuffer, a Arguments) (bool, error) {
	name := a.Argv(0).String()
	switch name {
	case "cvarlist":
		for _, n := range cvar.Names() {
			cv, _ := cvar.Get(n)
			conlog.Printf("%-16s \"%s\"", n, cv.String())
		}
		return true, nil
	case "set":
		if len(a.Args()) < 3 {
			conlog.Printf("usage: set <variable> <value>")
			return true, nil
		}
		return true, cvar.Set(a.Argv(1).String(), a.Argv(2).String())
	case "toggle", "reset":
		if len(a.Args()) < 2 {
			conlog.Printf("usage: %s <variable>", name)
			return true, nil
		}
		cv, ok := cvar.Get(a.Argv(1).String())
		if !ok {
			return true, errors.Errorf("unknown variable %q", a.Argv(1).String())
		}
		if name == "toggle" {
			cv.Toggle()
		} else {
			cv.Reset()
		}
		return true, nil
	}
	cv, ok := cvar.Get(name)
	if !ok {
		return false, nil
	}
	if len(a.Args()) == 1 {
		conlog.Printf("\"%s\" is \"%s\"", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(a.Argv(1).String())
	return true, nil
}
