// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf buffers console style command lines, e.g. from key bindings,
// and runs them once per frame.
package cbuf

import (
	"q3world/conlog"
)

// Efunc runs a command. It reports false if it does not know the command.
type Efunc func(*CommandBuffer, Arguments) (bool, error)

type CommandBuffer struct {
	buf string
	// causes the following commands to be executed one frame later
	wait      bool
	executors []Efunc
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

func (c *CommandBuffer) AddText(text string) {
	c.buf = c.buf + text
}

func (c *CommandBuffer) InsertText(text string) {
	c.buf = text + "\n" + c.buf
}

// Execute runs the buffered lines until the buffer is empty or a wait
// command is hit. Lines are separated by newlines or unquoted semicolons.
func (c *CommandBuffer) Execute() error {
	for len(c.buf) != 0 {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(c.buf); i++ {
			switch c.buf[i] {
			case '"':
				quote = !quote
			case ';':
				if !quote {
					break LineLoop
				}
			case '\n':
				break LineLoop
			}
		}
		line := c.buf[:i]
		if i < len(c.buf) {
			i++
		}
		c.buf = c.buf[i:]
		if err := c.execute(line); err != nil {
			return err
		}
		if c.wait {
			c.wait = false
			return nil
		}
	}
	return nil
}

func (c *CommandBuffer) execute(s string) error {
	a := Parse(s)
	args := a.Args()
	if len(args) == 0 {
		return nil
	}
	if args[0].String() == "wait" {
		c.wait = true
		return nil
	}
	for _, e := range c.executors {
		if ok, err := e(c, a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	conlog.Printf("Unknown command \"%s\"", args[0].String())
	return nil
}
