// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"bytes"
	"strconv"
	"strings"

	"q3world/math/vec"
)

// Entity is one key/value block of the entity lump.
type Entity struct {
	properties map[string]string
	keys       []string
}

func newEntity() *Entity {
	return &Entity{properties: make(map[string]string)}
}

func (e *Entity) set(key, value string) {
	if _, ok := e.properties[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.properties[key] = value
}

func (e *Entity) Property(name string) (string, bool) {
	v, ok := e.properties[name]
	return v, ok
}

// ClassName returns the classname property.
func (e *Entity) ClassName() string {
	return e.properties["classname"]
}

// PropertyNames returns the keys in file order.
func (e *Entity) PropertyNames() []string {
	return append([]string(nil), e.keys...)
}

// Vector parses a property of the form "x y z".
func (e *Entity) Vector(name string) (vec.Vec3, bool) {
	s, ok := e.properties[name]
	if !ok {
		return vec.Vec3{}, false
	}
	f := strings.Fields(s)
	if len(f) != 3 {
		return vec.Vec3{}, false
	}
	var v vec.Vec3
	for i := range v {
		x, err := strconv.ParseFloat(f[i], 32)
		if err != nil {
			return vec.Vec3{}, false
		}
		v[i] = float32(x)
	}
	return v, true
}

func (e *Entity) Origin() (vec.Vec3, bool) {
	return e.Vector("origin")
}

// Angle returns the yaw of the "angle" property in degrees.
func (e *Entity) Angle() float32 {
	s, ok := e.properties["angle"]
	if !ok {
		return 0
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0
	}
	return float32(a)
}

// ParseEntities splits the entity lump into its blocks. Its text looks like
//
//	{
//	"classname" "worldspawn"
//	"message" "..."
//	}
//	{
//	"classname" "info_player_deathmatch"
//	"origin" "-64 128 24"
//	}
//
// Braces inside quoted values are ignored. Unbalanced input yields the blocks
// parsed so far.
func ParseEntities(data []byte) []*Entity {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	var es []*Entity
	var cur *Entity
	var tok []string
	for i := 0; i < len(data); i++ {
		switch b := data[i]; b {
		case '{':
			if cur == nil {
				cur = newEntity()
				tok = tok[:0]
			}
		case '}':
			if cur == nil {
				return es
			}
			es = append(es, cur)
			cur = nil
		case '"':
			end := bytes.IndexByte(data[i+1:], '"')
			if end < 0 {
				return es
			}
			if cur != nil {
				tok = append(tok, string(data[i+1:i+1+end]))
				if len(tok) == 2 {
					cur.set(tok[0], tok[1])
					tok = tok[:0]
				}
			}
			i += end + 1
		}
	}
	return es
}

// spawn classes in order of preference
var spawnClasses = []string{
	"info_player_deathmatch",
	"info_player_start",
	"team_CTF_redplayer",
	"team_CTF_blueplayer",
}

// SpawnPoint returns the origin and yaw of the first player start. Maps
// without one spawn at the center of model 0.
func (w *World) SpawnPoint() (vec.Vec3, float32) {
	for _, c := range spawnClasses {
		for _, e := range w.Entities {
			if e.ClassName() != c {
				continue
			}
			if o, ok := e.Origin(); ok {
				return o, e.Angle()
			}
		}
	}
	if len(w.Models) > 0 {
		m := &w.Models[0]
		return vec.Scale(0.5, vec.Add(m.Mins, m.Maxs)), 0
	}
	return vec.Vec3{}, 0
}

// Worldspawn returns the first entity, which holds the map wide settings.
func (w *World) Worldspawn() *Entity {
	if len(w.Entities) == 0 || w.Entities[0].ClassName() != "worldspawn" {
		return nil
	}
	return w.Entities[0]
}
