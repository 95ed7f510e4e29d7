// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"q3world/math/vec"
)

func TestParseEntities(t *testing.T) {
	es := ParseEntities([]byte(testEntities))
	require.Len(t, es, 2)
	require.Equal(t, "worldspawn", es[0].ClassName())
	m, ok := es[0].Property("message")
	require.True(t, ok)
	require.Equal(t, "test {map}", m)
	require.Equal(t, []string{"classname", "origin", "angle"}, es[1].PropertyNames())

	o, ok := es[1].Origin()
	require.True(t, ok)
	require.Equal(t, vec.Vec3{1, 2, 3}, o)
	require.Equal(t, float32(90), es[1].Angle())

	_, ok = es[0].Origin()
	require.False(t, ok)
}

func TestParseEntitiesBroken(t *testing.T) {
	require.Empty(t, ParseEntities([]byte(`}{"a" "b"}`)))
	es := ParseEntities([]byte("{\"a\" \"b\"}\n{\"c\" \"d"))
	require.Len(t, es, 1)

	e := ParseEntities([]byte(`{"origin" "1 x 3"}`))[0]
	_, ok := e.Origin()
	require.False(t, ok)
}

func TestSpawnPoint(t *testing.T) {
	w := &World{
		Entities: ParseEntities([]byte(`{"classname" "worldspawn"}
{"classname" "info_player_start" "origin" "5 5 5"}
{"classname" "info_player_deathmatch" "origin" "7 7 7" "angle" "180"}`)),
	}
	o, yaw := w.SpawnPoint()
	require.Equal(t, vec.Vec3{7, 7, 7}, o)
	require.Equal(t, float32(180), yaw)
	require.NotNil(t, w.Worldspawn())

	w = &World{Models: []Model{{Mins: vec.Vec3{-10, 0, 0}, Maxs: vec.Vec3{10, 20, 40}}}}
	o, _ = w.SpawnPoint()
	require.Equal(t, vec.Vec3{0, 10, 20}, o)
	require.Nil(t, w.Worldspawn())
}
