// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func setupBaseDir(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	game := filepath.Join(base, DefaultGame)
	require.NoError(t, os.MkdirAll(filepath.Join(game, "maps"), 0o755))
	writeZip(t, filepath.Join(game, "pak0.pk3"), map[string]string{
		"doc1.txt":       "first doc",
		"doc2.txt":       "second doc",
		"maps/q3dm1.bsp": "IBSP dm1",
	})
	writeZip(t, filepath.Join(game, "pak1.pk3"), map[string]string{
		"doc1.txt":       "first doc 2. version",
		"maps/q3dm2.bsp": "IBSP dm2",
	})
	require.NoError(t, os.WriteFile(filepath.Join(game, "doc2.txt"), []byte("loose doc2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(game, "maps", "test.bsp"), []byte("IBSP test"), 0o644))
	require.NoError(t, UseBaseDir(base, ""))
	t.Cleanup(Close)
	return base
}

func TestFilesystemOrder(t *testing.T) {
	base := setupBaseDir(t)
	require.Equal(t, base, BaseDir())
	require.Equal(t, filepath.Join(base, DefaultGame), GameDir())

	tests := []struct {
		name string
		want string
	}{
		{"doc1.txt", "first doc 2. version"},
		{"doc2.txt", "loose doc2"},
		{"/maps/q3dm1.bsp", "IBSP dm1"},
		{"maps\\q3dm2.bsp", "IBSP dm2"},
		{"maps/test.bsp", "IBSP test"},
	}
	for _, tc := range tests {
		b, err := ReadFile(tc.name)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, string(b), tc.name)
	}

	_, err := Open("doc3.txt")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMaps(t *testing.T) {
	setupBaseDir(t)
	require.Equal(t, []string{"q3dm1", "q3dm2", "test"}, Maps())
}

func TestUseBaseDirMissing(t *testing.T) {
	require.Error(t, UseBaseDir(t.TempDir(), "missing"))
}

func TestExt(t *testing.T) {
	tests := []struct {
		in, ext, stripped string
	}{
		{"maps/q3dm1.bsp", ".bsp", "maps/q3dm1"},
		{"maps.d/q3dm1", "", "maps.d/q3dm1"},
		{"a.tar.gz", ".gz", "a.tar"},
	}
	for _, tc := range tests {
		if got := Ext(tc.in); got != tc.ext {
			t.Errorf("Ext(%q) = %q, want %q", tc.in, got, tc.ext)
		}
		if got := StripExt(tc.in); got != tc.stripped {
			t.Errorf("StripExt(%q) = %q, want %q", tc.in, got, tc.stripped)
		}
	}
}
