// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"q3world/conlog"
	"q3world/pack"
)

// DefaultGame is the directory below the base directory holding the data.
const DefaultGame = "baseq3"

var (
	baseDir string
	gameDir string
	// searched from the front
	searchPath []fs.FS
	packs      []*pack.Pack
	mutex      sync.RWMutex
)

func GameDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return gameDir
}

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir searches files in base/game. Loose files take precedence over
// pk3 archives, archives later in lexical order over earlier ones.
func UseBaseDir(base, game string) error {
	mutex.Lock()
	defer mutex.Unlock()
	closePacks()
	if game == "" {
		game = DefaultGame
	}
	dir := filepath.Join(base, game)
	st, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "could not use game directory")
	}
	if !st.IsDir() {
		return errors.Errorf("%s is not a directory", dir)
	}
	baseDir = base
	gameDir = dir

	names, err := filepath.Glob(filepath.Join(dir, "*.pk3"))
	if err != nil {
		return err
	}
	sort.Strings(names)
	searchPath = []fs.FS{os.DirFS(dir)}
	for i := len(names) - 1; i >= 0; i-- {
		p, err := pack.NewPackReader(names[i])
		if err != nil {
			conlog.Warnf("skipping %s: %v", names[i], err)
			continue
		}
		packs = append(packs, p)
		searchPath = append(searchPath, p)
	}
	conlog.DPrintf("using %s with %d packs", dir, len(packs))
	return nil
}

func closePacks() {
	for _, p := range packs {
		p.Close()
	}
	packs = nil
	searchPath = nil
}

// Close releases all opened archives.
func Close() {
	mutex.Lock()
	defer mutex.Unlock()
	closePacks()
}

// Open returns the first file with the given name in the search path.
// Names use forward slashes and are relative to the game directory.
func Open(name string) (fs.File, error) {
	name = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(name, "\\", "/")), "/")
	mutex.RLock()
	defer mutex.RUnlock()
	for _, s := range searchPath {
		f, err := s.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// Maps lists the names of all maps/*.bsp files without extension.
func Maps() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	seen := map[string]bool{}
	for _, p := range packs {
		for _, f := range p.Files() {
			if strings.EqualFold(path.Dir(f), "maps") && strings.EqualFold(Ext(f), ".bsp") {
				seen[StripExt(path.Base(f))] = true
			}
		}
	}
	if gameDir != "" {
		loose, _ := filepath.Glob(filepath.Join(gameDir, "maps", "*.bsp"))
		for _, f := range loose {
			seen[StripExt(filepath.Base(f))] = true
		}
	}
	m := make([]string, 0, len(seen))
	for n := range seen {
		m = append(m, n)
	}
	sort.Strings(m)
	return m
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
