// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"archive/zip"
	"io/fs"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pack is a pk3 archive. Names are matched case insensitively.
type Pack struct {
	r     *zip.ReadCloser
	files map[string]*zip.File
	name  string
}

// Open returns the archive member with the provided name.
func (p *Pack) Open(name string) (fs.File, error) {
	f, ok := p.files[strings.ToLower(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return p.r.Open(f.Name)
}

// Files returns the names of all members in lexical order.
func (p *Pack) Files() []string {
	n := make([]string, 0, len(p.files))
	for _, f := range p.files {
		n = append(n, f.Name)
	}
	sort.Strings(n)
	return n
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	return p.r.Close()
}

func NewPackReader(name string) (*Pack, error) {
	r, err := zip.OpenReader(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open pack %s", name)
	}
	p := &Pack{r: r, name: name, files: make(map[string]*zip.File, len(r.File))}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		// later entries win like in the engine
		p.files[strings.ToLower(f.Name)] = f
	}
	return p, nil
}
