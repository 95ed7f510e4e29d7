// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"q3world/bsp"
	"q3world/conlog"
)

// Write expects RGBA 8bit data
func Write(name string, data []byte, width, height int) error {
	if len(data) < width*height*4 {
		return errors.Errorf("Tried to write an image but there is not enough data")
	}
	r := image.Rect(0, 0, width, height)
	img := &image.NRGBA{
		Pix:    data,
		Stride: 4 * width,
		Rect:   r,
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", name)
	}
	return f.Close()
}

// FromLightmap wraps the lightmap pixels without copying.
func FromLightmap(lm *bsp.Lightmap) *image.NRGBA {
	return &image.NRGBA{
		Pix:    lm.RGBA,
		Stride: 4 * lm.Width,
		Rect:   image.Rect(0, 0, lm.Width, lm.Height),
	}
}

// WriteLightmaps stores every lightmap of the map file as png in dir and
// returns the number of written files.
func WriteLightmaps(w *bsp.World, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	lms := w.FileLightmaps()
	for i := range lms {
		lm := &lms[i]
		name := filepath.Join(dir, fmt.Sprintf("%s_lm%03d.png", w.Name(), i))
		if err := Write(name, lm.RGBA, lm.Width, lm.Height); err != nil {
			return i, err
		}
	}
	conlog.DPrintf("wrote %d lightmaps to %s", len(lms), dir)
	return len(lms), nil
}
