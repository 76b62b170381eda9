package iconset

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/coworktask/sparkicon"
)

var (
	// ErrEmptyDir is returned when no output directory is given.
	ErrEmptyDir = errors.New("iconset: empty output directory")

	// ErrNoImage is returned when a master image is missing or empty.
	ErrNoImage = errors.New("iconset: missing master image")
)

// Export writes a complete icon set into dir and returns its manifest.
//
// Entries already in dir are removed first; dir is created when missing.
// For every variant the dark master is written twice, appearance-neutral
// and tagged dark, and the light master once, tagged light. Contents.json
// is written last. Any failure aborts the export and is returned.
func Export(dir string, light, dark image.Image, opts ...Option) (*Manifest, error) {
	if dir == "" {
		return nil, ErrEmptyDir
	}
	if empty(light) || empty(dark) {
		return nil, ErrNoImage
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	if err := Clean(dir); err != nil {
		return nil, err
	}

	log := sparkicon.Logger()
	m := newManifest()
	for _, v := range o.variants {
		if v.Pixels() <= 0 {
			return nil, fmt.Errorf("iconset: variant %v has no pixels", v)
		}
		darkPx := o.resample(dark, v.Pixels())
		lightPx := o.resample(light, v.Pixels())

		entries := []struct {
			prefix string
			value  string
			img    image.Image
		}{
			{"icon_", "", darkPx},
			{"icon_dark_", LuminosityDark, darkPx},
			{"icon_light_", LuminosityLight, lightPx},
		}
		for _, e := range entries {
			rec := Image{
				Filename: e.prefix + v.String() + ".png",
				Idiom:    "mac",
				Scale:    v.scaleLabel(),
				Size:     v.sizeLabel(),
			}
			if e.value != "" {
				rec.Appearances = []Appearance{{Appearance: "luminosity", Value: e.value}}
			}
			if err := writePNG(filepath.Join(dir, rec.Filename), e.img); err != nil {
				return nil, err
			}
			log.Debug("icon written", slog.String("file", rec.Filename), slog.Int("pixels", v.Pixels()))
			m.Images = append(m.Images, rec)
		}
	}

	data, err := m.Marshal()
	if err != nil {
		return nil, fmt.Errorf("iconset: encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil { //nolint:gosec // asset files are world-readable
		return nil, fmt.Errorf("iconset: write manifest: %w", err)
	}

	log.Info("icon set exported",
		slog.String("dir", dir),
		slog.Int("images", len(m.Images)),
		slog.Duration("elapsed", time.Since(start)))
	return m, nil
}

// Clean empties dir, creating it when missing.
func Clean(dir string) error {
	if dir == "" {
		return ErrEmptyDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("iconset: create %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("iconset: list %s: %w", dir, err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("iconset: remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is built from dir and a fixed name
	if err != nil {
		return fmt.Errorf("iconset: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("iconset: encode %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("iconset: %w", err)
	}
	return nil
}

func empty(img image.Image) bool {
	return img == nil || img.Bounds().Empty()
}
