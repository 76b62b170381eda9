package iconset

import (
	"bytes"
	"fmt"
	"image"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// ICOSize is the edge length of the image stored in a Windows icon file.
const ICOSize = 256

// WriteICO writes src as a single-image Windows icon at path, scaled to
// ICOSize with the default resampler.
func WriteICO(path string, src image.Image) error {
	if empty(src) {
		return ErrNoImage
	}
	var buf bytes.Buffer
	if err := ico.Encode(&buf, Lanczos(src, ICOSize)); err != nil {
		return fmt.Errorf("iconset: encode icon: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // icon files are world-readable
		return fmt.Errorf("iconset: %w", err)
	}
	return nil
}
