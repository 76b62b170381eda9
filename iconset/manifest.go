package iconset

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestName is the asset catalog manifest filename.
const ManifestName = "Contents.json"

// Appearance values for the luminosity appearance.
const (
	LuminosityDark  = "dark"
	LuminosityLight = "light"
)

// Appearance tags an image with the system appearance it applies to.
type Appearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

// Image is one entry of the manifest.
type Image struct {
	Appearances []Appearance `json:"appearances,omitempty"`
	Filename    string       `json:"filename"`
	Idiom       string       `json:"idiom"`
	Scale       string       `json:"scale"`
	Size        string       `json:"size"`
}

// Info identifies the manifest writer.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Manifest is the Contents.json document of an icon set.
type Manifest struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

func newManifest() *Manifest {
	return &Manifest{Info: Info{Author: "xcode", Version: 1}}
}

// Luminosity returns the images tagged with the given luminosity value.
// An empty value selects the appearance-neutral images.
func (m *Manifest) Luminosity(value string) []Image {
	var out []Image
	for _, img := range m.Images {
		switch {
		case value == "" && len(img.Appearances) == 0:
			out = append(out, img)
		case value != "" && img.hasLuminosity(value):
			out = append(out, img)
		}
	}
	return out
}

// Filenames returns the filename of every image, in manifest order.
func (m *Manifest) Filenames() []string {
	names := make([]string, len(m.Images))
	for i, img := range m.Images {
		names[i] = img.Filename
	}
	return names
}

func (img Image) hasLuminosity(value string) bool {
	for _, a := range img.Appearances {
		if a.Appearance == "luminosity" && a.Value == value {
			return true
		}
	}
	return false
}

// Marshal encodes the manifest the way Xcode writes it: two-space
// indentation and a trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ReadManifest decodes the manifest at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("iconset: read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("iconset: decode %s: %w", path, err)
	}
	return &m, nil
}
