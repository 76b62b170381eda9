// Command sparkicon renders the Cowork Task Supervisor app icon in its
// light and dark variants and writes the AppIcon.appiconset bundle.
//
// Usage:
//
//	sparkicon [-out dir] [-ico file] [-size px] [-seed n] [-v]
//
// Run it from the project root: without -out the bundle goes to
// CoworkTaskSupervisor/Resources/Assets.xcassets/AppIcon.appiconset under the
// working directory.
// Existing files in the output directory are removed first. With -ico a
// 256×256 Windows icon of the dark variant is written as well.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/coworktask/sparkicon"
	"github.com/coworktask/sparkicon/iconset"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "sparkicon: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sparkicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		out     = fs.String("out", "", "output directory (default: "+appIconSet+" under the working directory)")
		icoPath = fs.String("ico", "", "also write a Windows .ico of the dark variant to this file")
		size    = fs.Int("size", sparkicon.DefaultSize, "master icon size in pixels")
		seed    = fs.Uint64("seed", sparkicon.DefaultSeed, "texture noise seed")
		verbose = fs.Bool("v", false, "log per-stage timings to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	sparkicon.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	dir := *out
	if dir == "" {
		var err error
		if dir, err = defaultOutputDir(); err != nil {
			return err
		}
	}
	opts := []sparkicon.Option{sparkicon.WithSize(*size), sparkicon.WithSeed(*seed)}

	fmt.Fprintln(stdout, "Generating Cowork Task Supervisor icon (Light + Dark)...")
	fmt.Fprintln(stdout, "  Creating dark variant...")
	dark, err := sparkicon.Build(sparkicon.Dark, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "  Creating light variant...")
	light, err := sparkicon.Build(sparkicon.Light, opts...)
	if err != nil {
		return err
	}

	m, err := iconset.Export(dir, light, dark)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "  Generated %d icon files\n", len(m.Images))
	fmt.Fprintln(stdout, "  Generated "+iconset.ManifestName)
	if *icoPath != "" {
		if err := iconset.WriteICO(*icoPath, dark); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "  Generated %s\n", filepath.Base(*icoPath))
	}
	fmt.Fprintf(stdout, "Done! Output: %s\n", dir)
	return nil
}

// appIconSet is the icon set's path relative to the project root.
var appIconSet = filepath.Join("CoworkTaskSupervisor", "Resources", "Assets.xcassets", "AppIcon.appiconset")

// defaultOutputDir returns the app's icon set under the working directory,
// which is taken to be the project root.
func defaultOutputDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("locate project root: %w", err)
	}
	return filepath.Join(wd, appIconSet), nil
}
