package sparkicon

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Build renders the icon for appearance a by running every stage of
// [Recipe] in order and compositing its layer over the previous ones.
//
// The result is fully opaque. Any stage error aborts the build; no partial
// icon is returned.
func Build(a Appearance, opts ...Option) (*Canvas, error) {
	scene, err := newScene(a, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	icon := scene.layer()
	for _, stage := range Recipe() {
		if err := runStage(scene, stage, icon); err != nil {
			return nil, fmt.Errorf("%v icon: %w", a, err)
		}
	}

	Logger().Info("icon built",
		slog.String("appearance", a.String()),
		slog.Int("size", scene.Size),
		slog.Duration("elapsed", time.Since(start)))
	return icon, nil
}

// BuildStage renders the layer of a single named stage in isolation.
func BuildStage(a Appearance, name string, opts ...Option) (*Canvas, error) {
	scene, err := newScene(a, opts)
	if err != nil {
		return nil, err
	}
	for _, stage := range Recipe() {
		if stage.Name == name {
			layer, err := stage.Render(scene)
			if err != nil {
				return nil, fmt.Errorf("%v icon: stage %s: %w", a, name, err)
			}
			return layer, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownStage)
}

// StageNames returns the recipe's stage names in paint order.
func StageNames() []string {
	recipe := Recipe()
	names := make([]string, len(recipe))
	for i, stage := range recipe {
		names[i] = stage.Name
	}
	return names
}

func runStage(scene *Scene, stage Stage, icon *Canvas) error {
	start := time.Now()
	layer, err := stage.Render(scene)
	if err != nil {
		return fmt.Errorf("stage %s: %w", stage.Name, err)
	}
	if err := Composite(icon, layer); err != nil {
		return fmt.Errorf("stage %s: %w", stage.Name, err)
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("stage composited",
			slog.String("appearance", scene.Appearance.String()),
			slog.String("stage", stage.Name),
			slog.Any("bounds", layer.ContentBounds()),
			slog.Duration("elapsed", time.Since(start)))
	}
	return nil
}

func newScene(a Appearance, opts []Option) (*Scene, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.size < minSize {
		return nil, fmt.Errorf("size %d (minimum %d): %w", o.size, minSize, ErrInvalidSize)
	}
	palette, err := PaletteFor(a)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Appearance: a,
		Palette:    palette,
		Size:       o.size,
		Seed:       o.seed,
	}, nil
}
