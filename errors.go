package sparkicon

import "errors"

var (
	// ErrInvalidGeometry is returned when shape parameters cannot describe
	// a closed spark polygon.
	ErrInvalidGeometry = errors.New("sparkicon: invalid geometry")

	// ErrSizeMismatch is returned when a layer or mask does not match the
	// dimensions of the canvas it is applied to.
	ErrSizeMismatch = errors.New("sparkicon: size mismatch")

	// ErrInvalidSize is returned for canvas sizes too small to hold the recipe.
	ErrInvalidSize = errors.New("sparkicon: invalid canvas size")

	// ErrUnknownStage is returned by BuildStage for names not in the recipe.
	ErrUnknownStage = errors.New("sparkicon: unknown stage")
)
