package core

import "errors"

var (
	// ErrDimensionMismatch reports a cell buffer whose length does not match the lattice size.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")
	// ErrInvalidSize reports a non-positive width or height.
	ErrInvalidSize = errors.New("core: invalid size")
	// ErrUnsupportedPolicy reports a boundary policy without a resolver.
	ErrUnsupportedPolicy = errors.New("core: unsupported boundary policy")
)
