package quadtree

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned by Insert for a point outside the tree's bounds.
	ErrOutOfBounds = errors.New("quadtree: point outside bounds")
	// ErrInvalidBounds is returned for a degenerate or non-finite boundary.
	ErrInvalidBounds = errors.New("quadtree: invalid bounds")
	// ErrInvalidCapacity is returned for a node capacity below one.
	ErrInvalidCapacity = errors.New("quadtree: invalid capacity")
	// ErrInvalidMaxDepth is returned for a negative maximum depth.
	ErrInvalidMaxDepth = errors.New("quadtree: invalid max depth")
)
