package quadtree

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Rectangle is an axis-aligned region. HalfDimension holds half-extents, not
// full width and height: the rectangle spans
// [Center.X-HalfDimension.X, Center.X+HalfDimension.X] on X and likewise on Y.
type Rectangle struct {
	Center        Point
	HalfDimension Point
}

// NewRectangle builds a Rectangle from a centre and its half-extents.
func NewRectangle(centerX, centerY, halfWidth, halfHeight float64) Rectangle {
	return Rectangle{
		Center:        Point{centerX, centerY},
		HalfDimension: Point{halfWidth, halfHeight},
	}
}

// Contains reports whether p lies strictly inside r. Points on an edge are
// not contained.
func (r Rectangle) Contains(p Point) bool {
	return p.X > r.Center.X-r.HalfDimension.X &&
		p.X < r.Center.X+r.HalfDimension.X &&
		p.Y > r.Center.Y-r.HalfDimension.Y &&
		p.Y < r.Center.Y+r.HalfDimension.Y
}

// ContainsClosed is Contains with the edges included.
func (r Rectangle) ContainsClosed(p Point) bool {
	return p.X >= r.Center.X-r.HalfDimension.X &&
		p.X <= r.Center.X+r.HalfDimension.X &&
		p.Y >= r.Center.Y-r.HalfDimension.Y &&
		p.Y <= r.Center.Y+r.HalfDimension.Y
}

// Intersects reports whether the closed extents of r and other overlap.
// Rectangles that only touch along an edge or corner intersect.
func (r Rectangle) Intersects(other Rectangle) bool {
	return !(other.Center.X-other.HalfDimension.X > r.Center.X+r.HalfDimension.X ||
		other.Center.X+other.HalfDimension.X < r.Center.X-r.HalfDimension.X ||
		other.Center.Y-other.HalfDimension.Y > r.Center.Y+r.HalfDimension.Y ||
		other.Center.Y+other.HalfDimension.Y < r.Center.Y-r.HalfDimension.Y)
}

// Min returns the corner with the smallest coordinates.
func (r Rectangle) Min() Point {
	return Point{r.Center.X - r.HalfDimension.X, r.Center.Y - r.HalfDimension.Y}
}

// Max returns the corner with the largest coordinates.
func (r Rectangle) Max() Point {
	return Point{r.Center.X + r.HalfDimension.X, r.Center.Y + r.HalfDimension.Y}
}

// Bound converts r to an orb.Bound.
func (r Rectangle) Bound() orb.Bound {
	return orb.Bound{Min: r.Min().Orb(), Max: r.Max().Orb()}
}

// Quadrants returns the four rectangles tiling r, in the order top-left,
// top-right, bottom-left, bottom-right. Top is the smaller-Y half. Each
// quadrant spans from an edge of r to its centre.
func (r Rectangle) Quadrants() [numQuadrants]Rectangle {
	lo, c, hi := r.Min(), r.Center, r.Max()
	left, right := span(lo.X, c.X), span(c.X, hi.X)
	top, bottom := span(lo.Y, c.Y), span(c.Y, hi.Y)
	return [numQuadrants]Rectangle{
		TopLeft:     quadrant(left, top),
		TopRight:    quadrant(right, top),
		BottomLeft:  quadrant(left, bottom),
		BottomRight: quadrant(right, bottom),
	}
}

// span returns the midpoint and half-length of [a, b] as a Point.
func span(a, b float64) Point {
	half := (b - a) / 2.0
	return Point{a + half, half}
}

func quadrant(x, y Point) Rectangle {
	return NewRectangle(x.X, y.X, x.Y, y.Y)
}

// Validate checks that r has a finite centre and positive finite half-extents.
func (r Rectangle) Validate() error {
	for _, v := range []float64{r.Center.X, r.Center.Y, r.HalfDimension.X, r.HalfDimension.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidBounds, "non-finite rectangle %v", r)
		}
	}
	if r.HalfDimension.X <= 0 || r.HalfDimension.Y <= 0 {
		return errors.Wrapf(ErrInvalidBounds, "half-extents %v must be positive", r.HalfDimension)
	}
	return nil
}

func (r Rectangle) String() string {
	return "{" + r.Center.String() + " ±" + r.HalfDimension.String() + "}"
}
