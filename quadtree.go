/*
Package quadtree implements a point-region quadtree over a bounded plane.

A leaf buffers up to Capacity points. The insert that finds a full leaf splits
it into four quadrants and routes the point to one of them; the points the
leaf already held stay where they are. Nodes at MaxDepth, or too small to
halve, never split and keep accepting points.

Routing is half-open: a point on a dividing line goes to the left quadrant
(x <= centre) and the top quadrant (y <= centre). Top is the smaller-Y half.

A Quadtree is not safe for concurrent use. Wrap it in a Locked to share it
between goroutines.
*/
package quadtree

import (
	"github.com/pkg/errors"
)

// Quadrant indexes a node's children.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

const numQuadrants = 4

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

// Quadtree is a node of the tree. The root is created with New or
// NewWithConfig; children are created by the tree itself.
type Quadtree struct {
	boundary Rectangle
	capacity int
	depth    int
	maxDepth int
	points   []Point
	children *[numQuadrants]*Quadtree
}

// New creates an empty tree covering the rectangle centred on
// (centerX, centerY) with the given half-extents.
func New(centerX, centerY, halfWidth, halfHeight float64, capacity int) (*Quadtree, error) {
	if capacity == 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	cfg := DefaultConfig()
	cfg.Capacity = capacity
	return NewWithConfig(NewRectangle(centerX, centerY, halfWidth, halfHeight), cfg)
}

// NewWithConfig creates an empty tree covering bounds. A nil cfg means
// DefaultConfig.
func NewWithConfig(bounds Rectangle, cfg *Config) (*Quadtree, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	c := *cfg.OrDefault()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Quadtree{
		boundary: bounds,
		capacity: c.Capacity,
		maxDepth: c.MaxDepth,
		points:   make([]Point, 0, c.Capacity),
	}, nil
}

// Bounds returns the region covered by q.
func (q *Quadtree) Bounds() Rectangle { return q.boundary }

// Capacity returns the number of points a leaf holds before splitting.
func (q *Quadtree) Capacity() int { return q.capacity }

// Depth returns the distance from the root; the root is at depth 0.
func (q *Quadtree) Depth() int { return q.depth }

// IsSplit reports whether q has children.
func (q *Quadtree) IsSplit() bool { return q.children != nil }

// Points returns a copy of the points buffered on q itself, not its subtree.
func (q *Quadtree) Points() []Point {
	return append([]Point(nil), q.points...)
}

// Children returns q's children indexed by Quadrant, all nil for a leaf.
// The nodes are owned by q and are for inspection only: inserting into or
// clearing a child directly bypasses routing and breaks the tree.
func (q *Quadtree) Children() [numQuadrants]*Quadtree {
	if q.children == nil {
		return [numQuadrants]*Quadtree{}
	}
	return *q.children
}

// Insert adds p to the subtree rooted at q. It returns ErrOutOfBounds if p
// lies outside q's closed bounds, in which case q is unchanged.
func (q *Quadtree) Insert(p Point) error {
	if !q.boundary.ContainsClosed(p) {
		return errors.Wrapf(ErrOutOfBounds, "point %v, bounds %v", p, q.boundary)
	}
	q.insert(p)
	return nil
}

// insert assumes p is inside q's closed bounds. The quadrant chosen by
// route always covers p, so no bounds check is repeated on the way down.
func (q *Quadtree) insert(p Point) {
	for {
		if len(q.points) < q.capacity || (q.children == nil && !q.canSubdivide()) {
			q.points = append(q.points, p)
			return
		}
		if q.children == nil {
			q.subdivide()
		}
		q = q.children[q.route(p)]
	}
}

// route picks the quadrant owning p. Points on the vertical dividing line
// belong to the left half, points on the horizontal line to the top half.
func (q *Quadtree) route(p Point) Quadrant {
	quadrant := TopLeft
	if p.X > q.boundary.Center.X {
		quadrant += TopRight
	}
	if p.Y > q.boundary.Center.Y {
		quadrant += BottomLeft
	}
	return quadrant
}

// canSubdivide reports whether q may split: it is above the depth cap and
// halving its half-extents still moves the quadrant centres.
func (q *Quadtree) canSubdivide() bool {
	if q.depth >= q.maxDepth {
		return false
	}
	c, h := q.boundary.Center, q.boundary.HalfDimension
	qx, qy := h.X/2.0, h.Y/2.0
	return c.X-qx < c.X && c.X+qx > c.X && c.Y-qy < c.Y && c.Y+qy > c.Y
}

// subdivide creates all four children at once. Points already buffered on q
// are not moved.
func (q *Quadtree) subdivide() {
	var children [numQuadrants]*Quadtree
	for i, bounds := range q.boundary.Quadrants() {
		children[i] = q.createQuadrant(bounds)
	}
	q.children = &children
}

func (q *Quadtree) createQuadrant(bounds Rectangle) *Quadtree {
	return &Quadtree{
		boundary: bounds,
		capacity: q.capacity,
		depth:    q.depth + 1,
		maxDepth: q.maxDepth,
		points:   make([]Point, 0, q.capacity),
	}
}

// Query returns every point in the subtree that lies strictly inside r.
// A node's own points come before its children's, and children are visited
// top-left, top-right, bottom-left, bottom-right.
func (q *Quadtree) Query(r Rectangle) []Point {
	var points []Point
	q.query(r, nil, func(p Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

// QueryFunc calls fn for every point in the subtree strictly inside r, in
// Query order, until fn returns false.
func (q *Quadtree) QueryFunc(r Rectangle, fn func(Point) bool) {
	q.query(r, nil, fn)
}

// PointsAround returns the points in the subtree closer than radius to p,
// in Query order. p itself is included if it was inserted.
func (q *Quadtree) PointsAround(p Point, radius float64) []Point {
	var points []Point
	q.QueryFunc(NewRectangle(p.X, p.Y, radius, radius), func(other Point) bool {
		if p.DistanceTo(other) < radius {
			points = append(points, other)
		}
		return true
	})
	return points
}

// QueryStats is Query that also reports how many nodes were visited.
func (q *Quadtree) QueryStats(r Rectangle) ([]Point, QueryStats) {
	var (
		points []Point
		stats  QueryStats
	)
	q.query(r, &stats, func(p Point) bool {
		points = append(points, p)
		return true
	})
	return points, stats
}

func (q *Quadtree) query(r Rectangle, stats *QueryStats, fn func(Point) bool) bool {
	if stats != nil {
		stats.Visited++
	}
	if !q.boundary.Intersects(r) {
		if stats != nil {
			stats.Pruned++
		}
		return true
	}
	return q.search(r, stats, fn)
}

// search scans q's own points and descends into the children r can reach.
// Children are pruned by q's dividing lines, the ones route sends points
// across, not by their own bounds: a child's centre and half-extents need not
// reproduce the line exactly in floating point.
func (q *Quadtree) search(r Rectangle, stats *QueryStats, fn func(Point) bool) bool {
	for _, p := range q.points {
		if stats != nil {
			stats.Scanned++
		}
		if r.Contains(p) && !fn(p) {
			return false
		}
	}
	if q.children == nil {
		return true
	}
	for i, child := range q.children {
		if stats != nil {
			stats.Visited++
		}
		if !q.reaches(r, Quadrant(i)) {
			if stats != nil {
				stats.Pruned++
			}
			continue
		}
		if !child.search(r, stats, fn) {
			return false
		}
	}
	return true
}

// reaches reports whether r can strictly contain a point that route sends to
// quadrant.
func (q *Quadtree) reaches(r Rectangle, quadrant Quadrant) bool {
	c, lo, hi := q.boundary.Center, r.Min(), r.Max()
	x := lo.X < c.X
	if quadrant == TopRight || quadrant == BottomRight {
		x = hi.X > c.X
	}
	y := lo.Y < c.Y
	if quadrant == BottomLeft || quadrant == BottomRight {
		y = hi.Y > c.Y
	}
	return x && y
}

// Clear drops every point and child, leaving q an empty leaf with its
// bounds and configuration unchanged.
func (q *Quadtree) Clear() {
	q.children = nil
	q.points = make([]Point, 0, q.capacity)
}

// Walk calls fn for q and each descendant in pre-order, children in
// Quadrant order. A false return skips that node's children.
func (q *Quadtree) Walk(fn func(*Quadtree) bool) {
	if !fn(q) || q.children == nil {
		return
	}
	for _, child := range q.children {
		child.Walk(fn)
	}
}

// Len returns the number of points stored in the subtree.
func (q *Quadtree) Len() int {
	n := 0
	q.Walk(func(node *Quadtree) bool {
		n += len(node.points)
		return true
	})
	return n
}
