package quadtree

import (
	"sync"

	"github.com/paulmach/orb/geojson"
)

// Locked serialises access to a Quadtree. Insert and Clear take the write
// lock; Query and friends take the read lock, so queries may run in parallel
// between mutations.
type Locked struct {
	mutex sync.RWMutex
	tree  *Quadtree
}

// NewLocked wraps tree. The caller must not use tree directly afterwards.
func NewLocked(tree *Quadtree) *Locked {
	return &Locked{tree: tree}
}

// Bounds returns the region covered by the tree. Bounds never change, so no
// lock is taken.
func (l *Locked) Bounds() Rectangle {
	return l.tree.boundary
}

func (l *Locked) Insert(p Point) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.tree.Insert(p)
}

// InsertAll inserts pts under a single lock, stopping at the first error.
// It returns the number of points inserted.
func (l *Locked) InsertAll(pts []Point) (int, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	for i, p := range pts {
		if err := l.tree.Insert(p); err != nil {
			return i, err
		}
	}
	return len(pts), nil
}

func (l *Locked) Query(r Rectangle) []Point {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Query(r)
}

func (l *Locked) PointsAround(p Point, radius float64) []Point {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.PointsAround(p, radius)
}

// QueryFunc holds the read lock while fn runs; fn must not call back into l
// with a mutating method.
func (l *Locked) QueryFunc(r Rectangle, fn func(Point) bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	l.tree.QueryFunc(r, fn)
}

func (l *Locked) Clear() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.tree.Clear()
}

func (l *Locked) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Len()
}

func (l *Locked) Stats() TreeStats {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Stats()
}

// FeatureCollection exports the tree under the read lock.
func (l *Locked) FeatureCollection(withPoints bool) *geojson.FeatureCollection {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.FeatureCollection(withPoints)
}
