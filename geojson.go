package quadtree

import (
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection describes the tree as GeoJSON: one polygon per node,
// carrying its depth, buffered point count and whether it is split, and,
// if withPoints is set, one point feature per stored point.
//
// Coordinates are the tree's planar X and Y, not longitude and latitude.
func (q *Quadtree) FeatureCollection(withPoints bool) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	q.Walk(func(node *Quadtree) bool {
		f := geojson.NewFeature(node.boundary.Bound().ToPolygon())
		f.Properties["kind"] = "node"
		f.Properties["depth"] = node.depth
		f.Properties["points"] = len(node.points)
		f.Properties["split"] = node.children != nil
		fc.Append(f)
		if !withPoints {
			return true
		}
		for _, p := range node.points {
			pf := geojson.NewFeature(p.Orb())
			pf.Properties["kind"] = "point"
			pf.Properties["depth"] = node.depth
			fc.Append(pf)
		}
		return true
	})
	return fc
}
