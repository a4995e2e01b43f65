package quadtree

// QueryStats counts the work done by one QueryStats call.
type QueryStats struct {
	Visited int // nodes tested against the query
	Pruned  int // visited nodes skipped because the query misses their region
	Scanned int // buffered points tested for containment
}

// TreeStats describes the shape of a tree.
type TreeStats struct {
	Nodes    int
	Leaves   int
	Splits   int // nodes with children; each split creates four nodes
	MaxDepth int // deepest node present
	Points   int
	Overflow int // points held beyond Capacity by nodes that may not split
}

// Stats walks the subtree rooted at q.
func (q *Quadtree) Stats() TreeStats {
	var s TreeStats
	q.Walk(func(node *Quadtree) bool {
		s.Nodes++
		s.Points += len(node.points)
		if node.children == nil {
			s.Leaves++
		} else {
			s.Splits++
		}
		if node.depth > s.MaxDepth {
			s.MaxDepth = node.depth
		}
		if extra := len(node.points) - node.capacity; extra > 0 {
			s.Overflow += extra
		}
		return true
	})
	return s
}
