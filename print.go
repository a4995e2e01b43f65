package quadtree

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Fprint writes the subtree rooted at q to w, one node per line, indented two
// spaces per level below q. A leaf line holds its bounds and points; a split
// node prints its bounds, then its own points on an indented "Points:" line.
// With short set, each node is a single "|" line of its points.
func (q *Quadtree) Fprint(w io.Writer, short bool) error {
	var err error
	q.Walk(func(node *Quadtree) bool {
		if err != nil {
			return false
		}
		indent := strings.Repeat("  ", node.depth-q.depth)
		var line string
		switch {
		case short:
			line = indent + "|" + formatPoints(node.points) + "\n"
		case node.children == nil:
			line = indent + node.boundary.String() + "  " + formatPoints(node.points) + "\n"
		default:
			line = indent + node.boundary.String() + "\n" +
				indent + "  Points: " + formatPoints(node.points) + "\n"
		}
		_, err = io.WriteString(w, line)
		return err == nil
	})
	return errors.Wrap(err, "print tree")
}

// String returns the full Fprint dump of q.
func (q *Quadtree) String() string {
	var b strings.Builder
	_ = q.Fprint(&b, false)
	return b.String()
}

func formatPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
