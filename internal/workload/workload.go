// Package workload drives a quadtree the way the benchmark rounds do:
// scatter random points, insert them, and count near neighbours with one
// range query per point.
package workload

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/robert-butts/quadtree/v2"
)

// Querier is the read side of a tree.
type Querier interface {
	PointsAround(p quadtree.Point, radius float64) []quadtree.Point
}

// RandomPoints returns n points uniformly distributed over [0,w)×[0,h).
func RandomPoints(rng *rand.Rand, n int, w, h float64) []quadtree.Point {
	points := make([]quadtree.Point, n)
	for i := range points {
		points[i] = quadtree.Point{X: rng.Float64() * w, Y: rng.Float64() * h}
	}
	return points
}

// CountNeighbours counts, for each point, the other points closer than
// radius that also lie strictly inside the square of half-extent queryHalf
// around it. Pairs are counted once from each side.
func CountNeighbours(tree Querier, points []quadtree.Point, queryHalf, radius float64) int {
	count := 0
	for _, p := range points {
		window := quadtree.NewRectangle(p.X, p.Y, queryHalf, queryHalf)
		for _, other := range tree.PointsAround(p, radius) {
			if p != other && window.Contains(other) {
				count++
			}
		}
	}
	return count
}

// Options configures a round.
type Options struct {
	QueryHalf float64
	Radius    float64
	Workers   int // query batches run in parallel, at least 1
}

// Round is the outcome of one RunRound call.
type Round struct {
	Points     int
	Neighbours int
	Stats      quadtree.TreeStats
	InsertTime time.Duration
	QueryTime  time.Duration
}

// RunRound inserts points into tree, counts neighbours with opts.Workers
// parallel query batches, then clears tree. The tree is cleared even when
// the round fails.
func RunRound(ctx context.Context, tree *quadtree.Locked, points []quadtree.Point, opts Options) (Round, error) {
	defer tree.Clear()
	round := Round{Points: len(points)}

	start := time.Now()
	if n, err := tree.InsertAll(points); err != nil {
		return round, errors.Wrapf(err, "insert point %d", n)
	}
	round.InsertTime = time.Since(start)
	round.Stats = tree.Stats()

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	counts := make([]int, workers)
	g, ctx := errgroup.WithContext(ctx)
	start = time.Now()
	for b, batch := range batches(points, workers) {
		b, batch := b, batch
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[b] = CountNeighbours(tree, batch, opts.QueryHalf, opts.Radius)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return round, err
	}
	round.QueryTime = time.Since(start)
	for _, c := range counts {
		round.Neighbours += c
	}
	return round, nil
}

// batches splits points into at most n contiguous slices covering all of
// them; the last batch takes the remainder.
func batches(points []quadtree.Point, n int) [][]quadtree.Point {
	if n > len(points) {
		n = len(points)
	}
	if n == 0 {
		return nil
	}
	stride := len(points) / n
	out := make([][]quadtree.Point, 0, n)
	for b := 0; b < n; b++ {
		end := (b + 1) * stride
		if b == n-1 {
			end = len(points)
		}
		out = append(out, points[b*stride:end])
	}
	return out
}
