package raycast

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-raycast/internal/player"
)

// AngleAt returns the absolute world angle of column i for a viewer heading.
// Column 0 is the leftmost on screen (heading + FOV/2); angles decrease to the right.
func (c *Caster) AngleAt(heading float64, i int) float64 {
	step := c.cfg.FOV / float64(c.cfg.Rays)
	return player.NormalizeAngle(heading + c.cfg.FOV/2 - float64(i)*step)
}

// column casts the ray for screen column i and applies the fisheye correction.
func (c *Caster) column(p player.State, i int) Hit {
	theta := c.AngleAt(p.Angle, i)
	h := c.Cast(p.X, p.Y, theta)
	if h.Found() {
		h.Distance = h.RayLength * math.Cos(theta-p.Angle)
	}
	return h
}

// Sweep casts all rays for one frame. Hits are ordered left to right and
// carry the perpendicular distance. When the caster is configured with more
// than one worker the sweep runs in parallel.
func (c *Caster) Sweep(p player.State) []Hit {
	if c.cfg.Workers > 1 {
		// Cannot fail without a cancelled context.
		hits, _ := c.SweepParallel(context.Background(), p)
		return hits
	}
	hits := make([]Hit, c.cfg.Rays)
	for i := range hits {
		hits[i] = c.column(p, i)
	}
	return hits
}

// SweepParallel splits the columns into contiguous bands, one per worker.
// Workers read only the map and their own copy of the player, and each writes
// a disjoint slice range, so the result equals Sweep.
func (c *Caster) SweepParallel(ctx context.Context, p player.State) ([]Hit, error) {
	n := c.cfg.Rays
	workers := c.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	hits := make([]Hit, n)
	band := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += band {
		start := start
		end := min(start+band, n)
		snap := p.Snapshot()
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				hits[i] = c.column(snap, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hits, nil
}
