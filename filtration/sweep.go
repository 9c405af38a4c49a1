package filtration

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/phlite/core"
)

// Sweep enumerates filtration thresholds over reduced and reports the
// simplex proxy triple of every induced filtration graph.
//
// The threshold range [minD, maxD] is taken from the REDUCED graph's degree
// distribution; the membership predicate at each threshold reads fullDegree,
// the degree table frozen from the full graph before reduction. An empty
// reduced graph is degenerate-but-valid: the sweep runs zero iterations and
// returns an empty Result.
//
// Returns ErrGraphNil, ErrInvalidStep / ErrBadDirection for bad options, or
// ErrMissingDegree when a reduced vertex has no full-degree entry.
//
// Complexity: O(points · (V+E+T)) where T is the triangle-degree work of one
// induced subgraph; with WithWorkers(n) the points are computed n at a time.
func Sweep(reduced *core.Graph, fullDegree map[string]int, opts ...Option) (*Result, error) {
	if reduced == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{Direction: o.Direction}
	ids := reduced.Vertices()
	if len(ids) == 0 {
		return res, nil // degenerate range, zero iterations
	}

	// Eager invariant check: every surviving vertex needs an activation value.
	for _, id := range ids {
		if _, ok := fullDegree[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingDegree, id)
		}
	}

	minD, maxD := degreeRange(reduced, ids)
	res.Step = resolveStep(o.Step, maxD-minD)
	thresholds := thresholdSeq(o.Direction, minD, maxD, res.Step)

	res.Points = make([]Point, len(thresholds))
	var err error
	if o.Workers > 0 {
		err = sweepParallel(reduced, fullDegree, o, thresholds, res.Points)
	} else {
		err = sweepSequential(reduced, fullDegree, o, thresholds, res.Points)
	}
	if err != nil {
		return nil, err
	}

	if o.OnThreshold != nil {
		for _, p := range res.Points {
			o.OnThreshold(p)
		}
	}

	return res, nil
}

// degreeRange computes the min and max degree over the reduced graph itself.
func degreeRange(g *core.Graph, ids []string) (minD, maxD int) {
	for i, id := range ids {
		d, _ := g.Degree(id) // ids enumerate existing vertices
		if i == 0 || d < minD {
			minD = d
		}
		if i == 0 || d > maxD {
			maxD = d
		}
	}

	return minD, maxD
}

// resolveStep applies the automatic policy when no explicit step was set:
// step 1 while the span fits autoStepSpan points, else floor(span/autoStepSpan).
func resolveStep(explicit, span int) int {
	if explicit > 0 {
		return explicit
	}
	if span <= autoStepSpan {
		return 1
	}

	return span / autoStepSpan
}

// thresholdSeq materializes the threshold sequence, inclusive at both ends
// of the stepped walk: descending for SuperLevel, ascending for SubLevel.
func thresholdSeq(dir Direction, minD, maxD, step int) []int {
	out := make([]int, 0, (maxD-minD)/step+1)
	if dir == SuperLevel {
		for t := maxD; t >= minD; t -= step {
			out = append(out, t)
		}
	} else {
		for t := minD; t <= maxD; t += step {
			out = append(out, t)
		}
	}

	return out
}

// pointAt builds the ephemeral filtration graph at threshold t and records
// its simplex proxy triple. Membership reads fullDegree only.
func pointAt(reduced *core.Graph, fullDegree map[string]int, dir Direction, t int) Point {
	keep := make(map[string]struct{})
	for _, id := range reduced.Vertices() {
		d := fullDegree[id]
		if (dir == SuperLevel && d >= t) || (dir == SubLevel && d <= t) {
			keep[id] = struct{}{}
		}
	}
	sub := reduced.Induced(keep)

	return Point{
		Threshold: t,
		Nodes:     sub.VertexCount(),
		Edges:     sub.EdgeCount(),
		Triangles: sub.TriangleDegreeSum(),
	}
}

// sweepSequential walks the thresholds one by one, checking cancellation
// between iterations.
func sweepSequential(reduced *core.Graph, fullDegree map[string]int, o Options, thresholds []int, out []Point) error {
	for i, t := range thresholds {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		out[i] = pointAt(reduced, fullDegree, o.Direction, t)
	}

	return nil
}

// sweepParallel fans thresholds out over o.Workers goroutines. Each point
// lands in its threshold slot, so the collected sequence is ordered by
// threshold value, not by completion. The reduced graph and the degree
// table are read-only for the whole fan-out.
func sweepParallel(reduced *core.Graph, fullDegree map[string]int, o Options, thresholds []int, out []Point) error {
	var (
		wg   sync.WaitGroup
		next = make(chan int)
	)
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				out[i] = pointAt(reduced, fullDegree, o.Direction, thresholds[i])
			}
		}()
	}

	var err error
feed:
	for i := range thresholds {
		select {
		case <-o.Ctx.Done():
			err = o.Ctx.Err()
			break feed
		case next <- i:
		}
	}
	close(next)
	wg.Wait()

	return err
}
