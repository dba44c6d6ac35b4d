package aco

import (
	"sync"

	"github.com/katalvlaran/acotour/matrix"
)

// ant owns every buffer one construction needs, so building a tour does
// not allocate after the engine is created.
type ant struct {
	id      int
	stream  antStream
	path    []int     // n+1 vertices
	visited []bool    // n flags
	cdf     []float64 // n scratch weights

	degenerate int64 // uniform fallbacks during the last construction
}

func newAnt(id, n int) *ant {
	return &ant{
		id:      id,
		stream:  newAntStream(),
		path:    make([]int, n+1),
		visited: make([]bool, n),
		cdf:     make([]float64, n),
	}
}

// scoredTour pairs a constructed path with its length. path aliases the
// ant's buffer and is only valid until the next iteration.
type scoredTour struct {
	path []int
	cost float64
}

// colony is the read-only state ants share during one iteration.
type colony struct {
	tau   *matrix.Dense
	dist  *matrix.Dense
	alpha float64
	beta  float64
	eps   float64
}

// build constructs one closed tour from StartVertex and returns its length.
//
// Steps:
//  1. Reset visited; mark StartVertex.
//  2. n−1 times: pick an unvisited vertex from the current rows, append, mark.
//  3. Close the loop back to StartVertex.
//
// Complexity: O(n²) time (n steps × O(n) selection), no allocations.
func (a *ant) build(c colony) (scoredTour, error) {
	var (
		n    = len(a.visited)
		i    int
		cur  = StartVertex
		next int
		deg  bool
		err  error
		tau  []float64
		dist []float64
	)
	for i = range a.visited {
		a.visited[i] = false
	}
	a.degenerate = 0
	a.visited[cur] = true
	a.path[0] = cur

	for i = 1; i < n; i++ {
		tau, _ = c.tau.RowView(cur)   // safe: cur < n
		dist, _ = c.dist.RowView(cur) // safe: cur < n
		next, deg, err = pickMove(tau, dist, a.visited, c.alpha, c.beta, c.eps, a.stream.rng, a.cdf)
		if err != nil {
			return scoredTour{}, err
		}
		if deg {
			a.degenerate++
		}
		a.path[i] = next
		a.visited[next] = true
		cur = next
	}
	a.path[n] = StartVertex

	return scoredTour{path: a.path, cost: pathLength(c.dist, a.path)}, nil
}

// constructAll builds and scores one tour per ant, in ants order.
// With workers > 1 ants run concurrently; the call returns only after every
// ant has finished, which is the barrier before any pheromone update.
func constructAll(ants []*ant, c colony, workers int, out []scoredTour) error {
	if workers <= 1 || len(ants) == 1 {
		var (
			k   int
			err error
		)
		for k = range ants {
			if out[k], err = ants[k].build(c); err != nil {
				return err
			}
		}
		return nil
	}

	if workers > len(ants) {
		workers = len(ants)
	}
	var (
		wg   sync.WaitGroup
		jobs = make(chan int, len(ants))
		errs = make([]error, len(ants))
		k    int
	)
	for k = range ants {
		jobs <- k
	}
	close(jobs)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out[idx], errs[idx] = ants[idx].build(c)
			}
		}()
	}
	wg.Wait()

	for k = range errs {
		if errs[k] != nil {
			return errs[k]
		}
	}
	return nil
}
