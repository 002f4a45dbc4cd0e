package binding

import (
	"fmt"
	"sort"
)

// orderedReferences returns the applications app transitively references,
// each one after the applications it references itself. Ties keep discovery
// order. A reference back to app or any other cycle yields ErrReferenceCycle.
func orderedReferences(app *Application) ([]*Application, error) {
	index := map[*Application]int{}

	var nodes []*Application

	var discover func(a *Application)
	discover = func(a *Application) {
		for _, ref := range a.ReferencedApplications {
			if ref == nil {
				continue
			}

			if _, ok := index[ref]; ok {
				continue
			}

			index[ref] = len(nodes)
			nodes = append(nodes, ref)
			discover(ref)
		}
	}

	index[app] = -1
	discover(app)

	order, err := topoSort(len(nodes), func(i int) ([]int, error) {
		var deps []int

		for _, ref := range nodes[i].ReferencedApplications {
			if ref == nil {
				continue
			}

			d := index[ref]
			if d < 0 {
				return nil, fmt.Errorf("%w: %s references its referrer", ErrReferenceCycle, nodes[i].Name)
			}

			deps = append(deps, d)
		}

		return deps, nil
	})
	if err != nil {
		return nil, err
	}

	refs := make([]*Application, len(order))
	for i, j := range order {
		refs[i] = nodes[j]
	}

	return refs, nil
}

// topoSort returns indices in dependency order.
//
// depsFn(i) yields indices that must come before i. When several nodes are
// available the smallest index is picked, so the result is deterministic.
func topoSort(n int, depsFn func(i int) ([]int, error)) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		deps, err := depsFn(i)
		if err != nil {
			return nil, err
		}

		for _, d := range deps {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, ErrReferenceCycle
	}

	return order, nil
}
