package reactor

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// propagate runs one round for a changed input: collect the affected
// subgraph, recompute it in dependency order, then fire callbacks for the
// cells whose stable value differs from before the round.
//
// Rank ordering (1 + max dep rank, cached at creation) guarantees every
// dependency of an affected cell has settled before the cell recomputes,
// even on diamond shapes where a cell is reachable along multiple paths.
// Each affected cell recomputes exactly once per round.
func (r *Reactor[T]) propagate(from CellID) {
	order := r.affected(from).ToSlice()
	sort.Slice(order, func(i, j int) bool {
		ri, rj := r.cells[order[i]].rank, r.cells[order[j]].rank
		if ri != rj {
			return ri < rj
		}
		return order[i] < order[j]
	})

	before := make(map[CellID]T, len(order))
	for _, id := range order {
		c := r.cells[id]
		before[id] = c.value
		c.value = c.fn(r.depValues(c))
	}

	// Firing happens after the whole subgraph has settled, in the same cell
	// order, so a dependent's callback never runs before a dependency's.
	for _, id := range order {
		c := r.cells[id]
		if c.value == before[id] {
			continue
		}
		r.fire(c)
	}
}

// affected walks the reverse edges from the changed input. Only compute
// cells can appear in the result; the input itself is excluded.
func (r *Reactor[T]) affected(from CellID) mapset.Set[CellID] {
	affected := mapset.NewSet[CellID]()
	frontier := []CellID{from}
	for len(frontier) > 0 {
		id := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		r.cells[id].dependents.Each(func(dependent CellID) bool {
			if affected.Add(dependent) {
				frontier = append(frontier, dependent)
			}
			return false
		})
	}
	return affected
}
