package topology

import "sort"

// Stats computes summary statistics for the network: counts of segments,
// true intersections, dangling ends, the intersection degree histogram
// and the number of connected components.
// Complexity: O(V + E) over segments and adjacency edges.
func (g *Graph) Stats() Stats {
	st := Stats{
		Segments:     len(g.segments),
		DegreeCounts: make(map[int]int),
	}

	for _, k := range g.keys {
		b := g.buckets[k]
		if len(b.ids) < 2 {
			st.DanglingEnds++
			continue
		}
		st.Intersections++
		st.DegreeCounts[len(b.ids)]++
	}

	st.Components = g.componentCount()

	return st
}

// componentCount sweeps segments breadth-first over the adjacency
// relation. Seeds are taken in ascending ID order, so traversal is
// deterministic; an isolated segment forms its own component.
func (g *Graph) componentCount() int {
	ids := make([]int, 0, len(g.segments))
	for _, s := range g.segments {
		ids = append(ids, s.ID)
	}
	sort.Ints(ids)

	visited := make(map[int]bool, len(ids))
	queue := make([]int, 0, len(ids))
	components := 0

	for _, seed := range ids {
		if visited[seed] {
			continue
		}
		components++
		visited[seed] = true

		queue = append(queue[:0], seed)
		for head := 0; head < len(queue); head++ {
			for _, next := range g.adjacency[queue[head]] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}

	return components
}
