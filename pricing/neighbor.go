package pricing

// AdjacencyFunc returns the variables adjacent to j: those sharing at
// least one constraint row with it. Pricing treats this as an unweighted
// graph over variable indices.
type AdjacencyFunc func(j int) []int

// queueItem is one frontier entry in the bounded BFS walk.
type queueItem struct {
	idx   int
	depth int
}

// NeighborOptions bounds a Neighborhood walk.
type NeighborOptions struct {
	MaxDepth int
}

// DefaultNeighborOptions returns a depth-2 bound, matching
// Options.NeighborDepth's default.
func DefaultNeighborOptions() NeighborOptions {
	return NeighborOptions{MaxDepth: 2}
}

// walker carries the BFS frontier and visited set for one Neighborhood
// call.
type walker struct {
	adj     AdjacencyFunc
	opts    NeighborOptions
	visited map[int]bool
	queue   []queueItem
}

// Neighborhood returns every variable reachable from seed within
// opts.MaxDepth row-adjacency hops, seed excluded. The driver uses this
// after a pivot to bias the next pricing pass toward columns whose
// reduced cost is most likely to have moved — those sharing a row with
// the variable that most recently entered the basis or flipped bounds.
func Neighborhood(seed int, adj AdjacencyFunc, opts NeighborOptions) []int {
	w := &walker{
		adj:     adj,
		opts:    opts,
		visited: map[int]bool{seed: true},
		queue:   []queueItem{{idx: seed, depth: 0}},
	}

	var out []int
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if item.idx != seed {
			out = append(out, item.idx)
		}
		if item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, next := range w.adj(item.idx) {
			if w.visited[next] {
				continue
			}
			w.visited[next] = true
			w.queue = append(w.queue, queueItem{idx: next, depth: item.depth + 1})
		}
	}
	return out
}
