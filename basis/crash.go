package basis

import "sort"

// unionFind is a disjoint-set structure over basis rows, used by Crash to
// decide whether accepting a candidate column would close a cycle among
// the rows it touches.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path compression
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}

// Candidate describes a structural column available to the crash
// procedure: its variable index and the rows/values it touches.
type Candidate struct {
	VarIndex int
	Rows     []int
	Values   []float64
}

// Crash builds a starting basis_header of length m, favoring structural
// columns over slacks wherever that does not create a cycle in the
// row-adjacency graph induced by chosen columns — the same acceptance rule
// Kruskal's algorithm uses for MST edges, here applied to pick a sparse,
// triangular-or-network-shaped starting basis instead of the all-slack
// basis. slackVar(row) must return the variable index of row's logical
// slack. Rows left untouched by any accepted candidate keep their slack.
//
// Only candidates touching one or two distinct rows participate: a
// single-row column is accepted like a self-loop (it replaces that row's
// slack outright); a two-row column is accepted like a graph edge
// connecting its rows, replacing the slack of the second row once union
// finds its rows were not already connected. Columns touching three or
// more rows are left to Phase I to bring in, since they do not fit the
// union-find cycle test below.
func Crash(m int, candidates []Candidate, slackVar func(row int) int) []int {
	header := make([]int, m)
	for r := 0; r < m; r++ {
		header[r] = slackVar(r)
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Rows) < len(sorted[j].Rows)
	})

	uf := newUnionFind(m)
	occupied := make([]bool, m) // row already holds a structural column

	for _, c := range sorted {
		distinct := distinctRows(c.Rows)
		switch len(distinct) {
		case 1:
			r := distinct[0]
			if !occupied[r] {
				header[r] = c.VarIndex
				occupied[r] = true
			}
		case 2:
			r1, r2 := distinct[0], distinct[1]
			if occupied[r2] {
				r1, r2 = r2, r1
			}
			if occupied[r2] {
				continue // both rows already hold a structural column
			}
			if uf.union(r1, r2) {
				header[r2] = c.VarIndex
				occupied[r2] = true
			}
		default:
			continue
		}
	}
	return header
}

func distinctRows(rows []int) []int {
	seen := make(map[int]struct{}, len(rows))
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
