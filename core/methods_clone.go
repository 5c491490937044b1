// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy: same node count, policy, edges (capacities and
// flows) and insertion order. Handles in the copy are new.
// Complexity: O(V + E).
func (g *ResidualGraph) Clone() *ResidualGraph {
	c := &ResidualGraph{
		parallel: g.parallel,
		adj:      make([][]*Edge, len(g.adj)),
		index:    make([]map[int]*Edge, len(g.adj)),
		edges:    g.edges,
	}
	for u, list := range g.adj {
		c.adj[u] = make([]*Edge, len(list))
		c.index[u] = make(map[int]*Edge, len(list))
		for i, e := range list {
			cp := *e
			c.adj[u][i] = &cp
			c.index[u][cp.To] = &cp
		}
	}

	return c
}

// ResetFlow zeroes the flow of every edge, keeping structure and capacities.
func (g *ResidualGraph) ResetFlow() {
	for _, list := range g.adj {
		for _, e := range list {
			e.Flow = 0
		}
	}
}
