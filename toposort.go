// toposort.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements topological ordering: a Kahn-style ordering
// over the DAG, consumed by the encoder so that every node is emitted
// only after all of its children already have known byte offsets.

package dafsa

// topSort returns the nodes of g in an order where every node precedes
// all of its descendants. Incoming-degree counts come from a full
// traversal (recursing into a node's children only on first visit); the
// source's synthetic contribution to each root's count is then removed
// before the usual zero-in-degree harvesting loop runs. The sink is never
// emitted. Nodes are popped from the end of the waiting list (a stack, not
// a queue): this detail is load-bearing for producing the exact node
// order the encoder needs to reproduce historical byte-for-byte output.
func topSort(g *graph) []nodeID {
	incoming := make(map[nodeID]int, len(g.nodes))
	countIncoming(g, incoming, g.roots)
	for _, r := range g.roots {
		incoming[r]--
	}

	var waiting []nodeID
	for _, r := range g.roots {
		if incoming[r] == 0 {
			waiting = append(waiting, r)
		}
	}

	nodes := make([]nodeID, 0, len(g.nodes))
	for len(waiting) > 0 {
		n := waiting[len(waiting)-1]
		waiting = waiting[:len(waiting)-1]
		nodes = append(nodes, n)
		for _, c := range g.node(n).children {
			if c == sinkID {
				continue
			}
			incoming[c]--
			if incoming[c] == 0 {
				waiting = append(waiting, c)
			}
		}
	}
	return nodes
}

func countIncoming(g *graph, incoming map[nodeID]int, roots []nodeID) {
	var visit func(id nodeID)
	visit = func(id nodeID) {
		if id == sinkID {
			return
		}
		if _, ok := incoming[id]; ok {
			incoming[id]++
			return
		}
		incoming[id] = 1
		for _, c := range g.node(id).children {
			visit(c)
		}
	}
	for _, r := range roots {
		visit(r)
	}
}
