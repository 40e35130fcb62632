// reverse.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the reverser: it produces a new graph with
// edge direction inverted, re-rooted at the former sink.

package dafsa

// reverseGraph builds a new graph in which every edge points the opposite
// way. A new node is synthesised for each old node on first visit, with a
// byte-reversed label and the current parent as its sole child so far;
// subsequent visits append further parents to that same new node's child
// list. Old root edges become new references to the sink; old references
// to the sink become new roots.
func reverseGraph(g *graph) *graph {
	ng := &graph{}
	newIDFor := make(map[nodeID]nodeID, len(g.nodes))
	var newRoots []nodeID

	var dfs func(old, parent nodeID)
	dfs = func(old, parent nodeID) {
		if old == sinkID {
			newRoots = append(newRoots, parent)
			return
		}
		if nid, ok := newIDFor[old]; ok {
			n := ng.node(nid)
			n.children = append(n.children, parent)
			return
		}
		oldNode := g.node(old)
		nid := ng.alloc(node{
			label:    reverseBytes(oldNode.label),
			children: []nodeID{parent},
		})
		newIDFor[old] = nid
		for _, c := range oldNode.children {
			dfs(c, nid)
		}
	}

	for _, r := range g.roots {
		dfs(r, sinkID)
	}
	ng.roots = newRoots
	return ng
}
