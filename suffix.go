// suffix.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the suffix merger: it merges nodes that
// accept identical suffix languages, the pass that turns the trie
// produced by the builder into a diamond-shaped DAG.
//
// Rather than materialise each node's suffix-language set, nodes are
// hash-consed on a structural key: because children are canonicalised
// before their parent, and no node has two children whose labels start
// with the same byte, a node's label plus its set of canonical child ids
// is exactly as discriminating as its suffix-language set. A
// simplelru.LRU in front of the memo table bounds memory for very large
// dictionaries. The default size is generous enough that dictionaries of
// a few tens of thousands of words never evict a live key, so merging
// stays exact in practice; if it ever did evict, the result would be a
// larger-than-minimal but still correct automaton.

package dafsa

import (
	"encoding/binary"
	"sort"

	"github.com/hashicorp/golang-lru/simplelru"
)

// defaultSuffixCacheSize bounds the suffix-merger's memoisation table.
const defaultSuffixCacheSize = 1 << 20

// suffixMerger holds the state of one suffix-merge pass.
type suffixMerger struct {
	g       *graph
	ng      *graph
	byOldID map[nodeID]nodeID
	cache   *simplelru.LRU
}

func newSuffixMerger(g *graph) *suffixMerger {
	// NewLRU only fails for a non-positive size
	cache, _ := simplelru.NewLRU(defaultSuffixCacheSize, nil)
	return &suffixMerger{
		g:       g,
		ng:      &graph{},
		byOldID: make(map[nodeID]nodeID, len(g.nodes)),
		cache:   cache,
	}
}

// mergeSuffixes generates a new graph where nodes representing identical
// downstream word sets are merged.
func mergeSuffixes(g *graph) *graph {
	m := newSuffixMerger(g)
	roots := make([]nodeID, len(g.roots))
	for i, r := range g.roots {
		roots[i] = m.join(r)
	}
	m.ng.roots = roots
	return m.ng
}

// join returns the canonical representative for old, creating one if this
// is the first time this exact (label, children) shape has been seen.
// Children are canonicalised first, so the key is built from already-
// canonical ids: the first node observed for a given key wins.
func (m *suffixMerger) join(old nodeID) nodeID {
	if old == sinkID {
		return sinkID
	}
	if nid, ok := m.byOldID[old]; ok {
		return nid
	}
	oldNode := m.g.node(old)
	children := make([]nodeID, len(oldNode.children))
	for i, c := range oldNode.children {
		children[i] = m.join(c)
	}
	key := canonicalKey(oldNode.label, children)
	if cached, ok := m.cache.Get(key); ok {
		nid := cached.(nodeID)
		m.byOldID[old] = nid
		return nid
	}
	nid := m.ng.alloc(node{
		label:    append([]byte(nil), oldNode.label...),
		children: children,
	})
	m.cache.Add(key, nid)
	m.byOldID[old] = nid
	return nid
}

// canonicalKey builds a string uniquely identifying a (label, children)
// shape, suitable as a hash-consing key once children are canonical.
// Children are keyed as a set: two nodes whose child lists differ only
// in order accept the same words and must land on the same key.
func canonicalKey(label []byte, children []nodeID) string {
	set := append([]nodeID(nil), children...)
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	buf := make([]byte, 0, 2+len(label)+4*len(set))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(label)))
	buf = append(buf, label...)
	for _, c := range set {
		buf = binary.BigEndian.AppendUint32(buf, uint32(c))
	}
	return string(buf)
}
