// encode.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the encoder: it serialises the minimised
// graph into the final byte array, laying nodes out in reverse
// topological order so that every cross-reference is known and points
// strictly forward once the whole buffer is flipped at the end.

package dafsa

import "sort"

// offsetHistogram counts, across an entire encode, how many offsets were
// emitted at each width. It is diagnostics only (see BuildStats) and has
// no bearing on the encoded bytes.
type offsetHistogram struct {
	one, two, three int
}

// encodeGraph serialises g into the final byte array.
//
// The buffer is built in the reverse of its final order (children are
// written before the parents that reference them, so every reference is a
// forward distance once the whole thing is reversed at the end). Per
// node, the encoder either inlines the label as a bare prefix (when the
// node's one non-sink child was just written immediately before it) or
// emits a full offset list followed by a terminated label.
func encodeGraph(g *graph) ([]byte, error) {
	out, _, err := encodeGraphCounting(g)
	return out, err
}

func encodeGraphCounting(g *graph) ([]byte, offsetHistogram, error) {
	order := topSort(g)
	offsets := make(map[nodeID]int, len(g.nodes))
	var output []byte
	var hist offsetHistogram

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		nd := g.node(n)
		if len(nd.children) == 1 && nd.children[0] != sinkID && offsets[nd.children[0]] == len(output) {
			output = append(output, encodePrefix(nd.label)...)
		} else {
			links, err := encodeLinks(nd.children, offsets, len(output), &hist)
			if err != nil {
				return nil, hist, err
			}
			output = append(output, links...)
			output = append(output, encodeLabel(nd.label)...)
		}
		offsets[n] = len(output)
	}

	links, err := encodeLinks(g.roots, offsets, len(output), &hist)
	if err != nil {
		return nil, hist, err
	}
	output = append(output, links...)

	for i, j := 0, len(output)-1; i < j; i, j = i+1, j-1 {
		output[i], output[j] = output[j], output[i]
	}
	return output, hist, nil
}

// encodeLinks encodes a node's children as a list of 1/2/3-byte offsets,
// setting the end-bit on the last one emitted (the child with the
// smallest recorded offset). current is the buffer length at the point
// this offset block starts. hist, if non-nil, is credited with one count
// per offset actually emitted in the winning guess iteration.
func encodeLinks(children []nodeID, offsets map[nodeID]int, current int, hist *offsetHistogram) ([]byte, error) {
	if len(children) == 1 && children[0] == sinkID {
		// This is an <end_label> node; no links follow it.
		return nil, nil
	}

	sorted := append([]nodeID(nil), children...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return offsets[sorted[i]] > offsets[sorted[j]]
	})

	guess := 3 * len(sorted)
	var buf []byte
	var widths []int
	last := 0
	for {
		pos := current + guess
		buf = buf[:0]
		widths = widths[:0]
		for _, child := range sorted {
			last = len(buf)
			before := len(buf)
			distance := pos - offsets[child]
			switch {
			case distance < (1 << 6):
				buf = append(buf, byte(distance))
			case distance < (1 << 13):
				buf = append(buf, byte(0x40|(distance>>8)), byte(distance&0xFF))
			case distance < (1 << 21):
				buf = append(buf, byte(0x60|(distance>>16)), byte((distance>>8)&0xFF), byte(distance&0xFF))
			default:
				return nil, ErrOffsetOverflow
			}
			widths = append(widths, len(buf)-before)
			pos -= distance
		}
		if len(buf) == guess {
			break
		}
		guess = len(buf)
	}
	buf[last] |= 0x80

	if hist != nil {
		for _, w := range widths {
			switch w {
			case 1:
				hist.one++
			case 2:
				hist.two++
			case 3:
				hist.three++
			}
		}
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf, nil
}

// encodePrefix encodes a label as bytes without a trailing high bit: used
// when the label serves as a bare prefix chained into a following node.
func encodePrefix(label []byte) []byte {
	return reverseBytes(label)
}

// encodeLabel encodes a label with its terminating high bit set on the
// label's last byte (a tag value yields an <return_value> byte in
// [0x80,0x8F]; a printable character yields an <end_char> byte in
// [0xA0,0xFF]).
func encodeLabel(label []byte) []byte {
	buf := encodePrefix(label)
	buf[0] |= 0x80
	return buf
}
