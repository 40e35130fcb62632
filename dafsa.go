// dafsa.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the top-level Build entry point: it strings the
// pipeline stages together, from word expansion through the rewrite
// passes to the byte encoder.

package dafsa

// Build compiles words into a compact, byte-addressed DAFSA and returns
// its serialised form.
//
// Each entry of words must already carry its tag as a trailing byte, in
// printable 7-bit ASCII (as the parser collaborator produces: it
// concatenates the digit character onto the word; Build masks the final
// byte down to its low nibble). Build fails with ErrEmptyInput if words
// is empty, ErrBadCharacter if any byte of any word falls outside
// (0x1F, 0x80), and ErrOffsetOverflow if the resulting graph needs an
// inter-node distance that the 21-bit offset encoding cannot represent.
func Build(words []string) ([]byte, error) {
	g, err := buildGraph(words)
	if err != nil {
		return nil, err
	}
	// The double reverse-then-merge-suffixes pass canonicalises suffix
	// sharing, then (after reversal) canonicalises prefix sharing, then
	// reverses once more to restore the original orientation before
	// labels are joined.
	g = reverseGraph(g)
	g = mergeSuffixes(g)
	g = reverseGraph(g)
	g = mergeSuffixes(g)
	g = joinLabels(g)
	return encodeGraph(g)
}

// BuildStats summarises one Build run for diagnostics (see the CLI's
// --stats flag); it has no bearing on the encoded output.
type BuildStats struct {
	Words            int `yaml:"words"`
	InitialNodes     int `yaml:"initial_nodes"`
	AfterFirstMerge  int `yaml:"after_first_merge"`
	AfterSecondMerge int `yaml:"after_second_merge"`
	AfterJoin        int `yaml:"after_join"`
	OutputBytes      int `yaml:"output_bytes"`
	Offsets1Byte     int `yaml:"offsets_1_byte"`
	Offsets2Byte     int `yaml:"offsets_2_byte"`
	Offsets3Byte     int `yaml:"offsets_3_byte"`
}

// BuildWithStats behaves like Build but also returns a BuildStats
// snapshot of the pipeline's intermediate node counts and the final
// offset-width histogram.
func BuildWithStats(words []string) ([]byte, *BuildStats, error) {
	stats := &BuildStats{Words: len(words)}

	g, err := buildGraph(words)
	if err != nil {
		return nil, nil, err
	}
	stats.InitialNodes = g.reachable()

	g = reverseGraph(g)
	g = mergeSuffixes(g)
	stats.AfterFirstMerge = g.reachable()

	g = reverseGraph(g)
	g = mergeSuffixes(g)
	stats.AfterSecondMerge = g.reachable()

	g = joinLabels(g)
	stats.AfterJoin = g.reachable()

	out, hist, err := encodeGraphCounting(g)
	if err != nil {
		return nil, nil, err
	}
	stats.OutputBytes = len(out)
	stats.Offsets1Byte, stats.Offsets2Byte, stats.Offsets3Byte = hist.one, hist.two, hist.three
	return out, stats, nil
}
