// parser_test.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBareWordList(t *testing.T) {
	in := "aa, 1\na, 2\n"
	words, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"aa1", "a2"}, words)
}

func TestParseWithSentinels(t *testing.T) {
	in := strings.Join([]string{
		"%{",
		"// some gperf preamble, ignored because it's outside the sentinels",
		"%}",
		"%%",
		"aa, 1",
		"a, 2",
		"%%",
		"unused trailer",
	}, "\n")
	words, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"aa1", "a2"}, words)
}

func TestParseSentinelsWithoutTrailer(t *testing.T) {
	in := "%%\naa, 1\na, 2\n"
	words, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"aa1", "a2"}, words)
}

func TestParseHexTag(t *testing.T) {
	words, err := Parse(strings.NewReader("foo, A\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"fooA"}, words)
}

func TestParseBadLine(t *testing.T) {
	_, err := Parse(strings.NewReader("malformed line\n"))
	require.ErrorIs(t, err, ErrBadInputLine)
}

func TestParseBadTagDigit(t *testing.T) {
	_, err := Parse(strings.NewReader("foo, G\n"))
	require.ErrorIs(t, err, ErrBadTag)
}
