// format_test.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawIsIdentity(t *testing.T) {
	data := []byte{0x81, 0xE1, 0x02, 0x81, 0x82, 0x61, 0x81}
	require.Equal(t, data, Raw(data))
}

func TestTextLayout(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d}
	out := string(Text(data))

	require.True(t, strings.HasPrefix(out, header))
	require.Contains(t, out, "static const unsigned char kDafsa[13] = {\n")
	require.Contains(t, out, "0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c,\n")
	require.Contains(t, out, "  0x0d,\n")
	require.True(t, strings.HasSuffix(out, "};\n"))
}

func TestTextEmptyInput(t *testing.T) {
	out := string(Text(nil))
	require.Contains(t, out, "kDafsa[0] = {\n")
	require.True(t, strings.HasSuffix(out, "};\n"))
}
