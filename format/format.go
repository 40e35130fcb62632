// format.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Package format turns an encoded DAFSA byte array into one of the two
// output flavours: a raw byte buffer or a textual source listing.
package format

import "fmt"

// bytesPerLine matches the original generator's layout: twelve bytes per
// line, each with a trailing comma.
const bytesPerLine = 12

// Raw returns data unchanged: the --binary CLI flavour.
func Raw(data []byte) []byte {
	return data
}

// Text renders data as a generated-file C source listing: a fixed
// header, a sized array declaration, and twelve hex bytes per line.
func Text(data []byte) []byte {
	var out []byte
	out = append(out, header...)
	out = append(out, fmt.Sprintf("static const unsigned char kDafsa[%d] = {\n", len(data))...)
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		out = append(out, "  "...)
		for j := i; j < end; j++ {
			if j > i {
				out = append(out, ", "...)
			}
			out = append(out, fmt.Sprintf("0x%02x", data[j])...)
		}
		out = append(out, ",\n"...)
	}
	out = append(out, "};\n"...)
	return out
}

const header = "/* This file is generated. DO NOT EDIT!\n\n" +
	"The byte array encodes a dictionary as a DAFSA. See the dafsa package" +
	" for documentation.*/\n\n"
