// parser.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Package parser is the gperf-style line reader that feeds the dafsa
// compiler: it turns "<word>, <digit>" lines into the concatenated
// word+tag strings dafsa.Build expects.
package parser

import (
	"bufio"
	"io"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ErrBadInputLine is returned for any line that doesn't match the
// "<word>, <digit>" shape.
var ErrBadInputLine = errorutil.NewWithTag("dafsa/parser", `expected "domainname, <digit>"`)

// ErrBadTag is returned for a line whose shape is correct but whose
// trailing digit isn't one of 0-9, A-F. The DAFSA format could in
// principle carry any value in [0,15], but only {0,1,2,4,5} have a
// defined downstream meaning; this parser still accepts the full hex
// alphabet and passes the digit through unchanged.
var ErrBadTag = errorutil.NewWithTag("dafsa/parser", `expected tag digit to be one of 0-9, A-F`)

// sentinel is the line that brackets the dictionary body in a gperf
// source file.
const sentinel = "%%"

// Parse reads r and returns one concatenated word+tag string per
// dictionary line, in the order read.
//
// If a pair of bare "%%" lines is present, only the lines strictly
// between the first two are treated as the dictionary; otherwise the
// entire input is. Every dictionary line must end in ", " followed by
// exactly one of the hex digits 0-9A-F (ErrBadInputLine and ErrBadTag
// respectively guard those two shapes); the returned string is the word
// with that trailing ", D" replaced by the bare digit character.
func Parse(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	lines = dictionaryBody(lines)

	words := make([]string, 0, len(lines))
	for _, line := range lines {
		word, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

// dictionaryBody strips everything outside the first pair of bare "%%"
// lines, if present.
func dictionaryBody(lines []string) []string {
	begin := -1
	for i, line := range lines {
		if line == sentinel {
			begin = i + 1
			break
		}
	}
	if begin == -1 {
		return lines
	}
	for i := begin; i < len(lines); i++ {
		if lines[i] == sentinel {
			return lines[begin:i]
		}
	}
	return lines[begin:]
}

// parseLine turns "domainname, D" into "domainnameD".
func parseLine(line string) (string, error) {
	if len(line) < 3 || line[len(line)-3:len(line)-1] != ", " {
		return "", ErrBadInputLine
	}
	digit := line[len(line)-1]
	if !isHexDigit(digit) {
		return "", ErrBadTag
	}
	return line[:len(line)-3] + string(digit), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'F')
}
