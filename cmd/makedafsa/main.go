// main.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command makedafsa is the CLI front end for the dafsa compiler: it reads
// a gperf-style word list and writes either a raw byte buffer or a
// textual C array listing of the compiled DAFSA.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"gopkg.in/yaml.v3"

	"github.com/vthorsteinsson/go-dafsa"
	"github.com/vthorsteinsson/go-dafsa/format"
	"github.com/vthorsteinsson/go-dafsa/parser"
)

const usage = "usage: makedafsa [--binary] [--verbose] [--stats file] infile|- outfile"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flagSet := flag.NewFlagSet("makedafsa", flag.ContinueOnError)
	// The CLI prints exactly one usage line itself; silence flag's own.
	flagSet.SetOutput(io.Discard)
	binary := flagSet.Bool("binary", false, "emit a raw byte buffer instead of a C source listing")
	verbose := flagSet.Bool("verbose", false, "log pipeline diagnostics to stderr")
	statsPath := flagSet.String("stats", "", "write a YAML build report to this path")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}
	rest := flagSet.Args()
	if len(rest) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}
	inPath, outPath := rest[0], rest[1]

	words, err := readWords(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *verbose {
		gologger.Info().Msgf("parsed %d dictionary entries from %s", len(words), inPath)
	}

	data, stats, err := dafsa.BuildWithStats(words)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *verbose {
		gologger.Info().Msgf(
			"compiled %d nodes -> %d bytes (merge passes: %d, %d; after join: %d)",
			stats.InitialNodes, stats.OutputBytes, stats.AfterFirstMerge, stats.AfterSecondMerge, stats.AfterJoin,
		)
	}

	if *statsPath != "" {
		if err := writeStats(*statsPath, stats); err != nil {
			gologger.Error().Msgf("failed to write build report: %v", err)
		}
	}

	var output []byte
	if *binary {
		output = format.Raw(data)
	} else {
		output = format.Text(data)
	}

	if err := os.WriteFile(outPath, output, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func readWords(path string) ([]string, error) {
	var in *os.File
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	return parser.Parse(in)
}

func writeStats(path string, stats *dafsa.BuildStats) error {
	bin, err := yaml.Marshal(stats)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bin, 0644)
}
