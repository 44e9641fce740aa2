// refdbgen builds a GPU reference database from raw benchmark-corpus files.
//
// Each input file is a JSON array of corpus entries. Files are processed in
// argument order and the first occurrence of a GPU name wins, so more
// trustworthy corpora should be listed first. Files whose base name starts
// with "m-" are treated as mobile corpora.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"modelpickd/pkg/gpu"
)

const version = "0.1.0"

var (
	outputPath string
	showHelp   bool
	showVer    bool
)

func init() {
	flag.StringVar(&outputPath, "output", "", "Output path (defaults to stdout)")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showVer, "version", false, "Show version")
}

func main() {
	flag.Parse()

	if showVer {
		fmt.Printf("refdbgen version %s\n", version)
		return
	}

	if showHelp || flag.NArg() == 0 {
		printUsage()
		return
	}

	db := gpu.NewDatabase()
	for _, path := range flag.Args() {
		entries, err := readCorpus(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			os.Exit(1)
		}
		before := db.Len()
		gpu.BuildDatabase(db, filepath.Base(path), entries)
		fmt.Fprintf(os.Stderr, "%s: %d entries, %d new\n", path, len(entries), db.Len()-before)
	}

	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding database: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, _ = os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d entries to %s\n", db.Len(), outputPath)
}

func readCorpus(path string) ([]gpu.CorpusEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []gpu.CorpusEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}
	return entries, nil
}

func printUsage() {
	fmt.Println("Usage: refdbgen [flags] corpus-file...")
	fmt.Println()
	fmt.Println("Builds a GPU reference database from benchmark corpus files.")
	fmt.Println("Corpus files whose names start with \"m-\" are treated as mobile.")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
