package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/omicslab/proteoqc/internal/csvio"
	"github.com/omicslab/proteoqc/internal/qc"
	"github.com/omicslab/proteoqc/internal/store"
)

func runStore(args []string) int {
	fs := flag.NewFlagSet("store", flag.ExitOnError)

	var (
		inputPath  string
		outputPath string
	)

	fs.StringVar(&inputPath, "i", "", "Labeled protein table (CSV with QC flag columns)")
	fs.StringVar(&inputPath, "input", "", "Labeled protein table (CSV with QC flag columns)")
	fs.StringVar(&outputPath, "o", "", "Output DuckDB file path")
	fs.StringVar(&outputPath, "output", "", "Output DuckDB file path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Load the labeled protein table into a DuckDB database.

The database holds one row per protein with all intensity, ratio, and QC
label columns, plus a runs table recording provenance, so results can be
explored with plain SQL.

Usage:
  proteoqc store [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  proteoqc store -i results/cleaned_proteomics_data_with_QC_flags.csv -o results/proteins.duckdb
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if inputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --input is required\n\n")
		fs.Usage()
		return ExitUsage
	}
	if outputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --output is required\n\n")
		fs.Usage()
		return ExitUsage
	}

	if filepath.Ext(outputPath) != ".duckdb" && filepath.Ext(outputPath) != ".db" {
		outputPath = outputPath + ".duckdb"
	}

	// Replace any previous database so reruns stay idempotent.
	if _, err := os.Stat(outputPath); err == nil {
		if err := os.Remove(outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing existing file: %v\n", err)
			return ExitError
		}
	}

	records, err := csvio.ReadLabeled(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(os.Stderr, "Loaded %d proteins from %s\n", len(records), inputPath)

	db, err := store.Open(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return ExitError
	}
	defer db.Close()

	if err := db.WriteRecords(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing records: %v\n", err)
		return ExitError
	}
	if err := db.RecordRun(inputPath, len(records)); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
		return ExitError
	}

	count, err := db.RecordCount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error verifying count: %v\n", err)
		return ExitError
	}
	byConf, err := db.CountByConfidence()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting by confidence: %v\n", err)
		return ExitError
	}

	fmt.Fprintf(os.Stderr, "Stored %d proteins in %s\n", count, outputPath)
	fmt.Fprintf(os.Stderr, "  High=%d Medium=%d Low=%d\n",
		byConf[qc.ConfidenceHigh], byConf[qc.ConfidenceMedium], byConf[qc.ConfidenceLow])

	return ExitSuccess
}
