package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/omicslab/proteoqc/internal/csvio"
	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/summary"
	"github.com/omicslab/proteoqc/internal/xlsx"
)

func runClean(args []string) int {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)

	var (
		inputPath string
		outputDir string
		sheet     string
		topN      int
	)

	fs.StringVar(&inputPath, "i", "", "Input workbook or CSV file")
	fs.StringVar(&inputPath, "input", "", "Input workbook or CSV file")
	fs.StringVar(&outputDir, "o", ".", "Output directory")
	fs.StringVar(&outputDir, "output", ".", "Output directory")
	fs.StringVar(&sheet, "sheet", viper.GetString("input.sheet"), "Worksheet name (default: auto-detect)")
	fs.IntVar(&topN, "top", 10, "Number of top up/down regulated proteins to extract")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Clean the source proteomics table and derive fold-change columns.

Reads the raw SILAC spreadsheet (or an equivalent CSV), normalizes text
cells, parses numeric cells (dashes, commas, and spreadsheet error codes
become missing values), uppercases gene symbols, and fills in any missing
condition means, fold changes, and log ratios.

Usage:
  proteoqc clean [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Output files:
  cleaned_proteomics_data.csv
  summary_statistics.csv
  upregulated_proteins.csv
  downregulated_proteins.csv
  top_changers.csv
  functional_class_distribution.csv

Examples:
  proteoqc clean -i silac_soluble_factors.xlsx -o results/
  proteoqc clean -i raw_table.csv -o results/
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

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		return ExitError
	}

	var parser protein.RecordParser
	var err error
	if strings.HasSuffix(strings.ToLower(inputPath), ".xlsx") {
		parser, err = xlsx.NewParser(inputPath, sheet)
	} else {
		parser, err = csvio.NewParser(inputPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Hint: Check that the file path is correct\n")
		}
		return ExitError
	}
	defer parser.Close()

	var records []*protein.Record
	for {
		r, err := parser.Next()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading row %d: %v\n", parser.RowNumber(), err)
			return ExitError
		}
		if r == nil {
			break
		}
		r.Normalize()
		r.Derive()
		records = append(records, r)
	}

	fmt.Fprintf(os.Stderr, "Loaded %d proteins from %s\n", len(records), inputPath)

	out := func(name string) string { return filepath.Join(outputDir, name) }

	if err := csvio.Write(out("cleaned_proteomics_data.csv"), &records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	stats := summary.Compute(records)
	rows := stats.Rows()
	if err := csvio.Write(out("summary_statistics.csv"), &rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	up := summary.Upregulated(records)
	if err := csvio.Write(out("upregulated_proteins.csv"), &up); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	down := summary.Downregulated(records)
	if err := csvio.Write(out("downregulated_proteins.csv"), &down); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	changers := summary.TopChangers(records, topN)
	if err := csvio.Write(out("top_changers.csv"), &changers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	classes := summary.ClassDistribution(records)
	if err := csvio.Write(out("functional_class_distribution.csv"), &classes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	fmt.Fprintf(os.Stderr, "Cleaned table written to %s\n", out("cleaned_proteomics_data.csv"))
	fmt.Fprintf(os.Stderr, "  Upregulated: %d  Downregulated: %d  Unchanged: %d\n",
		stats.Upregulated, stats.Downregulated, stats.Unchanged)

	return ExitSuccess
}
