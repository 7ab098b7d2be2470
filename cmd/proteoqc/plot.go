package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/omicslab/proteoqc/internal/csvio"
	"github.com/omicslab/proteoqc/internal/plot"
)

func runPlot(args []string) int {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)

	var (
		inputPath string
		outputDir string
		topN      int
		bins      int
	)

	fs.StringVar(&inputPath, "i", "", "Labeled protein table (CSV with QC flag columns)")
	fs.StringVar(&inputPath, "input", "", "Labeled protein table (CSV with QC flag columns)")
	fs.StringVar(&outputDir, "o", "charts", "Output directory")
	fs.StringVar(&outputDir, "output", "charts", "Output directory")
	fs.IntVar(&topN, "top", 20, "Number of proteins in the top-changers chart")
	fs.IntVar(&bins, "bins", 15, "Number of histogram bins")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Render the chart set for a labeled protein table.

Usage:
  proteoqc plot [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Charts:
  volcano_log2FC_confidence.png
  top_changers.png
  log2FC_distribution.png
  confidence_level_distribution.png
  replicate_completeness_distribution.png
  replicate_correlation_vehicle.png
  replicate_correlation_testosterone.png

Examples:
  proteoqc plot -i results/cleaned_proteomics_data_with_QC_flags.csv -o results/charts/
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

	records, err := csvio.ReadLabeled(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(os.Stderr, "Loaded %d proteins from %s\n", len(records), inputPath)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		return ExitError
	}

	charts := []struct {
		name   string
		render func(path string) error
	}{
		{"volcano_log2FC_confidence.png", func(p string) error { return plot.Volcano(records, p) }},
		{"top_changers.png", func(p string) error { return plot.TopChangers(records, topN, p) }},
		{"log2FC_distribution.png", func(p string) error { return plot.Log2FCHistogram(records, bins, p) }},
		{"confidence_level_distribution.png", func(p string) error { return plot.ConfidenceBars(records, p) }},
		{"replicate_completeness_distribution.png", func(p string) error { return plot.CompletenessBars(records, p) }},
		{"replicate_correlation_vehicle.png", func(p string) error { return plot.ReplicateCorrelation(records, plot.Vehicle, p) }},
		{"replicate_correlation_testosterone.png", func(p string) error { return plot.ReplicateCorrelation(records, plot.Treatment, p) }},
	}

	for _, c := range charts {
		path := filepath.Join(outputDir, c.name)
		if err := c.render(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", c.name, err)
			return ExitError
		}
		fmt.Fprintf(os.Stderr, "  %s\n", path)
	}

	fmt.Fprintf(os.Stderr, "Rendered %d charts\n", len(charts))
	return ExitSuccess
}
