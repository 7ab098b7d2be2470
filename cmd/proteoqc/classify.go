package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/omicslab/proteoqc/internal/csvio"
	"github.com/omicslab/proteoqc/internal/output"
	"github.com/omicslab/proteoqc/internal/qc"
	"github.com/omicslab/proteoqc/internal/summary"
)

func runClassify(args []string) int {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)

	var (
		inputPath string
		outputDir string
		verbose   bool
	)

	fs.StringVar(&inputPath, "i", "", "Cleaned protein table (CSV)")
	fs.StringVar(&inputPath, "input", "", "Cleaned protein table (CSV)")
	fs.StringVar(&outputDir, "o", ".", "Output directory")
	fs.StringVar(&outputDir, "output", ".", "Output directory")
	fs.BoolVar(&verbose, "v", false, "Log each low-confidence record")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Assign quality labels to every protein record.

Each record gets a replicate-completeness tier, a fold-change type, and a
confidence level, derived only from its own replicate values and condition
means. Records with problems are collected into a review list.

Usage:
  proteoqc classify [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Output files:
  cleaned_proteomics_data_with_QC_flags.csv
  missing_data_summary.csv
  proteins_flagged_for_review.csv
  high_confidence_proteins.csv
  data_quality_report.txt

Examples:
  proteoqc classify -i results/cleaned_proteomics_data.csv -o results/
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

	records, err := csvio.ReadRecords(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(os.Stderr, "Loaded %d proteins from %s\n", len(records), inputPath)

	classifier := qc.NewClassifier()
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			defer logger.Sync()
			classifier.SetLogger(logger)
		}
	}

	labeled := classifier.Run(records)
	dist := qc.Distribute(labeled)

	fmt.Fprintf(os.Stderr, "Confidence levels: High=%d Medium=%d Low=%d\n",
		dist.Confidence[qc.ConfidenceHigh],
		dist.Confidence[qc.ConfidenceMedium],
		dist.Confidence[qc.ConfidenceLow])

	out := func(name string) string { return filepath.Join(outputDir, name) }

	if err := csvio.Write(out("cleaned_proteomics_data_with_QC_flags.csv"), &labeled); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	statuses := make([]qc.ReplicateStatus, 0, len(records))
	for _, r := range records {
		statuses = append(statuses, qc.ReplicateReport(r))
	}
	if err := csvio.Write(out("missing_data_summary.csv"), &statuses); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	flags := qc.ReviewAll(labeled)
	if err := csvio.Write(out("proteins_flagged_for_review.csv"), &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(os.Stderr, "Flagged for review: %d\n", len(flags))

	var highConf []*qc.LabeledRecord
	for _, r := range labeled {
		if r.Confidence == qc.ConfidenceHigh {
			highConf = append(highConf, r)
		}
	}
	if err := csvio.Write(out("high_confidence_proteins.csv"), &highConf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	reportFile, err := os.Create(out("data_quality_report.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report: %v\n", err)
		return ExitError
	}
	defer reportFile.Close()

	err = output.WriteReport(reportFile, output.ReportData{
		Records:          labeled,
		Flags:            flags,
		CellCompleteness: summary.Completeness(records),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return ExitError
	}

	fmt.Fprintf(os.Stderr, "Quality report written to %s\n", out("data_quality_report.txt"))
	return ExitSuccess
}
