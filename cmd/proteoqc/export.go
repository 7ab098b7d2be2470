package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/omicslab/proteoqc/internal/csvio"
	"github.com/omicslab/proteoqc/internal/output"
	"github.com/omicslab/proteoqc/internal/qc"
)

func runExport(args []string) int {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	confDefault := viper.GetString("export.confidence")
	if confDefault == "" {
		confDefault = "high,medium"
	}

	var (
		inputPath  string
		outputDir  string
		tool       string
		confidence string
	)

	fs.StringVar(&inputPath, "i", "", "Labeled protein table (CSV with QC flag columns)")
	fs.StringVar(&inputPath, "input", "", "Labeled protein table (CSV with QC flag columns)")
	fs.StringVar(&outputDir, "o", ".", "Output directory")
	fs.StringVar(&outputDir, "output", ".", "Output directory")
	fs.StringVar(&tool, "tool", "", "Target tool: omicsnet or paintomics")
	fs.StringVar(&confidence, "confidence", confDefault, "Confidence levels to include (comma-separated)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Generate upload files for a pathway visualization tool.

Records are filtered before export: fold change must be calculable and
defined, and the confidence level must be in the chosen set. Output rows
are ordered by descending absolute log2 fold change.

Usage:
  proteoqc export --tool <omicsnet|paintomics> [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  proteoqc export --tool omicsnet -i results/cleaned_proteomics_data_with_QC_flags.csv -o results/omicsnet/
  proteoqc export --tool paintomics --confidence high -i results/cleaned_proteomics_data_with_QC_flags.csv -o results/paintomics/
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

	levels, err := confidenceSet(confidence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}
	confidences := make([]qc.Confidence, len(levels))
	for i, l := range levels {
		confidences[i] = qc.Confidence(l)
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

	switch tool {
	case "omicsnet":
		err = exportOmicsNet(records, confidences, outputDir)
	case "paintomics":
		err = exportPaintOmics(records, confidences, outputDir)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown tool %q\n", tool)
		fmt.Fprintf(os.Stderr, "Hint: Use --tool omicsnet or --tool paintomics\n")
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

// exportOmicsNet writes the OmicsNet file set: the main expression file,
// a bare gene list, a high-confidence-only variant, functional-class
// subsets, and the up/down partitions.
func exportOmicsNet(records []*qc.LabeledRecord, confidences []qc.Confidence, dir string) error {
	main := output.ExportFilter(records, confidences...)
	output.SortByAbsLog2FC(main)

	writeSet := func(name string, recs []*qc.LabeledRecord) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		defer f.Close()

		w := output.NewOmicsNetWriter(f)
		if err := w.WriteAll(recs); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  %s: %d proteins\n", name, len(recs))
		return nil
	}

	if err := writeSet("omicsnet_input_with_expression.txt", main); err != nil {
		return err
	}

	genesFile, err := os.Create(filepath.Join(dir, "omicsnet_genelist_only.txt"))
	if err != nil {
		return fmt.Errorf("create gene list: %w", err)
	}
	defer genesFile.Close()
	if err := output.WriteGeneList(genesFile, main); err != nil {
		return fmt.Errorf("write gene list: %w", err)
	}
	fmt.Fprintf(os.Stderr, "  omicsnet_genelist_only.txt: %d genes\n", len(main))

	high := output.ExportFilter(records, qc.ConfidenceHigh)
	output.SortByAbsLog2FC(high)
	if err := writeSet("omicsnet_high_confidence_only.txt", high); err != nil {
		return err
	}

	if err := writeSet("omicsnet_cytokines.txt", filterClass(main, "Cytokine")); err != nil {
		return err
	}
	if err := writeSet("omicsnet_growth_factors.txt", filterClass(main, "Growth Factor")); err != nil {
		return err
	}
	if err := writeSet("omicsnet_signaling_proteins.txt", filterClass(main, "Cytokine", "Growth Factor")); err != nil {
		return err
	}

	var up, down []*qc.LabeledRecord
	for _, r := range main {
		switch output.Regulation(r.Log2FoldChange) {
		case "Up":
			up = append(up, r)
		case "Down":
			down = append(down, r)
		}
	}
	if err := writeSet("omicsnet_upregulated.txt", up); err != nil {
		return err
	}
	return writeSet("omicsnet_downregulated.txt", down)
}

// filterClass keeps the records whose functional class matches one of the
// given names, case-insensitively.
func filterClass(records []*qc.LabeledRecord, classes ...string) []*qc.LabeledRecord {
	want := make(map[string]bool, len(classes))
	for _, c := range classes {
		want[strings.ToLower(c)] = true
	}
	var out []*qc.LabeledRecord
	for _, r := range records {
		if want[strings.ToLower(r.FunctionalClass)] {
			out = append(out, r)
		}
	}
	return out
}

// ECM-related proteins land in the "other" functional class, so the ECM
// subset is selected by gene symbol.
var ecmGenes = []string{
	"BGN", "VCAN", "LUM", "TGFBI", "SERPINH1", "SERPINE2",
	"SERPINF1", "PTX3", "FRZB", "PLXDC2", "SLIT3",
}

func filterGenes(records []*qc.LabeledRecord, genes []string) []*qc.LabeledRecord {
	want := make(map[string]bool, len(genes))
	for _, g := range genes {
		want[g] = true
	}
	var out []*qc.LabeledRecord
	for _, r := range records {
		if want[r.Gene] {
			out = append(out, r)
		}
	}
	return out
}

// exportPaintOmics writes the PaintOmics file set: the full annotated
// table, the high-confidence and functional subsets, the minimal
// two-column variant, and the two-condition matrix in both CSV and
// tab-separated form.
func exportPaintOmics(records []*qc.LabeledRecord, confidences []qc.Confidence, dir string) error {
	main := output.ExportFilter(records, confidences...)
	output.SortByAbsLog2FC(main)

	writeTable := func(name string, recs []*qc.LabeledRecord) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		defer f.Close()

		w := output.NewPaintOmicsWriter(f)
		if err := w.WriteHeader(); err != nil {
			return err
		}
		for _, r := range recs {
			if err := w.Write(r); err != nil {
				return err
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  %s: %d proteins\n", name, len(recs))
		return nil
	}

	if err := writeTable("paintomics_input_expression_data.csv", main); err != nil {
		return err
	}

	high := output.ExportFilter(records, qc.ConfidenceHigh)
	output.SortByAbsLog2FC(high)
	if err := writeTable("paintomics_high_confidence.csv", high); err != nil {
		return err
	}
	if err := writeTable("paintomics_cytokines.csv", filterClass(main, "Cytokine")); err != nil {
		return err
	}
	if err := writeTable("paintomics_growth_factors.csv", filterClass(main, "Growth Factor")); err != nil {
		return err
	}
	if err := writeTable("paintomics_ecm_proteins.csv", filterGenes(main, ecmGenes)); err != nil {
		return err
	}

	minimal, err := os.Create(filepath.Join(dir, "paintomics_minimal_input.csv"))
	if err != nil {
		return fmt.Errorf("create minimal export: %w", err)
	}
	defer minimal.Close()
	if err := output.WritePaintOmicsMinimal(minimal, main); err != nil {
		return err
	}

	// PaintOmics rejects single-column expression uploads; the matrix
	// variant carries an explicit zero baseline for the vehicle condition.
	for _, variant := range []struct {
		name string
		sep  rune
	}{
		{"paintomics_expression_matrix.csv", ','},
		{"paintomics_expression_matrix.txt", '\t'},
	} {
		f, err := os.Create(filepath.Join(dir, variant.name))
		if err != nil {
			return fmt.Errorf("create %s: %w", variant.name, err)
		}
		err = output.WritePaintOmicsMatrix(f, main, variant.sep)
		f.Close()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  %s: %d proteins\n", variant.name, len(main))
	}

	return nil
}
