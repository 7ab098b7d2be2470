package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

// ReportData bundles everything the quality report prints.
type ReportData struct {
	Records          []*qc.LabeledRecord
	Flags            []qc.ReviewFlag
	CellCompleteness float64 // share of non-missing cells, percent
}

// WriteReport writes the human-readable data quality report.
func WriteReport(w io.Writer, data ReportData) error {
	total := len(data.Records)
	dist := qc.Distribute(data.Records)

	rule := strings.Repeat("=", 80)
	sub := strings.Repeat("-", 40)

	pct := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) / float64(total) * 100
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "DATA QUALITY REPORT - PROTEOMICS ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, sub)
	fmt.Fprintf(w, "Total proteins analyzed: %d\n", total)
	fmt.Fprintf(w, "Overall data completeness: %.2f%%\n", data.CellCompleteness)
	high := dist.Confidence[qc.ConfidenceHigh]
	fmt.Fprintf(w, "High confidence proteins: %d (%.1f%%)\n", high, pct(high))
	fmt.Fprintf(w, "Flagged for review: %d (%.1f%%)\n", len(data.Flags), pct(len(data.Flags)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "REPLICATE DATA COMPLETENESS")
	fmt.Fprintln(w, sub)
	complete := dist.Completeness[qc.CompletenessComplete]
	missing1 := dist.Completeness[qc.CompletenessMissing1]
	missing2 := dist.Completeness[qc.CompletenessMissing2Plus]
	fmt.Fprintf(w, "Complete data (4/4): %d proteins (%.1f%%)\n", complete, pct(complete))
	fmt.Fprintf(w, "Missing 1 replicate: %d proteins (%.1f%%)\n", missing1, pct(missing1))
	fmt.Fprintf(w, "Missing 2+ replicates: %d proteins (%.1f%%)\n", missing2, pct(missing2))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "FOLD CHANGE EDGE CASES")
	fmt.Fprintln(w, sub)
	for _, fcType := range []qc.FCType{
		qc.FCNormal,
		qc.FCCompleteSuppression,
		qc.FCCompleteInduction,
		qc.FCNoDetection,
		qc.FCCannotCalculate,
	} {
		fmt.Fprintf(w, "%s: %d\n", fcType, dist.FCType[fcType])
	}
	for _, r := range data.Records {
		if r.FCType != qc.FCCompleteSuppression && r.FCType != qc.FCNoDetection {
			continue
		}
		fmt.Fprintf(w, "\n  %s:\n", r.Gene)
		fmt.Fprintf(w, "    Vehicle Mean: %s\n", orNA(r.VehicleMean))
		fmt.Fprintf(w, "    Testosterone Mean: %s\n", orNA(r.TreatmentMean))
		fmt.Fprintf(w, "    FC Type: %s\n", r.FCType)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "UNIPROT ID VALIDATION")
	fmt.Fprintln(w, sub)
	valid := 0
	for _, r := range data.Records {
		if r.UniProtValid {
			valid++
		}
	}
	fmt.Fprintf(w, "Valid UniProt IDs: %d/%d (%.1f%%)\n", valid, total, pct(valid))
	fmt.Fprintf(w, "Invalid/Missing: %d\n", total-valid)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CONFIDENCE LEVEL DISTRIBUTION")
	fmt.Fprintln(w, sub)
	for _, conf := range []qc.Confidence{qc.ConfidenceHigh, qc.ConfidenceMedium, qc.ConfidenceLow} {
		n := dist.Confidence[conf]
		fmt.Fprintf(w, "%s: %d (%.1f%%)\n", conf, n, pct(n))
	}
	fmt.Fprintln(w)

	if len(data.Flags) > 0 {
		fmt.Fprintln(w, "PROTEINS FLAGGED FOR REVIEW")
		fmt.Fprintln(w, sub)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Gene\tSeverity\tRecommendation\tIssues")
		for _, f := range data.Flags {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Gene, f.Severity, f.Recommendation, f.Issues)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, rule)
	_, err := fmt.Fprintln(w, "END OF REPORT")
	return err
}

func orNA(f protein.Float) string {
	if f.IsMissing() {
		return "NA"
	}
	return f.String()
}
