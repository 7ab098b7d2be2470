// Package output writes the export files consumed by external pathway
// and network visualization tools, plus the human-readable quality report.
package output

import (
	"sort"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

// ExportFilter selects the records eligible for export: fold change must
// be calculable and defined, and the confidence level must be in the
// chosen set. Complete suppressions pass; they carry a valid fold change.
func ExportFilter(records []*qc.LabeledRecord, confidences ...qc.Confidence) []*qc.LabeledRecord {
	allowed := make(map[qc.Confidence]bool, len(confidences))
	for _, c := range confidences {
		allowed[c] = true
	}

	var out []*qc.LabeledRecord
	for _, r := range records {
		if r.FCType == qc.FCCannotCalculate {
			continue
		}
		if r.FoldChange.IsMissing() {
			continue
		}
		if !allowed[r.Confidence] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortByAbsLog2FC orders records by descending absolute log2 fold change,
// most changed first. Records without a log2 value sort last.
func SortByAbsLog2FC(records []*qc.LabeledRecord) {
	key := func(r *qc.LabeledRecord) protein.Float {
		if r.Log2FoldChange.IsMissing() {
			return -1
		}
		return r.Log2FoldChange.Abs()
	}
	sort.SliceStable(records, func(i, j int) bool { return key(records[i]) > key(records[j]) })
}

// Regulation classifies the direction of change from the log2 fold change.
func Regulation(log2fc protein.Float) string {
	switch {
	case !log2fc.IsMissing() && log2fc > 0:
		return "Up"
	case !log2fc.IsMissing() && log2fc < 0:
		return "Down"
	default:
		return "Unchanged"
	}
}
