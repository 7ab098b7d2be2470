package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

func labeled(gene string, fc, log2 protein.Float, fcType qc.FCType, conf qc.Confidence) *qc.LabeledRecord {
	return &qc.LabeledRecord{
		Record: protein.Record{
			Gene:           gene,
			FoldChange:     fc,
			Log2FoldChange: log2,
		},
		UniProtValid: true,
		Labels: qc.Labels{
			Completeness: qc.CompletenessComplete,
			FCType:       fcType,
			Confidence:   conf,
		},
	}
}

func TestExportFilter(t *testing.T) {
	records := []*qc.LabeledRecord{
		labeled("EPO", 2.5, 1.32, qc.FCNormal, qc.ConfidenceHigh),
		labeled("IGF1", 0.8, -0.32, qc.FCNormal, qc.ConfidenceMedium),
		labeled("UNK", protein.Missing(), protein.Missing(), qc.FCCannotCalculate, qc.ConfidenceLow),
		labeled("SHBG", 0, protein.Missing(), qc.FCCompleteSuppression, qc.ConfidenceMedium),
		labeled("LCN2", 1.1, 0.14, qc.FCNormal, qc.ConfidenceLow),
	}

	out := ExportFilter(records, qc.ConfidenceHigh, qc.ConfidenceMedium)
	require.Len(t, out, 3)

	genes := []string{out[0].Gene, out[1].Gene, out[2].Gene}
	assert.Equal(t, []string{"EPO", "IGF1", "SHBG"}, genes)
}

func TestExportFilter_CannotCalculateExcludedEvenWhenConfidenceAllowed(t *testing.T) {
	// A record whose confidence tier is in the allowed set is still dropped
	// when its fold change cannot be interpreted.
	r := labeled("ODD", 1.5, 0.58, qc.FCCannotCalculate, qc.ConfidenceMedium)
	out := ExportFilter([]*qc.LabeledRecord{r}, qc.ConfidenceHigh, qc.ConfidenceMedium)
	assert.Empty(t, out)
}

func TestExportFilter_HighOnly(t *testing.T) {
	records := []*qc.LabeledRecord{
		labeled("EPO", 2.5, 1.32, qc.FCNormal, qc.ConfidenceHigh),
		labeled("IGF1", 0.8, -0.32, qc.FCNormal, qc.ConfidenceMedium),
	}
	out := ExportFilter(records, qc.ConfidenceHigh)
	require.Len(t, out, 1)
	assert.Equal(t, "EPO", out[0].Gene)
}

func TestSortByAbsLog2FC(t *testing.T) {
	records := []*qc.LabeledRecord{
		labeled("A", 1.2, 0.26, qc.FCNormal, qc.ConfidenceHigh),
		labeled("B", 0.25, -2.0, qc.FCNormal, qc.ConfidenceHigh),
		labeled("C", 0, protein.Missing(), qc.FCCompleteSuppression, qc.ConfidenceMedium),
		labeled("D", 3.0, 1.58, qc.FCNormal, qc.ConfidenceHigh),
	}
	SortByAbsLog2FC(records)

	genes := make([]string, len(records))
	for i, r := range records {
		genes[i] = r.Gene
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, genes)
}

func TestRegulation(t *testing.T) {
	assert.Equal(t, "Up", Regulation(1.5))
	assert.Equal(t, "Down", Regulation(-0.3))
	assert.Equal(t, "Unchanged", Regulation(0))
	assert.Equal(t, "Unchanged", Regulation(protein.Missing()))
}
