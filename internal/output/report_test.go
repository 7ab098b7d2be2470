package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicslab/proteoqc/internal/qc"
)

func TestWriteReport(t *testing.T) {
	suppressed := labeled("SHBG", 0, -1, qc.FCCompleteSuppression, qc.ConfidenceMedium)
	suppressed.VehicleMean = 21
	suppressed.TreatmentMean = 0

	records := []*qc.LabeledRecord{
		labeled("EPO", 2.5, 1.32, qc.FCNormal, qc.ConfidenceHigh),
		labeled("IGF1", 0.8, -0.32, qc.FCNormal, qc.ConfidenceMedium),
		suppressed,
	}
	flags := []qc.ReviewFlag{
		{
			Gene:           "SHBG",
			Issues:         "Complete_Suppression - edge case",
			Severity:       qc.SeverityMedium,
			Recommendation: qc.RecommendFlag,
		},
	}

	var buf bytes.Buffer
	err := WriteReport(&buf, ReportData{
		Records:          records,
		Flags:            flags,
		CellCompleteness: 97.62,
	})
	require.NoError(t, err)
	report := buf.String()

	assert.Contains(t, report, "DATA QUALITY REPORT - PROTEOMICS ANALYSIS")
	assert.Contains(t, report, "Total proteins analyzed: 3")
	assert.Contains(t, report, "Overall data completeness: 97.62%")
	assert.Contains(t, report, "High confidence proteins: 1 (33.3%)")
	assert.Contains(t, report, "Flagged for review: 1 (33.3%)")
	assert.Contains(t, report, "Normal: 2")
	assert.Contains(t, report, "Complete_Suppression: 1")

	// Suppressed proteins get a per-protein detail block.
	assert.Contains(t, report, "SHBG:")
	assert.Contains(t, report, "Vehicle Mean: 21")
	assert.Contains(t, report, "Testosterone Mean: 0")

	assert.Contains(t, report, "Valid UniProt IDs: 3/3 (100.0%)")
	assert.Contains(t, report, "High: 1 (33.3%)")
	assert.Contains(t, report, "Medium: 2 (66.7%)")
	assert.Contains(t, report, "PROTEINS FLAGGED FOR REVIEW")
	assert.True(t, strings.HasSuffix(report, "END OF REPORT\n"))
}

func TestWriteReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, ReportData{})
	require.NoError(t, err)

	report := buf.String()
	assert.Contains(t, report, "Total proteins analyzed: 0")
	assert.NotContains(t, report, "PROTEINS FLAGGED FOR REVIEW")
	assert.Contains(t, report, "END OF REPORT")
}
