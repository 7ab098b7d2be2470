package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicslab/proteoqc/internal/qc"
)

func TestOmicsNetWriter(t *testing.T) {
	records := []*qc.LabeledRecord{
		labeled("EPO", 2.5, 1.32, qc.FCNormal, qc.ConfidenceHigh),
		labeled("IGF1", 0.8, -0.32, qc.FCNormal, qc.ConfidenceMedium),
	}

	var buf bytes.Buffer
	w := NewOmicsNetWriter(&buf)
	require.NoError(t, w.WriteAll(records))
	require.NoError(t, w.Flush())

	assert.Equal(t, "EPO\t1.32\tProtein\nIGF1\t-0.32\tProtein\n", buf.String())
}

func TestWriteGeneList(t *testing.T) {
	records := []*qc.LabeledRecord{
		labeled("EPO", 2.5, 1.32, qc.FCNormal, qc.ConfidenceHigh),
		labeled("SHBG", 0.5, -1, qc.FCNormal, qc.ConfidenceHigh),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGeneList(&buf, records))
	assert.Equal(t, "EPO\nSHBG\n", buf.String())
}
