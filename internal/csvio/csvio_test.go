package csvio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

func TestWriteReadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.csv")

	full := protein.NewRecord()
	full.Accession, full.Gene, full.Description = "P01588", "EPO", "Erythropoietin"
	full.VehicleRep1, full.VehicleRep2, full.VehicleMean = 10, 12, 11
	full.TreatmentRep1, full.TreatmentRep2, full.TreatmentMean = 8, 9, 8.5
	full.FoldChange = 8.5 / 11
	full.Log2FoldChange = -0.372

	sparse := protein.NewRecord()
	sparse.Accession, sparse.Gene = "Q8JZQ5", "IGF1"

	require.NoError(t, Write(path, []*protein.Record{full, sparse}))

	got, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "EPO", got[0].Gene)
	assert.InDelta(t, 8.5/11, float64(got[0].FoldChange), 1e-9)
	assert.InDelta(t, -0.372, float64(got[0].Log2FoldChange), 1e-9)

	// Empty cells come back as missing, not as zeros.
	assert.Equal(t, "IGF1", got[1].Gene)
	assert.True(t, got[1].FoldChange.IsMissing())
	assert.True(t, got[1].VehicleRep1.IsMissing())
}

func TestWriteReadLabeled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labeled.csv")

	records := []*qc.LabeledRecord{
		{
			Record:       protein.Record{Gene: "EPO", Accession: "P01588", FoldChange: 2.5},
			UniProtValid: true,
			Labels: qc.Labels{
				Completeness: qc.CompletenessComplete,
				FCType:       qc.FCNormal,
				Confidence:   qc.ConfidenceHigh,
			},
		},
	}
	require.NoError(t, Write(path, records))

	got, err := ReadLabeled(path)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "EPO", got[0].Gene)
	assert.True(t, got[0].UniProtValid)
	assert.Equal(t, qc.CompletenessComplete, got[0].Completeness)
	assert.Equal(t, qc.FCNormal, got[0].FCType)
	assert.Equal(t, qc.ConfidenceHigh, got[0].Confidence)
}

func TestParser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")

	a := protein.NewRecord()
	a.Gene, a.Accession = "EPO", "P01588"
	b := protein.NewRecord()
	b.Gene, b.Accession = "IGF1", "P05017"
	require.NoError(t, Write(path, []*protein.Record{a, b}))

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	first, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "EPO", first.Gene)
	assert.Equal(t, 1, p.RowNumber())

	second, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "IGF1", second.Gene)

	done, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, done)
}

func TestReadRecords_TruncatedHeader(t *testing.T) {
	// A table missing record columns must fail loudly; silently defaulting
	// the absent numeric cells would turn them into recorded zeros.
	path := filepath.Join(t.TempDir(), "truncated.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("Gene,Fold_Change\nEPO,2.5\n"), 0644))

	_, err := ReadRecords(path)
	assert.Error(t, err)
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
