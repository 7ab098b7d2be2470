package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

func testRecord(gene, accession string, fc protein.Float, conf qc.Confidence) *qc.LabeledRecord {
	return &qc.LabeledRecord{
		Record: protein.Record{
			Gene:          gene,
			Accession:     accession,
			VehicleMean:   11,
			TreatmentMean: 9,
			FoldChange:    fc,
		},
		UniProtValid: true,
		Labels: qc.Labels{
			Completeness: qc.CompletenessComplete,
			FCType:       qc.FCNormal,
			Confidence:   conf,
		},
	}
}

func TestStore_WriteAndCount(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	records := []*qc.LabeledRecord{
		testRecord("EPO", "P01588", 2.5, qc.ConfidenceHigh),
		testRecord("IGF1", "P05017", 0.8, qc.ConfidenceMedium),
		testRecord("SHBG", "P97497", 0.1, qc.ConfidenceMedium),
	}
	require.NoError(t, s.WriteRecords(records))

	count, err := s.RecordCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	byConf, err := s.CountByConfidence()
	require.NoError(t, err)
	assert.Equal(t, 1, byConf[qc.ConfidenceHigh])
	assert.Equal(t, 2, byConf[qc.ConfidenceMedium])
	assert.Equal(t, 0, byConf[qc.ConfidenceLow])
}

func TestStore_WriteDeduplicates(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	records := []*qc.LabeledRecord{
		testRecord("EPO", "P01588", 2.5, qc.ConfidenceHigh),
		testRecord("EPO", "P01588", 2.5, qc.ConfidenceHigh),
	}
	require.NoError(t, s.WriteRecords(records))

	count, err := s.RecordCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_LookupGene(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.WriteRecords([]*qc.LabeledRecord{
		testRecord("EPO", "P01588", 2.5, qc.ConfidenceHigh),
	}))

	r, err := s.LookupGene("EPO")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "P01588", r.Accession)
	assert.InDelta(t, 2.5, float64(r.FoldChange), 1e-9)
	assert.Equal(t, qc.ConfidenceHigh, r.Confidence)
	assert.True(t, r.UniProtValid)

	absent, err := s.LookupGene("NOPE")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestStore_RecordRun(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.RecordRun("some/input.csv", 42))

	var n, count int
	require.NoError(t, s.DB().QueryRow(
		"SELECT COUNT(*), MAX(record_count) FROM runs").Scan(&n, &count))
	assert.Equal(t, 1, n)
	assert.Equal(t, 42, count)
}

func TestStore_OpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "proteins.duckdb")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.WriteRecords([]*qc.LabeledRecord{
		testRecord("EPO", "P01588", 2.5, qc.ConfidenceHigh),
	}))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.RecordCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
