package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

func exportRecord(gene, class string) *qc.LabeledRecord {
	r := protein.NewRecord()
	r.Gene = gene
	r.FunctionalClass = class
	return &qc.LabeledRecord{Record: *r}
}

func TestFilterClass(t *testing.T) {
	records := []*qc.LabeledRecord{
		exportRecord("EPO", "cytokine"),
		exportRecord("IGF1", "Growth Factor"),
		exportRecord("BGN", "other"),
	}

	// Class names match case-insensitively; source tables carry lowercase.
	cytokines := filterClass(records, "Cytokine")
	require.Len(t, cytokines, 1)
	assert.Equal(t, "EPO", cytokines[0].Gene)

	signaling := filterClass(records, "Cytokine", "Growth Factor")
	require.Len(t, signaling, 2)

	assert.Empty(t, filterClass(records, "Receptor"))
}

func TestFilterGenes(t *testing.T) {
	records := []*qc.LabeledRecord{
		exportRecord("EPO", "cytokine"),
		exportRecord("BGN", "other"),
		exportRecord("VCAN", "other"),
	}

	ecm := filterGenes(records, ecmGenes)
	require.Len(t, ecm, 2)
	assert.Equal(t, "BGN", ecm[0].Gene)
	assert.Equal(t, "VCAN", ecm[1].Gene)
}
