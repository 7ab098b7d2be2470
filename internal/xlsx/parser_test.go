package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a minimal source workbook with the given sheet name
// and rows, returning the file path.
func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	require.NoError(t, err)
	f.SetActiveSheet(index)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "proteins.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testHeader() []interface{} {
	return []interface{}{
		ColAccession, ColGene, ColDescription,
		ColVehicleRep1, ColVehicleRep2, ColVehicleMean,
		ColTreatmentRep1, ColTreatmentRep2, ColTreatmentMean,
		ColFoldChange, ColFunctionalClass,
	}
}

func TestParser(t *testing.T) {
	path := writeWorkbook(t, "Soluble Factors", [][]interface{}{
		testHeader(),
		{"P01588", "epo", "Erythropoietin", 10, 12, 11, 8, 9, 8.5, 0.77, "Cytokine"},
		{"Q8JZQ5", "IGF1", "Insulin-like growth factor", "-", 12, 12, 8, 9, 8.5, "#DIV/0!", "Growth Factor"},
	})

	p, err := NewParser(path, "")
	require.NoError(t, err)
	defer p.Close()

	first, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "P01588", first.Accession)
	assert.Equal(t, "EPO", first.Gene)
	assert.Equal(t, "Erythropoietin", first.Description)
	assert.InDelta(t, 10, float64(first.VehicleRep1), 1e-9)
	assert.InDelta(t, 0.77, float64(first.FoldChange), 1e-9)
	assert.Equal(t, "Cytokine", first.FunctionalClass)

	second, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "IGF1", second.Gene)
	assert.True(t, second.VehicleRep1.IsMissing())
	assert.True(t, second.FoldChange.IsMissing())

	done, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, done)
}

func TestParser_HeaderBelowTitleRows(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]interface{}{
		{"Soluble factor screen, testosterone vs vehicle"},
		{},
		testHeader(),
		{"P01588", "EPO", "Erythropoietin", 10, 12, 11, 8, 9, 8.5, 0.77, "Cytokine"},
	})

	p, err := NewParser(path, "")
	require.NoError(t, err)
	defer p.Close()

	r, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "EPO", r.Gene)
	assert.Equal(t, 4, p.RowNumber())
}

func TestParser_SkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]interface{}{
		testHeader(),
		{"P01588", "EPO", "Erythropoietin", 10, 12, 11, 8, 9, 8.5, 0.77, "Cytokine"},
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"P05017", "IGF1", "", 5, 6, 5.5, 7, 8, 7.5, 1.36, ""},
	})

	p, err := NewParser(path, "")
	require.NoError(t, err)
	defer p.Close()

	var genes []string
	for {
		r, err := p.Next()
		require.NoError(t, err)
		if r == nil {
			break
		}
		genes = append(genes, r.Gene)
	}
	assert.Equal(t, []string{"EPO", "IGF1"}, genes)
}

func TestParser_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Proteins", [][]interface{}{
		testHeader(),
		{"P01588", "EPO", "", 10, 12, 11, 8, 9, 8.5, 0.77, ""},
	})

	p, err := NewParser(path, "Proteins")
	require.NoError(t, err)
	p.Close()

	_, err = NewParser(path, "NoSuchSheet")
	assert.Error(t, err)
}

func TestParser_NoHeader(t *testing.T) {
	path := writeWorkbook(t, "Notes", [][]interface{}{
		{"free-form notes"},
		{"nothing tabular here"},
	})

	_, err := NewParser(path, "")
	assert.Error(t, err)
}
