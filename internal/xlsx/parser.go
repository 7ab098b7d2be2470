// Package xlsx reads protein records from the source Excel workbook.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/omicslab/proteoqc/internal/protein"
)

// Source workbook column headers.
const (
	ColAccession        = "UniProt_Accession"
	ColGene             = "Gene"
	ColDescription      = "Protein_Description"
	ColUniProtID        = "UniProt_ID"
	ColAlternateNames   = "Alternate_Names"
	ColMouseGeneID      = "Mouse_Gene_ID"
	ColCellularLocation = "Cellular_Location"
	ColLog10FoldChange  = "log_10_fold_change"
	ColLog2FoldChange   = "log_2_fold_change"
	ColVehicleRep1      = "Vehicle_Rep1_31579"
	ColVehicleRep2      = "Vehicle_Rep2_31581"
	ColVehicleMean      = "Vehicle_Mean"
	ColVehicleSD        = "Vehicle_SD"
	ColVehicleSDPct     = "Vehicle_SD_Percent"
	ColTreatmentRep1    = "Testosterone_Rep1_31578"
	ColTreatmentRep2    = "Testosterone_Rep2_31580"
	ColTreatmentMean    = "Testosterone_Mean"
	ColTreatmentSD      = "Testosterone_SD"
	ColTreatmentSDPct   = "Testosterone_SD_Percent"
	ColFoldChange       = "Fold_Change"
	ColFunctionalClass  = "Functional_Class"
)

// Parser reads protein records from an Excel workbook, one data row at a
// time. The whole sheet is loaded up front; source tables are tens of
// rows, not thousands.
type Parser struct {
	file    *excelize.File
	rows    [][]string
	columns map[string]int
	next    int // index into rows of the next data row
}

// NewParser opens the workbook at path and locates the protein table.
// If sheet is empty, the first sheet whose header row includes the Gene
// and Fold_Change columns is used.
func NewParser(path, sheet string) (*Parser, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	p := &Parser{file: f}

	candidates := f.GetSheetList()
	if sheet != "" {
		candidates = []string{sheet}
	}

	for _, name := range candidates {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		if cols, headerRow, ok := findHeader(rows); ok {
			p.rows = rows
			p.columns = cols
			p.next = headerRow + 1
			return p, nil
		}
	}

	f.Close()
	if sheet != "" {
		return nil, fmt.Errorf("sheet %q has no protein table header", sheet)
	}
	return nil, fmt.Errorf("no sheet with a protein table header found")
}

// findHeader scans the leading rows for the header line and returns the
// column index mapping.
func findHeader(rows [][]string) (map[string]int, int, bool) {
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		cols := make(map[string]int)
		for j, cell := range rows[i] {
			cols[strings.TrimSpace(cell)] = j
		}
		if _, hasGene := cols[ColGene]; !hasGene {
			continue
		}
		if _, hasFC := cols[ColFoldChange]; !hasFC {
			continue
		}
		return cols, i, true
	}
	return nil, 0, false
}

// Next reads the next record. Returns nil, nil after the last data row.
// Rows without a gene symbol or accession are skipped.
func (p *Parser) Next() (*protein.Record, error) {
	for p.next < len(p.rows) {
		row := p.rows[p.next]
		p.next++

		r := p.parseRow(row)
		if r.Gene == "" && r.Accession == "" {
			continue
		}
		return r, nil
	}
	return nil, nil
}

func (p *Parser) parseRow(row []string) *protein.Record {
	text := func(name string) string {
		return protein.CleanText(p.cell(row, name))
	}
	num := func(name string) protein.Float {
		return protein.ParseFloat(p.cell(row, name))
	}

	r := protein.NewRecord()
	r.Accession = text(ColAccession)
	r.Gene = strings.ToUpper(text(ColGene))
	r.Description = text(ColDescription)
	r.UniProtID = text(ColUniProtID)
	r.AlternateNames = text(ColAlternateNames)
	r.MouseGeneID = text(ColMouseGeneID)
	r.CellularLocation = text(ColCellularLocation)
	r.Log10FoldChange = num(ColLog10FoldChange)
	r.Log2FoldChange = num(ColLog2FoldChange)
	r.VehicleRep1 = num(ColVehicleRep1)
	r.VehicleRep2 = num(ColVehicleRep2)
	r.VehicleMean = num(ColVehicleMean)
	r.VehicleSD = num(ColVehicleSD)
	r.VehicleSDPercent = num(ColVehicleSDPct)
	r.TreatmentRep1 = num(ColTreatmentRep1)
	r.TreatmentRep2 = num(ColTreatmentRep2)
	r.TreatmentMean = num(ColTreatmentMean)
	r.TreatmentSD = num(ColTreatmentSD)
	r.TreatmentSDPercent = num(ColTreatmentSDPct)
	r.FoldChange = num(ColFoldChange)
	r.FunctionalClass = text(ColFunctionalClass)
	return r
}

// cell returns the named cell of a row, or "" when the row is short or the
// column is absent from the workbook.
func (p *Parser) cell(row []string, name string) string {
	idx, ok := p.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Close closes the underlying workbook.
func (p *Parser) Close() error {
	return p.file.Close()
}

// RowNumber returns the 1-based sheet row of the most recently read row.
func (p *Parser) RowNumber() int {
	return p.next
}
