package summary

import (
	"sort"

	"github.com/omicslab/proteoqc/internal/protein"
)

// ColumnMissing is one row of the missing-data-by-column table.
type ColumnMissing struct {
	Column         string  `csv:"Column"`
	MissingCount   int     `csv:"Missing_Count"`
	MissingPercent float64 `csv:"Missing_Percent"`
	PresentCount   int     `csv:"Present_Count"`
}

// columnProbes enumerates the record columns checked for missingness.
var columnProbes = []struct {
	name    string
	missing func(*protein.Record) bool
}{
	{"UniProt_Accession", func(r *protein.Record) bool { return r.Accession == "" }},
	{"Gene", func(r *protein.Record) bool { return r.Gene == "" }},
	{"Protein_Description", func(r *protein.Record) bool { return r.Description == "" }},
	{"UniProt_ID", func(r *protein.Record) bool { return r.UniProtID == "" }},
	{"Alternate_Names", func(r *protein.Record) bool { return r.AlternateNames == "" }},
	{"Mouse_Gene_ID", func(r *protein.Record) bool { return r.MouseGeneID == "" }},
	{"Cellular_Location", func(r *protein.Record) bool { return r.CellularLocation == "" }},
	{"Functional_Class", func(r *protein.Record) bool { return r.FunctionalClass == "" }},
	{"log_10_fold_change", func(r *protein.Record) bool { return r.Log10FoldChange.IsMissing() }},
	{"log_2_fold_change", func(r *protein.Record) bool { return r.Log2FoldChange.IsMissing() }},
	{"Vehicle_Rep1_31579", func(r *protein.Record) bool { return r.VehicleRep1.IsMissing() }},
	{"Vehicle_Rep2_31581", func(r *protein.Record) bool { return r.VehicleRep2.IsMissing() }},
	{"Vehicle_Mean", func(r *protein.Record) bool { return r.VehicleMean.IsMissing() }},
	{"Vehicle_SD", func(r *protein.Record) bool { return r.VehicleSD.IsMissing() }},
	{"Vehicle_SD_Percent", func(r *protein.Record) bool { return r.VehicleSDPercent.IsMissing() }},
	{"Testosterone_Rep1_31578", func(r *protein.Record) bool { return r.TreatmentRep1.IsMissing() }},
	{"Testosterone_Rep2_31580", func(r *protein.Record) bool { return r.TreatmentRep2.IsMissing() }},
	{"Testosterone_Mean", func(r *protein.Record) bool { return r.TreatmentMean.IsMissing() }},
	{"Testosterone_SD", func(r *protein.Record) bool { return r.TreatmentSD.IsMissing() }},
	{"Testosterone_SD_Percent", func(r *protein.Record) bool { return r.TreatmentSDPercent.IsMissing() }},
	{"Fold_Change", func(r *protein.Record) bool { return r.FoldChange.IsMissing() }},
}

// MissingByColumn reports the columns with missing cells, worst first.
// Columns with no missing values are omitted, matching the quality report.
func MissingByColumn(records []*protein.Record) []ColumnMissing {
	var out []ColumnMissing
	for _, probe := range columnProbes {
		missing := 0
		for _, r := range records {
			if probe.missing(r) {
				missing++
			}
		}
		if missing == 0 {
			continue
		}
		cm := ColumnMissing{
			Column:       probe.name,
			MissingCount: missing,
			PresentCount: len(records) - missing,
		}
		if len(records) > 0 {
			cm.MissingPercent = float64(missing) / float64(len(records)) * 100
		}
		out = append(out, cm)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MissingPercent > out[j].MissingPercent })
	return out
}

// Completeness returns the share of non-missing cells across all probed
// columns, as a percentage.
func Completeness(records []*protein.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	total := len(records) * len(columnProbes)
	missing := 0
	for _, probe := range columnProbes {
		for _, r := range records {
			if probe.missing(r) {
				missing++
			}
		}
	}
	return float64(total-missing) / float64(total) * 100
}
