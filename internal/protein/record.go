// Package protein defines the proteomics record model shared by the
// cleaning, classification, and export stages.
package protein

import (
	"math"
	"strings"
)

// Record is one row of the SILAC soluble-factor table: a single protein
// with two replicate intensities per condition plus the derived ratio
// columns. Column tags match the cleaned CSV layout.
type Record struct {
	Accession        string `csv:"UniProt_Accession"`
	Gene             string `csv:"Gene"`
	Description      string `csv:"Protein_Description"`
	UniProtID        string `csv:"UniProt_ID"`
	AlternateNames   string `csv:"Alternate_Names"`
	MouseGeneID      string `csv:"Mouse_Gene_ID"`
	CellularLocation string `csv:"Cellular_Location"`

	Log10FoldChange Float `csv:"log_10_fold_change"`
	Log2FoldChange  Float `csv:"log_2_fold_change"`

	VehicleRep1      Float `csv:"Vehicle_Rep1_31579"`
	VehicleRep2      Float `csv:"Vehicle_Rep2_31581"`
	VehicleMean      Float `csv:"Vehicle_Mean"`
	VehicleSD        Float `csv:"Vehicle_SD"`
	VehicleSDPercent Float `csv:"Vehicle_SD_Percent"`

	TreatmentRep1      Float `csv:"Testosterone_Rep1_31578"`
	TreatmentRep2      Float `csv:"Testosterone_Rep2_31580"`
	TreatmentMean      Float `csv:"Testosterone_Mean"`
	TreatmentSD        Float `csv:"Testosterone_SD"`
	TreatmentSDPercent Float `csv:"Testosterone_SD_Percent"`

	FoldChange      Float  `csv:"Fold_Change"`
	FunctionalClass string `csv:"Functional_Class"`
}

// NewRecord returns a record with every numeric cell marked missing.
// A zero Float means a recorded zero, so records must start from here
// rather than the struct zero value; otherwise Derive would treat unset
// mean and fold-change fields as recorded zeros and skip derivation.
func NewRecord() *Record {
	return &Record{
		Log10FoldChange:    Missing(),
		Log2FoldChange:     Missing(),
		VehicleRep1:        Missing(),
		VehicleRep2:        Missing(),
		VehicleMean:        Missing(),
		VehicleSD:          Missing(),
		VehicleSDPercent:   Missing(),
		TreatmentRep1:      Missing(),
		TreatmentRep2:      Missing(),
		TreatmentMean:      Missing(),
		TreatmentSD:        Missing(),
		TreatmentSDPercent: Missing(),
		FoldChange:         Missing(),
	}
}

// Replicates returns the four replicate slots in fixed order:
// vehicle rep1, vehicle rep2, treatment rep1, treatment rep2.
func (r *Record) Replicates() [4]Float {
	return [4]Float{r.VehicleRep1, r.VehicleRep2, r.TreatmentRep1, r.TreatmentRep2}
}

// MissingReplicates counts replicate slots that are absent or exactly zero.
func (r *Record) MissingReplicates() int {
	n := 0
	for _, v := range r.Replicates() {
		if !v.Present() {
			n++
		}
	}
	return n
}

// Normalize cleans the text fields in place: whitespace is stripped,
// placeholder cells become empty, and the gene symbol is uppercased.
func (r *Record) Normalize() {
	r.Accession = CleanText(r.Accession)
	r.Gene = strings.ToUpper(CleanText(r.Gene))
	r.Description = CleanText(r.Description)
	r.UniProtID = CleanText(r.UniProtID)
	r.AlternateNames = CleanText(r.AlternateNames)
	r.MouseGeneID = CleanText(r.MouseGeneID)
	r.CellularLocation = CleanText(r.CellularLocation)
	r.FunctionalClass = CleanText(r.FunctionalClass)
}

// Derive fills in missing derived columns from the replicate intensities.
// Values already present in the source table are authoritative and left
// alone; in particular a recorded mean of 0 is kept, since that is how the
// table encodes complete non-detection in a condition.
func (r *Record) Derive() {
	if r.VehicleMean.IsMissing() {
		r.VehicleMean = Mean(r.VehicleRep1, r.VehicleRep2)
	}
	if r.TreatmentMean.IsMissing() {
		r.TreatmentMean = Mean(r.TreatmentRep1, r.TreatmentRep2)
	}
	if r.FoldChange.IsMissing() {
		r.FoldChange = foldChange(r.VehicleMean, r.TreatmentMean)
	}
	if r.Log2FoldChange.IsMissing() {
		r.Log2FoldChange = logRatio(r.FoldChange, math.Log2)
	}
	if r.Log10FoldChange.IsMissing() {
		r.Log10FoldChange = logRatio(r.FoldChange, math.Log10)
	}
}

// foldChange computes treatment/vehicle with missingness propagation.
// Both-zero means yield the 0 sentinel rather than 0/0, matching the
// source table's encoding for proteins detected in neither condition.
func foldChange(vehicleMean, treatmentMean Float) Float {
	if vehicleMean.IsMissing() || treatmentMean.IsMissing() {
		return Missing()
	}
	if treatmentMean == 0 {
		return 0
	}
	return treatmentMean / vehicleMean
}

// logRatio applies a log function to a fold change. A fold change of zero
// or below has no defined log; the 0 sentinel for complete suppression
// therefore maps to a missing log value while the fold change itself is
// retained.
func logRatio(fc Float, log func(float64) float64) Float {
	if fc.IsMissing() || fc <= 0 {
		return Missing()
	}
	return Float(log(float64(fc)))
}

// CleanText strips whitespace and maps placeholder cells to the empty
// string.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "-", "nan", "NaN":
		return ""
	}
	return s
}
