package qc

import (
	"fmt"
	"strings"

	"github.com/omicslab/proteoqc/internal/protein"
)

// Severity ranks a review flag by how strongly it compromises the record.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Recommendation is the suggested downstream handling for a flagged record.
type Recommendation string

const (
	RecommendExclude Recommendation = "Exclude"
	RecommendFlag    Recommendation = "Flag"
)

// ReviewFlag is one row of the proteins-flagged-for-review table.
type ReviewFlag struct {
	Gene           string         `csv:"Gene"`
	Description    string         `csv:"Protein_Description"`
	Issues         string         `csv:"Issues"`
	Severity       Severity       `csv:"Severity"`
	Recommendation Recommendation `csv:"Recommendation"`
	Confidence     Confidence     `csv:"Confidence_Level"`
	FCType         FCType         `csv:"FC_Type"`
	Completeness   Completeness   `csv:"Replicate_Completeness"`
}

// Review inspects a labeled record and reports whether it needs manual
// attention. Low-confidence causes recommend exclusion; edge cases and a
// single missing replicate recommend flagging; a non-standard accession
// alone is only a low-severity flag.
func Review(r *LabeledRecord) (ReviewFlag, bool) {
	var issues []string
	var severity Severity
	var recommendation Recommendation

	if r.Confidence == ConfidenceLow {
		if r.Completeness == CompletenessMissing2Plus {
			issues = append(issues, "Missing 2+ replicates")
			severity = SeverityHigh
			recommendation = RecommendExclude
		}
		if r.FCType == FCNoDetection {
			issues = append(issues, "Not detected in either condition")
			severity = SeverityHigh
			recommendation = RecommendExclude
		}
		if r.FCType == FCCannotCalculate {
			issues = append(issues, "Cannot calculate fold change")
			severity = SeverityHigh
			recommendation = RecommendExclude
		}
	}

	if r.Confidence == ConfidenceMedium {
		if r.Completeness == CompletenessMissing1 {
			issues = append(issues, "Missing 1 replicate")
			severity = SeverityMedium
			recommendation = RecommendFlag
		}
		if r.FCType == FCCompleteSuppression || r.FCType == FCCompleteInduction {
			issues = append(issues, fmt.Sprintf("%s - edge case", r.FCType))
			severity = SeverityMedium
			recommendation = RecommendFlag
		}
	}

	if !r.UniProtValid {
		issues = append(issues, "Non-standard UniProt ID")
		if severity == "" {
			severity = SeverityLow
		}
		if recommendation == "" {
			recommendation = RecommendFlag
		}
	}

	if len(issues) == 0 {
		return ReviewFlag{}, false
	}

	return ReviewFlag{
		Gene:           r.Gene,
		Description:    r.Description,
		Issues:         strings.Join(issues, "; "),
		Severity:       severity,
		Recommendation: recommendation,
		Confidence:     r.Confidence,
		FCType:         r.FCType,
		Completeness:   r.Completeness,
	}, true
}

// ReviewAll collects the review flags for a batch of labeled records.
func ReviewAll(records []*LabeledRecord) []ReviewFlag {
	var flags []ReviewFlag
	for _, r := range records {
		if flag, ok := Review(r); ok {
			flags = append(flags, flag)
		}
	}
	return flags
}

// ReplicateStatus is one row of the missing-data summary: the presence of
// each replicate slot for a protein.
type ReplicateStatus struct {
	Gene          string `csv:"Gene"`
	VehicleRep1   string `csv:"Vehicle_Rep1"`
	VehicleRep2   string `csv:"Vehicle_Rep2"`
	TreatmentRep1 string `csv:"Testosterone_Rep1"`
	TreatmentRep2 string `csv:"Testosterone_Rep2"`
	Status        string `csv:"Data_Completeness_Status"`
	MissingCount  int    `csv:"Missing_Count"`
}

// ReplicateReport summarizes replicate presence for a single record.
func ReplicateReport(r *protein.Record) ReplicateStatus {
	present := func(v protein.Float) string {
		if v.Present() {
			return "Present"
		}
		return "Missing"
	}

	missing := r.MissingReplicates()
	var status string
	switch missing {
	case 0:
		status = "Complete (4/4)"
	case 1:
		status = "Missing 1 (3/4)"
	case 2:
		status = "Missing 2 (2/4)"
	case 3:
		status = "Missing 3 (1/4)"
	default:
		status = "Missing All (0/4)"
	}

	return ReplicateStatus{
		Gene:          r.Gene,
		VehicleRep1:   present(r.VehicleRep1),
		VehicleRep2:   present(r.VehicleRep2),
		TreatmentRep1: present(r.TreatmentRep1),
		TreatmentRep2: present(r.TreatmentRep2),
		Status:        status,
		MissingCount:  missing,
	}
}
