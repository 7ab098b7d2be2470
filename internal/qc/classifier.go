// Package qc assigns measurement-quality labels to protein records so
// downstream filters and exports can weight or drop unreliable rows.
package qc

import (
	"go.uber.org/zap"

	"github.com/omicslab/proteoqc/internal/protein"
)

// Completeness describes how many of the four replicate slots held a
// usable intensity.
type Completeness string

const (
	CompletenessComplete     Completeness = "Complete"
	CompletenessMissing1     Completeness = "Missing_1"
	CompletenessMissing2Plus Completeness = "Missing_2+"
)

// FCType describes how the fold change for a record should be interpreted.
type FCType string

const (
	FCNormal              FCType = "Normal"
	FCCompleteSuppression FCType = "Complete_Suppression"
	FCCompleteInduction   FCType = "Complete_Induction"
	FCNoDetection         FCType = "No_Detection"
	FCCannotCalculate     FCType = "Cannot_Calculate"
)

// Confidence is the overall reliability tier for a record.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Labels holds the three quality labels assigned to a record.
type Labels struct {
	Completeness Completeness `csv:"Replicate_Completeness"`
	FCType       FCType       `csv:"FC_Type"`
	Confidence   Confidence   `csv:"Confidence_Level"`
}

// LabeledRecord is a protein record enriched with its quality labels and
// accession validation flag. Records are labeled once and treated as
// immutable afterwards.
type LabeledRecord struct {
	protein.Record
	UniProtValid bool `csv:"UniProt_Valid"`
	Labels
}

// Classify assigns the three quality labels for a record. It is a pure
// function of the record's own replicate values and condition means;
// malformed or missing inputs are valid inputs that land in the
// Cannot_Calculate and Low branches rather than errors.
func Classify(r *protein.Record) Labels {
	completeness := ClassifyCompleteness(r.MissingReplicates())
	fcType := ClassifyFCType(r.VehicleMean, r.TreatmentMean, r.FoldChange)
	return Labels{
		Completeness: completeness,
		FCType:       fcType,
		Confidence:   ClassifyConfidence(completeness, fcType),
	}
}

// ClassifyCompleteness maps the count of missing-or-zero replicate slots
// to a completeness tier.
func ClassifyCompleteness(missing int) Completeness {
	switch {
	case missing == 0:
		return CompletenessComplete
	case missing == 1:
		return CompletenessMissing1
	default:
		return CompletenessMissing2Plus
	}
}

// ClassifyFCType determines how a record's fold change should be read.
// The checks are ordered; the first match wins.
func ClassifyFCType(vehicleMean, treatmentMean, foldChange protein.Float) FCType {
	switch {
	case foldChange.IsMissing() || vehicleMean.IsMissing() || treatmentMean.IsMissing():
		return FCCannotCalculate
	case vehicleMean == 0 && treatmentMean == 0:
		return FCNoDetection
	case treatmentMean == 0 && vehicleMean > 0:
		return FCCompleteSuppression
	case vehicleMean == 0 && treatmentMean > 0:
		return FCCompleteInduction
	default:
		return FCNormal
	}
}

// ClassifyConfidence assigns the reliability tier from the other two
// labels. The checks are ordered; the first match wins.
func ClassifyConfidence(completeness Completeness, fcType FCType) Confidence {
	switch {
	case completeness == CompletenessMissing2Plus:
		return ConfidenceLow
	case fcType == FCCannotCalculate || fcType == FCNoDetection:
		return ConfidenceLow
	case completeness == CompletenessComplete && fcType == FCNormal:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// Classifier labels batches of records, logging the rows that will need
// attention downstream.
type Classifier struct {
	logger *zap.Logger
}

// NewClassifier creates a classifier with logging disabled.
func NewClassifier() *Classifier {
	return &Classifier{logger: zap.NewNop()}
}

// SetLogger sets the logger for warning messages.
func (c *Classifier) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Run labels every record in input order.
func (c *Classifier) Run(records []*protein.Record) []*LabeledRecord {
	labeled := make([]*LabeledRecord, 0, len(records))
	for _, r := range records {
		lr := &LabeledRecord{
			Record:       *r,
			UniProtValid: protein.ValidAccession(r.Accession),
			Labels:       Classify(r),
		}
		if lr.Confidence == ConfidenceLow {
			c.logger.Warn("low confidence record",
				zap.String("gene", lr.Gene),
				zap.String("fc_type", string(lr.FCType)),
				zap.String("completeness", string(lr.Completeness)))
		}
		if !lr.UniProtValid {
			c.logger.Warn("non-standard uniprot accession",
				zap.String("gene", lr.Gene),
				zap.String("accession", lr.Accession))
		}
		labeled = append(labeled, lr)
	}
	return labeled
}
