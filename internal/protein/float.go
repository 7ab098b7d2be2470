package protein

import (
	"math"
	"strconv"
	"strings"
)

// Float is an optional numeric cell value. NaN marks a missing cell, so
// arithmetic on Floats propagates missingness the way the pipeline expects.
type Float float64

// Missing returns a Float representing an absent cell.
func Missing() Float {
	return Float(math.NaN())
}

// IsMissing returns true if the value is absent.
func (f Float) IsMissing() bool {
	return math.IsNaN(float64(f))
}

// Present returns true if the value counts as a detected measurement.
// A replicate intensity of exactly zero means the protein was not detected
// by the mass-spec run, so zero is treated the same as missing here.
func (f Float) Present() bool {
	return !f.IsMissing() && f != 0
}

// Abs returns the absolute value, propagating missingness.
func (f Float) Abs() Float {
	return Float(math.Abs(float64(f)))
}

// ParseFloat parses a spreadsheet cell into a Float. Empty cells, dashes,
// spreadsheet error codes, and anything unparseable become missing values
// rather than errors. Thousands separators are stripped.
func ParseFloat(s string) Float {
	s = strings.TrimSpace(s)
	switch s {
	case "", "-", "#DIV/0!", "#N/A", "#VALUE!", "nan", "NaN":
		return Missing()
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing()
	}
	return Float(v)
}

// String formats the value for delimited output; missing values render as
// an empty cell.
func (f Float) String() string {
	if f.IsMissing() {
		return ""
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// MarshalCSV implements gocsv marshaling.
func (f Float) MarshalCSV() (string, error) {
	return f.String(), nil
}

// UnmarshalCSV implements gocsv unmarshaling using the same cleaning rules
// as spreadsheet ingestion.
func (f *Float) UnmarshalCSV(s string) error {
	*f = ParseFloat(s)
	return nil
}

// Mean returns the arithmetic mean of the present values. It returns a
// missing value when no input is present, which is how a condition mean
// ends up undefined for a protein with no usable replicates.
func Mean(values ...Float) Float {
	var sum float64
	var n int
	for _, v := range values {
		if v.Present() {
			sum += float64(v)
			n++
		}
	}
	if n == 0 {
		return Missing()
	}
	return Float(sum / float64(n))
}
