package output

import (
	"encoding/csv"
	"io"

	"github.com/omicslab/proteoqc/internal/qc"
)

// PaintOmicsWriter writes the full PaintOmics expression table: CSV with
// a header row, one protein per line with regulation and annotation
// metadata.
type PaintOmicsWriter struct {
	w *csv.Writer
}

// NewPaintOmicsWriter creates a new PaintOmics full-format writer.
func NewPaintOmicsWriter(w io.Writer) *PaintOmicsWriter {
	return &PaintOmicsWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the header line.
func (p *PaintOmicsWriter) WriteHeader() error {
	return p.w.Write([]string{
		"Name",
		"Testosterone_vs_Vehicle",
		"Fold_Change",
		"Regulation",
		"Confidence",
		"Function",
		"Description",
	})
}

// Write writes a single protein row.
func (p *PaintOmicsWriter) Write(r *qc.LabeledRecord) error {
	return p.w.Write([]string{
		r.Gene,
		r.Log2FoldChange.String(),
		r.FoldChange.String(),
		Regulation(r.Log2FoldChange),
		string(r.Confidence),
		r.FunctionalClass,
		r.Description,
	})
}

// Flush flushes any buffered rows.
func (p *PaintOmicsWriter) Flush() error {
	p.w.Flush()
	return p.w.Error()
}

// WritePaintOmicsMinimal writes the two-column variant: gene name and
// log2 fold change, with header.
func WritePaintOmicsMinimal(w io.Writer, records []*qc.LabeledRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Testosterone_vs_Vehicle"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Gene, r.Log2FoldChange.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePaintOmicsMatrix writes the two-condition matrix format PaintOmics
// expects when comparing conditions: the vehicle baseline column is fixed
// at 0 and the treatment column carries the log2 fold change. The
// separator selects between the CSV and tab-separated variants.
func WritePaintOmicsMatrix(w io.Writer, records []*qc.LabeledRecord, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep
	cw.UseCRLF = false

	if err := cw.Write([]string{"ID", "Vehicle", "Testosterone"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Gene, "0", r.Log2FoldChange.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
