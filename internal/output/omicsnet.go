package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/omicslab/proteoqc/internal/qc"
)

// OmicsNet expression rows carry a fixed node-type tag.
const omicsNetNodeType = "Protein"

// OmicsNetWriter writes OmicsNet expression input: tab-delimited, no
// header, one gene per line with its log2 fold change and node type.
type OmicsNetWriter struct {
	w *bufio.Writer
}

// NewOmicsNetWriter creates a new OmicsNet expression writer.
func NewOmicsNetWriter(w io.Writer) *OmicsNetWriter {
	return &OmicsNetWriter{w: bufio.NewWriter(w)}
}

// Write writes a single expression row.
func (o *OmicsNetWriter) Write(r *qc.LabeledRecord) error {
	_, err := fmt.Fprintf(o.w, "%s\t%s\t%s\n", r.Gene, r.Log2FoldChange.String(), omicsNetNodeType)
	return err
}

// WriteAll writes every record in order.
func (o *OmicsNetWriter) WriteAll(records []*qc.LabeledRecord) error {
	for _, r := range records {
		if err := o.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (o *OmicsNetWriter) Flush() error {
	return o.w.Flush()
}

// WriteGeneList writes the bare gene list variant: one symbol per line,
// no header, no expression values.
func WriteGeneList(w io.Writer, records []*qc.LabeledRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintln(bw, r.Gene); err != nil {
			return err
		}
	}
	return bw.Flush()
}
