// Package csvio reads and writes the pipeline's record-shaped CSV tables.
package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

func init() {
	// A header missing a record column would leave that field at its zero
	// value, which reads as a recorded zero. Make truncated tables a load
	// error instead.
	gocsv.FailIfUnmatchedStructTags = true
}

// ReadRecords loads a cleaned protein table.
func ReadRecords(path string) ([]*protein.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	var records []*protein.Record
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	return records, nil
}

// ReadLabeled loads a protein table that already carries QC label columns.
func ReadLabeled(path string) ([]*qc.LabeledRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	var records []*qc.LabeledRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	return records, nil
}

// Write marshals a slice of row structs to a CSV file. The slice element
// type's csv tags define the header.
func Write(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	return nil
}

// Parser adapts a loaded CSV table to the row-at-a-time parser interface
// shared with the Excel reader.
type Parser struct {
	records []*protein.Record
	next    int
}

// NewParser loads the protein table at path.
func NewParser(path string) (*Parser, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	return &Parser{records: records}, nil
}

// Next returns the next record, or nil, nil after the last one.
func (p *Parser) Next() (*protein.Record, error) {
	if p.next >= len(p.records) {
		return nil, nil
	}
	r := p.records[p.next]
	p.next++
	return r, nil
}

// Close releases nothing; the file is fully read at construction.
func (p *Parser) Close() error {
	return nil
}

// RowNumber returns the 1-based data row of the most recently read record.
func (p *Parser) RowNumber() int {
	return p.next
}
