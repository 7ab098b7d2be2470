package protein

// RecordParser is the interface for parsers that read protein records.
// Both the Excel and CSV parsers implement this interface.
type RecordParser interface {
	// Next reads the next record.
	// Returns nil, nil when there are no more records.
	Next() (*Record, error)

	// Close closes the parser and releases resources.
	Close() error

	// RowNumber returns the current source row being processed.
	RowNumber() int
}
