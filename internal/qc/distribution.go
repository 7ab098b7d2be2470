package qc

// Distribution counts labeled records per quality label value.
type Distribution struct {
	Completeness map[Completeness]int
	FCType       map[FCType]int
	Confidence   map[Confidence]int
}

// Distribute tallies the label distributions of a labeled table.
func Distribute(records []*LabeledRecord) Distribution {
	d := Distribution{
		Completeness: make(map[Completeness]int),
		FCType:       make(map[FCType]int),
		Confidence:   make(map[Confidence]int),
	}
	for _, r := range records {
		d.Completeness[r.Labels.Completeness]++
		d.FCType[r.Labels.FCType]++
		d.Confidence[r.Labels.Confidence]++
	}
	return d
}
