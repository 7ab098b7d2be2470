// Package summary computes dataset-level statistics for the cleaning
// stage: regulation counts, fold-change distribution, functional-class
// breakdown, and missing-data accounting.
package summary

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/omicslab/proteoqc/internal/protein"
)

// Unchanged fold-change band. Proteins inside it are counted as
// unaffected by treatment.
const (
	unchangedLow  = 0.95
	unchangedHigh = 1.05
)

// MetricRow is one Metric/Value line of the summary statistics table.
type MetricRow struct {
	Metric string        `csv:"Metric"`
	Value  protein.Float `csv:"Value"`
}

// Stats summarizes the fold-change landscape of a cleaned table.
type Stats struct {
	TotalProteins int
	Upregulated   int
	Downregulated int
	Unchanged     int
	FCMean        protein.Float
	FCMedian      protein.Float
	FCStdDev      protein.Float
	FCMin         protein.Float
	FCMax         protein.Float
}

// Compute derives summary statistics from a cleaned table.
func Compute(records []*protein.Record) Stats {
	s := Stats{TotalProteins: len(records)}

	var fcs []float64
	for _, r := range records {
		fc := r.FoldChange
		if fc.IsMissing() {
			continue
		}
		fcs = append(fcs, float64(fc))
		if fc > 1 {
			s.Upregulated++
		}
		if fc < 1 {
			s.Downregulated++
		}
		if fc >= unchangedLow && fc <= unchangedHigh {
			s.Unchanged++
		}
	}

	s.FCMean = fromStats(stats.Mean(fcs))
	s.FCMedian = fromStats(stats.Median(fcs))
	s.FCStdDev = fromStats(stats.StandardDeviationSample(fcs))
	s.FCMin = fromStats(stats.Min(fcs))
	s.FCMax = fromStats(stats.Max(fcs))
	return s
}

// fromStats converts a stats-package result to an optional Float;
// the library errors only on empty input, which maps to missing.
func fromStats(v float64, err error) protein.Float {
	if err != nil {
		return protein.Missing()
	}
	return protein.Float(v)
}

// Rows lays the statistics out as the Metric/Value table written to
// summary_statistics.csv.
func (s Stats) Rows() []MetricRow {
	return []MetricRow{
		{Metric: "Total Proteins", Value: protein.Float(s.TotalProteins)},
		{Metric: "Upregulated (FC > 1)", Value: protein.Float(s.Upregulated)},
		{Metric: "Downregulated (FC < 1)", Value: protein.Float(s.Downregulated)},
		{Metric: "Unchanged (FC ~ 1)", Value: protein.Float(s.Unchanged)},
		{Metric: "Fold Change - Mean", Value: s.FCMean},
		{Metric: "Fold Change - Median", Value: s.FCMedian},
		{Metric: "Fold Change - Std Dev", Value: s.FCStdDev},
		{Metric: "Fold Change - Min", Value: s.FCMin},
		{Metric: "Fold Change - Max", Value: s.FCMax},
	}
}

// ClassStat is one row of the functional-class distribution table.
type ClassStat struct {
	FunctionalClass string  `csv:"Functional_Class"`
	Count           int     `csv:"Count"`
	Percentage      float64 `csv:"Percentage"`
	Upregulated     int     `csv:"Upregulated_Count"`
	Downregulated   int     `csv:"Downregulated_Count"`
}

// ClassDistribution breaks the table down by functional class, with
// up/down regulation counts per class. Classes are ordered by descending
// size.
func ClassDistribution(records []*protein.Record) []ClassStat {
	byClass := make(map[string]*ClassStat)
	var order []string

	for _, r := range records {
		class := r.FunctionalClass
		if class == "" {
			continue
		}
		cs, ok := byClass[class]
		if !ok {
			cs = &ClassStat{FunctionalClass: class}
			byClass[class] = cs
			order = append(order, class)
		}
		cs.Count++
		if !r.FoldChange.IsMissing() {
			if r.FoldChange > 1 {
				cs.Upregulated++
			}
			if r.FoldChange < 1 {
				cs.Downregulated++
			}
		}
	}

	out := make([]ClassStat, 0, len(order))
	for _, class := range order {
		cs := byClass[class]
		if len(records) > 0 {
			cs.Percentage = float64(cs.Count) / float64(len(records)) * 100
		}
		out = append(out, *cs)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Upregulated returns the records with fold change above 1, strongest
// first.
func Upregulated(records []*protein.Record) []*protein.Record {
	var out []*protein.Record
	for _, r := range records {
		if !r.FoldChange.IsMissing() && r.FoldChange > 1 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FoldChange > out[j].FoldChange })
	return out
}

// Downregulated returns the records with fold change below 1, strongest
// suppression first.
func Downregulated(records []*protein.Record) []*protein.Record {
	var out []*protein.Record
	for _, r := range records {
		if !r.FoldChange.IsMissing() && r.FoldChange < 1 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FoldChange < out[j].FoldChange })
	return out
}

// TopChanger is one row of the top-changers table.
type TopChanger struct {
	Gene            string        `csv:"Gene"`
	Description     string        `csv:"Protein_Description"`
	FoldChange      protein.Float `csv:"Fold_Change"`
	Log2FoldChange  protein.Float `csv:"log_2_fold_change"`
	FunctionalClass string        `csv:"Functional_Class"`
	Regulation      string        `csv:"Regulation"`
}

// TopChangers combines the strongest n up- and downregulated proteins
// into one table.
func TopChangers(records []*protein.Record, n int) []TopChanger {
	var out []TopChanger
	add := func(recs []*protein.Record, regulation string) {
		if len(recs) > n {
			recs = recs[:n]
		}
		for _, r := range recs {
			out = append(out, TopChanger{
				Gene:            r.Gene,
				Description:     r.Description,
				FoldChange:      r.FoldChange,
				Log2FoldChange:  r.Log2FoldChange,
				FunctionalClass: r.FunctionalClass,
				Regulation:      regulation,
			})
		}
	}
	add(Upregulated(records), "Upregulated")
	add(Downregulated(records), "Downregulated")
	return out
}
