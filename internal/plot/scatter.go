package plot

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/omicslab/proteoqc/internal/protein"
	"github.com/omicslab/proteoqc/internal/qc"
)

// Condition selects which pair of replicates a correlation chart compares.
type Condition int

const (
	Vehicle Condition = iota
	Treatment
)

func (c Condition) String() string {
	if c == Vehicle {
		return "Vehicle"
	}
	return "Testosterone"
}

// ReplicateCorrelation renders rep1 vs rep2 for one condition on log10
// scales, with the Pearson correlation in the title. Proteins missing
// either replicate are left out.
func ReplicateCorrelation(records []*qc.LabeledRecord, cond Condition, path string) error {
	var xs, ys []float64
	for _, r := range records {
		rep1, rep2 := conditionReps(r, cond)
		if !rep1.Present() || !rep2.Present() {
			continue
		}
		xs = append(xs, math.Log10(float64(rep1)))
		ys = append(ys, math.Log10(float64(rep2)))
	}

	title := fmt.Sprintf("%s Replicate Correlation", cond)
	if r, err := stats.Correlation(xs, ys); err == nil {
		title = fmt.Sprintf("%s (Pearson r = %.3f)", title, r)
	}

	min, max := math.Inf(1), math.Inf(-1)
	for i := range xs {
		min = math.Min(min, math.Min(xs[i], ys[i]))
		max = math.Max(max, math.Max(xs[i], ys[i]))
	}
	if len(xs) == 0 {
		min, max = 0, 1
	}

	f := newFrame(title,
		fmt.Sprintf("log10 %s Rep1", cond),
		fmt.Sprintf("log10 %s Rep2", cond),
		pad(min, max, -1), pad(min, max, 1),
		pad(min, max, -1), pad(min, max, 1))

	// Identity line: perfectly reproducible replicates fall on it.
	setColor(f.dc, colorGrid)
	f.dc.DrawLine(f.x(min), f.y(min), f.x(max), f.y(max))
	f.dc.Stroke()

	for i := range xs {
		f.point(xs[i], ys[i], colorDown, 6)
	}

	return f.save(path)
}

func conditionReps(r *qc.LabeledRecord, cond Condition) (protein.Float, protein.Float) {
	if cond == Vehicle {
		return r.VehicleRep1, r.VehicleRep2
	}
	return r.TreatmentRep1, r.TreatmentRep2
}
