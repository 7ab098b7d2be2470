package plot

import (
	"math"

	"github.com/omicslab/proteoqc/internal/qc"
)

// Volcano renders the regulation overview: log2 fold change against mean
// abundance on a log10 scale, colored by confidence tier, with reference
// lines at the two-fold-change cutoffs.
func Volcano(records []*qc.LabeledRecord, path string) error {
	type pt struct {
		x, y float64
		c    color
	}
	var pts []pt
	xmin, xmax := -1.0, 1.0
	ymin, ymax := math.Inf(1), math.Inf(-1)

	for _, r := range records {
		x := float64(r.Log2FoldChange)
		// Complete inductions carry log2FC = +Inf; they have no finite
		// position on the axis.
		if r.Log2FoldChange.IsMissing() || math.IsInf(x, 0) {
			continue
		}
		abundance := (float64(r.VehicleMean) + float64(r.TreatmentMean)) / 2
		if math.IsNaN(abundance) || abundance <= 0 {
			continue
		}
		y := math.Log10(abundance)
		pts = append(pts, pt{x: x, y: y, c: confidenceColor(r.Confidence)})

		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}

	if len(pts) == 0 {
		ymin, ymax = 0, 1
	}

	f := newFrame(
		"Differential Protein Regulation",
		"log2 fold change (Testosterone / Vehicle)",
		"log10 mean abundance",
		pad(xmin, xmax, -1), pad(xmin, xmax, 1),
		pad(ymin, ymax, -1), pad(ymin, ymax, 1),
	)

	// Two-fold up/down cutoffs.
	f.vline(-1, colorGrid)
	f.vline(1, colorGrid)
	f.vline(0, colorAxis)

	for _, p := range pts {
		f.point(p.x, p.y, p.c, 6)
	}

	return f.save(path)
}

// confidenceColor maps a confidence tier to the shared palette.
func confidenceColor(c qc.Confidence) color {
	switch c {
	case qc.ConfidenceHigh:
		return colorHigh
	case qc.ConfidenceMedium:
		return colorMedium
	default:
		return colorLow
	}
}

// pad widens a data range by 5% on the given side.
func pad(min, max, side float64) float64 {
	span := max - min
	if span <= 0 {
		span = 1
	}
	if side < 0 {
		return min - span*0.05
	}
	return max + span*0.05
}
