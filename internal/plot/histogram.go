package plot

import (
	"math"

	"github.com/omicslab/proteoqc/internal/qc"
)

// Log2FCHistogram renders the distribution of log2 fold changes.
func Log2FCHistogram(records []*qc.LabeledRecord, bins int, path string) error {
	var values []float64
	for _, r := range records {
		if !r.Log2FoldChange.IsMissing() && !math.IsInf(float64(r.Log2FoldChange), 0) {
			values = append(values, float64(r.Log2FoldChange))
		}
	}
	return Histogram("Distribution of log2 Fold Changes", "log2 fold change", values, bins, path)
}

// Histogram renders a binned frequency chart of the given values.
func Histogram(title, xlabel string, values []float64, bins int, path string) error {
	if bins < 1 {
		bins = 10
	}

	xmin, xmax := -1.0, 1.0
	for _, v := range values {
		xmin = math.Min(xmin, v)
		xmax = math.Max(xmax, v)
	}
	if xmax <= xmin {
		xmax = xmin + 1
	}

	counts := make([]int, bins)
	width := (xmax - xmin) / float64(bins)
	for _, v := range values {
		i := int((v - xmin) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	ymax := 1
	for _, c := range counts {
		if c > ymax {
			ymax = c
		}
	}

	f := newFrame(title, xlabel, "Proteins", xmin, xmax, 0, float64(ymax)*1.1)

	for i, c := range counts {
		if c == 0 {
			continue
		}
		x0 := f.x(xmin + float64(i)*width)
		x1 := f.x(xmin + float64(i+1)*width)
		y0 := f.y(0)
		y1 := f.y(float64(c))

		setColor(f.dc, colorDown)
		f.dc.DrawRectangle(x0+1, y1, x1-x0-2, y0-y1)
		f.dc.Fill()
	}

	f.vline(0, colorAxis)

	return f.save(path)
}
