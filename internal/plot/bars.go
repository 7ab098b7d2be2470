package plot

import (
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/omicslab/proteoqc/internal/output"
	"github.com/omicslab/proteoqc/internal/qc"
)

// Bar is one category of a bar chart.
type Bar struct {
	Label string
	Value float64
	Color color
}

// BarChart renders vertical bars with category labels along the x-axis.
func BarChart(title, ylabel string, bars []Bar, path string) error {
	ymax := 1.0
	for _, b := range bars {
		ymax = math.Max(ymax, b.Value)
	}

	f := newFrame(title, "", ylabel, 0, float64(len(bars)), 0, ymax*1.1)

	slot := 1.0
	for i, b := range bars {
		x0 := f.x(float64(i) + 0.2*slot)
		x1 := f.x(float64(i) + 0.8*slot)
		y0 := f.y(0)
		y1 := f.y(b.Value)

		setColor(f.dc, b.Color)
		f.dc.DrawRectangle(x0, y1, x1-x0, y0-y1)
		f.dc.Fill()

		setColor(f.dc, colorAxis)
		f.dc.DrawStringAnchored(b.Label, (x0+x1)/2, chartHeight-marginBottom+18, 0.5, 0.5)
		f.dc.DrawStringAnchored(formatTick(b.Value), (x0+x1)/2, y1-12, 0.5, 0.5)
	}

	return f.save(path)
}

// ConfidenceBars renders the confidence-level distribution.
func ConfidenceBars(records []*qc.LabeledRecord, path string) error {
	dist := qc.Distribute(records)
	bars := []Bar{
		{Label: string(qc.ConfidenceHigh), Value: float64(dist.Confidence[qc.ConfidenceHigh]), Color: colorHigh},
		{Label: string(qc.ConfidenceMedium), Value: float64(dist.Confidence[qc.ConfidenceMedium]), Color: colorMedium},
		{Label: string(qc.ConfidenceLow), Value: float64(dist.Confidence[qc.ConfidenceLow]), Color: colorLow},
	}
	return BarChart("Protein Confidence Level Distribution", "Proteins", bars, path)
}

// CompletenessBars renders the replicate-completeness distribution.
func CompletenessBars(records []*qc.LabeledRecord, path string) error {
	dist := qc.Distribute(records)
	bars := []Bar{
		{Label: string(qc.CompletenessComplete), Value: float64(dist.Completeness[qc.CompletenessComplete]), Color: colorHigh},
		{Label: string(qc.CompletenessMissing1), Value: float64(dist.Completeness[qc.CompletenessMissing1]), Color: colorMedium},
		{Label: string(qc.CompletenessMissing2Plus), Value: float64(dist.Completeness[qc.CompletenessMissing2Plus]), Color: colorLow},
	}
	return BarChart("Replicate Data Completeness", "Proteins", bars, path)
}

// TopChangers renders a horizontal bar chart of the n proteins with the
// largest absolute log2 fold change, colored by direction.
func TopChangers(records []*qc.LabeledRecord, n int, path string) error {
	ranked := make([]*qc.LabeledRecord, 0, len(records))
	for _, r := range records {
		v := float64(r.Log2FoldChange)
		if !r.Log2FoldChange.IsMissing() && !math.IsInf(v, 0) {
			ranked = append(ranked, r)
		}
	}
	output.SortByAbsLog2FC(ranked)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	xmin, xmax := -1.0, 1.0
	for _, r := range ranked {
		v := float64(r.Log2FoldChange)
		xmin = math.Min(xmin, v)
		xmax = math.Max(xmax, v)
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	setColor(dc, colorAxis)
	dc.DrawStringAnchored("Top Differentially Regulated Proteins", chartWidth/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored("log2 fold change", chartWidth/2, chartHeight-marginBottom/3, 0.5, 0.5)

	span := xmax - xmin
	xpix := func(v float64) float64 {
		return marginLeft + (v-xmin)/span*(chartWidth-marginLeft-marginRight)
	}

	rows := len(ranked)
	if rows == 0 {
		rows = 1
	}
	rowHeight := (chartHeight - marginTop - marginBottom) / float64(rows)

	zero := xpix(0)
	setColor(dc, colorAxis)
	dc.DrawLine(zero, marginTop, zero, chartHeight-marginBottom)
	dc.Stroke()

	for i, r := range ranked {
		v := float64(r.Log2FoldChange)
		y := marginTop + float64(i)*rowHeight
		barTop := y + rowHeight*0.15
		barHeight := rowHeight * 0.7

		c := colorUp
		if v < 0 {
			c = colorDown
		}
		setColor(dc, c)
		if v >= 0 {
			dc.DrawRectangle(zero, barTop, xpix(v)-zero, barHeight)
		} else {
			dc.DrawRectangle(xpix(v), barTop, zero-xpix(v), barHeight)
		}
		dc.Fill()

		setColor(dc, colorAxis)
		dc.DrawStringAnchored(r.Gene, marginLeft-10, y+rowHeight/2, 1, 0.5)
	}

	if err := dc.SavePNG(path); err != nil {
		return err
	}
	return nil
}
