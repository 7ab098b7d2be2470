// Package plot renders the pipeline's chart set as PNG images using a
// small set of raster chart primitives.
package plot

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Canvas dimensions and layout for all charts.
const (
	chartWidth  = 1200
	chartHeight = 900

	marginLeft   = 110.0
	marginRight  = 50.0
	marginTop    = 80.0
	marginBottom = 90.0
)

// Confidence tier colors, matching the palette used across charts.
var (
	colorHigh   = rgb(0x2e, 0x7d, 0x32)
	colorMedium = rgb(0xf9, 0xa8, 0x25)
	colorLow    = rgb(0xc6, 0x28, 0x28)
	colorUp     = rgb(0xd3, 0x2f, 0x2f)
	colorDown   = rgb(0x19, 0x76, 0xd2)
	colorAxis   = rgb(0x42, 0x42, 0x42)
	colorGrid   = rgb(0xe0, 0xe0, 0xe0)
)

type color struct{ r, g, b float64 }

func rgb(r, g, b int) color {
	return color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// frame is a chart area with linear scales mapping data space to pixels.
type frame struct {
	dc                     *gg.Context
	xmin, xmax, ymin, ymax float64
}

// newFrame creates a white canvas with a titled, ticked plot frame.
func newFrame(title, xlabel, ylabel string, xmin, xmax, ymin, ymax float64) *frame {
	// Guard against degenerate ranges so scales stay finite.
	if xmax <= xmin {
		xmax = xmin + 1
	}
	if ymax <= ymin {
		ymax = ymin + 1
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f := &frame{dc: dc, xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax}
	f.drawAxes(title, xlabel, ylabel)
	return f
}

// x maps a data x-coordinate to pixels.
func (f *frame) x(v float64) float64 {
	return marginLeft + (v-f.xmin)/(f.xmax-f.xmin)*(chartWidth-marginLeft-marginRight)
}

// y maps a data y-coordinate to pixels (origin bottom-left).
func (f *frame) y(v float64) float64 {
	return chartHeight - marginBottom - (v-f.ymin)/(f.ymax-f.ymin)*(chartHeight-marginTop-marginBottom)
}

func (f *frame) drawAxes(title, xlabel, ylabel string) {
	dc := f.dc

	for _, t := range ticks(f.xmin, f.xmax) {
		px := f.x(t)
		setColor(dc, colorGrid)
		dc.DrawLine(px, marginTop, px, chartHeight-marginBottom)
		dc.Stroke()
		setColor(dc, colorAxis)
		dc.DrawStringAnchored(formatTick(t), px, chartHeight-marginBottom+18, 0.5, 0.5)
	}
	for _, t := range ticks(f.ymin, f.ymax) {
		py := f.y(t)
		setColor(dc, colorGrid)
		dc.DrawLine(marginLeft, py, chartWidth-marginRight, py)
		dc.Stroke()
		setColor(dc, colorAxis)
		dc.DrawStringAnchored(formatTick(t), marginLeft-10, py, 1, 0.5)
	}

	setColor(dc, colorAxis)
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop, marginLeft, chartHeight-marginBottom)
	dc.DrawLine(marginLeft, chartHeight-marginBottom, chartWidth-marginRight, chartHeight-marginBottom)
	dc.Stroke()

	dc.DrawStringAnchored(title, chartWidth/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored(xlabel, chartWidth/2, chartHeight-marginBottom/3, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(-math.Pi/2, marginLeft/3, chartHeight/2)
	dc.DrawStringAnchored(ylabel, marginLeft/3, chartHeight/2, 0.5, 0.5)
	dc.Pop()
}

// point draws a filled marker at data coordinates.
func (f *frame) point(xv, yv float64, c color, radius float64) {
	setColor(f.dc, c)
	f.dc.DrawCircle(f.x(xv), f.y(yv), radius)
	f.dc.Fill()
}

// vline draws a dashed vertical reference line at a data x-coordinate.
func (f *frame) vline(xv float64, c color) {
	setColor(f.dc, c)
	f.dc.SetDash(6, 6)
	f.dc.DrawLine(f.x(xv), marginTop, f.x(xv), chartHeight-marginBottom)
	f.dc.Stroke()
	f.dc.SetDash()
}

// save writes the chart to a PNG file.
func (f *frame) save(path string) error {
	if err := f.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// ticks returns round tick positions covering [min, max].
func ticks(min, max float64) []float64 {
	span := max - min
	step := math.Pow(10, math.Floor(math.Log10(span)))
	switch {
	case span/step >= 5:
		// keep
	case span/step >= 2.5:
		step /= 2
	default:
		step /= 5
	}

	var out []float64
	for t := math.Ceil(min/step) * step; t <= max+step/1e6; t += step {
		out = append(out, t)
	}
	return out
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2g", v)
}

func setColor(dc *gg.Context, c color) {
	dc.SetRGB(c.r, c.g, c.b)
}
