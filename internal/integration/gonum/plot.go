package gonum

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aria-lang/biospeak-go/internal/sequence"
)

var plotFormats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true,
	".pdf": true, ".eps": true, ".tif": true, ".tiff": true,
}

// Plotter draws the running GC percentage of a sequence against its length.
type Plotter struct {
	Width, Height vg.Length
}

// NewPlotter returns an 8x6 inch plotter.
func NewPlotter() *Plotter {
	return &Plotter{Width: 8 * vg.Inch, Height: 6 * vg.Inch}
}

// Name implements integration.Backend.
func (*Plotter) Name() string { return "gonum plot" }

// CanPlot accepts the image formats gonum/plot can encode.
func (*Plotter) CanPlot(path string) bool {
	return plotFormats[strings.ToLower(filepath.Ext(path))]
}

// PlotSequenceMetrics implements integration.MetricsPlotter.
func (p *Plotter) PlotSequenceMetrics(name, seq, path string) error {
	seq = sequence.Clean(seq)

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("GC%% trend for %s", name)
	pl.X.Label.Text = "Length"
	pl.Y.Label.Text = "GC%"

	trend, err := plotter.NewLine(GCTrend(seq))
	if err != nil {
		return fmt.Errorf("build gc trend: %w", err)
	}
	trend.Color = color.RGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}
	pl.Add(trend)
	pl.Legend.Add("running GC%", trend)

	overall := sequence.GCContent(seq)
	flat := plotter.NewFunction(func(float64) float64 { return overall })
	flat.Color = color.RGBA{R: 0x34, G: 0xc7, B: 0x59, A: 0xff}
	flat.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	pl.Add(flat)
	pl.Legend.Add(fmt.Sprintf("overall %.2f%%", overall), flat)

	pl.Y.Min, pl.Y.Max = 0, 100
	pl.X.Min, pl.X.Max = 0, float64(max(len(seq), 1))

	if err := pl.Save(p.Width, p.Height, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// GCTrend returns (prefix length, GC% of prefix) points, starting at (0, 0).
func GCTrend(seq string) plotter.XYs {
	pts := make(plotter.XYs, len(seq)+1)
	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
		pts[i+1].X = float64(i + 1)
		pts[i+1].Y = float64(gc) / float64(i+1) * 100
	}
	return pts
}
