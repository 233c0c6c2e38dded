package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotDistribution renders a sorted sample set (max drawdowns or terminal
// equities) as a cumulative curve: x is the sample rank, y the statistic.
func PlotDistribution(samples []float64, title, yLabel, path string) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	pts := make(plotter.XYs, len(samples))
	for i, v := range samples {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Curve Rank"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// PlotEquityCurve renders one simulated equity path, period by period.
func PlotEquityCurve(path []float64, title, out string) error {
	if len(path) == 0 {
		return fmt.Errorf("no equity path to plot")
	}

	pts := make(plotter.XYs, len(path))
	for i, v := range path {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Period"
	p.Y.Label.Text = "Equity"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.Color = color.RGBA{R: 200, G: 60, B: 30, A: 255}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
