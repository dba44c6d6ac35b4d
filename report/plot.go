package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyHistory is returned when there is nothing to plot.
var ErrEmptyHistory = errors.New("report: empty history")

// PlotOptions controls the convergence chart.
type PlotOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// Optimum, when > 0, is drawn as a dashed reference line.
	Optimum float64
}

// DefaultPlotOptions returns a 6×4 inch chart titled "Convergence".
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Title:  "Convergence",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// PlotConvergence draws best distance against iteration and writes it to
// path, creating the parent directory if needed. The area under the curve
// is shaded.
func PlotConvergence(history []float64, path string, opts PlotOptions) error {
	if len(history) == 0 {
		return ErrEmptyHistory
	}
	def := DefaultPlotOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Best distance"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(history))
	for i, v := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	// Closed polygon: the curve followed by the baseline back to the start.
	area := make(plotter.XYs, 0, len(pts)+2)
	area = append(area, pts...)
	area = append(area,
		plotter.XY{X: pts[len(pts)-1].X, Y: 0},
		plotter.XY{X: pts[0].X, Y: 0},
	)
	shade, err := plotter.NewPolygon(area)
	if err != nil {
		return fmt.Errorf("report: shade: %w", err)
	}
	shade.Color = color.RGBA{R: 66, G: 133, B: 244, A: 48}
	shade.LineStyle.Width = 0

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 66, G: 133, B: 244, A: 255}

	p.Add(shade, line)
	p.Legend.Add("best", line)

	if opts.Optimum > 0 {
		ref, err := plotter.NewLine(plotter.XYs{
			{X: pts[0].X, Y: opts.Optimum},
			{X: pts[len(pts)-1].X, Y: opts.Optimum},
		})
		if err != nil {
			return fmt.Errorf("report: optimum: %w", err)
		}
		ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		ref.LineStyle.Color = color.RGBA{R: 219, G: 68, B: 55, A: 255}
		p.Add(ref)
		p.Legend.Add("optimum", ref)
	}
	p.Legend.Top = true
	p.Y.Min = 0

	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return p.Save(opts.Width, opts.Height, path)
}
