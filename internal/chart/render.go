// internal/chart/render.go
// Package chart turns grouped benchmark samples into bar charts, saved with
// gonum/plot or shown in the terminal.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Bars is a finalized chart: one label and one value per bar, in the order
// the bars are drawn. Bar i sits at x = i+1.
type Bars struct {
	Labels []string
	Values []float64
}

// Len returns the number of bars.
func (b Bars) Len() int { return len(b.Values) }

// Style holds the text and geometry of a chart.
type Style struct {
	Title  string
	XLabel string
	YLabel string
	Legend string
	// BarWidth is in points.
	BarWidth float64
	// Width and Height of the saved image, in inches.
	Width  float64
	Height float64
}

func (s Style) size() (vg.Length, vg.Length) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = 6
	}
	if h <= 0 {
		h = 4
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

// newPlot lays the bars out at x = 1..N with each label under its own bar.
func newPlot(bars Bars, style Style) (*plot.Plot, error) {
	if bars.Len() == 0 {
		return nil, errors.New("no bars to draw")
	}
	if len(bars.Labels) != bars.Len() {
		return nil, fmt.Errorf("%d labels for %d bars", len(bars.Labels), bars.Len())
	}

	p := plot.New()
	p.Title.Text = style.Title
	p.X.Label.Text = style.XLabel
	p.Y.Label.Text = style.YLabel

	width := style.BarWidth
	if width <= 0 {
		width = 20
	}
	bc, err := plotter.NewBarChart(plotter.Values(bars.Values), vg.Points(width))
	if err != nil {
		return nil, err
	}
	bc.XMin = 1
	bc.Color = plotutil.Color(0)
	bc.LineStyle.Color = color.Black
	p.Add(bc)
	if style.Legend != "" {
		p.Legend.Add(style.Legend, bc)
	}

	ticks := make([]plot.Tick, bars.Len())
	for i, label := range bars.Labels {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = 0.5
	p.X.Max = float64(bars.Len()) + 0.5

	return p, nil
}

// Render draws bars and saves the chart to path. The image format follows
// the file extension (png, svg, pdf, ...).
func Render(bars Bars, style Style, path string) error {
	p, err := newPlot(bars, style)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	w, h := style.size()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// Write draws bars and writes the chart to out in the given format.
func Write(out io.Writer, bars Bars, style Style, format string) error {
	p, err := newPlot(bars, style)
	if err != nil {
		return err
	}
	w, h := style.size()
	wt, err := p.WriterTo(w, h, strings.ToLower(format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(out)
	return err
}
