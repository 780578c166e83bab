// Package chart renders a dataset together with a fitted line.
package chart

import (
	"image/color"

	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/linefit/dataset"
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

type options struct {
	title  string
	width  vg.Length
	height vg.Length
}

// Option configures SaveFit.
type Option func(*options)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSize sets the image size.
func WithSize(width, height vg.Length) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// SaveFit draws the observations of d as a scatter plot and the line
// y = slope*x + intercept on top of it, then writes the image to path.
// The image format follows the file extension (.png, .svg, .pdf, ...).
func SaveFit(path string, d *dataset.Dataset, slope, intercept float64, opts ...Option) error {
	const op = "chart.SaveFit"

	if err := d.Validate(); err != nil {
		return errors.Wrap(err, op)
	}

	o := &options{
		title:  "Linear fit",
		width:  6 * vg.Inch,
		height: 4 * vg.Inch,
	}
	for _, opt := range opts {
		opt(o)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	points := plotter.XYs(lo.Map(d.X, func(x float64, i int) plotter.XY {
		return plotter.XY{X: x, Y: d.Y[i]}
	}))
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return errors.Wrap(err, op)
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)

	line := plotter.NewFunction(func(x float64) float64 {
		return slope*x + intercept
	})
	line.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	line.Width = vg.Points(1.5)

	p.Add(scatter, line)
	p.Legend.Add("observations", scatter)
	p.Legend.Add("fit", line)
	p.Legend.Top = true
	p.Legend.Left = true

	// 関数の描画範囲はデータの範囲に合わせる
	p.X.Min = lo.Min(d.X)
	p.X.Max = lo.Max(d.X)
	if p.X.Min == p.X.Max {
		p.X.Min--
		p.X.Max++
	}

	if err := p.Save(o.width, o.height, path); err != nil {
		return errors.Wrapf(err, "%s: save %s", op, path)
	}
	return nil
}
