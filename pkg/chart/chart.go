// Package chart renders stat series as line charts.
package chart

import (
	"errors"
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/schedtrace/tracesplit/pkg/statfile"
)

// Default chart settings.
const (
	DefaultTitle  = "Scheduling level over time"
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrNoSeries is returned when there is nothing to plot.
var ErrNoSeries = errors.New("no series to plot")

// Options controls chart rendering.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

func (o *Options) applyDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
}

// XYs converts stat points to plotter coordinates.
func XYs(points []statfile.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.Timestep)
		xys[i].Y = float64(p.Level)
	}
	return xys
}

// New builds a chart with one line per series.
func New(series []*statfile.Series, opts Options) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	opts.applyDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "timestep"
	p.Y.Label.Text = "level"
	p.Add(plotter.NewGrid())

	// plotutil takes alternating name, data arguments.
	var lines []interface{}
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		lines = append(lines, s.Name, XYs(s.Points))
	}
	if len(lines) == 0 {
		return nil, ErrNoSeries
	}

	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, fmt.Errorf("adding series: %w", err)
	}

	return p, nil
}

// Save renders the series to path. The image format follows the file
// extension (png, svg, pdf, ...); a path without extension gets .png.
func Save(series []*statfile.Series, path string, opts Options) (string, error) {
	p, err := New(series, opts)
	if err != nil {
		return "", err
	}
	opts.applyDefaults()

	if filepath.Ext(path) == "" {
		path += ".png"
	}

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}

	return path, nil
}
