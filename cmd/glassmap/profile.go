package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gogpu/glass"
)

// Plot dimensions.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// writeProfileCSV writes one CSV record per sample of the profile row.
func writeProfileCSV(prof *glass.Profile, path string) error {
	return withOutput(path, nil, func(w io.Writer) error {
		if err := gocsv.Marshal(prof.Samples, w); err != nil {
			return fmt.Errorf("write profile CSV: %w", err)
		}
		return nil
	})
}

// plotProfile plots influence and displacement along the profile row. The
// image format follows the file extension.
func plotProfile(prof *glass.Profile, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Row %d profile", prof.Row)
	p.X.Label.Text = "x (device px)"
	p.Y.Label.Text = "value"
	p.Legend.Top = true

	infl := make(plotter.XYs, len(prof.Samples))
	dx := make(plotter.XYs, len(prof.Samples))
	dy := make(plotter.XYs, len(prof.Samples))
	// Influence is in [0, 1]; scale it to the displacement range so both
	// series share an axis.
	scale := max(prof.Summary.MaxDisplacement, 1)
	for i, s := range prof.Samples {
		x := float64(s.X)
		infl[i] = plotter.XY{X: x, Y: s.Influence * scale}
		dx[i] = plotter.XY{X: x, Y: s.DX}
		dy[i] = plotter.XY{X: x, Y: s.DY}
	}

	series := []struct {
		name string
		xys  plotter.XYs
		dash []vg.Length
	}{
		{fmt.Sprintf("influence x %.2f", scale), infl, nil},
		{"dx", dx, []vg.Length{vg.Points(4), vg.Points(2)}},
		{"dy", dy, []vg.Length{vg.Points(1), vg.Points(2)}},
	}
	for i, s := range series {
		line, err := plotter.NewLine(s.xys)
		if err != nil {
			return fmt.Errorf("plot %s: %w", s.name, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = s.dash
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Add(plotter.NewGrid())

	if filepath.Ext(path) == "" {
		path += ".png"
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
