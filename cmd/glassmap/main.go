// Command glassmap synthesizes a liquid glass displacement map.
//
// Parameters come from a YAML preset (see config/defaults.yaml) and can be
// overridden with flags:
//
//	glassmap -width 320 -height 180 -intensity 6 -o map.png
//	glassmap -config panel.yaml -format svg -o filter.svg
//	glassmap -row 10 -csv row.csv -plot row.png
//	glassmap -backdrop photo.jpg -preview glass.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// cliFlags holds the parsed command line.
type cliFlags struct {
	config     string
	saveConfig string

	width, height int
	density       float64
	minSize       int
	borderRadius  float64
	thickness     float64
	intensity     float64
	scale         float64
	swirlRadius   float64
	offset        float64
	region        string

	output string
	format string
	svgID  string

	row     int
	csvPath string
	plot    string

	backdrop string
	preview  string

	workers int
	clip    bool
	verbose bool
	quiet   bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, map[string]bool, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("glassmap", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.config, "config", "", "YAML preset file (defaults are embedded)")
	fs.StringVar(&f.saveConfig, "save-config", "", "write the effective preset to this file")

	fs.IntVar(&f.width, "width", 0, "surface width in CSS pixels")
	fs.IntVar(&f.height, "height", 0, "surface height in CSS pixels")
	fs.Float64Var(&f.density, "density", 0, "device pixels per CSS pixel")
	fs.IntVar(&f.minSize, "min-size", 0, "minimum surface side in CSS pixels (0 disables)")
	fs.Float64Var(&f.borderRadius, "border-radius", 0, "corner radius in CSS pixels")
	fs.Float64Var(&f.thickness, "thickness", 0, "edge band thickness in device pixels")
	fs.Float64Var(&f.intensity, "intensity", 0, "swirl intensity")
	fs.Float64Var(&f.scale, "scale", 0, "swirl scale (>= 0.1)")
	fs.Float64Var(&f.swirlRadius, "swirl-radius", 0, "swirl radius (>= 0.1)")
	fs.Float64Var(&f.offset, "offset", 0, "inward offset of the swirl band, 0..1")
	fs.StringVar(&f.region, "region", "", `corners receiving the swirl, e.g. "all" or "top-left,bottom-right"`)

	fs.StringVar(&f.output, "o", "map.png", "output file, - for stdout")
	fs.StringVar(&f.format, "format", "png", "output format: png, datauri or svg")
	fs.StringVar(&f.svgID, "svg-id", "liquid-glass", "filter id for -format svg")

	fs.IntVar(&f.row, "row", -1, "profile this row (-1: centre row) for -csv and -plot")
	fs.StringVar(&f.csvPath, "csv", "", "write the row profile as CSV")
	fs.StringVar(&f.plot, "plot", "", "plot the row profile (png, svg or pdf by extension)")

	fs.StringVar(&f.backdrop, "backdrop", "", "backdrop image for -preview")
	fs.StringVar(&f.preview, "preview", "", "write a composited glass preview PNG")

	fs.IntVar(&f.workers, "workers", 0, "synthesis workers (0: one per CPU)")
	fs.BoolVar(&f.clip, "clip", false, "clip the swirl to the rounded rectangle")
	fs.BoolVar(&f.verbose, "v", false, "log synthesis details")
	fs.BoolVar(&f.quiet, "q", false, "do not print the summary table")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// applyOverrides copies explicitly set flags into the preset.
func applyOverrides(cfg *config.Config, f *cliFlags, set map[string]bool) error {
	if set["width"] {
		cfg.Surface.Width = f.width
	}
	if set["height"] {
		cfg.Surface.Height = f.height
	}
	if set["density"] {
		cfg.Surface.PixelDensity = f.density
	}
	if set["min-size"] {
		cfg.Surface.MinSize = f.minSize
	}
	if set["border-radius"] {
		cfg.Shape.BorderRadius = f.borderRadius
	}
	if set["thickness"] {
		cfg.Shape.EdgeThickness = f.thickness
	}
	if set["intensity"] {
		cfg.Swirl.Intensity = f.intensity
	}
	if set["scale"] {
		cfg.Swirl.Scale = f.scale
	}
	if set["swirl-radius"] {
		cfg.Swirl.Radius = f.swirlRadius
	}
	if set["offset"] {
		cfg.Swirl.Offset = f.offset
	}
	if set["region"] {
		r, err := glass.ParseRegion(f.region)
		if err != nil {
			return err
		}
		cfg.SetRegion(r)
	}
	return cfg.Validate()
}

func run(args []string, stdout io.Writer) error {
	f, set, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if f.verbose {
		glass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, f, set); err != nil {
		return err
	}
	if f.saveConfig != "" {
		if err := cfg.WriteYAML(f.saveConfig); err != nil {
			return err
		}
	}

	req, err := cfg.Request()
	if err != nil {
		return err
	}

	opts := []glass.Option{glass.WithShapeClip(f.clip)}
	if f.workers > 0 {
		opts = append(opts, glass.WithWorkers(f.workers))
	}
	synth := glass.NewSynthesizer(opts...)
	defer synth.Close()

	row := f.row
	if row < 0 {
		row = req.Size.Height / 2
	}
	prof, err := synth.Profile(req, row)
	if err != nil {
		return err
	}
	m := prof.Map

	if err := writeMap(m, f.format, f.output, f.svgID, stdout); err != nil {
		return err
	}
	if f.csvPath != "" {
		if err := writeProfileCSV(prof, f.csvPath); err != nil {
			return err
		}
	}
	if f.plot != "" {
		if err := plotProfile(prof, f.plot); err != nil {
			return err
		}
	}
	if f.preview != "" {
		if err := writePreview(cfg, m, f.backdrop, f.preview); err != nil {
			return err
		}
	}

	if !f.quiet && f.output != "-" {
		printSummary(req, prof)
	}
	return nil
}

// printSummary renders the request and profile statistics as a table.
func printSummary(req glass.Request, prof *glass.Profile) {
	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
	data := [][]string{
		{"Property", "Value"},
		{"Size (device px)", fmt.Sprintf("%dx%d", req.Size.Width, req.Size.Height)},
		{"Pixel density", ff(req.PixelDensity)},
		{"Threshold (px)", ff(glass.AdaptiveThreshold(req.Size, req.Shape))},
		{"Region", req.Region.String()},
		{"Filter scale", ff(prof.Map.FilterScale)},
		{fmt.Sprintf("Row %d mean influence", prof.Row), ff(prof.Summary.MeanInfluence)},
		{fmt.Sprintf("Row %d max displacement (px)", prof.Row), ff(prof.Summary.MaxDisplacement)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
