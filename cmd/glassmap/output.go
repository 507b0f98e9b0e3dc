package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/config"
	"github.com/gogpu/glass/preview"
)

// writeMap writes m to path in the given format. A path of "-" writes to stdout.
func writeMap(m *glass.DisplacementMap, format, path, svgID string, stdout io.Writer) error {
	return withOutput(path, stdout, func(w io.Writer) error {
		switch format {
		case "png":
			return m.EncodePNG(w)
		case "datauri":
			uri, err := m.DataURI()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, uri)
			return err
		case "svg":
			filter, err := m.SVGFilter(svgID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="0" height="0"><defs>%s</defs></svg>`+"\n", filter)
			return err
		default:
			return fmt.Errorf("unknown format %q (want png, datauri or svg)", format)
		}
	})
}

// writePreview composites m over the backdrop image and saves a PNG.
func writePreview(cfg *config.Config, m *glass.DisplacementMap, backdropPath, path string) error {
	if backdropPath == "" {
		return errors.New("-preview requires -backdrop")
	}
	backdrop, err := loadImage(backdropPath)
	if err != nil {
		return err
	}

	img, err := preview.Render(backdrop, m, cfg.PreviewOptions())
	if err != nil {
		return err
	}
	return withOutput(path, nil, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open backdrop: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode backdrop %s: %w", path, err)
	}
	return img, nil
}

// withOutput opens path (or uses stdout for "-"), runs write and closes the file.
func withOutput(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if path == "-" && stdout != nil {
		return write(stdout)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}
