// Command glassview shows a liquid glass panel over a backdrop and lets the
// swirl be tuned live.
//
// Keys:
//
//	Up/Down     intensity
//	Left/Right  offset
//	=/-         swirl scale
//	1-4         toggle top-left, top-right, bottom-right, bottom-left
//	A           all corners
//	S           save the current map as PNG
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/config"
)

var (
	configFlag   = flag.String("config", "", "YAML preset file (defaults are embedded)")
	backdropFlag = flag.String("backdrop", "", "backdrop image (a generated pattern if empty)")
	widthFlag    = flag.Int("width", 640, "window width")
	heightFlag   = flag.Int("height", 420, "window height")
	marginFlag   = flag.Int("margin", 48, "space between the window edge and the panel")
	verboseFlag  = flag.Bool("v", false, "log synthesis details")
)

func main() {
	flag.Parse()

	if *verboseFlag {
		glass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load preset: %v", err)
	}
	// The window decides the surface size.
	cfg.Surface.MinSize = 0

	var backdrop image.Image
	if *backdropFlag != "" {
		backdrop, err = loadImage(*backdropFlag)
		if err != nil {
			log.Fatalf("load backdrop: %v", err)
		}
	} else {
		backdrop = stripes(*widthFlag, *heightFlag)
	}

	g := newGame(cfg, backdrop, *marginFlag)
	defer g.close()

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("glassview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// stripes generates a colorful diagonal stripe backdrop that makes the
// displacement easy to see.
func stripes(w, h int) image.Image {
	palette := []color.RGBA{
		{R: 0xf2, G: 0x5f, B: 0x5c, A: 0xff},
		{R: 0xff, G: 0xe0, B: 0x66, A: 0xff},
		{R: 0x24, G: 0x7b, B: 0xa0, A: 0xff},
		{R: 0x70, G: 0xc1, B: 0xb3, A: 0xff},
	}
	const band = 24

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, palette[((x+y)/band)%len(palette)])
		}
	}
	return img
}
