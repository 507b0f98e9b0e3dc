package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/config"
	"github.com/gogpu/glass/preview"
)

// Game draws the backdrop and the glass panel and turns input into
// synthesis requests. Requests go through a glass.Scheduler flushed once
// per Update, so a window drag resizes the map at most once per tick.
type Game struct {
	cfg      *config.Config
	synth    *glass.Synthesizer
	sched    *glass.Scheduler
	backdrop image.Image
	margin   int

	screenW, screenH int
	background       *ebiten.Image
	panel            *ebiten.Image
	panelCrop        image.Image
	density          float64

	lastSynth time.Duration
	status    string
}

func newGame(cfg *config.Config, backdrop image.Image, margin int) *Game {
	g := &Game{
		cfg:      cfg,
		synth:    glass.NewSynthesizer(),
		backdrop: backdrop,
		margin:   margin,
		density:  1,
	}
	g.sched = glass.NewScheduler(g.synth, g.apply)
	return g
}

func (g *Game) close() {
	g.synth.Close()
}

// apply runs inside Scheduler.Flush with each new map.
func (g *Game) apply(m *glass.DisplacementMap, req glass.Request) {
	if g.panelCrop == nil {
		return
	}
	img, err := preview.Render(g.panelCrop, m, g.cfg.PreviewOptions())
	if err != nil {
		log.Printf("render panel: %v", err)
		return
	}
	if g.panel != nil {
		g.panel.Deallocate()
	}
	g.panel = ebiten.NewImageFromImage(img)
	g.status = fmt.Sprintf("%dx%d  scale %.2f  %s", req.Size.Width, req.Size.Height, m.FilterScale, req.Region)
}

// schedule queues a request for the current preset.
func (g *Game) schedule() {
	req, err := g.cfg.Request()
	if err != nil {
		g.status = err.Error()
		return
	}
	g.sched.Schedule(req)
}

// Update handles input and flushes at most one synthesis per tick.
func (g *Game) Update() error {
	changed := g.handleKeys()
	if changed {
		g.schedule()
	}

	start := time.Now()
	if g.sched.Flush() {
		g.lastSynth = time.Since(start)
	}
	return nil
}

func (g *Game) handleKeys() bool {
	s := &g.cfg.Swirl
	changed := false

	step := func(key ebiten.Key, v *float64, delta, lo, hi float64) {
		if inpututil.IsKeyJustPressed(key) || inpututil.KeyPressDuration(key) > 20 {
			*v = min(max(*v+delta, lo), hi)
			changed = true
		}
	}
	step(ebiten.KeyArrowUp, &s.Intensity, 0.5, 0, 40)
	step(ebiten.KeyArrowDown, &s.Intensity, -0.5, 0, 40)
	step(ebiten.KeyArrowRight, &s.Offset, 0.02, 0, 1)
	step(ebiten.KeyArrowLeft, &s.Offset, -0.02, 0, 1)
	step(ebiten.KeyEqual, &s.Scale, 0.1, 0.1, 5)
	step(ebiten.KeyMinus, &s.Scale, -0.1, 0.1, 5)

	corners := map[ebiten.Key]glass.Corner{
		ebiten.Key1: glass.TopLeft,
		ebiten.Key2: glass.TopRight,
		ebiten.Key3: glass.BottomRight,
		ebiten.Key4: glass.BottomLeft,
	}
	for key, c := range corners {
		if inpututil.IsKeyJustPressed(key) {
			g.toggleCorner(c)
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.cfg.SetRegion(glass.AllCorners())
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	return changed
}

// toggleCorner flips c in the region. Deselecting the last corner selects
// all of them again.
func (g *Game) toggleCorner(c glass.Corner) {
	req, err := g.cfg.Request()
	if err != nil {
		return
	}
	next := make([]glass.Corner, 0, 4)
	for _, other := range req.Region.Corners() {
		if other != c {
			next = append(next, other)
		}
	}
	if !req.Region.Has(c) {
		next = append(next, c)
	}
	g.cfg.SetRegion(glass.CornerSet(next...))
}

func (g *Game) save() {
	m := g.sched.Last()
	if m == nil {
		return
	}
	name := fmt.Sprintf("glass-%dx%d.png", m.Width, m.Height)
	if err := m.SavePNG(name); err != nil {
		g.status = err.Error()
		return
	}
	g.status = "saved " + name
}

// Draw draws the backdrop, the glass panel and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.background != nil {
		screen.DrawImage(g.background, nil)
	}
	if g.panel != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1/g.density, 1/g.density)
		op.GeoM.Translate(float64(g.margin), float64(g.margin))
		screen.DrawImage(g.panel, op)
	}

	s := g.cfg.Swirl
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"intensity %.1f  offset %.2f  scale %.1f  synth %v\n%s",
		s.Intensity, s.Offset, s.Scale, g.lastSynth.Round(time.Microsecond), g.status))
}

// Layout resizes the panel to the window and schedules a new map.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == g.screenW && outsideHeight == g.screenH {
		return outsideWidth, outsideHeight
	}
	g.screenW, g.screenH = outsideWidth, outsideHeight

	if m := ebiten.Monitor(); m != nil {
		g.density = m.DeviceScaleFactor()
	}
	g.cfg.Surface.PixelDensity = g.density
	g.cfg.Surface.Width = max(outsideWidth-2*g.margin, 1)
	g.cfg.Surface.Height = max(outsideHeight-2*g.margin, 1)

	g.resizeBackdrop()
	g.schedule()
	return outsideWidth, outsideHeight
}

// resizeBackdrop stretches the backdrop over the window and keeps the part
// behind the panel for the preview compositor.
func (g *Game) resizeBackdrop() {
	full := image.NewRGBA(image.Rect(0, 0, g.screenW, g.screenH))
	preview.Scale(full, g.backdrop)

	if g.background != nil {
		g.background.Deallocate()
	}
	g.background = ebiten.NewImageFromImage(full)

	r := image.Rect(g.margin, g.margin, g.screenW-g.margin, g.screenH-g.margin)
	g.panelCrop = full.SubImage(r)
}
