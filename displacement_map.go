package glass

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DisplacementMap is an encoded displacement field: Width×Height RGBA pixels
// in row-major order where R encodes the horizontal and G the vertical
// displacement (128 means none), B is 0 and A is 255.
//
// DisplacementMap implements image.Image.
type DisplacementMap struct {
	Width  int
	Height int

	// Pix holds Width*Height*4 bytes.
	Pix []byte

	// FilterScale is the scale attribute, in CSS pixels, the consuming
	// displacement filter must use. It is at least 1.
	FilterScale float64
}

// NewDisplacementMap allocates an empty map for SynthesizeInto.
// It returns nil for an empty size.
func NewDisplacementMap(size Size) *DisplacementMap {
	if size.Empty() {
		return nil
	}
	return &DisplacementMap{
		Width:  size.Width,
		Height: size.Height,
		Pix:    make([]byte, size.Pixels()*bytesPerPixel),
	}
}

// Size returns the map dimensions.
func (m *DisplacementMap) Size() Size {
	return Size{Width: m.Width, Height: m.Height}
}

// Channels returns the encoded R and G bytes of pixel (x, y).
// Out-of-range pixels report the neutral value 128.
func (m *DisplacementMap) Channels(x, y int) (r, g uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 128, 128
	}
	i := (y*m.Width + x) * bytesPerPixel
	return m.Pix[i], m.Pix[i+1]
}

// FilterOffset returns the offset, in CSS pixels, that a displacement filter
// using FilterScale applies at pixel (x, y): scale * (C/255 - 0.5) per axis.
func (m *DisplacementMap) FilterOffset(x, y int) (dx, dy float64) {
	r, g := m.Channels(x, y)
	return m.FilterScale * (float64(r)/255 - 0.5), m.FilterScale * (float64(g)/255 - 0.5)
}

// At implements the image.Image interface.
func (m *DisplacementMap) At(x, y int) color.Color {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return color.RGBA{}
	}
	i := (y*m.Width + x) * bytesPerPixel
	return color.RGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]}
}

// Bounds implements the image.Image interface.
func (m *DisplacementMap) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// ColorModel implements the image.Image interface.
func (m *DisplacementMap) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage copies the map into a new image.RGBA.
func (m *DisplacementMap) ToImage() *image.RGBA {
	img := image.NewRGBA(m.Bounds())
	copy(img.Pix, m.Pix)
	return img
}

// EncodePNG writes the map as a PNG image.
func (m *DisplacementMap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, m.ToImage()); err != nil {
		return fmt.Errorf("glass: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the map to a PNG file.
func (m *DisplacementMap) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("glass: create file: %w", err)
	}
	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// DataURI returns the map as a base64 PNG data URI, ready for an feImage
// href or a CSS url().
func (m *DisplacementMap) DataURI() (string, error) {
	var buf bytes.Buffer
	if err := m.EncodePNG(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// FilterAttributes are the feDisplacementMap attributes matching a map.
type FilterAttributes struct {
	Scale            float64
	XChannelSelector string
	YChannelSelector string
}

// FilterAttributes returns the displacement filter attributes for m.
func (m *DisplacementMap) FilterAttributes() FilterAttributes {
	return FilterAttributes{
		Scale:            m.FilterScale,
		XChannelSelector: "R",
		YChannelSelector: "G",
	}
}

// SVGFilter renders an SVG <filter> element with the given id that
// displaces SourceGraphic by the map. Reference it from CSS with
// backdrop-filter: url(#id).
func (m *DisplacementMap) SVGFilter(id string) (string, error) {
	uri, err := m.DataURI()
	if err != nil {
		return "", err
	}
	attrs := m.FilterAttributes()

	var b strings.Builder
	fmt.Fprintf(&b, `<filter id="%s" x="0" y="0" width="100%%" height="100%%" color-interpolation-filters="sRGB">`,
		html.EscapeString(id))
	fmt.Fprintf(&b, `<feImage href="%s" x="0" y="0" width="100%%" height="100%%" preserveAspectRatio="none" result="liquid-map"/>`, uri)
	fmt.Fprintf(&b, `<feDisplacementMap in="SourceGraphic" in2="liquid-map" scale="%s" xChannelSelector="%s" yChannelSelector="%s"/>`,
		strconv.FormatFloat(attrs.Scale, 'f', -1, 64), attrs.XChannelSelector, attrs.YChannelSelector)
	b.WriteString(`</filter>`)
	return b.String(), nil
}
