// Package glass synthesizes displacement maps for "liquid glass" surfaces.
//
// # Overview
//
// A liquid glass surface is a translucent, blurred region whose edges appear
// to bend and swirl like liquid. The effect is produced by an image-based
// displacement filter (feDisplacementMap in SVG terms) fed with a per-pixel
// displacement map. This package computes that map.
//
// # Quick Start
//
//	import "github.com/gogpu/glass"
//
//	m, err := glass.Synthesize(glass.Request{
//	    Size:         glass.Size{Width: 300, Height: 200},
//	    PixelDensity: 1,
//	    Shape:        glass.DefaultShape(),
//	    Swirl:        glass.DefaultSwirl(),
//	    Region:       glass.AllCorners(),
//	})
//	if err != nil {
//	    return err
//	}
//	uri, _ := m.DataURI()
//	// feImage href=uri, feDisplacementMap scale=m.FilterScale
//
// # Pipeline
//
// Every call runs three stages in order:
//   - Influence: how strongly the swirl applies at each pixel, highest
//     along the surface edges and limited to the selected corners.
//   - Vortex: a polar rotation weighted by influence and radius that yields
//     a raw (dx, dy) displacement per pixel.
//   - Encoding: the field is normalized by its largest displacement and
//     written as RGBA pixels (R=dx, G=dy, B=0, A=255) together with the
//     filter scale the consumer must use.
//
// Calls are pure and deterministic. A [Synthesizer] may split rows across
// worker goroutines and reuse intermediate buffers keyed by surface size,
// but the output never depends on either.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Sizes are in device pixels; PixelDensity converts back to CSS pixels
//
// # Host Integration
//
// Hosts re-run synthesis whenever size, shape, swirl or region change.
// [Scheduler] coalesces bursts of such changes to at most one synthesis per
// frame and skips requests that match the map already on screen.
package glass

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
