// Package filter provides the backdrop filters that turn a displacement map
// into a visible liquid glass surface:
//   - Gaussian blur (separable, frosted glass)
//   - Color matrix transformations (saturation boost, tint)
//   - Displacement (CPU equivalent of SVG feDisplacementMap)
//
// All filters read and write premultiplied *image.RGBA images of equal
// bounds and reuse scratch buffers across calls.
package filter
