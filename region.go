package glass

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCorner is returned by ParseCorner and ParseRegion for names that
// do not denote a corner.
var ErrUnknownCorner = errors.New("glass: unknown corner")

// Corner identifies one quadrant of a surface.
type Corner uint8

// Corners in clockwise order starting at the top-left.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

var cornerNames = [...]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomRight: "bottom-right",
	BottomLeft:  "bottom-left",
}

// String returns the kebab-case corner name.
func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return fmt.Sprintf("Corner(%d)", uint8(c))
}

// ParseCorner parses a corner name. Both kebab-case ("top-left") and
// camelCase ("topLeft") spellings are accepted.
func ParseCorner(s string) (Corner, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	switch key {
	case "topleft":
		return TopLeft, nil
	case "topright":
		return TopRight, nil
	case "bottomright":
		return BottomRight, nil
	case "bottomleft":
		return BottomLeft, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCorner, s)
}

// Region selects the quadrants that receive the swirl. The zero value
// selects every quadrant.
type Region struct {
	// mask holds one bit per Corner; zero means all corners.
	mask uint8
}

const allCornersMask uint8 = 0b1111

// AllCorners returns the region covering the whole surface.
func AllCorners() Region {
	return Region{}
}

// CornerSet returns the region made of the given corners.
// An empty list, or all four corners, yields AllCorners so that equal
// selections compare equal. Unknown corner values are ignored.
func CornerSet(corners ...Corner) Region {
	var r Region
	for _, c := range corners {
		if c <= BottomLeft {
			r.mask |= 1 << c
		}
	}
	if r.mask == allCornersMask {
		r.mask = 0
	}
	return r
}

// ParseRegion parses "all", a single corner name, or a comma or space
// separated list of corner names. An empty string selects all corners.
func ParseRegion(s string) (Region, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var corners []Corner
	for _, f := range fields {
		if strings.EqualFold(f, "all") {
			return AllCorners(), nil
		}
		c, err := ParseCorner(f)
		if err != nil {
			return Region{}, err
		}
		corners = append(corners, c)
	}
	return CornerSet(corners...), nil
}

// IsAll reports whether every quadrant is selected.
func (r Region) IsAll() bool {
	return r.mask == 0
}

// Has reports whether corner c is selected.
func (r Region) Has(c Corner) bool {
	return r.IsAll() || r.mask&(1<<c) != 0
}

// Corners returns the selected corners in clockwise order.
func (r Region) Corners() []Corner {
	out := make([]Corner, 0, 4)
	for c := TopLeft; c <= BottomLeft; c++ {
		if r.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String returns "all" or a comma separated corner list.
func (r Region) String() string {
	if r.IsAll() {
		return "all"
	}
	names := make([]string, 0, 4)
	for _, c := range r.Corners() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// contains reports whether the pixel centre (px, py) lies in a selected
// quadrant. Quadrants split at the exact centre; the centre lines belong to
// the right and bottom halves.
func (r Region) contains(px, py float64, size Size) bool {
	if r.IsAll() {
		return true
	}
	left := px < float64(size.Width)/2
	top := py < float64(size.Height)/2
	var c Corner
	switch {
	case top && left:
		c = TopLeft
	case top:
		c = TopRight
	case left:
		c = BottomLeft
	default:
		c = BottomRight
	}
	return r.mask&(1<<c) != 0
}
