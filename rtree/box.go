package rtree

import (
	"math"
	"strconv"
	"strings"
)

// A Box is an axis-aligned rectangle. A valid Box satisfies
// XMin <= XMax and YMin <= YMax; degenerate boxes with zero width or
// height, representing line segments or points, are valid.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Null is the empty box. It is the identity value for Expand: the
// union of Null and any box b is b.
var Null = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// Width returns the horizontal extent of the box.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// valid reports whether the box satisfies the min <= max invariant on
// both axes.
func (b *Box) valid() bool {
	return b.XMin <= b.XMax && b.YMin <= b.YMax
}

// Expand grows b to the minimum bounding box of b and c.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// Intersects reports whether b and o overlap on both axes. The
// comparison is closed-interval: boxes that merely touch along an edge
// or at a corner do intersect.
func (b *Box) Intersects(o *Box) bool {
	if b.XMax < o.XMin {
		return false
	}
	if b.YMax < o.YMin {
		return false
	}
	if b.XMin > o.XMax {
		return false
	}
	if b.YMin > o.YMax {
		return false
	}
	return true
}

// String returns a compact text rendering of the box.
func (b Box) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(formatCoord(b.XMin))
	sb.WriteByte(',')
	sb.WriteString(formatCoord(b.YMin))
	sb.WriteByte(',')
	sb.WriteString(formatCoord(b.XMax))
	sb.WriteByte(',')
	sb.WriteString(formatCoord(b.YMax))
	sb.WriteByte(']')
	return sb.String()
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}
