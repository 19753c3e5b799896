// Package scroll turns scroll geometry into normalized progress values.
//
// All functions are pure reads of the geometry passed in. Nothing here
// touches a window; the frame loop owns that and hands over a Geometry.
package scroll

import "math"

// Geometry is the scroll state of the document for one frame.
type Geometry struct {
	// ScrollY is the vertical scroll offset of the viewport.
	ScrollY float64
	// ViewportHeight is the visible height.
	ViewportHeight float64
	// DocumentHeight is the full scrollable height.
	DocumentHeight float64
}

// Box is an element's vertical extent in document coordinates.
type Box struct {
	Top    float64
	Height float64
}

// Bottom returns the document offset of the element's bottom edge.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Document returns overall scroll completion in [0,1]. A document that
// cannot scroll reports 0.
func Document(g Geometry) float64 {
	length := g.DocumentHeight - g.ViewportHeight
	if length <= 0 {
		return 0
	}
	return clamp01(g.ScrollY / length)
}

// Transit returns the progress of b through the viewport in [0,1]. It
// starts when the element's top meets the viewport's bottom edge and
// finishes when the element's bottom meets the viewport's top edge.
func Transit(g Geometry, b Box) float64 {
	start := b.Top - g.ViewportHeight
	end := b.Bottom()
	if end <= start {
		if g.ScrollY < start {
			return 0
		}
		return 1
	}
	return clamp01((g.ScrollY - start) / (end - start))
}

// InView reports whether any part of b intersects the viewport.
func InView(g Geometry, b Box) bool {
	return b.Top < g.ScrollY+g.ViewportHeight && b.Bottom() > g.ScrollY
}

// Transform maps v from the input range onto the output range, clamping
// to the output bounds.
func Transform(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	t := clamp01((v - inMin) / (inMax - inMin))
	return outMin + t*(outMax-outMin)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}
