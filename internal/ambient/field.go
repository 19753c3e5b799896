// Package ambient generates the decorative particle field drawn behind the
// page.
//
// A Field is drawn once per mount from the viewport size at that moment and
// never changes afterwards; a later resize leaves existing particles where
// they are.
package ambient

import (
	"math/rand/v2"

	"github.com/spandanakunder/portfolio/internal/viewport"
)

// Count is the number of particles in every field.
const Count = 50

// Generation bounds.
const (
	MinRadius  = 5.0
	MaxRadius  = 15.0
	MinOpacity = 0.1
	MaxOpacity = 0.4
	MinPeriod  = 10.0
	MaxPeriod  = 30.0

	// Waypoints is the number of stops on each axis of a motion path.
	Waypoints = 3
)

// Point is a position in CSS pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Particle is one decorative shape. All fields are fixed at generation.
type Particle struct {
	ID       int     `json:"id"`
	Position Point   `json:"position"`
	Radius   float64 `json:"radius"`
	// Opacity is the alpha of the particle's fill colour.
	Opacity float64 `json:"opacity"`
	// PathX and PathY are drawn independently per axis.
	PathX [Waypoints]float64 `json:"path_x"`
	PathY [Waypoints]float64 `json:"path_y"`
	// Period is the loop length in seconds.
	Period float64 `json:"period"`
}

// Path returns the motion path as points.
func (p Particle) Path() [Waypoints]Point {
	var pts [Waypoints]Point
	for i := range pts {
		pts[i] = Point{X: p.PathX[i], Y: p.PathY[i]}
	}
	return pts
}

// Field is a generated set of particles and the bounds they were drawn in.
type Field struct {
	Bounds    viewport.Size `json:"bounds"`
	Particles []Particle    `json:"particles"`
}

// Generate draws Count particles inside size using rng. Negative sizes are
// treated as zero.
func Generate(size viewport.Size, rng *rand.Rand) Field {
	w, h := max(size.Width, 0), max(size.Height, 0)
	f := Field{
		Bounds:    viewport.Size{Width: w, Height: h},
		Particles: make([]Particle, Count),
	}
	for i := range f.Particles {
		p := Particle{ID: i}
		p.Radius = between(rng, MinRadius, MaxRadius)
		p.Opacity = between(rng, MinOpacity, MaxOpacity)
		p.Position = Point{X: rng.Float64() * w, Y: rng.Float64() * h}
		for j := range p.PathX {
			p.PathX[j] = rng.Float64() * w
		}
		for j := range p.PathY {
			p.PathY[j] = rng.Float64() * h
		}
		p.Period = between(rng, MinPeriod, MaxPeriod)
		f.Particles[i] = p
	}
	return f
}

// Seeded returns a deterministic source for Generate.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
