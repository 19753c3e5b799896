package ambient

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse keyframes applied over every loop, in step with the motion path.
var (
	PulseScale   = [Waypoints]float64{1, 1.5, 1}
	PulseOpacity = [Waypoints]float64{0.3, 0.6, 0.3}
)

// State is a particle's animated appearance at one instant.
type State struct {
	ID       int
	Position Point
	Radius   float64
	Scale    float64
	Opacity  float64
}

const segments = Waypoints - 1

// channel is one animated property split into per-segment tweens.
type channel [segments]*gween.Tween

func newChannel(frames [Waypoints]float64, seg float64) channel {
	var c channel
	for i := range c {
		c[i] = gween.New(float32(frames[i]), float32(frames[i+1]), float32(seg), ease.Linear)
	}
	return c
}

func (c channel) at(i int, t float32) float64 {
	v, _ := c[i].Set(t)
	return float64(v)
}

// track is a particle with its tweens built.
type track struct {
	p                    Particle
	seg                  float64
	x, y, scale, opacity channel
}

func newTrack(p Particle) track {
	tr := track{p: p}
	if p.Period <= 0 {
		return tr
	}
	tr.seg = p.Period / segments
	tr.x = newChannel(p.PathX, tr.seg)
	tr.y = newChannel(p.PathY, tr.seg)
	tr.scale = newChannel(PulseScale, tr.seg)
	tr.opacity = newChannel(PulseOpacity, tr.seg)
	return tr
}

func (tr *track) sample(t float64) State {
	p := tr.p
	s := State{ID: p.ID, Radius: p.Radius}
	if p.Period <= 0 {
		s.Position = Point{X: p.PathX[0], Y: p.PathY[0]}
		s.Scale, s.Opacity = PulseScale[0], PulseOpacity[0]
		return s
	}

	phase := math.Mod(t, p.Period)
	if phase < 0 {
		phase += p.Period
	}
	i := min(int(phase/tr.seg), segments-1)
	at := float32(phase - float64(i)*tr.seg)

	s.Position.X = tr.x.at(i, at)
	s.Position.Y = tr.y.at(i, at)
	s.Scale = tr.scale.at(i, at)
	s.Opacity = tr.opacity.at(i, at)
	return s
}

// Sample returns the particle's state t seconds after the field mounted.
// Keyframes are spaced evenly over Period with linear easing, and the loop
// restarts from the first waypoint.
func (p Particle) Sample(t float64) State {
	tr := newTrack(p)
	return tr.sample(t)
}

// Sample returns every particle's state at t.
func (f Field) Sample(t float64) []State {
	return NewAnimator(f).Sample(t, nil)
}

// Animator samples a field every frame without rebuilding its tweens.
type Animator struct {
	tracks []track
}

// NewAnimator builds the tweens for every particle in f.
func NewAnimator(f Field) *Animator {
	a := &Animator{tracks: make([]track, len(f.Particles))}
	for i, p := range f.Particles {
		a.tracks[i] = newTrack(p)
	}
	return a
}

// Len returns the number of animated particles.
func (a *Animator) Len() int { return len(a.tracks) }

// Sample writes the state of every particle at t into dst, growing it when
// it is too short, and returns it.
func (a *Animator) Sample(t float64, dst []State) []State {
	if cap(dst) < len(a.tracks) {
		dst = make([]State, len(a.tracks))
	}
	dst = dst[:len(a.tracks)]
	for i := range a.tracks {
		dst[i] = a.tracks[i].sample(t)
	}
	return dst
}
