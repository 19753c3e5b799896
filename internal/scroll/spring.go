package scroll

import (
	"math"
	"time"
)

const (
	springStep = time.Millisecond
	maxFrame   = time.Second
)

// SpringConfig parameterizes a damped spring.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	// RestDelta and RestSpeed are the distance and speed below which the
	// spring snaps onto its target and stops.
	RestDelta float64
	RestSpeed float64
}

// DefaultSpring is the smoothing used by the skill bars.
var DefaultSpring = SpringConfig{
	Stiffness: 100,
	Damping:   30,
	Mass:      1,
	RestDelta: 0.001,
	RestSpeed: 0.01,
}

// Spring low-pass filters a value towards a moving target.
type Spring struct {
	cfg      SpringConfig
	value    float64
	velocity float64
	target   float64
	resting  bool
}

// NewSpring returns a spring resting at initial.
func NewSpring(cfg SpringConfig, initial float64) *Spring {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	return &Spring{cfg: cfg, value: initial, target: initial, resting: true}
}

// Value returns the current smoothed value.
func (s *Spring) Value() float64 { return s.value }

// Resting reports whether the spring has settled on its target.
func (s *Spring) Resting() bool { return s.resting }

// Jump moves the spring to v immediately with no velocity.
func (s *Spring) Jump(v float64) {
	s.value, s.target, s.velocity, s.resting = v, v, 0, true
}

// Step advances the spring by dt towards target and returns the new value.
func (s *Spring) Step(target float64, dt time.Duration) float64 {
	if target != s.target {
		s.target = target
		s.resting = false
	}
	if s.resting {
		return s.value
	}
	if dt > maxFrame {
		dt = maxFrame
	}

	h := springStep.Seconds()
	for remaining := dt; remaining > 0; remaining -= springStep {
		if remaining < springStep {
			h = remaining.Seconds()
		}
		accel := (-s.cfg.Stiffness*(s.value-s.target) - s.cfg.Damping*s.velocity) / s.cfg.Mass
		s.velocity += accel * h
		s.value += s.velocity * h

		if math.Abs(s.velocity) <= s.cfg.RestSpeed && math.Abs(s.target-s.value) <= s.cfg.RestDelta {
			s.value, s.velocity, s.resting = s.target, 0, true
			break
		}
	}
	return s.value
}
