// Package reveal implements the one-shot fade-in of page sections.
package reveal

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Defaults for a section fade: opacity 0 to 1 while sliding up by Offset
// pixels over Duration.
const (
	DefaultOffset   = 20.0
	DefaultDuration = 500 * time.Millisecond
)

// Appearance is what a section looks like on a given frame.
type Appearance struct {
	Opacity float64
	// OffsetY is the vertical displacement in pixels, positive downward.
	OffsetY float64
}

// Latch reveals an element the first time it enters the viewport. Once
// triggered it never hides again.
type Latch struct {
	offset    float64
	delay     float64
	wait      float64
	triggered bool
	opacity   *gween.Tween
	slide     *gween.Tween
	current   Appearance
}

// Option configures a Latch.
type Option func(*Latch)

// WithOffset sets how far below its resting place the element starts.
func WithOffset(px float64) Option {
	return func(l *Latch) { l.offset = px }
}

// WithDelay postpones the fade after the trigger.
func WithDelay(d time.Duration) Option {
	return func(l *Latch) { l.delay = d.Seconds() }
}

// New returns an untriggered latch.
func New(opts ...Option) *Latch {
	l := &Latch{offset: DefaultOffset}
	for _, opt := range opts {
		opt(l)
	}
	l.current = Appearance{Opacity: 0, OffsetY: l.offset}
	return l
}

// Triggered reports whether the element has ever been in view.
func (l *Latch) Triggered() bool { return l.triggered }

// Observe feeds one frame: whether the element intersects the viewport and
// the frame duration. It returns the element's appearance.
func (l *Latch) Observe(inView bool, dt time.Duration) Appearance {
	if !l.triggered {
		if !inView {
			return l.current
		}
		l.triggered = true
		d := float32(DefaultDuration.Seconds())
		l.opacity = gween.New(0, 1, d, ease.OutQuad)
		l.slide = gween.New(float32(l.offset), 0, d, ease.OutQuad)
		l.wait = l.delay
		dt = 0
	}

	step := dt.Seconds()
	if l.wait > 0 {
		if step <= l.wait {
			l.wait -= step
			step = 0
		} else {
			step -= l.wait
			l.wait = 0
		}
	}
	o, _ := l.opacity.Update(float32(step))
	y, _ := l.slide.Update(float32(step))
	l.current = Appearance{Opacity: float64(o), OffsetY: float64(y)}
	return l.current
}

// Appearance returns the appearance from the last Observe.
func (l *Latch) Appearance() Appearance { return l.current }
