// Package scene advances every scroll- and time-driven effect of the page
// by one frame.
//
// A Scene owns the viewport tracker, the scroll publisher, the reveal
// latches and the ambient field. The host calls Tick once per animation
// frame with the current scroll geometry and applies the returned Frame.
package scene

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/spandanakunder/portfolio/internal/ambient"
	"github.com/spandanakunder/portfolio/internal/reveal"
	"github.com/spandanakunder/portfolio/internal/scroll"
	"github.com/spandanakunder/portfolio/internal/viewport"
)

// DefaultParallaxDistance is how far the header backdrop travels across the
// whole document.
const DefaultParallaxDistance = 300.0

// Options configures a Scene.
type Options struct {
	Spring           scroll.SpringConfig
	ParallaxDistance float64
	// Rand draws the ambient field. Nil uses a randomly seeded source.
	Rand *rand.Rand
	// ReducedMotion holds the particles still. See SetReducedMotion.
	ReducedMotion bool
}

// Frame is the visual state for one animation frame.
type Frame struct {
	// Progress is the document scroll progress in [0, 1], the progress
	// bar's horizontal scale.
	Progress float64
	// HeaderOffset is the parallax translation of the header backdrop.
	HeaderOffset float64
	// Skills maps skill ids to their smoothed bar scale.
	Skills map[string]float64
	// Reveals maps section ids to their fade state.
	Reveals map[string]reveal.Appearance
	// Particles is empty until the scene is mounted. The slice is reused
	// by the next Tick.
	Particles []ambient.State
}

type revealEntry struct {
	box   scroll.Box
	latch *reveal.Latch
}

// Scene holds the per-page animation state.
type Scene struct {
	opts      Options
	tracker   *viewport.Tracker
	publisher *scroll.Publisher
	skills    map[string]struct{}
	reveals   map[string]*revealEntry
	field     ambient.Field
	anim      *ambient.Animator
	states    []ambient.State
	mounted   bool
	reduced   bool
	elapsed   time.Duration
}

// New returns an unmounted Scene.
func New(opts Options) *Scene {
	if opts.Spring == (scroll.SpringConfig{}) {
		opts.Spring = scroll.DefaultSpring
	}
	if opts.ParallaxDistance == 0 {
		opts.ParallaxDistance = DefaultParallaxDistance
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scene{
		opts:      opts,
		tracker:   viewport.NewTracker(),
		publisher: scroll.NewPublisher(opts.Spring),
		skills:    make(map[string]struct{}),
		reveals:   make(map[string]*revealEntry),
		reduced:   opts.ReducedMotion,
	}
}

// Mount attaches the host window and generates the ambient field inside its
// current size. Later resizes are tracked but never regenerate the field.
// Mounting again first unmounts and draws a fresh field. Tracked skills,
// sections and resize subscriptions survive a remount.
func (s *Scene) Mount(w viewport.Window) {
	s.Unmount()
	s.tracker.Mount(w)
	s.field = ambient.Generate(s.tracker.Size(), s.opts.Rand)
	s.anim = ambient.NewAnimator(s.field)
	s.elapsed = 0
	s.mounted = true
}

// Unmount detaches the window. No resize callback reaches the scene after
// it returns.
func (s *Scene) Unmount() {
	s.tracker.Unmount()
	s.mounted = false
}

// Mounted reports whether a window is attached.
func (s *Scene) Mounted() bool { return s.mounted }

// SetReducedMotion stops or resumes the particle animation. While reduced,
// particles hold the state they had when it was set.
func (s *Scene) SetReducedMotion(on bool) { s.reduced = on }

// ReducedMotion reports whether the particles are held still.
func (s *Scene) ReducedMotion() bool { return s.reduced }

// Viewport returns the tracked window size.
func (s *Scene) Viewport() viewport.Size { return s.tracker.Size() }

// OnResize calls fn with each new window size until cancel runs.
func (s *Scene) OnResize(fn func(viewport.Size)) (cancel func()) {
	return s.tracker.Subscribe(fn)
}

// Field returns the field drawn at mount.
func (s *Scene) Field() ambient.Field { return s.field }

// AddSkill tracks a skill bar laid out at box. Its scale follows the bar's
// transit progress through a spring.
func (s *Scene) AddSkill(id string, box scroll.Box) {
	s.skills[id] = struct{}{}
	s.publisher.Subscribe(id, box, true)
}

// AddReveal tracks a section that fades in the first time it is in view.
func (s *Scene) AddReveal(id string, box scroll.Box, opts ...reveal.Option) {
	s.reveals[id] = &revealEntry{box: box, latch: reveal.New(opts...)}
}

// Relayout updates the box of a tracked skill or section after the
// document reflowed.
func (s *Scene) Relayout(id string, box scroll.Box) {
	if _, ok := s.skills[id]; ok {
		s.publisher.Relayout(id, box)
	}
	if e, ok := s.reveals[id]; ok {
		e.box = box
	}
}

// Tick advances the scene by dt with the document at g.
func (s *Scene) Tick(g scroll.Geometry, dt time.Duration) Frame {
	if dt < 0 {
		dt = 0
	}
	s.publisher.Update(g, dt)

	doc := s.publisher.Document().Raw
	f := Frame{
		Progress:     doc,
		HeaderOffset: scroll.Transform(doc, 0, 1, 0, s.opts.ParallaxDistance),
		Skills:       make(map[string]float64, len(s.skills)),
		Reveals:      make(map[string]reveal.Appearance, len(s.reveals)),
	}
	for id := range s.skills {
		sig, _ := s.publisher.Element(id)
		f.Skills[id] = sig.Smooth
	}
	for id, e := range s.reveals {
		f.Reveals[id] = e.latch.Observe(scroll.InView(g, e.box), dt)
	}

	if s.mounted {
		if !s.reduced {
			s.elapsed += dt
		}
		s.states = s.anim.Sample(s.elapsed.Seconds(), s.states)
		f.Particles = s.states
	}
	return f
}

// RevealIDs returns the tracked section ids in order.
func (s *Scene) RevealIDs() []string {
	ids := make([]string, 0, len(s.reveals))
	for id := range s.reveals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
