package scroll

import (
	"sort"
	"time"
)

// Signal is one published progress value.
type Signal struct {
	// Raw is the instantaneous progress.
	Raw float64
	// Smooth is Raw passed through the subscription's spring, or Raw when
	// the subscription is unsmoothed.
	Smooth float64
}

type subscription struct {
	box    Box
	spring *Spring
	signal Signal
}

// Publisher recomputes document progress and every subscribed element's
// transit progress once per Update. The zero value smooths with
// DefaultSpring.
type Publisher struct {
	spring   SpringConfig
	document Signal
	subs     map[string]*subscription
}

// NewPublisher returns a Publisher whose smoothed subscriptions use cfg.
func NewPublisher(cfg SpringConfig) *Publisher {
	return &Publisher{spring: cfg, subs: make(map[string]*subscription)}
}

// Subscribe starts tracking the element id laid out at box. Subscribing an
// existing id replaces it.
func (p *Publisher) Subscribe(id string, box Box, smoothed bool) {
	s := &subscription{box: box}
	if smoothed {
		cfg := p.spring
		if cfg == (SpringConfig{}) {
			cfg = DefaultSpring
		}
		s.spring = NewSpring(cfg, 0)
	}
	if p.subs == nil {
		p.subs = make(map[string]*subscription)
	}
	p.subs[id] = s
}

// Unsubscribe stops tracking id.
func (p *Publisher) Unsubscribe(id string) { delete(p.subs, id) }

// Relayout updates the box of a subscribed element after a layout change.
// Unknown ids are ignored.
func (p *Publisher) Relayout(id string, box Box) {
	if s, ok := p.subs[id]; ok {
		s.box = box
	}
}

// Update recomputes every signal for geometry g, advancing springs by dt.
func (p *Publisher) Update(g Geometry, dt time.Duration) {
	d := Document(g)
	p.document = Signal{Raw: d, Smooth: d}

	for _, s := range p.subs {
		raw := Transit(g, s.box)
		s.signal.Raw = raw
		if s.spring != nil {
			s.signal.Smooth = s.spring.Step(raw, dt)
		} else {
			s.signal.Smooth = raw
		}
	}
}

// Document returns the last computed document progress.
func (p *Publisher) Document() Signal { return p.document }

// Element returns the last computed signal for id.
func (p *Publisher) Element(id string) (Signal, bool) {
	s, ok := p.subs[id]
	if !ok {
		return Signal{}, false
	}
	return s.signal, true
}

// IDs returns the subscribed ids in sorted order.
func (p *Publisher) IDs() []string {
	ids := make([]string, 0, len(p.subs))
	for id := range p.subs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
