// Package viewport tracks the size of the host window.
//
// The tracker never reads a global window. Callers pass the Window to Mount,
// which keeps the tracker testable and lets the server stand in a window
// built from request hints.
package viewport

import (
	"math"
	"net/http"
	"strconv"
	"sync"
)

// Size is a window size in CSS pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Window is the host environment the tracker observes.
type Window interface {
	// InnerSize reports the current inner size.
	InnerSize() Size
	// OnResize registers fn for resize events and returns a func that
	// removes the registration.
	OnResize(fn func()) (remove func())
}

// Tracker publishes the size of a mounted Window. The zero value is an
// unmounted tracker ready to use.
type Tracker struct {
	mu      sync.Mutex
	win     Window
	size    Size
	remove  func()
	nextSub int
	subs    map[int]func(Size)
}

// NewTracker returns an unmounted tracker reporting the zero size.
func NewTracker() *Tracker {
	return &Tracker{subs: make(map[int]func(Size))}
}

// Mount reads the window size and starts listening for resizes. A nil
// window resets the size to zero and registers nothing. Mounting an
// already-mounted tracker first unmounts it.
func (t *Tracker) Mount(w Window) {
	t.Unmount()
	if w == nil {
		t.mu.Lock()
		t.size = Size{}
		t.mu.Unlock()
		return
	}

	t.mu.Lock()
	t.win = w
	t.size = w.InnerSize()
	t.mu.Unlock()

	remove := w.OnResize(t.update)

	t.mu.Lock()
	t.remove = remove
	t.mu.Unlock()
}

// Unmount removes the resize listener. Callbacks that race with Unmount
// are dropped once it returns.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	remove := t.remove
	t.remove = nil
	t.win = nil
	t.mu.Unlock()

	if remove != nil {
		remove()
	}
}

// Mounted reports whether a window is attached.
func (t *Tracker) Mounted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.win != nil
}

// Size returns the last observed size.
func (t *Tracker) Size() Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// Subscribe calls fn with every new size until the returned cancel func runs.
func (t *Tracker) Subscribe(fn func(Size)) (cancel func()) {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	if t.subs == nil {
		t.subs = make(map[int]func(Size))
	}
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

func (t *Tracker) update() {
	t.mu.Lock()
	if t.win == nil {
		t.mu.Unlock()
		return
	}
	t.size = t.win.InnerSize()
	size := t.size
	subs := make([]func(Size), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(size)
	}
}

// Static is a Window of fixed size that never resizes.
type Static Size

// InnerSize implements Window.
func (s Static) InnerSize() Size { return Size(s) }

// OnResize implements Window; a static window never fires.
func (s Static) OnResize(func()) func() { return func() {} }

// Hint request headers (Client Hints) and query parameters carrying the
// browser's viewport size.
const (
	HeaderViewportWidth  = "Sec-CH-Viewport-Width"
	HeaderViewportHeight = "Sec-CH-Viewport-Height"
	legacyViewportHeight = "Viewport-Height"
	queryWidth           = "vw"
	queryHeight          = "vh"
)

// FromRequest builds a Static window from viewport hints on r. It returns
// nil when r carries no usable hint, which a Tracker treats as having no
// window at all.
func FromRequest(r *http.Request) Window {
	w, okW := parseDim(r.Header.Get(HeaderViewportWidth))
	h, okH := parseDim(r.Header.Get(HeaderViewportHeight))
	if !okH {
		h, okH = parseDim(r.Header.Get(legacyViewportHeight))
	}
	if !okW || !okH {
		q := r.URL.Query()
		w, okW = parseDim(q.Get(queryWidth))
		h, okH = parseDim(q.Get(queryHeight))
	}
	if !okW || !okH {
		return nil
	}
	return Static{Width: w, Height: h}
}

func parseDim(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 100_000 {
		return 0, false
	}
	return v, true
}
