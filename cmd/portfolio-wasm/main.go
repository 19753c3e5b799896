//go:build js && wasm

// Command portfolio-wasm drives the page's scroll-linked and ambient
// effects in the browser. It is loaded by static/scene.js when the server
// is configured with a wasm directory.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"syscall/js"
	"time"

	"github.com/spandanakunder/portfolio/internal/reveal"
	"github.com/spandanakunder/portfolio/internal/scene"
	"github.com/spandanakunder/portfolio/internal/scroll"
	"github.com/spandanakunder/portfolio/internal/viewport"
)

// motion is the JSON the page embeds in #scene-motion.
type motion struct {
	Stiffness        float64
	Damping          float64
	Mass             float64
	RestDelta        float64
	RestSpeed        float64
	ParallaxDistance float64
}

// browserWindow adapts the global window to viewport.Window.
type browserWindow struct {
	win js.Value
}

func (w browserWindow) InnerSize() viewport.Size {
	return viewport.Size{
		Width:  w.win.Get("innerWidth").Float(),
		Height: w.win.Get("innerHeight").Float(),
	}
}

func (w browserWindow) OnResize(fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	w.win.Call("addEventListener", "resize", cb)
	return func() {
		w.win.Call("removeEventListener", "resize", cb)
		cb.Release()
	}
}

// domNode adapts an element to scroll.Node.
type domNode struct {
	el js.Value
}

func (n domNode) OffsetTop() float64    { return n.el.Get("offsetTop").Float() }
func (n domNode) OffsetHeight() float64 { return n.el.Get("offsetHeight").Float() }

func (n domNode) OffsetParent() (scroll.Node, bool) {
	p := n.el.Get("offsetParent")
	if !p.Truthy() {
		return nil, false
	}
	return domNode{el: p}, true
}

type tracked struct {
	id   string
	el   js.Value
	fill js.Value
}

type runtime struct {
	win       js.Value
	doc       js.Value
	scene     *scene.Scene
	progress  js.Value
	parallax  js.Value
	skills    []tracked
	reveals   []tracked
	particles []js.Value
	last      float64
	frame     js.Func
	running   bool
}

func main() {
	win := js.Global()
	doc := win.Get("document")

	m := motion{
		Stiffness: scroll.DefaultSpring.Stiffness,
		Damping:   scroll.DefaultSpring.Damping,
		Mass:      scroll.DefaultSpring.Mass,
		RestDelta: scroll.DefaultSpring.RestDelta,
		RestSpeed: scroll.DefaultSpring.RestSpeed,
	}
	if el := doc.Call("getElementById", "scene-motion"); el.Truthy() {
		if err := json.Unmarshal([]byte(el.Get("textContent").String()), &m); err != nil {
			log.Printf("scene: bad motion parameters: %v", err)
		}
	}

	rt := &runtime{
		win: win,
		doc: doc,
		scene: scene.New(scene.Options{
			Spring: scroll.SpringConfig{
				Stiffness: m.Stiffness,
				Damping:   m.Damping,
				Mass:      m.Mass,
				RestDelta: m.RestDelta,
				RestSpeed: m.RestSpeed,
			},
			ParallaxDistance: m.ParallaxDistance,
		}),
		progress: doc.Call("getElementById", "progress"),
		parallax: doc.Call("getElementById", "parallax"),
	}
	rt.watchReducedMotion()
	rt.track()
	rt.mount()
	rt.scene.OnResize(func(viewport.Size) { rt.relayout() })

	rt.frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if !rt.scene.Mounted() {
			rt.running = false
			return nil
		}
		rt.tick(args[0].Float())
		win.Call("requestAnimationFrame", rt.frame)
		return nil
	})

	win.Call("addEventListener", "pagehide", js.FuncOf(func(this js.Value, args []js.Value) any {
		rt.scene.Unmount()
		return nil
	}))
	win.Call("addEventListener", "pageshow", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("persisted").Truthy() && !rt.scene.Mounted() {
			rt.mount()
			rt.relayout()
			rt.start()
		}
		return nil
	}))

	rt.start()
	select {}
}

// start runs the frame loop unless it is already running.
func (rt *runtime) start() {
	if rt.running {
		return
	}
	rt.running = true
	rt.last = 0
	rt.win.Call("requestAnimationFrame", rt.frame)
}

// watchReducedMotion follows the user's reduced-motion preference.
func (rt *runtime) watchReducedMotion() {
	mq := rt.win.Call("matchMedia", "(prefers-reduced-motion: reduce)")
	if !mq.Truthy() {
		return
	}
	rt.scene.SetReducedMotion(mq.Get("matches").Bool())
	mq.Call("addEventListener", "change", js.FuncOf(func(this js.Value, args []js.Value) any {
		rt.scene.SetReducedMotion(args[0].Get("matches").Bool())
		return nil
	}))
}

// track registers every skill bar and revealed section, then hands them to
// the stylesheet's hidden state.
func (rt *runtime) track() {
	for _, el := range rt.query("[data-skill]") {
		t := tracked{id: el.Get("dataset").Get("skill").String(), el: el, fill: el.Call("querySelector", ".skill-fill")}
		rt.scene.AddSkill(t.id, rt.box(el))
		rt.skills = append(rt.skills, t)
	}

	for _, el := range rt.query("[data-reveal]") {
		ds := el.Get("dataset")
		var opts []reveal.Option
		if v, ok := number(ds.Get("revealOffset")); ok {
			opts = append(opts, reveal.WithOffset(v))
		}
		if v, ok := number(ds.Get("revealDelay")); ok {
			opts = append(opts, reveal.WithDelay(time.Duration(v)*time.Millisecond))
		}
		t := tracked{id: ds.Get("reveal").String(), el: el}
		rt.scene.AddReveal(t.id, rt.box(el), opts...)
		rt.reveals = append(rt.reveals, t)
	}

	rt.doc.Get("documentElement").Get("classList").Call("add", "scene")
}

// mount attaches the window and sizes the particle nodes for a fresh field.
func (rt *runtime) mount() {
	rt.scene.Mount(browserWindow{win: rt.win})

	// The field is redrawn for the real window, so the server's keyframes
	// give way to per-frame sampling.
	field := rt.scene.Field()
	nodes := rt.query("[data-particle]")
	rt.particles = rt.particles[:0]
	for _, p := range field.Particles {
		if p.ID >= len(nodes) {
			break
		}
		el := nodes[p.ID]
		style := el.Get("style")
		style.Set("animation", "none")
		size := fmt.Sprintf("%.2fpx", 2*p.Radius)
		style.Set("width", size)
		style.Set("height", size)
		rt.particles = append(rt.particles, el)
	}
}

// relayout re-measures every tracked element after a resize or a restore
// from the back/forward cache.
func (rt *runtime) relayout() {
	for _, t := range rt.skills {
		rt.scene.Relayout(t.id, rt.box(t.el))
	}
	for _, t := range rt.reveals {
		rt.scene.Relayout(t.id, rt.box(t.el))
	}
}

func (rt *runtime) tick(now float64) {
	dt := time.Duration(0)
	if rt.last > 0 {
		dt = time.Duration((now - rt.last) * float64(time.Millisecond))
	}
	rt.last = now

	f := rt.scene.Tick(rt.geometry(), dt)

	if rt.progress.Truthy() {
		rt.progress.Get("style").Set("transform", fmt.Sprintf("scaleX(%.4f)", f.Progress))
	}
	if rt.parallax.Truthy() {
		rt.parallax.Get("style").Set("transform", fmt.Sprintf("translateY(%.1fpx)", f.HeaderOffset))
	}
	for _, t := range rt.skills {
		if t.fill.Truthy() {
			t.fill.Get("style").Set("transform", fmt.Sprintf("scaleX(%.4f)", f.Skills[t.id]))
		}
	}
	for _, t := range rt.reveals {
		a := f.Reveals[t.id]
		style := t.el.Get("style")
		style.Set("opacity", strconv.FormatFloat(a.Opacity, 'f', 3, 64))
		style.Set("transform", fmt.Sprintf("translateY(%.1fpx)", a.OffsetY))
	}
	for i, st := range f.Particles {
		if i >= len(rt.particles) {
			break
		}
		style := rt.particles[i].Get("style")
		style.Set("transform", fmt.Sprintf("translate(%.1fpx,%.1fpx) scale(%.3f)", st.Position.X, st.Position.Y, st.Scale))
		style.Set("opacity", strconv.FormatFloat(st.Opacity, 'f', 3, 64))
	}
}

func (rt *runtime) geometry() scroll.Geometry {
	return scroll.Geometry{
		ScrollY:        rt.win.Get("scrollY").Float(),
		ViewportHeight: rt.win.Get("innerHeight").Float(),
		DocumentHeight: rt.doc.Get("documentElement").Get("scrollHeight").Float(),
	}
}

// box measures el in document coordinates.
func (rt *runtime) box(el js.Value) scroll.Box {
	return scroll.Measure(domNode{el: el})
}

func (rt *runtime) query(selector string) []js.Value {
	list := rt.doc.Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

func number(v js.Value) (float64, bool) {
	if v.Type() != js.TypeString {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.String(), 64)
	return f, err == nil
}
