package viewport

import (
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type fakeWindow struct {
	size      Size
	listeners map[int]func()
	next      int
}

func newFakeWindow(w, h float64) *fakeWindow {
	return &fakeWindow{size: Size{Width: w, Height: h}, listeners: map[int]func(){}}
}

func (f *fakeWindow) InnerSize() Size { return f.size }

func (f *fakeWindow) OnResize(fn func()) func() {
	id := f.next
	f.next++
	f.listeners[id] = fn
	return func() { delete(f.listeners, id) }
}

func (f *fakeWindow) resize(w, h float64) {
	f.size = Size{Width: w, Height: h}
	for _, fn := range f.listeners {
		fn()
	}
}

func TestTracker(t *testing.T) {
	Convey("Given a tracker mounted on a window", t, func() {
		win := newFakeWindow(1280, 720)
		tr := NewTracker()
		tr.Mount(win)

		Convey("Then it reports the initial size", func() {
			So(tr.Mounted(), ShouldBeTrue)
			So(tr.Size(), ShouldResemble, Size{Width: 1280, Height: 720})
			So(win.listeners, ShouldHaveLength, 1)
		})

		Convey("When the window resizes", func() {
			var seen []Size
			cancel := tr.Subscribe(func(s Size) { seen = append(seen, s) })
			win.resize(800, 600)

			Convey("Then the size and subscribers update", func() {
				So(tr.Size(), ShouldResemble, Size{Width: 800, Height: 600})
				So(seen, ShouldResemble, []Size{{Width: 800, Height: 600}})
			})

			Convey("And a cancelled subscriber hears nothing more", func() {
				cancel()
				win.resize(640, 480)
				So(seen, ShouldHaveLength, 1)
				So(tr.Size(), ShouldResemble, Size{Width: 640, Height: 480})
			})
		})

		Convey("When unmounted", func() {
			tr.Unmount()

			Convey("Then the listener is gone and later resizes are ignored", func() {
				So(win.listeners, ShouldBeEmpty)
				So(tr.Mounted(), ShouldBeFalse)
				win.resize(10, 10)
				So(tr.Size(), ShouldResemble, Size{Width: 1280, Height: 720})
			})
		})

		Convey("When mounted onto a second window", func() {
			other := newFakeWindow(300, 200)
			tr.Mount(other)

			Convey("Then the first window's listener is released", func() {
				So(win.listeners, ShouldBeEmpty)
				So(other.listeners, ShouldHaveLength, 1)
				So(tr.Size(), ShouldResemble, Size{Width: 300, Height: 200})
			})
		})
	})

	Convey("Given no window", t, func() {
		tr := NewTracker()
		tr.Mount(nil)

		Convey("Then the size stays zero and nothing is registered", func() {
			So(tr.Mounted(), ShouldBeFalse)
			So(tr.Size(), ShouldResemble, Size{})
			So(tr.Unmount, ShouldNotPanic)
		})
	})
}

func TestZeroTracker(t *testing.T) {
	Convey("Given a zero tracker", t, func() {
		var tr Tracker

		Convey("Then subscribing before mount works", func() {
			var seen []Size
			var cancel func()
			So(func() { cancel = tr.Subscribe(func(s Size) { seen = append(seen, s) }) }, ShouldNotPanic)

			win := newFakeWindow(300, 200)
			tr.Mount(win)
			win.resize(320, 240)
			cancel()
			win.resize(1, 1)

			So(seen, ShouldResemble, []Size{{Width: 320, Height: 240}})
			tr.Unmount()
			So(win.listeners, ShouldBeEmpty)
		})
	})
}

func TestFromRequest(t *testing.T) {
	Convey("Given client hint headers", t, func() {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(HeaderViewportWidth, "1440")
		r.Header.Set(HeaderViewportHeight, "900")

		w := FromRequest(r)
		So(w, ShouldNotBeNil)
		So(w.InnerSize(), ShouldResemble, Size{Width: 1440, Height: 900})
	})

	Convey("Given query parameters", t, func() {
		r := httptest.NewRequest("GET", "/?vw=390&vh=844", nil)
		So(FromRequest(r).InnerSize(), ShouldResemble, Size{Width: 390, Height: 844})
	})

	Convey("Given no usable hints", t, func() {
		for _, target := range []string{"/", "/?vw=10", "/?vw=-1&vh=5", "/?vw=NaN&vh=5", "/?vw=abc&vh=1"} {
			r := httptest.NewRequest("GET", target, nil)
			So(FromRequest(r), ShouldBeNil)
		}
	})

	Convey("A static window never fires resize", t, func() {
		tr := NewTracker()
		tr.Mount(Static{Width: 5, Height: 6})
		So(tr.Size(), ShouldResemble, Size{Width: 5, Height: 6})
		tr.Unmount()
	})
}
