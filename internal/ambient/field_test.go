package ambient

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/spandanakunder/portfolio/internal/viewport"
)

func TestGenerate(t *testing.T) {
	Convey("Given a range of viewport sizes", t, func() {
		sizes := []viewport.Size{
			{Width: 0, Height: 0},
			{Width: 1, Height: 0},
			{Width: 390, Height: 844},
			{Width: 1920, Height: 1080},
			{Width: 7680, Height: 4320},
		}

		for seed, size := range sizes {
			f := Generate(size, Seeded(uint64(seed)))

			So(f.Particles, ShouldHaveLength, Count)
			So(f.Bounds, ShouldResemble, size)

			for _, p := range f.Particles {
				So(p.Position.X, ShouldBeGreaterThanOrEqualTo, 0)
				So(p.Position.X, ShouldBeLessThanOrEqualTo, size.Width)
				So(p.Position.Y, ShouldBeGreaterThanOrEqualTo, 0)
				So(p.Position.Y, ShouldBeLessThanOrEqualTo, size.Height)
				for i := range Waypoints {
					So(p.PathX[i], ShouldBeGreaterThanOrEqualTo, 0)
					So(p.PathX[i], ShouldBeLessThanOrEqualTo, size.Width)
					So(p.PathY[i], ShouldBeGreaterThanOrEqualTo, 0)
					So(p.PathY[i], ShouldBeLessThanOrEqualTo, size.Height)
				}
				So(p.Radius, ShouldBeBetweenOrEqual, MinRadius, MaxRadius)
				So(p.Opacity, ShouldBeBetweenOrEqual, MinOpacity, MaxOpacity)
				So(p.Period, ShouldBeBetweenOrEqual, MinPeriod, MaxPeriod)
			}
		}
	})

	Convey("Given a negative size", t, func() {
		f := Generate(viewport.Size{Width: -10, Height: -5}, Seeded(1))
		So(f.Particles, ShouldHaveLength, Count)
		So(f.Particles[0].PathX[0], ShouldEqual, 0)
		So(f.Particles[0].PathY[2], ShouldEqual, 0)
	})

	Convey("Given the same seed twice", t, func() {
		size := viewport.Size{Width: 800, Height: 600}
		So(Generate(size, Seeded(42)), ShouldResemble, Generate(size, Seeded(42)))
	})

	Convey("Given distinct particles", t, func() {
		f := Generate(viewport.Size{Width: 800, Height: 600}, Seeded(7))
		So(f.Particles[0].PathX, ShouldNotResemble, f.Particles[1].PathX)
		So(f.Particles[3].ID, ShouldEqual, 3)
	})
}

func TestFieldIgnoresLaterResize(t *testing.T) {
	Convey("Given a field generated from a mounted tracker", t, func() {
		tr := viewport.NewTracker()
		win := &resizable{size: viewport.Size{Width: 1024, Height: 768}}
		tr.Mount(win)
		defer tr.Unmount()

		f := Generate(tr.Size(), Seeded(3))
		before, err := json.Marshal(f)
		So(err, ShouldBeNil)

		Convey("When the window resizes", func() {
			win.resize(viewport.Size{Width: 320, Height: 200})

			Convey("Then the tracker sees the new size", func() {
				So(tr.Size(), ShouldResemble, viewport.Size{Width: 320, Height: 200})
			})

			Convey("And the existing particles are byte-identical", func() {
				after, err := json.Marshal(f)
				So(err, ShouldBeNil)
				So(string(after), ShouldEqual, string(before))
			})

			Convey("And a newly generated field uses the new bounds", func() {
				g := Generate(tr.Size(), Seeded(3))
				for _, p := range g.Particles {
					So(p.PathX[1], ShouldBeLessThanOrEqualTo, 320)
				}
			})
		})
	})
}

type resizable struct {
	size viewport.Size
	fn   func()
}

func (r *resizable) InnerSize() viewport.Size { return r.size }

func (r *resizable) OnResize(fn func()) func() {
	r.fn = fn
	return func() { r.fn = nil }
}

func (r *resizable) resize(s viewport.Size) {
	r.size = s
	if r.fn != nil {
		r.fn()
	}
}
