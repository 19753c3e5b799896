package ambient

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/spandanakunder/portfolio/internal/viewport"
)

func TestSample(t *testing.T) {
	Convey("Given a particle with a 20 second loop", t, func() {
		p := Particle{
			ID:     9,
			Radius: 8,
			PathX:  [Waypoints]float64{0, 100, 40},
			PathY:  [Waypoints]float64{10, 10, 210},
			Period: 20,
		}

		Convey("Then it starts on the first waypoint at rest scale", func() {
			s := p.Sample(0)
			So(s.ID, ShouldEqual, 9)
			So(s.Radius, ShouldEqual, 8)
			So(s.Position.X, ShouldAlmostEqual, 0, 1e-3)
			So(s.Position.Y, ShouldAlmostEqual, 10, 1e-3)
			So(s.Scale, ShouldAlmostEqual, 1, 1e-6)
			So(s.Opacity, ShouldAlmostEqual, 0.3, 1e-6)
		})

		Convey("And it moves linearly to the middle waypoint", func() {
			s := p.Sample(5)
			So(s.Position.X, ShouldAlmostEqual, 50, 1e-3)
			So(s.Scale, ShouldAlmostEqual, 1.25, 1e-5)

			s = p.Sample(10)
			So(s.Position.X, ShouldAlmostEqual, 100, 1e-3)
			So(s.Scale, ShouldAlmostEqual, 1.5, 1e-5)
			So(s.Opacity, ShouldAlmostEqual, 0.6, 1e-5)
		})

		Convey("And it approaches the last waypoint before looping", func() {
			s := p.Sample(19.999)
			So(s.Position.X, ShouldAlmostEqual, 40, 1e-2)
			So(s.Position.Y, ShouldAlmostEqual, 210, 1e-1)
		})

		Convey("And it repeats forever", func() {
			So(p.Sample(45), ShouldResemble, p.Sample(5))
			So(p.Sample(-15), ShouldResemble, p.Sample(5))
		})
	})

	Convey("Given a particle without a period", t, func() {
		p := Particle{PathX: [Waypoints]float64{3, 4, 5}, PathY: [Waypoints]float64{6, 7, 8}}
		s := p.Sample(12)
		So(s.Position, ShouldResemble, Point{X: 3, Y: 6})
	})

	Convey("Field.Sample covers every particle", t, func() {
		f := Generate(viewport.Size{Width: 640, Height: 480}, Seeded(5))
		So(f.Sample(3), ShouldHaveLength, Count)
	})
}

func TestAnimator(t *testing.T) {
	Convey("Given an animator over a generated field", t, func() {
		f := Generate(viewport.Size{Width: 1280, Height: 800}, Seeded(11))
		a := NewAnimator(f)
		So(a.Len(), ShouldEqual, Count)

		Convey("Then every frame matches sampling each particle on its own", func() {
			var buf []State
			for _, at := range []float64{0, 0.016, 1.5, 9.99, 17, 29.9, 64, -3} {
				buf = a.Sample(at, buf)
				So(buf, ShouldHaveLength, Count)
				for i, p := range f.Particles {
					So(buf[i], ShouldResemble, p.Sample(at))
				}
			}
		})

		Convey("Then a long enough buffer is reused", func() {
			buf := make([]State, 0, Count)
			out := a.Sample(2, buf)
			So(&out[0], ShouldPointTo, &buf[:1][0])
		})

		Convey("Then sampling the same instant twice is stable", func() {
			So(a.Sample(7.25, nil), ShouldResemble, a.Sample(7.25, nil))
			So(a.Sample(7.25, nil), ShouldResemble, f.Sample(7.25))
		})
	})
}
