package reveal

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLatch(t *testing.T) {
	frame := time.Second / 60

	Convey("Given a fresh latch", t, func() {
		l := New()

		Convey("Then it is hidden and offset", func() {
			So(l.Triggered(), ShouldBeFalse)
			So(l.Appearance(), ShouldResemble, Appearance{Opacity: 0, OffsetY: DefaultOffset})
		})

		Convey("When frames pass out of view", func() {
			for range 100 {
				l.Observe(false, frame)
			}
			So(l.Triggered(), ShouldBeFalse)
			So(l.Appearance().Opacity, ShouldEqual, 0)
		})

		Convey("When it enters the view", func() {
			a := l.Observe(true, frame)
			So(l.Triggered(), ShouldBeTrue)
			So(a.Opacity, ShouldEqual, 0)

			mid := l.Observe(true, DefaultDuration/2)
			So(mid.Opacity, ShouldBeBetween, 0, 1)
			So(mid.OffsetY, ShouldBeBetween, 0, DefaultOffset)

			Convey("Then it finishes fully visible", func() {
				end := l.Observe(true, DefaultDuration)
				So(end, ShouldResemble, Appearance{Opacity: 1, OffsetY: 0})
			})

			Convey("And scrolling out and back in never hides it again", func() {
				l.Observe(true, DefaultDuration)
				for i := range 50 {
					a := l.Observe(i%2 == 0, frame)
					So(a, ShouldResemble, Appearance{Opacity: 1, OffsetY: 0})
					So(l.Triggered(), ShouldBeTrue)
				}
			})

			Convey("And it keeps fading in while out of view", func() {
				a := l.Observe(false, DefaultDuration)
				So(a.Opacity, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a delayed latch with a larger offset", t, func() {
		l := New(WithDelay(200*time.Millisecond), WithOffset(50))
		So(l.Appearance().OffsetY, ShouldEqual, 50)

		l.Observe(true, 0)
		So(l.Observe(true, 150*time.Millisecond).Opacity, ShouldEqual, 0)
		So(l.Observe(true, 100*time.Millisecond).Opacity, ShouldBeGreaterThan, 0)
		So(l.Observe(true, time.Second), ShouldResemble, Appearance{Opacity: 1, OffsetY: 0})
	})
}
