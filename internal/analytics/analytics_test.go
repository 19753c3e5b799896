package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/spandanakunder/portfolio/internal/logger"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an in-memory store", t, func() {
		s, err := OpenMemory()
		So(err, ShouldBeNil)
		defer s.Close()

		now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return now }

		Convey("Then IP hashes are stable and never the raw address", func() {
			h := s.HashIP("203.0.113.9")
			So(h, ShouldHaveLength, 16)
			So(h, ShouldEqual, s.HashIP("203.0.113.9"))
			So(h, ShouldNotEqual, s.HashIP("203.0.113.10"))
			So(h, ShouldNotContainSubstring, "203")
		})

		Convey("When visits are recorded across time", func() {
			So(s.Record(ctx, "1.1.1.1", "ua-a", "/"), ShouldBeNil)
			So(s.Record(ctx, "1.1.1.1", "ua-a", "/"), ShouldBeNil)

			now = now.Add(-3 * 24 * time.Hour)
			So(s.Record(ctx, "2.2.2.2", "ua-b", "/"), ShouldBeNil)

			now = now.Add(-30 * 24 * time.Hour)
			So(s.Record(ctx, "3.3.3.3", "ua-c", "/"), ShouldBeNil)

			now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

			Convey("Then stats count totals, uniques, today and this week", func() {
				stats, err := s.Stats(ctx, 10)
				So(err, ShouldBeNil)
				So(stats.TotalVisitors, ShouldEqual, 4)
				So(stats.UniqueVisitors, ShouldEqual, 3)
				So(stats.VisitorsToday, ShouldEqual, 2)
				So(stats.VisitorsThisWeek, ShouldEqual, 3)
				So(stats.RecentVisitors, ShouldHaveLength, 4)
				So(stats.RecentVisitors[0].Timestamp, ShouldEqual, now)
				So(stats.RecentVisitors[3].UserAgent, ShouldEqual, "ua-c")
			})

			Convey("And cleanup drops visits past retention", func() {
				n, err := s.Cleanup(ctx, 7*24*time.Hour)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)

				visits, err := s.Recent(ctx, 10)
				So(err, ShouldBeNil)
				So(visits, ShouldHaveLength, 3)
			})
		})
	})

	Convey("Two stores salt hashes differently", t, func() {
		a, err := OpenMemory()
		So(err, ShouldBeNil)
		defer a.Close()
		b, err := OpenMemory()
		So(err, ShouldBeNil)
		defer b.Close()
		So(a.HashIP("1.2.3.4"), ShouldNotEqual, b.HashIP("1.2.3.4"))
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	Convey("Given a router behind the tracking middleware", t, func() {
		s, err := OpenMemory()
		So(err, ShouldBeNil)
		defer s.Close()

		var recorded atomic.Int32
		tr := NewTracker(s, logger.Nop(), func() { recorded.Add(1) })

		r := gin.New()
		r.Use(tr.Middleware())
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		r.GET("/", ok)
		r.GET("/static/site.css", ok)
		r.GET("/admin/dashboard", ok)
		r.POST("/contact", ok)

		do := func(method, path string, header http.Header) {
			req := httptest.NewRequest(method, path, nil)
			for k, v := range header {
				req.Header[k] = v
			}
			r.ServeHTTP(httptest.NewRecorder(), req)
		}

		Convey("When pages, assets, admin, posts and DNT requests arrive", func() {
			do("GET", "/", nil)
			do("GET", "/static/site.css", nil)
			do("GET", "/admin/dashboard", nil)
			do("POST", "/contact", nil)
			do("GET", "/", http.Header{"Dnt": {"1"}})
			tr.Wait()

			Convey("Then only the plain page view is recorded", func() {
				So(recorded.Load(), ShouldEqual, 1)
				visits, err := s.Recent(ctx, 10)
				So(err, ShouldBeNil)
				So(visits, ShouldHaveLength, 1)
				So(visits[0].Path, ShouldEqual, "/")
			})
		})
	})
}

func TestRunCleanup(t *testing.T) {
	Convey("RunCleanup returns once its context is cancelled", t, func() {
		s, err := OpenMemory()
		So(err, ShouldBeNil)
		defer s.Close()

		tr := NewTracker(s, logger.Nop(), nil)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			tr.RunCleanup(ctx, time.Hour, time.Millisecond)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("cleanup loop did not stop")
		}
	})
}
