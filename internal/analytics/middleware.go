package analytics

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spandanakunder/portfolio/internal/logger"
)

// untrackedPrefixes are never recorded.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/wasm/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/metrics",
	"/healthz",
}

const recordTimeout = 5 * time.Second

// Tracker records page views in the background.
type Tracker struct {
	store      *Store
	log        logger.Logger
	onRecorded func()
	wg         sync.WaitGroup
}

// NewTracker returns a Tracker writing to store. onRecorded, if not nil,
// runs after every stored visit.
func NewTracker(store *Store, log logger.Logger, onRecorded func()) *Tracker {
	return &Tracker{store: store, log: log, onRecorded: onRecorded}
}

// Middleware records GET requests for pages, honouring Do Not Track.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" || untracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()

			if err := t.store.Record(ctx, ip, ua, path); err != nil {
				t.log.Error(ctx, "recording visitor", logger.Error(err))
				return
			}
			if t.onRecorded != nil {
				t.onRecorded()
			}
		}()
		c.Next()
	}
}

// Wait blocks until in-flight recordings finish.
func (t *Tracker) Wait() { t.wg.Wait() }

// RunCleanup deletes visits older than retention every interval until ctx
// is done.
func (t *Tracker) RunCleanup(ctx context.Context, retention, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		n, err := t.store.Cleanup(ctx, retention)
		if err != nil {
			t.log.Error(ctx, "cleaning up visitor data", logger.Error(err))
		} else if n > 0 {
			t.log.Info(ctx, "privacy cleanup removed old visits", logger.Int("removed", int(n)))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func untracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
