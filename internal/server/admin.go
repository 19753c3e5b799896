package server

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spandanakunder/portfolio/internal/analytics"
	"github.com/spandanakunder/portfolio/internal/logger"
)

const (
	adminCookie    = "admin_token"
	adminCookieAge = 24 * 60 * 60
	recentVisits   = 50
	visitorsPage   = 200
)

// adminRoutes registers the statistics dashboard. It stays off without a
// password or a visitor store.
func (s *Server) adminRoutes(r *gin.Engine) error {
	switch {
	case !s.cfg.Admin.Enabled:
		return nil
	case s.store == nil:
		s.log.Warn(context.Background(), "admin disabled: analytics is off")
		return nil
	case s.cfg.Admin.Password == "":
		s.log.Warn(context.Background(), "admin disabled: no password configured")
		return nil
	}

	token, err := analytics.NewToken()
	if err != nil {
		return err
	}
	s.adminToken = token

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})
	r.POST("/admin/login", s.login)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.log.Info(c.Request.Context(), "admin logout", logger.String("visitor", s.store.HashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	g := r.Group("/admin")
	g.Use(s.requireAdmin())
	g.GET("/dashboard", s.dashboard)
	g.GET("/api/stats", s.statsJSON)
	g.GET("/visitors", s.visitors)
	g.GET("/export/stats", s.exportStats)
	g.POST("/privacy/cleanup", s.cleanup)
	return nil
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) login(c *gin.Context) {
	user := c.PostForm("username")
	pass := c.PostForm("password")
	visitor := s.store.HashIP(c.ClientIP())

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(s.cfg.Admin.Password)) == 1
	if !userOK || !passOK {
		s.log.Warn(c.Request.Context(), "failed admin login", logger.String("visitor", visitor))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"Error": "Invalid credentials"})
		return
	}

	c.SetCookie(adminCookie, s.adminToken, adminCookieAge, "/admin", "", false, true)
	s.log.Info(c.Request.Context(), "admin login", logger.String("visitor", visitor))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) stats(c *gin.Context) (*analytics.Stats, bool) {
	stats, err := s.store.Stats(c.Request.Context(), recentVisits)
	if err != nil {
		s.log.Error(c.Request.Context(), "loading admin stats", logger.Error(err))
		return nil, false
	}
	return stats, true
}

func (s *Server) dashboard(c *gin.Context) {
	stats, ok := s.stats(c)
	if !ok {
		s.renderError(c, http.StatusInternalServerError, "Failed to load statistics.")
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"Stats": stats})
}

func (s *Server) statsJSON(c *gin.Context) {
	stats, ok := s.stats(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) visitors(c *gin.Context) {
	visits, err := s.store.Recent(c.Request.Context(), visitorsPage)
	if err != nil {
		s.log.Error(c.Request.Context(), "loading visitors", logger.Error(err))
		s.renderError(c, http.StatusInternalServerError, "Failed to load visitors.")
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"Visits": visits})
}

func (s *Server) exportStats(c *gin.Context) {
	stats, ok := s.stats(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	c.JSON(http.StatusOK, stats)
}

func (s *Server) cleanup(c *gin.Context) {
	n, err := s.store.Cleanup(c.Request.Context(), s.cfg.Analytics.Retention)
	if err != nil {
		s.log.Error(c.Request.Context(), "privacy cleanup", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}
