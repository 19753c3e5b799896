package server

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spandanakunder/portfolio/internal/ambient"
	"github.com/spandanakunder/portfolio/internal/contact"
	"github.com/spandanakunder/portfolio/internal/logger"
	"github.com/spandanakunder/portfolio/internal/metrics"
	"github.com/spandanakunder/portfolio/internal/page"
	"github.com/spandanakunder/portfolio/internal/viewport"
)

// Messages shown in the contact form.
const (
	msgSent     = "Thank you for your message! I'll get back to you soon."
	msgMissing  = "Please fill in: "
	msgDelivery = "Sorry, there was an error sending your message. Please try again later."
)

// contactRequest is the posted contact form.
type contactRequest struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

func (s *Server) siteRoutes(r *gin.Engine) {
	r.StaticFS("/static", page.Static())
	if s.cfg.WasmDir != "" {
		r.Static(WasmPrefix, s.cfg.WasmDir)
	}

	r.GET("/", s.index)
	r.POST("/contact", s.submitContact)
	r.GET("/privacy", s.privacy)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	if s.cfg.ResumeFile != "" {
		r.GET("/resume", s.resume)
		if p := resumeRoute(s.profile.ResumePath); p != "" && p != "/resume" {
			r.GET(p, s.resume)
		}
	}
}

// resumeRoute turns the profile's relative résumé link into a route, or ""
// when the link points off-site.
func resumeRoute(link string) string {
	if link == "" || strings.Contains(link, "://") {
		return ""
	}
	p := path.Clean("/" + link)
	if p == "/" {
		return ""
	}
	return p
}

// pageData builds the document for one request. Each request gets its own
// viewport tracker and particle field.
func (s *Server) pageData(r *http.Request, view page.ContactView) (*page.Data, error) {
	tracker := viewport.NewTracker()
	tracker.Mount(viewport.FromRequest(r))
	defer tracker.Unmount()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	field := ambient.Generate(tracker.Size(), rng)

	d, err := page.Build(s.profile, field, s.cfg.Ambient.Color, s.motion)
	if err != nil {
		return nil, err
	}
	d.Contact = view
	if s.cfg.WasmDir != "" {
		d.WasmPath = WasmPrefix
	}
	s.metrics.PageRendered(len(field.Particles))
	return d, nil
}

func (s *Server) renderPage(c *gin.Context, status int, view page.ContactView) {
	d, err := s.pageData(c.Request, view)
	if err != nil {
		s.log.Error(c.Request.Context(), "building page", logger.Error(err))
		s.renderError(c, http.StatusInternalServerError, "The page could not be rendered.")
		return
	}
	c.HTML(status, "index.html", d)
}

func (s *Server) index(c *gin.Context) {
	s.renderPage(c, http.StatusOK, page.ContactView{})
}

// submitContact answers HTMX posts with the form fragment and plain posts
// with the whole page.
func (s *Server) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, "The form could not be read.")
		return
	}

	ctx := c.Request.Context()
	form := contact.NewForm(contact.Submission{Name: req.Name, Email: req.Email, Message: req.Message})
	receipt, err := form.Submit(ctx, s.relay)

	view := page.ContactView{Values: form.Values}
	status := http.StatusOK
	switch {
	case err == nil:
		view.Notice = msgSent
		s.metrics.ContactSubmitted(metrics.OutcomeDelivered)
		s.log.Info(ctx, "contact delivered", logger.String("submission_id", receipt.ID.String()))
	case errors.Is(err, contact.ErrMissingField):
		status = http.StatusUnprocessableEntity
		view.Error = msgMissing + strings.Join(form.Values.Missing(), ", ")
		s.metrics.ContactSubmitted(metrics.OutcomeInvalid)
	default:
		status = http.StatusBadGateway
		view.Error = msgDelivery
		s.metrics.ContactSubmitted(metrics.OutcomeFailed)
		s.log.Error(ctx, "contact delivery", logger.Error(err))
	}

	if c.GetHeader("HX-Request") == "true" {
		c.HTML(status, "contact-form.html", view)
		return
	}
	s.renderPage(c, status, view)
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"Name":          s.profile.Name,
		"RetentionDays": int(s.cfg.Analytics.Retention.Hours() / 24),
	})
}

func (s *Server) resume(c *gin.Context) {
	name := filepath.Base(s.cfg.ResumeFile)
	if p := resumeRoute(s.profile.ResumePath); p != "" {
		name = path.Base(p)
	}
	c.FileAttachment(s.cfg.ResumeFile, name)
}

func (s *Server) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  http.StatusText(status),
		"Message": msg,
	})
}
