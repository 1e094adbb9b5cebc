package server

import (
	"context"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/locale"
	"github.com/Zachkp/folio/internal/motion"
	"github.com/Zachkp/folio/internal/sections"
)

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.index)
	r.GET("/privacy", s.privacy)
	r.POST("/locale/toggle", s.toggleLocale)
	r.GET("/data/:file", s.data)
	r.GET("/api/motion", s.motionPlan)
	r.POST("/contact", s.contact)
	r.GET("/qr.png", s.qrCode)
	r.GET("/healthz", s.healthz)
}

func (s *Server) view(c *gin.Context) sections.View {
	p := sections.NewPage(s.src, s.bundle)
	p.Load(c.Request.Context())
	return p.View(langOf(c))
}

func (s *Server) index(c *gin.Context) {
	v := s.view(c)
	plan, err := json.Marshal(sections.PlanFor(v, s.opts))
	if err != nil {
		log.Printf("[server] Error encoding motion plan: %v", err)
		plan = []byte("[]")
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"view": v,
		"plan": template.JS(plan),
	})
}

func (s *Server) privacy(c *gin.Context) {
	tag := langOf(c)
	t := s.bundle.For(tag)
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"lang":  tag,
		"dir":   tag.Direction(),
		"title": t.T("privacy.title"),
		"body":  t.T("privacy.body"),
		"back":  t.T("nav.hero"),
	})
}

// toggleLocale switches the saved language and sends the visitor back to a
// local path.
func (s *Server) toggleLocale(c *gin.Context) {
	next := locale.Next(langOf(c))
	c.SetCookie(langCookie, string(next), 365*24*60*60, "/", "", false, true)

	back := c.PostForm("return")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/"
	}
	c.Redirect(http.StatusSeeOther, back)
}

// data serves the raw content collections as /data/<collection>.json.
func (s *Server) data(c *gin.Context) {
	file := c.Param("file")
	name := strings.TrimSuffix(file, ".json")
	if name == file {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	col, err := content.ParseCollection(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	body, err := s.src.Fetch(c.Request.Context(), col)
	if err != nil {
		log.Printf("[server] Error fetching %s: %v", col, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": content.LoadErr(col).Error()})
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// motionPlan exports the page's motion plan, optionally for one section.
func (s *Server) motionPlan(c *gin.Context) {
	plans := sections.PlanFor(s.view(c), s.opts)
	section := c.Query("section")
	if section == "" {
		c.JSON(http.StatusOK, plans)
		return
	}
	var out *motion.Plan
	for i := range plans {
		if plans[i].Section == section {
			out = &plans[i]
			break
		}
	}
	if out == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown section"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// contact validates and records a contact form submission. HTML clients get
// a fragment to swap into the form; JSON clients get status codes.
func (s *Server) contact(c *gin.Context) {
	tag := langOf(c)
	t := s.bundle.For(tag)

	var form sections.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var ref string
	submit := sections.SubmitFunc(func(ctx context.Context, f sections.ContactForm) (err error) {
		if err = sections.Delay(s.cfg.ContactDelay)(ctx, f); err != nil {
			return err
		}
		ref, err = s.store.SaveContact(ctx, f, string(tag))
		return err
	})

	start := time.Now()
	res := sections.SubmitContact(c.Request.Context(), submit, form)
	switch res.Status {
	case sections.StatusSuccess:
		log.Printf("[server] Contact message %s recorded in %v", ref, time.Since(start).Round(time.Millisecond))
	case sections.StatusError:
		log.Printf("[server] Error recording contact message: %v", res.Err)
	}

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		code := http.StatusOK
		switch {
		case res.Errors != nil:
			code = http.StatusUnprocessableEntity
		case res.Status == sections.StatusError:
			code = http.StatusInternalServerError
		}
		c.JSON(code, gin.H{
			"status":  res.Status,
			"ref":     ref,
			"message": res.Message(t),
			"errors":  res.Errors.Localize(t),
		})
		return
	}

	// Fragments are always 200 so the page swaps them in.
	name := "contact-error.html"
	if res.Status == sections.StatusSuccess {
		name = "contact-success.html"
	}
	c.HTML(http.StatusOK, name, gin.H{
		"message": res.Message(t),
		"errors":  res.Errors.Localize(t),
	})
}

// qrCode renders a QR code pointing at the public site URL.
func (s *Server) qrCode(c *gin.Context) {
	s.qrOnce.Do(func() {
		s.qr, s.qrErr = qrcode.Encode(s.cfg.SiteURL, qrcode.Medium, 256)
	})
	if s.qrErr != nil {
		log.Printf("[server] Error generating QR code: %v", s.qrErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", s.qr)
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
