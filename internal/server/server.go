// Package server is the site's HTTP surface: the rendered page, its data and
// motion feeds, the contact stub and the admin dashboard.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/locale"
	"github.com/Zachkp/folio/internal/sections"
)

//go:embed templates/*.html
var templatesFS embed.FS

// staticFS holds the page script that replays the motion plan in the browser.
//
//go:embed static
var staticFS embed.FS

const (
	langCookie  = "lang"
	langKey     = "locale"
	adminCookie = "admin_token"
)

// Server wires the router to the content feed and the store.
type Server struct {
	cfg    config.Config
	store  *Store
	src    content.Source
	bundle *locale.Bundle
	opts   sections.Options
	router *gin.Engine

	adminToken string

	qrOnce sync.Once
	qr     []byte
	qrErr  error

	// wg tracks background visitor writes.
	wg sync.WaitGroup

	cleanupEvery time.Duration
}

// New builds a server. src is where page content comes from.
func New(cfg config.Config, store *Store, src content.Source) (s *Server, err error) {
	s = &Server{
		cfg:          cfg,
		store:        store,
		src:          src,
		bundle:       locale.DefaultBundle(),
		opts:         sections.Options{Tuning: cfg.Tuning(), Seed: 1},
		adminToken:   randomHex(32),
		cleanupEvery: 24 * time.Hour,
	}

	var tmpl *template.Template
	tmpl, err = template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		err = errors.Wrap(err, "parse templates")
		return nil, err
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, errors.Wrap(err, "static files")
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))
	r.Use(s.localeMiddleware(), s.visitorTrackingMiddleware())
	s.routes(r)
	s.adminRoutes(r)
	s.router = r

	log.Printf("[admin] Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("[admin] Admin token (dev only): %s", s.adminToken)
	}
	log.Println("[admin] Privacy: Visitor tracking enabled with hashed IP addresses")
	log.Printf("[locale] Loaded %s", s.bundle)
	return s, nil
}

var templateFuncs = template.FuncMap{
	"percent": func(f float64) string { return fmt.Sprintf("%.1f%%", f*100) },
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is done, then shuts down gracefully. Old visitor
// records are purged at start and daily after that.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The cleanup loop is joined on every return path.
	loopCtx, stopLoop := context.WithCancel(ctx)
	var loops errgroup.Group
	loops.Go(func() error {
		s.cleanupLoop(loopCtx, s.cleanupEvery)
		return nil
	})
	defer func() {
		stopLoop()
		loops.Wait()
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] Listening on :%s", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	log.Println("[server] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Wait()
	return errors.Wrap(err, "shutdown")
}

// Wait blocks until background visitor writes have finished.
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) cleanupLoop(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		if _, err := s.store.CleanupOldVisits(ctx); err != nil {
			log.Printf("[admin] Error cleaning up old visitor data: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// localeMiddleware picks the request language from ?lang, then the lang
// cookie, then Accept-Language.
func (s *Server) localeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(langCookie)
		tag := locale.Resolve(c.Query("lang"), cookie, c.GetHeader("Accept-Language"), s.cfg.Locale())
		c.Set(langKey, tag)
		c.Next()
	}
}

func langOf(c *gin.Context) locale.Tag {
	if v, ok := c.Get(langKey); ok {
		if tag, ok := v.(locale.Tag); ok {
			return tag
		}
	}
	return locale.English
}

// untracked lists path prefixes that are not page views.
var untracked = []string{"/static/", "/images/", "/admin", "/favicon", "/privacy", "/healthz", "/qr.png", "/api/", "/data/", "/locale/"}

// visitorTrackingMiddleware records page views with a hashed IP. Requests
// sending Do Not Track are skipped.
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		for _, p := range untracked {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		ip, ua, lang := c.ClientIP(), c.GetHeader("User-Agent"), string(langOf(c))
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := s.store.RecordVisit(context.Background(), ip, ua, path, lang); err != nil {
				log.Printf("[admin] Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}
