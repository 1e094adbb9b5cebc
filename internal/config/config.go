// Package config loads server settings from an optional YAML file and the
// environment.
package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/folio/internal/locale"
	"github.com/Zachkp/folio/internal/motion"
)

// Config is the full server configuration.
type Config struct {
	Port          string        `yaml:"port"`
	SiteURL       string        `yaml:"site_url"`
	DataDir       string        `yaml:"data_dir,omitempty"`
	DBPath        string        `yaml:"db_path"`
	DefaultLocale string        `yaml:"default_locale"`
	ContactDelay  time.Duration `yaml:"contact_delay"`
	Admin         AdminConfig   `yaml:"admin"`
	Motion        MotionConfig  `yaml:"motion"`
}

// AdminConfig holds dashboard credentials.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MotionConfig holds the animation tunables served to the page.
type MotionConfig struct {
	Presets motion.Config `yaml:"presets"`
	// RevealStart and RevealEnd are viewport fractions from the top.
	RevealStart float64 `yaml:"reveal_start"`
	RevealEnd   float64 `yaml:"reveal_end"`
	Strength    float64 `yaml:"magnetic_strength"`
	// MaxOffset and MaxAngle bound the pointer effects; 0 leaves them
	// unbounded.
	MaxOffset    float64 `yaml:"magnetic_max_offset"`
	TiltDivisor  float64 `yaml:"tilt_divisor"`
	MaxAngle     float64 `yaml:"tilt_max_angle"`
	ScrollOffset float64 `yaml:"scroll_offset"`
}

// Default returns the development defaults.
func Default() Config {
	t := motion.DefaultTuning()
	return Config{
		Port:          "8080",
		SiteURL:       "http://localhost:8080",
		DBPath:        "folio.db",
		DefaultLocale: string(locale.English),
		ContactDelay:  2 * time.Second,
		Admin:         AdminConfig{Username: "admin", Password: "admin123"},
		Motion: MotionConfig{
			Presets:      t.Presets,
			RevealStart:  t.Reveal.Start.Viewport,
			RevealEnd:    t.Reveal.End.Viewport,
			Strength:     t.Magnetic.Strength,
			TiltDivisor:  t.Tilt.Divisor,
			ScrollOffset: t.Scroll.Offset,
		},
	}
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty, applies environment overrides and validates the result.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	if path != "" {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	}

	err = cfg.applyEnv()
	if err != nil {
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() (err error) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Port, "PORT")
	set(&c.SiteURL, "FOLIO_SITE_URL")
	set(&c.DataDir, "FOLIO_DATA_DIR")
	set(&c.DBPath, "FOLIO_DB_PATH")
	set(&c.DefaultLocale, "FOLIO_DEFAULT_LOCALE")

	if v := os.Getenv("FOLIO_CONTACT_DELAY"); v != "" {
		c.ContactDelay, err = time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "FOLIO_CONTACT_DELAY %q", v)
		}
	}

	user, pass := os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")
	if user != "" {
		c.Admin.Username = user
	} else {
		log.Println("[config] WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if pass != "" {
		c.Admin.Password = pass
	} else {
		log.Println("[config] WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
	return nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() (err error) {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port is required")
	}
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}
	if _, err = locale.Parse(c.DefaultLocale); err != nil {
		return errors.Wrap(err, "default_locale")
	}
	if c.ContactDelay < 0 {
		return errors.Errorf("contact_delay must not be negative, got %s", c.ContactDelay)
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return errors.New("admin username and password are required")
	}

	m := c.Motion
	if m.RevealStart < 0 || m.RevealStart > 1 || m.RevealEnd < 0 || m.RevealEnd > 1 {
		return errors.Errorf("reveal_start and reveal_end must be within [0, 1], got %v and %v", m.RevealStart, m.RevealEnd)
	}
	if m.Strength < 0 {
		return errors.Errorf("magnetic_strength must not be negative, got %v", m.Strength)
	}
	if m.MaxOffset < 0 || m.MaxAngle < 0 {
		return errors.New("magnetic_max_offset and tilt_max_angle must not be negative")
	}
	if m.TiltDivisor <= 0 {
		return errors.Errorf("tilt_divisor must be positive, got %v", m.TiltDivisor)
	}
	for name, curve := range map[string]string{
		"power1": m.Presets.Ease.Power1, "power2": m.Presets.Ease.Power2,
		"power3": m.Presets.Ease.Power3, "power4": m.Presets.Ease.Power4,
		"elastic": m.Presets.Ease.Elastic, "back": m.Presets.Ease.Back,
		"bounce": m.Presets.Ease.Bounce,
	} {
		if !motion.KnownEase(curve) {
			return errors.Errorf("presets.ease.%s: unknown curve %q", name, curve)
		}
	}
	return nil
}

// CheckContentURL rejects a remote content URL the server cannot use: one
// that is not http(s), or one that points back at this server, which would
// make every page load fetch from itself.
func (c *Config) CheckContentURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, "content url %q", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("content url %q must be an absolute http(s) url", raw)
	}
	if site, err := url.Parse(c.SiteURL); err == nil && site.Host != "" && hostPort(site) == hostPort(u) {
		return errors.Errorf("content url %q points at this site", raw)
	}
	if isLoopback(u.Hostname()) && urlPort(u) == c.Port {
		return errors.Errorf("content url %q points at this server's listen address :%s", raw, c.Port)
	}
	return nil
}

func urlPort(u *url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}
	if u.Scheme == "https" {
		return "443"
	}
	return "80"
}

func hostPort(u *url.URL) string {
	return strings.ToLower(u.Hostname()) + ":" + urlPort(u)
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && (ip.IsLoopback() || ip.IsUnspecified())
}

// Locale returns the parsed default locale. Validate has already checked it.
func (c *Config) Locale() locale.Tag {
	t, err := locale.Parse(c.DefaultLocale)
	if err != nil {
		return locale.English
	}
	return t
}

// Tuning converts the motion settings into the motion layer's form.
func (c *Config) Tuning() motion.Tuning {
	t := motion.DefaultTuning()
	m := c.Motion
	t.Presets = m.Presets
	t.Reveal.Start.Viewport = m.RevealStart
	t.Reveal.End.Viewport = m.RevealEnd
	t.Magnetic.Strength = m.Strength
	t.Magnetic.MaxOffset = m.MaxOffset
	t.Tilt.Divisor = m.TiltDivisor
	t.Tilt.MaxAngle = m.MaxAngle
	t.Scroll.Offset = m.ScrollOffset
	return t
}
