package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Zachkp/folio/internal/locale"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "FOLIO_SITE_URL", "FOLIO_DATA_DIR", "FOLIO_DB_PATH",
		"FOLIO_DEFAULT_LOCALE", "FOLIO_CONTACT_DELAY", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Port)
	}
	if cfg.ContactDelay != 2*time.Second {
		t.Errorf("Expected contact delay 2s, got %s", cfg.ContactDelay)
	}
	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "admin123" {
		t.Errorf("Expected dev admin credentials, got %s/%s", cfg.Admin.Username, cfg.Admin.Password)
	}
	if cfg.Locale() != locale.English {
		t.Errorf("Expected default locale en, got %s", cfg.Locale())
	}
	tun := cfg.Tuning()
	if tun.Reveal.Start.Viewport != 0.8 || tun.Reveal.End.Viewport != 0.2 {
		t.Errorf("Expected reveal 0.8/0.2, got %v/%v", tun.Reveal.Start.Viewport, tun.Reveal.End.Viewport)
	}
	if tun.Magnetic.Strength != 0.3 {
		t.Errorf("Expected magnetic strength 0.3, got %v", tun.Magnetic.Strength)
	}
	if tun.Scroll.Offset != 80 {
		t.Errorf("Expected scroll offset 80, got %v", tun.Scroll.Offset)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	content := `port: "9090"
default_locale: ar
contact_delay: 500ms
motion:
  reveal_start: 0.9
  reveal_end: 0.1
  magnetic_strength: 0.5
  magnetic_max_offset: 40
  tilt_divisor: 10
  tilt_max_angle: 15
  scroll_offset: 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.Locale() != locale.Arabic {
		t.Errorf("Expected locale ar, got %s", cfg.Locale())
	}
	if cfg.ContactDelay != 500*time.Millisecond {
		t.Errorf("Expected contact delay 500ms, got %s", cfg.ContactDelay)
	}
	// Fields absent from the file keep their defaults.
	if cfg.DBPath != "folio.db" {
		t.Errorf("Expected default db path, got %s", cfg.DBPath)
	}
	if cfg.Motion.Presets.Duration.Normal != 0.6 {
		t.Errorf("Expected default normal duration 0.6, got %v", cfg.Motion.Presets.Duration.Normal)
	}

	tun := cfg.Tuning()
	if tun.Magnetic.MaxOffset != 40 || tun.Tilt.MaxAngle != 15 || tun.Tilt.Divisor != 10 {
		t.Errorf("Unexpected pointer tuning: %+v %+v", tun.Magnetic, tun.Tilt)
	}
	if tun.Reveal.Start.Viewport != 0.9 {
		t.Errorf("Expected reveal start 0.9, got %v", tun.Reveal.Start.Viewport)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("FOLIO_CONTACT_DELAY", "0s")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("Expected port 7070, got %s", cfg.Port)
	}
	if cfg.ContactDelay != 0 {
		t.Errorf("Expected zero contact delay, got %s", cfg.ContactDelay)
	}
	if cfg.Admin.Username != "owner" || cfg.Admin.Password != "s3cret" {
		t.Errorf("Expected env credentials, got %s/%s", cfg.Admin.Username, cfg.Admin.Password)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("port: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for malformed yaml")
	}

	t.Setenv("FOLIO_CONTACT_DELAY", "soon")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for bad FOLIO_CONTACT_DELAY")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty port", func(c *Config) { c.Port = " " }, "port"},
		{"empty db", func(c *Config) { c.DBPath = "" }, "db_path"},
		{"unsupported locale", func(c *Config) { c.DefaultLocale = "fr" }, "default_locale"},
		{"regional locale", func(c *Config) { c.DefaultLocale = "ar-EG" }, ""},
		{"negative delay", func(c *Config) { c.ContactDelay = -time.Second }, "contact_delay"},
		{"missing admin", func(c *Config) { c.Admin.Password = "" }, "admin"},
		{"reveal out of range", func(c *Config) { c.Motion.RevealStart = 1.5 }, "reveal_start"},
		{"negative strength", func(c *Config) { c.Motion.Strength = -1 }, "magnetic_strength"},
		{"negative max angle", func(c *Config) { c.Motion.MaxAngle = -2 }, "tilt_max_angle"},
		{"zero divisor", func(c *Config) { c.Motion.TiltDivisor = 0 }, "tilt_divisor"},
		{"unknown ease", func(c *Config) { c.Motion.Presets.Ease.Back = "wobble" }, "presets.ease.back"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCheckContentURL(t *testing.T) {
	cfg := Default()
	cfg.SiteURL = "https://folio.example.com"

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://cdn.example.com", false},
		{"http://localhost:9090", false},
		{"http://127.0.0.1:8081/", false},
		{"http://localhost:8080", true},
		{"http://127.0.0.1:8080/", true},
		{"http://[::1]:8080", true},
		{"http://0.0.0.0:8080", true},
		{"https://folio.example.com", true},
		{"https://FOLIO.example.com:443/", true},
		{"ftp://cdn.example.com", true},
		{"cdn.example.com", true},
		{"://bad", true},
	}
	for _, tt := range tests {
		err := cfg.CheckContentURL(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckContentURL(%q) = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}

	cfg.Port = "80"
	if err := cfg.CheckContentURL("http://localhost"); err == nil {
		t.Error("Expected a portless localhost url to match port 80")
	}
}
