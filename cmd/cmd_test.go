package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/folio/internal/motion"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		timelineSection, timelineFormat, timelineLang, timelineSeed = "", "yaml", "", 1
		contentURL = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTimelineJSON(t *testing.T) {
	out, err := run(t, "timeline", "--section", "hero", "--format", "json")
	if err != nil {
		t.Fatalf("timeline: %v\n%s", err, out)
	}
	var plan motion.Plan
	if err := json.Unmarshal([]byte(out), &plan); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if plan.Section != "hero" || len(plan.Timelines) != 1 || len(plan.Timelines[0].Steps) != 5 {
		t.Errorf("plan = %+v", plan)
	}
}

func TestTimelineYAML(t *testing.T) {
	out, err := run(t, "timeline", "--lang", "ar")
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	var plans []motion.Plan
	if err := yaml.Unmarshal([]byte(out), &plans); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plans) != 6 {
		t.Errorf("got %d plans, want 6", len(plans))
	}
}

func TestTimelineErrors(t *testing.T) {
	if _, err := run(t, "timeline", "--section", "education"); err == nil {
		t.Error("unknown section accepted")
	}
	if _, err := run(t, "timeline", "--format", "toml"); err == nil {
		t.Error("unknown format accepted")
	}
	if _, err := run(t, "timeline", "--lang", "fr"); err == nil {
		t.Error("unsupported language accepted")
	}
}

func TestContentCheck(t *testing.T) {
	out, err := run(t, "content", "check")
	if err != nil {
		t.Fatalf("content check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "content ok") {
		t.Errorf("output = %q", out)
	}
}

func TestServeRejectsSelfContentURL(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("FOLIO_SITE_URL", "")
	_, err := run(t, "serve", "--content-url", "http://localhost:8080")
	if err == nil || !strings.Contains(err.Error(), "points at this") {
		t.Errorf("Expected self-referencing content url to be rejected, got %v", err)
	}
}
