package motion

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Zachkp/folio/internal/page"
)

func TestDefaultTables(t *testing.T) {
	c := DefaultConfig()
	if c.Duration != (DurationTable{Fast: 0.3, Normal: 0.6, Slow: 1, Slower: 1.5}) {
		t.Errorf("durations = %+v", c.Duration)
	}
	if c.Stagger != (StaggerTable{Fast: 0.1, Normal: 0.2, Slow: 0.3}) {
		t.Errorf("staggers = %+v", c.Stagger)
	}
	if c.Ease.Elastic != "elastic.out(1, 0.5)" || c.Ease.Back != "back.out(1.7)" {
		t.Errorf("eases = %+v", c.Ease)
	}
}

func TestPresetShapes(t *testing.T) {
	el := newBox("a")
	els := []*page.Element{el}
	tests := []struct {
		name  string
		d     Descriptor
		props map[page.Property]float64
		dur   float64
		ease  string
	}{
		{"fadeInUp", Defaults.FadeInUp(els), map[page.Property]float64{page.Opacity: 0, page.Y: 50}, 0.6, EasePower2},
		{"fadeInLeft", Defaults.FadeInLeft(els), map[page.Property]float64{page.Opacity: 0, page.X: -50}, 0.6, EasePower2},
		{"fadeInRight", Defaults.FadeInRight(els), map[page.Property]float64{page.Opacity: 0, page.X: 50}, 0.6, EasePower2},
		{"scaleIn", Defaults.ScaleIn(els), map[page.Property]float64{page.Opacity: 0, page.Scale: 0.8}, 0.6, EaseBack},
		{"rotateIn", Defaults.RotateIn(els), map[page.Property]float64{page.Opacity: 0, page.Rotation: 180, page.Scale: 0.5}, 1, EasePower3},
		{"menuEnter", Defaults.MenuEnter(el), map[page.Property]float64{page.Opacity: 0, page.Y: -20}, 0.3, EasePower2},
		{"textReveal", Defaults.TextReveal(els), map[page.Property]float64{page.Opacity: 0, page.Y: 100, page.SkewY: 7}, 1, EasePower4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.d.Mode != From {
				t.Errorf("mode = %v, want from", tt.d.Mode)
			}
			if tt.d.Duration != tt.dur || tt.d.Ease != tt.ease {
				t.Errorf("duration/ease = %v/%q, want %v/%q", tt.d.Duration, tt.d.Ease, tt.dur, tt.ease)
			}
			if len(tt.d.Props) != len(tt.props) {
				t.Fatalf("props = %v, want %v", tt.d.Props, tt.props)
			}
			for p, v := range tt.props {
				if tt.d.Props[p] != v {
					t.Errorf("%s = %v, want %v", p, tt.d.Props[p], v)
				}
			}
		})
	}
}

func TestWithLeavesOriginalUntouched(t *testing.T) {
	d := Defaults.FadeInUp([]*page.Element{newBox("a")})
	d2 := d.With(Prop(page.Y, 80), Duration(2), Label("custom"))

	if d.Props[page.Y] != 50 || d.Duration != 0.6 || d.Label != "fadeInUp" {
		t.Errorf("original changed: %+v", d)
	}
	if d2.Props[page.Y] != 80 || d2.Duration != 2 || d2.Label != "custom" {
		t.Errorf("copy = %+v", d2)
	}
}

func TestPresetsDropMissingTargets(t *testing.T) {
	gone := newBox("gone")
	gone.Remove()
	d := Defaults.FadeInUp([]*page.Element{nil, gone, newBox("a")})
	if len(d.Targets) != 1 {
		t.Errorf("targets = %d, want 1", len(d.Targets))
	}
}

func TestSpan(t *testing.T) {
	els := []*page.Element{newBox("a"), newBox("b"), newBox("c")}
	d := Defaults.StaggerFadeIn(els, Delay(0.5))
	if !near(d.Span(), 1.0) {
		t.Errorf("span = %f, want 1.0", d.Span())
	}
	if !near(d.Total(), 1.5) {
		t.Errorf("total = %f, want 1.5", d.Total())
	}
	if !math.IsInf(Defaults.Float(els[0]).Span(), 1) {
		t.Error("float should repeat forever")
	}
}

func TestParallaxAndIdleMotion(t *testing.T) {
	el := newBox("bg")
	p := Defaults.Parallax(el, 0.5)
	if p.Props[page.YPercent] != -25 || p.Mode != To || !p.Paused {
		t.Errorf("parallax = %+v", p)
	}

	f := Defaults.Float(el)
	b := Defaults.Bob(el)
	if f.Props[page.Y] != -10 || f.Duration != 2 || !f.Yoyo || f.Repeat != -1 {
		t.Errorf("float = %+v", f)
	}
	if b.Props[page.Y] != 10 || b.Duration != 1 {
		t.Errorf("bob = %+v", b)
	}
}

func TestDriftIsSeededAndBounded(t *testing.T) {
	orbs := []*page.Element{newBox("o1"), newBox("o2"), newBox("o3")}
	a := Defaults.Drift(orbs, rand.New(rand.NewPCG(1, 2)))
	b := Defaults.Drift(orbs, rand.New(rand.NewPCG(1, 2)))

	if len(a) != 3 {
		t.Fatalf("len = %d, want 3", len(a))
	}
	for i := range a {
		if a[i].Duration != b[i].Duration || a[i].Props[page.X] != b[i].Props[page.X] {
			t.Errorf("orb %d differs between equal seeds", i)
		}
		if d := a[i].Duration; d < 3 || d > 5 {
			t.Errorf("orb %d duration = %f", i, d)
		}
		if s := a[i].Props[page.Scale]; s < 0.8 || s > 1.2 {
			t.Errorf("orb %d scale = %f", i, s)
		}
		if x := a[i].Props[page.X]; math.Abs(x) > 50 {
			t.Errorf("orb %d x = %f", i, x)
		}
		if !near(a[i].Delay, float64(i)*0.2) {
			t.Errorf("orb %d delay = %f", i, a[i].Delay)
		}
	}
}

func TestSelect(t *testing.T) {
	doc := page.NewDocument(page.Viewport{Width: 800, Height: 600})
	doc.Append(page.NewElement("hero", "section", page.Rect{}))
	doc.Append(page.NewElement("", "card", page.Rect{}))
	doc.Append(page.NewElement("", "card", page.Rect{}))

	if got := Select(doc, "#hero"); len(got) != 1 {
		t.Errorf("#hero = %d elements, want 1", len(got))
	}
	if got := Select(doc, ".card"); len(got) != 2 {
		t.Errorf(".card = %d elements, want 2", len(got))
	}
	if got := Select(doc, "#missing"); len(got) != 0 {
		t.Errorf("#missing = %d elements, want 0", len(got))
	}
	if got := Select(nil, ".card"); got != nil {
		t.Error("nil document should select nothing")
	}
}
