package motion

import (
	"testing"

	"github.com/Zachkp/folio/internal/page"
)

func cascade(els []*page.Element) *Timeline {
	tl := NewTimeline("hero", 0.2)
	tl.Add(Defaults.FadeInUp(els[:1], Duration(0.8), Label("greeting")), AfterPrev(0))
	tl.Add(Defaults.FadeInUp(els[1:2], Duration(1), Label("name")), AfterPrev(-0.4))
	tl.Add(Defaults.FadeInUp(els[2:3], Duration(0.8), Label("role")), AfterPrev(-0.5))
	tl.Add(Defaults.FadeInUp(els[3:4], Duration(0.6), Label("subtitle")), AfterPrev(-0.4))
	return tl
}

func fourBoxes() []*page.Element {
	return []*page.Element{newBox("a"), newBox("b"), newBox("c"), newBox("d")}
}

func TestTimelineStepsOverlap(t *testing.T) {
	sched := cascade(fourBoxes()).Schedule()
	if len(sched) != 4 {
		t.Fatalf("len = %d, want 4", len(sched))
	}

	wantStart := []float64{0.2, 0.6, 1.1, 1.5}
	for i, e := range sched {
		if !near(e.Start, wantStart[i]) {
			t.Errorf("%s start = %f, want %f", e.Label, e.Start, wantStart[i])
		}
	}
	for i := 1; i < len(sched); i++ {
		prev := sched[i-1]
		if !(sched[i].Start < prev.Start+prev.Duration) {
			t.Errorf("step %d starts at %f, not before step %d ends at %f",
				i, sched[i].Start, i-1, prev.Start+prev.Duration)
		}
		if sched[i].Start <= prev.Start {
			t.Errorf("step %d starts before step %d", i, i-1)
		}
	}
}

func TestTimelinePositions(t *testing.T) {
	el := newBox("a")
	step := Descriptor{Targets: []*page.Element{el}, Duration: 1}

	tl := NewTimeline("mixed", 0)
	tl.Add(step, AfterPrev(0))
	tl.Add(step, WithPrev(0.25))
	tl.Add(step, At(3))
	tl.Add(step, AfterPrev(0.5))
	tl.Add(step, AfterPrev(-10))

	want := []float64{0, 0.25, 3, 4.5, 0}
	for i, e := range tl.Schedule() {
		if !near(e.Start, want[i]) {
			t.Errorf("step %d start = %f, want %f", i, e.Start, want[i])
		}
	}
	if !near(tl.Duration(), 5.5) {
		t.Errorf("duration = %f, want 5.5", tl.Duration())
	}
}

func TestTimelineClampsInfiniteSteps(t *testing.T) {
	tl := NewTimeline("t", 0)
	tl.Add(Defaults.Float(newBox("a")), AfterPrev(0))
	if d := tl.Duration(); !near(d, 2) {
		t.Errorf("duration = %f, want one 2s iteration", d)
	}
}

func TestTimelinePlay(t *testing.T) {
	els := fourBoxes()
	k := NewTicker()
	run := cascade(els).Play(k)

	if len(run.Tweens()) != 4 {
		t.Fatalf("tweens = %d, want 4", len(run.Tweens()))
	}
	for i, el := range els {
		if el.Transform.Opacity != 0 {
			t.Errorf("element %d visible before its step started", i)
		}
	}

	k.Advance(0.5)
	if els[0].Transform.Opacity == 0 {
		t.Error("first step should be under way at 0.5s")
	}
	if els[3].Transform.Opacity != 0 {
		t.Error("last step should not have started at 0.5s")
	}

	for i := 0; i < 10 && !run.Done(); i++ {
		k.Advance(0.5)
	}
	if !run.Done() {
		t.Fatal("timeline did not finish")
	}
	for i, el := range els {
		if !el.Transform.IsBaseline() {
			t.Errorf("element %d = %+v, want baseline", i, el.Transform)
		}
	}
}

func TestTimelineRunDetach(t *testing.T) {
	els := fourBoxes()
	k := NewTicker()
	run := cascade(els).Play(k)
	k.Advance(0.5)

	run.Detach()
	run.Detach()
	var nilRun *TimelineRun
	nilRun.Detach()

	for i, el := range els {
		if !el.Transform.IsBaseline() {
			t.Errorf("element %d = %+v, want baseline after detach", i, el.Transform)
		}
	}
	k.Advance(0.5)
	if k.Tracked() != 0 {
		t.Errorf("tracked = %d, want 0", k.Tracked())
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"", AfterPrev(0), false},
		{"-=0.4", AfterPrev(-0.4), false},
		{"+=0.2", AfterPrev(0.2), false},
		{"<", WithPrev(0), false},
		{"<0.1", WithPrev(0.1), false},
		{"1.5", At(1.5), false},
		{"-=x", Position{}, true},
		{"<x", Position{}, true},
		{"soon", Position{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePosition(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePosition(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestTimelineSpec(t *testing.T) {
	els := fourBoxes()
	spec := cascade(els).Spec()
	if spec.Label != "hero" || len(spec.Steps) != 4 {
		t.Fatalf("spec = %+v", spec)
	}
	if spec.Steps[1].Position != "-=0.4" {
		t.Errorf("position = %q, want -=0.4", spec.Steps[1].Position)
	}
	if spec.Steps[0].Tween.Selector != "#a" || spec.Steps[0].Tween.Props["y"] != 50 {
		t.Errorf("first step = %+v", spec.Steps[0].Tween)
	}
}
