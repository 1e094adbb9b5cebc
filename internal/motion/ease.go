package motion

import (
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// Named curves used by the presets.
const (
	EaseNone       = "none"
	EasePower1     = "power1.out"
	EasePower2     = "power2.out"
	EasePower3     = "power3.out"
	EasePower4     = "power4.out"
	EasePower1Both = "power1.inOut"
	EaseSineBoth   = "sine.inOut"
	EaseElastic    = "elastic.out(1, 0.5)"
	EaseBack       = "back.out(1.7)"
	EaseBounce     = "bounce.out"
)

// power1..4 follow the quad..quint progression.
var namedEases = map[string]ease.TweenFunc{
	"none":          ease.Linear,
	"linear":        ease.Linear,
	"power1.in":     ease.InQuad,
	"power1.out":    ease.OutQuad,
	"power1.inOut":  ease.InOutQuad,
	"power2.in":     ease.InCubic,
	"power2.out":    ease.OutCubic,
	"power2.inOut":  ease.InOutCubic,
	"power3.in":     ease.InQuart,
	"power3.out":    ease.OutQuart,
	"power3.inOut":  ease.InOutQuart,
	"power4.in":     ease.InQuint,
	"power4.out":    ease.OutQuint,
	"power4.inOut":  ease.InOutQuint,
	"sine.in":       ease.InSine,
	"sine.out":      ease.OutSine,
	"sine.inOut":    ease.InOutSine,
	"expo.in":       ease.InExpo,
	"expo.out":      ease.OutExpo,
	"expo.inOut":    ease.InOutExpo,
	"circ.in":       ease.InCirc,
	"circ.out":      ease.OutCirc,
	"circ.inOut":    ease.InOutCirc,
	"back.in":       ease.InBack,
	"back.out":      ease.OutBack,
	"back.inOut":    ease.InOutBack,
	"elastic.in":    ease.InElastic,
	"elastic.out":   ease.OutElastic,
	"elastic.inOut": ease.InOutElastic,
	"bounce.in":     ease.InBounce,
	"bounce.out":    ease.OutBounce,
	"bounce.inOut":  ease.InOutBounce,
}

// Ease resolves a curve name such as "power2.out", "back.out(1.7)" or
// "elastic.out(1, 0.5)" to a tween function. Unknown names fall back to
// power2.out.
func Ease(name string) ease.TweenFunc {
	name = strings.TrimSpace(name)
	base, args := splitEaseArgs(name)
	switch base {
	case "back.out":
		if len(args) == 1 {
			return backOut(float32(args[0]))
		}
	case "elastic.out":
		if len(args) == 2 {
			return elasticOut(float32(args[0]), float32(args[1]))
		}
	}
	if fn, ok := namedEases[base]; ok {
		return fn
	}
	return ease.OutCubic
}

// KnownEase reports whether name resolves without falling back.
func KnownEase(name string) bool {
	base, _ := splitEaseArgs(strings.TrimSpace(name))
	_, ok := namedEases[base]
	return ok
}

func splitEaseArgs(name string) (string, []float64) {
	open := strings.IndexByte(name, '(')
	if open < 0 || !strings.HasSuffix(name, ")") {
		return name, nil
	}
	var args []float64
	for _, part := range strings.Split(name[open+1:len(name)-1], ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return name[:open], nil
		}
		args = append(args, v)
	}
	return name[:open], args
}

// backOut overshoots by s before settling.
func backOut(s float32) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		t = t/d - 1
		return c*(t*t*((s+1)*t+s)+1) + b
	}
}

// elasticOut springs past the target with the given amplitude (>= 1) and a
// period expressed as a fraction of the duration.
func elasticOut(amplitude, period float32) ease.TweenFunc {
	if amplitude < 1 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	s := period / (2 * math.Pi) * float32(math.Asin(float64(1/amplitude)))
	return func(t, b, c, d float32) float32 {
		if t <= 0 {
			return b
		}
		p := t / d
		if p >= 1 {
			return b + c
		}
		v := float64(amplitude) * math.Pow(2, -10*float64(p)) *
			math.Sin(float64(p-s)*(2*math.Pi)/float64(period))
		return b + c*float32(v+1)
	}
}
