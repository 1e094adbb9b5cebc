package motion

import (
	"math/rand/v2"

	"github.com/Zachkp/folio/internal/page"
)

// DurationTable holds named durations in seconds.
type DurationTable struct {
	Fast   float64 `yaml:"fast" json:"fast"`
	Normal float64 `yaml:"normal" json:"normal"`
	Slow   float64 `yaml:"slow" json:"slow"`
	Slower float64 `yaml:"slower" json:"slower"`
}

// EaseTable holds named curves.
type EaseTable struct {
	Power1  string `yaml:"power1" json:"power1"`
	Power2  string `yaml:"power2" json:"power2"`
	Power3  string `yaml:"power3" json:"power3"`
	Power4  string `yaml:"power4" json:"power4"`
	Elastic string `yaml:"elastic" json:"elastic"`
	Back    string `yaml:"back" json:"back"`
	Bounce  string `yaml:"bounce" json:"bounce"`
}

// StaggerTable holds named per-sibling delays in seconds.
type StaggerTable struct {
	Fast   float64 `yaml:"fast" json:"fast"`
	Normal float64 `yaml:"normal" json:"normal"`
	Slow   float64 `yaml:"slow" json:"slow"`
}

// Config is the preset table every factory merges its defaults from.
type Config struct {
	Duration DurationTable `yaml:"duration" json:"duration"`
	Ease     EaseTable     `yaml:"ease" json:"ease"`
	Stagger  StaggerTable  `yaml:"stagger" json:"stagger"`
}

// DefaultConfig returns the stock preset table.
func DefaultConfig() Config {
	return Config{
		Duration: DurationTable{Fast: 0.3, Normal: 0.6, Slow: 1, Slower: 1.5},
		Ease: EaseTable{
			Power1:  EasePower1,
			Power2:  EasePower2,
			Power3:  EasePower3,
			Power4:  EasePower4,
			Elastic: EaseElastic,
			Back:    EaseBack,
			Bounce:  EaseBounce,
		},
		Stagger: StaggerTable{Fast: 0.1, Normal: 0.2, Slow: 0.3},
	}
}

// Defaults is the table used by the site sections.
var Defaults = DefaultConfig()

func (c Config) from(label string, targets []*page.Element, props map[page.Property]float64, dur float64, curve string, opts []Option) Descriptor {
	d := Descriptor{
		Label:    label,
		Targets:  liveTargets(targets),
		Props:    props,
		Mode:     From,
		Duration: dur,
		Ease:     curve,
	}
	return d.With(opts...)
}

// FadeInUp fades targets in while rising 50px.
func (c Config) FadeInUp(targets []*page.Element, opts ...Option) Descriptor {
	return c.from("fadeInUp", targets, map[page.Property]float64{page.Opacity: 0, page.Y: 50},
		c.Duration.Normal, c.Ease.Power2, opts)
}

// FadeInLeft fades targets in from 50px to the left.
func (c Config) FadeInLeft(targets []*page.Element, opts ...Option) Descriptor {
	return c.from("fadeInLeft", targets, map[page.Property]float64{page.Opacity: 0, page.X: -50},
		c.Duration.Normal, c.Ease.Power2, opts)
}

// FadeInRight fades targets in from 50px to the right.
func (c Config) FadeInRight(targets []*page.Element, opts ...Option) Descriptor {
	return c.from("fadeInRight", targets, map[page.Property]float64{page.Opacity: 0, page.X: 50},
		c.Duration.Normal, c.Ease.Power2, opts)
}

// ScaleIn fades targets in from 80% size with an overshoot.
func (c Config) ScaleIn(targets []*page.Element, opts ...Option) Descriptor {
	return c.from("scaleIn", targets, map[page.Property]float64{page.Opacity: 0, page.Scale: 0.8},
		c.Duration.Normal, c.Ease.Back, opts)
}

// RotateIn spins targets in from half size and 180 degrees.
func (c Config) RotateIn(targets []*page.Element, opts ...Option) Descriptor {
	return c.from("rotateIn", targets, map[page.Property]float64{page.Opacity: 0, page.Rotation: 180, page.Scale: 0.5},
		c.Duration.Slow, c.Ease.Power3, opts)
}

// StaggerFadeIn fades siblings in one after another.
func (c Config) StaggerFadeIn(targets []*page.Element, opts ...Option) Descriptor {
	d := c.from("staggerFadeIn", targets, map[page.Property]float64{page.Opacity: 0, page.Y: 30},
		c.Duration.Normal, c.Ease.Power2, nil)
	d.Stagger = c.Stagger.Normal
	return d.With(opts...)
}

// TextReveal lifts a heading in with a skew, used on hero text.
func (c Config) TextReveal(targets []*page.Element, opts ...Option) Descriptor {
	return c.from("textReveal", targets, map[page.Property]float64{page.Opacity: 0, page.Y: 100, page.SkewY: 7},
		c.Duration.Slow, c.Ease.Power4, opts)
}

// MenuEnter drops the mobile menu in from 20px above as it opens.
func (c Config) MenuEnter(target *page.Element, opts ...Option) Descriptor {
	return c.from("menuEnter", []*page.Element{target}, map[page.Property]float64{page.Opacity: 0, page.Y: -20}, c.Duration.Fast, c.Ease.Power2, opts)
}

// Parallax shifts an element against the scroll direction while it crosses
// the viewport. Pair it with ParallaxTrigger.
func (c Config) Parallax(target *page.Element, speed float64) Descriptor {
	return Descriptor{
		Label:    "parallax",
		Targets:  liveTargets([]*page.Element{target}),
		Props:    map[page.Property]float64{page.YPercent: -50 * speed},
		Mode:     To,
		Duration: 1,
		Ease:     EaseNone,
		Paused:   true,
	}
}

// Float is the gentle infinite vertical bob applied to a section container.
func (c Config) Float(target *page.Element, opts ...Option) Descriptor {
	d := Descriptor{
		Label:    "float",
		Targets:  liveTargets([]*page.Element{target}),
		Props:    map[page.Property]float64{page.Y: -10},
		Mode:     To,
		Duration: 2,
		Ease:     EasePower1Both,
		Repeat:   -1,
		Yoyo:     true,
	}
	return d.With(opts...)
}

// Bob is the scroll-hint bounce under the hero.
func (c Config) Bob(target *page.Element, opts ...Option) Descriptor {
	d := c.Float(target)
	d.Label = "bob"
	d.Props[page.Y] = 10
	d.Duration = 1
	return d.With(opts...)
}

// Drift produces one randomized wandering tween per decorative orb. Orb i
// starts i*0.2s late. rng makes the output reproducible.
func (c Config) Drift(orbs []*page.Element, rng *rand.Rand) []Descriptor {
	out := make([]Descriptor, 0, len(orbs))
	for i, orb := range liveTargets(orbs) {
		out = append(out, Descriptor{
			Label:   "drift",
			Targets: []*page.Element{orb},
			Props: map[page.Property]float64{
				page.X:     between(rng, -50, 50),
				page.Y:     between(rng, -50, 50),
				page.Scale: between(rng, 0.8, 1.2),
			},
			Mode:     To,
			Duration: between(rng, 3, 5),
			Ease:     EaseSineBoth,
			Delay:    float64(i) * 0.2,
			Repeat:   -1,
			Yoyo:     true,
		})
	}
	return out
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
