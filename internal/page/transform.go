package page

// Property names one animatable visual channel of an element.
type Property string

// Animatable properties. Names match the keys the client runtime expects.
const (
	Opacity  Property = "opacity"
	X        Property = "x"
	Y        Property = "y"
	YPercent Property = "yPercent"
	Scale    Property = "scale"
	Rotation Property = "rotation"
	RotateX  Property = "rotateX"
	RotateY  Property = "rotateY"
	SkewY    Property = "skewY"
)

// Properties lists every animatable property in a stable order.
var Properties = []Property{Opacity, X, Y, YPercent, Scale, Rotation, RotateX, RotateY, SkewY}

// Transform is the visual state an animation writes to. The zero value is not
// the resting state; use Baseline.
type Transform struct {
	Opacity  float64 `json:"opacity"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	YPercent float64 `json:"yPercent"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
	RotateX  float64 `json:"rotateX"`
	RotateY  float64 `json:"rotateY"`
	SkewY    float64 `json:"skewY"`

	// Perspective is the CSS transform perspective in pixels, 0 for none.
	// It is a static setting, not interpolated.
	Perspective float64 `json:"perspective,omitempty"`
}

// Baseline returns the fully visible, untransformed state.
func Baseline() Transform {
	return Transform{Opacity: 1, Scale: 1}
}

// IsBaseline reports whether t is visually identical to Baseline, ignoring
// perspective.
func (t Transform) IsBaseline() bool {
	t.Perspective = 0
	return t == Baseline()
}

// Get returns the value of p. Unknown properties read as 0.
func (t *Transform) Get(p Property) float64 {
	if f := t.field(p); f != nil {
		return *f
	}
	return 0
}

// Set writes v to p. Unknown properties are ignored.
func (t *Transform) Set(p Property, v float64) {
	if f := t.field(p); f != nil {
		*f = v
	}
}

func (t *Transform) field(p Property) *float64 {
	switch p {
	case Opacity:
		return &t.Opacity
	case X:
		return &t.X
	case Y:
		return &t.Y
	case YPercent:
		return &t.YPercent
	case Scale:
		return &t.Scale
	case Rotation:
		return &t.Rotation
	case RotateX:
		return &t.RotateX
	case RotateY:
		return &t.RotateY
	case SkewY:
		return &t.SkewY
	}
	return nil
}

// BaselineValue returns the resting value of p.
func BaselineValue(p Property) float64 {
	b := Baseline()
	return b.Get(p)
}
