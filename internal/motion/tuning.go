package motion

// Tuning gathers every adjustable motion parameter the site sections use.
type Tuning struct {
	Presets  Config
	Reveal   Trigger
	Magnetic MagneticOptions
	Tilt     TiltOptions
	Scroll   ScrollOptions
}

// DefaultTuning returns the stock site motion.
func DefaultTuning() Tuning {
	return Tuning{
		Presets:  DefaultConfig(),
		Reveal:   RevealTrigger(),
		Magnetic: DefaultMagnetic(),
		Tilt:     DefaultTilt(),
		Scroll:   DefaultScroll(),
	}
}
