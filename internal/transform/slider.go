// Package transform maps slider positions to 2D similarity transforms.
package transform

// Slider describes one trackbar: its label, logical range, and the raw
// default position. Trackbars only store positions in [0, RangeMax()];
// the logical value is recovered by offsetting with Min.
type Slider struct {
	Name    string
	Min     int
	Max     int
	Default int // raw position representing the slider's nominal zero
}

// RangeMax returns the trackbar's maximum raw position: Max-Min when the
// configured minimum is non-zero, else Max.
func (s Slider) RangeMax() int {
	if s.Min != 0 {
		return s.Max - s.Min
	}
	return s.Max
}

// Value converts a raw trackbar position to the signed logical value.
func (s Slider) Value(pos int) int {
	return pos + s.Min
}

// SliderSet is the visualizer's four controls.
type SliderSet struct {
	Angle      Slider
	TranslateX Slider
	TranslateY Slider
	Scale      Slider
}

// DefaultSliders returns the standard control table: angle in degrees,
// translation in pixels, scale as integer percent. Default positions put
// every control at its logical zero (angle 0, no translation, scale 1.00).
func DefaultSliders() SliderSet {
	return SliderSet{
		Angle:      Slider{Name: "Angle", Min: -180, Max: 180, Default: 180},
		TranslateX: Slider{Name: "Translate X", Min: -150, Max: 150, Default: 150},
		TranslateY: Slider{Name: "Translate Y", Min: -100, Max: 100, Default: 100},
		Scale:      Slider{Name: "Scale", Min: 20, Max: 200, Default: 80},
	}
}

// Positions holds the four raw trackbar positions read in one frame.
type Positions struct {
	Angle      int
	TranslateX int
	TranslateY int
	Scale      int
}

// DefaultPositions returns the raw positions for the logical zero point.
func (s SliderSet) DefaultPositions() Positions {
	return Positions{
		Angle:      s.Angle.Default,
		TranslateX: s.TranslateX.Default,
		TranslateY: s.TranslateY.Default,
		Scale:      s.Scale.Default,
	}
}
