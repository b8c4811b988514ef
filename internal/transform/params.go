package transform

import (
	"fmt"

	"calib-lab/pkg/geometry"
)

// Mode selects which family of transforms the sliders drive.
type Mode int

const (
	// Rigid locks scale at 1.0; only rotation and translation apply.
	Rigid Mode = iota
	// Similarity adds uniform scale from the Scale slider.
	Similarity
)

// Toggle flips between Rigid and Similarity.
func (m Mode) Toggle() Mode {
	if m == Rigid {
		return Similarity
	}
	return Rigid
}

func (m Mode) String() string {
	if m == Rigid {
		return "Rigid"
	}
	return "Similarity"
}

// Params are the logical transform parameters for one frame.
type Params struct {
	AngleDeg float64
	TX       float64
	TY       float64
	Scale    float64
}

// Params converts raw trackbar positions to logical parameters. In Rigid
// mode the scale slider is ignored and scale is exactly 1.0; in
// Similarity mode the slider's percent value drives it.
func (s SliderSet) Params(pos Positions, mode Mode) Params {
	p := Params{
		AngleDeg: float64(s.Angle.Value(pos.Angle)),
		TX:       float64(s.TranslateX.Value(pos.TranslateX)),
		TY:       float64(s.TranslateY.Value(pos.TranslateY)),
		Scale:    1.0,
	}
	if mode == Similarity {
		p.Scale = float64(s.Scale.Value(pos.Scale)) / 100.0
	}
	return p
}

// Matrix builds the 2x3 transform: rotation and scale about center, then
// the translation added directly to the matrix's translation terms. The
// translation is therefore in destination-pixel space and is not rotated
// with the image.
func (p Params) Matrix(center geometry.Point2D) geometry.AffineTransform {
	m := geometry.SimilarityAbout(center, p.AngleDeg, p.Scale)
	m.TX += p.TX
	m.TY += p.TY
	return m
}

// Caption describes the current mode for the on-frame status line.
func Caption(mode Mode, scale float64) string {
	if mode == Similarity {
		return fmt.Sprintf("Mode: Similarity (Scale: %.2fx) (Press 'm' to switch)", scale)
	}
	return "Mode: Rigid (Press 'm' to switch)"
}
