// Package visualizer runs the interactive rigid/similarity transform demo.
package visualizer

import (
	"time"

	"calib-lab/internal/transform"
	"calib-lab/pkg/geometry"
)

// Keyboard bindings for the display loop.
const (
	KeyEscape     = 27
	KeyToggleMode = 'm'
	KeyNone       = -1
)

// Input supplies the loop with control state: raw slider positions and
// key presses. Sliders are polled, never pushed.
type Input interface {
	Positions() transform.Positions
	PollKey(timeout time.Duration) int
}

// Renderer turns a transform matrix and a status caption into a displayed
// frame.
type Renderer interface {
	Render(m geometry.AffineTransform, caption string) error
}

// Run drives the single-threaded display loop until the quit key is
// pressed. Each frame reads the sliders, builds the transform about
// center, renders, and polls for a key. The mode starts Rigid and flips
// on the toggle key; the state dies with the loop.
func Run(in Input, r Renderer, sliders transform.SliderSet, center geometry.Point2D, poll time.Duration) error {
	mode := transform.Rigid

	for {
		params := sliders.Params(in.Positions(), mode)
		m := params.Matrix(center)

		if err := r.Render(m, transform.Caption(mode, params.Scale)); err != nil {
			return err
		}

		switch in.PollKey(poll) {
		case KeyEscape:
			return nil
		case KeyToggleMode:
			mode = mode.Toggle()
		}
	}
}
