package visualizer

import (
	"image"
	"image/color"
	"time"

	"calib-lab/internal/config"
	"calib-lab/internal/transform"
	"calib-lab/pkg/geometry"

	"gocv.io/x/gocv"
)

// UI is the gocv-backed window with its four trackbars. It implements
// both Input and Renderer for Run.
type UI struct {
	window *gocv.Window
	angle  *gocv.Trackbar
	tx     *gocv.Trackbar
	ty     *gocv.Trackbar
	scale  *gocv.Trackbar

	src    gocv.Mat
	border color.RGBA
}

// NewUI opens the window and registers the trackbars at their default
// positions. The source Mat is borrowed, not copied; the caller keeps
// ownership.
func NewUI(cfg config.Visualizer, src gocv.Mat) *UI {
	w := gocv.NewWindow(cfg.WindowTitle)

	newTrackbar := func(s transform.Slider) *gocv.Trackbar {
		t := w.CreateTrackbar(s.Name, s.RangeMax())
		t.SetPos(s.Default)
		return t
	}

	return &UI{
		window: w,
		angle:  newTrackbar(cfg.Sliders.Angle),
		tx:     newTrackbar(cfg.Sliders.TranslateX),
		ty:     newTrackbar(cfg.Sliders.TranslateY),
		scale:  newTrackbar(cfg.Sliders.Scale),
		src:    src,
		border: cfg.Background.RGBA(),
	}
}

// Positions reads the four raw trackbar positions.
func (u *UI) Positions() transform.Positions {
	return transform.Positions{
		Angle:      u.angle.GetPos(),
		TranslateX: u.tx.GetPos(),
		TranslateY: u.ty.GetPos(),
		Scale:      u.scale.GetPos(),
	}
}

// PollKey waits up to timeout for a key press, returning KeyNone when
// nothing was pressed. The wait also services the window event queue.
func (u *UI) PollKey(timeout time.Duration) int {
	return u.window.WaitKey(int(timeout.Milliseconds()))
}

// Render warps the source image, draws the status caption, and shows the
// frame. The output has the source dimensions; uncovered border area is
// filled with the configured background.
func (u *UI) Render(m geometry.AffineTransform, caption string) error {
	frame := transform.Warp(u.src, m, u.src.Cols(), u.src.Rows(), u.border)
	defer frame.Close()

	white := color.RGBA{R: 255, G: 255, B: 255}
	gocv.PutTextWithParams(&frame, caption, image.Point{X: 40, Y: 50},
		gocv.FontHersheySimplex, 2.0, white, 2, gocv.LineAA, false)

	u.window.IMShow(frame)
	return nil
}

// Close releases the window.
func (u *UI) Close() error {
	return u.window.Close()
}
