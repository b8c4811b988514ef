package pattern

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gocv.io/x/gocv"
	"golang.org/x/image/tiff"
)

// Render paints the checkerboard on a white 8-bit canvas and rotates it
// 90° counter-clockwise into portrait orientation. The caller owns the
// returned Mat. Output is deterministic: identical on every run.
func (s BoardSpec) Render() (gocv.Mat, error) {
	if err := s.Validate(); err != nil {
		return gocv.Mat{}, err
	}

	// Landscape canvas: PaperHeightPx across, PaperWidthPx down.
	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0),
		s.PaperWidthPx, s.PaperHeightPx, gocv.MatTypeCV8U)
	defer canvas.Close()

	startX, startY := s.originLandscape()
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if !IsBlack(r, c) {
				continue
			}
			x := startX + c*s.SquarePx
			y := startY + r*s.SquarePx
			square := image.Rect(x, y, x+s.SquarePx, y+s.SquarePx)
			gocv.Rectangle(&canvas, square, color.RGBA{}, -1)
		}
	}

	portrait := gocv.NewMat()
	gocv.Rotate(canvas, &portrait, gocv.Rotate90CounterClockwise)
	return portrait, nil
}

// WritePNG saves the rendered target as a PNG file.
func WritePNG(path string, img gocv.Mat) error {
	if ok := gocv.IMWrite(path, img); !ok {
		return fmt.Errorf("failed to write %s", path)
	}
	return nil
}

// WriteTIFF saves the rendered target as a deflate-compressed TIFF,
// the format print shops usually ask for.
func WriteTIFF(path string, img gocv.Mat) error {
	goImg, err := img.ToImage()
	if err != nil {
		return fmt.Errorf("failed to convert image: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := tiff.Encode(f, goImg, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
