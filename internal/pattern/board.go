// Package pattern generates printable checkerboard calibration targets.
package pattern

import (
	"fmt"

	"calib-lab/pkg/geometry"
)

// A4 paper dimensions in pixels at 300 DPI (8.27 x 11.69 inches).
const (
	A4WidthPx  = 2480
	A4HeightPx = 3508
)

// BoardSpec describes a checkerboard target and the paper it is printed on.
// The board is painted on a landscape canvas (PaperHeightPx wide,
// PaperWidthPx high) and rotated to portrait before saving.
type BoardSpec struct {
	Cols          int // squares horizontally
	Rows          int // squares vertically
	SquarePx      int // square edge length in pixels
	PaperWidthPx  int // portrait paper width
	PaperHeightPx int // portrait paper height
	DPI           int
}

// A4Board returns the standard lab target: 10x7 squares of 300 px on
// A4 at 300 DPI, which yields a 9x6 grid of internal corners.
func A4Board() BoardSpec {
	return BoardSpec{
		Cols:          10,
		Rows:          7,
		SquarePx:      300,
		PaperWidthPx:  A4WidthPx,
		PaperHeightPx: A4HeightPx,
		DPI:           300,
	}
}

// BoardWidthPx returns the painted board width in pixels.
func (s BoardSpec) BoardWidthPx() int {
	return s.Cols * s.SquarePx
}

// BoardHeightPx returns the painted board height in pixels.
func (s BoardSpec) BoardHeightPx() int {
	return s.Rows * s.SquarePx
}

// InternalCornerCols returns the number of internal corners horizontally.
func (s BoardSpec) InternalCornerCols() int {
	return s.Cols - 1
}

// InternalCornerRows returns the number of internal corners vertically.
func (s BoardSpec) InternalCornerRows() int {
	return s.Rows - 1
}

// Validate checks that the spec is well-formed and that the board fits
// entirely within the paper canvas. The fit is a hard precondition:
// a board larger than the paper is an error, never a silent crop.
func (s BoardSpec) Validate() error {
	if s.Cols < 2 || s.Rows < 2 {
		return fmt.Errorf("board needs at least 2x2 squares, got %dx%d", s.Cols, s.Rows)
	}
	if s.SquarePx <= 0 {
		return fmt.Errorf("square size must be positive, got %d", s.SquarePx)
	}
	if s.PaperWidthPx <= 0 || s.PaperHeightPx <= 0 {
		return fmt.Errorf("paper dimensions must be positive, got %dx%d", s.PaperWidthPx, s.PaperHeightPx)
	}
	// The board is painted in landscape: PaperHeightPx across, PaperWidthPx down.
	if s.BoardWidthPx() > s.PaperHeightPx {
		return fmt.Errorf("board width %d px exceeds canvas width %d px",
			s.BoardWidthPx(), s.PaperHeightPx)
	}
	if s.BoardHeightPx() > s.PaperWidthPx {
		return fmt.Errorf("board height %d px exceeds canvas height %d px",
			s.BoardHeightPx(), s.PaperWidthPx)
	}
	return nil
}

// IsBlack reports whether square (row, col) is painted black.
// Squares alternate starting with black at (0,0).
func IsBlack(row, col int) bool {
	return (row+col)%2 == 0
}

// originLandscape returns the top-left corner of the board on the
// landscape canvas, centering the board on the paper.
func (s BoardSpec) originLandscape() (x, y int) {
	return (s.PaperHeightPx - s.BoardWidthPx()) / 2,
		(s.PaperWidthPx - s.BoardHeightPx()) / 2
}

// InternalCorners returns the board's internal corner lattice in the
// coordinates of the final portrait image, row-major from the corner
// nearest the portrait origin. A 10x7 board yields 54 points.
func (s BoardSpec) InternalCorners() []geometry.Point2D {
	startX, startY := s.originLandscape()
	w := float64(s.PaperHeightPx)

	corners := make([]geometry.Point2D, 0, s.InternalCornerRows()*s.InternalCornerCols())
	for r := 1; r < s.Rows; r++ {
		for c := 1; c < s.Cols; c++ {
			// Landscape lattice point, then the 90° CCW rotation
			// (x, y) -> (y, w-x) into portrait coordinates.
			lx := float64(startX + c*s.SquarePx)
			ly := float64(startY + r*s.SquarePx)
			corners = append(corners, geometry.NewPoint2D(ly, w-lx))
		}
	}
	return corners
}
