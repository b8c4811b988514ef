package pattern

import (
	"testing"
)

func TestA4BoardValidates(t *testing.T) {
	if err := A4Board().Validate(); err != nil {
		t.Fatalf("A4Board().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsOversizedBoards(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BoardSpec)
	}{
		{"board wider than canvas", func(s *BoardSpec) { s.Cols = 12 }},
		{"board taller than canvas", func(s *BoardSpec) { s.Rows = 9 }},
		{"square too large", func(s *BoardSpec) { s.SquarePx = 400 }},
		{"zero square", func(s *BoardSpec) { s.SquarePx = 0 }},
		{"single column", func(s *BoardSpec) { s.Cols = 1 }},
		{"negative paper", func(s *BoardSpec) { s.PaperWidthPx = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := A4Board()
			tt.modify(&spec)
			if err := spec.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error for %+v", spec)
			}
		})
	}
}

func TestIsBlackParity(t *testing.T) {
	spec := A4Board()
	black := 0
	for r := 0; r < spec.Rows; r++ {
		for c := 0; c < spec.Cols; c++ {
			want := (r+c)%2 == 0
			if got := IsBlack(r, c); got != want {
				t.Fatalf("IsBlack(%d, %d) = %v, want %v", r, c, got, want)
			}
			if IsBlack(r, c) {
				black++
			}
		}
	}
	// 10x7 squares: 35 black, 35 white.
	if black != 35 {
		t.Errorf("black squares = %d, want 35", black)
	}
}

func TestBoardDimensions(t *testing.T) {
	spec := A4Board()
	if got := spec.BoardWidthPx(); got != 3000 {
		t.Errorf("BoardWidthPx() = %d, want 3000", got)
	}
	if got := spec.BoardHeightPx(); got != 2100 {
		t.Errorf("BoardHeightPx() = %d, want 2100", got)
	}
	if spec.InternalCornerCols() != 9 || spec.InternalCornerRows() != 6 {
		t.Errorf("internal corners = %dx%d, want 9x6",
			spec.InternalCornerCols(), spec.InternalCornerRows())
	}
}

func TestInternalCorners(t *testing.T) {
	spec := A4Board()
	corners := spec.InternalCorners()
	if len(corners) != 54 {
		t.Fatalf("len(InternalCorners()) = %d, want 54", len(corners))
	}

	// All corners must lie within the portrait canvas
	// (PaperWidthPx wide, PaperHeightPx tall after rotation).
	for i, p := range corners {
		if p.X < 0 || p.X > float64(spec.PaperWidthPx) ||
			p.Y < 0 || p.Y > float64(spec.PaperHeightPx) {
			t.Errorf("corner %d = %+v outside portrait canvas", i, p)
		}
	}

	// Neighboring corners in a row are one square apart.
	if d := corners[0].Distance(corners[1]); d != float64(spec.SquarePx) {
		t.Errorf("corner spacing = %v, want %d", d, spec.SquarePx)
	}
}

func TestRenderPortraitDimensions(t *testing.T) {
	spec := A4Board()
	img, err := spec.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	defer img.Close()

	if img.Cols() != spec.PaperWidthPx || img.Rows() != spec.PaperHeightPx {
		t.Errorf("rendered size = %dx%d, want %dx%d (portrait)",
			img.Cols(), img.Rows(), spec.PaperWidthPx, spec.PaperHeightPx)
	}
}

func TestRenderSquareColors(t *testing.T) {
	spec := A4Board()
	img, err := spec.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	defer img.Close()

	// A landscape pixel (x, y) lands at portrait row PaperHeightPx-1-x,
	// column y after the 90° CCW rotation.
	at := func(x, y int) uint8 {
		return img.GetUCharAt(spec.PaperHeightPx-1-x, y)
	}

	startX := (spec.PaperHeightPx - spec.BoardWidthPx()) / 2
	startY := (spec.PaperWidthPx - spec.BoardHeightPx()) / 2
	half := spec.SquarePx / 2

	tests := []struct {
		name string
		row  int
		col  int
		want uint8
	}{
		{"top-left square black", 0, 0, 0},
		{"its right neighbor white", 0, 1, 255},
		{"its lower neighbor white", 1, 0, 255},
		{"diagonal neighbor black", 1, 1, 0},
		// (6+9) is odd, so the last square is white.
		{"bottom-right square white", 6, 9, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := startX + tt.col*spec.SquarePx + half
			y := startY + tt.row*spec.SquarePx + half
			if got := at(x, y); got != tt.want {
				t.Errorf("square (%d,%d) center = %d, want %d", tt.row, tt.col, got, tt.want)
			}
		})
	}

	// Margins outside the board stay white.
	if got := at(startX/2, spec.PaperWidthPx/2); got != 255 {
		t.Errorf("left margin = %d, want 255", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	spec := A4Board()
	a, err := spec.Render()
	if err != nil {
		t.Fatalf("first Render() error: %v", err)
	}
	defer a.Close()
	b, err := spec.Render()
	if err != nil {
		t.Fatalf("second Render() error: %v", err)
	}
	defer b.Close()

	ab, err := a.DataPtrUint8()
	if err != nil {
		t.Fatalf("DataPtrUint8: %v", err)
	}
	bb, err := b.DataPtrUint8()
	if err != nil {
		t.Fatalf("DataPtrUint8: %v", err)
	}
	if len(ab) != len(bb) {
		t.Fatalf("buffer sizes differ: %d vs %d", len(ab), len(bb))
	}
	for i := range ab {
		if ab[i] != bb[i] {
			t.Fatalf("renders differ at byte %d", i)
		}
	}
}
