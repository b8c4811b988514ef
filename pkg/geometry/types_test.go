package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func pointsClose(a, b Point2D, tol float64) bool {
	return a.Distance(b) < tol
}

func TestSimilarityAboutIdentity(t *testing.T) {
	center := NewPoint2D(300, 200)
	m := SimilarityAbout(center, 0, 1.0)

	want := Identity()
	if math.Abs(m.A-want.A) > eps || math.Abs(m.B-want.B) > eps ||
		math.Abs(m.TX-want.TX) > eps || math.Abs(m.C-want.C) > eps ||
		math.Abs(m.D-want.D) > eps || math.Abs(m.TY-want.TY) > eps {
		t.Errorf("SimilarityAbout(center, 0, 1) = %+v, want identity", m)
	}
}

func TestSimilarityAboutFixesCenter(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		scale float64
	}{
		{"quarter turn", 90, 1.0},
		{"half turn", 180, 1.0},
		{"scaled", 45, 1.5},
		{"negative angle shrunk", -30, 0.2},
	}

	center := NewPoint2D(123.5, 77.25)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := SimilarityAbout(center, tt.angle, tt.scale)
			got := m.Apply(center)
			if !pointsClose(got, center, 1e-9) {
				t.Errorf("center moved: %+v -> %+v", center, got)
			}
		})
	}
}

func TestSimilarityAboutQuarterTurn(t *testing.T) {
	// A 90° CCW rotation about center maps the top-left corner (0,0)
	// to (cx-cy, cx+cy): alpha=0, beta=1.
	center := NewPoint2D(300, 200)
	m := SimilarityAbout(center, 90, 1.0)

	got := m.Apply(Point2D{})
	want := NewPoint2D(center.X-center.Y, center.X+center.Y)
	if !pointsClose(got, want, 1e-9) {
		t.Errorf("(0,0) mapped to %+v, want %+v", got, want)
	}
}

func TestRigidAboutIsUnitScale(t *testing.T) {
	for _, angle := range []float64{-180, -90, -15.5, 0, 30, 90, 179} {
		m := RigidAbout(NewPoint2D(50, 50), angle)
		if s := m.ScaleFactor(); math.Abs(s-1.0) > eps {
			t.Errorf("RigidAbout(%v): scale = %v, want 1.0", angle, s)
		}
	}
}

func TestAngleScaleRoundTrip(t *testing.T) {
	tests := []struct {
		angle float64
		scale float64
	}{
		{0, 1.0},
		{45, 0.5},
		{-120, 2.0},
		{90, 0.2},
		{179, 1.25},
	}

	center := NewPoint2D(10, 20)
	for _, tt := range tests {
		m := SimilarityAbout(center, tt.angle, tt.scale)
		if got := m.AngleDeg(); math.Abs(got-tt.angle) > 1e-9 {
			t.Errorf("AngleDeg() = %v, want %v", got, tt.angle)
		}
		if got := m.ScaleFactor(); math.Abs(got-tt.scale) > 1e-9 {
			t.Errorf("ScaleFactor() = %v, want %v", got, tt.scale)
		}
	}
}

func TestComposeWithInverse(t *testing.T) {
	m := SimilarityAbout(NewPoint2D(300, 200), 37, 1.4)
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("similarity transform should be invertible")
	}

	id := m.Compose(inv)
	p := NewPoint2D(42, -17)
	if got := id.Apply(p); !pointsClose(got, p, 1e-6) {
		t.Errorf("m * m^-1 applied to %+v = %+v, want unchanged", p, got)
	}
}

func TestTranslationApply(t *testing.T) {
	m := Translation(-12, 34)
	got := m.Apply(NewPoint2D(1, 2))
	want := NewPoint2D(-11, 36)
	if !pointsClose(got, want, eps) {
		t.Errorf("Translation apply = %+v, want %+v", got, want)
	}
}

func TestSizeCenter(t *testing.T) {
	c := Size{Width: 600, Height: 400}.Center()
	if c.X != 300 || c.Y != 200 {
		t.Errorf("Center() = %+v, want (300, 200)", c)
	}
}
