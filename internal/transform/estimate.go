package transform

import (
	"fmt"
	"math"

	"calib-lab/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// Estimate is a similarity transform recovered from point correspondences,
// decomposed into its parameters.
type Estimate struct {
	Transform geometry.AffineTransform
	AngleDeg  float64
	Scale     float64
	TX        float64
	TY        float64
	RMS       float64 // root-mean-square residual in pixels
}

// EstimateSimilarity fits the 4-parameter similarity
//
//	x' =  a*x + b*y + tx
//	y' = -b*x + a*y + ty
//
// to the given correspondences by least squares (QR). At least two point
// pairs are required.
func EstimateSimilarity(src, dst []geometry.Point2D) (Estimate, error) {
	if len(src) != len(dst) {
		return Estimate{}, fmt.Errorf("point count mismatch: %d vs %d", len(src), len(dst))
	}
	if len(src) < 2 {
		return Estimate{}, fmt.Errorf("need at least 2 points, got %d", len(src))
	}

	n := len(src)
	A := mat.NewDense(n*2, 4, nil)
	B := mat.NewVecDense(n*2, nil)

	for i := 0; i < n; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y

		// x' = a*x + b*y + tx
		A.Set(i*2, 0, x)
		A.Set(i*2, 1, y)
		A.Set(i*2, 2, 1)
		B.SetVec(i*2, xp)

		// y' = -b*x + a*y + ty
		A.Set(i*2+1, 0, y)
		A.Set(i*2+1, 1, -x)
		A.Set(i*2+1, 3, 1)
		B.SetVec(i*2+1, yp)
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return Estimate{}, fmt.Errorf("least squares solve failed: %w", err)
	}

	a := params.AtVec(0)
	b := params.AtVec(1)
	t := geometry.AffineTransform{
		A: a, B: b, TX: params.AtVec(2),
		C: -b, D: a, TY: params.AtVec(3),
	}

	var sumSq float64
	for i := range src {
		d := t.Apply(src[i]).Distance(dst[i])
		sumSq += d * d
	}

	return Estimate{
		Transform: t,
		AngleDeg:  t.AngleDeg(),
		Scale:     t.ScaleFactor(),
		TX:        t.TX,
		TY:        t.TY,
		RMS:       math.Sqrt(sumSq / float64(n)),
	}, nil
}
