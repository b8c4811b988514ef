// Command trfcheck verifies the slider-to-matrix pipeline: it applies a
// known similarity transform to the checkerboard's internal-corner grid,
// re-estimates the parameters by least squares, and prints the residuals.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"calib-lab/internal/pattern"
	"calib-lab/internal/transform"
	"calib-lab/pkg/geometry"
)

func main() {
	angle := flag.Float64("angle", 30, "Rotation angle in degrees")
	scale := flag.Float64("scale", 1.5, "Uniform scale factor")
	tx := flag.Float64("tx", 25, "X translation in pixels")
	ty := flag.Float64("ty", -40, "Y translation in pixels")
	flag.Parse()

	spec := pattern.A4Board()
	corners := spec.InternalCorners()
	center := geometry.Size{
		Width:  float64(spec.PaperWidthPx),
		Height: float64(spec.PaperHeightPx),
	}.Center()

	params := transform.Params{AngleDeg: *angle, TX: *tx, TY: *ty, Scale: *scale}
	truth := params.Matrix(center)

	dst := make([]geometry.Point2D, len(corners))
	for i, p := range corners {
		dst[i] = truth.Apply(p)
	}

	est, err := transform.EstimateSimilarity(corners, dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Estimation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Ground truth ===\n")
	fmt.Printf("Rotation: %.4f°  Scale: %.6f  Translation: (%.1f, %.1f)\n",
		*angle, *scale, *tx, *ty)

	fmt.Printf("\n=== Estimated from %d corners ===\n", len(corners))
	fmt.Printf("Rotation: %.4f°\n", est.AngleDeg)
	fmt.Printf("Scale: %.6f\n", est.Scale)
	fmt.Printf("Translation: (%.1f, %.1f)\n", est.TX, est.TY)
	fmt.Printf("RMS residual: %.6f px\n", est.RMS)

	angleErr := math.Abs(est.AngleDeg - *angle)
	scaleErr := math.Abs(est.Scale - *scale)
	if angleErr > 1e-6 || scaleErr > 1e-9 || est.RMS > 1e-6 {
		fmt.Fprintf(os.Stderr, "\nRound-trip mismatch: angle err %.2e, scale err %.2e\n",
			angleErr, scaleErr)
		os.Exit(1)
	}
	fmt.Println("\nRound-trip OK.")
}
