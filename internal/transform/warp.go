package transform

import (
	"image"
	"image/color"

	"calib-lab/pkg/geometry"

	"gocv.io/x/gocv"
)

// Warp applies an affine transform to an image, producing a width x height
// output with uncovered areas filled by the border color. The caller owns
// the returned Mat.
func Warp(src gocv.Mat, transform geometry.AffineTransform, width, height int, border color.RGBA) gocv.Mat {
	transformMat := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV64F)
	transformMat.SetDoubleAt(0, 0, transform.A)
	transformMat.SetDoubleAt(0, 1, transform.B)
	transformMat.SetDoubleAt(0, 2, transform.TX)
	transformMat.SetDoubleAt(1, 0, transform.C)
	transformMat.SetDoubleAt(1, 1, transform.D)
	transformMat.SetDoubleAt(1, 2, transform.TY)
	defer transformMat.Close()

	dst := gocv.NewMat()
	gocv.WarpAffineWithParams(src, &dst, transformMat, image.Point{X: width, Y: height},
		gocv.InterpolationLinear, gocv.BorderConstant, border)
	return dst
}
