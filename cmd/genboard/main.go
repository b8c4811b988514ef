// Command genboard renders the A4 checkerboard calibration target and
// writes it to disk. With no flags it reproduces the standard lab file:
// A4_Chessboard_9x6.png, 2480x3508 portrait at 300 DPI.
package main

import (
	"flag"
	"fmt"

	"calib-lab/internal/pattern"
)

func main() {
	out := flag.String("o", "A4_Chessboard_9x6.png", "Output file path")
	format := flag.String("format", "png", "Output format: png or tiff")
	flag.Parse()

	spec := pattern.A4Board()
	img, err := spec.Render()
	if err != nil {
		fmt.Printf("Error generating pattern: %v\n", err)
		return
	}
	defer img.Close()

	switch *format {
	case "png":
		err = pattern.WritePNG(*out, img)
	case "tiff":
		err = pattern.WriteTIFF(*out, img)
	default:
		fmt.Printf("Unknown format %q: use png or tiff\n", *format)
		return
	}
	if err != nil {
		fmt.Printf("Error saving file: %v\n", err)
		return
	}

	fmt.Printf("Successfully generated '%s'\n", *out)
	fmt.Printf("Image dimensions: %dx%d pixels\n", img.Cols(), img.Rows())
}
