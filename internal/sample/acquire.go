// Package sample acquires the demo image for the transformation
// visualizer: local file first, then a best-effort download, then a
// synthesized placeholder.
package sample

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"gocv.io/x/gocv"
)

// Placeholder dimensions and caption.
const (
	placeholderWidth  = 600
	placeholderHeight = 400
	placeholderText   = "Sample Image"
)

// Fetch returns a displayable BGR image for the given filename. If the
// file is absent it tries to download it from url; download failures are
// logged and the fallback chain continues. If the file still cannot be
// read, a placeholder is written to disk and re-read so the on-disk and
// in-memory images match. An error is returned only when even the
// placeholder round-trip fails; the caller should exit without opening
// the display loop.
func Fetch(url, filename string, timeout time.Duration, background color.RGBA) (gocv.Mat, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		if err := download(url, filename, timeout); err != nil {
			log.Printf("Could not download image: %v. Will attempt to use or create a local file.", err)
		}
	}

	img := gocv.IMRead(filename, gocv.IMReadColor)
	if !img.Empty() {
		return img, nil
	}
	img.Close()

	log.Printf("Failed to load %q. Creating a placeholder.", filename)
	return placeholder(filename, background)
}

// download streams the image at url into dest.
func download(url, dest string, timeout time.Duration) error {
	log.Printf("Attempting to download image from %s...", url)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return err
	}
	log.Printf("Image downloaded successfully as %s", dest)
	return nil
}

// placeholder synthesizes the fallback image, writes it to filename, and
// reloads it from disk.
func placeholder(filename string, background color.RGBA) (gocv.Mat, error) {
	canvas := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(background.B), float64(background.G), float64(background.R), 0),
		placeholderHeight, placeholderWidth, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	white := color.RGBA{R: 255, G: 255, B: 255}
	size := gocv.GetTextSize(placeholderText, gocv.FontHersheySimplex, 2, 3)
	org := image.Point{
		X: (placeholderWidth - size.X) / 2,
		Y: (placeholderHeight + size.Y) / 2,
	}
	gocv.PutTextWithParams(&canvas, placeholderText, org, gocv.FontHersheySimplex, 2,
		white, 3, gocv.LineAA, false)

	if ok := gocv.IMWrite(filename, canvas); !ok {
		return gocv.Mat{}, fmt.Errorf("failed to write placeholder %s", filename)
	}

	img := gocv.IMRead(filename, gocv.IMReadColor)
	if img.Empty() {
		img.Close()
		return gocv.Mat{}, fmt.Errorf("failed to reload placeholder %s", filename)
	}
	return img, nil
}
