package export

import (
	"image"
	"image/color"
	"os"

	"github.com/chai2010/webp"
	"github.com/fogleman/gg"

	"github.com/wiless/coverage"
)

// ColorStop maps a signal-strength threshold (dBm) to a color. Stops are
// ordered strongest first; the first stop whose threshold the value meets
// wins.
type ColorStop struct {
	MinDbm float64
	Color  color.RGBA
}

// DefaultColormap is a hot-style ramp over typical received-power levels.
var DefaultColormap = []ColorStop{
	{-60, color.RGBA{255, 255, 255, 255}},
	{-70, color.RGBA{255, 237, 160, 255}},
	{-80, color.RGBA{254, 178, 76, 255}},
	{-90, color.RGBA{253, 141, 60, 255}},
	{-100, color.RGBA{240, 59, 32, 255}},
	{-110, color.RGBA{189, 0, 38, 255}},
	{-120, color.RGBA{128, 0, 38, 255}},
}

var weakestColor = color.RGBA{13, 26, 43, 255}

func colorFor(dbm float64, cmap []ColorStop) color.RGBA {
	for _, stop := range cmap {
		if dbm >= stop.MinDbm {
			return stop.Color
		}
	}
	return weakestColor
}

// RenderHeatmap rasterizes a single tower's signal matrix, one cell of
// scale x scale pixels per grid point. Row 0 of the image is the northern
// edge, so the raster reads like a map.
func RenderHeatmap(field coverage.TowerField, scale int, cmap []ColorStop) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	if len(cmap) == 0 {
		cmap = DefaultColormap
	}
	n := len(field.SignalDbm)
	img := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale))

	for i := 0; i < n; i++ {
		// Latitude rows run south to north; flip for image space.
		py := (n - 1 - i) * scale
		for j := 0; j < n; j++ {
			px := j * scale
			c := colorFor(field.SignalDbm[i][j], cmap)
			for dy := 0; dy < scale; dy++ {
				rowOffset := (py+dy)*img.Stride + px*4
				for dx := 0; dx < scale; dx++ {
					idx := rowOffset + dx*4
					img.Pix[idx] = c.R
					img.Pix[idx+1] = c.G
					img.Pix[idx+2] = c.B
					img.Pix[idx+3] = c.A
				}
			}
		}
	}
	return img
}

// SaveHeatmapPNG renders and writes the heatmap as PNG.
func SaveHeatmapPNG(fname string, field coverage.TowerField, scale int) error {
	img := RenderHeatmap(field, scale, DefaultColormap)
	return gg.NewContextForRGBA(img).SavePNG(fname)
}

// SaveHeatmapWebP renders and writes the heatmap as lossy WebP.
func SaveHeatmapWebP(fname string, field coverage.TowerField, scale int, quality float32) error {
	img := RenderHeatmap(field, scale, DefaultColormap)
	fid, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fid.Close()
	return webp.Encode(fid, img, &webp.Options{Lossless: false, Quality: quality})
}
