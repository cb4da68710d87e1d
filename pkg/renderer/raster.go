package renderer

import (
	"image"
	"image/color"
)

// RGB is one quantized pixel
type RGB struct {
	R, G, B uint8
}

// Raster is a row-major grid of pixels with the origin at the top-left
type Raster struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewRaster creates a black raster
func NewRaster(width, height int) *Raster {
	return &Raster{Width: width, Height: height, Pix: make([]RGB, width*height)}
}

// At returns the pixel at (x, y)
func (r *Raster) At(x, y int) RGB {
	return r.Pix[y*r.Width+x]
}

// Set stores the pixel at (x, y)
func (r *Raster) Set(x, y int, c RGB) {
	r.Pix[y*r.Width+x] = c
}

// Image converts the raster to an opaque RGBA image for encoders
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			p := r.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// AverageLuminance returns the mean Rec. 709 luminance of the raster in [0,1]
func (r *Raster) AverageLuminance() float64 {
	if len(r.Pix) == 0 {
		return 0
	}

	total := 0.0
	for _, p := range r.Pix {
		total += 0.2126*float64(p.R)/255 + 0.7152*float64(p.G)/255 + 0.0722*float64(p.B)/255
	}
	return total / float64(len(r.Pix))
}
