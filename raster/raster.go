package raster

import (
	"image"
	"image/color"
)

// FromImage converts img into a Raster, sampling img.At over its bounds
// exactly like gogpu-gg's Pixmap.FromImage. A source whose native color
// model is already single-channel (*image.Gray, *image.Gray16) is loaded
// as a 1-band Raster directly, with no RGB round-trip; every other source
// (image.NRGBA, image.RGBA, and anything else color.Color can convert)
// is loaded as 3-band (R,G,B). Alpha is discarded; the segmentation tool
// operates on opaque rasters (transparency only reappears on export, see
// selection's save_selection).
//
// Returns ErrEmptyImage if img has zero width or height.
func FromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return fromGrayImage(img, bounds, w, h), nil
	default:
		return fromColorImage(img, bounds, w, h), nil
	}
}

func fromGrayImage(img image.Image, bounds image.Rectangle, w, h int) *Raster {
	r := &Raster{Width: w, Height: h, Bands: 1, Pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			r.Pix[y*w+x] = c.Y
		}
	}

	return r
}

func fromColorImage(img image.Image, bounds image.Rectangle, w, h int) *Raster {
	r := &Raster{Width: w, Height: h, Bands: 3, Pix: make([]uint8, w*h*3)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			i := (y*w + x) * 3
			r.Pix[i+0] = c.R
			r.Pix[i+1] = c.G
			r.Pix[i+2] = c.B
		}
	}

	return r
}

// Gray derives a single-band luminance Raster by averaging all of r's bands
// with equal weight at every pixel (§4.5, "Grayscale weigher"):
//
//	gray(x,y) = floor(mean_b r.At(x,y,b))  (integer division)
func (r *Raster) Gray() *Raster {
	g := &Raster{Width: r.Width, Height: r.Height, Bands: 1, Pix: make([]uint8, r.Width*r.Height)}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			var sum int
			for b := 0; b < r.Bands; b++ {
				sum += int(r.At(x, y, b))
			}
			g.Pix[y*r.Width+x] = uint8(sum / r.Bands)
		}
	}

	return g
}
