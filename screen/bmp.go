package screen

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"github.com/reconquest/karma-go"
	"golang.org/x/image/bmp"
)

// Monochrome is the two-level palette of the panel.
var Monochrome = color.Palette{
	color.Gray{Y: 0x00},
	color.Gray{Y: 0xff},
}

// Dither converts the image to grayscale and quantizes it to black and white
// with Floyd-Steinberg error diffusion.
func Dither(src image.Image) *image.Paletted {
	bounds := src.Bounds()

	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)

	paletted := image.NewPaletted(bounds, Monochrome)
	draw.FloydSteinberg.Draw(paletted, bounds, gray, bounds.Min)

	return paletted
}

func EncodeBMP(src image.Image) ([]byte, error) {
	var buffer bytes.Buffer

	err := bmp.Encode(&buffer, Dither(src))
	if err != nil {
		return nil, karma.Format(err, "unable to encode bmp")
	}

	return buffer.Bytes(), nil
}
