package screen

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func uniform(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	return img
}

func whiteShare(img *image.Paletted) float64 {
	bounds := img.Bounds()

	white := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.ColorIndexAt(x, y) == 1 {
				white++
			}
		}
	}

	return float64(white) / float64(bounds.Dx()*bounds.Dy())
}

func TestDither(t *testing.T) {
	tests := map[string]struct {
		color color.Color
		want  float64
	}{
		"white":     {color: color.White, want: 1},
		"black":     {color: color.Black, want: 0},
		"mid gray":  {color: color.Gray{Y: 0x80}, want: 0.5},
		"dark red":  {color: color.RGBA{R: 0x80, A: 0xff}, want: 0.15},
		"light sky": {color: color.RGBA{R: 0xc0, G: 0xe0, B: 0xff, A: 0xff}, want: 0.85},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dithered := Dither(uniform(40, 40, tt.color))

			assert.Equal(t, Monochrome, dithered.Palette)
			assert.InDelta(t, tt.want, whiteShare(dithered), 0.05)
		})
	}
}

func TestEncodeBMP(t *testing.T) {
	encoded, err := EncodeBMP(uniform(80, 48, color.Gray{Y: 0x40}))
	require.NoError(t, err)

	assert.Equal(t, "BM", string(encoded[:2]))

	decoded, err := bmp.Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 80, 48), decoded.Bounds())

	for _, point := range []image.Point{{0, 0}, {79, 47}, {40, 24}} {
		r, g, b, _ := decoded.At(point.X, point.Y).RGBA()
		assert.Equal(t, r, g)
		assert.Equal(t, g, b)
		assert.Contains(t, []uint32{0, 0xffff}, r)
	}
}
