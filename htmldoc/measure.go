package htmldoc

import (
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurer returns the advance width of a run of text at a font size.
type Measurer interface {
	Measure(text string, fontSize float64) float64
}

// Advance measures every rune as the same fraction of the font size.
type Advance float64

func (advance Advance) Measure(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * float64(advance) * fontSize
}

// FaceMeasurer scales the advances of a fixed-size face to the requested
// font size.
type FaceMeasurer struct {
	Face font.Face
	Size float64
}

func (measurer FaceMeasurer) Measure(text string, fontSize float64) float64 {
	advance := font.MeasureString(measurer.Face, text)

	return float64(advance) / 64 * fontSize / measurer.Size
}

var DefaultMeasurer Measurer = FaceMeasurer{
	Face: basicfont.Face7x13,
	Size: 13,
}
