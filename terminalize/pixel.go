package terminalize

import (
	"math"
	"strings"

	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

const (
	classTextPixel     = "text-pixel"
	attrPixelProcessed = "data-pixel-processed"
	tagButton          = "BUTTON"
	textAlignCenter    = "center"
)

// PixelPerfectFonts snaps text to the pixel grid. Elements with the
// text-pixel class get one span per visual line whose width parity matches
// the element; other centered elements get an even width. Handled elements
// are marked and recorded in processed and never touched again.
func PixelPerfectFonts(document dom.Document, processed *dom.Processed) error {
	all, err := document.QueryAll("*")
	if err != nil {
		return err
	}

	elements := []dom.Element{}
	for _, element := range all {
		candidate, err := isPixelCandidate(element, processed)
		if err != nil {
			return err
		}

		if candidate {
			elements = append(elements, element)
		}
	}

	log.Debugf(nil, "found %d elements to align to pixel grid", len(elements))

	for _, element := range elements {
		err := alignElement(element, processed)
		if err != nil {
			return karma.Format(err, "unable to align %s", dom.Describe(element))
		}
	}

	return nil
}

func isPixelCandidate(element dom.Element, processed *dom.Processed) (bool, error) {
	if processed.Has(element) {
		return false, nil
	}

	_, marked, err := element.Attribute(attrPixelProcessed)
	if err != nil || marked {
		return false, err
	}

	pixel, err := dom.HasClass(element, classTextPixel)
	if err != nil || pixel {
		return pixel, err
	}

	align, err := element.ComputedStyle("text-align")
	if err != nil {
		return false, err
	}

	return align == textAlignCenter, nil
}

func alignElement(element dom.Element, processed *dom.Processed) error {
	text, err := element.TextContent()
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		return nil
	}

	err = element.SetAttribute(attrPixelProcessed, "true")
	if err != nil {
		return err
	}

	processed.Add(element)

	pixel, err := dom.HasClass(element, classTextPixel)
	if err != nil {
		return err
	}

	if pixel {
		return alignLines(element)
	}

	if element.TagName() == tagButton {
		return nil
	}

	metrics, err := element.Metrics()
	if err != nil {
		return err
	}

	return element.SetStyle("width", dom.Px(float64(evenCeil(metrics.Rect.Width))))
}

func alignLines(element dom.Element) error {
	lines, err := element.VisualLines()
	if err != nil {
		return err
	}

	spans, err := element.WrapLines(lines)
	if err != nil {
		return err
	}

	for _, span := range spans {
		metrics, err := span.Metrics()
		if err != nil {
			return err
		}

		err = span.SetStyle("width", dom.Px(float64(evenCeil(metrics.Rect.Width))))
		if err != nil {
			return err
		}
	}

	metrics, err := element.Metrics()
	if err != nil {
		return err
	}

	parentEven := int(math.Ceil(metrics.Rect.Width))%2 == 0

	spans, err = element.QueryAll("span")
	if err != nil {
		return err
	}

	for _, span := range spans {
		metrics, err := span.Metrics()
		if err != nil {
			return err
		}

		width := int(math.Ceil(metrics.Rect.Width))
		if parentEven != (width%2 == 0) {
			width++
		}

		err = span.SetStyle("width", dom.Px(float64(width)))
		if err != nil {
			return err
		}
	}

	return nil
}

func evenCeil(width float64) int {
	value := int(math.Ceil(width))
	if value%2 != 0 {
		value++
	}

	return value
}
