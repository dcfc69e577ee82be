package terminalize

import (
	"fmt"
	"strconv"

	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

const attrValueFitMaxHeight = "data-value-fit-max-height"

// FitTextToContainer shrinks the font one pixel at a time until the text
// stops overflowing its parent or minFontSize is reached.
func FitTextToContainer(element dom.Element, minFontSize float64) error {
	container, err := element.Parent()
	if err != nil || container == nil {
		return err
	}

	containerMetrics, err := container.Metrics()
	if err != nil {
		return err
	}

	value, err := element.ComputedStyle("font-size")
	if err != nil {
		return err
	}

	size, ok := dom.ParseInt(value)
	if !ok {
		return nil
	}

	err = element.SetStyle("white-space", "nowrap")
	if err != nil {
		return err
	}

	for float64(size) > minFontSize {
		metrics, err := element.Metrics()
		if err != nil {
			return err
		}

		if metrics.ScrollWidth <= containerMetrics.ClientWidth {
			break
		}

		size--

		err = element.SetStyle("font-size", dom.Px(float64(size)))
		if err != nil {
			return err
		}
	}

	return nil
}

type FitOptions struct {
	MinFontSize float64
	Step        float64
	Scale       ScaleTable
}

// FitValues scales values down until they fit the width of their parent
// and the optional data-value-fit-max-height. Weight and line height
// follow the scale table so smaller values do not look thinner.
func FitValues(document dom.Document, options FitOptions) error {
	elements, err := document.QueryAll(
		`[` + attrFitValue + `="true"], [` + attrValueFit + `="true"]`,
	)
	if err != nil {
		return err
	}

	for _, element := range elements {
		err := fitValue(element, options)
		if err != nil {
			return karma.Format(err, "unable to fit %s", dom.Describe(element))
		}
	}

	return nil
}

func fitValue(element dom.Element, options FitOptions) error {
	container, err := element.Parent()
	if err != nil || container == nil {
		return err
	}

	var maxHeight float64

	value, ok, err := element.Attribute(attrValueFitMaxHeight)
	if err != nil {
		return err
	}

	if ok {
		maxHeight, _ = dom.ParseFloat(value)
	}

	for _, property := range []string{"font-size", "font-weight", "line-height"} {
		err := element.SetStyle(property, "")
		if err != nil {
			return err
		}
	}

	value, err = element.ComputedStyle("font-size")
	if err != nil {
		return err
	}

	size, ok := dom.ParseFloat(value)
	if !ok {
		return nil
	}

	metrics, err := element.Metrics()
	if err != nil {
		return err
	}

	containerMetrics, err := container.Metrics()
	if err != nil {
		return err
	}

	overflows := func(rect dom.Rect) bool {
		return rect.Width > containerMetrics.Rect.Width ||
			(maxHeight != 0 && rect.Height > maxHeight)
	}

	for overflows(metrics.Rect) && size > options.MinFontSize {
		size -= options.Step

		scale, ok := options.Scale.Floor(size)
		if !ok {
			break
		}

		styles := [][2]string{
			{"font-size", dom.Px(size)},
			{"font-weight", strconv.Itoa(scale.Weight)},
			{"font-variation-settings", fmt.Sprintf("'wght' %d", scale.Weight)},
			{"line-height", dom.Px(scale.LineHeightAt(size))},
		}

		for _, style := range styles {
			err := element.SetStyle(style[0], style[1])
			if err != nil {
				return err
			}
		}

		metrics, err = element.Metrics()
		if err != nil {
			return err
		}
	}

	log.Debugf(
		nil,
		"adjusted %s: font size %v",
		dom.Describe(element),
		dom.Px(size),
	)

	return nil
}
