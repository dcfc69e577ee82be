package terminalize

import (
	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

const (
	attrValueType   = "data-value-type"
	attrValueFormat = "data-value-format"
	attrRawValue    = "data-raw-value"
	attrValueLocale = "data-value-locale"
	attrValueFit    = "data-value-fit"
	attrFitValue    = "data-fit-value"
)

type FormatOptions struct {
	Locale      string
	MinFontSize float64
}

// FormatValues rewrites numeric values with the most precise representation
// that fits their container. The original text is kept in data-raw-value so
// repeated runs format from the same source.
func FormatValues(document dom.Document, options FormatOptions) error {
	elements, err := document.QueryAll(
		`[` + attrValueType + `="number"], [` + attrValueFormat + `="true"]`,
	)
	if err != nil {
		return err
	}

	for _, element := range elements {
		err := formatValue(element, options)
		if err != nil {
			return karma.Format(err, "unable to format %s", dom.Describe(element))
		}
	}

	return nil
}

func formatValue(element dom.Element, options FormatOptions) error {
	err := element.SetStyle("white-space", "nowrap")
	if err != nil {
		return err
	}

	container, err := element.Parent()
	if err != nil || container == nil {
		return err
	}

	raw, _, err := element.Attribute(attrRawValue)
	if err != nil {
		return err
	}

	if raw == "" {
		raw, err = element.TextContent()
		if err != nil {
			return err
		}

		err = element.SetAttribute(attrRawValue, raw)
		if err != nil {
			return err
		}
	}

	value, ok := ParseValue(raw)
	if !ok {
		log.Tracef(nil, "skipping non-numeric value %q", raw)
		return nil
	}

	locale, _, err := element.Attribute(attrValueLocale)
	if err != nil {
		return err
	}

	if locale == "" {
		locale = options.Locale
	}

	metrics, err := container.Metrics()
	if err != nil {
		return err
	}

	text, err := FindBestFormat(
		element,
		metrics.ClientWidth,
		Ladder(value, NewNumberFormatter(locale)),
	)
	if err != nil {
		return err
	}

	err = element.SetTextContent(text)
	if err != nil {
		return err
	}

	fit, err := wantsFit(element)
	if err != nil || !fit {
		return err
	}

	return FitTextToContainer(element, options.MinFontSize)
}

func wantsFit(element dom.Element) (bool, error) {
	for _, name := range []string{attrValueFit, attrFitValue} {
		ok, err := dom.AttributeIs(element, name, "true")
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}

// FindBestFormat probes the ladder in order and returns the first candidate
// whose rendered width fits availableWidth, or the last candidate when none
// does. The element text is restored before returning.
func FindBestFormat(
	element dom.Element,
	availableWidth int,
	ladder []string,
) (best string, err error) {
	if len(ladder) == 0 {
		return "", nil
	}

	original, err := element.TextContent()
	if err != nil {
		return "", err
	}

	defer func() {
		restoreErr := element.SetTextContent(original)
		if err == nil {
			err = restoreErr
		}
	}()

	for _, candidate := range ladder {
		err := element.SetTextContent(candidate)
		if err != nil {
			return "", err
		}

		metrics, err := element.Metrics()
		if err != nil {
			return "", err
		}

		if metrics.ScrollWidth <= availableWidth {
			return candidate, nil
		}
	}

	return ladder[len(ladder)-1], nil
}
