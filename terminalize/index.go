package terminalize

import (
	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
)

// AdjustIndexWidths rounds odd index badge widths up to the next even
// pixel.
func AdjustIndexWidths(document dom.Document, selector string) error {
	spans, err := document.QueryAll(selector)
	if err != nil {
		return err
	}

	for _, span := range spans {
		metrics, err := span.Metrics()
		if err != nil {
			return karma.Format(err, "unable to measure %s", dom.Describe(span))
		}

		if metrics.OffsetWidth%2 == 0 {
			continue
		}

		err = span.SetStyle("width", dom.Px(float64(metrics.OffsetWidth+1)))
		if err != nil {
			return err
		}
	}

	return nil
}
