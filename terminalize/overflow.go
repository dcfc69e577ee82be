package terminalize

import (
	"fmt"

	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

const (
	attrListLimit       = "data-list-limit"
	attrListMaxHeight   = "data-list-max-height"
	attrListHiddenCount = "data-list-hidden-count"
)

const hiddenCountMarkup = `<div class="item">
  <div class="meta"></div>
  <div class="content">
    <span class="label label--gray-out">And %d more</span>
  </div>
</div>`

// ManageOverflow hides trailing list items until the list fits its height
// limit and optionally appends an "And N more" item.
func ManageOverflow(document dom.Document, defaultMaxHeight float64) error {
	lists, err := document.QueryAll(`[` + attrListLimit + `="true"]`)
	if err != nil {
		return err
	}

	for _, list := range lists {
		err := truncateList(list, defaultMaxHeight)
		if err != nil {
			return karma.Format(err, "unable to truncate %s", dom.Describe(list))
		}
	}

	return nil
}

func truncateList(list dom.Element, defaultMaxHeight float64) error {
	maxHeight := defaultMaxHeight

	value, ok, err := list.Attribute(attrListMaxHeight)
	if err != nil {
		return err
	}

	if ok {
		if limit, ok := dom.ParseFloat(value); ok && limit != 0 {
			maxHeight = limit
		}
	}

	items, err := list.QueryAll(".item")
	if err != nil {
		return err
	}

	gapValue, err := list.ComputedStyle("gap")
	if err != nil {
		return err
	}

	gap, _ := dom.ParseFloat(gapValue)

	log.Debugf(nil, "list max height: %v, item gap: %v", maxHeight, gap)

	for _, item := range items {
		err := item.SetStyle("display", "")
		if err != nil {
			return err
		}
	}

	heights := make([]float64, len(items))
	total := 0.0
	for i, item := range items {
		metrics, err := item.Metrics()
		if err != nil {
			return err
		}

		heights[i] = metrics.Rect.Height
		if i > 0 {
			heights[i] += gap
		}

		total += heights[i]
	}

	hidden := 0
	for i := len(items) - 1; i >= 0 && total > maxHeight; i-- {
		err := items[i].SetStyle("display", "none")
		if err != nil {
			return err
		}

		hidden++
		total -= heights[i]

		log.Tracef(nil, "hiding item %d, new total height: %.2f", i+1, total)
	}

	log.Debugf(nil, "final height: %.2f, hidden count: %d", total, hidden)

	if hidden == 0 {
		return nil
	}

	show, err := dom.AttributeIs(list, attrListHiddenCount, "true")
	if err != nil || !show {
		return err
	}

	return list.AppendHTML(fmt.Sprintf(hiddenCountMarkup, hidden))
}
