package terminalize

import (
	"strings"

	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
)

const (
	attrAdjustGridGaps   = "data-adjust-grid-gaps"
	attrAdjustColumnGaps = "data-adjust-column-gaps"
)

// AdjustGridGaps shrinks the gap of .grid containers by one pixel when the
// grid (for .grid--cols-N) or any of its .col--span-N children has an odd
// width.
func AdjustGridGaps(document dom.Document) error {
	grids, err := document.QueryAll(".grid")
	if err != nil {
		return err
	}

	for _, grid := range grids {
		skip, err := dom.AttributeIs(grid, attrAdjustGridGaps, "false")
		if err != nil {
			return err
		}

		if skip {
			continue
		}

		odd, err := isOddGrid(grid)
		if err != nil {
			return karma.Format(err, "unable to measure %s", dom.Describe(grid))
		}

		if odd {
			err := shrinkGap(grid)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// AdjustColumnGaps shrinks the gap of .columns containers by one pixel when
// any .column child has an odd width.
func AdjustColumnGaps(document dom.Document) error {
	containers, err := document.QueryAll(".columns")
	if err != nil {
		return err
	}

	for _, container := range containers {
		skip, err := dom.AttributeIs(container, attrAdjustColumnGaps, "false")
		if err != nil {
			return err
		}

		if skip {
			continue
		}

		odd, err := anyOddWidth(container, ".column")
		if err != nil {
			return karma.Format(err, "unable to measure %s", dom.Describe(container))
		}

		if odd {
			err := shrinkGap(container)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func isOddGrid(grid dom.Element) (bool, error) {
	classes, err := grid.ClassList()
	if err != nil {
		return false, err
	}

	for _, class := range classes {
		if !strings.HasPrefix(class, "grid--cols-") {
			continue
		}

		metrics, err := grid.Metrics()
		if err != nil {
			return false, err
		}

		return metrics.OffsetWidth%2 != 0, nil
	}

	return anyOddWidth(grid, `[class*="col--span-"]`)
}

func anyOddWidth(container dom.Element, selector string) (bool, error) {
	children, err := container.QueryAll(selector)
	if err != nil {
		return false, err
	}

	for _, child := range children {
		metrics, err := child.Metrics()
		if err != nil {
			return false, err
		}

		if metrics.OffsetWidth%2 != 0 {
			return true, nil
		}
	}

	return false, nil
}

func shrinkGap(container dom.Element) error {
	value, err := container.ComputedStyle("gap")
	if err != nil {
		return err
	}

	gap, ok := dom.ParseInt(value)
	if !ok || gap <= 0 {
		return nil
	}

	return container.SetStyle("gap", dom.Px(float64(max(gap-1, 0))))
}
