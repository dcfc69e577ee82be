package terminalize

import (
	"math"
	"sort"
)

// Scale couples a font size with the weight and line height that keep
// values visually consistent at that size.
type Scale struct {
	Size       float64
	Weight     int
	LineHeight float64
}

// LineHeightAt keeps the line-height to size ratio of the scale.
func (scale Scale) LineHeightAt(size float64) float64 {
	return math.Round(size * scale.LineHeight / scale.Size)
}

// ScaleTable is ordered from the largest size to the smallest.
type ScaleTable struct {
	scales []Scale
}

func NewScaleTable(scales ...Scale) ScaleTable {
	sorted := append([]Scale(nil), scales...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})

	return ScaleTable{scales: sorted}
}

// Floor returns the largest scale not bigger than size, or the smallest
// scale when size is below all of them.
func (table ScaleTable) Floor(size float64) (Scale, bool) {
	if len(table.scales) == 0 {
		return Scale{}, false
	}

	for _, scale := range table.scales {
		if size >= scale.Size {
			return scale, true
		}
	}

	return table.scales[len(table.scales)-1], true
}

var DefaultScaleTable = NewScaleTable(
	Scale{Size: 128, Weight: 350, LineHeight: 128}, // xxxlarge
	Scale{Size: 96, Weight: 350, LineHeight: 108},  // xxlarge
	Scale{Size: 74, Weight: 375, LineHeight: 86},   // xlarge
	Scale{Size: 58, Weight: 400, LineHeight: 70},   // large
	Scale{Size: 38, Weight: 450, LineHeight: 42},   // default
	Scale{Size: 26, Weight: 600, LineHeight: 29},   // small
	Scale{Size: 20, Weight: 700, LineHeight: 24},   // xsmall
	Scale{Size: 16, Weight: 400, LineHeight: 16},   // xxsmall, bitmap font
)
