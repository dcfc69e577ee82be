package terminalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleTableFloor(t *testing.T) {
	tests := map[string]struct {
		size float64
		want float64
	}{
		"exact":          {size: 38, want: 38},
		"between":        {size: 37, want: 26},
		"largest":        {size: 128, want: 128},
		"above largest":  {size: 200, want: 128},
		"below smallest": {size: 10, want: 16},
		"fractional":     {size: 57.5, want: 38},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			scale, ok := DefaultScaleTable.Floor(tt.size)
			assert.True(t, ok)
			assert.Equal(t, tt.want, scale.Size)
		})
	}
}

func TestScaleTableSortsInput(t *testing.T) {
	table := NewScaleTable(
		Scale{Size: 10, Weight: 700, LineHeight: 12},
		Scale{Size: 30, Weight: 400, LineHeight: 36},
		Scale{Size: 20, Weight: 500, LineHeight: 24},
	)

	scale, ok := table.Floor(25)
	assert.True(t, ok)
	assert.Equal(t, 500, scale.Weight)

	scale, ok = table.Floor(5)
	assert.True(t, ok)
	assert.Equal(t, 700, scale.Weight)
}

func TestScaleTableEmpty(t *testing.T) {
	_, ok := NewScaleTable().Floor(12)
	assert.False(t, ok)
}

func TestLineHeightAt(t *testing.T) {
	scale := Scale{Size: 26, Weight: 600, LineHeight: 29}

	assert.Equal(t, 29.0, scale.LineHeightAt(26))
	assert.Equal(t, 30.0, scale.LineHeightAt(27))
	assert.Equal(t, 41.0, scale.LineHeightAt(37))
}
