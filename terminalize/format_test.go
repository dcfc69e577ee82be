package terminalize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatOptions() FormatOptions {
	return FormatOptions{Locale: DefaultLocale, MinFontSize: DefaultMinFontSize}
}

func TestFormatValues(t *testing.T) {
	tests := map[string]struct {
		width      int
		attributes string
		raw        string
		want       string
	}{
		"abbreviates to fit": {
			width:      60,
			attributes: `data-value-format="true"`,
			raw:        "$1,234,567",
			want:       "$1.23M",
		},
		"full number fits": {
			width:      100,
			attributes: `data-value-type="number"`,
			raw:        "$1,234,567",
			want:       "$1,234,567",
		},
		"drops precision": {
			width:      40,
			attributes: `data-value-type="number"`,
			raw:        "-1600",
			want:       "-1.6k",
		},
		"nothing fits": {
			width:      10,
			attributes: `data-value-type="number"`,
			raw:        "$1,234,567",
			want:       "$1M",
		},
		"locale": {
			width:      200,
			attributes: `data-value-type="number" data-value-locale="de-DE"`,
			raw:        "1234567",
			want:       "1.234.567",
		},
		"not a number": {
			width:      10,
			attributes: `data-value-type="number"`,
			raw:        "N/A",
			want:       "N/A",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			document := parse(t, fmt.Sprintf(
				`<div style="width: %dpx"><span class="value" %s>%s</span></div>`,
				tt.width,
				tt.attributes,
				tt.raw,
			))

			require.NoError(t, FormatValues(document, formatOptions()))

			value := query(t, document, ".value")
			assert.Equal(t, tt.want, text(t, value))
			assert.Equal(t, "nowrap", style(t, value, "white-space"))

			raw, ok, err := value.Attribute(attrRawValue)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.raw, raw)
		})
	}
}

func TestFormatValuesUsesCachedRawValue(t *testing.T) {
	document := parse(t, `
		<div style="width: 60px">
			<span class="value" data-value-format="true">$1,234,567</span>
		</div>`)

	require.NoError(t, FormatValues(document, formatOptions()))
	require.NoError(t, FormatValues(document, formatOptions()))

	assert.Equal(t, "$1.23M", text(t, query(t, document, ".value")))
}

func TestFormatValuesChainsFit(t *testing.T) {
	document := parse(t, `
		<div style="width: 16px">
			<span class="value" data-value-type="number" data-value-fit="true">123</span>
		</div>`)

	require.NoError(t, FormatValues(document, formatOptions()))

	value := query(t, document, ".value")
	assert.Equal(t, "123", text(t, value))
	assert.Equal(t, "10px", style(t, value, "font-size"))
}

func TestFindBestFormat(t *testing.T) {
	document := parse(t, `<div><span class="value">original</span></div>`)
	value := query(t, document, ".value")

	ladder := []string{"aaaaaa", "aaaa", "aa", "a"}

	// 8px per rune: "aaaa" is the first candidate within 40px.
	best, err := FindBestFormat(value, 40, ladder)
	require.NoError(t, err)
	assert.Equal(t, "aaaa", best)
	assert.Equal(t, "original", text(t, value), "probing restores the text")

	best, err = FindBestFormat(value, 4, ladder)
	require.NoError(t, err)
	assert.Equal(t, "a", best, "the last candidate is the floor")

	best, err = FindBestFormat(value, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, "", best)
}
