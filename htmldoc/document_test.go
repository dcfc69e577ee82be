package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, markup string) *Document {
	t.Helper()

	document, err := ParseString(markup, WithMeasurer(Advance(0.5)))
	require.NoError(t, err)

	return document
}

func TestMetrics(t *testing.T) {
	document := mustParse(t, `
		<div class="box" style="width: 61px">
			<span class="value">12345</span>
		</div>`)

	box, err := document.Query(".box")
	require.NoError(t, err)

	metrics, err := box.Metrics()
	require.NoError(t, err)
	assert.Equal(t, 61, metrics.OffsetWidth)
	assert.Equal(t, 61, metrics.ClientWidth)

	value, err := document.Query(".value")
	require.NoError(t, err)

	metrics, err = value.Metrics()
	require.NoError(t, err)
	assert.Equal(t, 40.0, metrics.Rect.Width)
	assert.Equal(t, 40, metrics.OffsetWidth)
	assert.Equal(t, 0, metrics.ClientWidth)
	assert.Equal(t, 40, metrics.ScrollWidth)
}

func TestBlockWidthInheritsParent(t *testing.T) {
	document := mustParse(t, `<div style="width: 300px"><div class="inner">x</div></div>`)

	inner, err := document.Query(".inner")
	require.NoError(t, err)

	metrics, err := inner.Metrics()
	require.NoError(t, err)
	assert.Equal(t, 300, metrics.OffsetWidth)
}

func TestHiddenElementHasNoGeometry(t *testing.T) {
	document := mustParse(t, `<div style="display: none"><p class="p" style="height: 20px">x</p></div>`)

	paragraph, err := document.Query(".p")
	require.NoError(t, err)

	metrics, err := paragraph.Metrics()
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.OffsetWidth)
	assert.Equal(t, 0.0, metrics.Rect.Height)
}

func TestComputedStyle(t *testing.T) {
	document := mustParse(t, `
		<div style="text-align: center; font-size: 20px; gap: 12px">
			<span class="child">text</span>
		</div>`)

	child, err := document.Query(".child")
	require.NoError(t, err)

	align, err := child.ComputedStyle("text-align")
	require.NoError(t, err)
	assert.Equal(t, "center", align)

	size, err := child.ComputedStyle("font-size")
	require.NoError(t, err)
	assert.Equal(t, "20px", size)

	gap, err := child.ComputedStyle("gap")
	require.NoError(t, err)
	assert.Equal(t, "normal", gap, "gap is not inherited")
}

func TestSetStyle(t *testing.T) {
	document := mustParse(t, `<div class="box" style="color: red">x</div>`)

	box, err := document.Query(".box")
	require.NoError(t, err)

	require.NoError(t, box.SetStyle("width", "12px"))
	require.NoError(t, box.SetStyle("color", "blue"))

	style, _, err := box.Attribute("style")
	require.NoError(t, err)
	assert.Equal(t, "color: blue; width: 12px;", style)

	require.NoError(t, box.SetStyle("color", ""))
	require.NoError(t, box.SetStyle("width", ""))

	_, ok, err := box.Attribute("style")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlockHeightSumsChildrenAndGaps(t *testing.T) {
	document := mustParse(t, `
		<div class="list" style="gap: 10px">
			<div style="height: 50px"></div>
			<div style="height: 30px"></div>
			<div style="height: 20px; display: none"></div>
		</div>`)

	list, err := document.Query(".list")
	require.NoError(t, err)

	metrics, err := list.Metrics()
	require.NoError(t, err)
	assert.Equal(t, 90.0, metrics.Rect.Height)
}

func TestVisualLinesAndWrap(t *testing.T) {
	document := mustParse(t, `<div class="text" style="width: 100px">aaa bbb ccc ddd</div>`)

	text, err := document.Query(".text")
	require.NoError(t, err)

	lines, err := text.VisualLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa bbb ccc ", "ddd"}, lines)

	spans, err := text.WrapLines(lines)
	require.NoError(t, err)
	require.Len(t, spans, 2)

	content, err := spans[1].TextContent()
	require.NoError(t, err)
	assert.Equal(t, "ddd", content)

	all, err := text.QueryAll("span")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAppendHTML(t *testing.T) {
	document := mustParse(t, `<div class="list"><div class="item">a</div></div>`)

	list, err := document.Query(".list")
	require.NoError(t, err)

	require.NoError(t, list.AppendHTML(`<div class="item"><span>And 2 more</span></div>`))

	items, err := list.QueryAll(".item")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Contains(t, document.String(), "And 2 more")
}

func TestDefaultMeasurer(t *testing.T) {
	// basicfont advances 7px per glyph at 13px.
	assert.InDelta(t, 14.0, DefaultMeasurer.Measure("ab", 13), 0.001)
	assert.InDelta(t, 28.0, DefaultMeasurer.Measure("ab", 26), 0.001)
}
