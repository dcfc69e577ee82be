package terminalize

import (
	"testing"

	"github.com/kovetskiy/terminalize/dom"
	"github.com/kovetskiy/terminalize/htmldoc"
	"github.com/stretchr/testify/require"
)

// every rune is half the font size wide, 8px at the default 16px.
const testAdvance = htmldoc.Advance(0.5)

func parse(t *testing.T, markup string) *htmldoc.Document {
	t.Helper()

	document, err := htmldoc.ParseString(markup, htmldoc.WithMeasurer(testAdvance))
	require.NoError(t, err)

	return document
}

func query(t *testing.T, document dom.Document, selector string) dom.Element {
	t.Helper()

	elements, err := document.QueryAll(selector)
	require.NoError(t, err)
	require.NotEmpty(t, elements, "no element matches %q", selector)

	return elements[0]
}

func style(t *testing.T, element dom.Element, property string) string {
	t.Helper()

	value, err := element.ComputedStyle(property)
	require.NoError(t, err)

	return value
}

func text(t *testing.T, element dom.Element) string {
	t.Helper()

	value, err := element.TextContent()
	require.NoError(t, err)

	return value
}

func offsetWidth(t *testing.T, element dom.Element) int {
	t.Helper()

	metrics, err := element.Metrics()
	require.NoError(t, err)

	return metrics.OffsetWidth
}
