package terminalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustIndexWidths(t *testing.T) {
	document := parse(t, `
		<div class="meta"><span class="index odd" style="width: 21px">1</span></div>
		<div class="meta"><span class="index even" style="width: 22px">2</span></div>
		<span class="index outside" style="width: 23px">3</span>`)

	require.NoError(t, AdjustIndexWidths(document, DefaultIndexSelector))

	assert.Equal(t, 22, offsetWidth(t, query(t, document, ".odd")))
	assert.Equal(t, 22, offsetWidth(t, query(t, document, ".even")))
	assert.Equal(t, 23, offsetWidth(t, query(t, document, ".outside")))

	even, ok, err := query(t, document, ".even").Attribute("style")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "width: 22px", even, "even widths are not rewritten")
}

func TestAdjustIndexWidthsIsIdempotent(t *testing.T) {
	document := parse(t, `<div class="meta"><span class="index" style="width: 15px">1</span></div>`)

	require.NoError(t, AdjustIndexWidths(document, DefaultIndexSelector))
	require.NoError(t, AdjustIndexWidths(document, DefaultIndexSelector))

	assert.Equal(t, 16, offsetWidth(t, query(t, document, ".index")))
}
