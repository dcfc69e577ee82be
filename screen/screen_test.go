package screen

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kovetskiy/terminalize/htmldoc"
	"github.com/kovetskiy/terminalize/terminalize"
	"github.com/kovetskiy/terminalize/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plugin = `<div class="view view--full">
	<div class="grid grid--cols-2" style="width: 801px; gap: 10px">
		<span class="value" data-value-format="true">$1,234,567</span>
	</div>
</div>`

func TestComposeDefaultLayout(t *testing.T) {
	generator := NewGenerator(nil, nil, Options{
		Stylesheets: []string{"https://example.com/plugins.css"},
	})

	page, err := generator.Compose(plugin)
	require.NoError(t, err)

	assert.Contains(t, page, `<link rel="stylesheet" href="https://example.com/plugins.css">`)
	assert.Contains(t, page, `width: 800px; height: 480px;`)
	assert.Contains(t, page, plugin)

	document, err := htmldoc.ParseString(page)
	require.NoError(t, err)

	screen, err := document.QueryAll(".screen .view .value")
	require.NoError(t, err)
	assert.Len(t, screen, 1)
}

func TestComposeViewport(t *testing.T) {
	generator := NewGenerator(nil, nil, Options{Width: 1872, Height: 1404})

	page, err := generator.Compose(plugin)
	require.NoError(t, err)

	assert.Contains(t, page, `content="width=1872, height=1404"`)
}

func TestComposeRaw(t *testing.T) {
	generator := NewGenerator(nil, nil, Options{Raw: true})

	page, err := generator.Compose("<html><body>as is</body></html>")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>as is</body></html>", page)
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.html")

	err := os.WriteFile(
		path,
		[]byte(`<main data-size="{{ .Width }}x{{ .Height }}">{{ .Content }}</main>`),
		0o644,
	)
	require.NoError(t, err)

	layout, err := LoadLayout(path)
	require.NoError(t, err)

	page, err := NewGenerator(layout, nil, Options{}).Compose("<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, `<main data-size="800x480"><p>hi</p></main>`, page)
}

func TestLoadLayoutErrors(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorContains(t, err, "unable to read layout")

	path := filepath.Join(t.TempDir(), "broken.html")
	require.NoError(t, os.WriteFile(path, []byte(`{{ .Content `), 0o644))

	_, err = LoadLayout(path)
	assert.ErrorContains(t, err, "unable to parse layout")
}

func TestOptionsDefaults(t *testing.T) {
	var options Options

	assert.Equal(t, 800, options.width())
	assert.Equal(t, 480, options.height())
	assert.Equal(t, DefaultTimeout, options.timeout())

	options = Options{Width: 640, Height: 384, Timeout: time.Second}
	assert.Equal(t, 640, options.width())
	assert.Equal(t, 384, options.height())
	assert.Equal(t, time.Second, options.timeout())
}

func TestGenerateInBrowser(t *testing.T) {
	if testing.Short() {
		t.Skip("browser tests are skipped in short mode")
	}

	if _, err := exec.LookPath("google-chrome"); err != nil {
		if _, err := exec.LookPath("chromium"); err != nil {
			t.Skip("no chrome binary found")
		}
	}

	terminalizer, err := terminalize.New(types.Config{})
	require.NoError(t, err)

	result, err := NewGenerator(nil, terminalizer, Options{}).
		Generate(context.Background(), plugin)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(result.PNG), "\x89PNG"))
	assert.Equal(t, "BM", string(result.BMP[:2]))
	assert.Contains(t, result.HTML, "gap: 9px")
	assert.Contains(t, result.HTML, "overflow: hidden")
}
