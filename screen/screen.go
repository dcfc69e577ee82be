// Package screen renders plugin markup into the images shown on the panel:
// the markup is wrapped into a layout, loaded into a headless browser at
// the panel viewport, adjusted by the terminalize passes and captured.
package screen

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/kovetskiy/terminalize/chrome"
	"github.com/kovetskiy/terminalize/htmldoc"
	"github.com/kovetskiy/terminalize/terminalize"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

const DefaultTimeout = 60 * time.Second

type Options struct {
	Width       int
	Height      int
	Stylesheets []string

	// ChromeURL is the DevTools websocket endpoint of a running browser,
	// a local headless browser is started when empty.
	ChromeURL string

	Timeout time.Duration

	// Raw markup is a complete document and skips the layout.
	Raw bool
}

func (options Options) width() int {
	if options.Width <= 0 {
		return htmldoc.DefaultViewportWidth
	}

	return options.Width
}

func (options Options) height() int {
	if options.Height <= 0 {
		return htmldoc.DefaultViewportHeight
	}

	return options.Height
}

func (options Options) timeout() time.Duration {
	if options.Timeout <= 0 {
		return DefaultTimeout
	}

	return options.Timeout
}

type Result struct {
	// HTML is the page markup after the passes ran.
	HTML string
	PNG  []byte
	BMP  []byte
}

type Generator struct {
	layout       *Layout
	terminalizer *terminalize.Terminalizer
	options      Options
}

func NewGenerator(
	layout *Layout,
	terminalizer *terminalize.Terminalizer,
	options Options,
) *Generator {
	if layout == nil {
		layout = DefaultLayout()
	}

	return &Generator{
		layout:       layout,
		terminalizer: terminalizer,
		options:      options,
	}
}

// Compose returns the page that is loaded into the browser.
func (generator *Generator) Compose(markup string) (string, error) {
	if generator.options.Raw {
		return markup, nil
	}

	return generator.layout.Compose(markup, generator.options)
}

func (generator *Generator) Generate(ctx context.Context, markup string) (Result, error) {
	content, err := generator.Compose(markup)
	if err != nil {
		return Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, generator.options.timeout())
	defer cancel()

	if generator.options.ChromeURL != "" {
		var cancelAllocator context.CancelFunc
		ctx, cancelAllocator = chromedp.NewRemoteAllocator(ctx, generator.options.ChromeURL)
		defer cancelAllocator()
	}

	ctx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	var (
		html       string
		screenshot []byte
	)

	err = chromedp.Run(ctx,
		emulation.SetDeviceMetricsOverride(
			int64(generator.options.width()),
			int64(generator.options.height()),
			1,
			false,
		),
		chromedp.Navigate(
			"data:text/html;charset=utf-8;base64,"+
				base64.StdEncoding.EncodeToString([]byte(content)),
		),
		chromedp.Evaluate(chrome.ScriptHideOverflow, nil),
		chromedp.ActionFunc(generator.runPasses),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			screenshot, err = captureViewport(ctx)
			return err
		}),
	)
	if err != nil {
		return Result{}, karma.Format(err, "unable to render screen")
	}

	decoded, err := png.Decode(bytes.NewReader(screenshot))
	if err != nil {
		return Result{}, karma.Format(err, "unable to decode screenshot")
	}

	bitmap, err := EncodeBMP(decoded)
	if err != nil {
		return Result{}, err
	}

	return Result{HTML: html, PNG: screenshot, BMP: bitmap}, nil
}

// runPasses runs the passes against the live page. Pass failures are
// already logged by the terminalizer and leave the page as it is.
func (generator *Generator) runPasses(ctx context.Context) error {
	if generator.terminalizer == nil {
		return nil
	}

	document, err := chrome.NewDocument(ctx)
	if err != nil {
		return err
	}

	defer func() {
		err := document.Release()
		if err != nil {
			log.Tracef(nil, "unable to release document handles: %s", err)
		}
	}()

	err = generator.terminalizer.Run(ctx, document)
	if err != nil {
		log.Warningf(err, "screen rendered with failed passes")
	}

	return ctx.Err()
}

func captureViewport(ctx context.Context) ([]byte, error) {
	return page.CaptureScreenshot().
		WithFormat(page.CaptureScreenshotFormatPng).
		Do(ctx)
}
