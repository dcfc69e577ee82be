// Package terminalize adjusts rendered dashboard markup for pixel-exact
// output on e-paper panels: odd widths are evened out, gaps shrunk, lists
// truncated and numbers abbreviated or scaled until they fit.
package terminalize

import (
	"context"

	"github.com/kovetskiy/terminalize/dom"
	"github.com/kovetskiy/terminalize/types"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

const (
	PassIndexWidths  = "index-widths"
	PassFormatValues = "format-values"
	PassFitValues    = "fit-values"
	PassListOverflow = "list-overflow"
	PassGridGaps     = "grid-gaps"
	PassColumnGaps   = "column-gaps"
	PassPixelFonts   = "pixel-fonts"
)

const (
	DefaultListMaxHeight = 320
	DefaultMinFontSize   = 8
	DefaultFontStep      = 1
	DefaultLocale        = "en-US"
	DefaultIndexSelector = ".meta .index"
)

var Passes = []string{
	PassIndexWidths,
	PassFormatValues,
	PassFitValues,
	PassListOverflow,
	PassGridGaps,
	PassColumnGaps,
	PassPixelFonts,
}

type Terminalizer struct {
	config  types.Config
	enabled map[string]bool
	scale   ScaleTable
}

type pass struct {
	name string
	run  func(dom.Document) error
}

func New(config types.Config) (*Terminalizer, error) {
	if config.ListMaxHeight <= 0 {
		config.ListMaxHeight = DefaultListMaxHeight
	}

	if config.MinFontSize <= 0 {
		config.MinFontSize = DefaultMinFontSize
	}

	if config.FontStep <= 0 {
		config.FontStep = DefaultFontStep
	}

	if config.Locale == "" {
		config.Locale = DefaultLocale
	}

	if config.IndexSelector == "" {
		config.IndexSelector = DefaultIndexSelector
	}

	if len(config.Passes) == 0 {
		config.Passes = Passes
	}

	enabled := map[string]bool{}
	for _, name := range config.Passes {
		known := false
		for _, pass := range Passes {
			if pass == name {
				known = true
				break
			}
		}

		if !known {
			return nil, karma.Describe("known", Passes).
				Format(nil, "unknown pass: %s", name)
		}

		enabled[name] = true
	}

	return &Terminalizer{
		config:  config,
		enabled: enabled,
		scale:   DefaultScaleTable,
	}, nil
}

func (terminalizer *Terminalizer) Config() types.Config {
	return terminalizer.config
}

// tracks are independent of each other, passes inside a track run in order
// and a failure abandons the rest of its track.
func (terminalizer *Terminalizer) tracks(processed *dom.Processed) [][]pass {
	config := terminalizer.config

	return [][]pass{
		{
			{PassIndexWidths, func(document dom.Document) error {
				return AdjustIndexWidths(document, config.IndexSelector)
			}},
		},
		{
			{PassFormatValues, func(document dom.Document) error {
				return FormatValues(document, FormatOptions{
					Locale:      config.Locale,
					MinFontSize: config.MinFontSize,
				})
			}},
			{PassFitValues, func(document dom.Document) error {
				return FitValues(document, FitOptions{
					MinFontSize: config.MinFontSize,
					Step:        config.FontStep,
					Scale:       terminalizer.scale,
				})
			}},
		},
		{
			{PassListOverflow, func(document dom.Document) error {
				return ManageOverflow(document, config.ListMaxHeight)
			}},
		},
		{
			{PassGridGaps, AdjustGridGaps},
		},
		{
			{PassColumnGaps, AdjustColumnGaps},
		},
		{
			{PassPixelFonts, func(document dom.Document) error {
				return PixelPerfectFonts(document, processed)
			}},
		},
	}
}

// Run applies every enabled pass to the document. A failing track is
// logged and does not stop the others; the first failure is returned.
//
// Element keys are only unique within one page, so the processed set
// lives for a single Run. Later runs on the same page skip handled
// elements by their data-pixel-processed marker.
func (terminalizer *Terminalizer) Run(
	ctx context.Context,
	document dom.Document,
) error {
	return terminalizer.RunWith(ctx, document, dom.NewProcessed())
}

// RunWith is Run with a processed set the caller keeps for the lifetime
// of the document.
func (terminalizer *Terminalizer) RunWith(
	ctx context.Context,
	document dom.Document,
	processed *dom.Processed,
) error {
	var failure error

	for _, track := range terminalizer.tracks(processed) {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, pass := range track {
			if !terminalizer.enabled[pass.name] {
				continue
			}

			log.Tracef(nil, "running pass: %s", pass.name)

			err := pass.run(document)
			if err != nil {
				err = karma.Format(err, "pass %s failed", pass.name)

				log.Error(err)

				if failure == nil {
					failure = err
				}

				break
			}
		}
	}

	return failure
}
