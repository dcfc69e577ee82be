// Package htmldoc is an in-memory dom.Document over golang.org/x/net/html.
//
// It has no stylesheet support: geometry comes from inline styles, tag
// defaults and text measured with a Measurer. Block elements take their
// parent's width, inline elements take the width of their text, and an
// explicit inline width or height always wins. That is enough to drive
// the adjustment passes without a browser.
package htmldoc

import (
	"bytes"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
	"golang.org/x/net/html"
)

const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 480
	DefaultFontSize       = 16
)

type Document struct {
	root     *html.Node
	measurer Measurer
	width    float64
	height   float64
}

type Option func(*Document)

func WithViewport(width, height float64) Option {
	return func(document *Document) {
		document.width = width
		document.height = height
	}
}

func WithMeasurer(measurer Measurer) Option {
	return func(document *Document) {
		document.measurer = measurer
	}
}

func Parse(reader io.Reader, options ...Option) (*Document, error) {
	root, err := html.Parse(reader)
	if err != nil {
		return nil, karma.Format(err, "unable to parse html")
	}

	document := &Document{
		root:     root,
		measurer: DefaultMeasurer,
		width:    DefaultViewportWidth,
		height:   DefaultViewportHeight,
	}

	for _, option := range options {
		option(document)
	}

	return document, nil
}

func ParseString(markup string, options ...Option) (*Document, error) {
	return Parse(strings.NewReader(markup), options...)
}

func (document *Document) QueryAll(selector string) ([]dom.Element, error) {
	return document.queryAll(document.root, selector)
}

// Query returns the first match or nil.
func (document *Document) Query(selector string) (dom.Element, error) {
	elements, err := document.QueryAll(selector)
	if err != nil || len(elements) == 0 {
		return nil, err
	}

	return elements[0], nil
}

func (document *Document) Render(writer io.Writer) error {
	return html.Render(writer, document.root)
}

func (document *Document) String() string {
	var buffer bytes.Buffer

	err := document.Render(&buffer)
	if err != nil {
		return ""
	}

	return buffer.String()
}

func (document *Document) queryAll(
	node *html.Node,
	selector string,
) ([]dom.Element, error) {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, karma.Format(err, "invalid selector %q", selector)
	}

	nodes := cascadia.QueryAll(node, group)

	elements := make([]dom.Element, 0, len(nodes))
	for _, match := range nodes {
		elements = append(elements, document.element(match))
	}

	return elements, nil
}

func (document *Document) element(node *html.Node) *Element {
	return &Element{document: document, node: node}
}
