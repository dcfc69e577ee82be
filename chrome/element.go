package chrome

import (
	"github.com/chromedp/cdproto/runtime"
	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
)

type Element struct {
	document *Document
	id       runtime.RemoteObjectID
	key      string
	tag      string
}

var _ dom.Element = (*Element)(nil)

type attribute struct {
	OK    bool   `json:"ok"`
	Value string `json:"value"`
}

type rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type metrics struct {
	OffsetWidth int  `json:"offsetWidth"`
	ClientWidth int  `json:"clientWidth"`
	ScrollWidth int  `json:"scrollWidth"`
	Rect        rect `json:"rect"`
}

// Key is the backend node id, stable across handles to the same node.
func (element *Element) Key() string {
	return element.key
}

func (element *Element) TagName() string {
	return element.tag
}

func (element *Element) Attribute(name string) (string, bool, error) {
	var result attribute
	err := element.value(scriptAttribute, &result, name)
	if err != nil {
		return "", false, karma.Describe("attribute", name).
			Format(err, "unable to get attribute")
	}

	return result.Value, result.OK, nil
}

func (element *Element) SetAttribute(name, value string) error {
	return element.value(scriptSetAttribute, nil, name, value)
}

func (element *Element) ClassList() ([]string, error) {
	var classes []string
	err := element.value(scriptClassList, &classes)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (element *Element) TextContent() (string, error) {
	var text string
	err := element.value(scriptTextContent, &text)
	if err != nil {
		return "", err
	}

	return text, nil
}

func (element *Element) SetTextContent(text string) error {
	return element.value(scriptSetTextContent, nil, text)
}

func (element *Element) Parent() (dom.Element, error) {
	id, err := element.document.handle(element.id, scriptParent)
	if err != nil {
		return nil, err
	}

	if id == "" {
		return nil, nil
	}

	return element.document.element(id)
}

func (element *Element) QueryAll(selector string) ([]dom.Element, error) {
	return element.document.queryAll(element.id, selector)
}

func (element *Element) Metrics() (dom.Metrics, error) {
	var result metrics
	err := element.value(scriptMetrics, &result)
	if err != nil {
		return dom.Metrics{}, karma.Format(err, "unable to measure element")
	}

	return dom.Metrics{
		OffsetWidth: result.OffsetWidth,
		ClientWidth: result.ClientWidth,
		ScrollWidth: result.ScrollWidth,
		Rect: dom.Rect{
			X:      result.Rect.X,
			Y:      result.Rect.Y,
			Width:  result.Rect.Width,
			Height: result.Rect.Height,
		},
	}, nil
}

func (element *Element) ComputedStyle(property string) (string, error) {
	var value string
	err := element.value(scriptComputedStyle, &value, property)
	if err != nil {
		return "", karma.Describe("property", property).
			Format(err, "unable to get computed style")
	}

	return value, nil
}

func (element *Element) SetStyle(property, value string) error {
	err := element.value(scriptSetStyle, nil, property, value)
	if err != nil {
		return karma.Describe("property", property).
			Describe("value", value).
			Format(err, "unable to set style")
	}

	return nil
}

func (element *Element) VisualLines() ([]string, error) {
	var lines []string
	err := element.value(scriptVisualLines, &lines)
	if err != nil {
		return nil, karma.Format(err, "unable to split text into lines")
	}

	return lines, nil
}

func (element *Element) WrapLines(lines []string) ([]dom.Element, error) {
	if lines == nil {
		lines = []string{}
	}

	array, err := element.document.handle(element.id, scriptWrapLines, lines)
	if err != nil {
		return nil, karma.Format(err, "unable to wrap lines")
	}

	return element.document.elements(array)
}

func (element *Element) AppendHTML(markup string) error {
	return element.value(scriptAppendHTML, nil, markup)
}

func (element *Element) value(script string, target any, args ...any) error {
	return element.document.value(element.id, script, target, args...)
}
