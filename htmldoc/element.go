package htmldoc

import (
	"fmt"
	"math"
	"strings"

	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Element struct {
	document *Document
	node     *html.Node
}

var _ dom.Element = (*Element)(nil)

func (element *Element) Key() string {
	return fmt.Sprintf("%p", element.node)
}

func (element *Element) TagName() string {
	return strings.ToUpper(element.node.Data)
}

func (element *Element) Attribute(name string) (string, bool, error) {
	value, ok := getAttribute(element.node, name)
	return value, ok, nil
}

func (element *Element) SetAttribute(name, value string) error {
	setAttribute(element.node, name, value)
	return nil
}

func (element *Element) ClassList() ([]string, error) {
	value, _ := getAttribute(element.node, "class")
	return strings.Fields(value), nil
}

func (element *Element) TextContent() (string, error) {
	return textContent(element.node), nil
}

func (element *Element) SetTextContent(text string) error {
	removeChildren(element.node)

	if text != "" {
		element.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}

	return nil
}

func (element *Element) Parent() (dom.Element, error) {
	parent := element.node.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return nil, nil
	}

	return element.document.element(parent), nil
}

func (element *Element) QueryAll(selector string) ([]dom.Element, error) {
	return element.document.queryAll(element.node, selector)
}

func (element *Element) Metrics() (dom.Metrics, error) {
	layout := element.document.layout()

	box, err := layout.box(element.node)
	if err != nil {
		return dom.Metrics{}, err
	}

	metrics := dom.Metrics{
		OffsetWidth: int(math.Round(box.Width)),
		Rect:        box,
	}

	inline, err := layout.inline(element.node)
	if err != nil {
		return dom.Metrics{}, err
	}

	if !inline {
		metrics.ClientWidth = metrics.OffsetWidth
	}

	content, err := layout.contentWidth(element.node)
	if err != nil {
		return dom.Metrics{}, err
	}

	metrics.ScrollWidth = max(metrics.ClientWidth, int(math.Ceil(content)))

	return metrics, nil
}

func (element *Element) ComputedStyle(property string) (string, error) {
	return element.document.layout().computed(element.node, property)
}

func (element *Element) SetStyle(property, value string) error {
	text, _ := getAttribute(element.node, "style")

	style, err := parseInlineStyle(text)
	if err != nil {
		return err
	}

	style = style.set(strings.ToLower(property), value)

	if len(style) == 0 {
		removeAttribute(element.node, "style")
		return nil
	}

	setAttribute(element.node, "style", style.String())

	return nil
}

func (element *Element) VisualLines() ([]string, error) {
	layout := element.document.layout()

	box, err := layout.box(element.node)
	if err != nil {
		return nil, err
	}

	size, err := layout.fontSize(element.node)
	if err != nil {
		return nil, err
	}

	return layout.wrap(textContent(element.node), box.Width, size), nil
}

func (element *Element) WrapLines(lines []string) ([]dom.Element, error) {
	removeChildren(element.node)

	spans := make([]dom.Element, 0, len(lines))
	for _, line := range lines {
		span := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Span,
			Data:     "span",
		}
		span.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		element.node.AppendChild(span)

		spans = append(spans, element.document.element(span))
	}

	return spans, nil
}

func (element *Element) AppendHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), element.node)
	if err != nil {
		return karma.Format(err, "unable to parse markup fragment")
	}

	for _, node := range nodes {
		element.node.AppendChild(node)
	}

	return nil
}

func getAttribute(node *html.Node, name string) (string, bool) {
	for _, attribute := range node.Attr {
		if attribute.Namespace == "" && attribute.Key == name {
			return attribute.Val, true
		}
	}

	return "", false
}

func setAttribute(node *html.Node, name, value string) {
	for i, attribute := range node.Attr {
		if attribute.Namespace == "" && attribute.Key == name {
			node.Attr[i].Val = value
			return
		}
	}

	node.Attr = append(node.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttribute(node *html.Node, name string) {
	for i, attribute := range node.Attr {
		if attribute.Namespace == "" && attribute.Key == name {
			node.Attr = append(node.Attr[:i], node.Attr[i+1:]...)
			return
		}
	}
}

func removeChildren(node *html.Node) {
	for child := node.FirstChild; child != nil; child = node.FirstChild {
		node.RemoveChild(child)
	}
}

func textContent(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}

	var builder strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode || child.Type == html.ElementNode {
			builder.WriteString(textContent(child))
		}
	}

	return builder.String()
}
