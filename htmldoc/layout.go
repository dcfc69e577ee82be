package htmldoc

import (
	"math"
	"regexp"
	"strings"

	"github.com/kovetskiy/terminalize/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const defaultLineHeight = 1.2

var blockElements = map[atom.Atom]bool{
	atom.Html:    true,
	atom.Body:    true,
	atom.Div:     true,
	atom.P:       true,
	atom.Ul:      true,
	atom.Ol:      true,
	atom.Li:      true,
	atom.Section: true,
	atom.Article: true,
	atom.Header:  true,
	atom.Footer:  true,
	atom.Main:    true,
	atom.Nav:     true,
	atom.H1:      true,
	atom.H2:      true,
	atom.H3:      true,
	atom.H4:      true,
	atom.H5:      true,
	atom.H6:      true,
	atom.Table:   true,
	atom.Form:    true,
}

// inherited properties fall back to the parent's computed value.
var inherited = map[string]string{
	"font-size":               "",
	"font-weight":             "400",
	"font-family":             "",
	"font-variation-settings": "normal",
	"line-height":             "normal",
	"text-align":              "start",
	"white-space":             "normal",
	"color":                   "",
}

var reWords = regexp.MustCompile(`\S+\s*|\s+`)

type layout struct {
	document *Document
}

func (document *Document) layout() layout {
	return layout{document: document}
}

func parent(node *html.Node) *html.Node {
	if node.Parent == nil || node.Parent.Type != html.ElementNode {
		return nil
	}

	return node.Parent
}

func (layout layout) style(node *html.Node) (inlineStyle, error) {
	text, _ := getAttribute(node, "style")
	return parseInlineStyle(text)
}

func (layout layout) declared(node *html.Node, property string) (string, bool, error) {
	style, err := layout.style(node)
	if err != nil {
		return "", false, err
	}

	value, ok := style.get(property)
	return strings.TrimSpace(strings.TrimSuffix(value, "!important")), ok, nil
}

func (layout layout) display(node *html.Node) (string, error) {
	value, ok, err := layout.declared(node, "display")
	if err != nil {
		return "", err
	}

	if ok && value != "" {
		return value, nil
	}

	if blockElements[node.DataAtom] {
		return "block", nil
	}

	return "inline", nil
}

func (layout layout) inline(node *html.Node) (bool, error) {
	display, err := layout.display(node)
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(display, "inline"), nil
}

func (layout layout) hidden(node *html.Node) (bool, error) {
	for current := node; current != nil; current = parent(current) {
		display, err := layout.display(current)
		if err != nil {
			return false, err
		}

		if display == "none" {
			return true, nil
		}
	}

	return false, nil
}

func (layout layout) fontSize(node *html.Node) (float64, error) {
	for current := node; current != nil; current = parent(current) {
		value, ok, err := layout.declared(current, "font-size")
		if err != nil {
			return 0, err
		}

		if !ok {
			continue
		}

		if size, ok := dom.ParseFloat(value); ok {
			return size, nil
		}
	}

	return DefaultFontSize, nil
}

func (layout layout) lineHeight(node *html.Node) (float64, error) {
	size, err := layout.fontSize(node)
	if err != nil {
		return 0, err
	}

	value, err := layout.computed(node, "line-height")
	if err != nil {
		return 0, err
	}

	number, ok := dom.ParseFloat(value)
	switch {
	case !ok:
		return size * defaultLineHeight, nil
	case strings.HasSuffix(value, "px"):
		return number, nil
	default:
		return number * size, nil
	}
}

func (layout layout) computed(node *html.Node, property string) (string, error) {
	property = strings.ToLower(property)

	switch property {
	case "font-size":
		size, err := layout.fontSize(node)
		if err != nil {
			return "", err
		}

		return dom.Px(size), nil

	case "width", "height":
		box, err := layout.box(node)
		if err != nil {
			return "", err
		}

		if property == "width" {
			return dom.Px(box.Width), nil
		}

		return dom.Px(box.Height), nil

	case "display":
		return layout.display(node)
	}

	fallback, isInherited := inherited[property]

	for current := node; current != nil; current = parent(current) {
		value, ok, err := layout.declared(current, property)
		if err != nil {
			return "", err
		}

		if ok {
			return value, nil
		}

		if !isInherited {
			break
		}
	}

	if isInherited {
		return fallback, nil
	}

	if property == "gap" {
		return "normal", nil
	}

	return "", nil
}

func (layout layout) explicit(node *html.Node, property string) (float64, bool, error) {
	value, ok, err := layout.declared(node, property)
	if err != nil || !ok || !strings.HasSuffix(value, "px") {
		return 0, false, err
	}

	number, ok := dom.ParseFloat(value)
	return number, ok, nil
}

func (layout layout) width(node *html.Node) (float64, error) {
	hidden, err := layout.hidden(node)
	if err != nil || hidden {
		return 0, err
	}

	width, ok, err := layout.explicit(node, "width")
	if err != nil || ok {
		return width, err
	}

	inline, err := layout.inline(node)
	if err != nil {
		return 0, err
	}

	if inline {
		size, err := layout.fontSize(node)
		if err != nil {
			return 0, err
		}

		return layout.document.measurer.Measure(textContent(node), size), nil
	}

	container := parent(node)
	if container == nil {
		return layout.document.width, nil
	}

	return layout.width(container)
}

func (layout layout) gap(node *html.Node) (float64, error) {
	value, _, err := layout.declared(node, "gap")
	if err != nil {
		return 0, err
	}

	gap, _ := dom.ParseFloat(value)
	return gap, nil
}

func (layout layout) children(node *html.Node) ([]*html.Node, error) {
	children := []*html.Node{}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		hidden, err := layout.hidden(child)
		if err != nil {
			return nil, err
		}

		if !hidden {
			children = append(children, child)
		}
	}

	return children, nil
}

func (layout layout) hasBlockChildren(node *html.Node) (bool, error) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		inline, err := layout.inline(child)
		if err != nil {
			return false, err
		}

		if !inline {
			return true, nil
		}
	}

	return false, nil
}

func (layout layout) height(node *html.Node) (float64, error) {
	hidden, err := layout.hidden(node)
	if err != nil || hidden {
		return 0, err
	}

	height, ok, err := layout.explicit(node, "height")
	if err != nil || ok {
		return height, err
	}

	lineHeight, err := layout.lineHeight(node)
	if err != nil {
		return 0, err
	}

	inline, err := layout.inline(node)
	if err != nil {
		return 0, err
	}

	if inline {
		return lineHeight, nil
	}

	block, err := layout.hasBlockChildren(node)
	if err != nil {
		return 0, err
	}

	if !block {
		text := textContent(node)
		if strings.TrimSpace(text) == "" {
			return 0, nil
		}

		width, err := layout.width(node)
		if err != nil {
			return 0, err
		}

		size, err := layout.fontSize(node)
		if err != nil {
			return 0, err
		}

		return float64(len(layout.wrap(text, width, size))) * lineHeight, nil
	}

	children, err := layout.children(node)
	if err != nil {
		return 0, err
	}

	gap, err := layout.gap(node)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i, child := range children {
		height, err := layout.height(child)
		if err != nil {
			return 0, err
		}

		if i > 0 {
			total += gap
		}

		total += height
	}

	return total, nil
}

// top stacks visible siblings vertically, good enough for line detection
// and debugging output.
func (layout layout) top(node *html.Node) (float64, error) {
	container := parent(node)
	if container == nil {
		return 0, nil
	}

	top, err := layout.top(container)
	if err != nil {
		return 0, err
	}

	gap, err := layout.gap(container)
	if err != nil {
		return 0, err
	}

	for sibling := container.FirstChild; sibling != nil && sibling != node; sibling = sibling.NextSibling {
		if sibling.Type != html.ElementNode {
			continue
		}

		height, err := layout.height(sibling)
		if err != nil {
			return 0, err
		}

		if height > 0 {
			top += height + gap
		}
	}

	return top, nil
}

func (layout layout) box(node *html.Node) (dom.Rect, error) {
	width, err := layout.width(node)
	if err != nil {
		return dom.Rect{}, err
	}

	height, err := layout.height(node)
	if err != nil {
		return dom.Rect{}, err
	}

	top, err := layout.top(node)
	if err != nil {
		return dom.Rect{}, err
	}

	return dom.Rect{Y: top, Width: width, Height: height}, nil
}

// contentWidth is the widest unbreakable run of the text, the whole text
// when wrapping is disabled.
func (layout layout) contentWidth(node *html.Node) (float64, error) {
	size, err := layout.fontSize(node)
	if err != nil {
		return 0, err
	}

	whitespace, err := layout.computed(node, "white-space")
	if err != nil {
		return 0, err
	}

	text := textContent(node)
	if whitespace == "nowrap" || whitespace == "pre" {
		return layout.document.measurer.Measure(text, size), nil
	}

	widest := 0.0
	for _, word := range strings.Fields(text) {
		widest = math.Max(widest, layout.document.measurer.Measure(word, size))
	}

	return widest, nil
}

// wrap breaks text greedily at word boundaries. Trailing whitespace stays
// with the line it ends, so joining the lines gives back the text.
func (layout layout) wrap(text string, width, size float64) []string {
	lines := []string{}
	line := ""

	for _, word := range reWords.FindAllString(text, -1) {
		candidate := strings.TrimRight(line+word, " \t\n")
		if line != "" && layout.document.measurer.Measure(candidate, size) > width {
			lines = append(lines, line)
			line = word
			continue
		}

		line += word
	}

	if line != "" {
		lines = append(lines, line)
	}

	return lines
}
