package dom

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Document is the root of a rendered page.
type Document interface {
	QueryAll(selector string) ([]Element, error)
}

// Element is a handle to a rendered element. Implementations read geometry
// from whatever layout engine produced the page, so every call may fail.
type Element interface {
	// Key identifies the underlying node for the page lifetime.
	Key() string

	// TagName is upper-cased, as the browser reports it.
	TagName() string

	Attribute(name string) (string, bool, error)
	SetAttribute(name, value string) error

	ClassList() ([]string, error)

	TextContent() (string, error)
	SetTextContent(text string) error

	// Parent returns nil when the element is the root.
	Parent() (Element, error)

	QueryAll(selector string) ([]Element, error)

	Metrics() (Metrics, error)

	ComputedStyle(property string) (string, error)

	// SetStyle writes an inline style property, an empty value removes it.
	SetStyle(property, value string) error

	// VisualLines splits the text content at the line boxes it occupies
	// when laid out at the element's width and font.
	VisualLines() ([]string, error)

	// WrapLines replaces the element children with one span per line and
	// returns the spans.
	WrapLines(lines []string) ([]Element, error)

	AppendHTML(markup string) error
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Metrics mirrors the integer offset/client/scroll widths of the element
// and its fractional bounding client rect.
type Metrics struct {
	OffsetWidth int
	ClientWidth int
	ScrollWidth int
	Rect        Rect
}

func Px(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "px"
}

var (
	reLeadingFloat = regexp.MustCompile(`^\s*[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
	reLeadingInt   = regexp.MustCompile(`^\s*[-+]?\d+`)
)

// ParseFloat reads the leading number of a CSS value the way parseFloat
// does, "12.5px" gives 12.5 and "normal" gives false.
func ParseFloat(value string) (float64, bool) {
	match := reLeadingFloat.FindString(value)
	if match == "" {
		return 0, false
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(match), 64)
	if err != nil || math.IsNaN(number) {
		return 0, false
	}

	return number, true
}

// ParseInt reads the leading integer of a CSS value the way parseInt does.
func ParseInt(value string) (int, bool) {
	match := reLeadingInt.FindString(value)
	if match == "" {
		return 0, false
	}

	number, err := strconv.Atoi(strings.TrimSpace(match))
	if err != nil {
		return 0, false
	}

	return number, true
}

// AttributeIs reports whether the attribute is present and equals value.
func AttributeIs(element Element, name, value string) (bool, error) {
	actual, ok, err := element.Attribute(name)
	if err != nil {
		return false, err
	}

	return ok && actual == value, nil
}

func HasClass(element Element, class string) (bool, error) {
	classes, err := element.ClassList()
	if err != nil {
		return false, err
	}

	for _, name := range classes {
		if name == class {
			return true, nil
		}
	}

	return false, nil
}

// Describe is used in log messages.
func Describe(element Element) string {
	classes, err := element.ClassList()
	if err != nil || len(classes) == 0 {
		return strings.ToLower(element.TagName())
	}

	return fmt.Sprintf(
		"%s.%s",
		strings.ToLower(element.TagName()),
		strings.Join(classes, "."),
	)
}
