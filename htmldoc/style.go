package htmldoc

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/reconquest/karma-go"
)

type declaration struct {
	property string
	value    string
}

// inlineStyle keeps declarations in the order they were written.
type inlineStyle []declaration

func parseInlineStyle(text string) (inlineStyle, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	// the parser only keeps declarations closed by ';'
	if !strings.HasSuffix(trimmed, ";") {
		trimmed += ";"
	}

	declarations, err := parser.ParseDeclarations(trimmed)
	if err != nil {
		return nil, karma.Format(err, "unable to parse inline style %q", text)
	}

	style := inlineStyle{}
	for _, item := range declarations {
		value := item.Value
		if item.Important {
			value += " !important"
		}

		style = style.set(strings.ToLower(item.Property), value)
	}

	return style, nil
}

func (style inlineStyle) get(property string) (string, bool) {
	for _, item := range style {
		if item.property == property {
			return item.value, true
		}
	}

	return "", false
}

func (style inlineStyle) set(property, value string) inlineStyle {
	for i, item := range style {
		if item.property != property {
			continue
		}

		if value == "" {
			return append(style[:i:i], style[i+1:]...)
		}

		style[i].value = value
		return style
	}

	if value == "" {
		return style
	}

	return append(style, declaration{property: property, value: value})
}

func (style inlineStyle) String() string {
	parts := make([]string, 0, len(style))
	for _, item := range style {
		parts = append(parts, item.property+": "+item.value)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "; ") + ";"
}
