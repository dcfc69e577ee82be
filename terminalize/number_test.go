package terminalize

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want Value
		ok   bool
	}{
		"dollars":          {raw: "$1,234,567", want: Value{Prefix: "$", Magnitude: 1234567}, ok: true},
		"negative euro":    {raw: "-€12.5", want: Value{Prefix: "-€", Magnitude: 12.5}, ok: true},
		"sign after":       {raw: "£-3", want: Value{Prefix: "-£", Magnitude: 3}, ok: true},
		"plain":            {raw: "42", want: Value{Magnitude: 42}, ok: true},
		"spaces":           {raw: " 1 234 ", want: Value{Magnitude: 1234}, ok: true},
		"trailing text":    {raw: "12.5 kWh", want: Value{Magnitude: 12.5}, ok: true},
		"bitcoin":          {raw: "₿0.25", want: Value{Prefix: "₿", Magnitude: 0.25}, ok: true},
		"leading fraction": {raw: ".5", want: Value{Magnitude: 0.5}, ok: true},
		"not a number":     {raw: "N/A", ok: false},
		"only minus":       {raw: "-", ok: false},
		"empty":            {raw: "", ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseValue(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLadder(t *testing.T) {
	tests := map[string]struct {
		value  Value
		locale string
		want   []string
	}{
		"millions": {
			value:  Value{Prefix: "$", Magnitude: 1234567},
			locale: "en-US",
			want:   []string{"$1,234,567", "$1.23M", "$1.2M", "$1M", "$1M"},
		},
		"billions": {
			value:  Value{Magnitude: 2600000000},
			locale: "en-US",
			want:   []string{"2,600,000,000", "2.60B", "2.6B", "3B", "3B"},
		},
		"thousands": {
			value:  Value{Prefix: "-", Magnitude: 1600},
			locale: "en-US",
			want:   []string{"-1,600", "-1.60k", "-1.6k", "-2k", "-2k"},
		},
		"tie at zero digits": {
			value:  Value{Magnitude: 2500},
			locale: "en-US",
			want:   []string{"2,500", "2.50k", "2.5k", "3k", "3k"},
		},
		"tie at one digit": {
			value:  Value{Magnitude: 1250},
			locale: "en-US",
			want:   []string{"1,250", "1.25k", "1.3k", "1k", "1k"},
		},
		"tie at three digits": {
			value:  Value{Magnitude: 0.0625},
			locale: "en-US",
			want:   []string{"0.063"},
		},
		"below a thousand": {
			value:  Value{Magnitude: 999},
			locale: "en-US",
			want:   []string{"999"},
		},
		"fraction digits": {
			value:  Value{Magnitude: 12.3456},
			locale: "en-US",
			want:   []string{"12.346"},
		},
		"german grouping": {
			value:  Value{Magnitude: 1234567},
			locale: "de-DE",
			want:   []string{"1.234.567", "1,23M", "1,2M", "1M", "1M"},
		},
		"unknown locale": {
			value:  Value{Magnitude: 1234},
			locale: "%%%",
			want:   []string{"1,234", "1.23k", "1.2k", "1k", "1k"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ladder(tt.value, NewNumberFormatter(tt.locale)))
		})
	}
}

func TestLadderKeepsPrefixAndMagnitude(t *testing.T) {
	formatter := NewNumberFormatter("en-US")

	for _, raw := range []string{"$1,234,567", "-€98,765", "£-4,321,000,000", "₹5"} {
		value, ok := ParseValue(raw)
		assert.True(t, ok, raw)

		for _, candidate := range Ladder(value, formatter) {
			assert.True(t, strings.HasPrefix(candidate, value.Prefix), candidate)

			digits := strings.TrimPrefix(candidate, value.Prefix)
			multiplier := 1.0
			switch {
			case strings.HasSuffix(digits, "B"):
				multiplier = 1e9
			case strings.HasSuffix(digits, "M"):
				multiplier = 1e6
			case strings.HasSuffix(digits, "k"):
				multiplier = 1e3
			}

			digits = strings.TrimRight(digits, "BMk")
			number, err := strconv.ParseFloat(strings.ReplaceAll(digits, ",", ""), 64)
			assert.NoError(t, err, candidate)

			// the least precise candidate is at most half a unit away
			assert.InDelta(t, value.Magnitude, number*multiplier, multiplier/2, candidate)
		}
	}
}
