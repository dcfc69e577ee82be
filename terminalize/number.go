package terminalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/reconquest/regexputil-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	reCurrency   = regexp.MustCompile(`[$€£¥₹₽₪₩₫₴₱₿]`)
	reNonNumeric = regexp.MustCompile(`[^0-9.-]`)
	reNumber     = regexp.MustCompile(`^(?P<number>-?(?:\d+\.?\d*|\.\d+))`)
)

// Value is a raw display value split into its sign/currency prefix and
// absolute magnitude.
type Value struct {
	Prefix    string
	Magnitude float64
}

// ParseValue reads values like "$1,234.50" or "-€12". Any minus sign in the
// text makes the value negative.
func ParseValue(raw string) (Value, bool) {
	symbol := reCurrency.FindString(raw)

	prefix := symbol
	if strings.Contains(raw, "-") {
		prefix = "-" + symbol
	}

	cleaned := reNonNumeric.ReplaceAllString(raw, "")

	matches := reNumber.FindStringSubmatch(cleaned)
	if matches == nil {
		return Value{}, false
	}

	magnitude, err := strconv.ParseFloat(
		regexputil.Subexp(reNumber, matches, "number"),
		64,
	)
	if err != nil || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return Value{}, false
	}

	return Value{Prefix: prefix, Magnitude: math.Abs(magnitude)}, true
}

type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter falls back to en-US for tags it can not parse.
func NewNumberFormatter(locale string) NumberFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	return NumberFormatter{printer: message.NewPrinter(tag)}
}

// Format rounds half away from zero at maxFractionDigits, x/text alone
// would round ties to even.
func (formatter NumberFormatter) Format(
	value float64,
	minFractionDigits, maxFractionDigits int,
) string {
	return formatter.printer.Sprint(
		number.Decimal(
			roundHalfAway(value, maxFractionDigits),
			number.MinFractionDigits(minFractionDigits),
			number.MaxFractionDigits(maxFractionDigits),
		),
	)
}

func roundHalfAway(value float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(value*scale) / scale
}

type abbreviation struct {
	divisor float64
	suffix  string
}

var abbreviations = []abbreviation{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "k"},
}

// Ladder lists the representations of value from the most precise to the
// least. Only the largest abbreviation the magnitude reaches is used. The
// last entry is the fallback when nothing fits.
func Ladder(value Value, formatter NumberFormatter) []string {
	ladder := []string{
		value.Prefix + formatter.Format(value.Magnitude, 0, 3),
	}

	for _, abbr := range abbreviations {
		if value.Magnitude < abbr.divisor {
			continue
		}

		scaled := value.Magnitude / abbr.divisor

		for precision := 2; precision >= 0; precision-- {
			ladder = append(
				ladder,
				value.Prefix+formatter.Format(scaled, precision, precision)+abbr.suffix,
			)
		}

		ladder = append(
			ladder,
			value.Prefix+formatter.Format(math.Round(scaled), 0, 0)+abbr.suffix,
		)

		break
	}

	return ladder
}
