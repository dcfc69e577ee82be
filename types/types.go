package types

type Config struct {
	// Passes lists enabled passes by name, empty enables all of them.
	Passes []string

	// ListMaxHeight applies to lists without a valid data-list-max-height.
	ListMaxHeight float64

	MinFontSize float64
	FontStep    float64

	// Locale applies to values without data-value-locale.
	Locale string

	IndexSelector string
}
