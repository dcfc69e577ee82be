package screen

import (
	"bytes"
	_ "embed"
	"os"
	"text/template"

	"github.com/reconquest/karma-go"
)

//go:embed layout.html
var defaultLayout string

// Layout wraps plugin markup into a full page sized to the panel.
type Layout struct {
	template *template.Template
}

type layoutData struct {
	Width       int
	Height      int
	Stylesheets []string
	Content     string
}

func DefaultLayout() *Layout {
	return &Layout{
		template: template.Must(template.New("layout").Parse(defaultLayout)),
	}
}

// LoadLayout reads a text/template file. The template gets Width, Height,
// Stylesheets and Content, where Content is the raw plugin markup.
func LoadLayout(path string) (*Layout, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, karma.Format(err, "unable to read layout %q", path)
	}

	parsed, err := template.New(path).Parse(string(contents))
	if err != nil {
		return nil, karma.Format(err, "unable to parse layout %q", path)
	}

	return &Layout{template: parsed}, nil
}

func (layout *Layout) Compose(markup string, options Options) (string, error) {
	var buffer bytes.Buffer

	err := layout.template.Execute(&buffer, layoutData{
		Width:       options.width(),
		Height:      options.height(),
		Stylesheets: options.Stylesheets,
		Content:     markup,
	})
	if err != nil {
		return "", karma.Format(err, "unable to execute layout template")
	}

	return buffer.String(), nil
}
