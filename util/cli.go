package util

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kovetskiy/lorg"
	"github.com/kovetskiy/terminalize/screen"
	"github.com/kovetskiy/terminalize/terminalize"
	"github.com/kovetskiy/terminalize/types"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

const (
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatBMP  = "bmp"
)

var knownFormats = []string{FormatHTML, FormatPNG, FormatBMP}

func RunTerminalize(ctx context.Context, cmd *cli.Command) error {
	if err := SetLogLevel(cmd); err != nil {
		return err
	}

	if cmd.String("color") == "never" {
		log.GetLogger().SetFormat(
			lorg.NewFormat(
				`${time:2006-01-02 15:04:05.000} ${level:%s:left:true} ${prefix}%s`,
			),
		)
		log.GetLogger().SetOutput(os.Stderr)
	}

	files, err := doublestar.FilepathGlob(cmd.String("files"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		msg := "No files matched"
		if cmd.Bool("ci") {
			log.Warning(msg)
		} else {
			log.Fatal(msg)
		}
	}

	log.Debug("config:")
	for _, f := range cmd.Flags {
		flag := f.Names()
		log.Debugf(nil, "%20s: %v", flag[0], cmd.Value(flag[0]))
	}

	generator, err := NewGenerator(cmd)
	if err != nil {
		return err
	}

	fatalErrorHandler := NewErrorHandler(cmd.Bool("continue-on-error"))

	for _, file := range files {
		log.Infof(
			nil,
			"processing %s",
			file,
		)

		written := processFile(ctx, file, generator, cmd, fatalErrorHandler)
		for _, path := range written {
			fmt.Println(path)
		}
	}

	if failures := fatalErrorHandler.Failures(); failures > 0 {
		return fmt.Errorf("%d of %d screens failed", failures, len(files))
	}

	return nil
}

// NewGenerator builds the screen generator from the command flags.
func NewGenerator(cmd *cli.Command) (*screen.Generator, error) {
	terminalizer, err := terminalize.New(types.Config{
		Passes:        cmd.StringSlice("passes"),
		ListMaxHeight: cmd.Float("list-max-height"),
		MinFontSize:   cmd.Float("min-font-size"),
		Locale:        cmd.String("locale"),
		IndexSelector: cmd.String("index-selector"),
	})
	if err != nil {
		return nil, err
	}

	var layout *screen.Layout
	if path := cmd.String("layout"); path != "" {
		layout, err = screen.LoadLayout(path)
		if err != nil {
			return nil, err
		}
	}

	return screen.NewGenerator(layout, terminalizer, screen.Options{
		Width:       int(cmd.Int("width")),
		Height:      int(cmd.Int("height")),
		Stylesheets: cmd.StringSlice("stylesheets"),
		ChromeURL:   cmd.String("chrome-url"),
		Timeout:     cmd.Duration("timeout"),
		Raw:         cmd.Bool("raw"),
	}), nil
}

func processFile(
	ctx context.Context,
	file string,
	generator *screen.Generator,
	cmd *cli.Command,
	fatalErrorHandler *FatalErrorHandler,
) []string {
	markup, err := os.ReadFile(file)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to read file %q", file)
		return nil
	}

	markup = bytes.ReplaceAll(markup, []byte("\r\n"), []byte("\n"))

	if cmd.Bool("compile-only") {
		page, err := generator.Compose(string(markup))
		if err != nil {
			fatalErrorHandler.Handle(err, "unable to compose page for %q", file)
			return nil
		}

		fmt.Println(page)
		return nil
	}

	result, err := generator.Generate(ctx, string(markup))
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to generate screen for %q", file)
		return nil
	}

	output := Output{
		Dir:  cmd.String("output"),
		Name: screenName(file),
	}
	if output.Dir == "" {
		output.Dir = filepath.Dir(file)
	}

	if cmd.Bool("changes-only") {
		changed, err := output.Changed(result.BMP)
		if err != nil {
			fatalErrorHandler.Handle(err, "unable to compare screen checksum")
			return nil
		}

		if !changed {
			log.Infof(
				nil,
				"screen %q is already up to date",
				output.Name,
			)
			return nil
		}
	}

	written, err := output.Write(result, cmd.StringSlice("formats"))
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to write screen %q", output.Name)
		return nil
	}

	if cmd.Bool("changes-only") {
		err := output.SaveChecksum(result.BMP)
		if err != nil {
			fatalErrorHandler.Handle(err, "unable to save screen checksum")
			return nil
		}
	}

	return written
}

// Output is the set of files a screen is written to: <Dir>/<Name>.<format>
// and the <Dir>/<Name>.sha256 checksum of the bitmap.
type Output struct {
	Dir  string
	Name string
}

func (output Output) path(extension string) string {
	return filepath.Join(output.Dir, output.Name+"."+extension)
}

func (output Output) Write(result screen.Result, formats []string) ([]string, error) {
	err := os.MkdirAll(output.Dir, 0o755)
	if err != nil {
		return nil, karma.Format(err, "unable to create output directory %q", output.Dir)
	}

	written := []string{}
	for _, format := range formats {
		var contents []byte
		switch format {
		case FormatHTML:
			contents = []byte(result.HTML)
		case FormatPNG:
			contents = result.PNG
		case FormatBMP:
			contents = result.BMP
		default:
			return written, fmt.Errorf("unknown output format: %s", format)
		}

		path := output.path(format)

		err := os.WriteFile(path, contents, 0o644)
		if err != nil {
			return written, karma.Format(err, "unable to write %q", path)
		}

		log.Debugf(nil, "written %s", path)

		written = append(written, path)
	}

	return written, nil
}

// Changed reports whether the bitmap differs from the one written by the
// previous run.
func (output Output) Changed(bitmap []byte) (bool, error) {
	previous, err := os.ReadFile(output.path("sha256"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}

		return false, err
	}

	checksum := getSHA256Hash(bitmap)

	log.Debugf(
		nil,
		"screen checksum: %s, previous: %s",
		checksum,
		strings.TrimSpace(string(previous)),
	)

	return strings.TrimSpace(string(previous)) != checksum, nil
}

func (output Output) SaveChecksum(bitmap []byte) error {
	return os.WriteFile(
		output.path("sha256"),
		[]byte(getSHA256Hash(bitmap)+"\n"),
		0o644,
	)
}

func screenName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CheckOptions validates flag values before anything is rendered.
func CheckOptions(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Int("width") <= 0 || cmd.Int("height") <= 0 {
		return ctx, fmt.Errorf(
			"invalid panel size: %dx%d",
			cmd.Int("width"),
			cmd.Int("height"),
		)
	}

	for _, format := range cmd.StringSlice("formats") {
		if !slices.Contains(knownFormats, format) {
			return ctx, fmt.Errorf("unknown output format: %s", format)
		}
	}

	return ctx, nil
}

func ConfigFilePath() string {
	fp, err := os.UserConfigDir()
	if err != nil {
		log.Fatal(err)
	}
	return filepath.Join(fp, "terminalize.toml")
}

func SetLogLevel(cmd *cli.Command) error {
	logLevel := cmd.String("log-level")
	switch strings.ToUpper(logLevel) {
	case lorg.LevelTrace.String():
		log.SetLevel(lorg.LevelTrace)
	case lorg.LevelDebug.String():
		log.SetLevel(lorg.LevelDebug)
	case lorg.LevelInfo.String():
		log.SetLevel(lorg.LevelInfo)
	case lorg.LevelWarning.String():
		log.SetLevel(lorg.LevelWarning)
	case lorg.LevelError.String():
		log.SetLevel(lorg.LevelError)
	case lorg.LevelFatal.String():
		log.SetLevel(lorg.LevelFatal)
	default:
		return fmt.Errorf("unknown log level: %s", logLevel)
	}

	return nil
}

func getSHA256Hash(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}
