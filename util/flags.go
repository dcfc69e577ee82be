package util

import (
	"github.com/kovetskiy/terminalize/screen"
	"github.com/kovetskiy/terminalize/terminalize"
	altsrc "github.com/urfave/cli-altsrc/v3"
	altsrctoml "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var filename string

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:      "files",
		Aliases:   []string{"f"},
		Value:     "",
		Usage:     "use specified plugin markup file(s) for rendering screens. Supports file globbing patterns (needs to be quoted).",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_FILES"), altsrctoml.TOML("files", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:      "output",
		Aliases:   []string{"o"},
		Value:     "",
		Usage:     "write rendered screens into the specified directory. Screens are written next to their source files by default.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_OUTPUT"), altsrctoml.TOML("output", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringSliceFlag{
		Name:    "formats",
		Value:   []string{FormatHTML, FormatPNG, FormatBMP},
		Usage:   "output formats to write. Possible values: html, png, bmp.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_FORMATS"), altsrctoml.TOML("formats", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "continue-on-error",
		Value:   false,
		Usage:   "don't exit if an error occurs while processing a file, continue processing remaining files.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_CONTINUE_ON_ERROR"), altsrctoml.TOML("continue-on-error", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "compile-only",
		Value:   false,
		Usage:   "show the page composed from the layout and don't start a browser.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_COMPILE_ONLY"), altsrctoml.TOML("compile-only", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "changes-only",
		Value:   false,
		Usage:   "don't rewrite screens whose bitmap hasn't changed since the last run.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_CHANGES_ONLY"), altsrctoml.TOML("changes-only", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.IntFlag{
		Name:    "width",
		Value:   800,
		Usage:   "panel width in pixels.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_WIDTH"), altsrctoml.TOML("width", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.IntFlag{
		Name:    "height",
		Value:   480,
		Usage:   "panel height in pixels.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_HEIGHT"), altsrctoml.TOML("height", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "chrome-url",
		Value:   "",
		Usage:   "DevTools websocket URL of a running browser. A local headless browser is started when empty.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_CHROME_URL"), altsrctoml.TOML("chrome-url", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.DurationFlag{
		Name:    "timeout",
		Value:   screen.DefaultTimeout,
		Usage:   "maximum time to render a single screen.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_TIMEOUT"), altsrctoml.TOML("timeout", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:      "layout",
		Value:     "",
		Usage:     "use the specified text/template file as page layout instead of the built-in one.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_LAYOUT"), altsrctoml.TOML("layout", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringSliceFlag{
		Name:    "stylesheets",
		Value:   []string{},
		Usage:   "stylesheet URLs linked from the page layout.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_STYLESHEETS"), altsrctoml.TOML("stylesheets", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "raw",
		Value:   false,
		Usage:   "treat input files as complete documents and skip the page layout.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_RAW"), altsrctoml.TOML("raw", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringSliceFlag{
		Name:    "passes",
		Value:   terminalize.Passes,
		Usage:   "display adjustment passes to run. Possible values: index-widths, format-values, fit-values, list-overflow, grid-gaps, column-gaps, pixel-fonts.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_PASSES"), altsrctoml.TOML("passes", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.FloatFlag{
		Name:    "list-max-height",
		Value:   terminalize.DefaultListMaxHeight,
		Usage:   "height in pixels lists are truncated to when they don't set data-list-max-height.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_LIST_MAX_HEIGHT"), altsrctoml.TOML("list-max-height", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.FloatFlag{
		Name:    "min-font-size",
		Value:   terminalize.DefaultMinFontSize,
		Usage:   "smallest font size in pixels values are scaled down to.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_MIN_FONT_SIZE"), altsrctoml.TOML("min-font-size", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "locale",
		Value:   terminalize.DefaultLocale,
		Usage:   "locale used to format numbers without data-value-locale.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_LOCALE"), altsrctoml.TOML("locale", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "index-selector",
		Value:   terminalize.DefaultIndexSelector,
		Usage:   "selector of index badges whose width is evened out.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_INDEX_SELECTOR"), altsrctoml.TOML("index-selector", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:  "color",
		Value: "auto",
		Usage: "display logs in color. Possible values: auto, never.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_COLOR"),
			altsrctoml.TOML("color", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_LOG_LEVEL"), altsrctoml.TOML("log-level", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Value:       ConfigFilePath(),
		Usage:       "use the specified configuration file.",
		TakesFile:   true,
		Sources:     cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_CONFIG")),
		Destination: &filename,
	},
	&cli.BoolFlag{
		Name:    "ci",
		Value:   false,
		Usage:   "run on CI mode. It won't fail if files are not found.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("TERMINALIZE_CI"), altsrctoml.TOML("ci", altsrc.NewStringPtrSourcer(&filename))),
	},
}
