package main

import (
	"context"
	"os"

	"github.com/kovetskiy/terminalize/util"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

const (
	version     = "dev"
	usage       = "A tool for rendering dashboard plugin markup into e-paper screens."
	description = `terminalize renders plugin markup in a headless browser at the panel resolution, adjusts it for pixel-exact output on e-paper (even widths, shrunk gaps, truncated lists, abbreviated and scaled values) and writes HTML, PNG and dithered BMP screens.`
)

func main() {
	cmd := &cli.Command{
		Name:                  "terminalize",
		Usage:                 usage,
		Description:           description,
		Version:               version,
		Flags:                 util.Flags,
		Before:                util.CheckOptions,
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Action:                util.RunTerminalize,
	}

	if err := cmd.Run(context.TODO(), os.Args); err != nil {
		log.Fatal(err)
	}
}
