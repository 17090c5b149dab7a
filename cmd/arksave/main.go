// Command arksave decodes an ARK: Survival Evolved .ark save file and
// exports wild creatures, tamed creatures, fertilized eggs, and cryopod
// contents as JSON.
//
// Usage:
//
//	arksave <savefile> [--out DIR] [--debug]
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"ark-save-parser/ark"
	"ark-save-parser/arklog"
	"ark-save-parser/config"
	"ark-save-parser/export"
	"ark-save-parser/latlong"
)

type options struct {
	Out   string `long:"out" description:"output directory (default: the save's map name)"`
	Debug bool   `long:"debug" description:"enable debug logging"`

	Args struct {
		File string `positional-arg-name:"savefile" description:"ARK save file to read" required:"true"`
	} `positional-args:"yes"`
}

var description = `Parses an ARK: Survival Evolved .ark save file and writes
wild.json, tames.json, nursery.json, and cryopods.json into the output
directory.`

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "arksave"
	parser.LongDescription = description

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Debug {
		config.DEBUG = true
		arklog.SetLogger(arklog.NewZerologAdapter(zerolog.New(os.Stderr).With().Timestamp().Logger()))
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "arksave: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	save, err := ark.Open(opts.Args.File)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.Args.File, err)
	}
	defer save.Close()

	outDir := opts.Out
	if outDir == "" {
		outDir = save.MapName()
		if outDir == "" {
			outDir = "arksave-output"
		}
	}

	entries := save.Entries()
	if err := export.Write(outDir, entries, save.CryopodStart(), latlong.Island); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("Wrote %d entries to %s\n", len(entries), outDir)
	return nil
}
