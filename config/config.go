// Package config holds the environment-driven debug switches the teacher
// repo carries, extended with an Options struct for CLI-style settings.
// cmd/arksave does not use Options; it sets DEBUG directly from --debug.
package config

import "os"

var (
	DEBUG             = os.Getenv("DEBUG") != ""
	DEBUG_SAVE_BINARY = os.Getenv("DEBUG_SAVE_BINARY") != ""
	DEBUG_SAVE_JSON   = os.Getenv("DEBUG_SAVE_JSON") != ""
)

// Options groups CLI-style settings. Nothing in this repository fills or
// reads it: export.Write and ark.Open take their inputs as arguments.
type Options struct {
	// OutputDir is the directory export writes wild.json/tames.json/
	// nursery.json/cryopods.json into. Empty means derive it from the
	// save's map identifier.
	OutputDir string

	// Debug mirrors --debug and forces DEBUG-equivalent behavior for this
	// run regardless of the environment.
	Debug bool
}
