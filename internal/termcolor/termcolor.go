// Package termcolor resolves whether output should be colorized, following
// the clicolors (https://bixense.com/clicolors/) and no-color
// (https://no-color.org) specs shared by both renderers.
package termcolor

import (
	"os"

	"github.com/muesli/termenv"
)

// Allowed reports whether color is allowed by the environment, independent
// of whether the output stream is actually a terminal — callers should
// additionally check that themselves (see Resolve).
func Allowed() bool {
	return allowByClicolorsSpec() && allowByNoColorSpec()
}

// Resolve combines Allowed with a caller-supplied "is this a terminal"
// check, matching the renderers' "colored && output_is_terminal" pattern.
func Resolve(outputIsTerminal bool) bool {
	return outputIsTerminal && Allowed()
}

func allowByClicolorsSpec() bool {
	return envWithDefault("CLICOLOR", "1") == "1" || envWithDefault("CLICOLOR_FORCE", "0") != "0"
}

func allowByNoColorSpec() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}

func envWithDefault(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

// Profile returns termenv's best-guess color profile for the current
// terminal, honoring the same NO_COLOR override the TUI renderer must
// respect even when CLICOLOR/CLICOLOR_FORCE would otherwise say yes.
func Profile() termenv.Profile {
	if !allowByNoColorSpec() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
