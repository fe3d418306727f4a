// ABOUTME: User-facing error output for the CLI
// ABOUTME: Prints an error once with a suggestion for the common failures
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/harperreed/tuneloop/internal/config"
	"github.com/harperreed/tuneloop/internal/player"
	"github.com/harperreed/tuneloop/pkg/audio/decode"
)

// suggestion returns a hint for errors the user can fix, or ""
func suggestion(err error) string {
	switch {
	case errors.Is(err, player.ErrNoDevice):
		return "Check that an audio output device is available and not held by another program"
	case errors.Is(err, config.ErrInvalidConfig):
		return "Fix the config file or the flags; see 'tuneloop --help'"
	case errors.Is(err, decode.ErrUnsupportedFormat):
		return "Supported formats are mp3, flac, ogg and wav"
	case errors.Is(err, fs.ErrNotExist):
		return "Pass an existing music directory: tuneloop <dir>"
	default:
		return ""
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if s := suggestion(err); s != "" {
		fmt.Fprintf(w, "  %s\n", s)
	}
}
