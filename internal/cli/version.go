// ABOUTME: Version command
// ABOUTME: Prints the product version and, with -v, build and config details
package cli

import (
	"fmt"
	"runtime"

	"github.com/harperreed/tuneloop/internal/config"
	"github.com/harperreed/tuneloop/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.String())
			if opts.verbose {
				fmt.Fprintf(out, "  author:     %s\n", version.Manufacturer)
				fmt.Fprintf(out, "  go version: %s\n", runtime.Version())
				fmt.Fprintf(out, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
				fmt.Fprintf(out, "  config:     %s\n", configSource(opts))
			}
		},
	}
}

// configSource names the file the configuration came from
func configSource(opts *options) string {
	if opts.cfgFile != "" {
		return opts.cfgFile
	}
	if path := config.Path(); path != "" {
		return path
	}
	return "none (defaults)"
}
