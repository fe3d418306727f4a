// ABOUTME: Scan command listing the playable files in a directory
// ABOUTME: Prints each track with the duration its decoder reports
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/harperreed/tuneloop/internal/library"
	"github.com/spf13/cobra"
)

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "List the audio files tuneloop would play",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.cfg.Library.Dir
			if len(args) == 1 {
				dir = args[0]
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: scanLogLevel(opts),
			}))

			tracks, err := library.Scan(dir, logger)
			if err != nil {
				return err
			}
			return printTracks(cmd.OutOrStdout(), library.Probe(tracks, logger))
		},
	}
}

func scanLogLevel(opts *options) slog.Level {
	if opts.verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func printTracks(out io.Writer, tracks []library.Track) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "#\tTITLE\tDURATION")
	for _, t := range tracks {
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID+1, t.DisplayTitle(), formatDuration(t.Duration, t.HasDuration))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "%d tracks\n", len(tracks))
	return err
}

func formatDuration(d time.Duration, known bool) string {
	if !known {
		return "--:--"
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
