// ABOUTME: Tone command writing a test WAV file
// ABOUTME: Produces a 440Hz sine for checking audio output end to end
package cli

import (
	"fmt"
	"time"

	"github.com/harperreed/tuneloop/internal/testtone"
	"github.com/spf13/cobra"
)

func newToneCmd() *cobra.Command {
	var (
		length   time.Duration
		rate     int
		channels int
	)

	cmd := &cobra.Command{
		Use:   "tone <file.wav>",
		Short: "Write a 440Hz test tone to a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := testtone.WriteWAV(args[0], testtone.Options{
				SampleRate: rate,
				Channels:   channels,
				Length:     length,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%v, %dHz, %dch)\n", args[0], length, rate, channels)
			return nil
		},
	}

	cmd.Flags().DurationVar(&length, "length", 5*time.Second, "tone length")
	cmd.Flags().IntVar(&rate, "rate", 44100, "sample rate")
	cmd.Flags().IntVar(&channels, "channels", 2, "channel count, 1 or 2")

	return cmd
}
