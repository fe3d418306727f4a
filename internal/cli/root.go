// ABOUTME: Root command for the tuneloop CLI
// ABOUTME: Loads configuration, sets up logging and runs the player
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/tuneloop/internal/app"
	"github.com/harperreed/tuneloop/internal/config"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command
type options struct {
	cfgFile    string
	logFile    string
	volume     float64
	tickMS     int
	sampleRate int
	verbose    bool

	cfg *config.Config
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tuneloop [dir]",
		Short: "Play the audio files in a directory from the terminal",
		Long: `tuneloop scans a directory for mp3, flac, ogg and wav files and plays them
in a terminal UI. The directory defaults to [library] dir in the config file,
then the current directory.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.cfg.Library.Dir = args[0]
			}
			return runPlayer(cmd.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/tuneloop/config.toml)")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path (default: tuneloop.log)")
	flags.Float64Var(&opts.volume, "volume", 1.0, "starting volume, 0.0 to 2.0")
	flags.IntVar(&opts.tickMS, "tick", 200, "progress and redraw interval in milliseconds")
	flags.IntVar(&opts.sampleRate, "sample-rate", 44100, "audio output sample rate")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newScanCmd(opts))
	cmd.AddCommand(newToneCmd())
	cmd.AddCommand(newVersionCmd(opts))

	return cmd
}

// initConfig loads the config file, then lets explicitly set flags win
func (o *options) initConfig(cmd *cobra.Command) error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadFrom(o.cfgFile)
	} else {
		o.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		o.cfg.Log.File = o.logFile
	}
	if flags.Changed("volume") {
		o.cfg.SetVolume(o.volume)
	}
	if flags.Changed("tick") {
		o.cfg.Playback.TickMS = o.tickMS
	}
	if flags.Changed("sample-rate") {
		o.cfg.Playback.SampleRate = o.sampleRate
	}
	if o.verbose {
		o.cfg.Log.Level = "debug"
	}

	if err := o.cfg.Validate(); err != nil {
		return err
	}
	return nil
}

// setupLogging sends structured logs to the configured file, since the TUI
// owns the terminal
func setupLogging(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(cfg.Log.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)
	return logger, f, nil
}

func runPlayer(ctx context.Context, opts *options) error {
	cfg := opts.cfg

	logger, closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := app.New(app.Config{
		Dir:        cfg.Library.Dir,
		Volume:     cfg.Playback.Volume,
		Tick:       cfg.Playback.Tick(),
		SampleRate: cfg.Playback.SampleRate,
		Logger:     logger,
	})

	if err := p.Run(ctx); err != nil {
		logger.Error("player failed", "error", err)
		return err
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		printError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
