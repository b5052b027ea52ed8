package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
)

type options struct {
	configPath string
	logLevel   string

	conf *config.Config
}

func Root() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Finds the optimal tic-tac-toe moves by exhaustive minimax search",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.loadConfig(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	root.AddCommand(Serve(opts))
	root.AddCommand(Analyze(opts))

	return root
}

func (that *options) loadConfig(cmd *cobra.Command) error {
	path := that.configPath
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		path = config.ResolvePath(baseDir)
	}

	conf, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = that.logLevel
	}

	if err = conf.Validate(); err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	that.conf = conf

	return nil
}

// newLogger - JSON logger at the configured level.
func newLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
