package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Dicklesworthstone/cats_viewer/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	logFile    string
	verbose    bool

	// View flags
	contentPath  string
	watch        bool
	themeName    string
	tickInterval time.Duration
	ackDelay     time.Duration
	snapshot     bool
	width        int

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd shows the cats page
var rootCmd = &cobra.Command{
	Use:   "cv",
	Short: "All About Cats, in your terminal",
	Long: `cv shows an interactive page about cats: an image carousel, a rotating
fact of the moment, a like counter and tabs with characteristics, fun facts
and breeds.

Content comes from the built-in page or from a YAML/JSON file (--content).
With --watch the page reloads whenever that file changes.

When stdout is not a terminal, cv prints a static snapshot instead.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(cmd); err != nil {
			return err
		}
		logger, err = newLogger(cfg.LogFile, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runView,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&contentPath, "content", "c", "", "Content file, YAML or JSON (default: built-in)")

	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the content file when it changes")
	rootCmd.Flags().StringVar(&themeName, "theme", config.ThemeAuto, "Color theme: auto, light or dark")
	rootCmd.Flags().DurationVar(&tickInterval, "tick", config.DefaultTickInterval, "Fact progress tick interval")
	rootCmd.Flags().DurationVar(&ackDelay, "ack", config.DefaultAckDelay, "How long the like banner stays up")
	rootCmd.Flags().BoolVar(&snapshot, "snapshot", false, "Print a static page and exit")
	rootCmd.Flags().IntVar(&width, "width", 0, "Snapshot width (default: terminal width)")

	rootCmd.AddCommand(breedsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the file logger. The page owns the terminal, so without
// a log file nothing is logged at all.
func newLogger(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

// loadConfig reads the config file and applies the flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return c, err
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		c.ContentPath = contentPath
	}
	if flags.Changed("watch") {
		c.Watch = watch
	}
	if flags.Changed("theme") {
		c.Theme = themeName
	}
	if flags.Changed("tick") {
		c.TickInterval = tickInterval
	}
	if flags.Changed("ack") {
		c.AckDelay = ackDelay
	}
	if flags.Changed("log-file") {
		c.LogFile = logFile
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
