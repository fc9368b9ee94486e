package cmd

import (
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ibarra/shelfr/internal/application"
	"github.com/ibarra/shelfr/internal/core"
	"github.com/ibarra/shelfr/internal/model"
)

var (
	initOnce sync.Once

	flagConfig  string
	flagStorage string
	flagLibrary string
	flagVerbose bool
	flagJSONLog bool

	// appConfig is the effective configuration: config file values with
	// command-line overrides applied. Loaded once before any command runs.
	appConfig model.Config
)

var rootCmd = &cobra.Command{
	Use:     application.AppName,
	Short:   "A personal book library manager",
	Version: application.Version,
	Long: `Shelfr keeps track of the books you own and whether you have read them.
It stores your library locally and offers three ways to work with it:
an interactive menu, a browser interface and plain subcommands for scripting.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		initOnce.Do(func() {
			setupLogger()

			appConfig, err = core.LoadConfig(flagConfig)
			if err != nil {
				return
			}

			if flagStorage != "" {
				appConfig.Storage.Backend = flagStorage
			}

			if flagLibrary != "" {
				appConfig.Storage.Path = flagLibrary
			}
		})

		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without a subcommand, drop into the interactive menu when stdin
		// is a terminal. Piped or scripted invocations get the help text.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return runMenu(cmd, args)
		}

		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// setupLogger installs the default logger: text on stderr, warnings and
// up. --verbose lowers the level to debug, --json-log switches the format.
func setupLogger() {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	if flagJSONLog {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
		return
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "Storage backend: json, bolt or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "Path to the library file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLog, "json-log", false, "Write logs as JSON")
}
