package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/scribeforge/internal/assets"
	"github.com/ppiankov/scribeforge/internal/config"
	"github.com/ppiankov/scribeforge/internal/persona"
)

// Version, Commit and BuildDate are set via LDFLAGS at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	verbose    bool
	configFile string
	assetsDir  string
	logFile    string

	settings *config.Settings
	logOut   io.WriteCloser
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scribeforge",
		Short: "Pick a writer and watch it write an article",
		Long:  "scribeforge lets you choose a writer persona, read its brief, and follow a simulated article-writing run step by step until the finished article appears.",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("assets-dir") && s.AssetsDir != "" {
				assetsDir = s.AssetsDir
			}
			if !cmd.Flags().Changed("log-file") && s.LogFile != "" {
				logFile = s.LogFile
			}
			settings = s
			return setupLogging(os.Stderr)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logOut != nil {
				_ = logOut.Close()
				logOut = nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "path to config file")
	root.PersistentFlags().StringVar(&assetsDir, "assets-dir", ".", "directory containing desc_/tasks_/content_ files")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newUICmd())
	root.AddCommand(newPersonasCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// setupLogging installs the default slog logger, writing to the log file
// when one is configured and to fallback otherwise.
func setupLogging(fallback io.Writer) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	w := fallback
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// loadRegistry returns the configured personas.
func loadRegistry() (*persona.Registry, error) {
	if settings == nil {
		return persona.Builtin(), nil
	}
	return settings.Registry()
}

// resolvePersona looks up a writer by name for commands that take one.
func resolvePersona(name string) (persona.Persona, *assets.Store, error) {
	reg, err := loadRegistry()
	if err != nil {
		return persona.Persona{}, nil, err
	}
	p, ok := reg.Lookup(name)
	if !ok {
		return persona.Persona{}, nil, fmt.Errorf("unknown writer %q (see `scribeforge personas`)", name)
	}
	return p, assets.NewStore(assetsDir), nil
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
