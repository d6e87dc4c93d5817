package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ppiankov/scribeforge/internal/assets"
	"github.com/ppiankov/scribeforge/internal/reporter"
	"github.com/ppiankov/scribeforge/internal/runner"
	"github.com/ppiankov/scribeforge/internal/tui"
)

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Choose a writer and follow the article interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI()
		},
	}
}

func runUI() error {
	// the terminal belongs to the UI; only a log file may receive logs
	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	store := assets.NewStore(assetsDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan string, 16)
	go func() {
		err := store.Watch(ctx, func(name string) {
			select {
			case changes <- name:
			default:
				slog.Debug("dropping asset change", "name", name)
			}
		})
		if err != nil {
			slog.Warn("asset watch unavailable", "dir", store.Dir(), "error", err)
		}
	}()

	m := tui.New(reg, store, runner.New(reporter.TerminalLines{}), changes)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
