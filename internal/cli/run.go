package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ppiankov/scribeforge/internal/reporter"
	"github.com/ppiankov/scribeforge/internal/runner"
)

// Output formats for the run command.
const (
	formatAuto = "auto"
	formatText = "text"
	formatLive = "live"
	formatJSON = "json"
	formatHTML = "html"
)

func newRunCmd() *cobra.Command {
	var (
		format      string
		showContent bool
		width       int
	)

	cmd := &cobra.Command{
		Use:   "run <writer>",
		Short: "Write an article without the interactive UI",
		Long:  "Run executes the writer's steps in order, printing progress as each step starts and finishes, then prints the finished article.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(cmd.OutOrStdout(), args[0], format, showContent, width)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatAuto, "progress output: auto (detect TTY), text, live, json, html")
	cmd.Flags().BoolVar(&showContent, "content", true, "print the finished article after the run")
	cmd.Flags().IntVar(&width, "width", 80, "wrap the finished article at this many columns")

	return cmd
}

func runHeadless(w io.Writer, name, format string, showContent bool, width int) error {
	p, store, err := resolvePersona(name)
	if err != nil {
		return err
	}

	if format == formatAuto {
		format = formatText
		if isTerminal() {
			format = formatLive
		}
	}

	var (
		rep    reporter.Reporter
		render runner.LineRenderer
	)
	switch format {
	case formatText:
		rep, render = reporter.NewTextReporter(w, isTerminal()), reporter.PlainLines{}
	case formatLive:
		rep, render = reporter.NewLiveReporter(w), reporter.TerminalLines{}
	case formatJSON:
		rep, render = reporter.NewJSONReporter(w), reporter.PlainLines{}
	case formatHTML:
		rep, render = reporter.NewHTMLReporter(w), reporter.HTMLLines{}
	default:
		return fmt.Errorf("unknown format %q (want auto, text, live, json or html)", format)
	}

	a := store.Load(p.ID)
	run := runner.NewRun(p, a.Tasks)
	slog.Debug("headless run", "persona", p.Name, "format", format, "run_id", run.ID)

	reporter.Drive(runner.New(render), run, rep)

	if !showContent || format == formatJSON {
		return nil
	}
	fmt.Fprintln(w)
	if format == formatHTML {
		fmt.Fprintln(w, reporter.SanitizeHTML(a.Content))
		return nil
	}
	fmt.Fprintln(w, reporter.ContentText(a.Content, width))
	return nil
}
