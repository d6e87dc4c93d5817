package cli

import (
	"fmt"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/ppiankov/scribeforge/internal/reporter"
	"github.com/ppiankov/scribeforge/internal/task"
)

func newShowCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show <writer>",
		Short: "Show a writer's brief and planned steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, store, err := resolvePersona(args[0])
			if err != nil {
				return err
			}
			a := store.Load(p.ID)
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "%s\n\n", p.Name)
			fmt.Fprintf(w, "%s\n\n", wordwrap.String(a.Description, width))

			rep := reporter.NewTextReporter(w, isTerminal())
			rep.PrintPlan(task.ParseListDetailed(a.TaskList))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "wrap the brief at this many columns")

	return cmd
}
