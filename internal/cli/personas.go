package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPersonasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the available writers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range reg.All() {
				fmt.Fprintf(w, "%-24s id=%d\n", p.Name, p.ID)
			}
			return nil
		},
	}
}
