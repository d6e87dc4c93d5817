package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ppiankov/scribeforge/internal/assets"
	"github.com/ppiankov/scribeforge/internal/preview"
)

func newPreviewCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve writers and finished articles over HTTP",
		Long:  "Preview serves each writer's brief, steps and finished article in a browser. The article is sanitized and shown in a sandboxed frame.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("listen") && settings != nil {
				listen = settings.Listen()
			}
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			h := preview.NewHandler(reg, assets.NewStore(assetsDir))
			fmt.Fprintf(cmd.OutOrStdout(), "serving writers on http://%s\n", listen)
			return preview.Serve(ctx, listen, h)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8501", "address to listen on")

	return cmd
}
