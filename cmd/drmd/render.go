// Render command for the drmd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dukaforge/drmd/internal/drmdxml"
	"github.com/dukaforge/drmd/internal/render"
	"github.com/dukaforge/drmd/pkg/types"
)

var renderStylesheetPath string

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the session through the XSL stylesheet",
	Long: `Serialize the session's state and apply the configured XSL
stylesheet. Rendering is best-effort: a transform failure produces
empty output and a warning rather than an error. Writes to stdout when
no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stylesheet := renderStylesheetPath
		if stylesheet == "" {
			stylesheet = configStylesheetPath
		}
		if stylesheet == "" {
			return fmt.Errorf("no stylesheet configured; set stylesheet_path in config.yaml or pass --stylesheet")
		}

		return readCertificate(func(cert *types.Certificate) error {
			document, err := drmdxml.NewSerializer().Serialize(cert)
			if err != nil {
				fmt.Fprintln(os.Stderr, "serialize:", err)
				os.Exit(exitSysError)
			}

			out, err := render.NewRenderer(stylesheet).Render(document)
			if err != nil {
				logger.Warn("rendering failed, producing empty output", zap.Error(err))
				out = nil
			}

			if len(args) == 0 {
				_, err := os.Stdout.Write(out)
				return err
			}
			if err := os.WriteFile(args[0], out, 0o644); err != nil {
				return fmt.Errorf("write rendering: %w", err)
			}
			return nil
		})
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderStylesheetPath, "stylesheet", "", "XSL stylesheet file (overrides config)")
}
