// Load command for the drmd CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/internal/drmdxml"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Import a document into the session",
	Long: `Import a serialized document, replacing the session's state. Only a
document that is not well-formed XML fails the import; missing or
malformed fields load as defaults. On failure the session keeps its
previous state.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		cert, err := drmdxml.NewParser(logger).Parse(data)
		if err != nil {
			var perr *drmdxml.ParseError
			if errors.As(err, &perr) && flagVerbose {
				fmt.Fprintln(os.Stderr, "document excerpt:")
				fmt.Fprintln(os.Stderr, perr.Excerpt)
			}
			return err
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if err := store.Save(sessionName(), cert); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSysError)
		}
		fmt.Printf("imported %s into session %q\n", args[0], sessionName())
		return nil
	},
}
