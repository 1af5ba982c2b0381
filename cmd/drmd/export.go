// Export command for the drmd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/internal/drmdxml"
	"github.com/dukaforge/drmd/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Serialize the session to a document",
	Long: `Serialize the session's state as a namespaced XML document. Export
never fails on missing data: required-but-empty fields get sentinel
values and required lists get dummy entries. Writes to stdout when no
file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return readCertificate(func(cert *types.Certificate) error {
			data, err := drmdxml.NewSerializer().Serialize(cert)
			if err != nil {
				fmt.Fprintln(os.Stderr, "serialize:", err)
				os.Exit(exitSysError)
			}

			if len(args) == 0 {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write document: %w", err)
			}
			fmt.Printf("exported session %q to %s\n", sessionName(), args[0])
			return nil
		})
	},
}
