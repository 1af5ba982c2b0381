// New command for the drmd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var newTitle string

var newCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"reset"},
	Short:   "Start the session over with a fresh document",
	Long: `Replace the current session's state with a fresh document: default
title, one empty producer, responsible person, and material, and every
official statement present but empty.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		cert := types.NewCertificate()
		if newTitle != "" {
			if err := cert.SetTitle(newTitle); err != nil {
				return fmt.Errorf("%w (valid: %v)", err, types.AllowedTitles)
			}
		}

		if err := store.Save(sessionName(), cert); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSysError)
		}
		fmt.Printf("session %q reset\n", sessionName())
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "document title")
}
